package health

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/zeromicro/go-zero/core/logc"
)

const defaultProbeTimeout = 5 * time.Second

// Probe 探测依赖是否可用
type Probe func(ctx context.Context) error

type Status struct {
	Up        bool
	Checked   bool
	LastCheck time.Time
	Err       string
}

// Checker 定时执行探测并缓存最近一次结果
type Checker struct {
	name  string
	probe Probe

	mu     sync.RWMutex
	status Status
	cron   *cron.Cron
}

func NewChecker(name string, probe Probe) *Checker {
	return &Checker{
		name:  name,
		probe: probe,
	}
}

// Check 立即探测一次并记录结果
func (c *Checker) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer cancel()

	err := c.probe(ctx)
	s := Status{
		Up:        err == nil,
		Checked:   true,
		LastCheck: time.Now(),
	}
	if err != nil {
		s.Err = err.Error()
	}

	c.mu.Lock()
	prev := c.status
	c.status = s
	c.mu.Unlock()

	changed := prev.Checked && prev.Up != s.Up
	if changed || (!prev.Checked && !s.Up) {
		if s.Up {
			logc.Infof(ctx, "[Health] %s is up", c.name)
		} else {
			logc.Errorf(ctx, "[Health] %s is down: %s", c.name, s.Err)
		}
	}
	return s
}

// Status 最近一次探测结果
func (c *Checker) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.status
}

// Start 按 cron 表达式周期探测，例如 "@every 30s"
func (c *Checker) Start(spec string) error {
	cr := cron.New()
	if _, err := cr.AddFunc(spec, func() {
		c.Check(context.Background())
	}); err != nil {
		return err
	}

	c.mu.Lock()
	c.cron = cr
	c.mu.Unlock()

	cr.Start()
	return nil
}

// Stop 停止周期探测，等待正在执行的探测结束
func (c *Checker) Stop() {
	c.mu.Lock()
	cr := c.cron
	c.cron = nil
	c.mu.Unlock()

	if cr != nil {
		<-cr.Stop().Done()
	}
}
