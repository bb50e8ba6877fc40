package initialization

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"restUriHub/api"
	"restUriHub/internal/global"
	"restUriHub/internal/middleware"
	"restUriHub/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logc"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// NewEngine 注册中间件与全部路由
func NewEngine(reg *metrics.Registry) *gin.Engine {
	if global.Config.Server.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	api.RegisterValidator()

	ginEngine := gin.New()
	ginEngine.Use(
		middleware.Recovery(global.Config.Server.IsDebug()),
		middleware.AuditingLog(),
		middleware.Cors(global.Config.Cors),
		middleware.Metrics(reg),
	)

	api.SystemController.API(&ginEngine.RouterGroup)

	v1 := ginEngine.Group("api/v1")
	{
		api.UriPathController.API(v1)
		api.UriDefController.API(v1)
		api.SimpleController.API(v1)
	}

	return ginEngine
}

// InitRoute 启动 API 与指标服务，收到 SIGINT/SIGTERM 后优雅退出
func InitRoute(b *Basic) error {
	c, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	servers := []*http.Server{{
		Addr:    global.Config.Server.Addr(),
		Handler: NewEngine(b.Metrics),
	}}
	if addr := global.Config.Server.MetricsAddr; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", b.Metrics.Handler())
		servers = append(servers, &http.Server{Addr: addr, Handler: mux})
	}

	g, gc := errgroup.WithContext(c)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logc.Infof(gc, "[Server] listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gc.Done()
		logc.Info(context.Background(), "[Server] shutting down")

		sc, cancel := context.WithTimeout(context.Background(), global.Config.Server.ShutdownTimeout)
		defer cancel()

		var err error
		for _, srv := range servers {
			err = multierr.Append(err, srv.Shutdown(sc))
		}
		return multierr.Append(err, b.Close())
	})

	if err := g.Wait(); err != nil {
		logc.Errorf(context.Background(), "[Server] stopped with error: %s", err.Error())
		return err
	}
	logc.Info(context.Background(), "[Server] stopped")
	return nil
}
