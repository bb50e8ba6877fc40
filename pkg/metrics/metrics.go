package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricNamespace = "resturihub"

// Registry 服务自身的指标，HTTP 请求计数/耗时与数据库连接池状态
type Registry struct {
	reg *prometheus.Registry

	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	errors    *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "The total number of HTTP requests partitioned by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricNamespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Latency distributions of HTTP requests partitioned by method and route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Subsystem: "api",
				Name:      "errors_total",
				Help:      "The total number of failed API calls partitioned by error code",
			},
			[]string{"code"},
		),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests,
		r.durations,
		r.errors,
	)
	return r
}

// ObserveRequest 记录一次 HTTP 请求
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.durations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveError 按错误码计数
func (r *Registry) ObserveError(code string) {
	r.errors.WithLabelValues(code).Inc()
}

// RegisterDB 暴露 database/sql 连接池统计
func (r *Registry) RegisterDB(db *sql.DB, dbName string) error {
	return r.reg.Register(collectors.NewDBStatsCollector(db, dbName))
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
