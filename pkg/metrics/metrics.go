package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Metrics holds the service's prometheus collectors. HTTP metrics are
// recorded by the gin middleware; business counters are bumped by the
// services that own the events.
type Metrics struct {
	registry *prometheus.Registry

	reqCnt *prometheus.CounterVec
	reqDur *prometheus.HistogramVec

	OrdersCreated   prometheus.Counter
	OrdersCompleted prometheus.Counter
	OrdersExpired   prometheus.Counter
	Bookings        *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqCnt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Count of HTTP requests by status, method and route.",
		}, []string{"code", "method", "path"}),
		reqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders accepted for payment.",
		}),
		OrdersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_completed_total",
			Help: "Orders marked paid.",
		}),
		OrdersExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_expired_total",
			Help: "Orders canceled by the expiry sweep.",
		}),
		Bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Timeslot booking attempts by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.reqCnt, m.reqDur,
		m.OrdersCreated, m.OrdersCompleted, m.OrdersExpired, m.Bookings,
	)
	return m
}

// GinMiddleware records request count and latency per registered route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())
		m.reqCnt.WithLabelValues(status, c.Request.Method, path).Inc()
		m.reqDur.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Serve exposes /metrics on its own listener so the scrape endpoint stays
// off the public API port.
func (m *Metrics) Serve(lc fx.Lifecycle, addr string, log *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorw("metrics listener error", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(New),
)
