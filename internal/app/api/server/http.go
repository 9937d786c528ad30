package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lingoport/portal/docs"
	"github.com/lingoport/portal/internal/app/api/handlers"
	mw "github.com/lingoport/portal/internal/app/api/middleware"
	authsvc "github.com/lingoport/portal/internal/app/service/auth"
	bookingsvc "github.com/lingoport/portal/internal/app/service/booking"
	"github.com/lingoport/portal/internal/app/service/catalog"
	ordersvc "github.com/lingoport/portal/internal/app/service/order"
	cfgpkg "github.com/lingoport/portal/pkg/config"
	"github.com/lingoport/portal/pkg/metrics"
)

func newEngine(mtr *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Tracing and metrics apply to every route; request logger & access log
	// are attached per group in registerRoutes.
	r.Use(mw.TraceMiddleware())
	r.Use(mtr.GinMiddleware())
	return r
}

func registerRoutes(
	r *gin.Engine,
	lc fx.Lifecycle,
	log *zap.SugaredLogger,
	cfg *cfgpkg.Config,
	mtr *metrics.Metrics,
	auth *authsvc.Service,
	cat *catalog.Service,
	orders *ordersvc.Service,
	bookings *bookingsvc.Service,
) {
	if cfg.MetricsAddr != "" {
		mtr.Serve(lc, cfg.MetricsAddr, log)
		log.Infow("metrics started", "addr", cfg.MetricsAddr)
	}

	// Public group: health + swagger
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())

	handlers.RegisterAuthRoutes(api.Group("/auth"), auth, log)
	handlers.RegisterPlanRoutes(api, api.Group("/member-card-plans/admin"), cat, log)
	handlers.RegisterCardRoutes(api.Group("/member-cards/admin"), cat, log)
	handlers.RegisterTimeslotRoutes(api.Group("/timeslots/admin"), bookings, log)
	handlers.RegisterOrderRoutes(api.Group("/orders"), orders, log)

	// Bookings require a verified bearer token.
	protected := api.Group("/bookings")
	protected.Use(mw.AuthRequired(auth))
	handlers.RegisterBookingRoutes(protected, bookings, log)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
