package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"shiphub/internal/config"
	"shiphub/internal/http/handlers"
	"shiphub/internal/http/middleware"
	"shiphub/internal/http/middleware/ratelimit"
	"shiphub/internal/http/router"
	"shiphub/internal/logx"
	"shiphub/internal/service/company"
	"shiphub/internal/service/shipping"
)

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		func(logger logx.Logger, svc *shipping.Service) *handlers.RequestHandler {
			return handlers.NewRequestHandler(logger, svc)
		},
		func(logger logx.Logger, svc *company.Service) *handlers.CompanyHandler {
			return handlers.NewCompanyHandler(logger, svc)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		func(logger logx.Logger, m *appMetrics) *middleware.Observability {
			return middleware.NewObservability(logger, m.httpRequests, m.httpDuration)
		},
		newRouter,
		newServer,
	)
}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucket(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

func newRateLimitMiddleware(logger logx.Logger, m *appMetrics, limiter ratelimit.Limiter) *ratelimit.Middleware {
	return ratelimit.New(logger, m.rateLimited, limiter)
}

type routerIn struct {
	dig.In

	Base          *handlers.Handlers
	Requests      *handlers.RequestHandler
	Companies     *handlers.CompanyHandler
	Metrics       *appMetrics
	Observability *middleware.Observability
	RateLimit     *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	return router.New(
		in.Base,
		in.Requests,
		in.Companies,
		promhttp.HandlerFor(in.Metrics.registry, promhttp.HandlerOpts{}),
		in.Observability.Handler(),
		in.RateLimit.Handler(),
	)
}

func newServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
