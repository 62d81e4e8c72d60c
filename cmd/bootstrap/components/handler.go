package components

import (
	"context"

	"commission-tracker/internal/handler"
	"commission-tracker/internal/handler/api"
	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPurchaseHandler,
		api.NewPaymentHandler,
		api.NewVendorHandler,
		api.NewTechnicianHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimiter evicts idle client buckets while the app runs.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit, clk)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go limiter.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}
