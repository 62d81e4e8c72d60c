package bootstrap

import (
	"context"
	"log/slog"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/infra/catalog"
	"commission-tracker/internal/infra/flowstore"
	"commission-tracker/internal/infra/gateway"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/qr"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewFlowStore,
		NewCatalog,
		fx.Annotate(
			func(cfg config.Config) *gateway.StripeGateway { return gateway.NewStripeGateway(cfg.Payment) },
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(commands.PaymentEventParser)),
		),
		fx.Annotate(
			qr.NewGenerator,
			fx.As(new(commands.QRGenerator)),
		),
	),
)

func NewCatalog(cfg config.Config) (shared.CatalogSource, error) {
	c, err := catalog.Load(cfg.Flow.CatalogFile)
	if err != nil {
		return nil, err
	}
	slog.Info("service catalog loaded", "services", len(c.Offerings()), "file", cfg.Flow.CatalogFile)
	return c, nil
}

// NewFlowStore runs the expiry sweeper for the lifetime of the app.
func NewFlowStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) shared.FlowStore {
	store := flowstore.NewMemoryStore(cfg.Flow.TTL, clk)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				store.Run(ctx, cfg.Flow.SweepInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			slog.Info("flow store stopped", "live_flows", store.Len())
			return nil
		},
	})

	return store
}

var _ shared.CatalogSource = (*purchase.Catalog)(nil)
