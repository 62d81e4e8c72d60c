package components

import (
	"context"
	"log/slog"

	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/usecase"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(ensureTechnician),
)

var usecaseBaseOption = fx.Provide(
	NewFlowSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPurchaseFlowCommands,
		commands.NewPaymentCommands,
		commands.NewVendorCommands,
		commands.NewAppointmentCommands,
		func(deps serialDeps) commands.SerialCommands {
			return commands.NewSerialCommands(deps.UoW, deps.QR, deps.Clock, deps.Config.Server.PublicBaseURL)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewFlowQueries,
		queries.NewVendorQueries,
		queries.NewClientQueries,
		queries.NewCatalogQueries,
		func(rs queries.SerialReadStore, cfg config.Config) queries.SerialQueries {
			return queries.NewSerialQueries(rs, cfg.Server.PublicBaseURL)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

type serialDeps struct {
	fx.In

	UoW    shared.UnitOfWork
	QR     commands.QRGenerator
	Clock  clock.Clock
	Config config.Config
}

func NewFlowSettings(cfg config.Config) (commands.FlowSettings, error) {
	loc, err := cfg.Flow.Location()
	if err != nil {
		return commands.FlowSettings{}, err
	}
	return commands.FlowSettings{
		PublicBaseURL: cfg.Server.PublicBaseURL,
		Currency:      cfg.Payment.Currency,
		Location:      loc,
	}, nil
}

// ensureTechnician creates the configured back-office account on first start.
func ensureTechnician(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands) {
	email, password := cfg.Bootstrap.TechnicianEmail, cfg.Bootstrap.TechnicianPassword
	if email == "" || password == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := auth.EnsureTechnician(ctx, email, password); err != nil {
				slog.Error("failed to bootstrap technician account", "email", email, "error", err.Error())
				return err
			}
			return nil
		},
	})
}
