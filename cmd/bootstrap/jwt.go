package bootstrap

import (
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	if cfg.JWT.AccessDuration <= 0 || cfg.JWT.RefreshDuration <= 0 {
		panic("JWT_ACCESS_DURATION and JWT_REFRESH_DURATION must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessDuration, cfg.JWT.RefreshDuration, clk)
}
