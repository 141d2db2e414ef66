package bootstrap

import (
	"time"

	"lanebook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewFacilityLocation,
	),
)

// NewFacilityLocation resolves the facility timezone once at startup so every
// component shares the same *time.Location instance.
func NewFacilityLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Facility.Location()
}
