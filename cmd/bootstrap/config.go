package bootstrap

import (
	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
		NewEngine,
	),
)

// NewEngine is shared by every use case so reads and writes derive the same status.
func NewEngine(cfg config.Config) *collective.Engine {
	return collective.NewEngine(cfg.Lifecycle.Settings())
}
