package bootstrap

import (
	"travel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewStoreConfig,
	),
)

func NewStoreConfig(cfg config.Config) config.StoreConfig {
	return cfg.Store
}
