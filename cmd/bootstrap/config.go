package bootstrap

import (
	"carhaul-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
		func(cfg config.Config) config.SuggestConfig { return cfg.Suggest },
		func(cfg config.Config) config.UpstreamConfig { return cfg.Upstream },
	),
)
