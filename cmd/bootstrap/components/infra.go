package components

import (
	"log/slog"

	"storefront/internal/infra/adapter"
	"storefront/internal/infra/gateway"
	"storefront/internal/infra/kvstore"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/toast"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config, logger *slog.Logger) kvstore.Store {
			return kvstore.NewFileStore(cfg.Storage.StateDir, logger)
		},
		func(cfg config.Config, logger *slog.Logger) (*gateway.Client, error) {
			return gateway.NewClient(cfg.API, logger)
		},
		adapter.New,
		func(clk clock.Clock, cfg config.Config, logger *slog.Logger) *toast.Queue {
			return toast.NewQueue(clk, cfg.Toast.SweepInterval, logger)
		},
	),
)
