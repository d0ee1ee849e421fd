package components

import (
	"log/slog"

	"storefront/internal/infra/adapter"
	"storefront/internal/infra/gateway"
	"storefront/internal/infra/kvstore"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewCartService,
		func(client *gateway.Client, cfg config.Config, logger *slog.Logger) *usecase.StoreConfigService {
			return usecase.NewStoreConfigService(client, cfg.Refresh.StoreConfigInterval, logger)
		},
		func(cart *usecase.CartService, storeCfg *usecase.StoreConfigService, client *gateway.Client) *usecase.PricingService {
			return usecase.NewPricingService(cart, storeCfg, client)
		},
		func(cart *usecase.CartService, pricing *usecase.PricingService, api *adapter.API, logger *slog.Logger) *usecase.CheckoutUseCase {
			return usecase.NewCheckoutUseCase(cart, pricing, api, logger)
		},
		func(client *gateway.Client, store kvstore.Store, clk clock.Clock, cfg config.Config, logger *slog.Logger) *usecase.AnnouncementService {
			return usecase.NewAnnouncementService(client, store, clk, cfg.Refresh.AnnouncementsInterval, logger)
		},
		func(client *gateway.Client, store kvstore.Store, logger *slog.Logger) *usecase.ChatService {
			return usecase.NewChatService(client, store, logger)
		},
		func(api *adapter.API, logger *slog.Logger) *usecase.AuthService {
			return usecase.NewAuthService(api, logger)
		},
		func(api *adapter.API) *queries.CatalogQueries {
			return queries.NewCatalogQueries(api)
		},
		func(api *adapter.API) *queries.TrackingQueries {
			return queries.NewTrackingQueries(api)
		},
	),
)
