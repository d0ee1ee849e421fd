package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/pricing"
	"storefront/internal/poller"
)

// StoreConfigFetcher is the gateway port for the store-wide discount and
// shipping descriptor.
type StoreConfigFetcher interface {
	StoreConfig(ctx context.Context) (pricing.StoreDiscount, pricing.ShippingPolicy, error)
}

type storeConfig struct {
	discount pricing.StoreDiscount
	shipping pricing.ShippingPolicy
}

// StoreConfigService holds the latest server-confirmed store configuration.
// Until the first successful poll (and after any failed one) the discount is
// inactive and shipping is disabled, matching a storefront that renders
// before its config arrives.
type StoreConfigService struct {
	mu      sync.RWMutex
	current storeConfig

	poller *poller.Poller[storeConfig]
}

func NewStoreConfigService(fetcher StoreConfigFetcher, interval time.Duration, logger *slog.Logger) *StoreConfigService {
	s := &StoreConfigService{}
	s.poller = poller.New(
		"store-config",
		interval,
		func(ctx context.Context) (storeConfig, error) {
			discount, shipping, err := fetcher.StoreConfig(ctx)
			if err != nil {
				return storeConfig{}, err
			}
			return storeConfig{discount: discount, shipping: shipping}, nil
		},
		s.apply,
		logger,
	)
	return s
}

// Run polls until ctx is cancelled; newest response wins.
func (s *StoreConfigService) Run(ctx context.Context) {
	s.poller.Run(ctx)
}

func (s *StoreConfigService) Refresh(ctx context.Context) {
	s.poller.Trigger(ctx)
}

func (s *StoreConfigService) Discount() pricing.StoreDiscount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.discount
}

func (s *StoreConfigService) Shipping() pricing.ShippingPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.shipping
}

func (s *StoreConfigService) apply(cfg storeConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = cfg
}
