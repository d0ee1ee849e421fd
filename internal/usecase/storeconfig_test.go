//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/pricing"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase"
)

type stubStoreConfigFetcher struct {
	mu       sync.Mutex
	discount pricing.StoreDiscount
	shipping pricing.ShippingPolicy
	err      error
}

func (f *stubStoreConfigFetcher) StoreConfig(context.Context) (pricing.StoreDiscount, pricing.ShippingPolicy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.discount, f.shipping, f.err
}

func (f *stubStoreConfigFetcher) set(d pricing.StoreDiscount, s pricing.ShippingPolicy, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discount, f.shipping, f.err = d, s, err
}

func TestStoreConfigService(t *testing.T) {
	t.Run("discount is inactive until the first successful poll", func(t *testing.T) {
		fetcher := &stubStoreConfigFetcher{}
		svc := usecase.NewStoreConfigService(fetcher, time.Hour, testLogger())

		assert.False(t, svc.Discount().Active)
		assert.False(t, svc.Shipping().Enabled)
	})

	t.Run("refresh applies the latest configuration", func(t *testing.T) {
		fetcher := &stubStoreConfigFetcher{}
		fetcher.set(
			pricing.StoreDiscount{Active: true, Type: pricing.DiscountGeneral, Value: decimal.NewFromInt(10)},
			pricing.ShippingPolicy{Enabled: true, Amount: decimal.NewFromInt(50)},
			nil,
		)
		svc := usecase.NewStoreConfigService(fetcher, time.Hour, testLogger())

		svc.Refresh(context.Background())

		assert.True(t, svc.Discount().Active)
		assert.True(t, decimal.NewFromInt(10).Equal(svc.Discount().Value))
		assert.True(t, svc.Shipping().Enabled)
	})

	t.Run("a failed poll keeps the previous configuration", func(t *testing.T) {
		fetcher := &stubStoreConfigFetcher{}
		fetcher.set(pricing.StoreDiscount{Active: true, Value: decimal.NewFromInt(15)}, pricing.ShippingPolicy{}, nil)
		svc := usecase.NewStoreConfigService(fetcher, time.Hour, testLogger())
		svc.Refresh(context.Background())

		fetcher.set(pricing.StoreDiscount{}, pricing.ShippingPolicy{}, errs.ErrAPIFailure)
		svc.Refresh(context.Background())

		assert.True(t, svc.Discount().Active)
		assert.True(t, decimal.NewFromInt(15).Equal(svc.Discount().Value))
	})
}
