//go:build unit

package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/pricing"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %d, got %s", want, got)
}

func TestComputeQuote(t *testing.T) {
	t.Run("general discount with shipping", func(t *testing.T) {
		q := pricing.ComputeQuote(
			d(1000),
			pricing.StoreDiscount{Active: true, Type: pricing.DiscountGeneral, Value: d(10)},
			nil,
			pricing.ShippingPolicy{Enabled: true, Amount: d(50)},
		)

		assert.True(t, q.StoreDiscountApplied)
		assertDecimal(t, 100, q.StoreDiscountAmount)
		assertDecimal(t, 900, q.PayableBeforeShipping)
		assertDecimal(t, 50, q.ShippingFee)
		assertDecimal(t, 950, q.Total)
	})

	t.Run("threshold discount below minimum does not apply", func(t *testing.T) {
		q := pricing.ComputeQuote(
			d(500),
			pricing.StoreDiscount{Active: true, Type: pricing.DiscountThreshold, Value: d(20), MinTotal: d(1000)},
			nil,
			pricing.ShippingPolicy{Enabled: true, Amount: d(50)},
		)

		assert.False(t, q.StoreDiscountApplied)
		assertDecimal(t, 0, q.StoreDiscountAmount)
		assertDecimal(t, 500, q.PayableBeforeShipping)
		assertDecimal(t, 550, q.Total)
	})

	t.Run("threshold discount at exactly the minimum applies", func(t *testing.T) {
		q := pricing.ComputeQuote(
			d(1000),
			pricing.StoreDiscount{Active: true, Type: pricing.DiscountThreshold, Value: d(20), MinTotal: d(1000)},
			nil,
			pricing.ShippingPolicy{},
		)

		assert.True(t, q.StoreDiscountApplied)
		assertDecimal(t, 200, q.StoreDiscountAmount)
		assertDecimal(t, 800, q.Total)
	})

	t.Run("coupon total replaces the local post-discount subtotal", func(t *testing.T) {
		q := pricing.ComputeQuote(
			d(500),
			pricing.StoreDiscount{},
			&pricing.CouponResult{Discount: d(50), Total: d(450)},
			pricing.ShippingPolicy{},
		)

		assert.True(t, q.CouponApplied)
		assertDecimal(t, 450, q.PayableBeforeShipping)
		assertDecimal(t, 450, q.Total)
	})

	t.Run("server coupon total wins even when it diverges from the local figure", func(t *testing.T) {
		// The server may have validated against a different subtotal. Its
		// total is still taken as-is.
		q := pricing.ComputeQuote(
			d(500),
			pricing.StoreDiscount{Active: true, Type: pricing.DiscountGeneral, Value: d(10)},
			&pricing.CouponResult{Discount: d(100), Total: d(700)},
			pricing.ShippingPolicy{Enabled: true, Amount: d(50)},
		)

		assertDecimal(t, 450, q.SubtotalAfterDiscount)
		assertDecimal(t, 700, q.PayableBeforeShipping)
		assertDecimal(t, 750, q.Total)
	})

	t.Run("rejected coupon is ignored", func(t *testing.T) {
		q := pricing.ComputeQuote(
			d(500),
			pricing.StoreDiscount{},
			&pricing.CouponResult{Err: "invalid coupon code"},
			pricing.ShippingPolicy{},
		)

		assert.False(t, q.CouponApplied)
		assertDecimal(t, 500, q.Total)
	})

	t.Run("inactive or zero-value discounts never apply", func(t *testing.T) {
		cases := []pricing.StoreDiscount{
			{Active: false, Type: pricing.DiscountGeneral, Value: d(10)},
			{Active: true, Type: pricing.DiscountGeneral, Value: d(0)},
			{Active: true, Type: pricing.DiscountGeneral, Value: d(-5)},
		}
		for _, sd := range cases {
			q := pricing.ComputeQuote(d(1000), sd, nil, pricing.ShippingPolicy{})
			assert.False(t, q.StoreDiscountApplied)
			assertDecimal(t, 1000, q.Total)
		}
	})

	t.Run("store discount rounds half away from zero", func(t *testing.T) {
		// 333 * 15% = 49.95 -> 50
		q := pricing.ComputeQuote(
			d(333),
			pricing.StoreDiscount{Active: true, Type: pricing.DiscountGeneral, Value: d(15)},
			nil,
			pricing.ShippingPolicy{},
		)

		assertDecimal(t, 50, q.StoreDiscountAmount)
		assertDecimal(t, 283, q.Total)
	})

	t.Run("discount above 100 percent floors the subtotal at zero", func(t *testing.T) {
		q := pricing.ComputeQuote(
			d(100),
			pricing.StoreDiscount{Active: true, Type: pricing.DiscountGeneral, Value: d(150)},
			nil,
			pricing.ShippingPolicy{Enabled: true, Amount: d(50)},
		)

		assertDecimal(t, 150, q.StoreDiscountAmount)
		assertDecimal(t, 0, q.SubtotalAfterDiscount)
		assertDecimal(t, 50, q.Total)
	})

	t.Run("zero subtotal yields only the shipping fee", func(t *testing.T) {
		q := pricing.ComputeQuote(
			d(0),
			pricing.StoreDiscount{Active: true, Type: pricing.DiscountGeneral, Value: d(10)},
			nil,
			pricing.ShippingPolicy{Enabled: true, Amount: d(50)},
		)

		assertDecimal(t, 0, q.StoreDiscountAmount)
		assertDecimal(t, 50, q.Total)
	})

	t.Run("same inputs always produce the same quote", func(t *testing.T) {
		discount := pricing.StoreDiscount{Active: true, Type: pricing.DiscountThreshold, Value: d(25), MinTotal: d(200)}
		shipping := pricing.ShippingPolicy{Enabled: true, Amount: d(35)}
		coupon := &pricing.CouponResult{Discount: d(20), Total: d(280)}

		first := pricing.ComputeQuote(d(400), discount, coupon, shipping)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, pricing.ComputeQuote(d(400), discount, coupon, shipping))
		}
	})
}
