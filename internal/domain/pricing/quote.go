package pricing

import (
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountGeneral   DiscountType = "general"
	DiscountThreshold DiscountType = "threshold"
)

// StoreDiscount is the store-wide discount descriptor as served by
// GET /api/store/discount. Value is a percentage; MinTotal only matters for
// the threshold type. Out-of-range values are a data-quality problem for the
// discount configuration and are applied as given.
type StoreDiscount struct {
	Active   bool
	Type     DiscountType
	Value    decimal.Decimal
	MinTotal decimal.Decimal
}

func (d StoreDiscount) AppliesTo(subtotal decimal.Decimal) bool {
	if !d.Active || d.Value.LessThanOrEqual(decimal.Zero) {
		return false
	}
	if d.Type == DiscountGeneral {
		return true
	}
	return subtotal.GreaterThanOrEqual(d.MinTotal)
}

// CouponResult holds the outcome of a server-side coupon validation. Exactly
// one of (Discount, Total) or Err is meaningful.
type CouponResult struct {
	Discount decimal.Decimal
	Total    decimal.Decimal
	Err      string
}

func (c CouponResult) Valid() bool {
	return c.Err == ""
}

type ShippingPolicy struct {
	Enabled bool
	Amount  decimal.Decimal
}

func (s ShippingPolicy) Fee() decimal.Decimal {
	if !s.Enabled {
		return decimal.Zero
	}
	return s.Amount
}

// Quote is a display-only price breakdown. The server's order total is
// authoritative once checkout completes.
type Quote struct {
	Subtotal              decimal.Decimal
	StoreDiscountAmount   decimal.Decimal
	StoreDiscountApplied  bool
	SubtotalAfterDiscount decimal.Decimal
	CouponApplied         bool
	PayableBeforeShipping decimal.Decimal
	ShippingFee           decimal.Decimal
	Total                 decimal.Decimal
}

// ComputeQuote applies the fixed precedence: store discount (rounded to whole
// EGP), then the coupon's server-reported total when validation succeeded,
// then the flat shipping fee. The coupon total replaces the local
// post-discount figure entirely; the client never re-derives the coupon
// discount.
func ComputeQuote(subtotal decimal.Decimal, discount StoreDiscount, coupon *CouponResult, shipping ShippingPolicy) Quote {
	q := Quote{Subtotal: subtotal}

	if discount.AppliesTo(subtotal) {
		q.StoreDiscountApplied = true
		q.StoreDiscountAmount = subtotal.Mul(discount.Value).Div(decimal.NewFromInt(100)).Round(0)
	}

	q.SubtotalAfterDiscount = subtotal.Sub(q.StoreDiscountAmount)
	if q.SubtotalAfterDiscount.IsNegative() {
		q.SubtotalAfterDiscount = decimal.Zero
	}

	q.PayableBeforeShipping = q.SubtotalAfterDiscount
	if coupon != nil && coupon.Valid() {
		q.CouponApplied = true
		q.PayableBeforeShipping = coupon.Total
	}

	q.ShippingFee = shipping.Fee()
	q.Total = q.PayableBeforeShipping.Add(q.ShippingFee)
	if q.Total.IsNegative() {
		q.Total = decimal.Zero
	}
	return q
}
