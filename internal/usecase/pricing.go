package usecase

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/pricing"
)

// CouponValidator is the gateway port for server-side coupon validation.
type CouponValidator interface {
	ValidateCoupon(ctx context.Context, code string, total decimal.Decimal) (*pricing.CouponResult, error)
}

// PricingService produces the displayed price breakdown. Quote always reads
// the cart subtotal at call time, so a quote issued after a cart mutation
// prices the mutated cart, never a stale snapshot captured earlier.
type PricingService struct {
	cart      *CartService
	storeCfg  *StoreConfigService
	validator CouponValidator

	mu         sync.Mutex
	couponCode string
	coupon     *pricing.CouponResult
}

func NewPricingService(cart *CartService, storeCfg *StoreConfigService, validator CouponValidator) *PricingService {
	return &PricingService{
		cart:      cart,
		storeCfg:  storeCfg,
		validator: validator,
	}
}

// ApplyCoupon validates the code against the current post-store-discount
// subtotal. The outcome, success or rejection, is held as a data value and
// folded into subsequent quotes; transport failures leave the previous coupon
// state untouched.
func (s *PricingService) ApplyCoupon(ctx context.Context, code string) (*pricing.CouponResult, error) {
	if code == "" {
		s.ClearCoupon()
		return nil, nil
	}

	subtotal := s.cart.TotalPrice()
	base := pricing.ComputeQuote(subtotal, s.storeCfg.Discount(), nil, pricing.ShippingPolicy{})
	result, err := s.validator.ValidateCoupon(ctx, code, base.SubtotalAfterDiscount)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.couponCode = code
	s.coupon = result
	s.mu.Unlock()
	return result, nil
}

func (s *PricingService) ClearCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.couponCode = ""
	s.coupon = nil
}

// CouponCode returns the applied code only when its validation succeeded.
func (s *PricingService) CouponCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coupon == nil || !s.coupon.Valid() {
		return ""
	}
	return s.couponCode
}

// Quote recomputes the full breakdown from current inputs.
func (s *PricingService) Quote() pricing.Quote {
	s.mu.Lock()
	coupon := s.coupon
	s.mu.Unlock()

	return pricing.ComputeQuote(
		s.cart.TotalPrice(),
		s.storeCfg.Discount(),
		coupon,
		s.storeCfg.Shipping(),
	)
}
