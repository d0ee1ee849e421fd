package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/phone"
	"storefront/internal/usecase/shared"
)

type OrderLineInput struct {
	ProductID string
	Qty       int
	Price     decimal.Decimal
}

type OrderSubmission struct {
	Lines      []OrderLineInput
	TotalPrice decimal.Decimal
	CouponCode string
	Name       string
	Address    string
	Phone      string
}

// OrderGateway is the gateway port for order creation.
type OrderGateway interface {
	CreateOrder(ctx context.Context, submission OrderSubmission, idempotencyKey string) (*shared.OrderConfirmation, error)
}

type CustomerInfo struct {
	Name    string
	Address string
	Phone   string
}

// CheckoutUseCase submits the cart snapshot as an order. At most one checkout
// is in flight per cart: a second call while the first is pending is rejected
// outright rather than queued.
type CheckoutUseCase struct {
	cart    *CartService
	pricing *PricingService
	orders  OrderGateway
	logger  *slog.Logger

	inFlight atomic.Bool
}

func NewCheckoutUseCase(cart *CartService, pricing *PricingService, orders OrderGateway, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		cart:    cart,
		pricing: pricing,
		orders:  orders,
		logger:  logger,
	}
}

// InFlight reports whether a checkout is currently pending, for views that
// want to disable the submit control.
func (uc *CheckoutUseCase) InFlight() bool {
	return uc.inFlight.Load()
}

// Checkout validates the customer details, submits the current cart and, on
// success, clears the cart and any applied coupon. The returned confirmation
// carries the server's totals, which supersede every locally computed figure.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, customer CustomerInfo, couponCode string) (*shared.OrderConfirmation, error) {
	items := uc.cart.Items()
	if len(items) == 0 {
		return nil, errs.ErrCartEmpty
	}
	if customer.Name == "" || customer.Address == "" || customer.Phone == "" {
		return nil, errs.ErrMissingCustomer
	}
	normalizedPhone := phone.Normalize(customer.Phone)
	if !phone.IsValid(normalizedPhone) {
		return nil, errs.ErrInvalidPhoneNumber
	}

	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, errs.ErrCheckoutInFlight
	}
	defer uc.inFlight.Store(false)

	submission := OrderSubmission{
		TotalPrice: uc.cart.TotalPrice(),
		CouponCode: couponCode,
		Name:       customer.Name,
		Address:    customer.Address,
		Phone:      normalizedPhone,
	}
	for _, li := range items {
		submission.Lines = append(submission.Lines, OrderLineInput{
			ProductID: li.ProductID,
			Qty:       li.Quantity,
			Price:     li.UnitPrice,
		})
	}

	confirmation, err := uc.orders.CreateOrder(ctx, submission, uuid.NewString())
	if err != nil {
		return nil, errs.Wrap(err, "order submission failed")
	}

	uc.cart.Clear()
	uc.pricing.ClearCoupon()
	uc.logger.Info("order created", "order_number", confirmation.OrderNumber)
	return confirmation, nil
}
