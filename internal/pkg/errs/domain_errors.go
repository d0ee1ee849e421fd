package errs

import "errors"

// Domain-specific sentinel errors for the storefront usecase layers
var (
	// Checkout errors
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCheckoutInFlight   = errors.New("checkout already in progress")
	ErrMissingCustomer    = errors.New("customer name, address and phone are required")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// Coupon errors
	ErrCouponRejected = errors.New("coupon rejected")

	// Order tracking errors
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotCancelable = errors.New("order can no longer be cancelled")

	// Chat errors
	ErrChatSessionClosed = errors.New("chat session closed")
	ErrNoChatSession     = errors.New("no active chat session")

	// Gateway errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrAPIFailure   = errors.New("api request failed")
)
