package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/pricing"
)

// ValidateCoupon asks the server to validate a coupon against the given
// payable total. A rejected coupon comes back as a CouponResult carrying the
// server's message, not as an error; only transport failures are errors.
func (c *Client) ValidateCoupon(ctx context.Context, code string, total decimal.Decimal) (*pricing.CouponResult, error) {
	q := url.Values{
		"code":  []string{code},
		"total": []string{total.String()},
	}
	var dto CouponValidationDTO
	if err := c.do(ctx, http.MethodGet, "/api/promotions/validate", q, nil, &dto); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return &pricing.CouponResult{Err: couponMessage(apiErr)}, nil
		}
		return nil, err
	}
	if dto.Error != "" {
		return &pricing.CouponResult{Err: dto.Error}, nil
	}
	return &pricing.CouponResult{Discount: dto.Discount, Total: dto.Total}, nil
}

func couponMessage(apiErr *APIError) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return "invalid coupon code"
}
