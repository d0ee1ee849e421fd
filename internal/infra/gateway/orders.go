package gateway

import (
	"context"
	"net/http"
	"net/url"
)

const idempotencyHeader = "Idempotency-Key"

// CreateOrder submits the checkout snapshot. The idempotency key lets the
// server dedupe a replayed submission after a network failure.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest, idempotencyKey string) (*OrderConfirmationDTO, error) {
	var confirmation OrderConfirmationDTO
	err := c.doWithHeaders(ctx, http.MethodPost, "/api/orders", nil, req, &confirmation, map[string]string{
		idempotencyHeader: idempotencyKey,
	})
	if err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func (c *Client) TrackOrder(ctx context.Context, orderNumber, phone string) (*TrackedOrderDTO, error) {
	q := url.Values{"phone": []string{phone}}
	var order TrackedOrderDTO
	if err := c.do(ctx, http.MethodGet, "/api/orders/track/"+url.PathEscape(orderNumber), q, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) OrdersByPhone(ctx context.Context, phone string) ([]TrackedOrderDTO, error) {
	q := url.Values{"phone": []string{phone}}
	var resp struct {
		Orders []TrackedOrderDTO `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/orders/track", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderNumber, phone string) error {
	body := map[string]string{"phone": phone}
	return c.do(ctx, http.MethodPost, "/api/orders/track/"+url.PathEscape(orderNumber)+"/cancel", nil, body, nil)
}
