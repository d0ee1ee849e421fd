package queries

import (
	"context"

	"github.com/cockroachdb/errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/phone"
	"storefront/internal/usecase/shared"
)

// Order status groups as the tracking page presents them.
var (
	inProgressStatuses = map[string]bool{"pending": true, "paid": true, "processing": true, "shipped": true}
	completedStatuses  = map[string]bool{"delivered": true}
	cancelledStatuses  = map[string]bool{"cancelled": true, "refunded": true}
)

// TrackingGateway is the gateway port for unauthenticated order lookups,
// gated by phone-number possession rather than a session.
type TrackingGateway interface {
	TrackOrder(ctx context.Context, orderNumber, phone string) (*shared.TrackedOrder, error)
	OrdersByPhone(ctx context.Context, phone string) ([]shared.TrackedOrder, error)
	CancelOrder(ctx context.Context, orderNumber, phone string) error
}

type GroupedOrders struct {
	InProgress []shared.TrackedOrder
	Completed  []shared.TrackedOrder
	Cancelled  []shared.TrackedOrder
}

type TrackingQueries struct {
	gateway TrackingGateway
}

func NewTrackingQueries(gateway TrackingGateway) *TrackingQueries {
	return &TrackingQueries{gateway: gateway}
}

func (q *TrackingQueries) Track(ctx context.Context, orderNumber, phoneNumber string) (*shared.TrackedOrder, error) {
	normalized, err := requirePhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	order, err := q.gateway.TrackOrder(ctx, orderNumber, normalized)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Wrap(err, "failed to track order")
	}
	return order, nil
}

// ByPhone lists every order for the phone number, grouped the way the
// tracking page renders them.
func (q *TrackingQueries) ByPhone(ctx context.Context, phoneNumber string) (*GroupedOrders, error) {
	normalized, err := requirePhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	orders, err := q.gateway.OrdersByPhone(ctx, normalized)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}

	grouped := &GroupedOrders{}
	for _, o := range orders {
		switch {
		case completedStatuses[o.Status]:
			grouped.Completed = append(grouped.Completed, o)
		case cancelledStatuses[o.Status]:
			grouped.Cancelled = append(grouped.Cancelled, o)
		default:
			grouped.InProgress = append(grouped.InProgress, o)
		}
	}
	return grouped, nil
}

func (q *TrackingQueries) Cancel(ctx context.Context, orderNumber, phoneNumber string) error {
	normalized, err := requirePhone(phoneNumber)
	if err != nil {
		return err
	}
	if err := q.gateway.CancelOrder(ctx, orderNumber, normalized); err != nil {
		if isNotFound(err) {
			return errs.Mark(err, errs.ErrOrderNotFound)
		}
		return errs.Mark(err, errs.ErrOrderNotCancelable)
	}
	return nil
}

func requirePhone(value string) (string, error) {
	normalized := phone.Normalize(value)
	if !phone.IsValid(normalized) {
		return "", errs.ErrInvalidPhoneNumber
	}
	return normalized, nil
}

func isNotFound(err error) bool {
	type statusCarrier interface {
		error
		HTTPStatus() int
	}
	var sc statusCarrier
	return errors.As(err, &sc) && sc.HTTPStatus() == 404
}
