// Package adapter implements the usecase gateway ports on top of the HTTP
// client, translating wire DTOs into the usecase read models.
package adapter

import (
	"context"

	"storefront/internal/infra/gateway"
	"storefront/internal/infra/gateway/converter"
	"storefront/internal/usecase"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"
)

// API adapts *gateway.Client to the ports declared in the usecase layer.
// Ports whose types are already domain values (coupons, store config, chat,
// announcements) are satisfied by the client directly and need no adapting.
type API struct {
	client *gateway.Client
}

func New(client *gateway.Client) *API {
	return &API{client: client}
}

var (
	_ queries.CatalogGateway  = (*API)(nil)
	_ queries.TrackingGateway = (*API)(nil)
	_ usecase.OrderGateway    = (*API)(nil)
	_ usecase.AuthGateway     = (*API)(nil)
)

func (a *API) ListProducts(ctx context.Context, params queries.CatalogListParams) (*shared.ProductPage, error) {
	dto, err := a.client.ListProducts(ctx, gateway.ListProductsParams{
		Page:  params.Page,
		Limit: params.Limit,
		Sort:  params.Sort,
		Filters: gateway.ProductFilters{
			Categories:    params.Filters.Categories,
			Subcategories: params.Filters.Subcategories,
			Materials:     params.Filters.Materials,
			Seasons:       params.Filters.Seasons,
			Styles:        params.Filters.Styles,
		},
	})
	if err != nil {
		return nil, err
	}
	page, err := converter.ToProductPage(*dto)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *API) SearchProducts(ctx context.Context, query string) ([]shared.Product, error) {
	dtos, err := a.client.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	return converter.ToProducts(dtos)
}

func (a *API) GetProduct(ctx context.Context, id string) (*shared.Product, error) {
	dto, err := a.client.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	product, err := converter.ToProduct(*dto)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (a *API) FilterOptions(ctx context.Context) (*shared.FilterOptions, error) {
	dto, err := a.client.ProductFilters(ctx)
	if err != nil {
		return nil, err
	}
	options := converter.ToFilterOptions(*dto)
	return &options, nil
}

func (a *API) HiddenGems(ctx context.Context, limit int) ([]shared.Product, error) {
	dtos, err := a.client.HiddenGems(ctx, limit)
	if err != nil {
		return nil, err
	}
	return converter.ToProducts(dtos)
}

func (a *API) TrackOrder(ctx context.Context, orderNumber, phone string) (*shared.TrackedOrder, error) {
	dto, err := a.client.TrackOrder(ctx, orderNumber, phone)
	if err != nil {
		return nil, err
	}
	order := converter.ToTrackedOrder(*dto)
	return &order, nil
}

func (a *API) OrdersByPhone(ctx context.Context, phone string) ([]shared.TrackedOrder, error) {
	dtos, err := a.client.OrdersByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return converter.ToTrackedOrders(dtos), nil
}

func (a *API) CancelOrder(ctx context.Context, orderNumber, phone string) error {
	return a.client.CancelOrder(ctx, orderNumber, phone)
}

func (a *API) CreateOrder(ctx context.Context, submission usecase.OrderSubmission, idempotencyKey string) (*shared.OrderConfirmation, error) {
	req := gateway.CreateOrderRequest{
		TotalPrice: submission.TotalPrice,
		CouponCode: submission.CouponCode,
		Name:       submission.Name,
		Address:    submission.Address,
		Phone:      submission.Phone,
	}
	for _, line := range submission.Lines {
		req.Products = append(req.Products, gateway.OrderItemDTO{
			Product: line.ProductID,
			Qty:     line.Qty,
			Price:   line.Price,
		})
	}
	dto, err := a.client.CreateOrder(ctx, req, idempotencyKey)
	if err != nil {
		return nil, err
	}
	confirmation := converter.ToOrderConfirmation(*dto)
	return &confirmation, nil
}

func (a *API) Login(ctx context.Context, username, password string) (*shared.User, error) {
	dto, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return converter.ToUser(dto), nil
}

func (a *API) Register(ctx context.Context, input usecase.RegisterInput) (*shared.User, error) {
	dto, err := a.client.Register(ctx, gateway.RegisterRequest{
		Username:    input.Username,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
	})
	if err != nil {
		return nil, err
	}
	return converter.ToUser(dto), nil
}

func (a *API) Me(ctx context.Context) (*shared.User, error) {
	dto, err := a.client.Me(ctx)
	if err != nil {
		return nil, err
	}
	return converter.ToUser(dto), nil
}

func (a *API) Logout(ctx context.Context) error {
	return a.client.Logout(ctx)
}
