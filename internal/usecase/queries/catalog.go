package queries

import (
	"context"

	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

// Sort values accepted by the catalog endpoint.
const (
	SortPriceAsc  = "Sell_asc"
	SortPriceDesc = "Sell_desc"
)

type CatalogFilters struct {
	Categories    []string
	Subcategories []string
	Materials     []string
	Seasons       []string
	Styles        []string
}

type CatalogListParams struct {
	Page    int
	Limit   int
	Sort    string
	Filters CatalogFilters
}

// CatalogGateway is the gateway port for catalog reads.
type CatalogGateway interface {
	ListProducts(ctx context.Context, params CatalogListParams) (*shared.ProductPage, error)
	SearchProducts(ctx context.Context, query string) ([]shared.Product, error)
	GetProduct(ctx context.Context, id string) (*shared.Product, error)
	FilterOptions(ctx context.Context) (*shared.FilterOptions, error)
	HiddenGems(ctx context.Context, limit int) ([]shared.Product, error)
}

type CatalogQueries struct {
	gateway CatalogGateway
}

func NewCatalogQueries(gateway CatalogGateway) *CatalogQueries {
	return &CatalogQueries{gateway: gateway}
}

func (q *CatalogQueries) List(ctx context.Context, params CatalogListParams) (*shared.ProductPage, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 24
	}
	page, err := q.gateway.ListProducts(ctx, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}
	return page, nil
}

func (q *CatalogQueries) Search(ctx context.Context, query string) ([]shared.Product, error) {
	if query == "" {
		return nil, nil
	}
	products, err := q.gateway.SearchProducts(ctx, query)
	if err != nil {
		return nil, errs.Wrap(err, "product search failed")
	}
	return products, nil
}

func (q *CatalogQueries) Get(ctx context.Context, id string) (*shared.Product, error) {
	product, err := q.gateway.GetProduct(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load product")
	}
	return product, nil
}

func (q *CatalogQueries) FilterOptions(ctx context.Context) (*shared.FilterOptions, error) {
	options, err := q.gateway.FilterOptions(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load filter options")
	}
	return options, nil
}

func (q *CatalogQueries) HiddenGems(ctx context.Context, limit int) ([]shared.Product, error) {
	products, err := q.gateway.HiddenGems(ctx, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load hidden gems")
	}
	return products, nil
}
