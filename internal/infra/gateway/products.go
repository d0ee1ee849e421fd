package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ProductFilters collects the catalog facet filters. Each facet is sent as a
// CSV query param, matching what the server parses.
type ProductFilters struct {
	Categories    []string
	Subcategories []string
	Materials     []string
	Seasons       []string
	Styles        []string
}

type ListProductsParams struct {
	Page    int
	Limit   int
	Sort    string // "Sell_asc" or "Sell_desc"
	Filters ProductFilters
}

func (p ListProductsParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	setCSV(q, "Category", p.Filters.Categories)
	setCSV(q, "Subcategory", p.Filters.Subcategories)
	setCSV(q, "Material", p.Filters.Materials)
	setCSV(q, "Season", p.Filters.Seasons)
	setCSV(q, "Style", p.Filters.Styles)
	return q
}

func setCSV(q url.Values, key string, values []string) {
	if len(values) > 0 {
		q.Set(key, strings.Join(values, ","))
	}
}

func (c *Client) ListProducts(ctx context.Context, params ListProductsParams) (*ProductPageDTO, error) {
	var page ProductPageDTO
	if err := c.do(ctx, http.MethodGet, "/api/products", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]ProductDTO, error) {
	q := url.Values{"q": []string{query}}
	var products []ProductDTO
	if err := c.do(ctx, http.MethodGet, "/api/products/search", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*ProductDTO, error) {
	var product ProductDTO
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ProductFilters(ctx context.Context) (*FilterOptionsDTO, error) {
	var options FilterOptionsDTO
	if err := c.do(ctx, http.MethodGet, "/api/products/filters", nil, nil, &options); err != nil {
		return nil, err
	}
	return &options, nil
}

func (c *Client) HiddenGems(ctx context.Context, limit int) ([]ProductDTO, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var products []ProductDTO
	if err := c.do(ctx, http.MethodGet, "/api/products/hidden-gems", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
