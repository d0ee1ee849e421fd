// Package shared holds the read models exchanged between the usecase layer
// and the gateway adapters, so neither side depends on the other's types.
package shared

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/cart"
)

type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Stock       *int
	Category    string
	Subcategory string
	Material    string
	Season      string
	Style       string
	ImageURL    string
	Images      []string
}

// CartProduct narrows a catalog product to what the cart engine needs.
func (p Product) CartProduct() cart.Product {
	return cart.Product{
		ID:             p.ID,
		Name:           p.Name,
		UnitPrice:      p.Price,
		AvailableStock: p.Stock,
	}
}

type ProductPage struct {
	Products []Product
	Total    int
	Pages    int
	Page     int
}

type FilterOptions struct {
	Categories    []string
	Subcategories []string
	Materials     []string
	Seasons       []string
	Styles        []string
}

type OrderLine struct {
	ProductID string
	Qty       int
	Price     decimal.Decimal
	Name      string
	ImageURL  string
}

type TrackedOrder struct {
	OrderNumber string
	Status      string
	TotalPrice  decimal.Decimal
	ShippingFee *decimal.Decimal
	CreatedAt   *time.Time
	Lines       []OrderLine
}

type OrderConfirmation struct {
	OrderNumber string
	Status      string
	TotalPrice  decimal.Decimal
	ShippingFee *decimal.Decimal
	Name        string
	Phone       string
	Address     string
}

type User struct {
	ID          string
	Username    string
	PhoneNumber string
	Address     string
}
