//go:build unit

package builder

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/cart"
	"storefront/internal/infra/gateway"
	"storefront/internal/usecase/shared"
)

type ProductBuilder struct {
	ID    string
	Name  string
	Price int64
	Stock *int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:    gofakeit.UUID(),
		Name:  gofakeit.ProductName(),
		Price: int64(gofakeit.Number(50, 5000)),
	}
}

func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithPrice(price int64) *ProductBuilder {
	b.Price = price
	return b
}

func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.Stock = &stock
	return b
}

func (b *ProductBuilder) WithoutStock() *ProductBuilder {
	b.Stock = nil
	return b
}

func (b *ProductBuilder) BuildDomain() cart.Product {
	return cart.Product{
		ID:             b.ID,
		Name:           b.Name,
		UnitPrice:      decimal.NewFromInt(b.Price),
		AvailableStock: b.Stock,
	}
}

func (b *ProductBuilder) BuildShared() shared.Product {
	return shared.Product{
		ID:    b.ID,
		Name:  b.Name,
		Price: decimal.NewFromInt(b.Price),
		Stock: b.Stock,
	}
}

func (b *ProductBuilder) BuildDTO() gateway.ProductDTO {
	return gateway.ProductDTO{
		ID:   b.ID,
		Name: b.Name,
		Sell: decimal.NewFromInt(b.Price),
		QTY:  b.Stock,
	}
}
