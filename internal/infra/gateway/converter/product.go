// Package converter maps gateway wire DTOs onto the usecase read models.
package converter

import (
	"github.com/jinzhu/copier"

	"storefront/internal/infra/gateway"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

func ToProduct(dto gateway.ProductDTO) (shared.Product, error) {
	var p shared.Product
	if err := copier.Copy(&p, &dto); err != nil {
		return shared.Product{}, errs.Wrap(err, "failed to convert product dto")
	}
	return p, nil
}

func ToProducts(dtos []gateway.ProductDTO) ([]shared.Product, error) {
	out := make([]shared.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := ToProduct(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func ToProductPage(dto gateway.ProductPageDTO) (shared.ProductPage, error) {
	products, err := ToProducts(dto.Products)
	if err != nil {
		return shared.ProductPage{}, err
	}
	return shared.ProductPage{
		Products: products,
		Total:    dto.Total,
		Pages:    dto.Pages,
		Page:     dto.Page,
	}, nil
}

func ToFilterOptions(dto gateway.FilterOptionsDTO) shared.FilterOptions {
	return shared.FilterOptions(dto)
}
