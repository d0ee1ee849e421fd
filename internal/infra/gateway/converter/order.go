package converter

import (
	"storefront/internal/infra/gateway"
	"storefront/internal/usecase/shared"
)

func ToTrackedOrder(dto gateway.TrackedOrderDTO) shared.TrackedOrder {
	order := shared.TrackedOrder{
		OrderNumber: dto.OrderNumber,
		Status:      dto.Status,
		TotalPrice:  dto.TotalPrice,
		ShippingFee: dto.ShippingFee,
		CreatedAt:   dto.CreatedAt,
	}
	for _, p := range dto.Products {
		line := shared.OrderLine{
			ProductID: p.Product,
			Qty:       p.Qty,
			Price:     p.Price,
		}
		if p.ProductDetails != nil {
			line.Name = p.ProductDetails.Name
			line.ImageURL = p.ProductDetails.ImageURL
		}
		order.Lines = append(order.Lines, line)
	}
	return order
}

func ToTrackedOrders(dtos []gateway.TrackedOrderDTO) []shared.TrackedOrder {
	out := make([]shared.TrackedOrder, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, ToTrackedOrder(dto))
	}
	return out
}

func ToOrderConfirmation(dto gateway.OrderConfirmationDTO) shared.OrderConfirmation {
	return shared.OrderConfirmation{
		OrderNumber: dto.OrderNumber,
		Status:      dto.Status,
		TotalPrice:  dto.TotalPrice,
		ShippingFee: dto.ShippingFee,
		Name:        dto.UserDetails.Username,
		Phone:       dto.UserDetails.PhoneNumber,
		Address:     dto.UserDetails.Address,
	}
}

func ToUser(dto *gateway.UserDTO) *shared.User {
	if dto == nil {
		return nil
	}
	return &shared.User{
		ID:          dto.ID,
		Username:    dto.Username,
		PhoneNumber: dto.PhoneNumber,
		Address:     dto.Address,
	}
}
