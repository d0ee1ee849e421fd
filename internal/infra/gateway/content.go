package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront/internal/domain/announcement"
	"storefront/internal/domain/pricing"
)

// StoreConfig fetches the store-wide discount and shipping descriptor.
func (c *Client) StoreConfig(ctx context.Context) (pricing.StoreDiscount, pricing.ShippingPolicy, error) {
	var dto StoreConfigDTO
	if err := c.do(ctx, http.MethodGet, "/api/store/discount", nil, nil, &dto); err != nil {
		return pricing.StoreDiscount{}, pricing.ShippingPolicy{}, err
	}
	discount := pricing.StoreDiscount{
		Active:   dto.Active,
		Type:     pricing.DiscountType(dto.Type),
		Value:    dto.Value,
		MinTotal: dto.MinTotal,
	}
	return discount, toShippingPolicy(dto.Shipping), nil
}

func toShippingPolicy(dto *ShippingFeeDTO) pricing.ShippingPolicy {
	if dto == nil {
		return pricing.ShippingPolicy{}
	}
	return pricing.ShippingPolicy{Enabled: dto.Enabled, Amount: dto.Amount}
}

// Announcements tolerates both shapes the backend emits: a bare object or an
// array of announcements.
func (c *Client) Announcements(ctx context.Context) ([]announcement.Announcement, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/announcements", nil, nil, &raw); err != nil {
		return nil, err
	}

	var dtos []AnnouncementDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		var single AnnouncementDTO
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}
		dtos = []AnnouncementDTO{single}
	}

	out := make([]announcement.Announcement, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, announcement.Announcement{
			ID:       dto.ID,
			Text:     dto.Text,
			Href:     dto.Href,
			Active:   dto.Active,
			StartsAt: dto.StartsAt,
			EndsAt:   dto.EndsAt,
		})
	}
	return out, nil
}

func (c *Client) Hero(ctx context.Context) (*HeroDTO, error) {
	var hero HeroDTO
	if err := c.do(ctx, http.MethodGet, "/api/hero", nil, nil, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}
