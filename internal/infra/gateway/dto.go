package gateway

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire shapes as the storefront API serves them. Field names follow the
// server's mixed-case payloads, so mapping to domain types goes through the
// converter package rather than leaking these tags upward.

type ProductDTO struct {
	ID          string          `json:"_id"`
	Name        string          `json:"Name"`
	Sell        decimal.Decimal `json:"Sell" copier:"Price"`
	QTY         *int            `json:"QTY" copier:"Stock"`
	Category    string          `json:"Category"`
	Subcategory string          `json:"Subcategory"`
	Material    string          `json:"Material"`
	Season      string          `json:"Season"`
	Style       string          `json:"Style"`
	ImageURL    string          `json:"imageUrl"`
	Images      []string        `json:"images"`
}

type ProductPageDTO struct {
	Products []ProductDTO `json:"products"`
	Total    int          `json:"total"`
	Pages    int          `json:"pages"`
	Page     int          `json:"page"`
}

type FilterOptionsDTO struct {
	Categories    []string `json:"categories"`
	Subcategories []string `json:"subcategories"`
	Materials     []string `json:"materials"`
	Seasons       []string `json:"seasons"`
	Styles        []string `json:"styles"`
}

type OrderItemDTO struct {
	Product string          `json:"product"`
	Qty     int             `json:"qty"`
	Price   decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	Products   []OrderItemDTO  `json:"products"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CouponCode string          `json:"couponCode,omitempty"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	Phone      string          `json:"phone"`
}

type OrderUserDetailsDTO struct {
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"Address"`
}

type OrderConfirmationDTO struct {
	OrderNumber string              `json:"orderNumber"`
	Status      string              `json:"status"`
	TotalPrice  decimal.Decimal     `json:"totalPrice"`
	ShippingFee *decimal.Decimal    `json:"shippingFee"`
	UserDetails OrderUserDetailsDTO `json:"userDetails"`
}

type TrackedProductDTO struct {
	Product        string          `json:"product"`
	Qty            int             `json:"qty"`
	Price          decimal.Decimal `json:"price"`
	ProductDetails *ProductDTO     `json:"productDetails"`
}

type TrackedOrderDTO struct {
	OrderNumber string              `json:"orderNumber"`
	Status      string              `json:"status"`
	TotalPrice  decimal.Decimal     `json:"totalPrice"`
	ShippingFee *decimal.Decimal    `json:"shippingFee"`
	CreatedAt   *time.Time          `json:"createdAt"`
	Products    []TrackedProductDTO `json:"products"`
	UserDetails OrderUserDetailsDTO `json:"userDetails"`
}

type CouponValidationDTO struct {
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Error    string          `json:"error"`
}

type StoreConfigDTO struct {
	Active   bool            `json:"active"`
	Type     string          `json:"type"`
	Value    decimal.Decimal `json:"value"`
	MinTotal decimal.Decimal `json:"minTotal"`
	Shipping *ShippingFeeDTO `json:"shipping"`
}

type ShippingFeeDTO struct {
	Enabled bool            `json:"enabled"`
	Amount  decimal.Decimal `json:"amount"`
}

type AnnouncementDTO struct {
	ID       string     `json:"_id"`
	Text     string     `json:"text"`
	Href     string     `json:"href"`
	Active   bool       `json:"active"`
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
}

type HeroDTO struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	Href     string `json:"href"`
}

type ChatMessageDTO struct {
	ID        string     `json:"_id"`
	Sender    string     `json:"sender"`
	Body      string     `json:"body"`
	CreatedAt *time.Time `json:"createdAt"`
}

type ChatSessionDTO struct {
	ID            string           `json:"_id"`
	Status        string           `json:"status"`
	CustomerPhone string           `json:"customerPhone"`
	Messages      []ChatMessageDTO `json:"messages"`
}

type UserDTO struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"Address"`
}
