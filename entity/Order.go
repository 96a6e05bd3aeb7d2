package entity

import "github.com/shopspring/decimal"

type Order struct {
	Model
	OrderID string `gorm:"size:16;uniqueIndex;not null" json:"order_id"`
	UserID  string `gorm:"size:64;index;not null" json:"user_id"`

	Items        []OrderItem `gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE;" json:"items"`
	ItemsSummary string      `json:"items_summary"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"delivery_fee"`
	Tax         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	PromoCode   string          `gorm:"size:50" json:"promo_code,omitempty"`

	Status OrderStatus `gorm:"size:32;index;not null" json:"status"`

	// delivery details
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"payment_method"`
	Restaurant    string `json:"restaurant"`
}
