package entity

import "github.com/shopspring/decimal"

type PromoKind string

const (
	PromoPercent  PromoKind = "percent"
	PromoFlat     PromoKind = "flat"
	PromoDelivery PromoKind = "delivery"
)

func (k PromoKind) Valid() bool {
	return k == PromoPercent || k == PromoFlat || k == PromoDelivery
}

// Offer is a promo code. MinOrder and ValidTill are shown to customers but
// not enforced at validation time.
type Offer struct {
	Model
	Code        string          `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Kind        PromoKind       `gorm:"column:discount_type;size:16;not null" json:"discount_type"`
	Value       decimal.Decimal `gorm:"column:discount_value;type:decimal(10,2);not null" json:"discount_value"`
	MinOrder    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"min_order"`
	ValidTill   string          `json:"valid_till"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	Tag         string          `json:"tag"`
}
