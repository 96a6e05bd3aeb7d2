package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setting is a single row of admin-editable platform settings.
type Setting struct {
	ID                    uint            `gorm:"primaryKey" json:"-"`
	PlatformName          string          `json:"platform_name"`
	DeliveryFee           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"delivery_fee"`
	FreeDeliveryThreshold decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"free_delivery_threshold"`
	TaxPercent            decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tax_percent"`
	ContactEmail          string          `json:"contact_email"`
	UpdatedAt             time.Time       `json:"updated_at"`
}
