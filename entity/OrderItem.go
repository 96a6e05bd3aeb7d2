package entity

import "github.com/shopspring/decimal"

// OrderItem is a denormalized copy of a cart line taken at checkout. It never
// references the menu table.
type OrderItem struct {
	ID       uint `gorm:"primaryKey" json:"-"`
	OrderRef uint `gorm:"index;not null" json:"-"`

	ItemID     string          `gorm:"size:64;not null" json:"id"`
	Name       string          `gorm:"not null" json:"name"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Image      string          `json:"image"`
	Restaurant string          `json:"restaurant"`
}

func SnapshotLine(l LineItem) OrderItem {
	return OrderItem{
		ItemID:     l.ItemID,
		Name:       l.Name,
		UnitPrice:  l.UnitPrice,
		Quantity:   l.Quantity,
		Image:      l.Image,
		Restaurant: l.Restaurant,
	}
}

func (oi OrderItem) Line() LineItem {
	return LineItem{
		ItemID:     oi.ItemID,
		Name:       oi.Name,
		UnitPrice:  oi.UnitPrice,
		Quantity:   oi.Quantity,
		Image:      oi.Image,
		Restaurant: oi.Restaurant,
	}
}
