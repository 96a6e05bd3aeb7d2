package entity

import "github.com/shopspring/decimal"

type MenuItem struct {
	Model
	ItemID      string          `gorm:"size:64;uniqueIndex;not null" json:"item_id"`
	Name        string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"size:64;index" json:"category"`
	Image       string          `json:"image"`
	Restaurant  string          `json:"restaurant"`
	Rating      float64         `json:"rating"`
	Badge       string          `json:"badge"`
	Description string          `json:"description"`
}

// Line prices qty units of the item at its current catalog price.
func (m *MenuItem) Line(qty int) LineItem {
	return LineItem{
		ItemID:     m.ItemID,
		Name:       m.Name,
		UnitPrice:  m.Price,
		Quantity:   qty,
		Image:      m.Image,
		Restaurant: m.Restaurant,
	}
}
