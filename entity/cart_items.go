package entity

import "github.com/shopspring/decimal"

// CartItem rows are ordered by ID, which keeps insertion order.
type CartItem struct {
	Model
	CartID uint `gorm:"not null;uniqueIndex:idx_cart_items_cart_item" json:"-"`

	ItemID     string          `gorm:"size:64;not null;uniqueIndex:idx_cart_items_cart_item" json:"id"`
	Name       string          `gorm:"not null" json:"name"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Image      string          `json:"image"`
	Restaurant string          `json:"restaurant"`
}

func NewCartItem(cartID uint, l LineItem) CartItem {
	return CartItem{
		CartID:     cartID,
		ItemID:     l.ItemID,
		Name:       l.Name,
		UnitPrice:  l.UnitPrice,
		Quantity:   l.Quantity,
		Image:      l.Image,
		Restaurant: l.Restaurant,
	}
}

func (ci CartItem) Line() LineItem {
	return LineItem{
		ItemID:     ci.ItemID,
		Name:       ci.Name,
		UnitPrice:  ci.UnitPrice,
		Quantity:   ci.Quantity,
		Image:      ci.Image,
		Restaurant: ci.Restaurant,
	}
}
