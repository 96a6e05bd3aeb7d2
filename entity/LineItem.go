package entity

import "github.com/shopspring/decimal"

// LineItem is one product entry of a cart or an order, keyed by ItemID.
type LineItem struct {
	ItemID     string          `json:"id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Image      string          `json:"image"`
	Restaurant string          `json:"restaurant"`
}

func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
