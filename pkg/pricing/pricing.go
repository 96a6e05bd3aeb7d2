// Package pricing computes cart and order totals.
//
// The delivery fee, the free-delivery threshold and the tax rate live in a
// single Rules value. Promotions that waive delivery read the fee from the same
// Rules, so the two can never disagree.
package pricing

import "github.com/shopspring/decimal"

var (
	DefaultDeliveryFee           = decimal.RequireFromString("4.99")
	DefaultFreeDeliveryThreshold = decimal.NewFromInt(30)
	DefaultTaxPercent            = decimal.NewFromInt(8)
)

var hundred = decimal.NewFromInt(100)

// Line is one priced entry of a cart or order.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Rules holds the platform pricing settings.
type Rules struct {
	DeliveryFee           decimal.Decimal
	FreeDeliveryThreshold decimal.Decimal
	TaxRate               decimal.Decimal // fraction, 0.08 for 8%
}

type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

func DefaultRules() Rules {
	return NewRules(DefaultDeliveryFee, DefaultFreeDeliveryThreshold, DefaultTaxPercent)
}

// NewRules builds Rules from a tax rate expressed in percent.
func NewRules(deliveryFee, freeDeliveryThreshold, taxPercent decimal.Decimal) Rules {
	return Rules{
		DeliveryFee:           deliveryFee,
		FreeDeliveryThreshold: freeDeliveryThreshold,
		TaxRate:               taxPercent.Div(hundred),
	}
}

// DeliveryFeeFor returns the fee charged for a subtotal. Delivery is free only
// when the subtotal is strictly above the threshold.
func (r Rules) DeliveryFeeFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(r.FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return r.DeliveryFee
}

func (r Rules) TaxFor(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(r.TaxRate).Round(2)
}

// Subtotal is the unrounded sum of unit price times quantity.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// ComputeTotals prices lines and applies discount. A negative discount counts
// as zero and a discount larger than subtotal+fee+tax is reduced to that
// amount, so Total never drops below zero and Totals.Discount is always the
// amount actually applied.
func (r Rules) ComputeTotals(lines []Line, discount decimal.Decimal) Totals {
	subtotal := Subtotal(lines)
	fee := r.DeliveryFeeFor(subtotal)
	tax := r.TaxFor(subtotal)

	gross := subtotal.Add(fee).Add(tax)
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(gross) {
		discount = gross
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Discount:    discount,
		Total:       gross.Sub(discount).Round(2),
	}
}
