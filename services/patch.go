package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setMoney(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = v.Round(2)
	}
}
