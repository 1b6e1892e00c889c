package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimals shown for money and percentages.
const DisplayPlaces = 2

// FormatDecimal renders d rounded half-up to places with a dot separator, or "" when d is null.
func FormatDecimal(d decimal.NullDecimal, places int32) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(places)
}

// RoundedFloat returns d rounded to places as a float64 for numeric spreadsheet cells.
func RoundedFloat(d decimal.Decimal, places int32) float64 {
	f, _ := d.Round(places).Float64()
	return f
}
