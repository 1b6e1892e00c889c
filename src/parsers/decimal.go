package parsers

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errNotANumber = errors.New("not a decimal number")
	errNegative   = errors.New("negative values are not allowed")

	plainDecimalRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// ParseCommaDecimal converts a locale-formatted number ("12,50" or "12.50") to a decimal.
// Exponents, thousand separators and currency signs are rejected rather than guessed.
func ParseCommaDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "\u00A0", ""))
	s = strings.ReplaceAll(s, ",", ".")
	if !plainDecimalRe.MatchString(s) {
		return decimal.Decimal{}, errNotANumber
	}
	return decimal.NewFromString(s)
}

// ParseNonNegative is ParseCommaDecimal plus the sign check every amount and cost must pass.
func ParseNonNegative(raw string) (decimal.Decimal, error) {
	d, err := ParseCommaDecimal(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errNegative
	}
	return d, nil
}
