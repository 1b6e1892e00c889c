package parsers

import (
	"strings"

	"github.com/username/sellerprofit/src/models"
	"golang.org/x/text/cases"
)

// NormalizeName case-folds and trims a product name so exports and order reports compare equal.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// ExtractSuffixKey returns the trimmed text after the last hyphen of description,
// or the whole trimmed description when it has no hyphen.
func ExtractSuffixKey(description string) string {
	if i := strings.LastIndex(description, "-"); i >= 0 {
		return strings.TrimSpace(description[i+1:])
	}
	return strings.TrimSpace(description)
}

// DeriveMatchKey builds the cost-table key of a sale row for the given strategy.
func DeriveMatchKey(strategy models.KeyStrategy, sku, description string) string {
	switch strategy {
	case models.KeySuffixExtract:
		return ExtractSuffixKey(description)
	case models.KeyNormalizedName:
		return NormalizeName(description)
	default:
		return strings.TrimSpace(sku)
	}
}
