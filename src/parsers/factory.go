package parsers

import (
	"fmt"
	"slices"
	"sort"

	"github.com/username/sellerprofit/src/models"
)

const (
	VariantAmazonEN       = "amazon-en"
	VariantAmazonES       = "amazon-es"
	VariantAmazonESOrders = "amazon-es-orders"
)

var variants = map[string]models.Variant{
	VariantAmazonEN: {
		Name:  VariantAmazonEN,
		Title: "Amazon transaction report (English columns) with a dated SKU cost list",
		Columns: models.TransactionColumns{
			Type:        "TRANSACTION_TYPE",
			OrderID:     "TRANSACTION_EVENT_ID",
			Description: "ITEM_DESCRIPTION",
			SKU:         "SELLER_SKU",
			Gross:       "TOTAL_ACTIVITY_VALUE_AMT_VAT_EXCL",
		},
		RequiredColumns: []string{"TRANSACTION_TYPE", "TRANSACTION_EVENT_ID", "ITEM_DESCRIPTION", "SELLER_SKU", "TOTAL_ACTIVITY_VALUE_AMT_VAT_EXCL"},
		SaleIndicator:   "SALE",
		KeyStrategy:     models.KeyDirectSKU,
		CostFormat:      models.CostDatedLines,
		ManualInput:     models.InputNumber,
	},
	VariantAmazonES: {
		Name:  VariantAmazonES,
		Title: "Amazon transaction report (Spanish columns), SKU at the end of the product details",
		Columns: models.TransactionColumns{
			Type:        "Tipo de transacción",
			OrderID:     "Id. de pedido",
			Description: "Detalles del producto",
			Gross:       "Total (EUR)",
			Date:        "Fecha",
		},
		RequiredColumns: []string{"Tipo de transacción", "Id. de pedido", "Detalles del producto", "Total (EUR)"},
		SaleIndicator:   "Pago del pedido",
		KeyStrategy:     models.KeySuffixExtract,
		CostFormat:      models.CostDatedLines,
		ManualInput:     models.InputNumber,
	},
	VariantAmazonESOrders: {
		Name:  VariantAmazonESOrders,
		Title: "Amazon transaction report (Spanish columns) matched by product name against monthly order reports",
		Columns: models.TransactionColumns{
			Type:        "Tipo de transacción",
			OrderID:     "Id. de pedido",
			Description: "Detalles del producto",
			Gross:       "Total (EUR)",
			Date:        "Fecha",
		},
		RequiredColumns: []string{"Tipo de transacción", "Detalles del producto", "Total (EUR)"},
		SaleIndicator:   "Pago del pedido",
		KeyStrategy:     models.KeyNormalizedName,
		CostFormat:      models.CostSKUSuffixTable,
		CostColumns: models.CostColumns{
			ProductName: "Nombre del producto",
			SKU:         "SKU del vendedor",
		},
		ManualInput: models.InputText,
	},
}

func GetVariant(name string) (models.Variant, error) {
	v, ok := variants[name]
	if !ok {
		return models.Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return cloneVariant(v), nil
}

// Variants lists every configured variant sorted by name.
func Variants() []models.Variant {
	out := make([]models.Variant, 0, len(variants))
	for _, v := range variants {
		out = append(out, cloneVariant(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// cloneVariant copies the slices of v so callers cannot edit the registry.
func cloneVariant(v models.Variant) models.Variant {
	v.RequiredColumns = slices.Clone(v.RequiredColumns)
	return v
}

// NewCostExtractor returns the cost-reference reader for variant.
func NewCostExtractor(variant models.Variant) (CostExtractor, error) {
	switch variant.CostFormat {
	case models.CostDatedLines:
		return NewDatedLineExtractor(), nil
	case models.CostSKUSuffixTable:
		return NewSKUSuffixExtractor(variant.CostColumns), nil
	default:
		return nil, fmt.Errorf("no cost extractor for format %q", variant.CostFormat)
	}
}
