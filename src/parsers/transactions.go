package parsers

import (
	"github.com/username/sellerprofit/src/logger"
	"github.com/username/sellerprofit/src/models"
)

// VariantLoader loads sale rows of a transaction export laid out as variant describes.
type VariantLoader struct {
	variant models.Variant
}

func NewTransactionLoader(variant models.Variant) *VariantLoader {
	return &VariantLoader{variant: variant}
}

// Load checks the required columns before reading any row, keeps only rows whose type
// equals the sale indicator, and derives each row's match key.
func (l *VariantLoader) Load(in Input) ([]models.TransactionRecord, error) {
	t, err := readTable(in)
	if err != nil {
		return nil, err
	}
	if missing := t.missing(l.variant.RequiredColumns); len(missing) > 0 {
		return nil, &SchemaError{Source: in.Name, Missing: missing}
	}

	cols := l.variant.Columns
	records := make([]models.TransactionRecord, 0, len(t.Rows))
	dropped := 0
	for _, row := range t.Rows {
		if t.value(row, cols.Type) != l.variant.SaleIndicator {
			dropped++
			continue
		}

		rawGross := t.value(row, cols.Gross)
		gross, err := ParseNonNegative(rawGross)
		if err != nil {
			return nil, &NumericFormatError{Source: in.Name, Row: row.Line, Column: cols.Gross, Value: rawGross, Err: err}
		}

		rec := models.TransactionRecord{
			Row:                row.Line,
			ProductDescription: t.value(row, cols.Description),
			GrossAmount:        gross,
		}
		if t.has(cols.SKU) {
			rec.SKU = t.value(row, cols.SKU)
		}
		if t.has(cols.OrderID) {
			rec.OrderID = t.value(row, cols.OrderID)
		}
		if t.has(cols.Date) {
			rec.SaleDate = t.value(row, cols.Date)
		}
		rec.MatchKey = DeriveMatchKey(l.variant.KeyStrategy, rec.SKU, rec.ProductDescription)
		if rec.MatchKey == "" {
			keyColumn, keyValue := cols.Description, rec.ProductDescription
			if l.variant.KeyStrategy == models.KeyDirectSKU {
				keyColumn, keyValue = cols.SKU, rec.SKU
			}
			return nil, &MatchKeyError{Source: in.Name, Row: row.Line, Column: keyColumn, Value: keyValue}
		}
		records = append(records, rec)
	}

	logger.L.Info("Transactions loaded", "source", in.Name, "variant", l.variant.Name, "sales", len(records), "droppedRows", dropped)
	return records, nil
}
