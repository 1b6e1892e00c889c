package parsers

import (
	"regexp"

	"github.com/username/sellerprofit/src/logger"
	"github.com/username/sellerprofit/src/models"
)

// skuCostRe finds the "- 12,34" cost embedded in a seller SKU such as "MOUSE-BLK - 12,34".
var skuCostRe = regexp.MustCompile(`-\s*([0-9]+,[0-9]+)`)

// SKUSuffixExtractor reads order reports whose seller SKU carries the unit cost.
// Entries are keyed by the normalized product name.
type SKUSuffixExtractor struct {
	columns models.CostColumns
}

func NewSKUSuffixExtractor(columns models.CostColumns) *SKUSuffixExtractor {
	return &SKUSuffixExtractor{columns: columns}
}

func (e *SKUSuffixExtractor) Extract(in Input) (*models.CostTable, error) {
	t, err := readTable(in)
	if err != nil {
		return nil, err
	}
	if missing := t.missing([]string{e.columns.SKU, e.columns.ProductName}); len(missing) > 0 {
		return nil, &SchemaError{Source: in.Name, Missing: missing}
	}

	costs := models.NewCostTable()
	skipped, replaced := 0, 0
	for _, row := range t.Rows {
		sku := t.value(row, e.columns.SKU)
		matches := skuCostRe.FindStringSubmatch(sku)
		if matches == nil {
			skipped++
			continue
		}
		cost, err := ParseNonNegative(matches[1])
		if err != nil {
			return nil, &NumericFormatError{Source: in.Name, Row: row.Line, Column: e.columns.SKU, Value: matches[1], Err: err}
		}
		key := NormalizeName(t.value(row, e.columns.ProductName))
		if key == "" {
			skipped++
			logger.L.Debug("Order report row without product name skipped", "source", in.Name, "line", row.Line)
			continue
		}
		if costs.Set(key, cost) {
			replaced++
			logger.L.Debug("Product repeated in order report, keeping later cost", "source", in.Name, "key", key, "line", row.Line)
		}
	}

	logger.L.Info("Order report costs extracted", "source", in.Name, "entries", costs.Len(), "skippedRows", skipped, "overwritten", replaced)
	return costs, nil
}

// ExtractAll runs extractor over every input in order and merges the tables, later files winning.
// The first failing input aborts the whole extraction.
func ExtractAll(extractor CostExtractor, inputs []Input) (*models.CostTable, error) {
	if len(inputs) == 0 {
		return nil, &SourceFormatError{Source: "cost reference", Err: ErrEmptySource}
	}
	merged := models.NewCostTable()
	for _, in := range inputs {
		costs, err := extractor.Extract(in)
		if err != nil {
			return nil, err
		}
		if n := merged.Merge(costs); n > 0 {
			logger.L.Debug("Cost source overrides earlier entries", "source", in.Name, "overwritten", n)
		}
	}
	return merged, nil
}
