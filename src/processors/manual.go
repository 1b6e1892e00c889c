package processors

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/username/sellerprofit/src/models"
	"github.com/username/sellerprofit/src/parsers"
	"github.com/username/sellerprofit/src/security/validation"
)

const (
	manualSource     = "manual entry"
	ManualCostMin    = "0.00"
	ManualCostFormat = "%.2f"
)

type manualCostCollectorImpl struct{}

func NewManualCostCollector() ManualCostCollector {
	return &manualCostCollectorImpl{}
}

// Collect builds one prompt per worklist key and applies every non-empty value from
// source to all records sharing that key. A key without a value keeps its records
// unresolved; there is no implicit zero. A malformed or negative value fails the
// whole pass so the user can correct it.
func (c *manualCostCollectorImpl) Collect(
	records []models.ReconciledRecord,
	worklist []models.WorkItem,
	source ManualCostSource,
	kind models.InputKind,
) ([]models.ReconciledRecord, []models.ManualPrompt, error) {
	prompts := make([]models.ManualPrompt, 0, len(worklist))
	entered := make(map[string]decimal.Decimal, len(worklist))

	for _, item := range worklist {
		prompt := models.ManualPrompt{
			Key:       item.Key,
			Label:     validation.StripUnprintable(item.Label),
			InputKind: kind,
			Min:       ManualCostMin,
			Format:    ManualCostFormat,
			Records:   item.Records,
		}
		if source != nil {
			if raw, ok := source.Lookup(item.Key); ok {
				prompt.Value = raw
				if strings.TrimSpace(raw) != "" {
					cost, err := parsers.ParseNonNegative(raw)
					if err != nil {
						return nil, nil, &parsers.NumericFormatError{Source: manualSource, Key: item.Key, Value: raw, Err: err}
					}
					entered[item.Key] = cost
					prompt.Resolved = true
				}
			}
		}
		prompts = append(prompts, prompt)
	}

	out := make([]models.ReconciledRecord, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Resolved() {
			continue
		}
		if cost, ok := entered[out[i].MatchKey]; ok {
			out[i].UnitCost = decimal.NewNullDecimal(cost)
			out[i].CostSource = models.CostSourceManual
		}
	}
	return out, prompts, nil
}
