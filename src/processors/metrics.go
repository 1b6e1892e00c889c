package processors

import (
	"github.com/shopspring/decimal"

	"github.com/username/sellerprofit/src/models"
)

// PercentPlaces is the division precision of ROI and margin. Values are kept at this
// precision and rounded once, for display, by the exporters.
const PercentPlaces = 16

var hundred = decimal.NewFromInt(100)

type metricsCalculatorImpl struct{}

func NewMetricsCalculator() MetricsCalculator {
	return &metricsCalculatorImpl{}
}

// Calculate fills the metrics of a resolved record. Net profit is exact; ROI is null when
// the cost is zero and margin is null when the gross amount is zero. Unresolved records
// come back with all metrics null.
func (m *metricsCalculatorImpl) Calculate(rec models.ReconciledRecord) models.ReconciledRecord {
	rec.NetProfit = decimal.NullDecimal{}
	rec.ROIPercent = decimal.NullDecimal{}
	rec.MarginPercent = decimal.NullDecimal{}
	if !rec.Resolved() {
		return rec
	}

	cost := rec.UnitCost.Decimal
	net := rec.GrossAmount.Sub(cost)
	rec.NetProfit = decimal.NewNullDecimal(net)
	rec.ROIPercent = percentOf(net, cost)
	rec.MarginPercent = percentOf(net, rec.GrossAmount)
	return rec
}

// CalculateAll computes metrics for every record and refuses to run while any is unresolved.
func (m *metricsCalculatorImpl) CalculateAll(records []models.ReconciledRecord) ([]models.ReconciledRecord, error) {
	if keys := unresolvedKeys(records); len(keys) > 0 {
		return nil, &UnresolvedCostError{Keys: keys}
	}
	return m.CalculateResolved(records), nil
}

// CalculateResolved computes metrics where a cost is known and leaves the rest null.
func (m *metricsCalculatorImpl) CalculateResolved(records []models.ReconciledRecord) []models.ReconciledRecord {
	out := make([]models.ReconciledRecord, len(records))
	for i, rec := range records {
		out[i] = m.Calculate(rec)
	}
	return out
}

func (m *metricsCalculatorImpl) Summarize(records []models.ReconciledRecord) models.MetricsSummary {
	var s models.MetricsSummary
	for _, rec := range records {
		if !rec.Resolved() {
			s.UnresolvedRecords++
			continue
		}
		s.ResolvedRecords++
		s.TotalGross = s.TotalGross.Add(rec.GrossAmount)
		s.TotalCost = s.TotalCost.Add(rec.UnitCost.Decimal)
	}
	s.TotalNetProfit = s.TotalGross.Sub(s.TotalCost)
	if s.ResolvedRecords > 0 {
		s.ROIPercent = percentOf(s.TotalNetProfit, s.TotalCost)
		s.MarginPercent = percentOf(s.TotalNetProfit, s.TotalGross)
	}
	return s
}

func percentOf(part, whole decimal.Decimal) decimal.NullDecimal {
	if whole.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(part.Mul(hundred).DivRound(whole, PercentPlaces))
}

func unresolvedKeys(records []models.ReconciledRecord) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, rec := range records {
		if rec.Resolved() || seen[rec.MatchKey] {
			continue
		}
		seen[rec.MatchKey] = true
		keys = append(keys, rec.MatchKey)
	}
	return keys
}
