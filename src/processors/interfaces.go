package processors

import (
	"github.com/username/sellerprofit/src/models"
)

// CostReconciler attaches table costs to sale records and lists keys that have none.
type CostReconciler interface {
	Reconcile(records []models.TransactionRecord, costs *models.CostTable) ([]models.ReconciledRecord, []models.WorkItem)
}

// ManualCostSource supplies values entered by a person, keyed by match key.
type ManualCostSource interface {
	Lookup(key string) (string, bool)
}

// ManualCostCollector applies manually entered costs to unresolved records.
type ManualCostCollector interface {
	Collect(records []models.ReconciledRecord, worklist []models.WorkItem, source ManualCostSource, kind models.InputKind) ([]models.ReconciledRecord, []models.ManualPrompt, error)
}

// MetricsCalculator computes net profit, ROI and margin.
type MetricsCalculator interface {
	Calculate(record models.ReconciledRecord) models.ReconciledRecord
	CalculateAll(records []models.ReconciledRecord) ([]models.ReconciledRecord, error)
	CalculateResolved(records []models.ReconciledRecord) []models.ReconciledRecord
	Summarize(records []models.ReconciledRecord) models.MetricsSummary
}
