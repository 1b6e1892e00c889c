package processors

import (
	"github.com/shopspring/decimal"

	"github.com/username/sellerprofit/src/models"
)

type costReconcilerImpl struct{}

func NewCostReconciler() CostReconciler {
	return &costReconcilerImpl{}
}

// Reconcile looks every record's match key up in costs. Records without a match stay
// unresolved and their key is added once to the worklist, in first-seen order.
// Same input, same output: nothing outside the arguments is read or written.
func (r *costReconcilerImpl) Reconcile(records []models.TransactionRecord, costs *models.CostTable) ([]models.ReconciledRecord, []models.WorkItem) {
	reconciled := make([]models.ReconciledRecord, 0, len(records))
	var worklist []models.WorkItem
	position := make(map[string]int)

	for _, rec := range records {
		out := models.ReconciledRecord{TransactionRecord: rec}
		if cost, ok := costs.Lookup(rec.MatchKey); ok {
			out.UnitCost = decimal.NewNullDecimal(cost)
			out.CostSource = models.CostSourceTable
		} else if i, seen := position[rec.MatchKey]; seen {
			worklist[i].Records++
		} else {
			position[rec.MatchKey] = len(worklist)
			worklist = append(worklist, models.WorkItem{Key: rec.MatchKey, Label: rec.ProductDescription, Records: 1})
		}
		reconciled = append(reconciled, out)
	}
	return reconciled, worklist
}
