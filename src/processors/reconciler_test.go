package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/sellerprofit/src/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sale(row int, key, desc, gross string) models.TransactionRecord {
	return models.TransactionRecord{Row: row, MatchKey: key, ProductDescription: desc, GrossAmount: dec(gross)}
}

func costTable(pairs ...string) *models.CostTable {
	t := models.NewCostTable()
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Set(pairs[i], dec(pairs[i+1]))
	}
	return t
}

func TestReconcileExactMatch(t *testing.T) {
	records := []models.TransactionRecord{
		sale(2, "SKU123", "Wireless Mouse", "29.99"),
		sale(3, "HUB-7", "USB Hub", "15.50"),
		sale(4, "MISSING", "Mystery item", "5.00"),
		sale(5, "sku123", "Lowercase sku", "29.99"),
		sale(6, "MISSING", "Mystery item again", "6.00"),
	}
	costs := costTable("SKU123", "12.50", "HUB-7", "4.00")

	reconciled, worklist := NewCostReconciler().Reconcile(records, costs)

	require.Len(t, reconciled, 5)
	assert.True(t, reconciled[0].Resolved())
	assert.True(t, reconciled[0].UnitCost.Decimal.Equal(dec("12.50")))
	assert.Equal(t, models.CostSourceTable, reconciled[0].CostSource)
	assert.True(t, reconciled[1].Resolved())
	assert.False(t, reconciled[2].Resolved())
	assert.False(t, reconciled[3].Resolved(), "matching is exact, no case folding beyond the key derivation")
	assert.False(t, reconciled[4].Resolved())

	assert.Equal(t, []models.WorkItem{
		{Key: "MISSING", Label: "Mystery item", Records: 2},
		{Key: "sku123", Label: "Lowercase sku", Records: 1},
	}, worklist)
}

func TestReconcileIsPure(t *testing.T) {
	records := []models.TransactionRecord{sale(2, "A", "a", "1"), sale(3, "B", "b", "2")}
	costs := costTable("A", "0.5")

	first, firstWork := NewCostReconciler().Reconcile(records, costs)
	second, secondWork := NewCostReconciler().Reconcile(records, costs)

	assert.Equal(t, first, second)
	assert.Equal(t, firstWork, secondWork)
	assert.Equal(t, 1, costs.Len(), "the cost table is not modified")
}

func TestReconcileNilTable(t *testing.T) {
	reconciled, worklist := NewCostReconciler().Reconcile([]models.TransactionRecord{sale(2, "A", "a", "1")}, nil)
	require.Len(t, reconciled, 1)
	assert.False(t, reconciled[0].Resolved())
	assert.Len(t, worklist, 1)
}
