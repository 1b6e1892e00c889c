package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/sellerprofit/src/models"
	"github.com/username/sellerprofit/src/parsers"
)

func reconcileFixture() ([]models.ReconciledRecord, []models.WorkItem) {
	records := []models.TransactionRecord{
		sale(2, "SKU1", "Mouse", "20.00"),
		sale(3, "SKU2", "Keyboard", "40.00"),
		sale(4, "SKU2", "Keyboard", "38.00"),
		sale(5, "SKU3", "Cable", "5.00"),
	}
	return NewCostReconciler().Reconcile(records, costTable("SKU1", "8.00"))
}

func TestCollectAppliesValueToEveryRecordOfKey(t *testing.T) {
	records, worklist := reconcileFixture()

	out, prompts, err := NewManualCostCollector().Collect(records, worklist, models.ManualEntries{"SKU2": "12,50"}, models.InputNumber)
	require.NoError(t, err)

	assert.True(t, out[1].Resolved())
	assert.True(t, out[2].Resolved())
	assert.True(t, out[1].UnitCost.Decimal.Equal(dec("12.5")))
	assert.Equal(t, models.CostSourceManual, out[2].CostSource)
	assert.False(t, out[3].Resolved(), "no value entered for SKU3")
	assert.Equal(t, models.CostSourceTable, out[0].CostSource)

	require.Len(t, prompts, 2)
	assert.Equal(t, models.ManualPrompt{Key: "SKU2", Label: "Keyboard", InputKind: models.InputNumber, Min: "0.00", Format: "%.2f", Value: "12,50", Records: 2, Resolved: true}, prompts[0])
	assert.Equal(t, "SKU3", prompts[1].Key)
	assert.False(t, prompts[1].Resolved)
	assert.Empty(t, prompts[1].Value)
}

func TestCollectDoesNotMutateInput(t *testing.T) {
	records, worklist := reconcileFixture()

	_, _, err := NewManualCostCollector().Collect(records, worklist, models.ManualEntries{"SKU2": "1"}, models.InputNumber)
	require.NoError(t, err)
	assert.False(t, records[1].Resolved())
}

func TestCollectEmptyValueLeavesUnresolved(t *testing.T) {
	records, worklist := reconcileFixture()

	out, prompts, err := NewManualCostCollector().Collect(records, worklist, models.ManualEntries{"SKU2": "  ", "SKU3": ""}, models.InputText)
	require.NoError(t, err)

	assert.False(t, out[1].Resolved())
	assert.False(t, out[3].Resolved())
	assert.Equal(t, "  ", prompts[0].Value, "entered text is echoed back unchanged")
	assert.Equal(t, models.InputText, prompts[0].InputKind)
}

func TestCollectExplicitZero(t *testing.T) {
	records, worklist := reconcileFixture()

	out, _, err := NewManualCostCollector().Collect(records, worklist, models.ManualEntries{"SKU3": "0"}, models.InputNumber)
	require.NoError(t, err)
	assert.True(t, out[3].Resolved())
	assert.True(t, out[3].UnitCost.Decimal.IsZero())
}

func TestCollectRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "doce"},
		{"negative", "-1,00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, worklist := reconcileFixture()

			out, prompts, err := NewManualCostCollector().Collect(records, worklist, models.ManualEntries{"SKU3": tt.value}, models.InputNumber)

			assert.Nil(t, out)
			assert.Nil(t, prompts)
			var numErr *parsers.NumericFormatError
			require.ErrorAs(t, err, &numErr)
			assert.Equal(t, "SKU3", numErr.Key)
			assert.Equal(t, tt.value, numErr.Value)
			assert.Contains(t, err.Error(), `manual cost for "SKU3"`)
		})
	}
}

func TestCollectNilSource(t *testing.T) {
	records, worklist := reconcileFixture()

	out, prompts, err := NewManualCostCollector().Collect(records, worklist, nil, models.InputNumber)
	require.NoError(t, err)
	assert.Len(t, prompts, 2)
	assert.False(t, out[1].Resolved())
}
