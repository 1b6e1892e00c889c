package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCostTableLastValueWins(t *testing.T) {
	table := NewCostTable()
	assert.False(t, table.Set("A", decimal.RequireFromString("1.00")))
	assert.False(t, table.Set("B", decimal.RequireFromString("2.00")))
	assert.True(t, table.Set("A", decimal.RequireFromString("3.00")))

	cost, ok := table.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "3", cost.String())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"A", "B"}, []string{table.Entries()[0].Key, table.Entries()[1].Key})
}

func TestCostTableMerge(t *testing.T) {
	first := NewCostTable()
	first.Set("A", decimal.NewFromInt(1))
	first.Set("B", decimal.NewFromInt(2))
	second := NewCostTable()
	second.Set("B", decimal.NewFromInt(20))
	second.Set("C", decimal.NewFromInt(30))

	assert.Equal(t, 1, first.Merge(second))
	assert.Equal(t, 3, first.Len())
	b, _ := first.Lookup("B")
	assert.Equal(t, "20", b.String())
	assert.Zero(t, first.Merge(nil))
}

func TestNilCostTable(t *testing.T) {
	var table *CostTable
	_, ok := table.Lookup("A")
	assert.False(t, ok)
	assert.Zero(t, table.Len())
	assert.Nil(t, table.Entries())
}

func TestManualEntriesClone(t *testing.T) {
	m := ManualEntries{"A": "1"}
	c := m.Clone()
	c["A"] = "2"
	c["B"] = "3"

	v, ok := m.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	_, ok = m.Lookup("B")
	assert.False(t, ok)
}

func TestReconciledRecordResolved(t *testing.T) {
	assert.False(t, ReconciledRecord{}.Resolved())
	assert.True(t, ReconciledRecord{UnitCost: decimal.NewNullDecimal(decimal.Zero)}.Resolved())
}
