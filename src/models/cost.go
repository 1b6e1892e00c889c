package models

import "github.com/shopspring/decimal"

// CostEntry is one unit acquisition cost keyed by SKU, derived SKU or normalized product name.
type CostEntry struct {
	Key      string          `json:"key"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// CostTable maps a match key to its unit cost.
// A key set twice keeps the later value; Entries still reports it at its first position.
type CostTable struct {
	costs map[string]decimal.Decimal
	order []string
}

func NewCostTable() *CostTable {
	return &CostTable{costs: make(map[string]decimal.Decimal)}
}

// Set stores cost under key, overwriting any earlier value. It reports whether a value was replaced.
func (t *CostTable) Set(key string, cost decimal.Decimal) bool {
	_, exists := t.costs[key]
	if !exists {
		t.order = append(t.order, key)
	}
	t.costs[key] = cost
	return exists
}

func (t *CostTable) Lookup(key string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Decimal{}, false
	}
	cost, ok := t.costs[key]
	return cost, ok
}

func (t *CostTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.costs)
}

// Merge copies every entry of other into t, later tables winning. It returns the number of overwritten keys.
func (t *CostTable) Merge(other *CostTable) int {
	if other == nil {
		return 0
	}
	replaced := 0
	for _, key := range other.order {
		if t.Set(key, other.costs[key]) {
			replaced++
		}
	}
	return replaced
}

// Entries lists the table in first-insertion order.
func (t *CostTable) Entries() []CostEntry {
	if t == nil {
		return nil
	}
	entries := make([]CostEntry, 0, len(t.order))
	for _, key := range t.order {
		entries = append(entries, CostEntry{Key: key, UnitCost: t.costs[key]})
	}
	return entries
}
