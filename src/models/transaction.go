package models

import "github.com/shopspring/decimal"

// TransactionRecord is one sale row of a seller transaction export.
type TransactionRecord struct {
	Row                int             `json:"row"` // Line in the source file, header is line 1
	OrderID            string          `json:"order_id,omitempty"`
	ProductDescription string          `json:"product_description"`
	SKU                string          `json:"sku,omitempty"` // Empty when the export has no SKU column
	GrossAmount        decimal.Decimal `json:"gross_amount"`
	SaleDate           string          `json:"sale_date,omitempty"`
	MatchKey           string          `json:"match_key"` // Key used against the cost table
}

type CostSource string

const (
	CostSourceTable  CostSource = "table"
	CostSourceManual CostSource = "manual"
)

// ReconciledRecord is a sale with its cost and profitability metrics.
// UnitCost is null while the record is unresolved; metrics stay null until it is resolved.
// ROIPercent is null for a zero cost and MarginPercent for a zero gross amount.
type ReconciledRecord struct {
	TransactionRecord
	UnitCost      decimal.NullDecimal `json:"unit_cost"`
	CostSource    CostSource          `json:"cost_source,omitempty"`
	NetProfit     decimal.NullDecimal `json:"net_profit"`
	ROIPercent    decimal.NullDecimal `json:"roi_percent"`
	MarginPercent decimal.NullDecimal `json:"margin_percent"`
}

func (r ReconciledRecord) Resolved() bool {
	return r.UnitCost.Valid
}

// WorkItem is a key without a known cost, listed once however many records share it.
type WorkItem struct {
	Key     string `json:"key"`
	Label   string `json:"label"` // First product description seen for the key
	Records int    `json:"records"`
}

// MetricsSummary aggregates the resolved records of a reconciliation pass.
type MetricsSummary struct {
	ResolvedRecords   int                 `json:"resolved_records"`
	UnresolvedRecords int                 `json:"unresolved_records"`
	TotalGross        decimal.Decimal     `json:"total_gross"`
	TotalCost         decimal.Decimal     `json:"total_cost"`
	TotalNetProfit    decimal.Decimal     `json:"total_net_profit"`
	ROIPercent        decimal.NullDecimal `json:"roi_percent"`
	MarginPercent     decimal.NullDecimal `json:"margin_percent"`
}
