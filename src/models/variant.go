package models

// KeyStrategy selects how a sale row's match key is derived.
type KeyStrategy string

const (
	KeyDirectSKU      KeyStrategy = "direct-sku"      // SKU column as is
	KeySuffixExtract  KeyStrategy = "suffix-extract"  // text after the last hyphen of the description
	KeyNormalizedName KeyStrategy = "normalized-name" // case-folded, trimmed description
)

// CostFormat selects the cost-reference reader.
type CostFormat string

const (
	CostDatedLines     CostFormat = "dated-lines"      // "SKU ... DD/MM/YYYY - 12,34" text lines
	CostSKUSuffixTable CostFormat = "sku-suffix-table" // order report with the cost embedded in the SKU
)

type InputKind string

const (
	InputNumber InputKind = "number"
	InputText   InputKind = "text"
)

// TransactionColumns names the columns of a transaction export. Empty names are not read.
type TransactionColumns struct {
	Type        string `json:"type"`
	OrderID     string `json:"order_id,omitempty"`
	Description string `json:"description"`
	SKU         string `json:"sku,omitempty"`
	Gross       string `json:"gross"`
	Date        string `json:"date,omitempty"`
}

type CostColumns struct {
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
}

// Variant is the configuration of one input schema: everything that differs between
// seller exports lives here, the pipeline itself is shared.
type Variant struct {
	Name            string             `json:"name"`
	Title           string             `json:"title"`
	Columns         TransactionColumns `json:"columns"`
	RequiredColumns []string           `json:"required_columns"`
	SaleIndicator   string             `json:"sale_indicator"`
	KeyStrategy     KeyStrategy        `json:"key_strategy"`
	CostFormat      CostFormat         `json:"cost_format"`
	CostColumns     CostColumns        `json:"cost_columns"`
	ManualInput     InputKind          `json:"manual_input"`
}
