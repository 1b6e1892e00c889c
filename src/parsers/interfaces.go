package parsers

import (
	"github.com/username/sellerprofit/src/models"
)

// CostExtractor builds a cost table from one cost-reference source.
type CostExtractor interface {
	Extract(in Input) (*models.CostTable, error)
}

// TransactionLoader reads the sale rows of a transaction export.
type TransactionLoader interface {
	Load(in Input) ([]models.TransactionRecord, error)
}
