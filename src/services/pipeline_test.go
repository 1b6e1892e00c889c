package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/sellerprofit/src/models"
	"github.com/username/sellerprofit/src/parsers"
	"github.com/username/sellerprofit/src/processors"
)

func TestPipelineRunIsRepeatable(t *testing.T) {
	variant, err := parsers.GetVariant(parsers.VariantAmazonEN)
	require.NoError(t, err)
	records := []models.TransactionRecord{
		{Row: 2, MatchKey: "A", ProductDescription: "a", GrossAmount: decimal.RequireFromString("10")},
		{Row: 3, MatchKey: "B", ProductDescription: "b", GrossAmount: decimal.RequireFromString("4")},
	}
	costs := models.NewCostTable()
	costs.Set("A", decimal.RequireFromString("5"))
	manual := models.ManualEntries{"B": "1"}

	p := NewDefaultPipeline()
	first, err := p.Run(variant, records, costs, manual)
	require.NoError(t, err)
	second, err := p.Run(variant, records, costs, manual)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.Complete())
	assert.Equal(t, 1, costs.Len(), "manual values never enter the cost table")

	final, err := p.Final(first)
	require.NoError(t, err)
	assert.Equal(t, "300", final[1].ROIPercent.Decimal.String())
}

func TestPipelineFinalBlocksUnresolved(t *testing.T) {
	variant, err := parsers.GetVariant(parsers.VariantAmazonES)
	require.NoError(t, err)
	records := []models.TransactionRecord{{Row: 2, MatchKey: "X", GrossAmount: decimal.NewFromInt(1)}}

	p := NewDefaultPipeline()
	outcome, err := p.Run(variant, records, models.NewCostTable(), nil)
	require.NoError(t, err)
	assert.False(t, outcome.Complete())

	_, err = p.Final(outcome)
	var unresolved *processors.UnresolvedCostError
	assert.ErrorAs(t, err, &unresolved)
}
