package services

import (
	"github.com/username/sellerprofit/src/models"
	"github.com/username/sellerprofit/src/parsers"
	"github.com/username/sellerprofit/src/processors"
)

// Outcome is one pass of reconciliation, manual collection and metrics.
type Outcome struct {
	Records  []models.ReconciledRecord
	Worklist []models.WorkItem
	Prompts  []models.ManualPrompt
	Summary  models.MetricsSummary
}

// Complete reports whether every record has a cost.
func (o *Outcome) Complete() bool {
	return o.Summary.UnresolvedRecords == 0
}

// Pipeline wires the processing stages that run after the files are parsed.
type Pipeline struct {
	reconciler processors.CostReconciler
	collector  processors.ManualCostCollector
	calculator processors.MetricsCalculator
}

func NewPipeline(
	reconciler processors.CostReconciler,
	collector processors.ManualCostCollector,
	calculator processors.MetricsCalculator,
) *Pipeline {
	return &Pipeline{reconciler: reconciler, collector: collector, calculator: calculator}
}

// NewDefaultPipeline returns a pipeline with the standard stage implementations.
func NewDefaultPipeline() *Pipeline {
	return NewPipeline(processors.NewCostReconciler(), processors.NewManualCostCollector(), processors.NewMetricsCalculator())
}

// Ingest loads the transaction export and merges every cost source for variant.
// Either step failing aborts the whole upload.
func (p *Pipeline) Ingest(variant models.Variant, transactions parsers.Input, costs []parsers.Input) ([]models.TransactionRecord, *models.CostTable, error) {
	extractor, err := parsers.NewCostExtractor(variant)
	if err != nil {
		return nil, nil, err
	}
	table, err := parsers.ExtractAll(extractor, costs)
	if err != nil {
		return nil, nil, err
	}
	records, err := parsers.NewTransactionLoader(variant).Load(transactions)
	if err != nil {
		return nil, nil, err
	}
	return records, table, nil
}

// Run reconciles records against costs and manual, then computes metrics for every resolved record.
// It has no side effects; calling it twice with the same arguments gives the same Outcome.
func (p *Pipeline) Run(variant models.Variant, records []models.TransactionRecord, costs *models.CostTable, manual processors.ManualCostSource) (*Outcome, error) {
	reconciled, worklist := p.reconciler.Reconcile(records, costs)

	collected, prompts, err := p.collector.Collect(reconciled, worklist, manual, variant.ManualInput)
	if err != nil {
		return nil, err
	}

	withMetrics := p.calculator.CalculateResolved(collected)
	return &Outcome{
		Records:  withMetrics,
		Worklist: worklist,
		Prompts:  prompts,
		Summary:  p.calculator.Summarize(withMetrics),
	}, nil
}

// Final returns the records for export, failing with UnresolvedCostError while any key lacks a cost.
func (p *Pipeline) Final(o *Outcome) ([]models.ReconciledRecord, error) {
	return p.calculator.CalculateAll(o.Records)
}
