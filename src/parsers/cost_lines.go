package parsers

import (
	"regexp"
	"strings"

	"github.com/username/sellerprofit/src/logger"
	"github.com/username/sellerprofit/src/models"
)

// datedCostRe finds "DD/MM/YYYY - 12,34" anywhere in a line.
var datedCostRe = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+-\s+([0-9]+,[0-9]+)`)

// DatedLineExtractor reads plain-text cost lists such as
//
//	SKU123 - 01/02/2024 - 12,50
//
// The key is the first whitespace-delimited token of the line. Lines without a
// date followed by a comma-decimal cost are skipped.
type DatedLineExtractor struct{}

func NewDatedLineExtractor() *DatedLineExtractor {
	return &DatedLineExtractor{}
}

func (e *DatedLineExtractor) Extract(in Input) (*models.CostTable, error) {
	raw, err := readAll(in)
	if err != nil {
		return nil, err
	}
	text, err := decodeText(in.Name, raw)
	if err != nil {
		return nil, err
	}

	costs := models.NewCostTable()
	skipped, replaced := 0, 0
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		matches := datedCostRe.FindStringSubmatch(line)
		if matches == nil {
			if line != "" {
				skipped++
			}
			continue
		}
		key := strings.Fields(line)[0]
		cost, err := ParseNonNegative(matches[2])
		if err != nil {
			return nil, &NumericFormatError{Source: in.Name, Row: i + 1, Column: "cost", Value: matches[2], Err: err}
		}
		if costs.Set(key, cost) {
			replaced++
			logger.L.Debug("Cost key repeated, keeping later value", "source", in.Name, "key", key, "line", i+1)
		}
	}

	logger.L.Info("Cost lines extracted", "source", in.Name, "entries", costs.Len(), "skippedLines", skipped, "overwritten", replaced)
	return costs, nil
}
