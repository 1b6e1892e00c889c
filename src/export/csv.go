package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/username/sellerprofit/src/logger"
	"github.com/username/sellerprofit/src/models"
)

type csvExporterImpl struct{}

func NewCSVExporter() Exporter {
	return &csvExporterImpl{}
}

// Export writes a comma-delimited table with a dot decimal separator. Null metrics are empty cells.
func (e *csvExporterImpl) Export(records []models.ReconciledRecord) (*File, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("csv write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(textCells(rec)); err != nil {
			return nil, fmt.Errorf("csv write row %d: %w", rec.Row, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	logger.L.Info("export.csv.ok", "rows", len(records), "bytes", buf.Len())
	return &File{
		Name:        FileBaseName + ".csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
