package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/username/sellerprofit/src/models"
	"github.com/username/sellerprofit/src/security/validation"
	"github.com/username/sellerprofit/src/utils"
)

// Format names an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FileBaseName is the download name without extension.
const FileBaseName = "resultados_roi"

var ErrUnknownFormat = errors.New("unknown export format")

// Header is the column order shared by every format.
var Header = []string{"Description", "Key", "Gross Amount", "Unit Cost", "Net Profit", "ROI (%)", "Net Margin (%)"}

// File is an encoded export ready to be downloaded.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Exporter encodes fully resolved records.
type Exporter interface {
	Export(records []models.ReconciledRecord) (*File, error)
}

// GetExporter returns the exporter for a format name; an empty name means CSV.
func GetExporter(format string) (Exporter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatCSV, "":
		return NewCSVExporter(), nil
	case FormatXLSX:
		return NewXLSXExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// textCells returns the display text of a record in Header order. Only the description is
// guarded against formula injection; the key is written as is so it still matches the cost file.
func textCells(rec models.ReconciledRecord) []string {
	return []string{
		validation.SanitizeForFormulaInjection(rec.ProductDescription),
		rec.MatchKey,
		rec.GrossAmount.StringFixed(utils.DisplayPlaces),
		utils.FormatDecimal(rec.UnitCost, utils.DisplayPlaces),
		utils.FormatDecimal(rec.NetProfit, utils.DisplayPlaces),
		utils.FormatDecimal(rec.ROIPercent, utils.DisplayPlaces),
		utils.FormatDecimal(rec.MarginPercent, utils.DisplayPlaces),
	}
}
