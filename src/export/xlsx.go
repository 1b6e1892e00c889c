package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/username/sellerprofit/src/logger"
	"github.com/username/sellerprofit/src/models"
	"github.com/username/sellerprofit/src/utils"
)

// SheetName is the worksheet holding the results.
const SheetName = "Results"

type xlsxExporterImpl struct{}

func NewXLSXExporter() Exporter {
	return &xlsxExporterImpl{}
}

// Export writes a single-sheet workbook. Money and percentages are numeric cells with two
// decimals; null metrics leave the cell empty.
func (e *xlsxExporterImpl) Export(records []models.ReconciledRecord) (*File, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx rename sheet: %w", err)
	}

	for i, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx header: %w", err)
		}
	}

	row := 2
	for _, rec := range records {
		text := textCells(rec)
		write := func(col int, v any) error {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			return f.SetCellValue(SheetName, cell, v)
		}
		writeNumber := func(col int, d decimal.NullDecimal) error {
			if !d.Valid {
				return nil
			}
			cell, _ := excelize.CoordinatesToCellName(col, row)
			return f.SetCellFloat(SheetName, cell, utils.RoundedFloat(d.Decimal, utils.DisplayPlaces), int(utils.DisplayPlaces), 64)
		}

		if err := write(1, text[0]); err != nil {
			return nil, fmt.Errorf("xlsx row %d: %w", rec.Row, err)
		}
		if err := write(2, text[1]); err != nil {
			return nil, fmt.Errorf("xlsx row %d: %w", rec.Row, err)
		}
		numbers := []decimal.NullDecimal{
			decimal.NewNullDecimal(rec.GrossAmount),
			rec.UnitCost,
			rec.NetProfit,
			rec.ROIPercent,
			rec.MarginPercent,
		}
		for i, d := range numbers {
			if err := writeNumber(3+i, d); err != nil {
				return nil, fmt.Errorf("xlsx row %d: %w", rec.Row, err)
			}
		}
		row++
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}
	if row > 2 {
		if err := f.SetCellStyle(SheetName, "C2", fmt.Sprintf("G%d", row-1), style); err != nil {
			return nil, fmt.Errorf("xlsx style: %w", err)
		}
	}
	_ = f.SetColWidth(SheetName, "A", "A", 48) // description
	_ = f.SetColWidth(SheetName, "B", "B", 24) // key
	_ = f.SetColWidth(SheetName, "C", "G", 14) // amounts

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.L.Info("export.xlsx.ok", "rows", len(records), "bytes", buf.Len())
	return &File{
		Name:        FileBaseName + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}
