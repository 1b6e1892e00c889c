package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/username/sellerprofit/src/models"
)

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func fixtureRecords() []models.ReconciledRecord {
	return []models.ReconciledRecord{
		{
			TransactionRecord: models.TransactionRecord{Row: 2, ProductDescription: "Wireless Mouse", MatchKey: "SKU123", GrossAmount: decimal.RequireFromString("29.99")},
			UnitCost:          nd("12.50"),
			NetProfit:         nd("17.49"),
			ROIPercent:        nd("139.92"),
			MarginPercent:     nd("58.3194"),
			CostSource:        models.CostSourceTable,
		},
		{
			TransactionRecord: models.TransactionRecord{Row: 3, ProductDescription: "=HYPERLINK(\"x\"), promo", MatchKey: "FREE-1", GrossAmount: decimal.RequireFromString("10")},
			UnitCost:          nd("0"),
			NetProfit:         nd("10"),
			MarginPercent:     nd("100"),
			CostSource:        models.CostSourceManual,
		},
	}
}

func TestCSVExport(t *testing.T) {
	file, err := NewCSVExporter().Export(fixtureRecords())
	require.NoError(t, err)

	want := "Description,Key,Gross Amount,Unit Cost,Net Profit,ROI (%),Net Margin (%)\n" +
		"Wireless Mouse,SKU123,29.99,12.50,17.49,139.92,58.32\n" +
		"\"'=HYPERLINK(\"\"x\"\"), promo\",FREE-1,10.00,0.00,10.00,,100.00\n"
	assert.Equal(t, want, string(file.Data))
	assert.Equal(t, "resultados_roi.csv", file.Name)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
}

func TestCSVExportIsDeterministic(t *testing.T) {
	a, err := NewCSVExporter().Export(fixtureRecords())
	require.NoError(t, err)
	b, err := NewCSVExporter().Export(fixtureRecords())
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a.Data, b.Data))
}

func TestCSVExportEmpty(t *testing.T) {
	file, err := NewCSVExporter().Export(nil)
	require.NoError(t, err)
	assert.Equal(t, "Description,Key,Gross Amount,Unit Cost,Net Profit,ROI (%),Net Margin (%)\n", string(file.Data))
}

func TestXLSXExport(t *testing.T) {
	file, err := NewXLSXExporter().Export(fixtureRecords())
	require.NoError(t, err)
	assert.Equal(t, "resultados_roi.xlsx", file.Name)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{SheetName}, wb.GetSheetList())
	rows, err := wb.GetRows(SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"Wireless Mouse", "SKU123", "29.99", "12.50", "17.49", "139.92", "58.32"}, rows[1])

	roi, err := wb.GetCellValue(SheetName, "F3")
	require.NoError(t, err)
	assert.Empty(t, roi, "a null ROI leaves the cell empty")

	cellType, err := wb.GetCellType(SheetName, "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)

	desc, err := wb.GetCellValue(SheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "'=HYPERLINK(\"x\"), promo", desc)
}

func TestExportKeepsKeyAndRoundsOnce(t *testing.T) {
	records := []models.ReconciledRecord{{
		TransactionRecord: models.TransactionRecord{Row: 2, ProductDescription: "+Taza", MatchKey: "-20PACK", GrossAmount: decimal.RequireFromString("1.01")},
		UnitCost:          nd("0.51"),
		NetProfit:         nd("0.50"),
		ROIPercent:        nd("98.0392156862745098"),
		MarginPercent:     nd("49.5049504950495050"),
		CostSource:        models.CostSourceTable,
	}}

	file, err := NewCSVExporter().Export(records)
	require.NoError(t, err)
	assert.Contains(t, string(file.Data), "'+Taza,-20PACK,1.01,0.51,0.50,98.04,49.50\n")

	file, err = NewXLSXExporter().Export(records)
	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	key, err := wb.GetCellValue(SheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "-20PACK", key)
	margin, err := wb.GetCellValue(SheetName, "G2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "49.50", margin)
}

func TestGetExporter(t *testing.T) {
	tests := []struct {
		format  string
		want    Exporter
		wantErr bool
	}{
		{"csv", &csvExporterImpl{}, false},
		{"", &csvExporterImpl{}, false},
		{" XLSX ", &xlsxExporterImpl{}, false},
		{"pdf", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := GetExporter(tt.format)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}
