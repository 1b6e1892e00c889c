package parsers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/username/sellerprofit/src/security/validation"
	"github.com/xuri/excelize/v2"
)

var zipMagic = []byte("PK\x03\x04")

type tableRow struct {
	Line  int
	Cells []string
}

// table is a header plus data rows read from a CSV, TSV or XLSX source.
type table struct {
	Source string
	Header []string
	index  map[string]int
	Rows   []tableRow
}

func readTable(in Input) (*table, error) {
	raw, err := readAll(in)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &SourceFormatError{Source: in.Name, Err: ErrEmptySource}
	}
	if bytes.HasPrefix(raw, zipMagic) {
		return readWorkbook(in.Name, raw)
	}

	text, err := decodeText(in.Name, raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	t := &table{Source: in.Name}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &SourceFormatError{Source: in.Name, Err: fmt.Errorf("malformed delimited text: %w", err)}
		}
		line, _ := reader.FieldPos(0)
		if t.Header == nil {
			t.setHeader(record)
			continue
		}
		if isBlank(record) {
			continue
		}
		t.Rows = append(t.Rows, tableRow{Line: line, Cells: record})
	}
	if t.Header == nil {
		return nil, &SourceFormatError{Source: in.Name, Err: ErrEmptySource}
	}
	return t, nil
}

// readWorkbook reads the first sheet of an XLSX workbook.
func readWorkbook(source string, raw []byte) (*table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &SourceFormatError{Source: source, Err: fmt.Errorf("unreadable workbook: %w", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SourceFormatError{Source: source, Err: errors.New("workbook has no sheets")}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &SourceFormatError{Source: source, Err: fmt.Errorf("read sheet %q: %w", sheets[0], err)}
	}

	t := &table{Source: source}
	for i, record := range rows {
		if t.Header == nil {
			if isBlank(record) {
				continue
			}
			t.setHeader(record)
			continue
		}
		if isBlank(record) {
			continue
		}
		t.Rows = append(t.Rows, tableRow{Line: i + 1, Cells: record})
	}
	if t.Header == nil {
		return nil, &SourceFormatError{Source: source, Err: ErrEmptySource}
	}
	return t, nil
}

func (t *table) setHeader(record []string) {
	t.Header = make([]string, len(record))
	t.index = make(map[string]int, len(record))
	for i, name := range record {
		name = normalizeHeader(name)
		t.Header[i] = name
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}
}

// missing returns the columns of want that the header lacks, in the order given.
func (t *table) missing(want []string) []string {
	var out []string
	for _, col := range want {
		if _, ok := t.index[col]; !ok {
			out = append(out, col)
		}
	}
	return out
}

func (t *table) has(col string) bool {
	_, ok := t.index[col]
	return col != "" && ok
}

// value returns the trimmed cell of row under col, or "" when absent.
func (t *table) value(row tableRow, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row.Cells) {
		return ""
	}
	return strings.TrimSpace(row.Cells[i])
}

func normalizeHeader(name string) string {
	name = strings.TrimSpace(validation.StripUnprintable(name))
	return strings.TrimSpace(strings.Trim(name, `"`))
}

// sniffDelimiter picks tab or comma from the header line.
func sniffDelimiter(text string) rune {
	header := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		header = text[:i]
	}
	if strings.Count(header, "\t") > strings.Count(header, ",") {
		return '\t'
	}
	return ','
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
