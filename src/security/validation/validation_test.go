package validation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClientContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		kind        SourceKind
		wantErr     bool
	}{
		{"csv", "text/csv", KindText, false},
		{"csv with charset", "text/csv; charset=utf-8", KindTable, false},
		{"upper case", "TEXT/PLAIN", KindText, false},
		{"empty header", "", KindText, false},
		{"xlsx for table", xlsxContentType, KindTable, false},
		{"xlsx for text", xlsxContentType, KindText, true},
		{"pdf", "application/pdf", KindTable, true},
		{"garbage", "not a type;;", KindText, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClientContentType(tt.contentType, tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFileContentByMagicBytes(t *testing.T) {
	zipHeader := append([]byte("PK\x03\x04"), bytes.Repeat([]byte{0}, 40)...)
	tests := []struct {
		name    string
		data    []byte
		kind    SourceKind
		want    string
		wantErr bool
	}{
		{"text", []byte("SKU1 - 01/02/2024 - 3,50\n"), KindText, "text/plain", false},
		{"workbook for table", zipHeader, KindTable, "application/zip", false},
		{"workbook for text", zipHeader, KindText, "application/zip", true},
		{"pdf", []byte("%PDF-1.4\n"), KindTable, "application/pdf", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			got, err := ValidateFileContentByMagicBytes(r, tt.kind)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			pos, _ := r.Seek(0, 1)
			assert.Zero(t, pos, "read pointer is reset")
		})
	}
}

func TestValidateFileContentNil(t *testing.T) {
	_, err := ValidateFileContentByMagicBytes(nil, KindText)
	assert.Error(t, err)
}

func TestSanitizeForFormulaInjection(t *testing.T) {
	tests := map[string]string{
		"=SUM(A1)":   "'=SUM(A1)",
		"  +1":       "'  +1",
		"-cable":     "'-cable",
		"@user":      "'@user",
		"\tx":        "'\tx",
		"Mouse - 12": "Mouse - 12",
		"":           "",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeForFormulaInjection(in), "input %q", in)
	}
}

func TestStripUnprintable(t *testing.T) {
	assert.Equal(t, "Mouse\tpad", StripUnprintable("Mo\x00use\tpad"))
	assert.Equal(t, "abc", StripUnprintable("a\x07b\x1bc"))
	assert.Equal(t, "rat\u00f3n", StripUnprintable("rat\u00f3n\u200b"))
}
