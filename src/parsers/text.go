package parsers

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Input is one uploaded file.
type Input struct {
	Name string
	Data io.Reader
}

func readAll(in Input) ([]byte, error) {
	if in.Data == nil {
		return nil, &SourceFormatError{Source: in.Name, Err: ErrEmptySource}
	}
	raw, err := io.ReadAll(in.Data)
	if err != nil {
		return nil, &SourceFormatError{Source: in.Name, Err: fmt.Errorf("read failed: %w", err)}
	}
	return raw, nil
}

// decodeText returns raw as UTF-8 text with any byte order mark removed.
// UTF-16 input is accepted when it carries a BOM; anything else must already be valid UTF-8.
func decodeText(source string, raw []byte) (string, error) {
	hasUTF16BOM := bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE)
	if !hasUTF16BOM && !utf8.Valid(bytes.TrimPrefix(raw, bomUTF8)) {
		return "", &SourceFormatError{Source: source, Err: ErrInvalidEncoding}
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", &SourceFormatError{Source: source, Err: fmt.Errorf("decode failed: %w", err)}
	}
	return string(out), nil
}
