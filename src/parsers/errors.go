package parsers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownVariant  = errors.New("unknown variant")
	ErrInvalidEncoding = errors.New("content is not valid UTF-8 text")
	ErrEmptySource     = errors.New("source is empty")
)

// SourceFormatError reports an input that cannot be read as text or as a table.
type SourceFormatError struct {
	Source string
	Err    error
}

func (e *SourceFormatError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Source, e.Err)
}

func (e *SourceFormatError) Unwrap() error { return e.Err }

// SchemaError reports required columns absent from a tabular source.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s is missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

// NumericFormatError reports a value that is not a non-negative comma- or dot-decimal number.
// Row and Column are set for file cells, Key for manually entered costs.
type NumericFormatError struct {
	Source string
	Row    int
	Column string
	Key    string
	Value  string
	Err    error
}

func (e *NumericFormatError) Error() string {
	var where string
	switch {
	case e.Key != "":
		where = fmt.Sprintf("manual cost for %q", e.Key)
	case e.Row > 0:
		where = fmt.Sprintf("%s line %d column %q", e.Source, e.Row, e.Column)
	default:
		where = e.Source
	}
	return fmt.Sprintf("invalid number %q in %s: %v", e.Value, where, e.Err)
}

func (e *NumericFormatError) Unwrap() error { return e.Err }

// MatchKeyError reports a sale row whose match key is empty, such as a blank SKU or a
// description ending in a hyphen. Such a row can match no cost and cannot be prompted for.
type MatchKeyError struct {
	Source string
	Row    int
	Column string
	Value  string
}

func (e *MatchKeyError) Error() string {
	return fmt.Sprintf("%s line %d column %q gives an empty match key (value %q)", e.Source, e.Row, e.Column, e.Value)
}
