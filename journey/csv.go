package journey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultMissingTokens are the cell spellings read as Missing (after trimming).
var DefaultMissingTokens = []string{"", "NA", "NaN"}

const panicBadComma = "journey: WithComma: comma must be a valid, non-quote, non-newline rune"

// ReadOption configures ReadCSV and ReadValues.
type ReadOption func(*readOptions)

type readOptions struct {
	missing map[string]struct{}
	header  bool
	comma   rune
}

// WithMissingTokens replaces the set of cell spellings treated as Missing.
// Tokens are compared after trimming surrounding whitespace.
func WithMissingTokens(tokens ...string) ReadOption {
	return func(o *readOptions) {
		o.missing = make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			o.missing[strings.TrimSpace(tok)] = struct{}{}
		}
	}
}

// WithHeader skips the first record.
func WithHeader() ReadOption {
	return func(o *readOptions) { o.header = true }
}

// WithComma sets the field delimiter (default ',').
// Panics on delimiters encoding/csv cannot use (programmer error).
func WithComma(r rune) ReadOption {
	if r == '"' || r == '\r' || r == '\n' || r == 0xFFFD || r <= 0 {
		panic(panicBadComma)
	}

	return func(o *readOptions) { o.comma = r }
}

func gatherReadOptions(opts []ReadOption) readOptions {
	o := readOptions{comma: ','}
	WithMissingTokens(DefaultMissingTokens...)(&o)
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ReadCSV parses a header-less CSV of journeys: one record per user, one
// field per position. Missing tokens become Missing; other fields must be
// non-negative integers.
//
// Errors:
//   - ErrRaggedRow when records differ in field count.
//   - ErrBadChannel for non-integer or negative fields (wrapped with line/column).
//   - ErrEmptyTable when no records remain after the optional header.
//   - reader errors, wrapped.
func ReadCSV(r io.Reader, opts ...ReadOption) (*Table, error) {
	o := gatherReadOptions(opts)
	records, err := readRecords(r, o)
	if err != nil {
		return nil, err
	}

	rows := make([][]Channel, len(records))
	for i, rec := range records {
		row := make([]Channel, len(rec))
		for p, field := range rec {
			row[p], err = parseChannel(field, o.missing)
			if err != nil {
				return nil, fmt.Errorf("record %d, field %d: %w", i+1, p+1, err)
			}
		}
		rows[i] = row
	}

	return NewTable(rows)
}

// ReadValues parses one outcome value per record from the first field.
//
// Errors:
//   - ErrBadValue for unparsable, NaN or ±Inf fields.
//   - ErrEmptyTable when no records remain after the optional header.
func ReadValues(r io.Reader, opts ...ReadOption) ([]float64, error) {
	o := gatherReadOptions(opts)
	records, err := readRecords(r, o)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(records))
	for i, rec := range records {
		field := strings.TrimSpace(rec[0])
		v, perr := strconv.ParseFloat(field, 64)
		if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("record %d: %q: %w", i+1, field, ErrBadValue)
		}
		values[i] = v
	}

	return values, nil
}

// readRecords reads every record, mapping csv field-count errors to ErrRaggedRow.
func readRecords(r io.Reader, o readOptions) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%v: %w", err, ErrRaggedRow)
		}

		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if o.header && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	return records, nil
}

func parseChannel(field string, missing map[string]struct{}) (Channel, error) {
	field = strings.TrimSpace(field)
	if _, ok := missing[field]; ok {
		return Missing, nil
	}
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return Missing, fmt.Errorf("%q: %w", field, ErrBadChannel)
	}

	return Channel(n), nil
}
