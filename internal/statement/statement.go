// Package statement turns raw bank statement exports into normalized
// transactions. Formats are heterogeneous and often headerless, so the
// pipeline is heuristic end to end: tokenize, peel an optional header, infer
// column roles, then build transactions row by row. Failures are never
// per-row errors; the worst outcome is an empty result carrying debug
// metadata.
package statement

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/clearpath-dev/clearpath/internal/category"
	"github.com/clearpath-dev/clearpath/internal/model"
)

// ErrPDFNotSupported is returned before any parse attempt on .pdf files.
// The message is surfaced to the user as-is.
var ErrPDFNotSupported = errors.New("PDF files cannot be parsed. Please export your statement as CSV from your bank")

// ErrNoData is returned when the file contains no data rows. Distinct from a
// parse that maps columns but yields zero transactions.
var ErrNoData = errors.New("no data rows found in the file")

// Debug carries troubleshooting metadata for a parse attempt.
type Debug struct {
	FileName    string
	TotalRows   int
	HasHeader   bool
	SampleRow   RawRow
	ColumnCount int
	Mapping     ColumnMapping
	ParsedCount int
}

// Result is the outcome of parsing one statement file.
type Result struct {
	Transactions []model.Transaction // newest first
	Skips        []RowSkip
	Debug        Debug
}

// Parser runs the full ingestion pipeline. It holds no state between files.
type Parser struct {
	builder *Builder
}

// NewParser creates a Parser using the given classifier.
func NewParser(classifier *category.Classifier) *Parser {
	return &Parser{builder: NewBuilder(classifier)}
}

// Parse reads one statement and returns its transactions, newest first.
// Zero parsed transactions is not an error here; callers decide how to
// surface it, with Result.Debug as the diagnosis payload.
func (p *Parser) Parse(fileName string, r io.Reader) (*Result, error) {
	if strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return nil, ErrPDFNotSupported
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}

	rows := Tokenize(string(data))
	res := &Result{Debug: Debug{FileName: fileName}}

	if HasHeader(rows) {
		res.Debug.HasHeader = true
		rows = rows[1:]
	}
	res.Debug.TotalRows = len(rows)

	if len(rows) == 0 {
		return res, ErrNoData
	}
	res.Debug.SampleRow = rows[0]
	res.Debug.ColumnCount = len(rows[0])

	mapping := InferColumns(rows)
	res.Debug.Mapping = mapping

	res.Transactions, res.Skips = p.builder.Build(rows, mapping)
	res.Debug.ParsedCount = len(res.Transactions)
	return res, nil
}
