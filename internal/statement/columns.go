package statement

import (
	"regexp"
	"strings"
)

// Absent marks a column role with no assigned index.
const Absent = -1

// ColumnMapping assigns semantic roles to column indices. For a usable file
// exactly one of {DebitCol & CreditCol} or {AmountCol} is present; when
// neither holds every row is unparseable and the pipeline reports zero
// transactions.
type ColumnMapping struct {
	DateCol   int
	DescCol   int
	DebitCol  int
	CreditCol int
	AmountCol int
}

// HasDebitCredit reports whether the file uses separate debit/credit columns.
func (m ColumnMapping) HasDebitCredit() bool {
	return m.DebitCol != Absent && m.CreditCol != Absent
}

// HasAmount reports whether the file uses a single signed amount column.
func (m ColumnMapping) HasAmount() bool {
	return m.AmountCol != Absent
}

// columnShape is a fixed-arity fast path. Financial exports cluster into a
// handful of known layouts; keeping them in an ordered table makes the set
// extensible without growing a conditional cascade.
type columnShape struct {
	arity  int
	assign func(*ColumnMapping)
}

var fixedShapes = []columnShape{
	// date, description, debit, credit, balance (balance ignored)
	{5, func(m *ColumnMapping) { m.DescCol, m.DebitCol, m.CreditCol = 1, 2, 3 }},
	// date, description, amount, balance (balance ignored)
	{4, func(m *ColumnMapping) { m.DescCol, m.AmountCol = 1, 2 }},
	// date, description, amount
	{3, func(m *ColumnMapping) { m.DescCol, m.AmountCol = 1, 2 }},
}

// sampleRows bounds the heuristic scorer's sample.
const sampleRows = 5

// InferColumns maps column roles for a file from its first data row plus a
// small sample. The date column is the first column of row 0 that parses as
// a date; if none does, the mapping is unusable and the builder drops every
// row. Fixed shapes are tried by exact arity before the general heuristic.
func InferColumns(rows []RawRow) ColumnMapping {
	m := ColumnMapping{
		DateCol:   Absent,
		DescCol:   Absent,
		DebitCol:  Absent,
		CreditCol: Absent,
		AmountCol: Absent,
	}
	if len(rows) == 0 {
		return m
	}

	first := rows[0]
	for i, cell := range first {
		if _, ok := ParseDate(cell); ok {
			m.DateCol = i
			break
		}
	}

	for _, shape := range fixedShapes {
		if len(first) == shape.arity {
			shape.assign(&m)
			return m
		}
	}

	inferHeuristic(rows, &m)
	return m
}

// inferHeuristic handles the long tail of layouts. The description column is
// the non-numeric column with the greatest average text length over the
// sample; the amount column is the first remaining column whose row-0 value
// parses as an amount. Both picks are order-dependent and can be wrong on
// adversarial inputs.
func inferHeuristic(rows []RawRow, m *ColumnMapping) {
	first := rows[0]
	sample := rows
	if len(sample) > sampleRows {
		sample = sample[:sampleRows]
	}

	best := 0.0
	for i := range first {
		if i == m.DateCol || looksNumeric(first[i]) {
			continue
		}
		total := 0
		for _, row := range sample {
			if i < len(row) {
				total += len(row[i])
			}
		}
		if avg := float64(total) / sampleRows; avg > best {
			best = avg
			m.DescCol = i
		}
	}

	for i := range first {
		if i == m.DateCol || i == m.DescCol {
			continue
		}
		if _, ok := ParseAmount(first[i]); ok {
			m.AmountCol = i
			break
		}
	}
}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)

// looksNumeric reports whether a cell reads as a plain number once $ and
// thousands separators are stripped. A numeric prefix counts: "12 MAIN ST"
// style cells are still excluded from description candidacy.
func looksNumeric(cell string) bool {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(cell)
	return numericPrefix.MatchString(cleaned)
}
