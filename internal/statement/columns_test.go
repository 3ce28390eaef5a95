package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferColumns_FixedShapes(t *testing.T) {
	tests := []struct {
		name string
		rows []RawRow
		want ColumnMapping
	}{
		{
			"five columns debit credit balance",
			[]RawRow{{"01/15/2024", "AWS", "49.99", "", "1000.00"}},
			ColumnMapping{DateCol: 0, DescCol: 1, DebitCol: 2, CreditCol: 3, AmountCol: Absent},
		},
		{
			"four columns amount balance",
			[]RawRow{{"01/15/2024", "AWS", "-49.99", "1000.00"}},
			ColumnMapping{DateCol: 0, DescCol: 1, DebitCol: Absent, CreditCol: Absent, AmountCol: 2},
		},
		{
			"three columns amount",
			[]RawRow{{"01/15/2024", "AWS", "-49.99"}},
			ColumnMapping{DateCol: 0, DescCol: 1, DebitCol: Absent, CreditCol: Absent, AmountCol: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferColumns(tt.rows))
		})
	}
}

func TestInferColumns_NoDateColumn(t *testing.T) {
	m := InferColumns([]RawRow{{"abc", "def", "ghi", "jkl", "mno", "pqr"}})
	assert.Equal(t, Absent, m.DateCol)
}

func TestInferColumns_Heuristic(t *testing.T) {
	// Six columns: no fixed shape. Description is the longest non-numeric
	// column; amount is the first remaining parseable column.
	rows := []RawRow{
		{"01/15/2024", "REF88", "AMAZON WEB SERVICES BILL", "$49.99", "1000.00", "x"},
		{"01/16/2024", "REF89", "PAYMENT THANK YOU", "$500.00", "1500.00", "y"},
	}
	m := InferColumns(rows)
	assert.Equal(t, 0, m.DateCol)
	assert.Equal(t, 2, m.DescCol)
	assert.Equal(t, 3, m.AmountCol)
	assert.False(t, m.HasDebitCredit())
}

func TestInferColumns_HeuristicSkipsNumericDescription(t *testing.T) {
	// Column 1 is long but numeric-prefixed, so it cannot be description.
	rows := []RawRow{
		{"01/15/2024", "12 MAIN ST UNIT 4", "COFFEE SHOP", "4.50", "a", "b"},
	}
	m := InferColumns(rows)
	assert.Equal(t, 2, m.DescCol)
	assert.Equal(t, 3, m.AmountCol)
}

func TestInferColumns_Empty(t *testing.T) {
	m := InferColumns(nil)
	assert.Equal(t, ColumnMapping{Absent, Absent, Absent, Absent, Absent}, m)
	assert.False(t, m.HasDebitCredit())
	assert.False(t, m.HasAmount())
}

func TestLooksNumeric(t *testing.T) {
	assert.True(t, looksNumeric("1234.56"))
	assert.True(t, looksNumeric("$1,234.56"))
	assert.True(t, looksNumeric("-42"))
	assert.True(t, looksNumeric("12 MAIN ST"))
	assert.False(t, looksNumeric("COFFEE"))
	assert.False(t, looksNumeric(""))
}
