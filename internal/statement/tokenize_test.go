package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []RawRow
	}{
		{
			"simple",
			"a,b,c",
			[]RawRow{{"a", "b", "c"}},
		},
		{
			"quoted comma",
			`a,"b,c",d`,
			[]RawRow{{"a", "b,c", "d"}},
		},
		{
			"escaped quote",
			`a,"b""c",d`,
			[]RawRow{{"a", `b"c`, "d"}},
		},
		{
			"cells trimmed",
			" a , b ,c ",
			[]RawRow{{"a", "b", "c"}},
		},
		{
			"crlf lines",
			"a,b\r\nc,d",
			[]RawRow{{"a", "b"}, {"c", "d"}},
		},
		{
			"bare cr lines",
			"a,b\rc,d",
			[]RawRow{{"a", "b"}, {"c", "d"}},
		},
		{
			"blank lines dropped",
			"a,b\n\n   \nc,d\n",
			[]RawRow{{"a", "b"}, {"c", "d"}},
		},
		{
			"trailing empty cell kept",
			"a,b,",
			[]RawRow{{"a", "b", ""}},
		},
		{
			"empty input",
			"",
			nil,
		},
		{
			"heterogeneous arity",
			"a,b,c\nd,e",
			[]RawRow{{"a", "b", "c"}, {"d", "e"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestHasHeader(t *testing.T) {
	withHeader := Tokenize("Date,Description,Amount\n01/15/2024,Coffee,-4.50")
	require.Len(t, withHeader, 2)
	assert.True(t, HasHeader(withHeader))

	headerless := Tokenize("01/15/2024,Coffee,-4.50")
	assert.False(t, HasHeader(headerless))

	assert.False(t, HasHeader(nil))
}

// The header check reads only the first cell: a header starting with a
// date-shaped value is misclassified as data. Known limitation, pinned here.
func TestHasHeader_DateShapedHeaderCell(t *testing.T) {
	rows := Tokenize("2024-01-01,Description,Amount\n01/15/2024,Coffee,-4.50")
	assert.False(t, HasHeader(rows))
}
