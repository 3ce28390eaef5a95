package statement

import "strings"

// RawRow is one tokenized statement line. Rows from the same file may have
// different cell counts when the input is malformed.
type RawRow []string

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Tokenize splits raw statement text into rows of trimmed cells. Blank lines
// are dropped rather than forwarded as empty rows. Only commas delimit cells;
// files using semicolons or tabs tokenize into single-cell rows and fail
// column mapping downstream, which surfaces as zero parsed transactions
// instead of garbage.
func Tokenize(text string) []RawRow {
	var rows []RawRow
	for _, line := range strings.Split(lineBreaks.Replace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitLine(line))
	}
	return rows
}

// splitLine scans a line with a single quote-toggle state. A doubled quote
// inside a quoted cell is a literal quote; a comma only ends a cell outside
// quoted mode.
func splitLine(line string) RawRow {
	var row RawRow
	var cell strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch ch := runes[i]; {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cell.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			row = append(row, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(ch)
		}
	}
	row = append(row, strings.TrimSpace(cell.String()))
	return row
}

// HasHeader reports whether row 0 looks like a header. The check is a single
// cell: if the first cell parses as a date the file is assumed headerless.
// A header whose first column happens to look like a date will be
// misclassified as data; that trade is deliberate.
func HasHeader(rows []RawRow) bool {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return false
	}
	_, isDate := ParseDate(rows[0][0])
	return !isDate
}
