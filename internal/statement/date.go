package statement

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// dateFormat is the normalized form every parsed date is rendered in.
const dateFormat = "2006-01-02"

// The three shapes we accept, tried in this order. Digit counts only: no
// month/day range validation, so "13/40/2024" normalizes to "2024-13-40"
// rather than being rejected. Anything fuzzier risks misreading a plain
// number as a date.
var (
	dateMDY = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	dateYMD = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dateMDY2 = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)
)

// ParseDate normalizes a raw date cell to zero-padded YYYY-MM-DD. It
// recognizes MM/DD/YYYY, YYYY-MM-DD, and MM/DD/YY (two-digit years above 50
// are 19xx, the rest 20xx). Unrecognized shapes report false.
func ParseDate(s string) (string, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return "", false
	}

	if m := dateMDY.FindStringSubmatch(cleaned); m != nil {
		return formatDate(m[3], m[1], m[2]), true
	}
	if m := dateYMD.FindStringSubmatch(cleaned); m != nil {
		return formatDate(m[1], m[2], m[3]), true
	}
	if m := dateMDY2.FindStringSubmatch(cleaned); m != nil {
		yy, _ := strconv.Atoi(m[3])
		century := "20"
		if yy > 50 {
			century = "19"
		}
		return formatDate(century+m[3], m[1], m[2]), true
	}
	return "", false
}

func formatDate(year, month, day string) string {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, m, d)
}
