package parser

import (
	"fmt"
	"strconv"
)

// ResolveDate converts (day, month abbreviation, year) into a canonical
// YYYY-MM-DD string. The month lookup uses the first three characters of
// monthAbbrev, case-normalized. An unparseable day or an unrecognized month
// abbreviation is an error; the original site occasionally carries garbage
// month tokens and those entries are dropped rather than emitted with a
// placeholder month.
func (r *Rules) ResolveDate(dayStr, monthAbbrev string, year int) (string, error) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", dayStr, err)
	}

	abbrev := normalizeMonthAbbrev(monthAbbrev)
	monthNum, ok := r.Months[abbrev]
	if !ok {
		return "", fmt.Errorf("unknown month abbreviation %q", monthAbbrev)
	}

	return fmt.Sprintf("%d-%s-%02d", year, monthNum, day), nil
}

// normalizeMonthAbbrev maps "NOV", "nov", "November" etc. to "Nov".
func normalizeMonthAbbrev(s string) string {
	if len(s) < 3 {
		return s
	}
	s = s[:3]
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	for i := 1; i < 3; i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
