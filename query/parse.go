package query

import (
	"strconv"
	"strings"
	"unicode"
)

// LenientInt reads a number out of a free-text field like "155,000+" by
// stripping every non-digit character before parsing. Anything that still
// fails to parse, including the empty string, is 0. This is the documented
// parsing rule for the student-count sort, not silent coercion: the fields
// stay strings in the model.
func LenientInt(s string) int {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// LeadingInt parses the integer prefix of a string, so "6-7 years" reads as
// 6 and "4 years" as 4. Leading whitespace is skipped; a string with no
// numeric prefix is 0.
func LeadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
