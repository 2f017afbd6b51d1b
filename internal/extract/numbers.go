// Package extract implements the heuristic engine that turns attachment
// content into validated line items: Brazilian numeric parsing, header
// synonym matching, stateful row conversion, the per-format extractors and
// the free-text fallback scanner.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// numberRun matches the first contiguous run of digits and decimal points
// left after separator cleanup.
var numberRun = regexp.MustCompile(`[\d.]+`)

// ParseNumber converts Brazilian-formatted numeric text to a positive
// value: thousands separators ("1.234") are dropped and the decimal comma
// becomes a point. ok is false when the text holds no parseable positive
// number. Zero and negative values are invalid; quantities and item
// numbers are always positive.
func ParseNumber(raw string) (float64, bool) {
	clean := strings.ReplaceAll(raw, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	loc := numberRun.FindStringIndex(clean)
	if loc == nil {
		return 0, false
	}
	if loc[0] > 0 && clean[loc[0]-1] == '-' {
		return 0, false
	}

	v, err := strconv.ParseFloat(clean[loc[0]:loc[1]], 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
