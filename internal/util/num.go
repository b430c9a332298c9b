package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	thousandDot   = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})+$`)
	thousandComma = regexp.MustCompile(`^-?\d{1,3}(?:,\d{3})+$`)
)

// ParseFloat parses a numeric cell from the operator's export, which is
// German-locale: comma decimal separators and space or dot thousands
// separators, sometimes with non-breaking spaces.
func ParseFloat(input string) (float64, error) {
	token := normalizeNumericToken(input)
	if token == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	parsed, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q", input)
	}
	return parsed, nil
}

func normalizeNumericToken(token string) string {
	compact := strings.ReplaceAll(token, " ", "")
	compact = strings.ReplaceAll(compact, " ", "")
	if thousandDot.MatchString(compact) {
		return strings.ReplaceAll(compact, ".", "")
	}
	if thousandComma.MatchString(compact) {
		return strings.ReplaceAll(compact, ",", "")
	}
	// mixed separators: whichever comes last is the decimal point,
	// the other is grouping ("1.234,5" vs "1,234.5")
	lastComma := strings.LastIndex(compact, ",")
	lastDot := strings.LastIndex(compact, ".")
	if lastComma >= 0 && lastDot >= 0 {
		if lastComma > lastDot {
			compact = strings.ReplaceAll(compact, ".", "")
			return strings.ReplaceAll(compact, ",", ".")
		}
		return strings.ReplaceAll(compact, ",", "")
	}
	if lastComma >= 0 {
		return strings.ReplaceAll(compact, ",", ".")
	}
	return compact
}
