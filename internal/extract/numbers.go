package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var numberRun = regexp.MustCompile(`[\d.,]*\d`)

// NormalizePrice converts a pt-BR formatted price ("R$ 1.234,56") into a
// canonical decimal string ("1234.56"). Thousands dots are stripped and the
// decimal comma becomes a dot. Returns "" when no parseable number is found.
func NormalizePrice(raw string) string {
	m := numberRun.FindString(raw)
	if m == "" {
		return ""
	}
	m = strings.ReplaceAll(m, ".", "")
	m = strings.ReplaceAll(m, ",", ".")
	if _, err := strconv.ParseFloat(m, 64); err != nil {
		return ""
	}
	return m
}

// ParseRating reads a 0-10 rating from free text. Anything unparseable is 0;
// values outside the scale are clamped.
func ParseRating(raw string) float64 {
	m := numberRun.FindString(raw)
	if m == "" {
		return 0
	}
	m = strings.ReplaceAll(m, ",", ".")
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// decimalComma converts "3,6" style decimals to "3.6"
func decimalComma(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

// collapseSpaces removes all whitespace, turning "8 GB" into "8GB"
func collapseSpaces(s string) string {
	return spaceRun.ReplaceAllString(s, "")
}
