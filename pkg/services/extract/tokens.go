package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern recognizes the two token shapes OCR produces for money:
// currency-prefixed values ($1,234.56) and parenthesized negatives,
// with or without the currency sign inside the parens.
var amountPattern = regexp.MustCompile(`\(\s*\$?\s*\d[\d,]*(?:\.\d+)?\s*\)|\$\s*\d[\d,]*(?:\.\d+)?`)

// plainNumberPattern parses the numeric body once a token has been isolated.
var plainNumberPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// parseAmount converts one matched token to a float. Parenthesized tokens
// come back negative.
func parseAmount(raw string) (float64, bool) {
	negative := strings.HasPrefix(strings.TrimSpace(raw), "(")
	body := plainNumberPattern.FindString(raw)
	if body == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(body, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

// scanAmounts returns every monetary token on a line, left to right.
func scanAmounts(line string) []float64 {
	var amounts []float64
	for _, raw := range amountPattern.FindAllString(line, -1) {
		if v, ok := parseAmount(raw); ok {
			amounts = append(amounts, v)
		}
	}
	return amounts
}
