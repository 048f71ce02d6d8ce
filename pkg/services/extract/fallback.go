package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

// minPlausibleAmount rejects stray OCR digits (page numbers, percentages)
// when no column structure is available to validate a token's position.
// Tuned against the observed document family; see the fallback notes below.
const minPlausibleAmount = 100

// fallbackScanWindow is wider than the positional window because without
// headers there is no layout to trust; figures drift further from labels.
const fallbackScanWindow = 3

var fallbackNetRow = regexp.MustCompile(`(?i)^\s*Net\b`)

// extractWithoutColumns is the last-resort path, used only when the detector
// found zero period headers. For each labeled row it gathers every token on
// the row and the lines below it, then takes the second-to-last token when
// three or more are present — in these layouts the per-period figure sits
// just before a cumulative grand-total column — and the last token otherwise.
// Materially lower precision than positional extraction, by construction.
func extractWithoutColumns(text string, data *domain.ExtractedData) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case totalIncomeRow.MatchString(line):
			if v, ok := fallbackValue(lines, i); ok && data.Revenue == nil {
				data.Revenue = &v
				data.Sources["revenue"] = SourceHeuristic
			}
		case totalExpensesRow.MatchString(line):
			if v, ok := fallbackValue(lines, i); ok && data.Expenses == nil {
				abs := math.Abs(v)
				data.Expenses = &abs
				data.Sources["expenses"] = SourceHeuristic
			}
		case fallbackNetRow.MatchString(line):
			if v, ok := fallbackValue(lines, i); ok && data.NetIncome == nil {
				data.NetIncome = &v
				data.Sources["net_income"] = SourceHeuristic
			}
		}
	}
}

func fallbackValue(lines []string, anchor int) (float64, bool) {
	var amounts []float64
	for i := anchor; i <= anchor+fallbackScanWindow && i < len(lines); i++ {
		// Stop at the first token-bearing line: collecting further would
		// bleed the next labeled row's figures into this one.
		if amounts = scanAmounts(lines[i]); len(amounts) > 0 {
			break
		}
	}
	if len(amounts) == 0 {
		return 0, false
	}

	v := amounts[len(amounts)-1]
	if len(amounts) >= 3 {
		v = amounts[len(amounts)-2]
	}
	if math.Abs(v) < minPlausibleAmount {
		return 0, false
	}
	return v, true
}
