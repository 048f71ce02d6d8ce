package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

// Strategy names recorded in ExtractedData.Sources.
const (
	SourcePositional     = "positional"
	SourceColumnFallback = "column-fallback"
	SourceHeuristic      = "heuristic"
	SourceDerived        = "derived"
)

// followLineWindow is how many lines below an anchor row are still considered
// part of it. OCR regularly wraps the numeric tail of a row onto the next
// line or two.
const followLineWindow = 2

// valueAt reads the figure for the target column out of an anchor row.
// The row's tokens are tried positionally first; when OCR dropped or merged
// columns and the row is short, the column-count fallbacks apply. The second
// return names the strategy that produced the value.
func valueAt(lines []string, anchor int, target domain.TargetColumn) (float64, string, bool) {
	for i := anchor; i <= anchor+followLineWindow && i < len(lines); i++ {
		amounts := scanAmounts(lines[i])
		if len(amounts) == 0 {
			continue
		}
		if len(amounts) >= target.ColumnIndex+1 {
			return amounts[target.ColumnIndex], SourcePositional, true
		}
		if v, ok := shortRowValue(amounts, target); ok {
			return v, SourceColumnFallback, true
		}
		return 0, "", false
	}
	return 0, "", false
}

// shortRowValue covers the layouts where a row carries fewer tokens than the
// header suggests, because OCR merged or dropped adjacent cells. Q4'24 scans
// lose their right-hand columns consistently, so that layout takes the row
// tail outright; otherwise only targets past the second column fall back to
// the tail. A short row for the second column stays empty: a lone token
// there is almost always the first column's figure.
func shortRowValue(amounts []float64, target domain.TargetColumn) (float64, bool) {
	if len(amounts) == 0 {
		return 0, false
	}
	switch {
	case normalizeHeader(target.DateRangeLabel) == "10/1/24 - 12/31/24":
		return amounts[len(amounts)-1], true
	case target.ColumnIndex >= 2:
		return amounts[len(amounts)-1], true
	}
	return 0, false
}

// lineItem names one catalogued sub-metric and the row label it appears
// under. Expense items are stored as absolute magnitudes: the sign on an
// expense row is presentation, not semantics.
type lineItem struct {
	metric  string
	label   *regexp.Regexp
	expense bool
}

var incomeItems = []lineItem{
	{metric: "ens_dao_service_provider_stream", label: regexp.MustCompile(`(?i)ENS DAO Service Provider Stream`)},
	{metric: "realized_gain_loss", label: regexp.MustCompile(`(?i)Realized Gain[ /]?Loss`)},
}

var expenseItems = []lineItem{
	{metric: "team", label: regexp.MustCompile(`(?i)\bTeam\b`), expense: true},
	{metric: "legal_services", label: regexp.MustCompile(`(?i)Legal Services`), expense: true},
	{metric: "conferences_travel", label: regexp.MustCompile(`(?i)Conferences\s*&\s*Travel`), expense: true},
	{metric: "eth_gas_transactions", label: regexp.MustCompile(`(?i)ETH Gas Transactions`), expense: true},
}

var catalogItems = append(append([]lineItem{}, incomeItems...), expenseItems...)

var (
	totalIncomeRow   = regexp.MustCompile(`(?i)Total Income`)
	totalExpensesRow = regexp.MustCompile(`(?i)Total Expenses`)
	netIncomeRow     = regexp.MustCompile(`(?i)Net Income`)
)

// extractStatement walks the income-statement rows against the resolved
// column and fills in totals plus the line-item catalog.
func extractStatement(lines []string, target domain.TargetColumn, data *domain.ExtractedData) {
	for i, line := range lines {
		switch {
		case totalIncomeRow.MatchString(line):
			if v, src, ok := valueAt(lines, i, target); ok && data.Revenue == nil {
				data.Revenue = &v
				data.Sources["revenue"] = src
			}
		case totalExpensesRow.MatchString(line):
			if v, src, ok := valueAt(lines, i, target); ok && data.Expenses == nil {
				abs := math.Abs(v)
				data.Expenses = &abs
				data.Sources["expenses"] = src
			}
		case netIncomeRow.MatchString(line):
			if v, src, ok := valueAt(lines, i, target); ok && data.NetIncome == nil {
				data.NetIncome = &v
				data.Sources["net_income"] = src
			}
		}

		// Subtotal rows repeat line-item labels; skip them to avoid double
		// counting.
		if strings.Contains(line, "Total") {
			continue
		}
		for _, item := range catalogItems {
			if !item.label.MatchString(line) {
				continue
			}
			if _, seen := data.CustomMetrics[item.metric]; seen {
				continue
			}
			if v, _, ok := valueAt(lines, i, target); ok {
				if item.expense {
					v = math.Abs(v)
				}
				data.CustomMetrics[item.metric] = v
			}
		}
	}
}
