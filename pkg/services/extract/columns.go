package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

var (
	// dateRangePattern matches the short-date column headers the reports use,
	// e.g. "4/1/24 - 6/30/24". OCR sometimes substitutes an en dash.
	dateRangePattern = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}\s*[-–]\s*\d{1,2}/\d{1,2}/\d{2,4}`)

	// throughPattern matches the cumulative "Through 2024" style header that
	// closes out the right-hand side of the table.
	throughPattern = regexp.MustCompile(`(?i)\bThrough\s+20\d{2}\b`)
)

// DetectColumns scans the OCR blob for period headers and returns them sorted
// by character offset. Offset order is taken as left-to-right column order in
// the source table; that assumption is what positional extraction rests on.
func DetectColumns(text string) []domain.QuarterColumn {
	var cols []domain.QuarterColumn
	for _, pattern := range []*regexp.Regexp{dateRangePattern, throughPattern} {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			cols = append(cols, domain.QuarterColumn{
				DateRangeLabel: text[loc[0]:loc[1]],
				CharOffset:     loc[0],
			})
		}
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].CharOffset < cols[j].CharOffset })
	return cols
}

// PeriodPattern binds one reporting period to the header literals it has been
// published under. Extending the engine to a new quarter means prepending an
// entry here, not touching resolution logic.
type PeriodPattern struct {
	Year     int
	Quarter  domain.Quarter
	Patterns []string
}

// DefaultPeriodPatterns lists the known historical layouts, most recent
// first. Resolution tries them in order and takes the first one present in
// the detected columns.
var DefaultPeriodPatterns = []PeriodPattern{
	{Year: 2025, Quarter: domain.Q2, Patterns: []string{"4/1/25 - 6/30/25", "4/1/2025 - 6/30/2025"}},
	{Year: 2025, Quarter: domain.Q1, Patterns: []string{"1/1/25 - 3/31/25", "1/1/2025 - 3/31/2025"}},
	{Year: 2024, Quarter: domain.Q4, Patterns: []string{"10/1/24 - 12/31/24", "10/1/2024 - 12/31/2024"}},
	{Year: 2024, Quarter: domain.Q3, Patterns: []string{"7/1/24 - 9/30/24", "7/1/2024 - 9/30/2024"}},
	{Year: 2024, Quarter: domain.Q2, Patterns: []string{"4/1/24 - 6/30/24", "4/1/2024 - 6/30/2024"}},
}

var headerSpacing = regexp.MustCompile(`\s*[-–]\s*`)

// normalizeHeader collapses dash spacing so OCR variants of the same range
// compare equal.
func normalizeHeader(s string) string {
	return headerSpacing.ReplaceAllString(strings.TrimSpace(s), " - ")
}

// ResolveTarget picks the column for the current request. The priority table
// wins over the caller's period: the first table entry whose literal appears
// among the detected headers is taken regardless of which quarter was asked
// for, because the table is ordered by how recent the layout is. With no
// table hit the last detected column is assumed to be the most recent period.
// Zero detected columns means resolution failed and the caller must fall back
// to the heuristic extractor.
func ResolveTarget(cols []domain.QuarterColumn, table []PeriodPattern) (domain.TargetColumn, bool) {
	if len(cols) == 0 {
		return domain.TargetColumn{}, false
	}
	for _, period := range table {
		for idx, col := range cols {
			for _, pattern := range period.Patterns {
				if normalizeHeader(col.DateRangeLabel) == normalizeHeader(pattern) {
					return domain.TargetColumn{QuarterColumn: col, ColumnIndex: idx}, true
				}
			}
		}
	}
	last := len(cols) - 1
	return domain.TargetColumn{QuarterColumn: cols[last], ColumnIndex: last}, true
}
