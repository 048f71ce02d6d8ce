package domain

import "fmt"

// Quarter identifies one calendar quarter of a reporting year.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// ParseQuarter accepts the canonical "Q1".."Q4" form, case-insensitively.
func ParseQuarter(s string) (Quarter, error) {
	switch s {
	case "Q1", "q1":
		return Q1, nil
	case "Q2", "q2":
		return Q2, nil
	case "Q3", "q3":
		return Q3, nil
	case "Q4", "q4":
		return Q4, nil
	}
	return "", fmt.Errorf("invalid quarter %q, expected Q1..Q4", s)
}

// ReportKey is the identity of a report: one quarter of one year.
type ReportKey struct {
	Year    int
	Quarter Quarter
}

func (k ReportKey) String() string {
	return fmt.Sprintf("%d%s", k.Year, k.Quarter)
}

// Report is one quarterly financial statement: the scanned pages it was
// published as, plus whatever the extraction pipeline recovered from them.
// Extracted stays nil until a successful extraction run.
type Report struct {
	Quarter   Quarter
	Year      int
	ImageRefs []string
	Extracted *ExtractedData
}

func (r Report) Key() ReportKey {
	return ReportKey{Year: r.Year, Quarter: r.Quarter}
}

// ExtractedData holds the metrics recovered from one report. Every top-level
// figure is a pointer: nil means "not found in the source text", which is
// distinct from a genuine zero.
type ExtractedData struct {
	Revenue         *float64
	Expenses        *float64
	NetIncome       *float64
	GrossProfit     *float64
	OperatingIncome *float64
	Assets          *float64
	Liabilities     *float64
	Equity          *float64
	CashFlow        *float64

	// CustomMetrics carries named sub-metrics (income/expense line items,
	// per-asset holdings) that have no fixed top-level slot.
	CustomMetrics map[string]float64

	// Sources records which extraction strategy produced each top-level
	// field: "positional", "column-fallback", "heuristic" or "derived".
	Sources map[string]string

	// RawText is the full OCR concatenation, retained for audit.
	RawText string
}

// QuarterColumn is one period header detected in the OCR text. CharOffset is
// the match position in the blob; offset order is assumed to equal
// left-to-right column order in the source table.
type QuarterColumn struct {
	DateRangeLabel string
	CharOffset     int
}

// TargetColumn is the column resolved for the requested period. ColumnIndex
// is its ordinal among all detected columns and indexes into the numeric
// tokens found on a row.
type TargetColumn struct {
	QuarterColumn
	ColumnIndex int
}
