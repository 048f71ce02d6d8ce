package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

func target(idx int) domain.TargetColumn {
	return domain.TargetColumn{
		QuarterColumn: domain.QuarterColumn{DateRangeLabel: "10/1/24 - 12/31/24"},
		ColumnIndex:   idx,
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"$1,234.56", 1234.56},
		{"(1,234.56)", -1234.56},
		{"($125,189.30)", -125189.30},
		{"$ 300", 300},
	}
	for _, tc := range cases {
		got, ok := parseAmount(tc.raw)
		require.True(t, ok, tc.raw)
		assert.InDelta(t, tc.want, got, 0.001, tc.raw)
	}
}

func TestScanAmounts_IgnoresBareNumbers(t *testing.T) {
	// Page numbers and dates are not monetary tokens.
	amounts := scanAmounts("Page 3 of 12   10/1/24   $500.00")
	require.Len(t, amounts, 1)
	assert.InDelta(t, 500.0, amounts[0], 0.001)
}

func TestValueAt_DirectIndex(t *testing.T) {
	lines := []string{"Total Income   $100.00   $200.00   $300.00"}

	v, src, ok := valueAt(lines, 0, target(1))

	require.True(t, ok)
	assert.InDelta(t, 200.0, v, 0.001)
	assert.Equal(t, SourcePositional, src)
}

func TestValueAt_WrappedOntoFollowingLine(t *testing.T) {
	lines := []string{
		"Total Income",
		"$100.00   $200.00",
	}

	v, _, ok := valueAt(lines, 0, target(1))

	require.True(t, ok)
	assert.InDelta(t, 200.0, v, 0.001)
}

func TestValueAt_ShortRowTakesTail(t *testing.T) {
	// Third column requested but OCR merged the row down to two tokens.
	lines := []string{"Total Income   $100.00   $200.00"}

	v, src, ok := valueAt(lines, 0, target(2))

	require.True(t, ok)
	assert.InDelta(t, 200.0, v, 0.001)
	assert.Equal(t, SourceColumnFallback, src)
}

func TestValueAt_SecondColumnKeepsSlot(t *testing.T) {
	lines := []string{"Total Income   $100.00   $200.00"}

	v, src, ok := valueAt(lines, 0, target(1))

	require.True(t, ok)
	assert.InDelta(t, 200.0, v, 0.001)
	assert.Equal(t, SourcePositional, src)
}

func TestValueAt_SecondColumnShortRowYieldsNothing(t *testing.T) {
	// A lone surviving token belongs to the first column; the second column
	// must not claim it.
	tgt := domain.TargetColumn{
		QuarterColumn: domain.QuarterColumn{DateRangeLabel: "4/1/25 - 6/30/25"},
		ColumnIndex:   1,
	}
	lines := []string{"Total Income   $100.00"}

	_, _, ok := valueAt(lines, 0, tgt)

	assert.False(t, ok)
}

func TestValueAt_NoTokensInWindow(t *testing.T) {
	lines := []string{"Total Income", "", "", "$100.00"}

	_, _, ok := valueAt(lines, 0, target(0))

	assert.False(t, ok)
}

func TestExtractStatement_TotalsAndLineItems(t *testing.T) {
	text := strings.Join([]string{
		"ENS DAO Service Provider Stream   $300,000.00   $310,000.00",
		"Realized Gain/Loss                $1,200.00     ($2,400.00)",
		"Total Income                      $301,200.00   $307,600.00",
		"Team                              ($80,000.00)  ($82,000.00)",
		"Legal Services                    ($5,000.00)   ($6,000.00)",
		"Conferences & Travel              ($3,500.00)   ($4,100.00)",
		"ETH Gas Transactions              ($250.00)     ($310.00)",
		"Total Expenses                    ($88,750.00)  ($92,410.00)",
	}, "\n")

	data := &domain.ExtractedData{
		CustomMetrics: make(map[string]float64),
		Sources:       make(map[string]string),
	}
	extractStatement(strings.Split(text, "\n"), target(1), data)

	require.NotNil(t, data.Revenue)
	assert.InDelta(t, 307600.0, *data.Revenue, 0.001)
	require.NotNil(t, data.Expenses)
	assert.InDelta(t, 92410.0, *data.Expenses, 0.001, "expenses must be stored as a magnitude")

	assert.InDelta(t, 310000.0, data.CustomMetrics["ens_dao_service_provider_stream"], 0.001)
	assert.InDelta(t, -2400.0, data.CustomMetrics["realized_gain_loss"], 0.001)
	assert.InDelta(t, 82000.0, data.CustomMetrics["team"], 0.001)
	assert.InDelta(t, 6000.0, data.CustomMetrics["legal_services"], 0.001)
	assert.InDelta(t, 4100.0, data.CustomMetrics["conferences_travel"], 0.001)
	assert.InDelta(t, 310.0, data.CustomMetrics["eth_gas_transactions"], 0.001)
}

func TestExtractStatement_SkipsSubtotalRows(t *testing.T) {
	lines := []string{
		"Total Team Expenses   ($99,999.00)",
		"Team                  ($80,000.00)",
	}

	data := &domain.ExtractedData{
		CustomMetrics: make(map[string]float64),
		Sources:       make(map[string]string),
	}
	extractStatement(lines, target(0), data)

	assert.InDelta(t, 80000.0, data.CustomMetrics["team"], 0.001)
}
