package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

func TestDetectColumns_SortedByOffset(t *testing.T) {
	text := "Income Statement (Unaudited)\n" +
		"                7/1/24 - 9/30/24    10/1/24 - 12/31/24    Through 2024\n" +
		"Total Income    $100.00             $200.00               $300.00\n"

	cols := DetectColumns(text)

	require.Len(t, cols, 3)
	assert.Equal(t, "7/1/24 - 9/30/24", cols[0].DateRangeLabel)
	assert.Equal(t, "10/1/24 - 12/31/24", cols[1].DateRangeLabel)
	assert.Equal(t, "Through 2024", cols[2].DateRangeLabel)
	assert.Less(t, cols[0].CharOffset, cols[1].CharOffset)
	assert.Less(t, cols[1].CharOffset, cols[2].CharOffset)
}

func TestDetectColumns_EnDashAndNoHeaders(t *testing.T) {
	cols := DetectColumns("4/1/25 – 6/30/25")
	require.Len(t, cols, 1)

	assert.Empty(t, DetectColumns("Total Income $100.00\nno headers here"))
}

func TestResolveTarget_PriorityTableWinsOverDetectionOrder(t *testing.T) {
	// The unrelated range is detected first; the table-listed Q4'24 range
	// must still win.
	cols := []domain.QuarterColumn{
		{DateRangeLabel: "1/15/23 - 2/15/23", CharOffset: 10},
		{DateRangeLabel: "10/1/24 - 12/31/24", CharOffset: 40},
	}

	target, ok := ResolveTarget(cols, DefaultPeriodPatterns)

	require.True(t, ok)
	assert.Equal(t, 1, target.ColumnIndex)
	assert.Equal(t, "10/1/24 - 12/31/24", target.DateRangeLabel)
}

func TestResolveTarget_TableOrderBeatsColumnOrder(t *testing.T) {
	// Both ranges are table-listed; the more recent table entry wins even
	// though the older range sits first in the text.
	cols := []domain.QuarterColumn{
		{DateRangeLabel: "7/1/24 - 9/30/24", CharOffset: 5},
		{DateRangeLabel: "1/1/25 - 3/31/25", CharOffset: 30},
	}

	target, ok := ResolveTarget(cols, DefaultPeriodPatterns)

	require.True(t, ok)
	assert.Equal(t, "1/1/25 - 3/31/25", target.DateRangeLabel)
	assert.Equal(t, 1, target.ColumnIndex)
}

func TestResolveTarget_LastColumnFallback(t *testing.T) {
	cols := []domain.QuarterColumn{
		{DateRangeLabel: "1/1/22 - 3/31/22", CharOffset: 5},
		{DateRangeLabel: "4/1/22 - 6/30/22", CharOffset: 30},
	}

	target, ok := ResolveTarget(cols, DefaultPeriodPatterns)

	require.True(t, ok)
	assert.Equal(t, 1, target.ColumnIndex)
	assert.Equal(t, "4/1/22 - 6/30/22", target.DateRangeLabel)
}

func TestResolveTarget_NoColumns(t *testing.T) {
	_, ok := ResolveTarget(nil, DefaultPeriodPatterns)
	assert.False(t, ok)
}

func TestResolveTarget_NormalizesDashSpacing(t *testing.T) {
	cols := []domain.QuarterColumn{
		{DateRangeLabel: "10/1/24-12/31/24", CharOffset: 0},
	}

	target, ok := ResolveTarget(cols, DefaultPeriodPatterns)

	require.True(t, ok)
	assert.Equal(t, 0, target.ColumnIndex)
}
