package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackValue_SecondToLastWhenThreeOrMore(t *testing.T) {
	lines := []string{"Total Income   $12,345.00   $500,000.00   $912,345.00"}

	v, ok := fallbackValue(lines, 0)

	require.True(t, ok)
	assert.InDelta(t, 500000.0, v, 0.001)
}

func TestFallbackValue_LastWhenFewer(t *testing.T) {
	lines := []string{"Net", "$387,155.70"}

	v, ok := fallbackValue(lines, 0)

	require.True(t, ok)
	assert.InDelta(t, 387155.70, v, 0.001)
}

func TestFallbackValue_MagnitudeFloor(t *testing.T) {
	lines := []string{"Total Income $12.00"}

	_, ok := fallbackValue(lines, 0)

	assert.False(t, ok)
}

func TestFallbackValue_StopsAtFirstTokenLine(t *testing.T) {
	// The next labeled row's figures must not bleed into this one.
	lines := []string{
		"Total Income",
		"$500,000.00",
		"Total Expenses",
		"($400,000.00)",
	}

	v, ok := fallbackValue(lines, 0)

	require.True(t, ok)
	assert.InDelta(t, 500000.0, v, 0.001)
}

func TestExtractWithoutColumns(t *testing.T) {
	text := strings.Join([]string{
		"Quarterly summary (header damaged by scan)",
		"Total Income   $12,345.00   $500,000.00   $912,345.00",
		"Total Expenses   ($125,189.30)   ($400,000.00)   ($525,189.30)",
		"Net   $100,000.00",
	}, "\n")

	data := newData()
	extractWithoutColumns(text, data)

	require.NotNil(t, data.Revenue)
	assert.InDelta(t, 500000.0, *data.Revenue, 0.001)
	assert.Equal(t, SourceHeuristic, data.Sources["revenue"])

	require.NotNil(t, data.Expenses)
	assert.InDelta(t, 400000.0, *data.Expenses, 0.001)

	require.NotNil(t, data.NetIncome)
	assert.InDelta(t, 100000.0, *data.NetIncome, 0.001)
}
