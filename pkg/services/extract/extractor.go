// Package extract recovers structured quarterly metrics from OCR text of
// cumulative multi-column financial statements. The layout varies release to
// release, so extraction is an ordered cascade of heuristics: positional
// column reads first, short-row fallbacks next, and a label-only pass when no
// column structure is detectable at all.
package extract

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

type Engine struct {
	periods []PeriodPattern
}

func NewEngine() *Engine {
	return &Engine{periods: DefaultPeriodPatterns}
}

// NewEngineWithPeriods overrides the priority table, letting callers add new
// quarters as data instead of code.
func NewEngineWithPeriods(periods []PeriodPattern) *Engine {
	return &Engine{periods: periods}
}

// Extract runs the full parse over one report's OCR blob. It never fails:
// fields that cannot be recovered stay nil, and a mostly-empty result is
// preferred over an error because partial figures are still useful
// downstream.
func (e *Engine) Extract(ctx context.Context, text string) *domain.ExtractedData {
	logger := zerolog.Ctx(ctx)

	data := &domain.ExtractedData{
		CustomMetrics: make(map[string]float64),
		Sources:       make(map[string]string),
		RawText:       text,
	}

	cols := DetectColumns(text)
	if target, ok := ResolveTarget(cols, e.periods); ok {
		logger.Debug().
			Int("columns", len(cols)).
			Int("target_index", target.ColumnIndex).
			Str("target_label", target.DateRangeLabel).
			Msg("resolved target column")
		extractStatement(strings.Split(text, "\n"), target, data)
	} else {
		logger.Warn().Msg("no period columns detected, falling back to heuristic extraction")
		extractWithoutColumns(text, data)
	}

	// Holdings are not organized by quarter columns; the balance-sheet
	// section is scanned on its own either way.
	extractBalanceSheet(text, data)

	if data.NetIncome == nil && data.Revenue != nil && data.Expenses != nil {
		net := *data.Revenue - *data.Expenses
		data.NetIncome = &net
		data.Sources["net_income"] = SourceDerived
	}

	return data
}
