package extract

import (
	"regexp"
	"strings"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

var (
	balanceSectionHeader = regexp.MustCompile(`(?i)Summary of Assets\s*(?:&|and)\s*Liabilities`)

	// holdingPattern matches positions reported as "ETH (61.763 @ $3,332.53)".
	holdingPattern = regexp.MustCompile(`\b([A-Z]{2,6})\s*\(\s*([\d,]+(?:\.\d+)?)\s*@\s*\$\s*([\d,]+(?:\.\d+)?)\s*\)`)

	// stablecoinPattern covers the USDC / USDCx sub-account lines. Balances
	// are split across accounts, so matches accumulate.
	stablecoinPattern = regexp.MustCompile(`(?i)\bUSDCx?\b[^$\d]*\$?\s*([\d,]+(?:\.\d+)?)`)

	// netLinePattern is the "Net $X" summary line. The reports treat net
	// assets and equity as the same figure.
	netLinePattern = regexp.MustCompile(`(?i)^\s*Net\b[^$\d]*\$\s*([\d,]+(?:\.\d+)?)`)

	// unreimbursedPattern picks up outstanding liabilities, written either as
	// "$(1,234.56)" or "($1,234.56)".
	unreimbursedPattern = regexp.MustCompile(`(?i)Unreimbursed[^$(]*[$(]+\s*\$?\s*([\d,]+(?:\.\d+)?)\s*\)?`)
)

// extractBalanceSheet parses the assets & liabilities summary. Holdings are
// not organized by quarter columns, so this runs on its own section scan
// independent of the resolved target column.
func extractBalanceSheet(text string, data *domain.ExtractedData) {
	loc := balanceSectionHeader.FindStringIndex(text)
	if loc == nil {
		return
	}

	for _, line := range strings.Split(text[loc[1]:], "\n") {
		if m := holdingPattern.FindStringSubmatch(line); m != nil {
			quantity, okQ := parseAmount(m[2])
			price, okP := parseAmount(m[3])
			if okQ && okP {
				sym := strings.ToLower(m[1])
				data.CustomMetrics[sym+"_holdings"] = quantity
				data.CustomMetrics[sym+"_price"] = price
				data.CustomMetrics[sym+"_value"] = quantity * price
			}
			continue
		}

		if m := stablecoinPattern.FindStringSubmatch(line); m != nil {
			if v, ok := parseAmount(m[1]); ok {
				data.CustomMetrics["usdc_holdings"] += v
			}
			continue
		}

		if m := netLinePattern.FindStringSubmatch(line); m != nil {
			if v, ok := parseAmount(m[1]); ok {
				data.Assets = &v
				equity := v
				data.Equity = &equity
				data.Sources["assets"] = SourcePositional
				data.Sources["equity"] = SourceDerived
			}
			continue
		}

		if m := unreimbursedPattern.FindStringSubmatch(line); m != nil {
			if v, ok := parseAmount(m[1]); ok {
				data.Liabilities = &v
				data.CustomMetrics["unreimbursed_expenses"] = v
				data.Sources["liabilities"] = SourcePositional
			}
		}
	}
}
