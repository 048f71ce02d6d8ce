package adapters

import (
	"maps"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/api"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

func MapDomainReportKeyToAPI(key domain.ReportKey) api.ReportKey {
	return api.ReportKey{
		Quarter: string(key.Quarter),
		Year:    key.Year,
	}
}

// MapDomainReportToAPI converts a report for the wire. includeRaw controls
// whether the full OCR text rides along; list responses leave it out.
func MapDomainReportToAPI(report domain.Report, includeRaw bool) api.Report {
	out := api.Report{
		Quarter: string(report.Quarter),
		Year:    report.Year,
		Images:  report.ImageRefs,
	}
	if report.Extracted == nil {
		return out
	}

	data := &api.ExtractedData{
		Revenue:         report.Extracted.Revenue,
		Expenses:        report.Extracted.Expenses,
		NetIncome:       report.Extracted.NetIncome,
		GrossProfit:     report.Extracted.GrossProfit,
		OperatingIncome: report.Extracted.OperatingIncome,
		Assets:          report.Extracted.Assets,
		Liabilities:     report.Extracted.Liabilities,
		Equity:          report.Extracted.Equity,
		CashFlow:        report.Extracted.CashFlow,
		CustomMetrics:   maps.Clone(report.Extracted.CustomMetrics),
		Sources:         maps.Clone(report.Extracted.Sources),
	}
	if includeRaw {
		data.RawText = report.Extracted.RawText
	}
	out.Data = data
	return out
}
