package api

// ReportKey identifies an available report.
type ReportKey struct {
	Quarter string `json:"quarter"`
	Year    int    `json:"year"`
}

// Report is the wire form of one quarterly report.
type Report struct {
	Quarter string         `json:"quarter"`
	Year    int            `json:"year"`
	Images  []string       `json:"images,omitempty"`
	Data    *ExtractedData `json:"data,omitempty"`
}

// ExtractedData mirrors domain.ExtractedData; absent figures are omitted
// rather than serialized as zero.
type ExtractedData struct {
	Revenue         *float64           `json:"revenue,omitempty"`
	Expenses        *float64           `json:"expenses,omitempty"`
	NetIncome       *float64           `json:"net_income,omitempty"`
	GrossProfit     *float64           `json:"gross_profit,omitempty"`
	OperatingIncome *float64           `json:"operating_income,omitempty"`
	Assets          *float64           `json:"assets,omitempty"`
	Liabilities     *float64           `json:"liabilities,omitempty"`
	Equity          *float64           `json:"equity,omitempty"`
	CashFlow        *float64           `json:"cash_flow,omitempty"`
	CustomMetrics   map[string]float64 `json:"custom_metrics,omitempty"`
	Sources         map[string]string  `json:"sources,omitempty"`
	RawText         string             `json:"raw_text,omitempty"`
}
