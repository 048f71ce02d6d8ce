package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

type TableConfig struct {
	NameWidth   int
	ValueWidth  int
	SourceWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:   36,
		ValueWidth:  20,
		SourceWidth: 16,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// HandleKeys prints the available report periods.
func (c *Reporter) HandleKeys(keys []domain.ReportKey) error {
	if len(keys) == 0 {
		_, err := fmt.Fprintln(c.writer, "no reports registered")
		return err
	}
	for _, key := range keys {
		if _, err := fmt.Fprintf(c.writer, "%d %s\n", key.Year, key.Quarter); err != nil {
			return err
		}
	}
	return nil
}

type metricRow struct {
	Name   string
	Value  string
	Source string
}

type reportView struct {
	Key     string
	Images  int
	Rows    []metricRow
	RawText string
}

// Handle renders the extracted metrics of one report as a text table.
func (c *Reporter) Handle(report domain.Report, includeRaw bool) error {
	view := reportView{
		Key:    report.Key().String(),
		Images: len(report.ImageRefs),
	}
	if report.Extracted != nil {
		view.Rows = c.metricRows(report.Extracted)
		if includeRaw {
			view.RawText = report.Extracted.RawText
		}
	}

	funcMap := template.FuncMap{
		"formatRow": func(name, value, source string) string {
			return fmt.Sprintf("| %-*s | %*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.SourceWidth, source)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.SourceWidth+2))
		},
	}

	tmpl := `
{{.Key}} ({{.Images}} source images)
{{if .Rows}}
{{separator}}
{{formatRow "Metric" "Value" "Source"}}
{{separator}}
{{range .Rows}}{{formatRow .Name .Value .Source}}
{{end}}{{separator}}
{{else}}
no extracted data
{{end}}{{if .RawText}}
--- raw OCR text ---
{{.RawText}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}

func (c *Reporter) metricRows(data *domain.ExtractedData) []metricRow {
	var rows []metricRow
	add := func(name string, v *float64) {
		if v == nil {
			return
		}
		rows = append(rows, metricRow{
			Name:   name,
			Value:  fmt.Sprintf("%.2f", *v),
			Source: data.Sources[name],
		})
	}

	add("revenue", data.Revenue)
	add("expenses", data.Expenses)
	add("net_income", data.NetIncome)
	add("gross_profit", data.GrossProfit)
	add("operating_income", data.OperatingIncome)
	add("assets", data.Assets)
	add("liabilities", data.Liabilities)
	add("equity", data.Equity)
	add("cash_flow", data.CashFlow)

	names := make([]string, 0, len(data.CustomMetrics))
	for name := range data.CustomMetrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, metricRow{
			Name:  name,
			Value: fmt.Sprintf("%.3f", data.CustomMetrics[name]),
		})
	}

	return rows
}
