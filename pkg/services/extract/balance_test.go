package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/models/domain"
)

func newData() *domain.ExtractedData {
	return &domain.ExtractedData{
		CustomMetrics: make(map[string]float64),
		Sources:       make(map[string]string),
	}
}

func TestExtractBalanceSheet_HoldingsArithmetic(t *testing.T) {
	text := strings.Join([]string{
		"Summary of Assets & Liabilities",
		"ETH (61.763 @ $3,332.53)",
	}, "\n")

	data := newData()
	extractBalanceSheet(text, data)

	assert.InDelta(t, 61.763, data.CustomMetrics["eth_holdings"], 0.0001)
	assert.InDelta(t, 3332.53, data.CustomMetrics["eth_price"], 0.0001)
	assert.InDelta(t, 61.763*3332.53, data.CustomMetrics["eth_value"], 0.01)
}

func TestExtractBalanceSheet_StablecoinAccumulates(t *testing.T) {
	text := strings.Join([]string{
		"Summary of Assets & Liabilities",
		"USDC $10,000.00",
		"USDCx $5,500.50",
	}, "\n")

	data := newData()
	extractBalanceSheet(text, data)

	assert.InDelta(t, 15500.50, data.CustomMetrics["usdc_holdings"], 0.001)
}

func TestExtractBalanceSheet_NetAndLiabilities(t *testing.T) {
	text := strings.Join([]string{
		"Summary of Assets & Liabilities",
		"Net $450,000.00",
		"Unreimbursed Expenses $(1,234.56)",
	}, "\n")

	data := newData()
	extractBalanceSheet(text, data)

	require.NotNil(t, data.Assets)
	require.NotNil(t, data.Equity)
	assert.InDelta(t, 450000.0, *data.Assets, 0.001)
	assert.InDelta(t, 450000.0, *data.Equity, 0.001, "net assets double as equity")

	require.NotNil(t, data.Liabilities)
	assert.InDelta(t, 1234.56, *data.Liabilities, 0.001)
	assert.InDelta(t, 1234.56, data.CustomMetrics["unreimbursed_expenses"], 0.001)
}

func TestExtractBalanceSheet_ParenthesizedCurrencyVariant(t *testing.T) {
	text := "Summary of Assets and Liabilities\nUnreimbursed contributor costs ($987.65)"

	data := newData()
	extractBalanceSheet(text, data)

	require.NotNil(t, data.Liabilities)
	assert.InDelta(t, 987.65, *data.Liabilities, 0.001)
}

func TestExtractBalanceSheet_NoSectionNoEffect(t *testing.T) {
	data := newData()
	extractBalanceSheet("ETH (61.763 @ $3,332.53)\nNet $450,000.00", data)

	assert.Empty(t, data.CustomMetrics)
	assert.Nil(t, data.Assets)
}
