package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BainBrain70/PropertyManager/analysis"
	"github.com/BainBrain70/PropertyManager/projection"
	"github.com/BainBrain70/PropertyManager/property"
)

func TestWriteListingsCSV(t *testing.T) {
	t.Parallel()

	records := []property.Record{
		{ID: "1", Address: "742 Evergreen Ter", Zipcode: "93722", Price: 420000, RentEstimate: 2450},
		{ID: "2", Address: "1640 Riverside Dr", Zipcode: "93705", Price: 385000, RentEstimate: 2200},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteListingsCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	want := []string{
		"id", "address", "zipcode", "home_type", "beds", "baths",
		"sqft", "lot_size", "price", "price_estimate", "rent_estimate",
	}
	assert.Equal(t, want, rows[0])
	assert.Equal(t, "742 Evergreen Ter", rows[1][1])
	assert.Equal(t, "420000.00", rows[1][8])
}

func TestWriteCashFlowCSV(t *testing.T) {
	t.Parallel()

	results := []analysis.CashFlowResult{
		{
			Record:          property.Record{ID: "1", Address: "742 Evergreen Ter", Price: 420000, RentEstimate: 2450},
			PropertyTax:     437.5,
			MonthlyMortgage: 2035.12,
			MonthlyCashFlow: -122.62,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCashFlowCSV(&buf, results))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "monthly_cash_flow", rows[0][8])
	assert.Equal(t, "437.50", rows[1][6])
	assert.Equal(t, "-122.62", rows[1][8])
}

func TestWriteBreakEvenCSV(t *testing.T) {
	t.Parallel()

	results := []analysis.BreakEvenResult{
		{
			CashFlowResult: analysis.CashFlowResult{
				Record:          property.Record{ID: "1", Price: 800000, RentEstimate: 3000},
				MonthlyCashFlow: 12.34,
			},
			DownPaymentPct:    0.54,
			DownPaymentAmount: 432000,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBreakEvenCSV(&buf, results))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "down_payment_pct", rows[0][6])
	assert.Equal(t, "0.54", rows[1][6])
	assert.Equal(t, "432000.00", rows[1][7])
}

func TestWriteProjectionCSV(t *testing.T) {
	t.Parallel()

	years := []projection.Year{
		{Year: 1, PropertyValue: 500000, LoanBalance: 395000.25, Equity: 104999.75},
		{Year: 2, PropertyValue: 515000, LoanBalance: 390000.5, Equity: 124999.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProjectionCSV(&buf, years))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "year", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "395000.25", rows[1][6])
	assert.Equal(t, "515000.00", rows[2][1])
}
