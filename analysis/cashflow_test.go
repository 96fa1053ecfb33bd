package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BainBrain70/PropertyManager/mortgage"
	"github.com/BainBrain70/PropertyManager/property"
)

func testTerms() mortgage.LoanTerms {
	return mortgage.LoanTerms{
		AnnualRate:     0.061,
		TermMonths:     360,
		DownPaymentPct: 0.20,
	}
}

func TestCashFlow_KnownValuesZeroRate(t *testing.T) {
	t.Parallel()

	// At a zero rate every figure is exact: loan 288000 over 360 months is
	// an 800/month payment, tax is 375/month at 1.25% of 360000.
	records := []property.Record{
		{ID: "1", Price: 360000, RentEstimate: 2000},
	}
	terms := mortgage.LoanTerms{AnnualRate: 0, TermMonths: 360, DownPaymentPct: 0.20}

	out, err := CashFlow(records, terms, 100)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, 375.0, out[0].PropertyTax)
	assert.Equal(t, 800.0, out[0].MonthlyMortgage)
	assert.Equal(t, 725.0, out[0].MonthlyCashFlow)
}

func TestCashFlow_MatchesAmortizationModel(t *testing.T) {
	t.Parallel()

	records := []property.Record{
		{ID: "1", Price: 500000, RentEstimate: 3000},
	}
	terms := mortgage.LoanTerms{AnnualRate: 0.065, TermMonths: 360, DownPaymentPct: 0.20}

	out, err := CashFlow(records, terms, 150)
	require.NoError(t, err)
	require.Len(t, out, 1)

	wantPayment := mortgage.Round2(mortgage.MonthlyPayment(400000, 0.065, 360))
	wantTax := mortgage.Round2(500000 * 0.0125 / 12)

	assert.Equal(t, wantPayment, out[0].MonthlyMortgage)
	assert.Equal(t, wantTax, out[0].PropertyTax)
	assert.Equal(t, mortgage.Round2(3000-(wantTax+wantPayment+150)), out[0].MonthlyCashFlow)
}

func TestCashFlow_SortsDescendingStable(t *testing.T) {
	t.Parallel()

	// Same price means same expenses; rent alone orders these.
	records := []property.Record{
		{ID: "low", Price: 400000, RentEstimate: 1500},
		{ID: "high", Price: 400000, RentEstimate: 4000},
		{ID: "tieA", Price: 400000, RentEstimate: 2500},
		{ID: "tieB", Price: 400000, RentEstimate: 2500},
	}

	out, err := CashFlow(records, testTerms(), 100)
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, "high", out[0].ID)
	// Ties keep input order.
	assert.Equal(t, "tieA", out[1].ID)
	assert.Equal(t, "tieB", out[2].ID)
	assert.Equal(t, "low", out[3].ID)

	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].MonthlyCashFlow, out[i].MonthlyCashFlow)
	}
}

func TestCashFlow_NaNPricePropagates(t *testing.T) {
	t.Parallel()

	records := []property.Record{
		{ID: "bad", Price: math.NaN(), RentEstimate: 2000},
		{ID: "good", Price: 300000, RentEstimate: 2000},
	}

	out, err := CashFlow(records, testTerms(), 100)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// The bad record is passed through, not dropped; filtering is the
	// caller's job.
	var bad *CashFlowResult
	for i := range out {
		if out[i].ID == "bad" {
			bad = &out[i]
		}
	}
	require.NotNil(t, bad)
	assert.True(t, math.IsNaN(bad.MonthlyCashFlow))
}

func TestCashFlow_RejectsBadInputs(t *testing.T) {
	t.Parallel()

	records := []property.Record{{ID: "1", Price: 300000, RentEstimate: 2000}}

	_, err := CashFlow(records, mortgage.LoanTerms{AnnualRate: -0.01, TermMonths: 360, DownPaymentPct: 0.2}, 100)
	assert.Error(t, err)

	_, err = CashFlow(records, mortgage.LoanTerms{AnnualRate: 0.061, TermMonths: 0, DownPaymentPct: 0.2}, 100)
	assert.Error(t, err)

	_, err = CashFlow(records, testTerms(), -5)
	assert.Error(t, err)
}

func TestCashFlow_EmptyInput(t *testing.T) {
	t.Parallel()

	out, err := CashFlow(nil, testTerms(), 100)
	require.NoError(t, err)
	assert.Empty(t, out)
}
