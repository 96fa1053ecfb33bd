// Package analysis computes point-in-time investment figures for listings:
// monthly cash flow at a fixed down payment, and the smallest down payment
// that turns a negative cash flow positive.
package analysis

import (
	"fmt"
	"sort"

	"github.com/BainBrain70/PropertyManager/mortgage"
	"github.com/BainBrain70/PropertyManager/property"
)

// PropertyTaxRate is the assumed annual property tax as a fraction of price.
// The projection package exposes the rate as a parameter; this snapshot
// calculator deliberately does not.
const PropertyTaxRate = 0.0125

// CashFlowResult is a listing augmented with its monthly financial snapshot.
type CashFlowResult struct {
	property.Record

	PropertyTax     float64
	MonthlyMortgage float64
	MonthlyCashFlow float64
}

// CashFlow computes the monthly tax, mortgage payment, and net cash flow for
// every record at the supplied loan terms. The result is ordered best deal
// first: descending cash flow, ties keeping the input order. A record with a
// bad price is passed through with whatever figures fall out; filtering is
// the caller's job.
func CashFlow(records []property.Record, terms mortgage.LoanTerms, monthlyInsurance float64) ([]CashFlowResult, error) {
	if err := terms.Validate(); err != nil {
		return nil, fmt.Errorf("cash flow: %w", err)
	}
	if monthlyInsurance < 0 {
		return nil, fmt.Errorf("cash flow: monthly insurance must be non-negative, got %v", monthlyInsurance)
	}

	out := make([]CashFlowResult, len(records))
	for i, rec := range records {
		out[i] = cashFlowAt(rec, terms, monthlyInsurance)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MonthlyCashFlow > out[j].MonthlyCashFlow
	})
	return out, nil
}

func cashFlowAt(rec property.Record, terms mortgage.LoanTerms, monthlyInsurance float64) CashFlowResult {
	loanAmount := rec.Price * (1 - terms.DownPaymentPct)

	tax := mortgage.Round2(rec.Price * PropertyTaxRate / 12)
	payment := mortgage.Round2(mortgage.MonthlyPayment(loanAmount, terms.AnnualRate, terms.TermMonths))
	flow := mortgage.Round2(rec.RentEstimate - (tax + payment + monthlyInsurance))

	return CashFlowResult{
		Record:          rec,
		PropertyTax:     tax,
		MonthlyMortgage: payment,
		MonthlyCashFlow: flow,
	}
}
