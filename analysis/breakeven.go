package analysis

import (
	"fmt"

	"github.com/BainBrain70/PropertyManager/mortgage"
)

// Down payment scan bounds, in whole percent. The scan is inclusive of 20%
// and never reaches 100% (an all-cash purchase is not a financing answer).
const (
	minDownPct = 20
	maxDownPct = 99
)

// BreakEvenResult is a viable listing plus the down payment that makes it
// cash-flow positive.
type BreakEvenResult struct {
	CashFlowResult

	DownPaymentPct    float64
	DownPaymentAmount float64
}

// BreakEven finds, for each record, the smallest down payment fraction in 1%
// steps from 20% to 99% that yields a positive monthly cash flow. Records
// already positive at the supplied cash flow are accepted at 20% without
// scanning. Records that stay negative all the way to 99% are omitted; an
// empty result is a legitimate answer, not an error.
//
// The 1% granularity means the reported fraction is an upper bound on the
// true continuous break-even point.
func BreakEven(results []CashFlowResult, terms mortgage.LoanTerms, monthlyInsurance float64) ([]BreakEvenResult, error) {
	if err := terms.Validate(); err != nil {
		return nil, fmt.Errorf("break even: %w", err)
	}

	out := make([]BreakEvenResult, 0, len(results))
	for _, res := range results {
		if res.MonthlyCashFlow > 0 {
			out = append(out, withDownPayment(res, 0.20))
			continue
		}

		for pct := minDownPct; pct <= maxDownPct; pct++ {
			down := float64(pct) / 100
			candidate := terms
			candidate.DownPaymentPct = down

			test := cashFlowAt(res.Record, candidate, monthlyInsurance)
			if test.MonthlyCashFlow > 0 {
				out = append(out, withDownPayment(test, down))
				break
			}
		}
		// No viable down payment: the record is simply dropped.
	}
	return out, nil
}

func withDownPayment(res CashFlowResult, pct float64) BreakEvenResult {
	return BreakEvenResult{
		CashFlowResult:    res,
		DownPaymentPct:    mortgage.Round2(pct),
		DownPaymentAmount: mortgage.Round2(pct * res.Price),
	}
}
