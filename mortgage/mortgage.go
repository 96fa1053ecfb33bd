package mortgage

import (
	"fmt"
	"math"
)

// LoanTerms describes the financing applied to a purchase.
type LoanTerms struct {
	AnnualRate     float64 // decimal fraction, e.g. 0.061 for 6.1%
	TermMonths     int
	DownPaymentPct float64 // 0..1
}

// Validate rejects terms no calculator can price.
func (t LoanTerms) Validate() error {
	if t.AnnualRate < 0 || math.IsNaN(t.AnnualRate) {
		return fmt.Errorf("annual rate must be non-negative, got %v", t.AnnualRate)
	}
	if t.TermMonths <= 0 {
		return fmt.Errorf("loan term must be positive, got %d months", t.TermMonths)
	}
	if t.DownPaymentPct < 0 || t.DownPaymentPct > 1 {
		return fmt.Errorf("down payment must be between 0 and 1, got %v", t.DownPaymentPct)
	}
	return nil
}

// MonthlyPayment returns the fixed level payment that retires principal over
// termMonths at annualRate. A zero rate degenerates to straight-line
// principal/termMonths, which the compound formula cannot express.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if annualRate == 0 {
		return principal / float64(termMonths)
	}
	monthlyRate := annualRate / 12
	growth := math.Pow(1+monthlyRate, float64(termMonths))
	return principal * monthlyRate * growth / (growth - 1)
}

// SplitPayment decomposes one level payment against an outstanding balance.
// No clamping happens here: callers clamp the principal portion against the
// remaining balance.
func SplitPayment(balance, monthlyRate, payment float64) (interest, principal float64) {
	interest = balance * monthlyRate
	principal = payment - interest
	return interest, principal
}

// Round2 rounds a currency amount to cents.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
