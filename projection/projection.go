// Package projection simulates a rental property investment year by year
// across a holding horizon: amortization with optional extra principal,
// appreciation, rent growth, vacancy, and the derived return metrics.
package projection

import (
	"fmt"
	"math"

	"github.com/BainBrain70/PropertyManager/mortgage"
)

// SellingCostRate is the fraction of property value assumed lost to selling
// costs in the hypothetical year-end sale.
const SellingCostRate = 0.06

// Inputs are the assumptions for one simulated investment.
type Inputs struct {
	PurchasePrice    float64
	DownPaymentPct   float64 // 0..1
	AnnualRate       float64 // decimal fraction
	LoanYears        int
	MonthlyInsurance float64
	AnnualTaxRate    float64 // fraction of current property value
	MonthlyRent      float64
	VacancyRate      float64 // 0..1
	Appreciation     float64 // annual, may be negative
	RentIncrease     float64 // annual, may be negative
	HoldingYears     int
	InitialRepairs   float64 // one-time, cash invested but not financed
	MaintenanceRate  float64 // annual fraction of the ORIGINAL purchase price

	// Extra principal: a fixed monthly add-on, plus a fraction of each
	// month's positive gross cash flow diverted to the loan.
	ExtraMonthly        float64
	CashFlowToPrincipal float64 // 0..1
}

// Validate range-checks the assumptions before they feed a multi-year
// simulation.
func (in Inputs) Validate() error {
	switch {
	case in.PurchasePrice <= 0 || math.IsNaN(in.PurchasePrice):
		return fmt.Errorf("purchase price must be positive, got %v", in.PurchasePrice)
	case in.DownPaymentPct < 0 || in.DownPaymentPct > 1:
		return fmt.Errorf("down payment must be between 0 and 1, got %v", in.DownPaymentPct)
	case in.AnnualRate < 0 || math.IsNaN(in.AnnualRate):
		return fmt.Errorf("interest rate must be non-negative, got %v", in.AnnualRate)
	case in.LoanYears <= 0:
		return fmt.Errorf("loan term must be positive, got %d years", in.LoanYears)
	case in.MonthlyInsurance < 0:
		return fmt.Errorf("monthly insurance must be non-negative, got %v", in.MonthlyInsurance)
	case in.AnnualTaxRate < 0:
		return fmt.Errorf("property tax rate must be non-negative, got %v", in.AnnualTaxRate)
	case in.MonthlyRent < 0:
		return fmt.Errorf("monthly rent must be non-negative, got %v", in.MonthlyRent)
	case in.VacancyRate < 0 || in.VacancyRate > 1:
		return fmt.Errorf("vacancy rate must be between 0 and 1, got %v", in.VacancyRate)
	case math.IsNaN(in.Appreciation) || math.IsNaN(in.RentIncrease):
		return fmt.Errorf("appreciation and rent increase must be numbers")
	case in.HoldingYears <= 0:
		return fmt.Errorf("holding period must be positive, got %d years", in.HoldingYears)
	case in.InitialRepairs < 0:
		return fmt.Errorf("initial repairs must be non-negative, got %v", in.InitialRepairs)
	case in.MaintenanceRate < 0:
		return fmt.Errorf("maintenance rate must be non-negative, got %v", in.MaintenanceRate)
	case in.ExtraMonthly < 0:
		return fmt.Errorf("extra monthly payment must be non-negative, got %v", in.ExtraMonthly)
	case in.CashFlowToPrincipal < 0 || in.CashFlowToPrincipal > 1:
		return fmt.Errorf("cash flow to principal must be between 0 and 1, got %v", in.CashFlowToPrincipal)
	}
	return nil
}

// Year is one year of the projection. Currency fields are rounded to cents,
// return fields are already-scaled percentages (12.34 means 12.34%).
type Year struct {
	Year int

	PropertyValue float64
	MonthlyRent   float64

	MonthlyCashFlow    float64
	AnnualCashFlow     float64
	CumulativeCashFlow float64

	LoanBalance              float64
	PrincipalPaid            float64
	ExtraPrincipalThisYear   float64
	CumulativeExtraPrincipal float64

	Equity           float64
	CashOnCashReturn float64
	TotalROI         float64

	NetProceedsIfSold float64
	TotalProfit       float64
}

// Simulate runs the year-by-year projection and returns one Year per holding
// year, ordered year 1..N.
//
// Two asymmetries are intentional: maintenance is pinned to the original
// purchase price while property tax tracks the appreciated value, and the
// cash-on-cash denominator excludes extra principal while the ROI denominator
// includes it.
func Simulate(in Inputs) ([]Year, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}

	downPayment := in.PurchasePrice * in.DownPaymentPct
	loanAmount := in.PurchasePrice - downPayment
	monthlyRate := in.AnnualRate / 12
	totalMonths := in.LoanYears * 12

	// Fixed for the life of the schedule; never re-derived mid-simulation.
	payment := mortgage.MonthlyPayment(loanAmount, in.AnnualRate, totalMonths)

	value := in.PurchasePrice
	rent := in.MonthlyRent
	balance := loanAmount
	baseInvested := downPayment + in.InitialRepairs

	var cumulativeCashFlow, cumulativeExtra float64

	years := make([]Year, 0, in.HoldingYears)
	for yr := 1; yr <= in.HoldingYears; yr++ {
		// Year 1 uses the original values; growth compounds from year 2 on,
		// before this year's monthly figures are computed.
		if yr > 1 {
			value *= 1 + in.Appreciation
			rent *= 1 + in.RentIncrease
		}

		monthlyTax := value * in.AnnualTaxRate / 12
		monthlyMaintenance := in.PurchasePrice * in.MaintenanceRate / 12
		effectiveRent := rent * (1 - in.VacancyRate)

		// Held constant across the year's 12 months, including for sizing
		// the cash-flow-proportional extra payment.
		grossMonthly := effectiveRent - (payment + monthlyTax + in.MonthlyInsurance + monthlyMaintenance)

		var principalPaid, extraThisYear float64
		working := balance

		for month := 0; month < 12; month++ {
			if working <= 0 {
				break
			}

			_, principal := mortgage.SplitPayment(working, monthlyRate, payment)
			if principal < 0 {
				principal = 0
			}
			if principal > working {
				// Final payment of the schedule retires whatever is left.
				principal = working
			}

			extra := in.ExtraMonthly
			if grossMonthly > 0 {
				extra += grossMonthly * in.CashFlowToPrincipal
			}
			if extra > working-principal {
				extra = working - principal
			}
			if extra < 0 {
				extra = 0
			}

			principalPaid += principal + extra
			extraThisYear += extra
			working -= principal + extra
			if working < 0 {
				working = 0
			}
		}

		balance = working
		cumulativeExtra += extraThisYear

		// Money diverted to extra principal is not received as cash; it
		// converts to equity instead.
		annualCashFlow := grossMonthly*12 - extraThisYear
		cumulativeCashFlow += annualCashFlow

		equity := value - balance
		investedWithExtra := baseInvested + cumulativeExtra

		var cashOnCash, roi float64
		if baseInvested > 0 {
			cashOnCash = annualCashFlow / baseInvested * 100
		}
		if investedWithExtra > 0 {
			roi = (cumulativeCashFlow + equity - investedWithExtra) / investedWithExtra * 100
		}

		sellingCosts := value * SellingCostRate
		netProceeds := value - balance - sellingCosts
		totalProfit := netProceeds + cumulativeCashFlow - investedWithExtra

		years = append(years, Year{
			Year:                     yr,
			PropertyValue:            mortgage.Round2(value),
			MonthlyRent:              mortgage.Round2(rent),
			MonthlyCashFlow:          mortgage.Round2(annualCashFlow / 12),
			AnnualCashFlow:           mortgage.Round2(annualCashFlow),
			CumulativeCashFlow:       mortgage.Round2(cumulativeCashFlow),
			LoanBalance:              mortgage.Round2(balance),
			PrincipalPaid:            mortgage.Round2(principalPaid),
			ExtraPrincipalThisYear:   mortgage.Round2(extraThisYear),
			CumulativeExtraPrincipal: mortgage.Round2(cumulativeExtra),
			Equity:                   mortgage.Round2(equity),
			CashOnCashReturn:         mortgage.Round2(cashOnCash),
			TotalROI:                 mortgage.Round2(roi),
			NetProceedsIfSold:        mortgage.Round2(netProceeds),
			TotalProfit:              mortgage.Round2(totalProfit),
		})
	}

	return years, nil
}
