// Package report renders analysis results as text summaries and CSV tables.
package report

import (
	"fmt"
	"io"

	"github.com/BainBrain70/PropertyManager/analysis"
	"github.com/BainBrain70/PropertyManager/internal/id"
	"github.com/BainBrain70/PropertyManager/projection"
	"github.com/BainBrain70/PropertyManager/property"
)

const rule = "--------------------------------------------------"

// WriteListingsSummary prints the listing-level statistics.
func WriteListingsSummary(w io.Writer, records []property.Record) {
	stats := property.Summarize(records)

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Property Listings")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Run ID:          %s\n", id.New())
	fmt.Fprintf(w, "Properties:      %d\n", stats.Count)
	fmt.Fprintf(w, "Avg Price:       $%.2f\n", stats.AvgPrice)
	if stats.AvgSqft > 0 {
		fmt.Fprintf(w, "Avg Sqft:        %.0f\n", stats.AvgSqft)
	}
	fmt.Fprintf(w, "Avg Rent Est.:   $%.2f\n", stats.AvgRent)
	fmt.Fprintln(w)
}

// WriteCashFlowSummary prints aggregate cash-flow metrics and the top deals.
func WriteCashFlowSummary(w io.Writer, results []analysis.CashFlowResult, monthlyInsurance float64) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Cash Flow Analysis")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Run ID:          %s\n", id.New())
	fmt.Fprintf(w, "Properties:      %d\n", len(results))

	if len(results) == 0 {
		fmt.Fprintln(w)
		return
	}

	positive := 0
	var sum float64
	best := results[0].MonthlyCashFlow
	for _, r := range results {
		if r.MonthlyCashFlow > 0 {
			positive++
		}
		sum += r.MonthlyCashFlow
		if r.MonthlyCashFlow > best {
			best = r.MonthlyCashFlow
		}
	}

	fmt.Fprintf(w, "Positive Flow:   %d\n", positive)
	fmt.Fprintf(w, "Avg Cash Flow:   $%.2f/mo\n", sum/float64(len(results)))
	fmt.Fprintf(w, "Best Cash Flow:  $%.2f/mo\n", best)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Deals")
	fmt.Fprintln(w, rule)

	top := results
	if len(top) > 5 {
		top = top[:5]
	}
	for i, r := range top {
		addr := r.Address
		if addr == "" {
			addr = "(no address)"
		}
		fmt.Fprintf(w, "#%d %s\n", i+1, addr)
		fmt.Fprintf(w, "   Price:      $%.2f\n", r.Price)
		fmt.Fprintf(w, "   Rent:       $%.2f\n", r.RentEstimate)
		fmt.Fprintf(w, "   Mortgage:   $%.2f\n", r.MonthlyMortgage)
		fmt.Fprintf(w, "   Tax:        $%.2f\n", r.PropertyTax)
		fmt.Fprintf(w, "   Insurance:  $%.2f\n", monthlyInsurance)
		fmt.Fprintf(w, "   Cash Flow:  $%.2f/mo\n", r.MonthlyCashFlow)
	}
	fmt.Fprintln(w)
}

// WriteBreakEvenSummary prints the viable listings and their required down
// payments.
func WriteBreakEvenSummary(w io.Writer, results []analysis.BreakEvenResult) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Break-Even Down Payment Analysis")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Run ID:          %s\n", id.New())
	fmt.Fprintf(w, "Viable:          %d\n", len(results))

	if len(results) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No property reaches positive cash flow below a 100% down payment.")
		fmt.Fprintln(w)
		return
	}

	var pctSum float64
	at20 := 0
	for _, r := range results {
		pctSum += r.DownPaymentPct
		if r.DownPaymentPct <= 0.20 {
			at20++
		}
	}
	fmt.Fprintf(w, "Avg Down:        %.1f%%\n", pctSum/float64(len(results))*100)
	fmt.Fprintf(w, "Viable at 20%%:   %d\n", at20)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Down Payments")
	fmt.Fprintln(w, rule)
	for _, r := range results {
		addr := r.Address
		if addr == "" {
			addr = r.ID
		}
		fmt.Fprintf(w, "%-40s %5.0f%%  $%.2f\n", addr, r.DownPaymentPct*100, r.DownPaymentAmount)
	}
	fmt.Fprintln(w)
}

// WriteProjectionSummary prints the headline numbers of a simulated hold and
// the year-by-year table.
func WriteProjectionSummary(w io.Writer, in projection.Inputs, years []projection.Year) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Investment Projection")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Run ID:          %s\n", id.New())
	fmt.Fprintf(w, "Purchase Price:  $%.2f\n", in.PurchasePrice)
	fmt.Fprintf(w, "Down Payment:    %.0f%% ($%.2f)\n", in.DownPaymentPct*100, in.PurchasePrice*in.DownPaymentPct)
	fmt.Fprintf(w, "Interest Rate:   %.2f%%\n", in.AnnualRate*100)
	fmt.Fprintf(w, "Loan Term:       %d years\n", in.LoanYears)
	fmt.Fprintf(w, "Holding Period:  %d years\n", in.HoldingYears)

	if len(years) == 0 {
		fmt.Fprintln(w)
		return
	}

	final := years[len(years)-1]
	invested := in.PurchasePrice*in.DownPaymentPct + in.InitialRepairs

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Cash Invested:   $%.2f\n", invested)
	fmt.Fprintf(w, "Final Value:     $%.2f\n", final.PropertyValue)
	fmt.Fprintf(w, "Final Rent:      $%.2f/mo\n", final.MonthlyRent)
	fmt.Fprintf(w, "Total Profit:    $%.2f (if sold)\n", final.TotalProfit)
	fmt.Fprintf(w, "Total ROI:       %.2f%%\n", final.TotalROI)
	if final.CumulativeExtraPrincipal > 0 {
		fmt.Fprintf(w, "Extra Principal: $%.2f paid ahead of schedule\n", final.CumulativeExtraPrincipal)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Year-by-Year")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%4s %14s %12s %12s %14s %12s %8s\n",
		"Year", "Value", "CashFlow/yr", "Balance", "Equity", "Profit", "ROI")
	for _, y := range years {
		fmt.Fprintf(w, "%4d %14.2f %12.2f %12.2f %14.2f %12.2f %7.2f%%\n",
			y.Year, y.PropertyValue, y.AnnualCashFlow, y.LoanBalance,
			y.Equity, y.TotalProfit, y.TotalROI)
	}
	fmt.Fprintln(w)
}
