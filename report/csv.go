package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/BainBrain70/PropertyManager/analysis"
	"github.com/BainBrain70/PropertyManager/projection"
	"github.com/BainBrain70/PropertyManager/property"
)

// CSV exports mirror the on-screen tables so results can leave the tool.

// WriteListingsCSV writes the normalized listings as fetched.
func WriteListingsCSV(w io.Writer, records []property.Record) error {
	cw := csv.NewWriter(w)

	header := []string{
		"id", "address", "zipcode", "home_type", "beds", "baths",
		"sqft", "lot_size", "price", "price_estimate", "rent_estimate",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.ID,
			r.Address,
			r.Zipcode,
			r.HomeType,
			r.Beds,
			r.Baths,
			f2(r.Sqft),
			r.LotSize,
			f2(r.Price),
			f2(r.PriceEstimate),
			f2(r.RentEstimate),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCashFlowCSV writes one row per analyzed listing, in the order given
// (best deal first when fed straight from analysis.CashFlow).
func WriteCashFlowCSV(w io.Writer, results []analysis.CashFlowResult) error {
	cw := csv.NewWriter(w)

	header := []string{
		"id", "address", "zipcode", "sqft", "price", "rent_estimate",
		"property_tax", "monthly_mortgage", "monthly_cash_flow",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.ID,
			r.Address,
			r.Zipcode,
			f2(r.Sqft),
			f2(r.Price),
			f2(r.RentEstimate),
			f2(r.PropertyTax),
			f2(r.MonthlyMortgage),
			f2(r.MonthlyCashFlow),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteBreakEvenCSV writes the viable listings with their discovered down
// payments.
func WriteBreakEvenCSV(w io.Writer, results []analysis.BreakEvenResult) error {
	cw := csv.NewWriter(w)

	header := []string{
		"id", "address", "zipcode", "price", "rent_estimate",
		"monthly_cash_flow", "down_payment_pct", "down_payment_amount",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.ID,
			r.Address,
			r.Zipcode,
			f2(r.Price),
			f2(r.RentEstimate),
			f2(r.MonthlyCashFlow),
			f2(r.DownPaymentPct),
			f2(r.DownPaymentAmount),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteProjectionCSV writes one row per simulated year.
func WriteProjectionCSV(w io.Writer, years []projection.Year) error {
	cw := csv.NewWriter(w)

	header := []string{
		"year", "property_value", "monthly_rent", "monthly_cash_flow",
		"annual_cash_flow", "cumulative_cash_flow", "loan_balance",
		"principal_paid", "extra_principal_this_year", "cumulative_extra_principal",
		"equity", "cash_on_cash_return", "total_roi",
		"net_proceeds_if_sold", "total_profit",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, y := range years {
		row := []string{
			strconv.Itoa(y.Year),
			f2(y.PropertyValue),
			f2(y.MonthlyRent),
			f2(y.MonthlyCashFlow),
			f2(y.AnnualCashFlow),
			f2(y.CumulativeCashFlow),
			f2(y.LoanBalance),
			f2(y.PrincipalPaid),
			f2(y.ExtraPrincipalThisYear),
			f2(y.CumulativeExtraPrincipal),
			f2(y.Equity),
			f2(y.CashOnCashReturn),
			f2(y.TotalROI),
			f2(y.NetProceedsIfSold),
			f2(y.TotalProfit),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f2(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
