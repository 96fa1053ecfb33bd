package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BainBrain70/PropertyManager/projection"
	"github.com/BainBrain70/PropertyManager/report"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a year-by-year investment projection for one property",
	Long: `Simulate holding a single property across a multi-year horizon:
amortization, appreciation, rent growth, vacancy, maintenance, and optional
extra principal payments, with ROI and sale metrics per year.

Repairs can be itemized and are added to the cash invested:
  propman project --price 500000 --rent 3000 \
      --repair "Kitchen:New countertops:12000" --repair "Roof::8000"`,
	RunE: runProject,
}

var (
	projectPrice     float64
	projectDown      float64
	projectRate      float64
	projectLoanYears int
	projectInsurance float64
	projectTaxRate   float64
	projectRent      float64
	projectVacancy   float64
	projectAppr      float64
	projectRentInc   float64
	projectHolding   int
	projectMaint     float64
	projectExtra     float64
	projectCFToPrin  float64
	projectRepairs   []string
	projectOut       string
)

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().Float64Var(&projectPrice, "price", 0, "purchase price (required)")
	projectCmd.Flags().Float64Var(&projectDown, "down", -1, "down payment fraction 0..1 (default from config)")
	projectCmd.Flags().Float64Var(&projectRate, "rate", -1, "annual interest rate as a fraction (default from config)")
	projectCmd.Flags().IntVar(&projectLoanYears, "loan-years", 0, "loan term in years (default from config)")
	projectCmd.Flags().Float64Var(&projectInsurance, "insurance", -1, "monthly insurance (default from config)")
	projectCmd.Flags().Float64Var(&projectTaxRate, "tax-rate", -1, "annual property tax rate as a fraction (default from config)")
	projectCmd.Flags().Float64Var(&projectRent, "rent", 0, "monthly rent (required)")
	projectCmd.Flags().Float64Var(&projectVacancy, "vacancy", -1, "vacancy rate 0..1 (default from config)")
	projectCmd.Flags().Float64Var(&projectAppr, "appreciation", -999, "annual appreciation as a fraction (default from config)")
	projectCmd.Flags().Float64Var(&projectRentInc, "rent-increase", -999, "annual rent increase as a fraction (default from config)")
	projectCmd.Flags().IntVar(&projectHolding, "holding-years", 0, "holding period in years (default from config)")
	projectCmd.Flags().Float64Var(&projectMaint, "maintenance", -1, "annual maintenance as a fraction of purchase price (default from config)")
	projectCmd.Flags().Float64Var(&projectExtra, "extra-monthly", 0, "fixed extra monthly principal payment")
	projectCmd.Flags().Float64Var(&projectCFToPrin, "cashflow-to-principal", 0, "fraction of positive cash flow diverted to principal (0..1)")
	projectCmd.Flags().StringArrayVar(&projectRepairs, "repair", nil, `repair item as "Room:Description:Cost" (repeatable)`)
	projectCmd.Flags().StringVarP(&projectOut, "out", "o", "", "write the projection table to a CSV file")
	projectCmd.MarkFlagRequired("price")
	projectCmd.MarkFlagRequired("rent")
}

func runProject(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override the config file; sentinel values mean "not set".
	if projectDown < 0 {
		projectDown = cfg.Financing.DownPaymentPct
	}
	if projectRate < 0 {
		projectRate = cfg.Financing.InterestRate
	}
	if projectLoanYears == 0 {
		projectLoanYears = cfg.Financing.LoanYears
	}
	if projectInsurance < 0 {
		projectInsurance = cfg.Financing.MonthlyInsurance
	}
	if projectTaxRate < 0 {
		projectTaxRate = cfg.Projection.AnnualTaxRate
	}
	if projectVacancy < 0 {
		projectVacancy = cfg.Projection.VacancyRate
	}
	if projectAppr == -999 {
		projectAppr = cfg.Projection.Appreciation
	}
	if projectRentInc == -999 {
		projectRentInc = cfg.Projection.RentIncrease
	}
	if projectHolding == 0 {
		projectHolding = cfg.Projection.HoldingYears
	}
	if projectMaint < 0 {
		projectMaint = cfg.Projection.MaintenanceRate
	}

	repairs, err := parseRepairs(projectRepairs)
	if err != nil {
		return err
	}

	in := projection.Inputs{
		PurchasePrice:       projectPrice,
		DownPaymentPct:      projectDown,
		AnnualRate:          projectRate,
		LoanYears:           projectLoanYears,
		MonthlyInsurance:    projectInsurance,
		AnnualTaxRate:       projectTaxRate,
		MonthlyRent:         projectRent,
		VacancyRate:         projectVacancy,
		Appreciation:        projectAppr,
		RentIncrease:        projectRentInc,
		HoldingYears:        projectHolding,
		InitialRepairs:      projection.TotalRepairCost(repairs),
		MaintenanceRate:     projectMaint,
		ExtraMonthly:        projectExtra,
		CashFlowToPrincipal: projectCFToPrin,
	}

	years, err := projection.Simulate(in)
	if err != nil {
		return err
	}

	if len(repairs) > 0 {
		fmt.Println("Repairs")
		fmt.Println("--------------------------------------------------")
		for _, r := range repairs {
			desc := r.Description
			if desc != "" {
				desc = " (" + desc + ")"
			}
			fmt.Printf("  %-12s $%.2f%s\n", r.Room, r.Cost, desc)
		}
		fmt.Printf("  Total: $%.2f\n\n", projection.TotalRepairCost(repairs))
	}

	report.WriteProjectionSummary(os.Stdout, in, years)

	if projectOut != "" {
		if err := writeCSVFile(projectOut, func(f *os.File) error {
			return report.WriteProjectionCSV(f, years)
		}); err != nil {
			return err
		}
		fmt.Printf("Projection table saved to %s\n", projectOut)
	}
	return nil
}

// parseRepairs parses "Room:Description:Cost" items. The description may be
// empty; the cost must parse as a number.
func parseRepairs(items []string) ([]projection.RepairItem, error) {
	repairs := make([]projection.RepairItem, 0, len(items))
	for _, item := range items {
		parts := strings.SplitN(item, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid repair %q (want \"Room:Description:Cost\")", item)
		}
		cost, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || cost < 0 {
			return nil, fmt.Errorf("invalid repair cost in %q", item)
		}
		repairs = append(repairs, projection.RepairItem{
			Room:        parts[0],
			Description: parts[1],
			Cost:        cost,
		})
	}
	return repairs, nil
}
