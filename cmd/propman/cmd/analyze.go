package cmd

import (
	"fmt"
	"os"

	"github.com/BainBrain70/PropertyManager/analysis"
	"github.com/BainBrain70/PropertyManager/mortgage"
	"github.com/BainBrain70/PropertyManager/report"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Fetch listings and run cash-flow and break-even analysis",
	Long: `Fetch listings from a search URL, compute each property's monthly
cash flow at the configured down payment, and find the break-even down
payment for properties that start out negative.

Example:
  propman analyze --source zillow --url "https://www.zillow.com/..." \
      --cashflow-out cashflow.csv --breakeven-out breakeven.csv`,
	RunE: runAnalyze,
}

var (
	analyzeSource       string
	analyzeURL          string
	analyzePage         int
	analyzeCashFlowOut  string
	analyzeBreakEvenOut string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeSource, "source", "s", "zillow", "listing source: zillow, zillow-alt, or redfin")
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "provider search URL (required)")
	analyzeCmd.Flags().IntVar(&analyzePage, "page", 1, "result page (zillow-alt only)")
	analyzeCmd.Flags().StringVar(&analyzeCashFlowOut, "cashflow-out", "", "write the cash-flow table to a CSV file")
	analyzeCmd.Flags().StringVar(&analyzeBreakEvenOut, "breakeven-out", "", "write the break-even table to a CSV file")
	analyzeCmd.MarkFlagRequired("url")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := fetchListings(cfg, analyzeSource, analyzeURL, analyzePage)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no listings found, check the URL and source")
	}

	report.WriteListingsSummary(os.Stdout, records)

	terms := mortgage.LoanTerms{
		AnnualRate:     cfg.Financing.InterestRate,
		TermMonths:     cfg.Financing.LoanYears * 12,
		DownPaymentPct: cfg.Financing.DownPaymentPct,
	}

	flows, err := analysis.CashFlow(records, terms, cfg.Financing.MonthlyInsurance)
	if err != nil {
		return err
	}
	report.WriteCashFlowSummary(os.Stdout, flows, cfg.Financing.MonthlyInsurance)

	breakevens, err := analysis.BreakEven(flows, terms, cfg.Financing.MonthlyInsurance)
	if err != nil {
		return err
	}
	report.WriteBreakEvenSummary(os.Stdout, breakevens)

	if analyzeCashFlowOut != "" {
		if err := writeCSVFile(analyzeCashFlowOut, func(f *os.File) error {
			return report.WriteCashFlowCSV(f, flows)
		}); err != nil {
			return err
		}
		fmt.Printf("Cash-flow table saved to %s\n", analyzeCashFlowOut)
	}
	if analyzeBreakEvenOut != "" {
		if err := writeCSVFile(analyzeBreakEvenOut, func(f *os.File) error {
			return report.WriteBreakEvenCSV(f, breakevens)
		}); err != nil {
			return err
		}
		fmt.Printf("Break-even table saved to %s\n", analyzeBreakEvenOut)
	}
	return nil
}
