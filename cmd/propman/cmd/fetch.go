package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/BainBrain70/PropertyManager/config"
	"github.com/BainBrain70/PropertyManager/property"
	"github.com/BainBrain70/PropertyManager/report"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and normalize property listings from a search URL",
	Long: `Fetch listings from a provider search URL and print a summary.

Sources: zillow (Scrapeak), zillow-alt (RapidAPI working API), redfin.

Example:
  propman fetch --source zillow --url "https://www.zillow.com/fresno-ca-93722/..."`,
	RunE: runFetch,
}

var (
	fetchSource string
	fetchURL    string
	fetchPage   int
	fetchOut    string
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchSource, "source", "s", "zillow", "listing source: zillow, zillow-alt, or redfin")
	fetchCmd.Flags().StringVarP(&fetchURL, "url", "u", "", "provider search URL (required)")
	fetchCmd.Flags().IntVar(&fetchPage, "page", 1, "result page (zillow-alt only)")
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "write normalized listings to a CSV file")
	fetchCmd.MarkFlagRequired("url")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := fetchListings(cfg, fetchSource, fetchURL, fetchPage)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no listings found, check the URL and source")
	}

	report.WriteListingsSummary(os.Stdout, records)

	if fetchOut != "" {
		if err := writeCSVFile(fetchOut, func(f *os.File) error {
			return report.WriteListingsCSV(f, records)
		}); err != nil {
			return err
		}
		fmt.Printf("Listings saved to %s\n", fetchOut)
	}
	return nil
}

// fetchListings pulls rows from the chosen provider and normalizes them into
// property records, with missing rent estimates defaulted from config.
func fetchListings(cfg *config.Config, source, searchURL string, page int) ([]property.Record, error) {
	client := newListingsClient(cfg)
	ctx := context.Background()

	var (
		rows []map[string]any
		err  error
	)
	switch source {
	case "zillow":
		rows, err = client.FetchZillow(ctx, searchURL)
	case "zillow-alt":
		rows, err = client.FetchZillowAlt(ctx, searchURL, page)
	case "redfin":
		rows, err = client.FetchRedfin(ctx, searchURL)
	default:
		return nil, fmt.Errorf("unknown source %q (want zillow, zillow-alt, or redfin)", source)
	}
	if err != nil {
		return nil, err
	}

	var records []property.Record
	if source == "redfin" {
		records = property.NormalizeRedfin(rows)
	} else {
		records = property.NormalizeZillow(rows)
	}

	return property.FillRentEstimates(records, cfg.Financing.DefaultRent), nil
}

func writeCSVFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
