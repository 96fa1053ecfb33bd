package cmd

import (
	"github.com/BainBrain70/PropertyManager/config"
	"github.com/BainBrain70/PropertyManager/listings"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "propman",
	Short: "Estimate the financial viability of rental property investments",
	Long: `Propman analyzes rental property listings as investments.

It provides tools for:
  - Fetching listings from Zillow and Redfin search URLs
  - Monthly cash flow analysis across a whole search result
  - Finding the break-even down payment per property
  - Year-by-year investment projections with extra-principal modeling
  - Exporting every table as CSV`,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
}

// loadConfig returns the file-backed configuration, or the defaults when no
// --config flag was given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

// newListingsClient wires a provider client with the configured cache.
func newListingsClient(cfg *config.Config) *listings.Client {
	client := listings.NewClient(cfg.Listings.ScrapeakKey, cfg.Listings.RapidAPIKey)

	switch cfg.Cache.Type {
	case "memory":
		client.UseCache(listings.NewMemoryCache())
	case "redis":
		client.UseCache(listings.NewRedisCache(cfg.Cache.RedisAddr))
	}
	return client
}
