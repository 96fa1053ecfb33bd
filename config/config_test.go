package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30, cfg.Financing.LoanYears)
	assert.Equal(t, 0.20, cfg.Financing.DownPaymentPct)
	assert.Equal(t, 0.0125, cfg.Projection.AnnualTaxRate)
	assert.Equal(t, "memory", cfg.Cache.Type)
}

func TestSaveLoadYAML(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Financing.InterestRate = 0.0725
	cfg.Listings.ScrapeakKey = "test-key"

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveLoadJSON(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Projection.HoldingYears = 15
	cfg.Cache = CacheConfig{Type: "redis", RedisAddr: "localhost:6379"}

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not valid: [yaml or json"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Financing.LoanYears = 0

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loan_years")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"negative rate", func(c *Config) { c.Financing.InterestRate = -0.01 }, false},
		{"down payment over 1", func(c *Config) { c.Financing.DownPaymentPct = 1.5 }, false},
		{"negative insurance", func(c *Config) { c.Financing.MonthlyInsurance = -1 }, false},
		{"vacancy over 1", func(c *Config) { c.Projection.VacancyRate = 1.1 }, false},
		{"zero holding years", func(c *Config) { c.Projection.HoldingYears = 0 }, false},
		{"unknown cache type", func(c *Config) { c.Cache.Type = "disk" }, false},
		{"redis without addr", func(c *Config) { c.Cache.Type = "redis" }, false},
		{"redis with addr", func(c *Config) { c.Cache = CacheConfig{Type: "redis", RedisAddr: "localhost:6379"} }, true},
		{"no cache", func(c *Config) { c.Cache.Type = "none" }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
