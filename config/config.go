package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the assumptions and provider settings for an analysis run.
type Config struct {
	Financing  FinancingConfig  `json:"financing" yaml:"financing"`
	Projection ProjectionConfig `json:"projection" yaml:"projection"`
	Listings   ListingsConfig   `json:"listings" yaml:"listings"`
	Cache      CacheConfig      `json:"cache" yaml:"cache"`
}

// FinancingConfig contains the loan assumptions shared by the cash-flow and
// break-even calculators.
type FinancingConfig struct {
	InterestRate     float64 `json:"interest_rate" yaml:"interest_rate"` // decimal fraction
	LoanYears        int     `json:"loan_years" yaml:"loan_years"`
	DownPaymentPct   float64 `json:"down_payment_pct" yaml:"down_payment_pct"`   // 0..1
	MonthlyInsurance float64 `json:"monthly_insurance" yaml:"monthly_insurance"` // dollars
	DefaultRent      float64 `json:"default_rent" yaml:"default_rent"`           // fallback rent estimate
}

// ProjectionConfig contains default assumptions for the investment simulator.
type ProjectionConfig struct {
	AnnualTaxRate   float64 `json:"annual_tax_rate" yaml:"annual_tax_rate"`
	VacancyRate     float64 `json:"vacancy_rate" yaml:"vacancy_rate"`
	Appreciation    float64 `json:"appreciation" yaml:"appreciation"`
	RentIncrease    float64 `json:"rent_increase" yaml:"rent_increase"`
	HoldingYears    int     `json:"holding_years" yaml:"holding_years"`
	MaintenanceRate float64 `json:"maintenance_rate" yaml:"maintenance_rate"`
}

// ListingsConfig contains the provider API keys.
type ListingsConfig struct {
	ScrapeakKey string `json:"scrapeak_key,omitempty" yaml:"scrapeak_key,omitempty"`
	RapidAPIKey string `json:"rapidapi_key,omitempty" yaml:"rapidapi_key,omitempty"`
}

// CacheConfig controls the listings response cache.
type CacheConfig struct {
	Type      string `json:"type" yaml:"type"` // "none", "memory", or "redis"
	RedisAddr string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file, picking the format by extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Financing.InterestRate < 0 {
		return fmt.Errorf("financing.interest_rate must be non-negative")
	}
	if c.Financing.LoanYears <= 0 {
		return fmt.Errorf("financing.loan_years must be positive")
	}
	if c.Financing.DownPaymentPct < 0 || c.Financing.DownPaymentPct > 1 {
		return fmt.Errorf("financing.down_payment_pct must be between 0 and 1")
	}
	if c.Financing.MonthlyInsurance < 0 {
		return fmt.Errorf("financing.monthly_insurance must be non-negative")
	}
	if c.Financing.DefaultRent < 0 {
		return fmt.Errorf("financing.default_rent must be non-negative")
	}
	if c.Projection.AnnualTaxRate < 0 {
		return fmt.Errorf("projection.annual_tax_rate must be non-negative")
	}
	if c.Projection.VacancyRate < 0 || c.Projection.VacancyRate > 1 {
		return fmt.Errorf("projection.vacancy_rate must be between 0 and 1")
	}
	if c.Projection.HoldingYears <= 0 {
		return fmt.Errorf("projection.holding_years must be positive")
	}
	if c.Projection.MaintenanceRate < 0 {
		return fmt.Errorf("projection.maintenance_rate must be non-negative")
	}
	switch c.Cache.Type {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("cache.type must be 'none', 'memory', or 'redis'")
	}
	if c.Cache.Type == "redis" && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache.redis_addr required for redis cache")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Financing: FinancingConfig{
			InterestRate:     0.061,
			LoanYears:        30,
			DownPaymentPct:   0.20,
			MonthlyInsurance: 100,
			DefaultRent:      3000,
		},
		Projection: ProjectionConfig{
			AnnualTaxRate:   0.0125,
			VacancyRate:     0.05,
			Appreciation:    0.03,
			RentIncrease:    0.025,
			HoldingYears:    10,
			MaintenanceRate: 0.01,
		},
		Cache: CacheConfig{
			Type: "memory",
		},
	}
}
