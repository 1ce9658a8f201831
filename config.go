package sip

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML description of a plan and its NAV source, for runs driven
// by a file instead of flags.
type Config struct {
	Amount   float64 `yaml:"amount"`
	Currency string  `yaml:"currency"`
	Start    string  `yaml:"start"` // first contribution month, "YYYY-MM"
	End      string  `yaml:"end"`   // last contribution month, "YYYY-MM"
	Day      int     `yaml:"day"`   // target day of the month

	// ProjectionYears is reserved for a future-value projection feature.
	ProjectionYears int `yaml:"projection_years"`

	NAV struct {
		File       string `yaml:"file"`
		Format     string `yaml:"format"` // report, investing or json
		DateColumn string `yaml:"date_column"`
		NAVColumn  string `yaml:"nav_column"`
		DateLayout string `yaml:"date_layout"`
		DatesPath  string `yaml:"dates_path"` // jsonpath, json format only
		NAVsPath   string `yaml:"navs_path"`  // jsonpath, json format only
	} `yaml:"nav"`
}

// LoadConfig reads a plan configuration from a YAML file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	if cfg.Day == 0 {
		cfg.Day = 1
	}
	if cfg.NAV.Format == "" {
		cfg.NAV.Format = "report"
	}
	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %v", c.Amount)
	}
	if c.Day < 1 || c.Day > 31 {
		return fmt.Errorf("day must be between 1 and 31, got %d", c.Day)
	}
	if c.ProjectionYears < 0 {
		return fmt.Errorf("projection_years must not be negative, got %d", c.ProjectionYears)
	}
	if _, _, err := parseMonth(c.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if _, _, err := parseMonth(c.End); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	switch c.NAV.Format {
	case "report", "investing":
	case "json":
		if c.NAV.DatesPath == "" || c.NAV.NAVsPath == "" {
			return fmt.Errorf("json format requires nav.dates_path and nav.navs_path")
		}
	default:
		return fmt.Errorf("unknown nav.format %q, want report, investing or json", c.NAV.Format)
	}
	return nil
}

// Plan builds the investment plan described by the configuration.
// Validate must have been called first.
func (c *Config) Plan() (Plan, error) {
	if err := c.Validate(); err != nil {
		return Plan{}, err
	}
	startYear, startMonth, _ := parseMonth(c.Start)
	endYear, endMonth, _ := parseMonth(c.End)
	return Plan{
		Amount:          M(c.Amount, c.Currency),
		StartYear:       startYear,
		StartMonth:      startMonth,
		EndYear:         endYear,
		EndMonth:        endMonth,
		Day:             c.Day,
		ProjectionYears: c.ProjectionYears,
	}, nil
}

// parseMonth parses a "YYYY-MM" month, leniently accepting "YYYY-M".
func parseMonth(str string) (int, time.Month, error) {
	t, err := time.Parse("2006-1", str)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q want format \"2006-01\": %w", str, err)
	}
	return t.Year(), t.Month(), nil
}
