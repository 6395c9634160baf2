package cmd

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "dcast.yaml", "Path to the configuration file")

// Config is the on-disk configuration shape (YAML). Command-line flags
// override anything set here.
type Config struct {
	Currency    string `yaml:"currency"`      // reporting currency: USD, GBP or EUR
	Drip        *bool  `yaml:"drip"`          // enable the DRIP simulation
	DripYears   int    `yaml:"drip_years"`    // simulation horizon in years
	EodhdAPIKey string `yaml:"eodhd_api_key"` // fallback when flag and env are unset
}

// DripEnabled returns the configured flag, defaulting to enabled.
func (c *Config) DripEnabled() bool {
	if c.Drip == nil {
		return true
	}
	return *c.Drip
}

// LoadConfig reads the configuration file. A missing file is not an error:
// it yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Currency: "USD", DripYears: 5}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.DripYears == 0 {
		cfg.DripYears = 5
	}
	return cfg, nil
}

// loadConfig is the command-side helper: it loads the shared -config file and
// reports errors on stderr.
func loadConfig() (*Config, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, err
	}
	return cfg, nil
}
