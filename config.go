package funds

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the pipeline configuration, resolved once at process start.
// The zero value plus defaults reproduces the stock behavior; a YAML file
// only needs to name what it overrides.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Markets  []MarketConfig `yaml:"markets"`
	Output   string         `yaml:"output"`
}

// ProviderConfig holds the Morningstar screener settings.
type ProviderConfig struct {
	// Enabled selects the live client; nil means enabled. With the
	// provider disabled every run serves the curated tables.
	Enabled  *bool         `yaml:"enabled"`
	BaseURL  string        `yaml:"base_url"`
	Language string        `yaml:"language"`
	Currency string        `yaml:"currency"`
	PageSize int           `yaml:"page_size"`
	Timeout  time.Duration `yaml:"timeout"`
}

// IsEnabled reports whether the live provider client should be used.
func (p ProviderConfig) IsEnabled() bool { return p.Enabled == nil || *p.Enabled }

// MarketConfig defines one fund universe and its search phrases.
type MarketConfig struct {
	Key      string   `yaml:"key"`      // document key: "global" or "sweden"
	Universe string   `yaml:"universe"` // screener universeIds value
	Phrases  []string `yaml:"phrases"`
}

// Default values for optional configuration fields.
const (
	DefaultConfigPath     = "fondsync.yaml"
	DefaultBaseURL        = "https://tools.morningstar.se/api/rest.svc/klr5zyak8x"
	DefaultLanguage       = "sv-SE"
	DefaultCurrency       = "SEK"
	DefaultPageSize       = 50
	DefaultTimeout        = 30 * time.Second
	DefaultOutput         = "data/funds.json"
	DefaultGlobalUniverse = "FOGBR$$ALL"
	DefaultSwedenUniverse = "FOSWE$$ALL"
)

func defaultMarkets() []MarketConfig {
	return []MarketConfig{
		{
			Key:      "global",
			Universe: DefaultGlobalUniverse,
			Phrases:  []string{"Global Index", "World Index", "MSCI World", "MSCI ACWI", "S&P 500"},
		},
		{
			Key:      "sweden",
			Universe: DefaultSwedenUniverse,
			Phrases:  []string{"Sverige Index", "Sweden Index", "OMX", "SIX"},
		},
	}
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a YAML config file, expands ${VAR} environment
// variables, applies defaults and validates. An empty path means the
// default location, and its absence means the stock configuration.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} references but keep $$ intact: screener universe ids
	// like FOGBR$$ALL contain literal dollar signs.
	expanded := os.Expand(string(data), func(name string) string {
		if name == "$" {
			return "$$"
		}
		return os.Getenv(name)
	})

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = DefaultBaseURL
	}
	if c.Provider.Language == "" {
		c.Provider.Language = DefaultLanguage
	}
	if c.Provider.Currency == "" {
		c.Provider.Currency = DefaultCurrency
	}
	if c.Provider.PageSize == 0 {
		c.Provider.PageSize = DefaultPageSize
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = DefaultTimeout
	}
	if len(c.Markets) == 0 {
		c.Markets = defaultMarkets()
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Validate checks that the configuration can drive a run: both document
// markets present, each with at least one phrase.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for i, m := range c.Markets {
		if m.Key != "global" && m.Key != "sweden" {
			return fmt.Errorf("markets[%d].key must be \"global\" or \"sweden\", got %q", i, m.Key)
		}
		if seen[m.Key] {
			return fmt.Errorf("markets[%d].key %q is duplicated", i, m.Key)
		}
		seen[m.Key] = true
		if len(m.Phrases) == 0 {
			return fmt.Errorf("markets[%d] (%s) needs at least one search phrase", i, m.Key)
		}
	}
	if !seen["global"] || !seen["sweden"] {
		return errors.New("markets must cover both global and sweden")
	}
	if c.Provider.PageSize < 1 {
		return errors.New("provider.page_size must be >= 1")
	}
	if c.Output == "" {
		return errors.New("output is required")
	}
	return nil
}
