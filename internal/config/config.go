package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rp1014/launchtrack/internal/model"
)

// Config holds all application configuration, including the static asset
// definitions that drive each aggregation run.
type Config struct {
	Providers struct {
		JupiterBaseURL       string `yaml:"jupiter_base_url"`
		DexScreenerBaseURL   string `yaml:"dexscreener_base_url"`
		GeckoTerminalBaseURL string `yaml:"geckoterminal_base_url"`
		Network              string `yaml:"network"`
		TimeoutSeconds       int    `yaml:"timeout_seconds"`
	} `yaml:"providers"`
	Aggregation struct {
		AssetDelayMS           int    `yaml:"asset_delay_ms"`
		CandleTimeframe        string `yaml:"candle_timeframe"`
		CandleAggregate        int    `yaml:"candle_aggregate"`
		CandleLimit            int    `yaml:"candle_limit"`
		AnchorOffsetMinutes    int    `yaml:"anchor_offset_minutes"`
		AnchorToleranceMinutes int    `yaml:"anchor_tolerance_minutes"`
	} `yaml:"aggregation"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Assets []model.AssetDefinition `yaml:"assets"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("JUPITER_BASE_URL"); v != "" {
		cfg.Providers.JupiterBaseURL = v
	}
	if v := os.Getenv("DEXSCREENER_BASE_URL"); v != "" {
		cfg.Providers.DexScreenerBaseURL = v
	}
	if v := os.Getenv("GECKOTERMINAL_BASE_URL"); v != "" {
		cfg.Providers.GeckoTerminalBaseURL = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Providers.Network == "" {
		cfg.Providers.Network = "solana"
	}
	if cfg.Providers.TimeoutSeconds == 0 {
		cfg.Providers.TimeoutSeconds = 12
	}
	if cfg.Aggregation.AssetDelayMS == 0 {
		cfg.Aggregation.AssetDelayMS = 1000
	}
	if cfg.Aggregation.CandleTimeframe == "" {
		cfg.Aggregation.CandleTimeframe = "day"
	}
	if cfg.Aggregation.CandleAggregate == 0 {
		cfg.Aggregation.CandleAggregate = 1
	}
	if cfg.Aggregation.CandleLimit == 0 {
		cfg.Aggregation.CandleLimit = 1000
	}
	if cfg.Aggregation.AnchorOffsetMinutes == 0 {
		cfg.Aggregation.AnchorOffsetMinutes = 30
	}
	if cfg.Aggregation.AnchorToleranceMinutes == 0 {
		cfg.Aggregation.AnchorToleranceMinutes = 90
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */15 * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/launchtrack.db"
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if len(c.Assets) == 0 {
		return fmt.Errorf("at least one asset must be configured")
	}
	seen := make(map[string]bool, len(c.Assets))
	for i, a := range c.Assets {
		if a.Symbol == "" {
			return fmt.Errorf("assets[%d]: symbol is required", i)
		}
		if a.Mint == "" {
			return fmt.Errorf("assets[%d] (%s): mint is required", i, a.Symbol)
		}
		if seen[a.Mint] {
			return fmt.Errorf("assets[%d] (%s): duplicate mint %s", i, a.Symbol, a.Mint)
		}
		seen[a.Mint] = true
		if a.ICOPrice < 0 {
			return fmt.Errorf("assets[%d] (%s): ico_price must not be negative", i, a.Symbol)
		}
	}
	switch c.Aggregation.CandleTimeframe {
	case "minute", "hour", "day":
	default:
		return fmt.Errorf("aggregation.candle_timeframe must be minute, hour, or day")
	}
	return nil
}

// Timeout returns the per-request provider timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Providers.TimeoutSeconds) * time.Second
}

// AssetDelay returns the pause inserted between successive assets.
func (c *Config) AssetDelay() time.Duration {
	return time.Duration(c.Aggregation.AssetDelayMS) * time.Millisecond
}

// AnchorOffset returns the time-anchored return offset after TGE.
func (c *Config) AnchorOffset() time.Duration {
	return time.Duration(c.Aggregation.AnchorOffsetMinutes) * time.Minute
}

// AnchorTolerance returns the candle-lookup tolerance window.
func (c *Config) AnchorTolerance() time.Duration {
	return time.Duration(c.Aggregation.AnchorToleranceMinutes) * time.Minute
}
