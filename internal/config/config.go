package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds twr's own settings. Timewarrior's per-report settings
// arrive in the report header instead and are not read from disk.
type Config struct {
	Timezone   string `toml:"timezone"`    // IANA name; "" = process local time
	OpenMarker string `toml:"open_marker"` // shown in place of a missing end
	Limit      int    `toml:"limit"`       // default row limit, 0 = unlimited
}

// Load returns defaults merged with ~/.config/twr/config.toml when that
// file exists.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		OpenMarker: "-",
	}

	cfgPath := filepath.Join(home, ".config", "twr", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	return cfg, nil
}

// Location resolves the configured timezone for timestamp conversion.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
