package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"
)

var ErrConfigNotFound = errors.New("no config file found")

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type CacheConfig struct {
	OffsetTTL string `yaml:"offset_ttl"`
}

type Config struct {
	Timezone string       `yaml:"timezone"`
	Format   string       `yaml:"format"`
	Locale   string       `yaml:"locale"`
	Server   ServerConfig `yaml:"server"`
	Cache    CacheConfig  `yaml:"cache"`
}

// Load loads configuration with the following priority:
// 1. User provided fpath (if provided and exists)
// 2. $XDG_CONFIG_HOME/daterange/config.yaml or $HOME/.config/daterange/config.yaml
// 3. /etc/daterange/config.yaml
// A missing config file is not an error here: every key has a usable
// default, so the tool runs unconfigured.
func Load(fpath string) (*Config, error) {
	var config Config

	configPath, err := findConfigFile(fpath)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			config.ensureDefaults()
			return &config, nil
		}
		return nil, err
	}

	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if cerr := yaml.Unmarshal(configBytes, &config); cerr != nil {
		return nil, fmt.Errorf("parsing config: %w", cerr)
	}

	config.ensureDefaults()

	if verr := config.validate(); verr != nil {
		return nil, verr
	}

	return &config, nil
}

func (c *Config) ensureDefaults() {
	if c.Format == "" {
		c.Format = "rfc3339"
	}

	if c.Locale == "" {
		c.Locale = "en"
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	// offset regimes change at most twice a year, half a day of staleness
	// is tolerable
	if c.Cache.OffsetTTL == "" {
		c.Cache.OffsetTTL = "12h"
	}
}

// OffsetTTL returns the parsed cache TTL; validate guarantees it parses.
func (c *Config) OffsetTTL() time.Duration {
	d, _ := time.ParseDuration(c.Cache.OffsetTTL)
	return d
}

func findConfigFile(userPath string) (string, error) {
	if userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(configDir, "daterange", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	path := "/etc/daterange/config.yaml"
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	return "", ErrConfigNotFound
}
