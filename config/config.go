// Package config loads the fnd configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "fnd.yaml"

// Config is the content of the configuration file.
type Config struct {
	Ledger    string `yaml:"ledger"`
	Currency  string `yaml:"currency"`
	Unit      string `yaml:"unit"`
	Top       int    `yaml:"top"`
	CacheSize int    `yaml:"cache_size"`

	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`

	Server struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
	} `yaml:"server"`

	Assist struct {
		Model string `yaml:"model"`
	} `yaml:"assist"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	c := &Config{
		Ledger:    "funding.jsonl",
		Currency:  "INR",
		Unit:      "Cr",
		Top:       10,
		CacheSize: 256,
	}
	c.Log.Level = "info"
	c.Log.Pretty = true
	c.Server.Addr = "localhost:8080"
	c.Server.ReadTimeout = 5 * time.Second
	c.Server.WriteTimeout = 10 * time.Second
	c.Assist.Model = "gemini-2.5-flash"
	return c
}

// Load reads a configuration file over the defaults.
//
// A missing file is not an error when path is DefaultFile: the defaults are
// returned.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && path == DefaultFile {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshal config %q: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %q: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overrides the configuration with the FND_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for name, field := range map[string]*string{
		"FND_LEDGER":    &c.Ledger,
		"FND_UNIT":      &c.Unit,
		"FND_LOG_LEVEL": &c.Log.Level,
		"FND_ADDR":      &c.Server.Addr,
	} {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			*field = strings.TrimSpace(v)
		}
	}
}

// Validate checks the values of the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Ledger) == "" {
		return errors.New("ledger is required")
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("currency %q is not an ISO 4217 code", c.Currency)
	}
	if c.Top < 0 {
		return fmt.Errorf("top must be positive, got %d", c.Top)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New("server timeouts must be positive")
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
