package config

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/netops/internal/client/client"
	"github.com/dmitrijs2005/netops/internal/filex"
	"github.com/dmitrijs2005/netops/internal/flagx"
	"github.com/dmitrijs2005/netops/internal/logging"
	"github.com/spf13/pflag"
)

// ErrHelp is returned by Load when -h/--help was requested.
var ErrHelp = pflag.ErrHelp

// Config holds runtime settings for the netops CLI.
//
// Fields:
//   - ServerBaseURL: root of the auth backend; endpoints are resolved against it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL string
	LogLevel      string
}

// fileConfig is the on-disk shape, used for both JSON and YAML.
type fileConfig struct {
	ServerBaseURL string `json:"server_base_url" yaml:"server_base_url"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
}

// LoadDefaults populates c with the built-in values.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = client.DefaultBaseURL
	c.LogLevel = "warn"
}

// Load builds a Config from defaults, then the optional config file, then
// flags. Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Usage returns the flag help text.
func Usage() string {
	cfg := &Config{}
	cfg.LoadDefaults()
	fs := newFlagSet(cfg)
	fs.StringP("config", "c", "", "path to config file (JSON or YAML)")
	return fs.FlagUsages()
}

func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	var fc fileConfig
	if err := filex.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	if fc.ServerBaseURL != "" {
		cfg.ServerBaseURL = fc.ServerBaseURL
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return nil
}

func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := flagx.NewFlagSet("netops")
	fs.StringVarP(&cfg.ServerBaseURL, "address", "a", cfg.ServerBaseURL, "base URL of the auth backend")
	fs.StringVarP(&cfg.LogLevel, "log-level", "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	return fs
}

// parseFlags overlays cfg with -a/--address and -l/--log-level.
func parseFlags(cfg *Config, args []string) error {
	fs := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ErrHelp
		}
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}
