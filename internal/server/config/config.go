// Package config handles configuration for the server component,
// including defaults, a JSON or YAML file overlay, and command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/netops/internal/filex"
	"github.com/dmitrijs2005/netops/internal/flagx"
	"github.com/dmitrijs2005/netops/internal/logging"
	"github.com/spf13/pflag"
)

// ErrHelp is returned by Load when -h/--help was requested.
var ErrHelp = pflag.ErrHelp

// Config holds runtime settings for the netops reference backend.
//
// Fields:
//   - Addr: bind address of the HTTP endpoint.
//   - LogLevel: debug, info, warn or error.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps users in memory.
type Config struct {
	Addr        string
	LogLevel    string
	DatabaseDSN string
}

type fileConfig struct {
	Addr        string `json:"addr" yaml:"addr"`
	LogLevel    string `json:"log_level" yaml:"log_level"`
	DatabaseDSN string `json:"database_dsn" yaml:"database_dsn"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.LogLevel = "info"
}

// Load builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFile(args); path != "" {
		var fc fileConfig
		if err := filex.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if fc.Addr != "" {
			cfg.Addr = fc.Addr
		}
		if fc.LogLevel != "" {
			cfg.LogLevel = fc.LogLevel
		}
		if fc.DatabaseDSN != "" {
			cfg.DatabaseDSN = fc.DatabaseDSN
		}
	}

	fs := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("flags: %w", err)
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

func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := flagx.NewFlagSet("netops-server")
	fs.StringVarP(&cfg.Addr, "address", "a", cfg.Addr, "address to listen on")
	fs.StringVarP(&cfg.LogLevel, "log-level", "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.DatabaseDSN, "database-dsn", "d", cfg.DatabaseDSN, "PostgreSQL DSN; empty keeps users in memory")
	return fs
}
