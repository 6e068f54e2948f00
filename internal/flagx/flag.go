// Package flagx holds command-line helpers shared by the client and the
// backend. Flag sets built here tolerate flags they do not define, so the
// config-file lookup and the per-component flags can parse the same argv.
package flagx

import (
	"github.com/spf13/pflag"
)

// NewFlagSet returns a ContinueOnError flag set that skips unknown flags.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	return fs
}

// ConfigFile extracts the config file path given via -c or --config.
// It returns "" when neither is present or args do not parse.
func ConfigFile(args []string) string {
	var config string

	fs := NewFlagSet("config")
	fs.StringVarP(&config, "config", "c", "", "path to config file (JSON or YAML)")
	_ = fs.Parse(args)

	return config
}
