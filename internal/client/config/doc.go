// Package config loads runtime configuration for the netops CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config. Files ending in
//     .yaml/.yml are YAML, anything else is JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a, --address string     base URL of the auth backend
//	-l, --log-level string   debug, info, warn or error
//
// # File schema
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/",
//	  "log_level": "debug"
//	}
//
// Empty values in the file leave the defaults in place. Environment variables
// are not consulted.
package config
