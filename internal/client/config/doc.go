// Package config loads runtime configuration for the StruMind console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the StruMind HTTP API
//	-i int      job status poll interval (seconds)
//	-t int      HTTP request timeout (seconds)
//	-f string   path to the local SQLite database file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "2s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8000",
//	  "poll_interval": "2s",
//	  "http_timeout": "10s",
//	  "database_path": "strumind.db"
//	}
//
// Primary API
//
//   - type Config                     — holds BaseURL, PollInterval, HTTPTimeout, DatabasePath
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
