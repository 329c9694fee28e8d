// Package config loads runtime configuration for the Escalator CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Escalator API
//	-t int      request timeout (seconds)
//	-d string   path to the local credential database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://escalator.example.com/api",
//	  "request_timeout": "10s",
//	  "database_path": "escalator.db"
//	}
//
// This package does not read environment variables; use the JSON file or
// flags to configure values.
package config
