// Package config loads runtime configuration for the FitTrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (FITTRACK_*), after loading .env if present.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-s string   session storage file
//	-l string   log level
//
// # JSON schema
//
// Durations are either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.fittrack.example",
//	  "request_timeout": "10s",
//	  "storage_path": "fittrack.db",
//	  "log_level": "info"
//	}
package config
