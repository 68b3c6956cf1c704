// Package config loads, validates, renders, and writes the project-level
// frontkit.config file (YAML, JSON, or TOML). Loading goes through Viper so
// FRONTKIT_* environment variables override file values; validation runs the
// raw file against an embedded JSON Schema.
package config
