// Package config loads application configuration from an optional YAML
// file layered under SPC_* environment variable overrides, with sane
// defaults for logging, output paths, and chart tunables.
package config
