// Package config loads the tsconfig-paths tool settings from multiple sources
// (YAML file, environment variables, CLI flags) with precedence: CLI flags >
// YAML config > Environment variables > Defaults.
package config
