package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/tsconfig-paths/internal/tsconfig"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	defaultFormat   = FormatJSON
	defaultLogLevel = "warn"

	envFormat   = "TSCONFIG_PATHS_FORMAT"
	envLogLevel = "TSCONFIG_PATHS_LOG_LEVEL"
	envDiscover = "TSCONFIG_PATHS_DISCOVER"
	envEnvKey   = "TSCONFIG_PATHS_ENV_KEY"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	// WorkingDir is where resolution starts. Empty means the process working directory.
	WorkingDir string `yaml:"working_dir"`
	// Project is an explicit tsconfig file or directory. It takes precedence over EnvKey.
	Project string `yaml:"project"`
	// EnvKey names the environment variable consulted for an override.
	EnvKey string `yaml:"env_key"`
	// Discover searches parent directories when no override is present.
	Discover bool   `yaml:"discover"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	WorkingDir string `yaml:"working_dir"`
	Project    string `yaml:"project"`
	EnvKey     string `yaml:"env_key"`
	Discover   *bool  `yaml:"discover"`
	Format     string `yaml:"format"`
	LogLevel   string `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	WorkingDir *string
	Project    *string
	Discover   *bool
	Format     *string
	LogLevel   *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		EnvKey:   tsconfig.DefaultEnvKey,
		Format:   defaultFormat,
		LogLevel: defaultLogLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.WorkingDir != "" {
		cfg.WorkingDir = yamlCfg.WorkingDir
	}
	if yamlCfg.Project != "" {
		cfg.Project = yamlCfg.Project
	}
	if yamlCfg.EnvKey != "" {
		cfg.EnvKey = yamlCfg.EnvKey
	}
	if yamlCfg.Discover != nil {
		cfg.Discover = *yamlCfg.Discover
	}
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if format := strings.TrimSpace(os.Getenv(envFormat)); format != "" {
		cfg.Format = format
	}

	if level := strings.TrimSpace(os.Getenv(envLogLevel)); level != "" {
		cfg.LogLevel = level
	}

	if raw := strings.TrimSpace(os.Getenv(envDiscover)); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			cfg.Discover = value
		}
	}

	if key := strings.TrimSpace(os.Getenv(envEnvKey)); key != "" {
		cfg.EnvKey = key
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.WorkingDir != nil && *overrides.WorkingDir != "" {
		cfg.WorkingDir = *overrides.WorkingDir
	}
	if overrides.Project != nil && *overrides.Project != "" {
		cfg.Project = *overrides.Project
	}
	if overrides.Discover != nil {
		cfg.Discover = *overrides.Discover
	}
	if overrides.Format != nil && *overrides.Format != "" {
		cfg.Format = *overrides.Format
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	switch cfg.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported output format %q (want %s or %s)", cfg.Format, FormatJSON, FormatYAML)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if strings.TrimSpace(cfg.EnvKey) == "" {
		return fmt.Errorf("env key cannot be empty")
	}
	return nil
}
