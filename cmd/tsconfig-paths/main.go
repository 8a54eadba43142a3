package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/tsconfig-paths/internal/application"
	"github.com/eugenenazirov/tsconfig-paths/internal/config"
	"github.com/eugenenazirov/tsconfig-paths/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tsconfig-paths: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("tsconfig-paths", "Resolves tsconfig.json (following extends) and prints baseUrl and paths")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	cwd := kingpinApp.Flag("cwd", "Directory to resolve from (defaults to the current directory)").String()
	project := kingpinApp.Flag("project", "tsconfig file or directory; takes precedence over TS_NODE_PROJECT").Short('p').String()
	var discoverSet bool
	discover := kingpinApp.Flag("discover", "Search parent directories for tsconfig.json when no override is set").IsSetByUser(&discoverSet).Bool()
	format := kingpinApp.Flag("format", "Output format: json or yaml").String()
	logLevel := kingpinApp.Flag("log-level", "Log level: debug, info, warn or error").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *cwd != "" {
		overrides.WorkingDir = cwd
	}

	if *project != "" {
		overrides.Project = project
	}

	if discoverSet {
		overrides.Discover = discover
	}

	if *format != "" {
		overrides.Format = format
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	return application.New(cfg, logger).Run(stdout)
}
