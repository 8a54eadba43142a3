package application

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/tsconfig-paths/internal/config"
	"github.com/eugenenazirov/tsconfig-paths/internal/storage"
	"github.com/eugenenazirov/tsconfig-paths/internal/tsconfig"
)

// Option customises App construction.
type Option func(*App)

// WithFS replaces the local filesystem, primarily for tests.
func WithFS(fs afero.Fs) Option {
	return func(a *App) {
		a.storage = storage.NewFileStorage(fs)
	}
}

// WithEnv replaces the process environment lookup, primarily for tests.
func WithEnv(getenv tsconfig.EnvFunc) Option {
	return func(a *App) {
		a.getenv = getenv
	}
}

// App encapsulates the resolved configuration and the tsconfig loader.
type App struct {
	cfg     config.Config
	logger  *zap.Logger
	storage *storage.FileStorage
	getenv  tsconfig.EnvFunc
	loader  *tsconfig.Loader
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	app := &App{
		cfg:    cfg,
		logger: logger,
		getenv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.logger == nil {
		app.logger = zap.NewNop()
	}
	if app.storage == nil {
		app.storage = storage.NewOSStorage()
	}

	app.loader = tsconfig.NewLoader(
		tsconfig.WithFileSystem(app.storage),
		tsconfig.WithLogger(app.logger),
		tsconfig.WithEnvKey(cfg.EnvKey),
		tsconfig.WithDiscovery(cfg.Discover),
	)
	return app
}

// Resolve runs the loader for the configured working directory.
func (a *App) Resolve() (tsconfig.Result, error) {
	result, err := a.loader.Load(a.lookupEnv, a.cfg.WorkingDir)
	if err != nil {
		return tsconfig.Result{}, err
	}

	a.logger.Info("tsconfig resolved",
		zap.String("path", result.ConfigPath),
		zap.String("base_url", result.BaseURL),
		zap.Int("paths", len(result.Paths)),
	)
	return result, nil
}

// Run resolves the configuration and writes the result to w.
func (a *App) Run(w io.Writer) error {
	result, err := a.Resolve()
	if err != nil {
		return err
	}
	return Render(w, a.cfg.Format, result)
}

// lookupEnv lets an explicit project setting stand in for the override variable.
func (a *App) lookupEnv(key string) (string, bool) {
	if a.cfg.Project != "" {
		return a.cfg.Project, true
	}
	return a.getenv(key)
}

// Render encodes result in the requested format.
func Render(w io.Writer, format string, result tsconfig.Result) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return enc.Close()
	case config.FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
