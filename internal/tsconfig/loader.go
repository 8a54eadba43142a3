package tsconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/eugenenazirov/tsconfig-paths/internal/storage"
)

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem replaces the local filesystem used by the default strategy.
func WithFileSystem(fsys FileSystem) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithEnvKey changes the environment variable read for an explicit override.
func WithEnvKey(key string) Option {
	return func(l *Loader) {
		l.envKey = key
	}
}

// WithDiscovery makes the default strategy search parent directories for
// tsconfig.json when no override is given, instead of only looking in cwd.
func WithDiscovery(enabled bool) Option {
	return func(l *Loader) {
		l.discover = enabled
	}
}

// WithStrategy replaces the default filesystem-backed strategy.
func WithStrategy(strategy Strategy) Option {
	return func(l *Loader) {
		l.strategy = strategy
	}
}

// Loader resolves the compiler options relevant to module path mapping.
type Loader struct {
	fsys     FileSystem
	logger   *zap.Logger
	envKey   string
	discover bool
	strategy Strategy
}

// NewLoader constructs a Loader. Without options it reads TS_NODE_PROJECT and
// loads from the local filesystem.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		logger: zap.NewNop(),
		envKey: DefaultEnvKey,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fsys == nil {
		l.fsys = defaultFileSystem()
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	if l.envKey == "" {
		l.envKey = DefaultEnvKey
	}
	if l.strategy == nil {
		l.strategy = l.loadDefault
	}
	return l
}

// Load is shorthand for NewLoader(opts...).Load(getenv, cwd).
func Load(getenv EnvFunc, cwd string, opts ...Option) (Result, error) {
	return NewLoader(opts...).Load(getenv, cwd)
}

// Load reads the override variable through getenv and runs the configured
// strategy for cwd. A nil getenv reads the process environment.
func (l *Loader) Load(getenv EnvFunc, cwd string) (Result, error) {
	if getenv == nil {
		getenv = os.LookupEnv
	}
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return Result{}, fmt.Errorf("resolve working directory %q: %w", cwd, err)
	}

	override, _ := getenv(l.envKey)
	l.logger.Debug("resolving tsconfig",
		zap.String("cwd", absCwd),
		zap.String("env_key", l.envKey),
		zap.String("override", override),
	)

	return l.strategy(absCwd, override)
}

func (l *Loader) loadDefault(cwd, override string) (Result, error) {
	configPath, err := l.configPath(cwd, override)
	if err != nil {
		return Result{}, err
	}
	if configPath == "" {
		l.logger.Debug("no tsconfig found", zap.String("cwd", cwd))
		return Result{}, nil
	}

	cfg, err := newChainLoader(l.fsys, l.logger).load(configPath)
	if err != nil {
		return Result{}, err
	}

	opts, err := decodeCompilerOptions(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", configPath, err)
	}

	return Result{
		ConfigPath: configPath,
		BaseURL:    opts.BaseURL,
		Paths:      opts.Paths,
	}, nil
}

func (l *Loader) configPath(cwd, override string) (string, error) {
	if override == "" && l.discover {
		found, _ := WalkUp(cwd, l.fsys.Exists)
		return found, nil
	}
	return ResolvePath(l.fsys, cwd, override)
}

func decodeCompilerOptions(cfg Object) (compilerOptions, error) {
	var opts compilerOptions
	raw, ok := cfg[compilerOptionsKey]
	if !ok || raw == nil {
		return opts, nil
	}
	// Option names are case sensitive: "BaseUrl" is not baseUrl.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &opts,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return compilerOptions{}, fmt.Errorf("create compilerOptions decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return compilerOptions{}, fmt.Errorf("%w: compilerOptions: %w", ErrMalformedConfig, err)
	}
	return opts, nil
}

func defaultFileSystem() FileSystem {
	return storage.NewOSStorage()
}
