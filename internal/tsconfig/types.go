package tsconfig

const (
	// FileName is the conventional name of the compiler configuration file.
	FileName = "tsconfig.json"
	// DefaultEnvKey names the environment variable holding an explicit config file or directory.
	DefaultEnvKey = "TS_NODE_PROJECT"

	extendsKey         = "extends"
	compilerOptionsKey = "compilerOptions"
)

// Object is a parsed configuration document.
type Object = map[string]any

// Result is what the loader extracts from a resolved config chain.
// Empty fields mean the value was not present; an explicit "baseUrl": ""
// is reported the same way as a missing one.
type Result struct {
	ConfigPath string              `json:"tsConfigPath,omitempty" yaml:"tsConfigPath,omitempty"`
	BaseURL    string              `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
	Paths      map[string][]string `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// FileSystem describes the filesystem operations the loader depends on.
type FileSystem interface {
	// Exists reports whether anything is present at path.
	Exists(path string) bool
	// IsDir reports whether path is a directory. It fails when path does not exist.
	IsDir(path string) (bool, error)
	// ReadConfig reads and parses the config document stored at path.
	ReadConfig(path string) (map[string]any, error)
}

// EnvFunc looks up an environment variable. os.LookupEnv satisfies it.
type EnvFunc func(key string) (string, bool)

// Strategy turns a working directory and an optional override into a Result.
type Strategy func(cwd, override string) (Result, error)

type compilerOptions struct {
	BaseURL string              `mapstructure:"baseUrl"`
	Paths   map[string][]string `mapstructure:"paths"`
}
