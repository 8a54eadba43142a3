package integration

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/tsconfig-paths/internal/tsconfig"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestIntegrationMonorepo(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tsconfig.base.json"), `{
		"compilerOptions": {
			"baseUrl": ".",
			"strict": true,
			"paths": {
				"@shared/*": ["packages/shared/src/*"],
			},
		},
	}`)
	writeFile(t, filepath.Join(root, "packages", "web", "tsconfig.json"), `{
		// web app settings
		"extends": "../../tsconfig.base",
		"compilerOptions": {
			"paths": {"@web/*": ["packages/web/src/*"]}
		}
	}`)
	writeFile(t, filepath.Join(root, "packages", "web", "tsconfig.test.json"), `{
		"extends": "./tsconfig.json",
		"compilerOptions": {"baseUrl": "./test"}
	}`)

	webDir := filepath.Join(root, "packages", "web")
	logger := zaptest.NewLogger(t)

	t.Run("default", func(t *testing.T) {
		t.Setenv(tsconfig.DefaultEnvKey, "")

		got, err := tsconfig.Load(os.LookupEnv, webDir, tsconfig.WithLogger(logger))
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		want := tsconfig.Result{
			ConfigPath: filepath.Join(webDir, "tsconfig.json"),
			BaseURL:    ".",
			Paths: map[string][]string{
				"@shared/*": {"packages/shared/src/*"},
				"@web/*":    {"packages/web/src/*"},
			},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("unexpected result:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv(tsconfig.DefaultEnvKey, "tsconfig.test.json")

		got, err := tsconfig.Load(os.LookupEnv, webDir, tsconfig.WithLogger(logger))
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if got.BaseURL != "./test" || len(got.Paths) != 2 {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("missing override", func(t *testing.T) {
		t.Setenv(tsconfig.DefaultEnvKey, filepath.Join(root, "nope"))

		_, err := tsconfig.Load(os.LookupEnv, webDir, tsconfig.WithLogger(logger))
		if !errors.Is(err, tsconfig.ErrInvalidOverride) {
			t.Fatalf("expected ErrInvalidOverride, got %v", err)
		}
	})

	t.Run("walk up", func(t *testing.T) {
		src := filepath.Join(webDir, "src", "components")
		if err := os.MkdirAll(src, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}

		got, ok := tsconfig.WalkUp(src, nil)
		if !ok || got != filepath.Join(webDir, "tsconfig.json") {
			t.Fatalf("expected web tsconfig, got %q (found=%v)", got, ok)
		}
	})
}

func TestIntegrationCircularExtends(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tsconfig.json"), `{"extends": "./a.json"}`)
	writeFile(t, filepath.Join(root, "a.json"), `{"extends": "./tsconfig.json"}`)

	_, err := tsconfig.LoadChain(nil, filepath.Join(root, "tsconfig.json"))
	if !errors.Is(err, tsconfig.ErrCircularExtends) {
		t.Fatalf("expected ErrCircularExtends, got %v", err)
	}
}
