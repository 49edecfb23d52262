package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/goswon/pkg/config"
)

func noEnv(string) string { return "" }

func baseOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		Getenv:             noEnv,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), baseOptions(t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.Format.IndentWidth != config.DefaultIndentWidth {
		t.Errorf("expected indent width %d, got %d", config.DefaultIndentWidth, result.Config.Format.IndentWidth)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".swon.yml"), `
format:
  indent_width: 4
unformat:
  seed: 9
  empty_line: 0
`)

	result, err := Load(context.Background(), baseOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Format.IndentWidth != 4 {
		t.Errorf("expected indent width 4, got %d", cfg.Format.IndentWidth)
	}
	if got := config.Get(cfg.Unformat.Seed, 0); got != 9 {
		t.Errorf("expected seed 9, got %d", got)
	}
	if got := config.Get(cfg.Unformat.EmptyLine, 1); got != 0 {
		t.Errorf("expected explicit zero empty_line to survive merge, got %v", got)
	}
	if got := config.Get(cfg.Unformat.WeirdSpace, 0); got != config.DefaultProbability {
		t.Errorf("expected default weird_space, got %v", got)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ProjectConfigUpwardSearch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".swon.yaml"), "color: never\n")
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), baseOptions(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Color != config.ColorNever {
		t.Errorf("expected color never, got %q", result.Config.Color)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".swon.yml"), "color: never\n")
	repo := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected search to stop at VCS root, found %q", path)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".swon.yml"), "format:\n  indent_width: 4\nlog_level: debug\n")
	customPath := filepath.Join(tmpDir, "custom.yml")
	writeFile(t, customPath, "format:\n  indent_width: 8\n")

	opts := baseOptions(tmpDir)
	opts.ExplicitPath = customPath
	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format.IndentWidth != 8 {
		t.Errorf("expected indent width 8, got %d", result.Config.Format.IndentWidth)
	}
	if result.Config.LogLevel != "debug" {
		t.Errorf("expected log level from project config, got %q", result.Config.LogLevel)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != customPath {
		t.Errorf("unexpected load order %v", result.LoadedFrom)
	}
}

func TestLoad_EnvAndCLIPrecedence(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".swon.yml"), "unformat:\n  seed: 1\n")

	env := map[string]string{
		"SWON_SEED":         "2",
		"SWON_LINE_REMOVAL": "0.5",
		"SWON_IGNORE":       "a/**, b/**",
	}
	opts := baseOptions(tmpDir)
	opts.Getenv = func(k string) string { return env[k] }
	opts.CLIConfig = &config.Config{Unformat: config.UnformatConfig{Seed: config.Ptr[uint64](3)}}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if got := config.Get(cfg.Unformat.Seed, 0); got != 3 {
		t.Errorf("expected CLI seed 3, got %d", got)
	}
	if got := config.Get(cfg.Unformat.LineRemoval, 0); got != 0.5 {
		t.Errorf("expected env line_removal 0.5, got %v", got)
	}
	if strings.Join(cfg.Ignore, "|") != "a/**|b/**" {
		t.Errorf("unexpected ignore %v", cfg.Ignore)
	}
}

func TestLoad_IgnoreEnv(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t.TempDir())
	opts.IgnoreEnv = true
	opts.Getenv = func(string) string { return "not-a-number" }

	if _, err := Load(context.Background(), opts); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Parallel()

	opts := baseOptions(t.TempDir())
	opts.Getenv = func(k string) string {
		if k == "SWON_INDENT_WIDTH" {
			return "wide"
		}
		return ""
	}

	_, err := Load(context.Background(), opts)
	if err == nil || !strings.Contains(err.Error(), "SWON_INDENT_WIDTH") {
		t.Fatalf("expected SWON_INDENT_WIDTH error, got %v", err)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"probability above one", "unformat:\n  weird_space: 1.5\n", "unformat.weird_space"},
		{"negative probability", "unformat:\n  line_removal: -0.1\n", "unformat.line_removal"},
		{"negative indent", "format:\n  indent_width: -1\n", "format.indent_width"},
		{"unknown color", "color: rainbow\n", "color"},
		{"unknown value format", "value_format: toml\n", "value_format"},
		{"unknown log level", "log_level: loud\n", "log_level"},
		{"bad glob", "ignore:\n  - \"[\"\n", "ignore[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, ".swon.yml")
			writeFile(t, path, tt.content)

			_, err := Load(context.Background(), baseOptions(tmpDir))
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, vErr.Field)
			}
			if vErr.FilePath != path {
				t.Errorf("expected file path %q, got %q", path, vErr.FilePath)
			}
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".swon.yml"), "format: [\n")

	if _, err := Load(context.Background(), baseOptions(tmpDir)); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, baseOptions(t.TempDir())); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	a := &config.Config{Color: config.ColorAlways, Ignore: []string{"x"}}
	b := &config.Config{LogLevel: "warn"}
	c := &config.Config{Color: config.ColorNever, Ignore: []string{}}

	got := MergeAll(a, b, c)
	if got.Color != config.ColorNever {
		t.Errorf("expected color never, got %q", got.Color)
	}
	if got.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %q", got.LogLevel)
	}
	if got.Ignore == nil || len(got.Ignore) != 0 {
		t.Errorf("expected non-nil empty ignore to replace base, got %v", got.Ignore)
	}
	if MergeAll() != nil {
		t.Error("expected nil for no configs")
	}
}

func TestValidate_Warnings(t *testing.T) {
	t.Parallel()

	result := ValidateWithFile(&config.Config{Ignore: []string{""}}, "x.yml")
	if !result.Valid() {
		t.Fatalf("unexpected errors: %v", result.AllMessages())
	}
	if len(result.Warnings) != 1 || result.Warnings[0].FilePath != "x.yml" {
		t.Errorf("unexpected warnings: %v", result.AllMessages())
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Fatalf("expected %d vars, got %d", len(envMappings), len(vars))
	}
	for _, v := range vars {
		if !strings.HasPrefix(v.Name, "SWON_") || v.Description == "" {
			t.Errorf("malformed env var %+v", v)
		}
	}
}
