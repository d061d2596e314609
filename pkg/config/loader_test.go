package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drawy/drawy/pkg/glyph"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	content := `
mode: word
color: cyan
palette: [red, blue, green]
font: slant
seed: 42
color_output: never
log:
  level: debug
  format: json
`
	path := writeTempFile(t, "config.yaml", content)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Mode != "word" {
		t.Errorf("expected mode 'word', got '%s'", cfg.Mode)
	}
	if len(cfg.Palette) != 3 || cfg.Palette[1] != "blue" {
		t.Errorf("expected palette [red blue green], got %v", cfg.Palette)
	}
	if cfg.Font != "slant" {
		t.Errorf("expected font 'slant', got '%s'", cfg.Font)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.ColorOutput != ColorNever {
		t.Errorf("expected color_output 'never', got '%s'", cfg.ColorOutput)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoad_HuJSON(t *testing.T) {
	content := `{
  // comments and trailing commas are allowed
  "mode": "letter",
  "palette": ["yellow", "magenta",],
  "backend": "figlet4go",
}`
	path := writeTempFile(t, "config.jsonc", content)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Mode != "letter" {
		t.Errorf("expected mode 'letter', got '%s'", cfg.Mode)
	}
	if cfg.Backend != glyph.BackendFiglet4go {
		t.Errorf("expected backend figlet4go, got '%s'", cfg.Backend)
	}
	if len(cfg.Palette) != 2 {
		t.Errorf("expected 2 palette colors, got %v", cfg.Palette)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "mode: single\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Font != glyph.DefaultFont {
		t.Errorf("expected default font, got '%s'", cfg.Font)
	}
	if cfg.Backend != glyph.BackendFigure {
		t.Errorf("expected default backend, got '%s'", cfg.Backend)
	}
	if len(cfg.Palette) != 7 {
		t.Errorf("expected default palette of 7, got %v", cfg.Palette)
	}
	if cfg.ColorOutput != ColorAuto {
		t.Errorf("expected color_output 'auto', got '%s'", cfg.ColorOutput)
	}
	if cfg.SpaceWidth != glyph.DefaultSpaceWidth {
		t.Errorf("expected default space width, got %d", cfg.SpaceWidth)
	}
	if cfg.TabWidth != 4 {
		t.Errorf("expected tab width 4, got %d", cfg.TabWidth)
	}
}

func TestLoad_TabWidth(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"unset", "mode: word\n", DefaultTabWidth},
		{"zero means default", "tab_width: 0\n", DefaultTabWidth},
		{"explicit", "tab_width: 2\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeTempFile(t, "config.yaml", tt.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.TabWidth != tt.want {
				t.Errorf("expected tab width %d, got %d", tt.want, cfg.TabWidth)
			}
		})
	}
}

func TestLoad_NegativeTabWidth(t *testing.T) {
	_, err := Load(writeTempFile(t, "config.yaml", "tab_width: -2\n"))
	if err == nil || !strings.Contains(err.Error(), "tab_width") {
		t.Errorf("expected tab_width validation error, got %v", err)
	}
}

func TestLoad_ExpandsEnvAndResolvesPaths(t *testing.T) {
	t.Setenv("DRAWY_TEST_COLOR", "magenta")
	content := `
color: ${DRAWY_TEST_COLOR}
font_file: fonts/custom.flf
log:
  file: logs/drawy.log
`
	path := writeTempFile(t, "config.yaml", content)
	base := filepath.Dir(path)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Color != "magenta" {
		t.Errorf("expected color 'magenta', got '%s'", cfg.Color)
	}
	if cfg.FontFile != filepath.Join(base, "fonts", "custom.flf") {
		t.Errorf("expected font file resolved against config dir, got '%s'", cfg.FontFile)
	}
	if cfg.Log.File != filepath.Join(base, "logs", "drawy.log") {
		t.Errorf("expected log file resolved against config dir, got '%s'", cfg.Log.File)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "mode: [unclosed\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoad_InvalidHuJSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"mode": }`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config JSON") {
		t.Errorf("expected JSON parse error, got %v", err)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "mode: rainbow\npalette: [red, red]\n")

	_, err := Load(path)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 validation errors, got %d: %v", len(verrs), verrs)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestResolve_MissingDefaultGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Font != glyph.DefaultFont {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestResolve_ReadsDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "drawy"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "drawy", "config.yaml"), []byte("mode: word\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != "word" {
		t.Errorf("expected mode from default path, got '%s'", cfg.Mode)
	}
}

func TestResolve_MissingExplicitFileFails(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultPath(); got != filepath.Join("/tmp/xdg", "drawy", "config.yaml") {
		t.Errorf("DefaultPath() = %q", got)
	}
}
