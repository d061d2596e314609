package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns $XDG_CONFIG_HOME/drawy/config.yaml, falling back to
// ~/.config/drawy/config.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "drawy", "config.yaml")
}

// Resolve loads path, or the default path when path is empty. A missing
// default file yields the defaults; a missing explicit file is an error.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	path = DefaultPath()
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Load reads a YAML or HuJSON (.json, .jsonc, .hujson) configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc", ".hujson":
		data, err = hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parsing config JSON: %w", err)
		}
	}

	// Standard JSON is valid YAML, so one decoder serves both formats.
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	expandEnvVars(&cfg)
	cfg.SetDefaults()

	if cfg.FontFile != "" {
		cfg.FontFile = expandTildeAndResolvePath(cfg.FontFile, filepath.Dir(path))
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandTildeAndResolvePath(cfg.Log.File, filepath.Dir(path))
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// expandEnvVars expands environment variables in string values.
func expandEnvVars(c *Config) {
	c.Mode = os.ExpandEnv(c.Mode)
	c.Color = os.ExpandEnv(c.Color)
	c.Font = os.ExpandEnv(c.Font)
	c.FontFile = os.ExpandEnv(c.FontFile)
	c.Backend = os.ExpandEnv(c.Backend)
	c.ColorOutput = os.ExpandEnv(c.ColorOutput)
	c.Log.Level = os.ExpandEnv(c.Log.Level)
	c.Log.Format = os.ExpandEnv(c.Log.Format)
	c.Log.File = os.ExpandEnv(c.Log.File)
	for i := range c.Palette {
		c.Palette[i] = os.ExpandEnv(c.Palette[i])
	}
}

// expandTildeAndResolvePath expands ~ to home directory and resolves relative paths.
func expandTildeAndResolvePath(path, basePath string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			if len(path) == 1 {
				path = home
			} else if path[1] == '/' || path[1] == filepath.Separator {
				path = filepath.Join(home, path[2:])
			}
		}
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(basePath, path)
	}
	return path
}
