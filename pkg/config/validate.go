package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/drawy/drawy/pkg/colorize"
	"github.com/drawy/drawy/pkg/glyph"
	"github.com/drawy/drawy/pkg/palette"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation errors:\n  - " + strings.Join(msgs, "\n  - ")
}

// Validate checks the configuration for errors. An unknown single-mode
// color is not an error: the CLI warns and falls back to white.
func Validate(c *Config) error {
	var errs ValidationErrors

	if c.Mode != "" {
		if _, err := colorize.ParseMode(c.Mode); err != nil {
			errs = append(errs, ValidationError{"mode", "must be 'single', 'letter' or 'word'"})
		}
	}

	if len(c.Palette) == 0 {
		errs = append(errs, ValidationError{"palette", "must contain at least one color"})
	} else if _, err := palette.ParseList(c.Palette); err != nil {
		errs = append(errs, ValidationError{"palette", err.Error()})
	}

	if !slices.Contains(glyph.Backends(), c.Backend) {
		errs = append(errs, ValidationError{"backend", fmt.Sprintf("must be one of: %s", strings.Join(glyph.Backends(), ", "))})
	} else if c.FontFile == "" && !slices.Contains(glyph.BuiltinFonts(c.Backend), c.Font) {
		errs = append(errs, ValidationError{"font", fmt.Sprintf("unknown font %q for backend %s", c.Font, c.Backend)})
	}

	switch c.ColorOutput {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, ValidationError{"color_output", "must be 'auto', 'always' or 'never'"})
	}

	if c.SpaceWidth < 1 {
		errs = append(errs, ValidationError{"space_width", "must be at least 1"})
	}
	if c.TabWidth < 0 {
		errs = append(errs, ValidationError{"tab_width", "must not be negative"})
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{"log.level", "must be 'debug', 'info', 'warn' or 'error'"})
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{"log.format", "must be 'text' or 'json'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
