package config

import (
	"github.com/drawy/drawy/pkg/glyph"
	"github.com/drawy/drawy/pkg/palette"
)

// DefaultTabWidth is the tab expansion used when tab_width is unset or 0.
const DefaultTabWidth = 4

// Color output settings.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the drawy configuration file. Command-line flags override it.
type Config struct {
	Mode        string   `yaml:"mode,omitempty"`        // single, letter or word; empty asks interactively
	Color       string   `yaml:"color,omitempty"`       // color for single mode
	Palette     []string `yaml:"palette,omitempty"`     // colors drawn by letter and word modes, in order
	Font        string   `yaml:"font,omitempty"`        // built-in font name
	FontFile    string   `yaml:"font_file,omitempty"`   // path to a .flf font, overrides font
	Backend     string   `yaml:"backend,omitempty"`     // figure or figlet4go
	Seed        uint64   `yaml:"seed,omitempty"`        // shuffle seed, 0 for random
	ColorOutput string   `yaml:"color_output,omitempty"` // auto, always or never
	SpaceWidth  int      `yaml:"space_width,omitempty"` // width of blank glyphs; 0 means glyph.DefaultSpaceWidth
	TabWidth    int      `yaml:"tab_width,omitempty"`   // spaces per tab in input; 0 means DefaultTabWidth
	Log         Log      `yaml:"log,omitempty"`
}

// Log configures diagnostic logging.
type Log struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text or json
	File   string `yaml:"file,omitempty"`   // rotated log file instead of stderr
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills in unset fields. Zero widths count as unset: tabs are
// always expanded because the fonts have no glyph for them.
func (c *Config) SetDefaults() {
	if c.Font == "" {
		c.Font = glyph.DefaultFont
	}
	if c.Backend == "" {
		c.Backend = glyph.BackendFigure
	}
	if len(c.Palette) == 0 {
		c.Palette = palette.Default().Names()
	}
	if c.ColorOutput == "" {
		c.ColorOutput = ColorAuto
	}
	if c.SpaceWidth == 0 {
		c.SpaceWidth = glyph.DefaultSpaceWidth
	}
	if c.TabWidth == 0 {
		c.TabWidth = DefaultTabWidth
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// GlyphOptions returns the glyph source options for this configuration.
func (c *Config) GlyphOptions() glyph.Options {
	return glyph.Options{
		Backend:    c.Backend,
		Font:       c.Font,
		FontFile:   c.FontFile,
		SpaceWidth: c.SpaceWidth,
	}
}
