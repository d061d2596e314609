package glyph

import (
	"errors"
	"fmt"
	"strings"
)

const (
	firstPrintable = ' '
	lastPrintable  = '~'

	// DefaultFont is the font used when Options.Font is empty.
	DefaultFont = "standard"
	// DefaultSpaceWidth is the width given to blank glyphs with no width of their own.
	DefaultSpaceWidth = 2
)

// Options selects a backend and font.
type Options struct {
	Backend    string // figure (default) or figlet4go
	Font       string // built-in font name, ignored when FontFile is set
	FontFile   string // path to a .flf font
	SpaceWidth int    // width for blank glyphs, DefaultSpaceWidth when zero
}

// Font is a Source backed by a figlet library.
type Font struct {
	name       string
	r          rasterizer
	height     int
	spaceWidth int

	// sentinel fills every row on its own. Rendered after a rune, it keeps
	// backends from dropping blank rows that sit above a descender.
	sentinel     rune
	sentinelRows []string
}

var _ Source = (*Font)(nil)

// New loads a font and measures its height.
func New(opts Options) (*Font, error) {
	if opts.Backend == "" {
		opts.Backend = BackendFigure
	}
	if opts.Font == "" {
		opts.Font = DefaultFont
	}
	if opts.SpaceWidth <= 0 {
		opts.SpaceWidth = DefaultSpaceWidth
	}

	var (
		r   rasterizer
		err error
	)
	switch opts.Backend {
	case BackendFigure:
		r, err = newFigureRasterizer(opts.Font, opts.FontFile)
	case BackendFiglet4go:
		r, err = newFigletRasterizer(opts.Font, opts.FontFile)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	name := opts.Font
	if opts.FontFile != "" {
		name = opts.FontFile
	}
	return newFont(name, r, opts.SpaceWidth)
}

func newFont(name string, r rasterizer, spaceWidth int) (*Font, error) {
	f := &Font{name: name, r: r, spaceWidth: spaceWidth}

	// Rendering every printable rune at once yields the full font height,
	// descender rows included.
	probe := make([]rune, 0, lastPrintable-firstPrintable)
	for c := firstPrintable + 1; c <= lastPrintable; c++ {
		probe = append(probe, c)
	}
	rows, err := f.raw(string(probe))
	if err != nil {
		return nil, fmt.Errorf("measuring font %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("measuring font %s: %w", name, errors.New("font renders no rows"))
	}
	f.height = len(rows)
	f.findSentinel()
	return f, nil
}

// findSentinel picks the first printable rune that renders f.height
// non-blank rows by itself. Fonts without one render runes alone.
func (f *Font) findSentinel() {
	for c := firstPrintable + 1; c <= lastPrintable; c++ {
		rows, err := f.raw(string(c))
		if err != nil || len(rows) != f.height {
			continue
		}
		full := true
		for _, row := range rows {
			if strings.TrimSpace(row) == "" {
				full = false
				break
			}
		}
		if full {
			f.sentinel, f.sentinelRows = c, rows
			return
		}
	}
}

// render returns the raw rows for r at their true vertical position.
func (f *Font) render(r rune) ([]string, error) {
	if f.sentinel != 0 {
		rows, err := f.raw(string(r) + string(f.sentinel))
		if err != nil {
			return nil, err
		}
		if out, ok := f.stripSentinel(rows); ok {
			return out, nil
		}
	}
	return f.raw(string(r))
}

// stripSentinel removes the sentinel's columns from every row. It fails when
// the backend joined the two runes in a way that changed the sentinel.
func (f *Font) stripSentinel(rows []string) ([]string, bool) {
	if len(rows) != len(f.sentinelRows) {
		return nil, false
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		if !strings.HasSuffix(row, f.sentinelRows[i]) {
			return nil, false
		}
		out[i] = strings.TrimSuffix(row, f.sentinelRows[i])
	}
	return out, true
}

// Name returns the font name or file path.
func (f *Font) Name() string {
	return f.name
}

// Height returns the row count shared by every glyph.
func (f *Font) Height() int {
	return f.height
}

// Glyph renders a single printable ASCII rune.
func (f *Font) Glyph(r rune) (Block, error) {
	if r < firstPrintable || r > lastPrintable {
		return nil, &RenderError{Rune: r, Err: ErrUnsupportedRune}
	}
	rows, err := f.render(r)
	if err != nil {
		return nil, &RenderError{Rune: r, Err: err}
	}
	if len(rows) > f.height {
		return nil, &RenderError{Rune: r, Err: fmt.Errorf("glyph has %d rows, font height is %d", len(rows), f.height)}
	}
	return Normalize(rows, f.height, f.spaceWidth), nil
}

// raw calls the backend. Both libraries panic on malformed font data.
func (f *Font) raw(text string) (rows []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("font backend: %v", p)
		}
	}()
	return f.r.rasterize(text)
}
