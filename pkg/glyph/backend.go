package glyph

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/mbndr/figlet4go"
)

// Backend names accepted by Options.Backend.
const (
	BackendFigure    = "figure"
	BackendFiglet4go = "figlet4go"
)

// Backends lists the supported backends, default first.
func Backends() []string {
	return []string{BackendFigure, BackendFiglet4go}
}

var builtinFonts = map[string][]string{
	BackendFigure: {
		"standard", "banner", "big", "block", "bubble", "digital", "doom",
		"lean", "mini", "script", "shadow", "slant", "small", "smslant",
	},
	BackendFiglet4go: {"standard", "larry3d"},
}

// BuiltinFonts returns the font names bundled with a backend.
func BuiltinFonts(backend string) []string {
	return slices.Clone(builtinFonts[backend])
}

// rasterizer renders a whole string into raw rows. Rows may be trimmed or
// missing; Font normalizes them.
type rasterizer interface {
	rasterize(text string) ([]string, error)
}

// figureRasterizer renders with go-figure, which right-trims every row and
// drops blank rows below the baseline.
type figureRasterizer struct {
	font string
	data []byte // flf contents when loaded from a file
}

func newFigureRasterizer(font, file string) (*figureRasterizer, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading font file: %w", err)
		}
		return &figureRasterizer{font: file, data: data}, nil
	}
	if !slices.Contains(builtinFonts[BackendFigure], font) {
		return nil, fmt.Errorf("%w %q for backend %s", ErrUnknownFont, font, BackendFigure)
	}
	return &figureRasterizer{font: font}, nil
}

func (f *figureRasterizer) rasterize(text string) ([]string, error) {
	if f.data != nil {
		return figure.NewFigureWithFont(text, bytes.NewReader(f.data), true).Slicify(), nil
	}
	return figure.NewFigure(text, f.font, true).Slicify(), nil
}

// figletRasterizer renders with figlet4go, which keeps full-height rows.
type figletRasterizer struct {
	render *figlet4go.AsciiRender
	opts   *figlet4go.RenderOptions
}

func newFigletRasterizer(font, file string) (*figletRasterizer, error) {
	render := figlet4go.NewAsciiRender()
	opts := figlet4go.NewRenderOptions()

	if file != "" {
		if err := render.LoadFont(file); err != nil {
			return nil, fmt.Errorf("loading font file: %w", err)
		}
		opts.FontName = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	} else {
		if !slices.Contains(builtinFonts[BackendFiglet4go], font) {
			return nil, fmt.Errorf("%w %q for backend %s", ErrUnknownFont, font, BackendFiglet4go)
		}
		opts.FontName = font
	}

	return &figletRasterizer{render: render, opts: opts}, nil
}

func (f *figletRasterizer) rasterize(text string) ([]string, error) {
	out, err := f.render.RenderOpts(text, f.opts)
	if err != nil {
		return nil, err
	}
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
