// Package glyph turns single runes into banner-font blocks.
package glyph

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrUnsupportedRune is returned when a font has no glyph for a rune.
	ErrUnsupportedRune = errors.New("unsupported rune")
	// ErrUnknownFont is returned for font names a backend does not ship.
	ErrUnknownFont = errors.New("unknown font")
	// ErrUnknownBackend is returned for backend names other than figure and figlet4go.
	ErrUnknownBackend = errors.New("unknown backend")
)

// RenderError identifies the rune a Source failed to render.
type RenderError struct {
	Rune rune
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %q (U+%04X): %v", e.Rune, e.Rune, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Block is the multi-row rendering of one rune.
type Block []string

// Width returns the display width of the widest row.
func (b Block) Width() int {
	w := 0
	for _, row := range b {
		if rw := runewidth.StringWidth(row); rw > w {
			w = rw
		}
	}
	return w
}

// Source renders runes into blocks. All blocks from one Source share
// Height() rows and the result for a rune never changes.
//
//go:generate mockgen -destination=../colorize/mock_source_test.go -package=colorize . Source
type Source interface {
	Glyph(r rune) (Block, error)
	Height() int
}

// Normalize pads rows to at least height rows and right-pads every row to
// the widest one. A block with no visible width (a space from a backend that
// trims trailing blanks) is widened to blankWidth.
func Normalize(rows []string, height, blankWidth int) Block {
	n := max(len(rows), height)

	width := Block(rows).Width()
	if width == 0 {
		width = blankWidth
	}

	out := make(Block, n)
	for i := range out {
		var row string
		if i < len(rows) {
			row = rows[i]
		}
		out[i] = runewidth.FillRight(row, width)
	}
	return out
}
