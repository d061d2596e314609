// Package capacity estimates how many banner characters fit on one terminal row.
package capacity

import (
	"fmt"

	"github.com/drawy/drawy/pkg/glyph"
)

// WidestRune is the glyph used for the worst-case estimate.
const WidestRune = 'W'

// SampleRunes is the character set averaged for the typical estimate.
const SampleRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Report holds advisory capacity figures for a terminal width.
type Report struct {
	TerminalWidth int
	WidestGlyph   int
	AverageWidth  float64
	WorstCase     int
	Typical       int
}

// Estimate measures glyph widths from src. Capacities are zero when a width
// is zero.
func Estimate(src glyph.Source, termWidth int) (Report, error) {
	r := Report{TerminalWidth: termWidth}

	widest, err := src.Glyph(WidestRune)
	if err != nil {
		return r, fmt.Errorf("measuring widest glyph: %w", err)
	}
	r.WidestGlyph = widest.Width()

	total := 0
	count := 0
	for _, c := range SampleRunes {
		g, err := src.Glyph(c)
		if err != nil {
			return r, fmt.Errorf("measuring sample glyphs: %w", err)
		}
		total += g.Width()
		count++
	}
	r.AverageWidth = float64(total) / float64(count)

	if r.WidestGlyph > 0 {
		r.WorstCase = termWidth / r.WidestGlyph
	}
	if r.AverageWidth > 0 {
		r.Typical = int(float64(termWidth) / r.AverageWidth)
	}
	return r, nil
}
