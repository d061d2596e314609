// Package compose lays letter blocks side by side into printable rows.
package compose

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/drawy/drawy/pkg/colorize"
	"github.com/drawy/drawy/pkg/palette"
)

// Reset is the SGR sequence that clears all styling.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

// Compositor renders letter blocks row by row.
type Compositor struct {
	// Plain disables escape sequences, for pipes and --color-output never.
	Plain bool
}

// Render returns one string per glyph row. The row count is the tallest
// block's height; a block missing a row contributes blanks as wide as its
// own first row. Each segment carries its block's color and ends in a reset.
func (c Compositor) Render(blocks []colorize.LetterBlock) []string {
	height := 0
	for _, b := range blocks {
		height = max(height, len(b.Glyph))
	}
	if height == 0 {
		return nil
	}

	rows := make([]string, height)
	var sb strings.Builder
	for i := range rows {
		sb.Reset()
		for _, b := range blocks {
			sb.WriteString(c.style(b.Tag, segment(b, i)))
		}
		rows[i] = sb.String()
	}
	return rows
}

func segment(b colorize.LetterBlock, row int) string {
	if row < len(b.Glyph) {
		return b.Glyph[row]
	}
	if len(b.Glyph) == 0 {
		return ""
	}
	return strings.Repeat(" ", runewidth.StringWidth(b.Glyph[0]))
}

func (c Compositor) style(tag palette.Tag, text string) string {
	if c.Plain {
		return text
	}
	color, ok := tag.Color()
	if tag.IsNeutral() || !ok {
		return Reset + text + Reset
	}
	return termenv.String(text).Foreground(color).String()
}

// Write prints rows, each followed by a newline.
func Write(w io.Writer, rows []string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
