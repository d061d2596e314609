// Package banner renders input text line by line through the color engine
// and the compositor.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/drawy/drawy/pkg/colorize"
	"github.com/drawy/drawy/pkg/compose"
)

// Renderer draws lines with one engine, request and compositor.
type Renderer struct {
	Engine     *colorize.Engine
	Request    colorize.Request
	Compositor compose.Compositor
}

// RenderLine returns the printable rows for one line.
func (r *Renderer) RenderLine(line string) ([]string, error) {
	blocks, err := r.Engine.Assign(line, r.Request)
	if err != nil {
		return nil, err
	}
	return r.Compositor.Render(blocks), nil
}

// Render writes each line's rows followed by a blank line. Lines are
// independent: colors restart with a fresh pool on every line.
func (r *Renderer) Render(w io.Writer, lines []string) error {
	for i, line := range lines {
		rows, err := r.RenderLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if err := compose.Write(w, rows); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// SplitLines drops trailing line breaks, splits on \n, \r\n or \r and
// expands tabs to tabWidth spaces.
func SplitLines(raw string, tabWidth int) []string {
	raw = strings.TrimRight(raw, "\r\n")
	if raw == "" {
		return nil
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	if tabWidth > 0 {
		raw = strings.ReplaceAll(raw, "\t", strings.Repeat(" ", tabWidth))
	}
	return strings.Split(raw, "\n")
}

// IsBlank reports whether raw has nothing but whitespace.
func IsBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}
