// Package palette defines the color tags drawy assigns to banner letters.
package palette

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Tag identifies one display color. Neutral is the reset tag used for
// spaces and is never part of a Palette.
type Tag uint8

const (
	Neutral Tag = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var names = [...]string{
	Neutral: "neutral",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

var ansi = [...]termenv.ANSIColor{
	Red:     termenv.ANSIRed,
	Green:   termenv.ANSIGreen,
	Yellow:  termenv.ANSIYellow,
	Blue:    termenv.ANSIBlue,
	Magenta: termenv.ANSIMagenta,
	Cyan:    termenv.ANSICyan,
	White:   termenv.ANSIWhite,
}

func (t Tag) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// IsNeutral reports whether t is the reset tag.
func (t Tag) IsNeutral() bool {
	return t == Neutral
}

// Color returns the terminal color for t. The second result is false for
// Neutral and for values outside the palette.
func (t Tag) Color() (termenv.ANSIColor, bool) {
	if t == Neutral || int(t) >= len(ansi) {
		return 0, false
	}
	return ansi[t], true
}

// Palette is an ordered set of tags.
type Palette []Tag

// Default returns red, green, yellow, blue, magenta, cyan, white.
func Default() Palette {
	return Palette{Red, Green, Yellow, Blue, Magenta, Cyan, White}
}

// Clone returns an independent copy of p.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Names returns the color names of p in order.
func (p Palette) Names() []string {
	out := make([]string, len(p))
	for i, t := range p {
		out[i] = t.String()
	}
	return out
}

// Parse looks up a color by name, case-insensitively. Neutral cannot be
// selected by name.
func Parse(name string) (Tag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t := Red; t <= White; t++ {
		if names[t] == name {
			return t, true
		}
	}
	return Neutral, false
}

// ParseList builds a palette from color names, rejecting unknown names and
// duplicates.
func ParseList(list []string) (Palette, error) {
	seen := make(map[Tag]bool, len(list))
	out := make(Palette, 0, len(list))
	for _, name := range list {
		t, ok := Parse(name)
		if !ok {
			return nil, fmt.Errorf("unknown color %q (valid: %s)", name, strings.Join(Default().Names(), ", "))
		}
		if seen[t] {
			return nil, fmt.Errorf("duplicate color %q", name)
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}
