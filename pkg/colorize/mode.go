package colorize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned by ParseMode for unknown mode names.
var ErrInvalidMode = errors.New("invalid mode")

// Mode selects how colors are spread across a line.
type Mode int

const (
	// ModeSingle paints every letter with one color.
	ModeSingle Mode = iota + 1
	// ModeLetter draws a new color per letter, no repeats until the pool is used up.
	ModeLetter
	// ModeWord draws a new color per word, no repeats until the pool is used up.
	ModeWord
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeLetter:
		return "letter"
	case ModeWord:
		return "word"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeSingle && m <= ModeWord
}

// ParseMode accepts mode names and the menu numbers 1-3.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "single", "one":
		return ModeSingle, nil
	case "2", "letter", "per-letter":
		return ModeLetter, nil
	case "3", "word", "per-word":
		return ModeWord, nil
	default:
		return 0, fmt.Errorf("%w %q: use single, letter or word (1, 2 or 3)", ErrInvalidMode, s)
	}
}
