package output

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultTerminalWidth is used when the width cannot be determined.
const DefaultTerminalWidth = 80

// TerminalWidth returns the column count: $COLUMNS when set, then the size
// of stdout, then DefaultTerminalWidth.
func TerminalWidth() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultTerminalWidth
}
