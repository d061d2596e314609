// Package output provides terminal output formatting for drawy.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// Printer handles status messages, prompts and tables around the banners.
type Printer struct {
	out    io.Writer
	logger *log.Logger
	isTTY  bool
}

// New creates a Printer writing to stdout.
func New() *Printer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Printer with a custom writer.
func NewWithWriter(w io.Writer) *Printer {
	isTTY := isTerminal(w)

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		TimeFormat:      time.TimeOnly,
	})

	if isTTY {
		logger.SetStyles(drawyStyles())
	}

	return &Printer{
		out:    w,
		logger: logger,
		isTTY:  isTTY,
	}
}

// isTerminal checks if the writer is a TTY (for color support).
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// IsInteractive reports whether r is a terminal, i.e. a user can answer prompts.
func IsInteractive(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// ColorEnabled resolves a color_output setting (auto, always, never) for
// this printer. auto honors NO_COLOR.
func (p *Printer) ColorEnabled(setting string) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return p.isTTY && os.Getenv("NO_COLOR") == ""
	}
}

// Info logs an info message with optional key-value pairs.
func (p *Printer) Info(msg string, keyvals ...any) {
	p.logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func (p *Printer) Warn(msg string, keyvals ...any) {
	p.logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func (p *Printer) Error(msg string, keyvals ...any) {
	p.logger.Error(msg, keyvals...)
}

// Debug logs a debug message with optional key-value pairs.
func (p *Printer) Debug(msg string, keyvals ...any) {
	p.logger.Debug(msg, keyvals...)
}

// SetDebug enables debug-level logging.
func (p *Printer) SetDebug(enabled bool) {
	if enabled {
		p.logger.SetLevel(log.DebugLevel)
	} else {
		p.logger.SetLevel(log.InfoLevel)
	}
}

// Banner prints pre-rendered logo rows with version information. Off a TTY
// only the name and version are printed.
func (p *Printer) Banner(rows []string, ver string) {
	if !p.isTTY {
		fmt.Fprintf(p.out, "drawy %s\n\n", ver)
		return
	}

	accent := lipgloss.NewStyle().Foreground(ColorAccent)
	muted := lipgloss.NewStyle().Foreground(ColorMuted)

	for _, row := range rows {
		fmt.Fprintln(p.out, row)
	}
	fmt.Fprintf(p.out, "\n  %s %s\n\n", muted.Render("version"), accent.Render(ver))
}

// Menu prints a titled list of numbered choices.
func (p *Printer) Menu(title string, items []string) {
	p.Section(title)
	for i, item := range items {
		num := fmt.Sprintf("%d.", i)
		if p.isTTY {
			num = lipgloss.NewStyle().Foreground(ColorAccent).Render(num)
		}
		fmt.Fprintf(p.out, "%s %s\n", num, item)
	}
}

// Prompt prints a label without a trailing newline.
func (p *Printer) Prompt(label string) {
	if p.isTTY {
		label = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render(label)
	}
	fmt.Fprint(p.out, label+" ")
}

// Print writes a message directly to output without formatting.
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a message with newline directly to output.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}
