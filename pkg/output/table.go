package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/drawy/drawy/pkg/capacity"
	"github.com/drawy/drawy/pkg/palette"
)

// FontSummary describes the fonts of one glyph backend.
type FontSummary struct {
	Backend string
	Default bool
	Fonts   []string
}

// Capacity prints the terminal width and capacity estimates.
func (p *Printer) Capacity(r capacity.Report) {
	p.Section("CAPACITY")

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())

	t.AppendHeader(table.Row{"Measure", "Value"})
	t.AppendRow(table.Row{"Terminal width", fmt.Sprintf("%d columns", r.TerminalWidth)})
	t.AppendRow(table.Row{"Widest glyph (W)", fmt.Sprintf("%d columns", r.WidestGlyph)})
	t.AppendRow(table.Row{"Average glyph", fmt.Sprintf("%.1f columns", r.AverageWidth)})
	t.AppendRow(table.Row{"Capacity (worst-case)", fmt.Sprintf("%d chars", r.WorstCase)})
	t.AppendRow(table.Row{"Capacity (typical)", fmt.Sprintf("%d chars", r.Typical)})

	t.Render()
	p.Println()
}

// Fonts prints the built-in fonts per backend.
func (p *Printer) Fonts(fonts []FontSummary) {
	if len(fonts) == 0 {
		return
	}

	p.Section("FONTS")

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())

	t.AppendHeader(table.Row{"Backend", "Default", "Fonts"})
	for _, f := range fonts {
		def := ""
		if f.Default {
			def = "yes"
		}
		t.AppendRow(table.Row{f.Backend, def, strings.Join(f.Fonts, ", ")})
	}

	t.Render()
	p.Println()
}

// Colors prints the palette with a swatch per color.
func (p *Printer) Colors(pal palette.Palette) {
	if len(pal) == 0 {
		return
	}

	p.Section("COLORS")

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())

	t.AppendHeader(table.Row{"#", "Name", "Swatch"})
	for i, tag := range pal {
		t.AppendRow(table.Row{i + 1, tag.String(), p.swatch(tag)})
	}

	t.Render()
	p.Println()
}

// swatch renders a colored block for tag on a TTY, the ANSI index otherwise.
func (p *Printer) swatch(tag palette.Tag) string {
	c, ok := tag.Color()
	if !ok {
		return ""
	}
	index := strconv.Itoa(int(c))
	if !p.isTTY {
		return "ansi " + index
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(index)).Render("██████")
}

// tableStyle returns the standard table style.
func (p *Printer) tableStyle() table.Style {
	style := table.StyleRounded
	if p.isTTY {
		style.Color.Header = text.Colors{text.FgHiCyan, text.Bold}
		style.Color.Border = text.Colors{text.FgHiBlack}
	}
	style.Options.SeparateRows = false
	return style
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.isTTY {
		style := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
		p.Println(style.Render(title))
	} else {
		p.Println(title)
	}
}
