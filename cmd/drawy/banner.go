package main

import (
	"github.com/drawy/drawy/pkg/banner"
	"github.com/drawy/drawy/pkg/colorize"
	"github.com/drawy/drawy/pkg/compose"
	"github.com/drawy/drawy/pkg/glyph"
	"github.com/drawy/drawy/pkg/palette"
)

const logoText = "drawy"

// logoRows draws the logo in the default font, one palette color per
// letter in palette order. Nil if the font cannot be loaded.
func logoRows(colored bool) []string {
	font, err := glyph.New(glyph.Options{})
	if err != nil {
		return nil
	}

	r := &banner.Renderer{
		Engine:     colorize.New(font, colorize.WithShuffler(colorize.NoShuffle)),
		Request:    colorize.Request{Mode: colorize.ModeLetter, Palette: palette.Default()},
		Compositor: compose.Compositor{Plain: !colored},
	}
	rows, err := r.RenderLine(logoText)
	if err != nil {
		return nil
	}
	return rows
}
