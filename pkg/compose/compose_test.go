package compose

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawy/drawy/pkg/colorize"
	"github.com/drawy/drawy/pkg/glyph"
	"github.com/drawy/drawy/pkg/palette"
)

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Compositor{}.Render(nil))
	assert.Empty(t, Compositor{}.Render([]colorize.LetterBlock{}))
}

func TestRender_Plain(t *testing.T) {
	blocks := []colorize.LetterBlock{
		{Rune: 'A', Tag: palette.Red, Glyph: glyph.Block{"/\\", "||"}},
		{Rune: ' ', Tag: palette.Neutral, Glyph: glyph.Block{" ", " "}},
		{Rune: 'B', Tag: palette.Green, Glyph: glyph.Block{"B)", "B)"}},
	}

	rows := Compositor{Plain: true}.Render(blocks)
	assert.Equal(t, []string{"/\\ B)", "|| B)"}, rows)
}

func TestRender_StylesEverySegment(t *testing.T) {
	blocks := []colorize.LetterBlock{
		{Rune: 'A', Tag: palette.Red, Glyph: glyph.Block{"a1", "a2"}},
		{Rune: 'B', Tag: palette.Green, Glyph: glyph.Block{"b1", "b2"}},
	}

	rows := Compositor{}.Render(blocks)
	require.Len(t, rows, 2)
	assert.Equal(t, "\x1b[31ma1\x1b[0m\x1b[32mb1\x1b[0m", rows[0])
	assert.Equal(t, "\x1b[31ma2\x1b[0m\x1b[32mb2\x1b[0m", rows[1])
}

func TestRender_NeutralUsesReset(t *testing.T) {
	blocks := []colorize.LetterBlock{
		{Rune: ' ', Tag: palette.Neutral, Glyph: glyph.Block{"  "}},
		{Rune: 'x', Tag: palette.White, Glyph: glyph.Block{"x"}},
	}

	rows := Compositor{}.Render(blocks)
	assert.Equal(t, []string{Reset + "  " + Reset + "\x1b[37mx\x1b[0m"}, rows)
}

func TestRender_UnknownTagUsesReset(t *testing.T) {
	blocks := []colorize.LetterBlock{{Rune: 'x', Tag: palette.Tag(42), Glyph: glyph.Block{"x"}}}

	rows := Compositor{}.Render(blocks)
	assert.Equal(t, []string{Reset + "x" + Reset}, rows)
}

func TestRender_PadsShortBlocksWithOwnFirstRowWidth(t *testing.T) {
	blocks := []colorize.LetterBlock{
		{Rune: 'T', Tag: palette.Blue, Glyph: glyph.Block{"TTTTT", "  T  ", "  T  ", "  T  "}},
		{Rune: '.', Tag: palette.Cyan, Glyph: glyph.Block{"..."}},
		{Rune: 'i', Tag: palette.Yellow, Glyph: glyph.Block{"i", "i"}},
	}

	rows := Compositor{Plain: true}.Render(blocks)
	assert.Equal(t, []string{
		"TTTTT...i",
		"  T     i",
		"  T      ",
		"  T      ",
	}, rows)
}

func TestRender_PaddingUsesDisplayWidth(t *testing.T) {
	blocks := []colorize.LetterBlock{
		{Rune: '日', Tag: palette.Red, Glyph: glyph.Block{"日"}},
		{Rune: 'x', Tag: palette.Red, Glyph: glyph.Block{"x", "x"}},
	}

	rows := Compositor{Plain: true}.Render(blocks)
	assert.Equal(t, []string{"日x", "  x"}, rows)
}

func TestRender_EmptyGlyphContributesNothing(t *testing.T) {
	blocks := []colorize.LetterBlock{
		{Rune: 'x', Tag: palette.Red, Glyph: glyph.Block{"x", "x"}},
		{Rune: '?', Tag: palette.Red, Glyph: nil},
	}

	rows := Compositor{Plain: true}.Render(blocks)
	assert.Equal(t, []string{"x", "x"}, rows)
}

func TestRender_EngineOutput(t *testing.T) {
	src := fixedSource{
		'A': {" A ", "A-A", "A A"},
		'B': {"BB ", "B B", "BB "},
		' ': {"  ", "  ", "  "},
	}
	e := colorize.New(src, colorize.WithShuffler(colorize.NoShuffle))

	blocks, err := e.Assign("AB", colorize.Request{
		Mode:    colorize.ModeLetter,
		Palette: palette.Palette{palette.Red, palette.Green},
	})
	require.NoError(t, err)

	rows := Compositor{}.Render(blocks)
	require.Len(t, rows, src.Height())
	for i, row := range rows {
		want := "\x1b[31m" + src['A'][i] + Reset + "\x1b[32m" + src['B'][i] + Reset
		assert.Equal(t, want, row, "row %d", i)
	}
}

type fixedSource map[rune]glyph.Block

func (s fixedSource) Glyph(r rune) (glyph.Block, error) {
	b, ok := s[r]
	if !ok {
		return nil, &glyph.RenderError{Rune: r, Err: glyph.ErrUnsupportedRune}
	}
	return b, nil
}

func (s fixedSource) Height() int { return len(s[' ']) }

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []string{"one", "two"}))
	assert.Equal(t, "one\ntwo\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_Error(t *testing.T) {
	assert.ErrorContains(t, Write(failingWriter{}, []string{"x"}), "closed")
}
