// Package colorize assigns colors to the letters of a line and pairs each
// letter with its banner glyph.
package colorize

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/drawy/drawy/pkg/glyph"
	"github.com/drawy/drawy/pkg/logging"
	"github.com/drawy/drawy/pkg/palette"
)

// ErrEmptyPalette is returned when a request carries no colors.
var ErrEmptyPalette = errors.New("palette has no colors")

// LetterBlock is one rune of a line with its color and glyph.
type LetterBlock struct {
	Rune  rune
	Tag   palette.Tag
	Glyph glyph.Block
}

// Request describes how to color one line.
type Request struct {
	Mode    Mode
	Single  palette.Tag // ModeSingle only; Neutral means white
	Palette palette.Palette
}

// Engine turns lines into letter blocks.
type Engine struct {
	src     glyph.Source
	shuffle Shuffler
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithShuffler sets the shuffle used to seed and refill color pools.
func WithShuffler(s Shuffler) Option {
	return func(e *Engine) {
		if s != nil {
			e.shuffle = s
		}
	}
}

// WithLogger sets the logger for pool events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine drawing glyphs from src. Without WithShuffler the
// pools are shuffled randomly.
func New(src glyph.Source, opts ...Option) *Engine {
	e := &Engine{
		src:     src,
		shuffle: NewRandomShuffler(0),
		logger:  logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assign colors every rune of line and renders its glyph, in input order.
// Spaces get the Neutral tag and never consume a color. The color pool and
// word state live only for this call.
func (e *Engine) Assign(line string, req Request) ([]LetterBlock, error) {
	if len(req.Palette) == 0 {
		return nil, ErrEmptyPalette
	}
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w %s", ErrInvalidMode, req.Mode)
	}
	if line == "" {
		return nil, nil
	}

	single := req.Single
	if single == palette.Neutral {
		single = palette.White
	}

	space, err := e.src.Glyph(' ')
	if err != nil {
		return nil, asRenderError(' ', err)
	}

	var pool *Pool
	if req.Mode != ModeSingle {
		pool = NewPool(req.Palette, e.shuffle)
	}

	blocks := make([]LetterBlock, 0, len(line))
	prevSpace := true
	var wordTag palette.Tag

	for _, r := range line {
		if r == ' ' {
			blocks = append(blocks, LetterBlock{Rune: r, Tag: palette.Neutral, Glyph: space})
			prevSpace = true
			continue
		}

		var tag palette.Tag
		switch req.Mode {
		case ModeSingle:
			tag = single
		case ModeLetter:
			tag = pool.Draw()
		case ModeWord:
			if prevSpace {
				wordTag = pool.Draw()
			}
			tag = wordTag
		}

		g, err := e.src.Glyph(r)
		if err != nil {
			return nil, asRenderError(r, err)
		}
		blocks = append(blocks, LetterBlock{Rune: r, Tag: tag, Glyph: g})
		prevSpace = false
	}

	if pool != nil {
		e.logger.Debug("line colored", "mode", req.Mode.String(), "runes", len(blocks), "pool_refills", pool.Refills(), "pool_remaining", pool.Remaining())
	}
	return blocks, nil
}

// asRenderError makes sure a glyph failure names its rune.
func asRenderError(r rune, err error) error {
	var rerr *glyph.RenderError
	if errors.As(err, &rerr) {
		return err
	}
	return &glyph.RenderError{Rune: r, Err: err}
}
