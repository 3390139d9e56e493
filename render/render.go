// Package render draws a grid.Grid as text and doubles as a step observer
// for package search, so a terminal can animate a run the way the
// interactive visualizer does.
//
// Glyphs: '.' free, '#' barrier, 'S' start, 'E' end, 'o' open, 'x' closed,
// '*' path. The free, barrier, start and end glyphs are the grid.Char
// constants that scenario layouts use, so a rendered board with no search
// markers can be loaded back.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/gridpath/gridpath/grid"
	"github.com/gridpath/gridpath/search"
)

// Marker glyphs.
const (
	CharOpen   = 'o'
	CharClosed = 'x'
	CharPath   = '*'
)

// Glyph returns the character for c. Barriers and roles take precedence
// over search markers.
func Glyph(c *grid.Cell) rune {
	switch {
	case c.IsBarrier():
		return grid.CharBarrier
	case c.IsStart():
		return grid.CharStart
	case c.IsEnd():
		return grid.CharEnd
	}
	switch c.Marker() {
	case grid.MarkOpen:
		return CharOpen
	case grid.MarkClosed:
		return CharClosed
	case grid.MarkPath:
		return CharPath
	default:
		return grid.CharFree
	}
}

// palette colors glyphs the way the visualizer paints cells.
var palette = map[rune]color.Color{
	grid.CharBarrier: color.Gray,
	grid.CharStart:   color.LightRed,
	grid.CharEnd:     color.Blue,
	CharOpen:         color.Green,
	CharClosed:       color.Red,
	CharPath:         color.Yellow,
}

// Board returns the grid as Rows lines of Rows glyphs, each ending in '\n'.
func Board(g *grid.Grid) string {
	return board(g, false)
}

// ColorBoard is Board with ANSI colors. Colors are dropped when the
// terminal does not support them or color.Enable is false.
func ColorBoard(g *grid.Grid) string {
	return board(g, true)
}

func board(g *grid.Grid, colored bool) string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Rows + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Rows; c++ {
			ch := Glyph(g.At(r, c))
			if col, ok := palette[ch]; ok && colored {
				b.WriteString(col.Sprint(string(ch)))
				continue
			}
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Summary writes the report the visualizer shows after a run.
func Summary(w io.Writer, alg search.Algorithm, res search.Result) error {
	_, err := fmt.Fprintf(w, "%s\nExecution Time: %.6f seconds\nPath Found: %v\nPath Length: %d\n",
		alg, res.Elapsed.Seconds(), res.Found, res.Length)

	return err
}

// Options configures a Renderer.
type Options struct {
	// Every prints a frame on every Nth step; 0 never prints frames.
	Every int
	// MaxFrames caps the number of frames printed; 0 means no cap.
	MaxFrames int
	// Delay sleeps after each printed frame.
	Delay time.Duration
	// Color paints frames with ANSI colors.
	Color bool
}

// Option configures a Renderer via functional arguments.
type Option func(*Options)

// WithEvery prints a frame every n steps. Negative values disable frames.
func WithEvery(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Every = n
	}
}

// WithMaxFrames caps the number of printed frames.
func WithMaxFrames(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxFrames = n
		}
	}
}

// WithDelay pauses after each frame so a terminal can follow the animation.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Delay = d
		}
	}
}

// WithColor paints frames with ANSI colors.
func WithColor() Option {
	return func(o *Options) { o.Color = true }
}

// Renderer writes frames of one grid to w. It is not safe for concurrent use.
type Renderer struct {
	w      io.Writer
	g      *grid.Grid
	opts   Options
	steps  int
	frames int
}

// New returns a Renderer for g. By default no intermediate frames are printed.
func New(w io.Writer, g *grid.Grid, opts ...Option) *Renderer {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{w: w, g: g, opts: o}
}

// Step counts a search step and prints a frame when due. It has the
// search.StepFunc signature; a write error aborts the search.
func (r *Renderer) Step() error {
	r.steps++
	if r.opts.Every == 0 || r.steps%r.opts.Every != 0 {
		return nil
	}
	if r.opts.MaxFrames > 0 && r.frames >= r.opts.MaxFrames {
		return nil
	}

	return r.Frame()
}

// Frame prints the current board followed by a blank line.
func (r *Renderer) Frame() error {
	r.frames++
	if _, err := io.WriteString(r.w, board(r.g, r.opts.Color)+"\n"); err != nil {
		return fmt.Errorf("render: frame %d: %w", r.frames, err)
	}
	if r.opts.Delay > 0 {
		time.Sleep(r.opts.Delay)
	}

	return nil
}

// Steps returns how many steps the renderer has observed.
func (r *Renderer) Steps() int { return r.steps }

// Frames returns how many frames the renderer has printed.
func (r *Renderer) Frames() int { return r.frames }
