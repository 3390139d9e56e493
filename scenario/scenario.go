// Package scenario loads search boards from HCL files.
//
// A scenario names the board size, the start and end cells and the barriers.
// Barriers can be listed as coordinates, drawn as straight wall segments, or
// painted with a text layout; all three may be combined. Inside the file the
// variables rows and last (rows - 1) are available to every expression:
//
//	name      = "gap in the wall"
//	rows      = 5
//	width     = 500
//	algorithm = "both"
//
//	start {
//	  row = 0
//	  col = 0
//	}
//	end {
//	  row = 0
//	  col = last
//	}
//
//	barriers = [[2, 0]]
//	wall {
//	  from = [0, 2]
//	  to   = [3, 2]
//	}
//
// A layout uses '.' for free cells, '#' for barriers and 'S'/'E' for the
// start and end cells, one line per row:
//
//	layout = <<EOT
//	S.#.E
//	..#..
//	.....
//	EOT
package scenario

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/gridpath/gridpath/grid"
	"github.com/gridpath/gridpath/internal/ctxlog"
)

// Sentinel errors for scenario loading.
var (
	// ErrDiagnostics wraps HCL parse or decode diagnostics.
	ErrDiagnostics = errors.New("scenario: invalid HCL")
	// ErrBadCell indicates a coordinate that is not a [row, col] pair.
	ErrBadCell = errors.New("scenario: cell must be a [row, col] pair")
	// ErrBadWall indicates a wall segment that is neither horizontal nor vertical.
	ErrBadWall = errors.New("scenario: wall must be horizontal or vertical")
	// ErrBadLayout indicates a layout whose shape or characters do not fit the board.
	ErrBadLayout = errors.New("scenario: malformed layout")
	// ErrRole indicates a missing or doubly defined start or end cell.
	ErrRole = errors.New("scenario: start and end must each be defined exactly once")
)

// Wall is a straight segment of barrier cells, both ends inclusive.
type Wall struct {
	From, To grid.Pos
}

// Cells expands the wall into positions ordered from From to To.
func (w Wall) Cells() []grid.Pos {
	dr, dc := sign(w.To.Row-w.From.Row), sign(w.To.Col-w.From.Col)
	out := []grid.Pos{w.From}
	for p := w.From; p != w.To; {
		p = grid.Pos{Row: p.Row + dr, Col: p.Col + dc}
		out = append(out, p)
	}

	return out
}

// Scenario is a decoded board description.
type Scenario struct {
	Name      string
	Rows      int
	Width     int
	Algorithm string // optional default for callers; empty when unset
	Start     grid.Pos
	End       grid.Pos
	Barriers  []grid.Pos
	Walls     []Wall
}

// hclHeader is decoded first so rows can feed the evaluation context.
type hclHeader struct {
	Rows   int      `hcl:"rows"`
	Remain hcl.Body `hcl:",remain"`
}

// hclScenario is the rest of the file.
type hclScenario struct {
	Name      *string   `hcl:"name,optional"`
	Width     *int      `hcl:"width,optional"`
	Algorithm *string   `hcl:"algorithm,optional"`
	Barriers  [][]int   `hcl:"barriers,optional"`
	Layout    *string   `hcl:"layout,optional"`
	Start     *hclCell  `hcl:"start,block"`
	End       *hclCell  `hcl:"end,block"`
	Walls     []hclWall `hcl:"wall,block"`
}

type hclCell struct {
	Row int `hcl:"row"`
	Col int `hcl:"col"`
}

type hclWall struct {
	From []int `hcl:"from"`
	To   []int `hcl:"to"`
}

// Load reads and decodes the scenario file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrDiagnostics, path, diags)
	}

	return decode(ctx, file.Body, path)
}

// Parse decodes a scenario from src; filename is used in diagnostics and as
// the default name.
func Parse(ctx context.Context, src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrDiagnostics, filename, diags)
	}

	return decode(ctx, file.Body, filename)
}

// decode runs the two-pass decode and converts the result.
func decode(ctx context.Context, body hcl.Body, filename string) (*Scenario, error) {
	var header hclHeader
	if diags := gohcl.DecodeBody(body, nil, &header); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrDiagnostics, filename, diags)
	}
	if header.Rows <= 0 || header.Rows > grid.MaxRows {
		return nil, fmt.Errorf("%w: %s: rows=%d", grid.ErrBadSize, filename, header.Rows)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"rows": cty.NumberIntVal(int64(header.Rows)),
			"last": cty.NumberIntVal(int64(header.Rows - 1)),
		},
	}
	var raw hclScenario
	if diags := gohcl.DecodeBody(header.Remain, evalCtx, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrDiagnostics, filename, diags)
	}

	sc, err := raw.convert(header.Rows, filename)
	if err != nil {
		return nil, err
	}

	ctxlog.FromContext(ctx).Debug("Decoded scenario.",
		"name", sc.Name,
		"rows", sc.Rows,
		"barriers", len(sc.Barriers),
		"walls", len(sc.Walls),
	)

	return sc, nil
}

// convert validates the decoded file and builds a Scenario.
func (raw *hclScenario) convert(rows int, filename string) (*Scenario, error) {
	sc := &Scenario{
		Name:  strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
		Rows:  rows,
		Width: grid.DefaultPixelWidth,
	}
	if raw.Name != nil {
		sc.Name = *raw.Name
	}
	if raw.Width != nil {
		sc.Width = *raw.Width
	}
	if raw.Algorithm != nil {
		sc.Algorithm = *raw.Algorithm
	}

	for i, b := range raw.Barriers {
		p, err := pair(b)
		if err != nil {
			return nil, fmt.Errorf("%s: barriers[%d]: %w", filename, i, err)
		}
		sc.Barriers = append(sc.Barriers, p)
	}
	for i, w := range raw.Walls {
		from, err := pair(w.From)
		if err != nil {
			return nil, fmt.Errorf("%s: wall[%d].from: %w", filename, i, err)
		}
		to, err := pair(w.To)
		if err != nil {
			return nil, fmt.Errorf("%s: wall[%d].to: %w", filename, i, err)
		}
		if !inBounds(from, rows) || !inBounds(to, rows) {
			return nil, fmt.Errorf("%w: %s: wall[%d] %s→%s on %dx%d board", grid.ErrOutOfBounds, filename, i, from, to, rows, rows)
		}
		if from.Row != to.Row && from.Col != to.Col {
			return nil, fmt.Errorf("%w: %s: wall[%d] %s→%s", ErrBadWall, filename, i, from, to)
		}
		sc.Walls = append(sc.Walls, Wall{From: from, To: to})
	}

	var starts, ends []grid.Pos
	if raw.Start != nil {
		starts = append(starts, grid.Pos{Row: raw.Start.Row, Col: raw.Start.Col})
	}
	if raw.End != nil {
		ends = append(ends, grid.Pos{Row: raw.End.Row, Col: raw.End.Col})
	}
	if raw.Layout != nil {
		s, e, walls, err := parseLayout(*raw.Layout, rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		starts = append(starts, s...)
		ends = append(ends, e...)
		sc.Barriers = append(sc.Barriers, walls...)
	}
	if len(starts) != 1 || len(ends) != 1 {
		return nil, fmt.Errorf("%w: %s: %d start(s), %d end(s)", ErrRole, filename, len(starts), len(ends))
	}
	sc.Start, sc.End = starts[0], ends[0]

	return sc, nil
}

// parseLayout reads a text board of exactly rows lines of rows characters.
func parseLayout(layout string, rows int) (starts, ends, barriers []grid.Pos, err error) {
	lines := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	if len(lines) != rows {
		return nil, nil, nil, fmt.Errorf("%w: %d lines for %d rows", ErrBadLayout, len(lines), rows)
	}
	for r, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if len(line) != rows {
			return nil, nil, nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrBadLayout, r, len(line), rows)
		}
		for c, ch := range line {
			p := grid.Pos{Row: r, Col: c}
			switch ch {
			case grid.CharFree:
			case grid.CharBarrier:
				barriers = append(barriers, p)
			case grid.CharStart:
				starts = append(starts, p)
			case grid.CharEnd:
				ends = append(ends, p)
			default:
				return nil, nil, nil, fmt.Errorf("%w: unexpected %q at %s", ErrBadLayout, ch, p)
			}
		}
	}

	return starts, ends, barriers, nil
}

// Build allocates the grid, assigns roles, places barriers and refreshes
// adjacency, leaving the board ready for search.
func (sc *Scenario) Build() (*grid.Grid, error) {
	g, err := grid.New(sc.Rows, sc.Width)
	if err != nil {
		return nil, err
	}
	if err := setRole(g, sc.Start, grid.RoleStart); err != nil {
		return nil, err
	}
	if err := setRole(g, sc.End, grid.RoleEnd); err != nil {
		return nil, err
	}

	place := func(p grid.Pos) error {
		c, err := g.Cell(p.Row, p.Col)
		if err != nil {
			return err
		}
		return c.SetBarrier()
	}
	for _, p := range sc.Barriers {
		if err := place(p); err != nil {
			return nil, fmt.Errorf("scenario %q: barrier %s: %w", sc.Name, p, err)
		}
	}
	for _, w := range sc.Walls {
		if !g.InBounds(w.From.Row, w.From.Col) || !g.InBounds(w.To.Row, w.To.Col) {
			return nil, fmt.Errorf("scenario %q: wall %s→%s: %w", sc.Name, w.From, w.To, grid.ErrOutOfBounds)
		}
		for _, p := range w.Cells() {
			if err := place(p); err != nil {
				return nil, fmt.Errorf("scenario %q: wall %s→%s: %w", sc.Name, w.From, w.To, err)
			}
		}
	}
	g.RefreshAllNeighbors()

	return g, nil
}

func setRole(g *grid.Grid, p grid.Pos, r grid.Role) error {
	c, err := g.Cell(p.Row, p.Col)
	if err != nil {
		return fmt.Errorf("scenario: %s: %w", r, err)
	}

	return c.SetRole(r)
}

// inBounds reports whether p lies on a rows×rows board.
func inBounds(p grid.Pos, rows int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < rows
}

// pair converts a decoded [row, col] list.
func pair(v []int) (grid.Pos, error) {
	if len(v) != 2 {
		return grid.Pos{}, fmt.Errorf("%w: got %d values", ErrBadCell, len(v))
	}

	return grid.Pos{Row: v[0], Col: v[1]}, nil
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
