// Package grid provides the square cell board searched by package search.
// It supports:
//
//   - Barrier, role and marker mutation on individual cells
//   - 4-directional adjacency, recomputed on demand
//   - Bulk marker clearing between runs
//
// Cells with the barrier flag set are excluded from every neighbor list
// computed after they were set.
package grid

import "fmt"

// offsets lists neighbor directions in iteration order: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New allocates a rows×rows grid. CellWidth is pixelWidth / rows; remainder
// pixels are left unused.
// Returns ErrBadSize if rows is outside [1, MaxRows] or pixelWidth < 0.
// Complexity: O(R²) time and memory.
func New(rows, pixelWidth int) (*Grid, error) {
	if rows <= 0 || rows > MaxRows || pixelWidth < 0 {
		return nil, fmt.Errorf("%w: rows=%d width=%d", ErrBadSize, rows, pixelWidth)
	}
	g := &Grid{
		Rows:      rows,
		CellWidth: pixelWidth / rows,
		cells:     make([]*Cell, rows*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < rows; c++ {
			g.cells[g.index(r, c)] = &Cell{row: r, col: c, owner: g}
		}
	}

	return g, nil
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Rows
}

// index maps (row, col) to a row-major index: row*Rows + col.
func (g *Grid) index(row, col int) int {
	return row*g.Rows + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Rows, idx % g.Rows
}

// At returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}

	return g.cells[g.index(row, col)]
}

// Cell returns the cell at (row, col) or ErrOutOfBounds.
func (g *Grid) Cell(row, col int) (*Cell, error) {
	c := g.At(row, col)
	if c == nil {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.Rows, g.Rows)
	}

	return c, nil
}

// Cells returns every cell in row-major order. The slice is shared; callers
// must not modify it.
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// Owns reports whether c was allocated by g.
func (g *Grid) Owns(c *Cell) bool {
	return c != nil && c.owner == g
}

// Start returns the cell currently holding RoleStart, or nil.
func (g *Grid) Start() *Cell { return g.start }

// End returns the cell currently holding RoleEnd, or nil.
func (g *Grid) End() *Cell { return g.end }

// NeighborsOf returns the neighbor list computed by the last refresh:
// up, down, left, right, skipping out-of-bounds cells and cells that were
// barriers at refresh time. The slice is shared; callers must not modify it.
// Complexity: O(1).
func (g *Grid) NeighborsOf(c *Cell) []*Cell {
	return c.neighbors
}

// RefreshNeighbors recomputes the neighbor list of a single cell.
func (g *Grid) RefreshNeighbors(c *Cell) {
	c.neighbors = c.neighbors[:0]
	for _, d := range offsets {
		n := g.At(c.row+d[0], c.col+d[1])
		if n == nil || n.barrier {
			continue
		}
		c.neighbors = append(c.neighbors, n)
	}
}

// RefreshAllNeighbors recomputes adjacency for every cell. It must be called
// after barrier edits and before a search; nothing refreshes implicitly.
// Complexity: O(R²).
func (g *Grid) RefreshAllNeighbors() {
	for _, c := range g.cells {
		g.RefreshNeighbors(c)
	}
}

// ClearMarkers drops every search marker while keeping barriers and roles,
// so the same board can be searched again.
// Complexity: O(R²).
func (g *Grid) ClearMarkers() {
	for _, c := range g.cells {
		c.marker = MarkNone
	}
}

// Clear resets every cell: no barriers, no roles, no markers.
// Neighbor lists are left untouched until the next refresh.
// Complexity: O(R²).
func (g *Grid) Clear() {
	for _, c := range g.cells {
		c.barrier = false
		c.role = RoleNone
		c.marker = MarkNone
	}
	g.start, g.end = nil, nil
}

// Manhattan returns |r1-r2| + |c1-c2|.
func Manhattan(a, b *Cell) int {
	return abs(a.row-b.row) + abs(a.col-b.col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
