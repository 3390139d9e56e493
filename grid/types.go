// Package grid defines cell types, roles, markers and sentinel errors
// for the grid model of github.com/gridpath/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a row count outside [1, MaxRows] or a negative pixel width.
	ErrBadSize = errors.New("grid: rows must be in [1, MaxRows] and pixel width non-negative")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrRoleBarrier indicates an attempt to turn the start or end cell into a barrier.
	ErrRoleBarrier = errors.New("grid: start and end cells cannot be barriers")
	// ErrRoleTaken indicates another cell already holds the requested role.
	ErrRoleTaken = errors.New("grid: role already assigned to another cell")
	// ErrForeignCell indicates a cell that does not belong to the grid it was passed to.
	ErrForeignCell = errors.New("grid: cell does not belong to this grid")
)

// DefaultRows is the board size used by the interactive visualizer.
const DefaultRows = 50

// DefaultPixelWidth is the window width the visualizer draws into.
const DefaultPixelWidth = 800

// MaxRows bounds the board side so Rows*Rows cells stay allocatable.
const MaxRows = 4096

// Text glyphs for a cell's static state, one character per cell. Package
// scenario reads boards in this form and package render writes them.
const (
	CharFree    = '.'
	CharBarrier = '#'
	CharStart   = 'S'
	CharEnd     = 'E'
)

// Role designates a cell as the search start, the search end, or neither.
type Role int

const (
	// RoleNone is an ordinary cell.
	RoleNone Role = iota
	// RoleStart marks the cell the search begins from.
	RoleStart
	// RoleEnd marks the goal cell.
	RoleEnd
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleStart:
		return "start"
	case RoleEnd:
		return "end"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Marker is the transient visualization state a search leaves on a cell.
type Marker int

const (
	// MarkNone is the default, untouched state.
	MarkNone Marker = iota
	// MarkOpen means the cell sits on the frontier.
	MarkOpen
	// MarkClosed means the cell has been expanded.
	MarkClosed
	// MarkPath means the cell lies on the reconstructed shortest path.
	MarkPath
)

// String implements fmt.Stringer.
func (m Marker) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkOpen:
		return "open"
	case MarkClosed:
		return "closed"
	case MarkPath:
		return "path"
	default:
		return fmt.Sprintf("Marker(%d)", int(m))
	}
}

// Pos is a (row, column) coordinate pair.
type Pos struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single square of the grid. Its position is fixed at construction;
// barrier, role and marker are mutable. The neighbor list is a cached view
// owned by the grid and only changes on refresh.
type Cell struct {
	row, col  int
	barrier   bool
	role      Role
	marker    Marker
	neighbors []*Cell
	owner     *Grid
}

// Grid is an R×R board of cells stored in row-major order.
// Rows and CellWidth are fixed at construction.
type Grid struct {
	Rows      int // cells per side
	CellWidth int // pixel width of one cell: pixelWidth / Rows
	cells     []*Cell
	start     *Cell
	end       *Cell
}
