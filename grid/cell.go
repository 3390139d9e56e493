package grid

import "fmt"

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.col }

// Pos returns the cell's (row, column) coordinate.
func (c *Cell) Pos() Pos { return Pos{Row: c.row, Col: c.col} }

// XY returns the pixel origin of the cell's square: (col*w, row*w).
func (c *Cell) XY() (x, y int) {
	w := c.owner.CellWidth

	return c.col * w, c.row * w
}

// String formats the cell by its position.
func (c *Cell) String() string { return c.Pos().String() }

// IsBarrier reports whether the cell is impassable.
func (c *Cell) IsBarrier() bool { return c.barrier }

// Role returns the cell's role.
func (c *Cell) Role() Role { return c.role }

// Marker returns the visualization marker left by the last search.
func (c *Cell) Marker() Marker { return c.marker }

// IsStart reports whether the cell holds RoleStart.
func (c *Cell) IsStart() bool { return c.role == RoleStart }

// IsEnd reports whether the cell holds RoleEnd.
func (c *Cell) IsEnd() bool { return c.role == RoleEnd }

// SetBarrier makes the cell impassable and drops its marker.
// Returns ErrRoleBarrier for the start or end cell.
// Neighbor lists are not updated until the next refresh.
func (c *Cell) SetBarrier() error {
	if c.role != RoleNone {
		return fmt.Errorf("%w: %s is %s", ErrRoleBarrier, c, c.role)
	}
	c.barrier = true
	c.marker = MarkNone

	return nil
}

// ClearBarrier makes the cell passable again.
func (c *Cell) ClearBarrier() {
	c.barrier = false
}

// SetRole assigns r to the cell. RoleNone releases whatever role the cell had.
// Assigning start or end fails with ErrRoleTaken while another cell holds it
// or while this cell holds the other role, and with ErrRoleBarrier when the
// cell is a barrier. No other cell is touched.
func (c *Cell) SetRole(r Role) error {
	g := c.owner
	switch r {
	case RoleNone:
		c.release()
		return nil
	case RoleStart, RoleEnd:
	default:
		return fmt.Errorf("grid: unknown role %d", int(r))
	}
	if c.barrier {
		return fmt.Errorf("%w: %s", ErrRoleBarrier, c)
	}
	if c.role != RoleNone && c.role != r {
		return fmt.Errorf("%w: %s is already %s", ErrRoleTaken, c, c.role)
	}
	holder := g.start
	if r == RoleEnd {
		holder = g.end
	}
	if holder != nil && holder != c {
		return fmt.Errorf("%w: %s already held by %s", ErrRoleTaken, r, holder)
	}
	c.role = r
	c.marker = MarkNone
	if r == RoleStart {
		g.start = c
	} else {
		g.end = c
	}

	return nil
}

// release drops the cell's role and the grid's reference to it.
func (c *Cell) release() {
	switch c.role {
	case RoleStart:
		c.owner.start = nil
	case RoleEnd:
		c.owner.end = nil
	}
	c.role = RoleNone
}

// Mark sets the visualization marker.
func (c *Cell) Mark(m Marker) {
	c.marker = m
}

// Reset returns the cell to its initial state: passable, no role, no marker.
// Calling it repeatedly is harmless.
func (c *Cell) Reset() {
	c.release()
	c.barrier = false
	c.marker = MarkNone
}
