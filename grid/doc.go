// Package grid models a square board of cells for shortest-path search.
//
// What:
//
//   - Grid owns an R×R set of Cells addressed by (row, column).
//   - Each Cell carries a barrier flag, a Role (start, end or none) and a
//     transient Marker (open, closed, path) written by a running search.
//   - Adjacency is 4-directional (up, down, left, right) and is a derived view:
//     it is recomputed only by RefreshNeighbors / RefreshAllNeighbors.
//
// Why:
//
//   - Role and Marker are separate fields, so "barrier" never has to be
//     inferred from a visual state.
//   - The lazy adjacency contract keeps barrier edits O(1); callers pay O(R²)
//     once per search by refreshing before they run it.
//
// Complexity:
//
//   - New:                 O(R²) time and memory.
//   - NeighborsOf:         O(1).
//   - RefreshAllNeighbors: O(R²).
//   - ClearMarkers, Clear: O(R²).
//
// Errors:
//
//   - ErrBadSize:      rows outside [1, MaxRows] or negative pixel width.
//   - ErrOutOfBounds:  coordinates outside the grid.
//   - ErrRoleBarrier:  attempt to wall off the start or end cell.
//   - ErrRoleTaken:    start or end already assigned to another cell.
//   - ErrForeignCell:  cell belongs to another grid.
//
// Thread safety:
//
//   - Grid has no locks. At most one search may run over a Grid at a time,
//     and edits must not race with a running search.
package grid
