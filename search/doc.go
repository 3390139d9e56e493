// Package search provides A* and Dijkstra shortest-path search over a
// grid.Grid with 4-directional unit-cost moves.
//
// Overview:
//
//   - AStar expands cells in order of f = g + Manhattan(cell, end).
//   - Dijkstra expands cells in order of distance from start.
//   - Both return a Result whose Length is the number of cells strictly
//     between start and end on the path, and whose Found reports success.
//     An exhausted frontier is a normal outcome (Found=false, Length=0).
//   - Ties on the priority key are broken by insertion order, so exploration,
//     markers and the returned path are identical from run to run.
//
// Step observer:
//
//   - Every expansion and every hop of path reconstruction calls the StepFunc
//     once, synchronously. A renderer uses it to repaint; the engine only
//     looks at the returned error.
//   - Returning an error aborts the search: the call returns ErrAborted
//     wrapping it and no partial result. Markers already written stay on the
//     cells; clear them with grid.ClearMarkers or rebuild the grid.
//   - ContextStep turns a context.Context into such an abort.
//
// Markers:
//
//   - Cells entering the frontier are marked grid.MarkOpen, expanded cells
//     grid.MarkClosed and path cells grid.MarkPath. Start and end are never
//     marked. WithoutMarkers disables the writes; WithOnMark observes them.
//
// Preconditions (sentinel errors):
//
//   - ErrNilGrid, ErrNoStart, ErrNoEnd, ErrSameCell, grid.ErrForeignCell.
//   - The grid's adjacency must be refreshed after the last barrier edit.
//     The engine never refreshes it and will walk through stale neighbors.
//
// Complexity:
//
//   - Time:  O(N log N) with N = R² cells; Dijkstra may queue up to 4N
//     entries because it pushes duplicates.
//   - Space: O(N) for scores, predecessors and the frontier.
//
// Thread safety:
//
//   - A call is single-threaded and runs to completion on the caller's
//     goroutine. Two searches over the same Grid must not overlap: both
//     write markers to the same cells.
package search
