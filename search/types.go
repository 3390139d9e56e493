// Package search defines the result type, step observer, options and
// sentinel errors shared by the A* and Dijkstra grid searches.
package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gridpath/gridpath/grid"
)

// Sentinel errors returned by the search functions.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNoStart indicates the start cell is missing.
	ErrNoStart = errors.New("search: start cell is not set")

	// ErrNoEnd indicates the end cell is missing.
	ErrNoEnd = errors.New("search: end cell is not set")

	// ErrSameCell indicates start and end are the same cell.
	ErrSameCell = errors.New("search: start and end must differ")

	// ErrAborted wraps the error a StepFunc returned to stop the search.
	ErrAborted = errors.New("search: aborted by step observer")

	// ErrBrokenPath indicates a predecessor chain that does not lead back to start.
	ErrBrokenPath = errors.New("search: predecessor chain does not reach start")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// StepFunc is invoked synchronously at every decision point of a search so a
// renderer can repaint. The engine ignores it except for the error: a non-nil
// error stops the search, which then returns ErrAborted wrapping it.
// A nil StepFunc is a no-op.
type StepFunc func() error

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, to *grid.Cell) int

// Manhattan is the A* heuristic: admissible and consistent on a
// 4-directional unit-cost grid.
func Manhattan(from, to *grid.Cell) int { return grid.Manhattan(from, to) }

// Zero is the heuristic that turns best-first search into uniform-cost search.
func Zero(_, _ *grid.Cell) int { return 0 }

// Result is the outcome of one search invocation.
//
//   - Length:   cells strictly between start and end on the path (edges - 1);
//     0 when not found.
//   - Found:    whether end was reached.
//   - Path:     cells from start to end inclusive; nil when not found.
//   - Expanded: cells popped and expanded (marked closed), start included.
//   - Pushed:   frontier insertions, duplicates included.
//   - Elapsed:  wall time of the invocation.
type Result struct {
	Length   int
	Found    bool
	Path     []*grid.Cell
	Expanded int
	Pushed   uint64
	Elapsed  time.Duration
}

// Algorithm selects a search strategy.
type Algorithm int

const (
	// AlgAStar is best-first search guided by the Manhattan heuristic.
	AlgAStar Algorithm = iota
	// AlgDijkstra is uniform-cost search.
	AlgDijkstra
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AlgAStar:
		return "astar"
	case AlgDijkstra:
		return "dijkstra"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "astar"/"a*" and "dijkstra" (case-insensitive) to an
// Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return AlgAStar, nil
	case "dijkstra":
		return AlgDijkstra, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Options configures a search run.
type Options struct {
	// Logger receives a debug record per run. Defaults to slog.Default().
	Logger *slog.Logger

	// OnMark is called for every marker change the search makes, in order.
	OnMark func(c *grid.Cell, m grid.Marker)

	// Markers controls whether the search writes markers onto the cells.
	// OnMark fires either way.
	Markers bool
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the default logger, markers enabled
// and a no-op OnMark hook.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.Default(),
		OnMark:  func(*grid.Cell, grid.Marker) {},
		Markers: true,
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnMark registers a hook that observes every marker change.
func WithOnMark(fn func(c *grid.Cell, m grid.Marker)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMark = fn
		}
	}
}

// WithoutMarkers leaves cell markers untouched, for headless runs.
func WithoutMarkers() Option {
	return func(o *Options) {
		o.Markers = false
	}
}
