// Package search implements A* and Dijkstra shortest-path search over a
// grid.Grid with unit step costs.
//
// Both algorithms share one loop, parameterized by a heuristic and by how
// duplicate frontier entries are handled:
//
//   - A* keeps a residency set and pushes a cell only when it is not already
//     on the frontier; an improved score updates the maps but not the queued key.
//   - Dijkstra pushes on every improvement and drops stale entries at pop time
//     through the visited set.
//
// Each call owns its scores, predecessor map and frontier; nothing survives
// the call except the markers written onto cells.
package search

import (
	"fmt"
	"math"
	"time"

	"github.com/gridpath/gridpath/frontier"
	"github.com/gridpath/gridpath/grid"
)

// dupPolicy selects how a run suppresses duplicate frontier entries.
type dupPolicy int

const (
	// skipResident pushes a cell only when it is not already queued (A*).
	skipResident dupPolicy = iota
	// filterVisited pushes every improvement and skips finalized cells on pop (Dijkstra).
	filterVisited
)

// AStar searches from start to end with the Manhattan heuristic.
// The grid's neighbor lists must be refreshed beforehand.
//
// Returns Found=false and Length=0 when the frontier empties without reaching
// end; that is not an error. Errors are returned only for precondition
// violations (ErrNilGrid, ErrNoStart, ErrNoEnd, ErrSameCell,
// grid.ErrForeignCell) and for an aborting onStep (ErrAborted).
//
// Complexity:
//
//   - Time:  O(R² log R²)
//   - Space: O(R²)
func AStar(g *grid.Grid, start, end *grid.Cell, onStep StepFunc, opts ...Option) (Result, error) {
	return run(g, start, end, onStep, Manhattan, skipResident, AlgAStar, opts)
}

// Dijkstra searches from start to end by uniform cost. It has the same
// contract as AStar; only the expansion order and the duplicate handling differ.
func Dijkstra(g *grid.Grid, start, end *grid.Cell, onStep StepFunc, opts ...Option) (Result, error) {
	return run(g, start, end, onStep, Zero, filterVisited, AlgDijkstra, opts)
}

// Run dispatches to AStar or Dijkstra.
func Run(alg Algorithm, g *grid.Grid, start, end *grid.Cell, onStep StepFunc, opts ...Option) (Result, error) {
	switch alg {
	case AlgAStar:
		return AStar(g, start, end, onStep, opts...)
	case AlgDijkstra:
		return Dijkstra(g, start, end, onStep, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// runner holds the mutable state of a single search invocation.
type runner struct {
	g          *grid.Grid
	start, end *grid.Cell
	h          Heuristic
	policy     dupPolicy
	onStep     StepFunc
	opts       Options

	score    map[*grid.Cell]int        // g_score (A*) or d_score (Dijkstra)
	cameFrom map[*grid.Cell]*grid.Cell // predecessor on the best known path
	resident map[*grid.Cell]bool       // A* frontier membership
	visited  map[*grid.Cell]bool       // Dijkstra finalized cells
	pq       *frontier.Queue[*grid.Cell]
	expanded int
}

// run validates input, builds a runner and executes the search loop.
func run(g *grid.Grid, start, end *grid.Cell, onStep StepFunc, h Heuristic, policy dupPolicy, alg Algorithm, opts []Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate preconditions, fail fast
	if err := validate(g, start, end); err != nil {
		return Result{}, err
	}
	if onStep == nil {
		onStep = func() error { return nil }
	}

	// 3) Fresh per-call state
	n := len(g.Cells())
	r := &runner{
		g:        g,
		start:    start,
		end:      end,
		h:        h,
		policy:   policy,
		onStep:   onStep,
		opts:     cfg,
		score:    make(map[*grid.Cell]int, n),
		cameFrom: make(map[*grid.Cell]*grid.Cell, n),
		pq:       frontier.New[*grid.Cell](n),
	}
	if policy == skipResident {
		r.resident = make(map[*grid.Cell]bool, n)
	} else {
		r.visited = make(map[*grid.Cell]bool, n)
	}

	began := time.Now()
	res, err := r.loop()
	res.Elapsed = time.Since(began)
	res.Expanded = r.expanded
	res.Pushed = r.pq.Pushed()
	if err != nil {
		return Result{}, err
	}

	cfg.Logger.Debug("search finished",
		"algorithm", alg.String(),
		"start", start.String(),
		"end", end.String(),
		"found", res.Found,
		"length", res.Length,
		"expanded", res.Expanded,
		"pushed", res.Pushed,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

// validate checks the search preconditions in a fixed order.
func validate(g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case g == nil:
		return ErrNilGrid
	case start == nil:
		return ErrNoStart
	case end == nil:
		return ErrNoEnd
	case !g.Owns(start):
		return fmt.Errorf("%w: start %s", grid.ErrForeignCell, start)
	case !g.Owns(end):
		return fmt.Errorf("%w: end %s", grid.ErrForeignCell, end)
	case start == end:
		return fmt.Errorf("%w: %s", ErrSameCell, start)
	}

	return nil
}

// cost returns the best known score of c, or math.MaxInt when unreached.
func (r *runner) cost(c *grid.Cell) int {
	if s, ok := r.score[c]; ok {
		return s
	}

	return math.MaxInt
}

// loop runs until end is popped or the frontier empties.
func (r *runner) loop() (Result, error) {
	r.score[r.start] = 0
	if r.policy == skipResident {
		r.resident[r.start] = true
		r.pq.Push(r.h(r.start, r.end), r.start)
	} else {
		r.pq.Push(0, r.start)
	}

	for !r.pq.IsEmpty() {
		current, _ := r.pq.PopMin()

		if r.policy == skipResident {
			delete(r.resident, current)
		} else if r.visited[current] {
			// stale duplicate of a finalized cell
			continue
		}

		if current == r.end {
			path, count, err := r.reconstruct()
			if err != nil {
				return Result{}, err
			}
			return Result{Length: count, Found: true, Path: path}, nil
		}

		if r.policy == filterVisited {
			r.visited[current] = true
		}
		r.expanded++
		r.mark(current, grid.MarkClosed)
		if err := r.step(); err != nil {
			return Result{}, err
		}

		r.relax(current)
	}

	return Result{}, nil
}

// relax tries to improve every neighbor of current by one unit step.
func (r *runner) relax(current *grid.Cell) {
	base := r.score[current]
	for _, nb := range r.g.NeighborsOf(current) {
		if r.policy == filterVisited && r.visited[nb] {
			continue
		}
		tentative := base + 1
		if tentative >= r.cost(nb) {
			continue
		}
		r.score[nb] = tentative
		r.cameFrom[nb] = current

		switch r.policy {
		case skipResident:
			// a resident cell keeps its queued key; only its score improves
			if r.resident[nb] {
				continue
			}
			r.pq.Push(tentative+r.h(nb, r.end), nb)
			r.resident[nb] = true
		case filterVisited:
			r.pq.Push(tentative, nb)
		}
		r.mark(nb, grid.MarkOpen)
	}
}

// mark records a marker change on c unless c is start or end.
func (r *runner) mark(c *grid.Cell, m grid.Marker) {
	if c == r.start || c == r.end {
		return
	}
	if r.opts.Markers {
		c.Mark(m)
	}
	r.opts.OnMark(c, m)
}

// step invokes the observer and wraps its error.
func (r *runner) step() error {
	if err := r.onStep(); err != nil {
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}

	return nil
}
