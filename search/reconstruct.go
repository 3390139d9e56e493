package search

import (
	"fmt"

	"github.com/gridpath/gridpath/grid"
)

// reconstruct walks cameFrom backwards from end until it runs out of
// predecessors. Every cell strictly between start and end is marked as path
// and counted; the observer is invoked once per step. It returns the path
// ordered start→end and the number of intermediate cells.
//
// The walk is bounded by the size of cameFrom, so a malformed chain yields
// ErrBrokenPath instead of looping forever.
func (r *runner) reconstruct() ([]*grid.Cell, int, error) {
	path := []*grid.Cell{r.end}
	count := 0
	limit := len(r.cameFrom)
	for cur := r.end; ; {
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		if len(path) > limit {
			return nil, 0, fmt.Errorf("%w: cycle after %d steps from %s", ErrBrokenPath, limit, r.end)
		}
		cur = prev
		path = append(path, cur)
		if cur != r.start && cur != r.end {
			r.mark(cur, grid.MarkPath)
			count++
		}
		if err := r.step(); err != nil {
			return nil, 0, err
		}
	}
	if path[len(path)-1] != r.start {
		return nil, 0, fmt.Errorf("%w: chain ends at %s", ErrBrokenPath, path[len(path)-1])
	}

	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, count, nil
}
