package grid

// Regions partitions the passable cells into 4-connected regions using the
// neighbor lists from the last refresh. Regions are returned in order of their
// first cell in row-major order; each region lists its cells in BFS order.
//
// Time:   O(R²).
// Memory: O(R²) for seen flags and output.
func (g *Grid) Regions() [][]*Cell {
	seen := make([]bool, len(g.cells))
	var regions [][]*Cell

	for i, c0 := range g.cells {
		if c0.barrier || seen[i] {
			continue
		}
		seen[i] = true
		queue := []*Cell{c0}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range queue[qi].neighbors {
				ni := g.index(n.row, n.col)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Connected reports whether b is reachable from a over the refreshed adjacency.
// Returns false if either cell is a barrier or foreign to g.
func (g *Grid) Connected(a, b *Cell) bool {
	if !g.Owns(a) || !g.Owns(b) || a.barrier || b.barrier {
		return false
	}
	if a == b {
		return true
	}
	seen := map[*Cell]bool{a: true}
	queue := []*Cell{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range queue[qi].neighbors {
			if n == b {
				return true
			}
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
