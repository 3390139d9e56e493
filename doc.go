// Package gridpath finds shortest paths on a square grid of cells with A*
// and Dijkstra, and shows the search as it happens.
//
// 🚀 What is gridpath?
//
//	A small engine for 4-connected, unit-cost boards:
//		• Board model: cells, barriers, one start and one end, cached adjacency
//		• Frontier: a min-priority queue with FIFO order among equal keys
//		• Search: A* (Manhattan) and Dijkstra sharing one loop
//		• Reconstruction: walk predecessors back from end, marking the path
//		• Scenarios: boards described in HCL, including ASCII layouts
//		• Rendering: text frames driven by the per-step observer
//
// ✨ Why gridpath?
//
//   - Observable – every expansion and path hop calls your StepFunc
//   - Abortable – return an error from the observer to stop the run
//   - Deterministic – same board, same markers, same path, every time
//   - Honest adjacency – neighbor lists change only when you refresh them
//
// Packages:
//
//	grid/      Grid, Cell, roles, markers, neighbor refresh, regions
//	frontier/  generic (key, insertion order) priority queue
//	search/    AStar, Dijkstra, Run, path reconstruction, step helpers
//	scenario/  HCL scenario loader and board builder
//	render/    text and ANSI frames, run summaries
//	cmd/gridpath command-line runner
//
// Quick ASCII example (S start, E end, # barrier, * path):
//
//	S*#*E
//	x*#*x
//	x*#*x
//	x*#*x
//	x***x
//
//	go run ./cmd/gridpath -render examples/scenarios/gap.hcl
package gridpath
