package scenario_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpath/gridpath/grid"
	"github.com/gridpath/gridpath/scenario"
	"github.com/gridpath/gridpath/search"
)

func TestLoad_WallFile(t *testing.T) {
	sc, err := scenario.Load(context.Background(), "testdata/gap.hcl")
	require.NoError(t, err)

	want := &scenario.Scenario{
		Name:      "gap in the wall",
		Rows:      5,
		Width:     500,
		Algorithm: "both",
		Start:     grid.Pos{Row: 0, Col: 0},
		End:       grid.Pos{Row: 0, Col: 4},
		Walls: []scenario.Wall{
			{From: grid.Pos{Row: 0, Col: 2}, To: grid.Pos{Row: 3, Col: 2}},
		},
	}
	if diff := cmp.Diff(want, sc); diff != "" {
		t.Fatalf("scenario mismatch (-want +got):\n%s", diff)
	}

	g, err := sc.Build()
	require.NoError(t, err)
	assert.Equal(t, 100, g.CellWidth)
	assert.True(t, g.At(3, 2).IsBarrier())
	assert.False(t, g.At(4, 2).IsBarrier())
	assert.True(t, g.At(0, 4).IsEnd())

	res, err := search.AStar(g, g.Start(), g.End(), nil)
	require.NoError(t, err)
	assert.Equal(t, 11, res.Length)
}

func TestLoad_Layout(t *testing.T) {
	sc, err := scenario.Load(context.Background(), "testdata/layout.hcl")
	require.NoError(t, err)

	assert.Equal(t, "layout", sc.Name)
	assert.Equal(t, grid.DefaultPixelWidth, sc.Width)
	assert.Equal(t, grid.Pos{Row: 0, Col: 0}, sc.Start)
	assert.Equal(t, grid.Pos{Row: 3, Col: 3}, sc.End)
	assert.Equal(t, []grid.Pos{{Row: 0, Col: 3}, {Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 1}}, sc.Barriers)

	g, err := sc.Build()
	require.NoError(t, err)
	res, err := search.Dijkstra(g, g.Start(), g.End(), nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 5, res.Length)
}

// TestLoad_Examples keeps the shipped example scenarios loadable and solved
// with the lengths they were drawn for.
func TestLoad_Examples(t *testing.T) {
	want := map[string]int{
		"gap.hcl":    11,
		"maze.hcl":   19,
		"spiral.hcl": 55,
		"sealed.hcl": -1,
	}
	paths, err := filepath.Glob("../examples/scenarios/*.hcl")
	require.NoError(t, err)
	require.Len(t, paths, len(want))

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			sc, err := scenario.Load(context.Background(), path)
			require.NoError(t, err)
			for _, alg := range []search.Algorithm{search.AlgAStar, search.AlgDijkstra} {
				g, err := sc.Build()
				require.NoError(t, err)
				res, err := search.Run(alg, g, g.Start(), g.End(), nil)
				require.NoError(t, err)

				length := want[filepath.Base(path)]
				assert.Equal(t, length >= 0, res.Found, "%s", alg)
				if length >= 0 {
					assert.Equal(t, length, res.Length, "%s", alg)
				}
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scenario.Load(context.Background(), "testdata/nope.hcl")
	assert.ErrorIs(t, err, scenario.ErrDiagnostics)
}

func TestParse_Barriers(t *testing.T) {
	src := `
rows     = 3
barriers = [[1, 1], [rows - 1, 0]]
start {
  row = 0
  col = 0
}
end {
  row = last
  col = last
}
`
	sc, err := scenario.Parse(context.Background(), []byte(src), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, "inline", sc.Name)
	assert.Equal(t, []grid.Pos{{Row: 1, Col: 1}, {Row: 2, Col: 0}}, sc.Barriers)
	assert.Equal(t, grid.Pos{Row: 2, Col: 2}, sc.End)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"Syntax", `rows = `, scenario.ErrDiagnostics},
		{"MissingRows", "start {\n row = 0\n col = 0\n}\n", scenario.ErrDiagnostics},
		{"ZeroRows", "rows = 0\n", grid.ErrBadSize},
		{"HugeRows", "rows = 4294967296\nstart {\n row = 0\n col = 0\n}\nend {\n row = 1\n col = 1\n}\n", grid.ErrBadSize},
		{"WallOffBoard", "rows = 5\nlayout = \"S...E\\n.....\\n.....\\n.....\\n.....\"\nwall {\n from = [0, 2]\n to = [0, 2000000000]\n}\n", grid.ErrOutOfBounds},
		{"UnknownAttr", "rows = 3\ncolour = \"red\"\n", scenario.ErrDiagnostics},
		{"NoEnd", "rows = 3\nstart {\n row = 0\n col = 0\n}\n", scenario.ErrRole},
		{"BadPair", "rows = 3\nbarriers = [[1]]\nlayout = \"S.E\\n...\\n...\"\n", scenario.ErrBadCell},
		{"DiagonalWall", "rows = 3\nlayout = \"S.E\\n...\\n...\"\nwall {\n from = [0, 0]\n to = [2, 2]\n}\n", scenario.ErrBadWall},
		{"ShortLayout", "rows = 3\nlayout = \"S.E\\n...\"\n", scenario.ErrBadLayout},
		{"BadChar", "rows = 3\nlayout = \"S.E\\n.x.\\n...\"\n", scenario.ErrBadLayout},
		{"TwoStarts", "rows = 3\nlayout = \"S.E\\n...\\n...\"\nstart {\n row = 2\n col = 2\n}\n", scenario.ErrRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse(context.Background(), []byte(tc.src), tc.name+".hcl")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	base := scenario.Scenario{Rows: 3, Width: 30, Start: grid.Pos{Row: 0, Col: 0}, End: grid.Pos{Row: 2, Col: 2}}

	outOfBounds := base
	outOfBounds.End = grid.Pos{Row: 3, Col: 0}
	_, err := outOfBounds.Build()
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	wallOnStart := base
	wallOnStart.Walls = []scenario.Wall{{From: grid.Pos{Row: 0, Col: 0}, To: grid.Pos{Row: 0, Col: 1}}}
	_, err = wallOnStart.Build()
	assert.ErrorIs(t, err, grid.ErrRoleBarrier)

	// Endpoints are checked before the wall is expanded cell by cell.
	farWall := base
	farWall.Walls = []scenario.Wall{{From: grid.Pos{Row: 1, Col: 0}, To: grid.Pos{Row: 1, Col: 2000000000}}}
	_, err = farWall.Build()
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	sameCell := base
	sameCell.End = sameCell.Start
	_, err = sameCell.Build()
	assert.ErrorIs(t, err, grid.ErrRoleTaken)
}

func TestWall_Cells(t *testing.T) {
	w := scenario.Wall{From: grid.Pos{Row: 2, Col: 3}, To: grid.Pos{Row: 2, Col: 0}}
	assert.Equal(t, []grid.Pos{{Row: 2, Col: 3}, {Row: 2, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0}}, w.Cells())

	dot := scenario.Wall{From: grid.Pos{Row: 1, Col: 1}, To: grid.Pos{Row: 1, Col: 1}}
	assert.Equal(t, []grid.Pos{{Row: 1, Col: 1}}, dot.Cells())
}
