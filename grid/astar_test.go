package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/endlessgrid/grid"
	"github.com/jcorbin/endlessgrid/point"
)

func open(_ point.Point, blocks *bool) bool { return !*blocks }

func assertPathValid(t *testing.T, g *grid.Grid[bool], start, end point.Point, path []point.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0], "path starts at start")
	assert.Equal(t, end, path[len(path)-1], "path ends at end")
	for i := 1; i < len(path); i++ {
		assert.Equal(t, int64(1), path[i-1].Manhattan(path[i]), "step %v -> %v", path[i-1], path[i])
		v, ok := g.Get(path[i])
		assert.True(t, ok, "path cell %v populated", path[i])
		assert.False(t, v, "path cell %v passable", path[i])
	}
}

func TestAStar_wallWithGap(t *testing.T) {
	var wall []point.Point
	for y := int32(0); y < 7; y++ {
		wall = append(wall, point.Pt(4, y))
	}
	g := testBlockingGrid(8, 8, wall...)

	start, end := point.Pt(0, 0), point.Pt(7, 0)
	path, ok := g.AStar(start, end, open)
	require.True(t, ok)
	assertPathValid(t, g, start, end, path)
	assert.Contains(t, path, point.Pt(4, 7))
	assert.Len(t, path, 7+7+7+1, "down and back up the wall, plus the crossing")
}

func TestAStar_open(t *testing.T) {
	g := testBlockingGrid(8, 8)
	start, end := point.Pt(1, 1), point.Pt(6, 4)
	path, ok := g.AStar(start, end, open)
	require.True(t, ok)
	assertPathValid(t, g, start, end, path)
	assert.Len(t, path, int(start.Manhattan(end))+1)
}

func TestAStar_sameCell(t *testing.T) {
	var g grid.Grid[bool]
	path, ok := g.AStar(point.Pt(3, 3), point.Pt(3, 3), open)
	assert.True(t, ok)
	assert.Equal(t, []point.Point{point.Pt(3, 3)}, path)
}

func TestAStar_unreachable(t *testing.T) {
	for _, tc := range []struct {
		name       string
		g          *grid.Grid[bool]
		start, end point.Point
	}{
		{
			name:  "boxed in start",
			g:     testBlockingGrid(8, 8, point.Pt(2, 3), point.Pt(4, 3), point.Pt(3, 2), point.Pt(3, 4)),
			start: point.Pt(3, 3),
			end:   point.Pt(7, 7),
		},
		{
			name:  "blocked end",
			g:     testBlockingGrid(8, 8, point.Pt(7, 7)),
			start: point.Pt(0, 0),
			end:   point.Pt(7, 7),
		},
		{
			name:  "end outside populated space",
			g:     testBlockingGrid(8, 8),
			start: point.Pt(0, 0),
			end:   point.Pt(20, 0),
		},
		{
			name:  "full wall",
			g:     testBlockingGrid(8, 8, point.Pt(4, 0), point.Pt(4, 1), point.Pt(4, 2), point.Pt(4, 3), point.Pt(4, 4), point.Pt(4, 5), point.Pt(4, 6), point.Pt(4, 7)),
			start: point.Pt(0, 0),
			end:   point.Pt(7, 0),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path, ok := tc.g.AStar(tc.start, tc.end, open)
			assert.False(t, ok)
			assert.Nil(t, path)
		})
	}
}

func TestAStar_predicateSeesOnlyPopulated(t *testing.T) {
	g := grid.New[bool]()
	for x := int32(-3); x <= 3; x++ {
		g.Insert(point.Pt(x, 0), false)
	}
	offered := make(map[point.Point]bool)
	path, ok := g.AStar(point.Pt(-3, 0), point.Pt(3, 0), func(pt point.Point, v *bool) bool {
		offered[pt] = true
		return !*v
	})
	require.True(t, ok)
	assert.Len(t, path, 7)
	for pt := range offered {
		_, populated := g.Get(pt)
		assert.True(t, populated, "predicate offered unpopulated %v", pt)
		assert.Equal(t, int32(0), pt.Y)
	}
}

func TestAStar_negativeCoordinates(t *testing.T) {
	g := grid.New[bool]()
	for _, pt := range testPointRect(point.Pt(-40, -40), point.Pt(-30, -30)) {
		g.Insert(pt, false)
	}
	g.Insert(point.Pt(-35, -39), true)
	g.Insert(point.Pt(-35, -40), true)
	start, end := point.Pt(-40, -40), point.Pt(-31, -40)
	path, ok := g.AStar(start, end, open)
	require.True(t, ok)
	assertPathValid(t, g, start, end, path)
	assert.Len(t, path, 9+2*2+1)
}
