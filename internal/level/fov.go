package level

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/jcorbin/endlessgrid/grid"
	"github.com/jcorbin/endlessgrid/point"
)

// FieldOfView casts a ray from the centre of from to the centre of every cell
// on the perimeter of the square dist cells out, and collects each cell a ray
// passes through. A ray stops after entering a blocking tile, so walls are
// visible but what lies behind them is not.
func FieldOfView(g *grid.Grid[Tile], from point.Point, dist int32) mapset.Set[point.Point] {
	seen := mapset.New[point.Point]()
	if _, ok := g.Get(from); ok {
		seen.Put(from)
	}
	if dist < 1 {
		return seen
	}

	origin := from.Center()
	visit := func(hit grid.RayHit[Tile]) bool {
		seen.Put(hit.Cell)
		return !hit.Value.Blocks
	}
	box := point.BoxAt(from).ExpandBy(point.Pt(dist, dist))
	for x := box.TopLeft.X; x <= box.BottomRight.X; x++ {
		g.CastRay(origin, point.Pt(x, box.TopLeft.Y).Center(), visit)
		g.CastRay(origin, point.Pt(x, box.BottomRight.Y).Center(), visit)
	}
	for y := box.TopLeft.Y + 1; y < box.BottomRight.Y; y++ {
		g.CastRay(origin, point.Pt(box.TopLeft.X, y).Center(), visit)
		g.CastRay(origin, point.Pt(box.BottomRight.X, y).Center(), visit)
	}
	return seen
}
