package grid

import (
	"math"

	"github.com/jcorbin/endlessgrid/point"
)

// RayHit describes one cell visited by CastRay.
type RayHit[T any] struct {
	// Cell is the visited cell.
	Cell point.Point

	// Value points at the cell's stored value.
	Value *T

	// Distance is how far along the ray the cell was entered, in cell units
	// from the start point.
	Distance float64

	// Pos is the position at which the ray entered the cell.
	Pos point.Vec
}

// CastRay walks the segment from start to end through the grid, calling visit
// once for every cell it passes through, in order of increasing distance.
// Traversal stops when visit returns false, when the segment is exhausted, or
// when the ray reaches a cell that holds no value. A ray never wraps around
// the edge of the int32 coordinate space: it ends at the last cell before the
// edge, and a start outside that space visits nothing.
//
// The walk is an incremental DDA traversal: each axis tracks the ray
// parameter of its next cell boundary, and the axis whose boundary is
// strictly nearer advances; when both boundaries are equally near, Y
// advances.
func (g *Grid[T]) CastRay(start, end point.Vec, visit func(RayHit[T]) bool) {
	delta := end.Sub(start)
	limit := delta.Len()
	if !(limit > 0) {
		return
	}
	dir := delta.Normalize()

	cell, ok := start.Floor()
	if !ok {
		return
	}
	stepX, tMaxX, tDeltaX := rayAxis(start.X, dir.X, cell.X)
	stepY, tMaxY, tDeltaY := rayAxis(start.Y, dir.Y, cell.Y)

	dist := 0.0
	for dist <= limit {
		val := g.GetMut(cell)
		if val == nil {
			return
		}
		if !visit(RayHit[T]{
			Cell:     cell,
			Value:    val,
			Distance: dist,
			Pos:      start.Add(dir.Scale(dist)),
		}) {
			return
		}
		if tMaxX < tMaxY {
			if atEdge(cell.X, stepX) {
				return
			}
			cell.X += stepX
			dist = tMaxX
			tMaxX += tDeltaX
		} else {
			if atEdge(cell.Y, stepY) {
				return
			}
			cell.Y += stepY
			dist = tMaxY
			tMaxY += tDeltaY
		}
	}
}

// rayAxis computes, for one axis, the cell step direction, the ray parameter
// of the first boundary crossing, and the parameter increment per cell.
func rayAxis(pos, dir float64, cell int32) (step int32, tMax, tDelta float64) {
	switch {
	case dir > 0:
		tDelta = 1 / dir
		return 1, (float64(cell) + 1 - pos) * tDelta, tDelta
	case dir < 0:
		tDelta = -1 / dir
		return -1, (pos - float64(cell)) * tDelta, tDelta
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

// atEdge reports whether stepping from c would leave the int32 range.
func atEdge(c, step int32) bool {
	return (step < 0 && c == math.MinInt32) || (step > 0 && c == math.MaxInt32)
}
