// Package point provides integer grid coordinates, bounding boxes, and
// floating point positions within grid space.
package point

import "fmt"

// Point represents a cell coordinate in <X,Y> 2-space; each component spans
// the full int32 range.
type Point struct{ X, Y int32 }

// Zero is the origin, the zero value of Point.
var Zero = Point{}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point { return Point{X: x, Y: y} }

func (pt Point) String() string { return fmt.Sprintf("(%d,%d)", pt.X, pt.Y) }

// Less returns true if this point's X or Y component is less than the other's.
func (pt Point) Less(other Point) bool {
	return pt.Y < other.Y || pt.X < other.X
}

// Clamp returns a copy of this point with its X and Y components guaranteed to
// be no smaller than min's nor larger than max's.
func (pt Point) Clamp(min, max Point) Point {
	if pt.X < min.X {
		pt.X = min.X
	}
	if pt.Y < min.Y {
		pt.Y = min.Y
	}
	if pt.X > max.X {
		pt.X = max.X
	}
	if pt.Y > max.Y {
		pt.Y = max.Y
	}
	return pt
}

// Add adds another point's values to a copy of this point, returning the copy.
func (pt Point) Add(other Point) Point {
	pt.X += other.X
	pt.Y += other.Y
	return pt
}

// Sub subtracts another point's values from a copy of this point, returning
// the copy.
func (pt Point) Sub(other Point) Point {
	pt.X -= other.X
	pt.Y -= other.Y
	return pt
}

// Abs returns a copy of this point with its values non-negative.
func (pt Point) Abs() Point {
	if pt.X < 0 {
		pt.X = -pt.X
	}
	if pt.Y < 0 {
		pt.Y = -pt.Y
	}
	return pt
}

// Manhattan returns the taxicab distance between two points. The result is
// computed in 64 bits so that it can not overflow for any pair of points.
func (pt Point) Manhattan(other Point) int64 {
	return abs64(int64(pt.X)-int64(other.X)) + abs64(int64(pt.Y)-int64(other.Y))
}

// Cardinals returns the four edge-adjacent neighbors of the point, in the order
// left, right, up, down.
func (pt Point) Cardinals() [4]Point {
	return [4]Point{
		{pt.X - 1, pt.Y},
		{pt.X + 1, pt.Y},
		{pt.X, pt.Y - 1},
		{pt.X, pt.Y + 1},
	}
}

// Vec returns the floating point position of the point's top-left corner.
func (pt Point) Vec() Vec { return Vec{float64(pt.X), float64(pt.Y)} }

// Center returns the floating point position of the point's cell center.
func (pt Point) Center() Vec { return Vec{float64(pt.X) + 0.5, float64(pt.Y) + 0.5} }

func abs64(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}
