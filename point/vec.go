package point

import (
	"fmt"
	"math"
)

// Vec is a position in grid space measured in cell units; cell (x, y) covers
// [x, x+1) × [y, y+1).
type Vec struct{ X, Y float64 }

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) String() string { return fmt.Sprintf("(%g,%g)", v.X, v.Y) }

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalize returns v scaled to unit length; the zero vector is returned
// unchanged.
func (v Vec) Normalize() Vec {
	if n := v.Len(); n != 0 {
		return Vec{v.X / n, v.Y / n}
	}
	return v
}

// Floor returns the cell containing v; ok is false if that cell lies outside
// the int32 coordinate space, or v is not finite.
func (v Vec) Floor() (pt Point, ok bool) {
	x, y := math.Floor(v.X), math.Floor(v.Y)
	if !inInt32(x) || !inInt32(y) {
		return pt, false
	}
	return Point{int32(x), int32(y)}, true
}

func inInt32(f float64) bool {
	return f >= math.MinInt32 && f <= math.MaxInt32
}
