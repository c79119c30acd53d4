package point_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/endlessgrid/point"
)

func TestManhattan(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b point.Point
		d    int64
	}{
		{"same", point.Pt(3, 4), point.Pt(3, 4), 0},
		{"axis", point.Pt(0, 0), point.Pt(7, 0), 7},
		{"quadrants", point.Pt(-2, 3), point.Pt(4, -5), 14},
		{"extremes", point.Pt(math.MinInt32, math.MinInt32), point.Pt(math.MaxInt32, math.MaxInt32), 2 * (1<<32 - 1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.d, tc.a.Manhattan(tc.b))
			assert.Equal(t, tc.d, tc.b.Manhattan(tc.a))
		})
	}
}

func TestCardinals(t *testing.T) {
	assert.Equal(t, [4]point.Point{
		point.Pt(4, 5),
		point.Pt(6, 5),
		point.Pt(5, 4),
		point.Pt(5, 6),
	}, point.Pt(5, 5).Cardinals())
}

func TestBox(t *testing.T) {
	b := point.BoxAt(point.Pt(1, 1))
	b = b.ExpandTo(point.Pt(-2, 4))
	assert.Equal(t, point.Box{TopLeft: point.Pt(-2, 1), BottomRight: point.Pt(1, 4)}, b)
	assert.Equal(t, point.Pt(4, 4), b.Size())
	assert.True(t, b.Contains(point.Pt(0, 2)))
	assert.True(t, b.Contains(point.Pt(-2, 4)))
	assert.False(t, b.Contains(point.Pt(2, 2)))
	assert.False(t, b.Contains(point.Pt(0, 0)))

	u := b.Union(point.BoxAt(point.Pt(5, -1)))
	assert.Equal(t, point.Box{TopLeft: point.Pt(-2, -1), BottomRight: point.Pt(5, 4)}, u)
}

func TestVecFloor(t *testing.T) {
	for _, tc := range []struct {
		v  point.Vec
		pt point.Point
	}{
		{point.V(0.5, 0.5), point.Pt(0, 0)},
		{point.V(-0.5, 3.0), point.Pt(-1, 3)},
		{point.V(-1, -1.0001), point.Pt(-1, -2)},
	} {
		pt, ok := tc.v.Floor()
		assert.True(t, ok)
		assert.Equal(t, tc.pt, pt, "floor of %v", tc.v)
	}

	pt, ok := point.V(math.MinInt32, math.MaxInt32+0.75).Floor()
	assert.True(t, ok)
	assert.Equal(t, point.Pt(math.MinInt32, math.MaxInt32), pt)
	for _, v := range []point.Vec{
		point.V(math.MinInt32-0.5, 0),
		point.V(0, math.MaxInt32+1),
		point.V(math.NaN(), 0),
		point.V(0, math.Inf(-1)),
	} {
		_, ok := v.Floor()
		assert.False(t, ok, "floor of %v", v)
	}
	assert.Equal(t, point.V(0.6, 0.8), point.V(3, 4).Normalize())
	assert.Equal(t, point.Vec{}, point.Vec{}.Normalize())
}
