package grid

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/jcorbin/endlessgrid/point"
)

type pathNode struct {
	pt   point.Point
	cost int64
	est  int64
	seq  uint64
}

func pathNodeLess(a, b pathNode) bool {
	if a.est != b.est {
		return a.est < b.est
	}
	return a.seq < b.seq
}

// AStar finds a shortest 4-connected path from start to end, returning every
// point along it, start and end included. Each step costs 1 and the search is
// guided by manhattan distance to end.
//
// Only cells holding a value are candidates; passable is called with each
// candidate neighbor and its value, and decides whether the path may enter
// it. The start cell itself is never checked. Among equally promising
// candidates the earliest discovered is expanded first.
//
// Returns false if no path exists.
func (g *Grid[T]) AStar(start, end point.Point, passable func(point.Point, *T) bool) ([]point.Point, bool) {
	if start == end {
		return []point.Point{start}, true
	}

	var seq uint64
	open := heap.New[pathNode](pathNodeLess)
	closed := mapset.New[point.Point]()
	cost := map[point.Point]int64{start: 0}
	from := make(map[point.Point]point.Point)

	open.Push(pathNode{pt: start, est: start.Manhattan(end)})
	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed.Has(cur.pt) {
			continue
		}
		if cur.pt == end {
			return tracePath(from, start, end), true
		}
		closed.Put(cur.pt)

		for _, next := range cur.pt.Cardinals() {
			if next.Manhattan(cur.pt) != 1 || closed.Has(next) {
				continue // wrapped around the int32 edge, or already expanded
			}
			val := g.GetMut(next)
			if val == nil || !passable(next, val) {
				continue
			}
			c := cur.cost + 1
			if prior, seen := cost[next]; seen && prior <= c {
				continue
			}
			cost[next] = c
			from[next] = cur.pt
			seq++
			open.Push(pathNode{
				pt:   next,
				cost: c,
				est:  c + next.Manhattan(end),
				seq:  seq,
			})
		}
	}
	return nil, false
}

func tracePath(from map[point.Point]point.Point, start, end point.Point) []point.Point {
	var path []point.Point
	for pt := end; pt != start; pt = from[pt] {
		path = append(path, pt)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
