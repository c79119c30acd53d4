// Package grid implements a sparse, unbounded two dimensional grid that stores
// at most one value per int32 coordinate.
//
// Cells live in fixed ChunkSize×ChunkSize chunks that are created on first
// insert, so a grid only spends memory on the regions actually written to,
// however far apart they are. Coordinates are mapped onto chunks by biasing
// each signed component into unsigned space (see Index), which makes chunk
// division behave the same on both sides of the origin.
//
// Besides point access, a Grid offers chunk and cell cursors, line traversal
// (CastRay), 4-connected shortest path search (AStar), and a binary encoding
// of its contents (Encode, Decode).
//
// Basic use:
//
//	var g grid.Grid[Tile]
//	g.Insert(point.Pt(3, -7), Tile{Blocks: true})
//	if t, ok := g.Get(point.Pt(3, -7)); ok {
//		...
//	}
//	for it := g.Cells(); it.Next(); {
//		fmt.Println(it.Point(), it.Value())
//	}
package grid
