package grid

import (
	"sort"

	"github.com/jcorbin/endlessgrid/point"
)

// Grid is a sparse, unbounded 2D grid holding at most one T per point.
// Cells are stored in lazily created chunks, so memory is only spent on
// regions that have been written to.
//
// The zero value is an empty grid ready for use. A Grid is not safe for
// concurrent use; callers must serialize access.
type Grid[T any] struct {
	chunks map[ChunkIndex]*Chunk[T]
}

// New returns an empty grid.
func New[T any]() *Grid[T] {
	return &Grid[T]{chunks: make(map[ChunkIndex]*Chunk[T], 64)}
}

// Get returns the value stored at pt, if any.
func (g *Grid[T]) Get(pt point.Point) (val T, ok bool) {
	if p := g.GetMut(pt); p != nil {
		return *p, true
	}
	return val, false
}

// GetMut returns a pointer to the value stored at pt, or nil if none has been
// inserted. The pointer remains valid until the owning chunk is cleared.
func (g *Grid[T]) GetMut(pt point.Point) *T {
	ix := MakeIndex(pt)
	ch := g.chunks[ix.Chunk()]
	if ch == nil {
		return nil
	}
	return ch.GetLocalMut(ix.Slot())
}

// Insert stores val at pt, creating the owning chunk if necessary.
func (g *Grid[T]) Insert(pt point.Point, val T) {
	ix := MakeIndex(pt)
	ci := ix.Chunk()
	ch := g.chunks[ci]
	if ch == nil {
		if g.chunks == nil {
			g.chunks = make(map[ChunkIndex]*Chunk[T])
		}
		ch = newChunk[T](ci)
		g.chunks[ci] = ch
	}
	ch.InsertLocal(ix.Slot(), val)
}

// Len returns the number of occupied cells; it is linear in the number of
// chunks, so callers that need it often should cache it.
func (g *Grid[T]) Len() int {
	n := 0
	for _, ch := range g.chunks {
		n += ch.Len()
	}
	return n
}

// NumChunks returns the number of chunks that have been created.
func (g *Grid[T]) NumChunks() int { return len(g.chunks) }

// ChunkAt returns the chunk owning pt, or nil if no such chunk exists.
func (g *Grid[T]) ChunkAt(pt point.Point) *Chunk[T] {
	return g.chunks[MakeIndex(pt).Chunk()]
}

// Chunk returns the chunk with the given index, or nil.
func (g *Grid[T]) Chunk(ci ChunkIndex) *Chunk[T] { return g.chunks[ci] }

// Bounds returns the box covering every chunk that holds at least one value.
// The box has chunk granularity; ok is false if the grid is empty.
func (g *Grid[T]) Bounds() (box point.Box, ok bool) {
	for _, ch := range g.chunks {
		if ch.Len() == 0 {
			continue
		}
		if !ok {
			box, ok = ch.Bounds(), true
			continue
		}
		box = box.Union(ch.Bounds())
	}
	return box, ok
}

// Chunks returns a new cursor over the grid's chunks. The set of chunks is
// captured when the cursor is created, and visited in ascending row-major
// ChunkIndex order.
func (g *Grid[T]) Chunks() Chunks[T] {
	keys := make([]ChunkIndex, 0, len(g.chunks))
	for ci := range g.chunks {
		keys = append(keys, ci)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return Chunks[T]{g: g, keys: keys, i: -1}
}

// Chunks is a cursor over the chunks of a grid.
type Chunks[T any] struct {
	g    *Grid[T]
	keys []ChunkIndex
	i    int
}

// Next advances to the next chunk, returning false when iteration is done.
func (it *Chunks[T]) Next() bool {
	for it.i++; it.i < len(it.keys); it.i++ {
		if it.g.chunks[it.keys[it.i]] != nil {
			return true
		}
	}
	return false
}

// Reset resets the cursor, causing it to start over.
func (it *Chunks[T]) Reset() { it.i = -1 }

// Count counts how many chunks remain to be iterated, without advancing the
// cursor.
func (it Chunks[T]) Count() int {
	n := 0
	for it.Next() {
		n++
	}
	return n
}

// Chunk returns the current chunk, or nil if iteration is done.
func (it Chunks[T]) Chunk() *Chunk[T] {
	if it.i >= 0 && it.i < len(it.keys) {
		return it.g.chunks[it.keys[it.i]]
	}
	return nil
}

// Cells returns a new cursor over every occupied cell of the grid, chunk by
// chunk.
func (g *Grid[T]) Cells() Cells[T] { return Cells[T]{chunks: g.Chunks()} }

// Cells is a cursor over the occupied cells of a grid.
type Cells[T any] struct {
	chunks Chunks[T]
	ChunkIter[T]
}

// Next advances to the next occupied cell, returning false when iteration is
// done.
func (it *Cells[T]) Next() bool {
	for {
		if it.ChunkIter.Next() {
			return true
		}
		if !it.chunks.Next() {
			it.ChunkIter = ChunkIter[T]{}
			return false
		}
		it.ChunkIter = it.chunks.Chunk().Iter()
	}
}

// Reset resets the cursor, causing it to start over.
func (it *Cells[T]) Reset() {
	it.chunks.Reset()
	it.ChunkIter = ChunkIter[T]{}
}
