package grid

import "github.com/jcorbin/endlessgrid/point"

// Chunk holds the cells of one ChunkSize×ChunkSize block. Slot storage is
// allocated on first insert and only released by Clear.
type Chunk[T any] struct {
	index ChunkIndex
	n     int
	slots []slot[T]
}

type slot[T any] struct {
	set bool
	val T
}

func newChunk[T any](ci ChunkIndex) *Chunk[T] {
	return &Chunk[T]{index: ci}
}

// Index returns the chunk's identity.
func (ch *Chunk[T]) Index() ChunkIndex { return ch.index }

// Len returns the number of occupied slots.
func (ch *Chunk[T]) Len() int { return ch.n }

// Allocated returns true if backing storage has been allocated.
func (ch *Chunk[T]) Allocated() bool { return ch.slots != nil }

// Clear discards all values and the backing storage.
func (ch *Chunk[T]) Clear() {
	ch.slots = nil
	ch.n = 0
}

// GetLocal returns the value stored at slot, if any.
func (ch *Chunk[T]) GetLocal(i int) (val T, ok bool) {
	if p := ch.GetLocalMut(i); p != nil {
		return *p, true
	}
	return val, false
}

// GetLocalMut returns a pointer to the value stored at slot, or nil if the
// slot is empty. The pointer is valid until the chunk is cleared.
func (ch *Chunk[T]) GetLocalMut(i int) *T {
	if i < 0 || i >= len(ch.slots) || !ch.slots[i].set {
		return nil
	}
	return &ch.slots[i].val
}

// InsertLocal stores a value at slot, overwriting any prior value.
func (ch *Chunk[T]) InsertLocal(i int, val T) {
	if ch.slots == nil {
		ch.slots = make([]slot[T], ChunkArea)
	}
	s := &ch.slots[i]
	if !s.set {
		s.set = true
		ch.n++
	}
	s.val = val
}

// TopLeft returns the first cell covered by the chunk.
func (ch *Chunk[T]) TopLeft() point.Point { return ch.index.TopLeft() }

// BottomRight returns the last cell covered by the chunk.
func (ch *Chunk[T]) BottomRight() point.Point { return ch.index.BottomRight() }

// Bounds returns the box of cells covered by the chunk.
func (ch *Chunk[T]) Bounds() point.Box {
	return point.Box{TopLeft: ch.TopLeft(), BottomRight: ch.BottomRight()}
}

// Iter returns a new cursor over the chunk's occupied cells in row-major
// order.
func (ch *Chunk[T]) Iter() ChunkIter[T] { return ChunkIter[T]{ch: ch, i: -1} }

// ChunkIter is a cursor over the occupied cells of a chunk.
type ChunkIter[T any] struct {
	ch *Chunk[T]
	i  int
}

// Next advances the cursor to the next occupied cell, and returns true if one
// was found; otherwise iteration is done, and false is returned.
func (it *ChunkIter[T]) Next() bool {
	if it.ch == nil {
		return false
	}
	for it.i++; it.i < len(it.ch.slots); it.i++ {
		if it.ch.slots[it.i].set {
			return true
		}
	}
	return false
}

// Reset resets the cursor, causing it to start over.
func (it *ChunkIter[T]) Reset() { it.i = -1 }

func (it ChunkIter[T]) valid() bool {
	return it.ch != nil && it.i >= 0 && it.i < len(it.ch.slots)
}

// Slot returns the current slot, or -1 if iteration is done.
func (it ChunkIter[T]) Slot() int {
	if it.valid() {
		return it.i
	}
	return -1
}

// Point returns the coordinate of the current cell.
func (it ChunkIter[T]) Point() point.Point {
	if it.valid() {
		return it.ch.index.Cell(it.i)
	}
	return point.Zero
}

// Value returns the current cell's value.
func (it ChunkIter[T]) Value() (val T) {
	if it.valid() {
		val = it.ch.slots[it.i].val
	}
	return val
}

// Ref returns a pointer to the current cell's value, for in-place update; nil
// if iteration is done.
func (it ChunkIter[T]) Ref() *T {
	if it.valid() {
		return &it.ch.slots[it.i].val
	}
	return nil
}
