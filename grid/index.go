package grid

import (
	"fmt"

	"github.com/jcorbin/endlessgrid/point"
)

const (
	// ChunkSize is the edge length of a chunk's square block of cells.
	ChunkSize = 16

	// ChunkArea is the number of cells held by one chunk.
	ChunkArea = ChunkSize * ChunkSize

	// bias shifts the signed int32 range onto [0, 2^32).
	bias = 1 << 31
)

// Index is the biased unsigned form of a Point: each component is shifted by
// 2^31 so that unsigned division and remainder behave like signed floor
// division. The mapping is a bijection over the full int32 range.
type Index struct{ X, Y uint32 }

// ChunkIndex identifies a chunk: an Index divided by ChunkSize.
type ChunkIndex struct{ X, Y uint32 }

// MakeIndex encodes a point as an Index.
func MakeIndex(pt point.Point) Index {
	return Index{biasComponent(pt.X), biasComponent(pt.Y)}
}

// Point reconstructs the point encoded by the index.
func (ix Index) Point() point.Point {
	return point.Point{X: unbiasComponent(ix.X), Y: unbiasComponent(ix.Y)}
}

// Chunk returns the index of the chunk containing the indexed cell.
func (ix Index) Chunk() ChunkIndex {
	return ChunkIndex{ix.X / ChunkSize, ix.Y / ChunkSize}
}

// Slot returns the cell's row-major offset within its chunk, in [0, ChunkArea).
func (ix Index) Slot() int {
	return int(ix.Y%ChunkSize)*ChunkSize + int(ix.X%ChunkSize)
}

func (ix Index) String() string { return fmt.Sprintf("Index%v", ix.Point()) }

// TopLeft returns the first cell covered by the chunk.
func (ci ChunkIndex) TopLeft() point.Point {
	return Index{ci.X * ChunkSize, ci.Y * ChunkSize}.Point()
}

// BottomRight returns the last cell covered by the chunk.
func (ci ChunkIndex) BottomRight() point.Point {
	return Index{ci.X*ChunkSize + ChunkSize - 1, ci.Y*ChunkSize + ChunkSize - 1}.Point()
}

// Cell returns the point stored at the given slot of the chunk.
func (ci ChunkIndex) Cell(slot int) point.Point {
	return Index{
		ci.X*ChunkSize + uint32(slot%ChunkSize),
		ci.Y*ChunkSize + uint32(slot/ChunkSize),
	}.Point()
}

func (ci ChunkIndex) less(other ChunkIndex) bool {
	return ci.Y < other.Y || (ci.Y == other.Y && ci.X < other.X)
}

func (ci ChunkIndex) String() string { return fmt.Sprintf("Chunk(%d,%d)", ci.X, ci.Y) }

func biasComponent(v int32) uint32 { return uint32(int64(v) + bias) }

func unbiasComponent(u uint32) int32 { return int32(int64(u) - bias) }
