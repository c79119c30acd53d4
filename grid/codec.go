package grid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Blob layout:
//
//	magic   [4]byte "EGRD"
//	version uint16
//	crc32   uint32  IEEE, over payload
//	length  uint32  payload length
//	payload msgpack snapshot
const (
	codecVersion   = 1
	codecHeaderLen = 4 + 2 + 4 + 4

	maxChunkIndex = (1<<32 - 1) / ChunkSize
)

var codecMagic = [4]byte{'E', 'G', 'R', 'D'}

// ErrCorrupt is wrapped by every error returned when decoding a malformed or
// foreign blob.
var ErrCorrupt = errors.New("corrupt grid data")

type snapshot[T any] struct {
	Chunks []chunkRecord[T] `msgpack:"chunks"`
}

type chunkRecord[T any] struct {
	X      uint32   `msgpack:"x"`
	Y      uint32   `msgpack:"y"`
	Slots  []uint16 `msgpack:"slots"`
	Values []T      `msgpack:"values"`
}

// Encode writes the grid's chunks to w. Values are serialized with msgpack, so
// T must be msgpack encodable.
func (g *Grid[T]) Encode(w io.Writer) error {
	var snap snapshot[T]
	snap.Chunks = make([]chunkRecord[T], 0, len(g.chunks))
	for it := g.Chunks(); it.Next(); {
		ch := it.Chunk()
		rec := chunkRecord[T]{
			X:      ch.index.X,
			Y:      ch.index.Y,
			Slots:  make([]uint16, 0, ch.Len()),
			Values: make([]T, 0, ch.Len()),
		}
		for ci := ch.Iter(); ci.Next(); {
			rec.Slots = append(rec.Slots, uint16(ci.Slot()))
			rec.Values = append(rec.Values, ci.Value())
		}
		snap.Chunks = append(snap.Chunks, rec)
	}

	payload, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encode grid: %w", err)
	}

	var header [codecHeaderLen]byte
	copy(header[0:4], codecMagic[:])
	binary.BigEndian.PutUint16(header[4:6], codecVersion)
	binary.BigEndian.PutUint32(header[6:10], crc32.ChecksumIEEE(payload))
	binary.BigEndian.PutUint32(header[10:14], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write grid header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write grid payload: %w", err)
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (g *Grid[T]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The grid's content
// is replaced only if decoding succeeds.
func (g *Grid[T]) UnmarshalBinary(data []byte) error {
	dec, err := Decode[T](bytes.NewReader(data))
	if err != nil {
		return err
	}
	g.chunks = dec.chunks
	return nil
}

// Decode reads a grid written by Encode. Any malformation fails the whole
// decode with an error wrapping ErrCorrupt; no partial grid is returned.
func Decode[T any](r io.Reader) (*Grid[T], error) {
	var header [codecHeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, corruptf("read header: %w", err)
	}
	if !bytes.Equal(header[0:4], codecMagic[:]) {
		return nil, corruptf("bad magic %q", header[0:4])
	}
	if v := binary.BigEndian.Uint16(header[4:6]); v != codecVersion {
		return nil, corruptf("unsupported version %d", v)
	}
	sum := binary.BigEndian.Uint32(header[6:10])
	n := binary.BigEndian.Uint32(header[10:14])

	payload, err := io.ReadAll(io.LimitReader(r, int64(n)))
	if err != nil {
		return nil, corruptf("read payload: %w", err)
	}
	if len(payload) != int(n) {
		return nil, corruptf("short payload, have %d of %d bytes", len(payload), n)
	}
	if crc32.ChecksumIEEE(payload) != sum {
		return nil, corruptf("checksum mismatch")
	}

	var snap snapshot[T]
	if err := msgpack.Unmarshal(payload, &snap); err != nil {
		return nil, corruptf("decode payload: %w", err)
	}

	g := &Grid[T]{chunks: make(map[ChunkIndex]*Chunk[T], len(snap.Chunks))}
	for _, rec := range snap.Chunks {
		ci := ChunkIndex{rec.X, rec.Y}
		if rec.X > maxChunkIndex || rec.Y > maxChunkIndex {
			return nil, corruptf("%v out of range", ci)
		}
		if _, dup := g.chunks[ci]; dup {
			return nil, corruptf("duplicate %v", ci)
		}
		if len(rec.Slots) != len(rec.Values) {
			return nil, corruptf("%v has %d slots but %d values", ci, len(rec.Slots), len(rec.Values))
		}
		ch := newChunk[T](ci)
		for i, s := range rec.Slots {
			if int(s) >= ChunkArea {
				return nil, corruptf("%v slot %d out of range", ci, s)
			}
			if ch.GetLocalMut(int(s)) != nil {
				return nil, corruptf("%v slot %d duplicated", ci, s)
			}
			ch.InsertLocal(int(s), rec.Values[i])
		}
		g.chunks[ci] = ch
	}
	return g, nil
}

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w", ErrCorrupt, fmt.Errorf(format, args...))
}
