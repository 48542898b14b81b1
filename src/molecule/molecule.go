// Package molecule encodes the handful of molecule shapes the config cells
// use: fixed arrays, fixvec<byte>, structs, tables and dynvecs. All
// integers are little-endian.
package molecule

import (
	"encoding/binary"
)

const NUMBER_SIZE = 4

func Uint8(v uint8) []byte {
	return []byte{v}
}

func Uint32(v uint32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, v)
	return out
}

func Uint64(v uint64) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, v)
	return out
}

// Bool is a byte holding 0 or 1.
func Bool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// Bytes is fixvec<byte>: item count followed by the items.
func Bytes(b []byte) []byte {
	out := make([]byte, NUMBER_SIZE, NUMBER_SIZE+len(b))
	binary.LittleEndian.PutUint32(out, uint32(len(b)))
	return append(out, b...)
}

// Struct concatenates fixed-size fields.
func Struct(fields ...[]byte) []byte {
	size := 0
	for _, f := range fields {
		size += len(f)
	}
	out := make([]byte, 0, size)
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}

// Table writes the full size, one offset per field, then the fields.
func Table(fields ...[]byte) []byte {
	return offsetted(fields)
}

// Dynvec has the same layout as a table; an empty one is just its size.
func Dynvec(items ...[]byte) []byte {
	return offsetted(items)
}

// Option is empty for None and the inner bytes for Some.
func Option(inner []byte) []byte {
	if inner == nil {
		return []byte{}
	}
	return inner
}

func offsetted(parts [][]byte) []byte {
	headerSize := NUMBER_SIZE * (1 + len(parts))
	total := headerSize
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, headerSize, total)
	binary.LittleEndian.PutUint32(out, uint32(total))
	offset := headerSize
	for i, p := range parts {
		binary.LittleEndian.PutUint32(out[NUMBER_SIZE*(i+1):], uint32(offset))
		offset += len(p)
	}
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// TableFieldCount reads the number of fields of an encoded table or dynvec.
func TableFieldCount(raw []byte) int {
	if len(raw) < NUMBER_SIZE {
		return 0
	}
	total := binary.LittleEndian.Uint32(raw)
	if total == NUMBER_SIZE || len(raw) < 2*NUMBER_SIZE {
		return 0
	}
	return int(binary.LittleEndian.Uint32(raw[NUMBER_SIZE:]))/NUMBER_SIZE - 1
}
