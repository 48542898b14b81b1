package codec

import (
	"encoding/binary"

	"github.com/overline-mining/dasgen/src/common"
	"github.com/pkg/errors"
)

// HEADER_SIZE is the width of the self-inclusive little-endian length header.
const HEADER_SIZE = 4

// Record is one configuration category's encoded content.
type Record struct {
	Category uint32
	Payload  []byte
}

// EncodeLengthPrefixed prepends the total length, header included, to
// payload. The result never exceeds limit.
func EncodeLengthPrefixed(category string, payload []byte, limit int) ([]byte, error) {
	total := len(payload) + HEADER_SIZE
	if total > limit {
		return nil, &common.SizeLimitExceededError{Category: category, Size: total, Limit: limit}
	}
	out := make([]byte, total)
	binary.LittleEndian.PutUint32(out, uint32(total))
	copy(out[HEADER_SIZE:], payload)
	return out, nil
}

// DecodeLengthPrefixed returns the payload of a record, checking that the
// header matches the buffer exactly.
func DecodeLengthPrefixed(raw []byte) ([]byte, error) {
	if len(raw) < HEADER_SIZE {
		return nil, errors.Errorf("length-prefixed record of %d bytes is shorter than its header", len(raw))
	}
	total := binary.LittleEndian.Uint32(raw)
	if int(total) != len(raw) {
		return nil, errors.Errorf("length header says %d bytes, record has %d", total, len(raw))
	}
	return raw[HEADER_SIZE:], nil
}
