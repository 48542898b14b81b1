package codec

import (
	"bytes"
	"strings"

	"github.com/overline-mining/dasgen/src/common"
	"github.com/pkg/errors"
)

const SEPARATOR = byte(0x00)

// EncodeNullSeparated writes [global]? item0 00 item1 00 ... itemN 00.
// Every item is checked before anything is written.
func EncodeNullSeparated(category string, items []string, global *uint8) ([]byte, error) {
	size := 0
	for _, item := range items {
		if strings.IndexByte(item, SEPARATOR) >= 0 {
			return nil, &common.InvalidCharacterError{Category: category, Item: item}
		}
		size += len(item) + 1
	}
	out := make([]byte, 0, size+1)
	if global != nil {
		out = append(out, *global)
	}
	for _, item := range items {
		out = append(out, item...)
		out = append(out, SEPARATOR)
	}
	return out, nil
}

// DecodeNullSeparated reverses EncodeNullSeparated. hasGlobal says whether
// the first byte is the global flag.
func DecodeNullSeparated(raw []byte, hasGlobal bool) (items []string, global *uint8, err error) {
	if hasGlobal {
		if len(raw) == 0 {
			return nil, nil, errors.New("null separated list is missing its global flag")
		}
		g := raw[0]
		global = &g
		raw = raw[1:]
	}
	for len(raw) > 0 {
		i := bytes.IndexByte(raw, SEPARATOR)
		if i < 0 {
			return nil, nil, errors.Errorf("trailing %d bytes without a terminator", len(raw))
		}
		items = append(items, string(raw[:i]))
		raw = raw[i+1:]
	}
	return items, global, nil
}
