package codec

import (
	"github.com/pkg/errors"
)

// ConcatFixed joins equal-width ids without separators.
func ConcatFixed(ids [][]byte, width int) ([]byte, error) {
	out := make([]byte, 0, len(ids)*width)
	for i, id := range ids {
		if len(id) != width {
			return nil, errors.Errorf("id %d is %d bytes, expected %d", i, len(id), width)
		}
		out = append(out, id...)
	}
	return out, nil
}

func SplitFixed(raw []byte, width int) ([][]byte, error) {
	if width <= 0 || len(raw)%width != 0 {
		return nil, errors.Errorf("%d bytes is not a whole number of %d byte ids", len(raw), width)
	}
	out := make([][]byte, 0, len(raw)/width)
	for i := 0; i < len(raw); i += width {
		out = append(out, raw[i:i+width])
	}
	return out, nil
}
