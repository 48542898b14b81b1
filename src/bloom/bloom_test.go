package bloom

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/overline-mining/dasgen/src/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBloomSmallFilter(t *testing.T) {
	f, err := New(80, 4)
	require.NoError(t, err)
	require.Len(t, f.Bytes(), 10)

	// an empty filter says definitely-not-present for everything
	require.False(t, f.MightContain([]byte("a")))

	for _, item := range []string{"a", "b", "c"} {
		f.Insert([]byte(item))
	}
	require.Equal(t, uint64(3), f.Inserted())
	require.True(t, f.MightContain([]byte("a")))
	require.True(t, f.MightContain([]byte("b")))
	require.True(t, f.MightContain([]byte("c")))

	z := f.MightContain([]byte("z"))
	for i := 0; i < 5; i++ {
		require.Equal(t, z, f.MightContain([]byte("z")))
	}
}

func TestBloomExportIsFixed(t *testing.T) {
	f, err := New(80, 4)
	require.NoError(t, err)
	for _, item := range []string{"a", "b", "c"} {
		f.Insert([]byte(item))
	}
	require.Equal(t, "043c0002000004002081", hex.EncodeToString(f.Bytes()))
	require.False(t, f.MightContain([]byte("z")))
}

func TestBloomLSB0Packing(t *testing.T) {
	// "x" lands on bits 2, 3 and 1 of a 13 bit filter
	f, err := New(13, 3)
	require.NoError(t, err)
	f.Insert([]byte("x"))
	require.Equal(t, []byte{0x0e, 0x00}, f.Bytes())
}

func TestBloomNoFalseNegatives(t *testing.T) {
	for _, tc := range []struct {
		bits uint64
		k    uint8
	}{
		{1, 1}, {7, 2}, {64, 1}, {1000, 7}, {96000, 7},
	} {
		f, err := New(tc.bits, tc.k)
		require.NoError(t, err)
		items := make([][]byte, 0, 300)
		for i := 0; i < 300; i++ {
			items = append(items, []byte(fmt.Sprintf("account-%d", i)))
		}
		for _, item := range items {
			f.Insert(item)
		}
		for _, item := range items {
			require.True(t, f.MightContain(item), "bits=%d k=%d item=%s", tc.bits, tc.k, item)
		}
	}
}

func TestBloomInsertIsMonotonic(t *testing.T) {
	f, err := New(256, 5)
	require.NoError(t, err)
	prev := f.Bytes()
	for i := 0; i < 100; i++ {
		f.Insert([]byte{byte(i), byte(i >> 8)})
		cur := f.Bytes()
		for j := range cur {
			require.Equal(t, prev[j], cur[j]&prev[j])
		}
		prev = cur
	}
}

func TestBloomExportIsACopy(t *testing.T) {
	f, err := New(16, 2)
	require.NoError(t, err)
	out := f.Bytes()
	out[0] = 0xff
	require.Equal(t, []byte{0, 0}, f.Bytes())
}

func TestBloomRejectsDegenerateParameters(t *testing.T) {
	var paramErr *common.InvalidParametersError

	_, err := New(0, 3)
	require.True(t, errors.As(err, &paramErr))

	_, err = New(80, 0)
	require.True(t, errors.As(err, &paramErr))

	_, err = New(1<<33, 3)
	require.True(t, errors.As(err, &paramErr))
}

func TestBloomFromBytes(t *testing.T) {
	f, err := New(1000, 7)
	require.NoError(t, err)
	f.Insert([]byte("alice"))

	g, err := FromBytes(f.Bytes(), 1000, 7)
	require.NoError(t, err)
	require.True(t, g.MightContain([]byte("alice")))

	_, err = FromBytes(f.Bytes()[1:], 1000, 7)
	require.Error(t, err)
}

func TestFalsePositiveRate(t *testing.T) {
	require.InDelta(t, 0.0100, FalsePositiveRate(192000, 7, 20000), 0.0005)
	require.InDelta(t, 0.0100, FalsePositiveRate(96000, 7, 10000), 0.0005)
	require.Equal(t, float64(0), FalsePositiveRate(100, 3, 0))

	f, err := New(96000, 7)
	require.NoError(t, err)
	require.Equal(t, FalsePositiveRate(96000, 7, 10), f.FalsePositiveRate(10))
}
