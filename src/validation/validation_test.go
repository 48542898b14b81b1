package validation

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanLines(t *testing.T) {
	require.Equal(t, []string{"a", "b c", "d"}, CleanLines([]string{" a ", "", "b c\r", "   ", "\td"}))
	require.Empty(t, CleanLines(nil))
}

func TestParseAccountHash(t *testing.T) {
	id, err := ParseAccountHash("0x0102030405", 3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, id)

	id, err = ParseAccountHash("a0b0c0", 2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xa0, 0xb0}, id)

	_, err = ParseAccountHash("0x01", 2)
	require.Error(t, err)
	_, err = ParseAccountHash("zz", 1)
	require.Error(t, err)
	_, err = ParseAccountHash("abc", 1)
	require.Error(t, err)
}

func TestValidateIDRange(t *testing.T) {
	ok, at := ValidateIDRange([][]byte{{1}, {2}, {3}})
	require.True(t, ok)
	require.Equal(t, -1, at)

	ok, at = ValidateIDRange([][]byte{{1}, {3}, {3}})
	require.False(t, ok)
	require.Equal(t, 2, at)

	ok, _ = ValidateIDRange(nil)
	require.True(t, ok)
}

func TestIsValidIDSet(t *testing.T) {
	ok, err := IsValidIDSet("test", []byte{8, 0, 0, 0, 1, 2, 3, 4}, 2)
	require.True(t, ok)
	require.NoError(t, err)

	ok, err = IsValidIDSet("empty", []byte{4, 0, 0, 0}, 20)
	require.True(t, ok)
	require.NoError(t, err)

	for name, raw := range map[string][]byte{
		"header":    {9, 0, 0, 0, 1, 2, 3, 4},
		"short":     {4, 0},
		"width":     {7, 0, 0, 0, 1, 2, 3},
		"unordered": {8, 0, 0, 0, 3, 4, 1, 2},
	} {
		ok, err := IsValidIDSet(name, raw, 2)
		require.False(t, ok, name)
		require.Error(t, err, name)
	}
}

func TestIsValidEntity(t *testing.T) {
	apply, _ := hex.DecodeString("140000000c000000100000000100000080160000")
	ok, err := IsValidEntity("ConfigCellApply", apply)
	require.True(t, ok)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"header":      "150000000c000000100000000100000080160000",
		"no fields":   "04000000",
		"first field": "1400000010000000100000000100000080160000",
		"descending":  "140000000c000000080000000100000080160000",
		"past end":    "140000000c000000180000000100000080160000",
	} {
		b, err := hex.DecodeString(raw)
		require.NoError(t, err, name)
		ok, err := IsValidEntity(name, b)
		require.False(t, ok, name)
		require.Error(t, err, name)
	}
}
