package witness

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWrapAction(t *testing.T) {
	out := WrapAction("config", nil)
	require.Equal(t, "646173"+"00000000"+"1a0000000c0000001600000006000000636f6e66696700000000", hex.EncodeToString(out))
}

func TestWrapRaw(t *testing.T) {
	out := WrapRaw(ConfigCellCharSetEn, []byte{4, 0, 0, 0})
	require.Equal(t, "646173"+"a2860100"+"04000000", hex.EncodeToString(out))
}

func TestWrapDataOnlyNew(t *testing.T) {
	entity := []byte{0xaa}
	out := WrapData(AccountCellData, &DataEntity{Version: 1, Index: 0, Entity: entity}, nil, nil)
	require.Equal(t, []byte("das"), out[:3])
	require.Equal(t, []byte{1, 0, 0, 0}, out[3:7])

	body := out[7:]
	newEntity := (&DataEntity{Version: 1, Entity: entity}).Encode()
	// header is 16 bytes, old is empty so old and new share an offset
	require.Equal(t, []byte{16, 0, 0, 0}, body[4:8])
	require.Equal(t, []byte{16, 0, 0, 0}, body[8:12])
	require.Equal(t, newEntity, body[16:16+len(newEntity)])
	require.Len(t, body, 16+len(newEntity))
}

func TestDataTypeNames(t *testing.T) {
	require.Equal(t, "ConfigCellCharSetEn", ConfigCellCharSetEn.String())
	require.Equal(t, "ConfigCellPreservedAccount00", PreservedAccountGroupToDataType(0).String())
	require.Equal(t, "ConfigCellPreservedAccount19", PreservedAccountGroupToDataType(19).String())
	require.Equal(t, "DataType(7)", DataType(7).String())
}

func TestParseDataType(t *testing.T) {
	d, err := ParseDataType("ConfigCellMain")
	require.NoError(t, err)
	require.Equal(t, ConfigCellMain, d)

	d, err = ParseDataType("10100")
	require.NoError(t, err)
	require.Equal(t, ConfigCellPreservedAccountFilter, d)

	_, err = ParseDataType("ConfigCellNope")
	require.Error(t, err)
	_, err = ParseDataType("-1")
	require.Error(t, err)
}

func TestDataTypeFromYAML(t *testing.T) {
	var v struct {
		A DataType `yaml:"a"`
		B DataType `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: ConfigCellCharSetJa\nb: 10003\n"), &v))
	require.Equal(t, ConfigCellCharSetJa, v.A)
	require.Equal(t, DataType(10003), v.B)
}
