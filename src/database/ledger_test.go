package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/overline-mining/dasgen/src/dashash"
	"github.com/overline-mining/dasgen/src/emitter"
	"github.com/overline-mining/dasgen/src/witness"
	"github.com/stretchr/testify/require"
)

func openLedger(t *testing.T) (*Ledger, string) {
	fn := filepath.Join(t.TempDir(), "ledger.boltdb")
	l := &Ledger{Config: DefaultLedgerConfig()}
	require.NoError(t, l.Open(fn))
	t.Cleanup(func() { l.Close() })
	return l, fn
}

func emitAll(t *testing.T, payloads map[witness.DataType][]byte, order []witness.DataType) []emitter.Output {
	e := emitter.New(dashash.Blake2b256, 32000, emitter.CONFIG_ACTION)
	out := make([]emitter.Output, 0, len(order))
	for _, d := range order {
		o, err := e.Emit(d, payloads[d])
		require.NoError(t, err)
		out = append(out, o)
	}
	return out
}

func TestLedgerFirstRunIsAllChanged(t *testing.T) {
	l, _ := openLedger(t)
	order := []witness.DataType{witness.ConfigCellApply, witness.ConfigCellIncome}
	outputs := emitAll(t, map[witness.DataType][]byte{
		witness.ConfigCellApply:  {1},
		witness.ConfigCellIncome: {2},
	}, order)

	changes, err := l.Diff("testnet", outputs)
	require.NoError(t, err)
	require.Equal(t, order, changes.Changed)
	require.Empty(t, changes.Unchanged)
	require.False(t, changes.NetworkSwitched)
}

func TestLedgerRecordAndDiff(t *testing.T) {
	l, fn := openLedger(t)
	order := []witness.DataType{witness.ConfigCellApply, witness.ConfigCellIncome, witness.ConfigCellCharSetEn}
	payloads := map[witness.DataType][]byte{
		witness.ConfigCellApply:     {1},
		witness.ConfigCellIncome:    {2},
		witness.ConfigCellCharSetEn: []byte(strings.Repeat("a\x00", 500)),
	}
	first := emitAll(t, payloads, order)
	require.NoError(t, l.Record("testnet", "v0.3.1", first))

	hash, ok, err := l.ContentHash(witness.ConfigCellIncome)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, first[1].ContentHashHex, hash)
	// second lookup is served from the cache
	hash, ok, err = l.ContentHash(witness.ConfigCellIncome)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, first[1].ContentHashHex, hash)

	line, ok, err := l.Line(witness.ConfigCellCharSetEn)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, first[2].String(), line)

	payloads[witness.ConfigCellIncome] = []byte{3}
	second := emitAll(t, payloads, order)
	changes, err := l.Diff("testnet", second)
	require.NoError(t, err)
	require.Equal(t, []witness.DataType{witness.ConfigCellIncome}, changes.Changed)
	require.Equal(t, []witness.DataType{witness.ConfigCellApply, witness.ConfigCellCharSetEn}, changes.Unchanged)

	// survives a reopen
	require.NoError(t, l.Close())
	reopened := &Ledger{}
	require.NoError(t, reopened.Open(fn))
	defer reopened.Close()
	network, err := reopened.LastNetwork()
	require.NoError(t, err)
	require.Equal(t, "testnet", network)

	changes, err = reopened.Diff("mainnet", first)
	require.NoError(t, err)
	require.True(t, changes.NetworkSwitched)
	require.Len(t, changes.Changed, 3)
}

func TestLedgerRecordReplacesPreviousRun(t *testing.T) {
	l, _ := openLedger(t)
	all := emitAll(t, map[witness.DataType][]byte{
		witness.ConfigCellApply:  {1},
		witness.ConfigCellIncome: {2},
	}, []witness.DataType{witness.ConfigCellApply, witness.ConfigCellIncome})
	require.NoError(t, l.Record("testnet", "v0.3.1", all))
	require.NoError(t, l.Record("testnet", "v0.3.1", all[:1]))

	_, ok, err := l.ContentHash(witness.ConfigCellIncome)
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, err = l.Line(witness.ConfigCellIncome)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLineEncoding(t *testing.T) {
	for _, line := range []string{
		"",
		"0x 0x",
		strings.Repeat("0x6461736e000000", 200),
	} {
		stored, err := encodeLine([]byte(line))
		require.NoError(t, err)
		decoded, err := decodeLine(stored)
		require.NoError(t, err)
		require.Equal(t, line, string(decoded))
	}

	compressible := []byte(strings.Repeat("0x6461736e000000", 200))
	stored, err := encodeLine(compressible)
	require.NoError(t, err)
	require.Equal(t, lineLZ4, stored[0])
	require.Less(t, len(stored), len(compressible))

	_, err = decodeLine([]byte{9, 0, 0, 0, 0})
	require.Error(t, err)
	_, err = decodeLine([]byte{lineRaw, 3, 0, 0, 0, 'a'})
	require.Error(t, err)
}
