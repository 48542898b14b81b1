package sharding

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/rand"
	"testing"

	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/dashash"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// leadingByteHash makes the bucket of "<n>-..." names predictable.
func leadingByteHash(data []byte) [32]byte {
	sum := dashash.Blake2b256(data)
	var lead int
	fmt.Sscanf(string(data), "%d-", &lead)
	sum[0] = byte(lead)
	return sum
}

func testParams(buckets, capacity int) Params {
	return Params{
		Category:         "ConfigCellPreservedAccount",
		BaseCategory:     10000,
		BucketCount:      buckets,
		Capacity:         capacity,
		AccountIDLength:  10,
		WitnessSizeLimit: 16000,
	}
}

func TestShardAliceAndBob(t *testing.T) {
	records, err := Shard([]string{"alice", "bob"}, testParams(2, 100), dashash.Blake2b256)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// 0x5b and 0x9f are both odd, so bucket 0 is empty
	require.Equal(t, uint32(10000), records[0].Category)
	require.Equal(t, []byte{4, 0, 0, 0}, records[0].Payload)

	require.Equal(t, uint32(10001), records[1].Category)
	require.Equal(t, uint32(4+10*2), binary.LittleEndian.Uint32(records[1].Payload[:4]))
	require.Equal(t, mustHex(t, "5bc4234fbb5f80f9dc83"), records[1].Payload[4:14])
	require.Equal(t, mustHex(t, "9f769196171c15c6fe28"), records[1].Payload[14:24])
}

func TestShardEveryRecordSelfDescribes(t *testing.T) {
	names := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		names = append(names, fmt.Sprintf("account%04d", i))
	}
	records, err := Shard(names, testParams(20, 100), dashash.Blake2b256)
	require.NoError(t, err)
	require.Len(t, records, 20)

	total := 0
	for i, r := range records {
		require.Equal(t, uint32(10000+i), r.Category)
		size := int(binary.LittleEndian.Uint32(r.Payload[:4]))
		require.Equal(t, len(r.Payload), size)
		require.Zero(t, (size-4)%10)
		total += (size - 4) / 10
	}
	require.Equal(t, 500, total)

	for _, name := range names[:50] {
		ok, err := Contains(records, name, 10, dashash.Blake2b256)
		require.NoError(t, err)
		require.True(t, ok, name)
	}
	ok, err := Contains(records, "not-reserved", 10, dashash.Blake2b256)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestShardIsIndependentOfInputOrder(t *testing.T) {
	names := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		names = append(names, fmt.Sprintf("name-%d", i))
	}
	first, err := Shard(names, testParams(7, 100), dashash.Blake2b256)
	require.NoError(t, err)

	shuffled := append([]string(nil), names...)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	// duplicates do not change the set
	shuffled = append(shuffled, names[:10]...)

	second, err := Shard(shuffled, testParams(7, 100), dashash.Blake2b256)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestShardOverflowIsFatal(t *testing.T) {
	names := []string{"3-a", "3-b", "3-c", "1-a", "5-a"}
	records, err := Shard(names, testParams(2, 2), leadingByteHash)
	require.Nil(t, records)

	var overflow *common.BucketOverflowError
	require.True(t, errors.As(err, &overflow))
	require.Equal(t, 1, overflow.Index)
	require.Equal(t, 5, overflow.Count)
	require.Equal(t, 2, overflow.Capacity)
}

func TestShardCapacityIsInclusive(t *testing.T) {
	records, err := Shard([]string{"2-a", "2-b", "3-a"}, testParams(2, 2), leadingByteHash)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, uint32(24), binary.LittleEndian.Uint32(records[0].Payload))
	require.Equal(t, uint32(14), binary.LittleEndian.Uint32(records[1].Payload))
}

func TestShardSizeLimit(t *testing.T) {
	p := testParams(1, 10)
	p.WitnessSizeLimit = 4 + 10*2
	_, err := Shard([]string{"a", "b"}, p, dashash.Blake2b256)
	require.NoError(t, err)

	_, err = Shard([]string{"a", "b", "c"}, p, dashash.Blake2b256)
	var sizeErr *common.SizeLimitExceededError
	require.True(t, errors.As(err, &sizeErr))
	require.Equal(t, 34, sizeErr.Size)
}

func TestShardRejectsBadParams(t *testing.T) {
	var paramErr *common.InvalidParametersError
	for _, p := range []Params{testParams(0, 1), testParams(257, 1), testParams(2, 0)} {
		_, err := Shard([]string{"a"}, p, dashash.Blake2b256)
		require.True(t, errors.As(err, &paramErr))
	}
	p := testParams(2, 1)
	p.AccountIDLength = 33
	_, err := Shard([]string{"a"}, p, dashash.Blake2b256)
	require.True(t, errors.As(err, &paramErr))
}

func TestShardIDsRejectsWrongWidth(t *testing.T) {
	_, err := ShardIDs([][]byte{{1, 2, 3}}, testParams(2, 10))
	require.Error(t, err)
}

func TestBucketIndexUsesLeadingByte(t *testing.T) {
	require.Equal(t, 0, BucketIndex([]byte{0xff, 0x01}, 5))
	require.Equal(t, 1, BucketIndex([]byte{0x01, 0xff}, 5))
	require.Equal(t, 15, BucketIndex([]byte{0xff}, 20))
}
