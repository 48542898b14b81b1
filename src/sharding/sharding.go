package sharding

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/overline-mining/dasgen/src/codec"
	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/dashash"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Params struct {
	Category         string
	BaseCategory     uint32
	BucketCount      int
	Capacity         int
	AccountIDLength  int
	WitnessSizeLimit int
}

func (p Params) validate() error {
	if p.BucketCount <= 0 || p.BucketCount > 256 {
		return &common.InvalidParametersError{Reason: fmt.Sprintf("%s: bucket count %d must be in [1, 256]", p.Category, p.BucketCount)}
	}
	if p.Capacity <= 0 {
		return &common.InvalidParametersError{Reason: fmt.Sprintf("%s: bucket capacity %d must be positive", p.Category, p.Capacity)}
	}
	if p.AccountIDLength <= 0 || p.AccountIDLength > dashash.HASH_LENGTH {
		return &common.InvalidParametersError{Reason: fmt.Sprintf("%s: account id length %d must be in [1, %d]", p.Category, p.AccountIDLength, dashash.HASH_LENGTH)}
	}
	return nil
}

// BucketIndex routes an account id by its first raw byte. Changing this
// rule changes the deployed bucket contents.
func BucketIndex(id []byte, bucketCount int) int {
	return int(id[0]) % bucketCount
}

// Shard hashes every account, groups the ids into BucketCount buckets and
// returns one length-prefixed record per bucket, empty buckets included.
func Shard(accounts []string, p Params, hash dashash.HashFunc) ([]codec.Record, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	ids := make([][]byte, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, dashash.AccountID(hash, account, p.AccountIDLength))
	}
	return ShardIDs(ids, p)
}

// ShardIDs is Shard for ids that were hashed already.
func ShardIDs(ids [][]byte, p Params) ([]codec.Record, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	groups := make([][][]byte, p.BucketCount)
	for n, id := range ids {
		if len(id) != p.AccountIDLength {
			return nil, errors.Errorf("%s: id %d is %d bytes, expected %d", p.Category, n, len(id), p.AccountIDLength)
		}
		i := BucketIndex(id, p.BucketCount)
		groups[i] = append(groups[i], id)
	}

	// all buckets are checked before any record is built
	for i, group := range groups {
		dashash.SortIDs(group)
		group = dashash.DedupSorted(group)
		groups[i] = group
		zap.S().Debugf("%s bucket %d count: %d", p.Category, i, len(group))
		if len(group) > p.Capacity {
			return nil, &common.BucketOverflowError{Category: p.Category, Index: i, Count: len(group), Capacity: p.Capacity}
		}
	}

	records := make([]codec.Record, 0, p.BucketCount)
	for i, group := range groups {
		raw, err := codec.ConcatFixed(group, p.AccountIDLength)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("%s[%d]", p.Category, i)
		payload, err := codec.EncodeLengthPrefixed(name, raw, p.WitnessSizeLimit)
		if err != nil {
			return nil, err
		}
		records = append(records, codec.Record{Category: p.BaseCategory + uint32(i), Payload: payload})
	}
	return records, nil
}

// Contains checks membership the way a client does: recompute the id,
// pick its bucket and binary search that bucket's record.
func Contains(records []codec.Record, name string, accountIDLength int, hash dashash.HashFunc) (bool, error) {
	if len(records) == 0 {
		return false, nil
	}
	id := dashash.AccountID(hash, name, accountIDLength)
	raw, err := codec.DecodeLengthPrefixed(records[BucketIndex(id, len(records))].Payload)
	if err != nil {
		return false, err
	}
	members, err := codec.SplitFixed(raw, accountIDLength)
	if err != nil {
		return false, err
	}
	i := sort.Search(len(members), func(i int) bool {
		return bytes.Compare(members[i], id) >= 0
	})
	return i < len(members) && bytes.Equal(members[i], id), nil
}
