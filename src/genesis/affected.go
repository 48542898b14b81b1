package genesis

import (
	"sort"

	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/config"
	"github.com/overline-mining/dasgen/src/dashash"
	"github.com/overline-mining/dasgen/src/molecule"
	"github.com/overline-mining/dasgen/src/sharding"
	"github.com/overline-mining/dasgen/src/witness"
	"go.uber.org/zap"
)

// AffectedBuckets lists the preserved account cells, as 0x hex of their
// little-endian data type, that must be regenerated when names are added.
func AffectedBuckets(names []string, p config.Params, hash dashash.HashFunc) []string {
	seen := make(map[string]bool)
	for _, name := range names {
		id := dashash.AccountID(hash, name, p.AccountIDLength)
		index := sharding.BucketIndex(id, p.PreservedAccountCellCount)
		dataType := witness.PreservedAccountGroupToDataType(index)
		key := common.Hex(molecule.Uint32(uint32(dataType)))
		zap.S().Infof("Because %v needs to update %v (%v)", name, key, dataType)
		seen[key] = true
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
