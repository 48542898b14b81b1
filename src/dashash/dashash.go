package dashash

import (
	"bytes"
	"sort"

	blake2b "github.com/minio/blake2b-simd"
)

const HASH_LENGTH = 32

// CKB_PERSONALIZATION is the blake2b personalization of the chain's default hash.
var CKB_PERSONALIZATION = []byte("ckb-default-hash")

// HashFunc is the 32-byte hash every encoder in this module is parameterized on.
type HashFunc func(data []byte) [HASH_LENGTH]byte

func Blake2b256(data []byte) [HASH_LENGTH]byte {
	var out [HASH_LENGTH]byte
	h, err := blake2b.New(&blake2b.Config{Size: HASH_LENGTH, Person: CKB_PERSONALIZATION})
	if err != nil {
		// only reachable with an invalid static config
		panic(err)
	}
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}

// AccountID is the first length bytes of the hash of the account name.
func AccountID(hash HashFunc, name string, length int) []byte {
	sum := hash([]byte(name))
	id := make([]byte, length)
	copy(id, sum[:length])
	return id
}

// SortIDs orders ids ascending by raw byte value.
func SortIDs(ids [][]byte) {
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i], ids[j]) < 0
	})
}

// DedupSorted drops adjacent duplicates from an already sorted slice.
func DedupSorted(ids [][]byte) [][]byte {
	if len(ids) < 2 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if !bytes.Equal(out[len(out)-1], id) {
			out = append(out, id)
		}
	}
	return out
}
