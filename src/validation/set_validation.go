package validation

import (
	"bytes"
)

// ValidateIDRange returns false and the index of the first id that does not
// strictly follow its predecessor.
func ValidateIDRange(ids [][]byte) (bool, int) {
	for i := 1; i < len(ids); i++ {
		if !OrderedIDPairIsValid(ids[i-1], ids[i]) {
			return false, i
		}
	}
	return true, -1
}

func OrderedIDPairIsValid(low, high []byte) bool {
	return bytes.Compare(low, high) < 0
}
