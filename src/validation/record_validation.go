package validation

import (
	"encoding/binary"
	"fmt"

	"github.com/overline-mining/dasgen/src/codec"
	"github.com/overline-mining/dasgen/src/molecule"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// IsValidIDSet re-reads an encoded fixed width id set and checks that it
// is exactly what a reader on chain expects.
func IsValidIDSet(category string, raw []byte, width int) (bool, error) {
	if !IsLengthHeaderConsistent(raw) {
		errStr := fmt.Sprintf("%v failed: IsLengthHeaderConsistent", category)
		zap.S().Errorf(errStr)
		return false, errors.New(errStr)
	}

	ids, err := codec.SplitFixed(raw[codec.HEADER_SIZE:], width)
	if err != nil {
		errStr := fmt.Sprintf("%v failed: IsWholeNumberOfIDs: %v", category, err)
		zap.S().Errorf(errStr)
		return false, errors.New(errStr)
	}

	if ok, at := ValidateIDRange(ids); !ok {
		errStr := fmt.Sprintf("%v failed: OrderedIDPairIsValid at %d", category, at)
		zap.S().Errorf(errStr)
		return false, errors.New(errStr)
	}

	return true, nil
}

// IsValidEntity checks that an encoded entity is a well formed molecule
// table before it is wrapped into a witness.
func IsValidEntity(category string, raw []byte) (bool, error) {
	if !IsLengthHeaderConsistent(raw) {
		errStr := fmt.Sprintf("%v failed: IsLengthHeaderConsistent", category)
		zap.S().Errorf(errStr)
		return false, errors.New(errStr)
	}

	count := molecule.TableFieldCount(raw)
	if count == 0 {
		errStr := fmt.Sprintf("%v failed: HasFields", category)
		zap.S().Errorf(errStr)
		return false, errors.New(errStr)
	}

	if !FieldOffsetsAreOrdered(raw, count) {
		errStr := fmt.Sprintf("%v failed: FieldOffsetsAreOrdered", category)
		zap.S().Errorf(errStr)
		return false, errors.New(errStr)
	}

	return true, nil
}

// FieldOffsetsAreOrdered reports whether the first field starts right after
// the header and no field starts before its predecessor or past the end.
func FieldOffsetsAreOrdered(raw []byte, count int) bool {
	header := molecule.NUMBER_SIZE * (count + 1)
	if len(raw) < header {
		return false
	}
	prev := header
	for i := 0; i < count; i++ {
		offset := int(binary.LittleEndian.Uint32(raw[molecule.NUMBER_SIZE*(i+1):]))
		if i == 0 && offset != header {
			return false
		}
		if offset < prev || offset > len(raw) {
			return false
		}
		prev = offset
	}
	return true
}

func IsLengthHeaderConsistent(raw []byte) bool {
	if len(raw) < codec.HEADER_SIZE {
		return false
	}
	return int(binary.LittleEndian.Uint32(raw[:codec.HEADER_SIZE])) == len(raw)
}
