package emitter

import (
	"fmt"
	"strings"

	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/dashash"
	"github.com/overline-mining/dasgen/src/molecule"
	"github.com/overline-mining/dasgen/src/witness"
	"go.uber.org/zap"
)

const CONFIG_ACTION = "config"

// Output is one printed record, every field already 0x hex.
type Output struct {
	Category          witness.DataType
	CategoryHex       string
	ContentHashHex    string
	ActionWitnessHex  string
	PayloadWitnessHex string
}

func (o Output) String() string {
	return fmt.Sprintf("%s %s %s %s", o.CategoryHex, o.ContentHashHex, o.ActionWitnessHex, o.PayloadWitnessHex)
}

// Join renders outputs the way deploy scripts read them: comma separated.
func Join(outputs []Output) string {
	lines := make([]string, 0, len(outputs))
	for _, o := range outputs {
		lines = append(lines, o.String())
	}
	return strings.Join(lines, ",")
}

type Emitter struct {
	hash             dashash.HashFunc
	witnessSizeLimit int
	actionWitness    []byte
}

func New(hash dashash.HashFunc, witnessSizeLimit int, action string) *Emitter {
	return &Emitter{
		hash:             hash,
		witnessSizeLimit: witnessSizeLimit,
		actionWitness:    witness.WrapAction(action, nil),
	}
}

// Emit hashes payload for the cell data and wraps it as the cell witness.
func (e *Emitter) Emit(category witness.DataType, payload []byte) (Output, error) {
	cellWitness := witness.WrapRaw(category, payload)
	// the contracts bound the witness in its molecule Bytes form
	if size := molecule.NUMBER_SIZE + len(cellWitness); size > e.witnessSizeLimit {
		return Output{}, &common.SizeLimitExceededError{Category: category.String(), Size: size, Limit: e.witnessSizeLimit}
	}
	contentHash := e.hash(payload)
	zap.S().Debugf("%v: payload %d bytes, witness %d bytes, hash %v", category, len(payload), len(cellWitness), common.BriefHash(common.Hex(contentHash[:])))

	return Output{
		Category:          category,
		CategoryHex:       common.Hex(molecule.Uint32(uint32(category))),
		ContentHashHex:    common.Hex(contentHash[:]),
		ActionWitnessHex:  common.Hex(e.actionWitness),
		PayloadWitnessHex: common.Hex(cellWitness),
	}, nil
}
