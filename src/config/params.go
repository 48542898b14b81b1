package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/overline-mining/dasgen/src/codec"
	"github.com/overline-mining/dasgen/src/common"
	"github.com/overline-mining/dasgen/src/dashash"
	"github.com/overline-mining/dasgen/src/molecule"
	"github.com/overline-mining/dasgen/src/witness"
	"github.com/pkg/errors"
)

const (
	MAINNET = "mainnet"
	TESTNET = "testnet"
)

// Params is a deployment profile. The generator never mutates it.
type Params struct {
	Network                      string `toml:"Network"`
	WitnessSizeLimit             int    `toml:"WitnessSizeLimit"`
	AccountIDLength              int    `toml:"AccountIDLength"`
	PreservedAccountCellCount    int    `toml:"PreservedAccountCellCount"`
	PreservedAccountLimitPerCell int    `toml:"PreservedAccountLimitPerCell"`
	BloomBits                    uint64 `toml:"BloomBits"`
	BloomHashRounds              uint8  `toml:"BloomHashRounds"`
}

func Mainnet() Params {
	return Params{
		Network:                      MAINNET,
		WitnessSizeLimit:             32000,
		AccountIDLength:              20,
		PreservedAccountCellCount:    20,
		PreservedAccountLimitPerCell: 1500,
		BloomBits:                    192000,
		BloomHashRounds:              7,
	}
}

func Testnet() Params {
	return Params{
		Network:                      TESTNET,
		WitnessSizeLimit:             16000,
		AccountIDLength:              10,
		PreservedAccountCellCount:    20,
		PreservedAccountLimitPerCell: 1500,
		BloomBits:                    96000,
		BloomHashRounds:              7,
	}
}

func ProfileFor(network string) (Params, error) {
	switch strings.ToLower(network) {
	case MAINNET:
		return Mainnet(), nil
	case TESTNET:
		return Testnet(), nil
	}
	return Params{}, &common.InvalidParametersError{Reason: "unknown network " + network}
}

// witnessOverhead is "das" plus the u32 data type in front of every body.
var witnessOverhead = len(witness.WITNESS_MAGIC) + molecule.NUMBER_SIZE

// WorstCaseBucketSize is the witness size of a completely full preserved
// account bucket.
func (p Params) WorstCaseBucketSize() int {
	return witnessOverhead + codec.HEADER_SIZE + p.PreservedAccountLimitPerCell*p.AccountIDLength
}

// BloomRecordSize is the witness size of the exported filter record.
func (p Params) BloomRecordSize() int {
	return witnessOverhead + codec.HEADER_SIZE + int((p.BloomBits+7)/8)
}

// Validate rejects profiles that can never produce an acceptable record.
func (p Params) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return &common.InvalidParametersError{Reason: p.Network + ": " + fmt.Sprintf(format, args...)}
	}
	switch {
	case p.WitnessSizeLimit <= codec.HEADER_SIZE:
		return invalid("witness size limit %d leaves no room for a payload", p.WitnessSizeLimit)
	case p.AccountIDLength < 1 || p.AccountIDLength > dashash.HASH_LENGTH:
		return invalid("account id length %d not in [1, %d]", p.AccountIDLength, dashash.HASH_LENGTH)
	case p.PreservedAccountCellCount < 1 || p.PreservedAccountCellCount > witness.PRESERVED_ACCOUNT_GROUPS:
		return invalid("preserved account cell count %d not in [1, %d]", p.PreservedAccountCellCount, witness.PRESERVED_ACCOUNT_GROUPS)
	case p.PreservedAccountLimitPerCell < 1:
		return invalid("preserved account limit per cell must be positive")
	case p.BloomBits == 0 || p.BloomHashRounds == 0:
		return invalid("bloom filter needs a positive size and hash round count")
	}
	if size := p.WorstCaseBucketSize(); size > p.WitnessSizeLimit {
		return invalid("a full bucket of %d ids needs %d bytes, limit is %d",
			p.PreservedAccountLimitPerCell, size, p.WitnessSizeLimit)
	}
	if size := p.BloomRecordSize(); size > p.WitnessSizeLimit {
		return invalid("a %d bit filter needs %d bytes, limit is %d", p.BloomBits, size, p.WitnessSizeLimit)
	}
	return nil
}

// LoadParams overlays the TOML file at path on the built-in profile it
// names (or base when the file does not name one) and validates the result.
func LoadParams(path string, base Params) (Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, &common.InputUnreadableError{Category: "profile", Path: path, Err: err}
	}

	var header struct {
		Network string `toml:"Network"`
	}
	if _, err := toml.Decode(string(raw), &header); err != nil {
		return Params{}, errors.Wrapf(err, "profile %s", path)
	}
	p := base
	if header.Network != "" {
		if p, err = ProfileFor(header.Network); err != nil {
			return Params{}, err
		}
	}

	meta, err := toml.Decode(string(raw), &p)
	if err != nil {
		return Params{}, errors.Wrapf(err, "profile %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Params{}, &common.InvalidParametersError{
			Reason: "profile " + path + " has unknown keys: " + strings.Join(keys, ", "),
		}
	}
	return p, p.Validate()
}
