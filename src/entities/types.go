package entities

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/overline-mining/dasgen/src/molecule"
	"github.com/pkg/errors"
)

// Entity is a molecule value that knows its own encoding.
type Entity interface {
	Encode() []byte
}

type Hash [32]byte

// UnmarshalText reads a 0x prefixed 32 byte hex string.
func (h *Hash) UnmarshalText(text []byte) error {
	b, err := hexutil.Decode(string(text))
	if err != nil {
		return errors.Wrapf(err, "hash %q", text)
	}
	if len(b) != len(h) {
		return errors.Errorf("hash %q is %d bytes, expected %d", text, len(b), len(h))
	}
	copy(h[:], b)
	return nil
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(h[:])), nil
}

func (h Hash) Encode() []byte {
	return h[:]
}

// OutPoint is struct OutPoint { tx_hash: Hash, index: Uint32 }.
type OutPoint struct {
	TxHash Hash   `yaml:"tx_hash"`
	Index  uint32 `yaml:"index"`
}

func (o OutPoint) Encode() []byte {
	return molecule.Struct(o.TxHash.Encode(), molecule.Uint32(o.Index))
}

// Script is table Script { code_hash: Hash, hash_type: byte, args: Bytes }.
type Script struct {
	CodeHash Hash   `yaml:"code_hash"`
	HashType uint8  `yaml:"hash_type"`
	Args     []byte `yaml:"args"`
}

func (s Script) Encode() []byte {
	return molecule.Table(s.CodeHash.Encode(), molecule.Uint8(s.HashType), molecule.Bytes(s.Args))
}
