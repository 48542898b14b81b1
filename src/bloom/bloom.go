package bloom

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/overline-mining/dasgen/src/common"
	"golang.org/x/crypto/blake2b"
)

const bloomDomain = 0xB0

type Filter struct {
	bits      []byte
	mBits     uint64
	k         uint8
	nInserted uint64
}

// New returns an empty filter of sizeInBits bits probed hashRounds times per item.
func New(sizeInBits uint64, hashRounds uint8) (*Filter, error) {
	if sizeInBits == 0 {
		return nil, &common.InvalidParametersError{Reason: "bloom filter size in bits must be positive"}
	}
	if hashRounds == 0 {
		return nil, &common.InvalidParametersError{Reason: "bloom filter hash rounds must be positive"}
	}
	if sizeInBits > math.MaxUint32 {
		return nil, &common.InvalidParametersError{Reason: fmt.Sprintf("bloom filter size %d bits overflows the supported range", sizeInBits)}
	}
	return &Filter{
		bits:  make([]byte, BitsetBytes(sizeInBits)),
		mBits: sizeInBits,
		k:     hashRounds,
	}, nil
}

// BitsetBytes returns ceil(mBits/8).
func BitsetBytes(mBits uint64) uint64 {
	return (mBits + 7) / 8
}

func (f *Filter) SizeInBits() uint64 { return f.mBits }
func (f *Filter) HashRounds() uint8  { return f.k }
func (f *Filter) Inserted() uint64   { return f.nInserted }

func (f *Filter) Insert(item []byte) {
	h1, h2 := hashPair(item)
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % f.mBits
		f.bits[j>>3] |= 1 << uint8(j&7)
	}
	f.nInserted++
}

// MightContain is false only if item was never inserted.
func (f *Filter) MightContain(item []byte) bool {
	h1, h2 := hashPair(item)
	for i := uint64(0); i < uint64(f.k); i++ {
		j := (h1 + i*h2) % f.mBits
		if f.bits[j>>3]&(1<<uint8(j&7)) == 0 {
			return false
		}
	}
	return true
}

// Bytes exports a copy of the bitset in LSB0 order.
func (f *Filter) Bytes() []byte {
	out := make([]byte, len(f.bits))
	copy(out, f.bits)
	return out
}

// FalsePositiveRate estimates the rate after n insertions.
func (f *Filter) FalsePositiveRate(n uint64) float64 {
	return FalsePositiveRate(f.mBits, f.k, n)
}

func FalsePositiveRate(mBits uint64, k uint8, n uint64) float64 {
	if mBits == 0 {
		return 1
	}
	return math.Pow(1-math.Exp(-float64(k)*float64(n)/float64(mBits)), float64(k))
}

// FromBytes rebuilds a filter from exported bits for membership checks.
func FromBytes(bits []byte, sizeInBits uint64, hashRounds uint8) (*Filter, error) {
	f, err := New(sizeInBits, hashRounds)
	if err != nil {
		return nil, err
	}
	if uint64(len(bits)) != BitsetBytes(sizeInBits) {
		return nil, &common.InvalidParametersError{Reason: fmt.Sprintf("bloom filter of %d bits needs %d bytes, got %d", sizeInBits, BitsetBytes(sizeInBits), len(bits))}
	}
	copy(f.bits, bits)
	return f, nil
}

func hashPair(item []byte) (h1 uint64, h2 uint64) {
	buf := make([]byte, 0, 1+len(item))
	buf = append(buf, bloomDomain)
	buf = append(buf, item...)
	sum := blake2b.Sum512(buf)
	h1 = binary.LittleEndian.Uint64(sum[0:8])
	h2 = binary.LittleEndian.Uint64(sum[8:16]) | 1
	return h1, h2
}
