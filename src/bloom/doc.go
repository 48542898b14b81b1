/*
Package bloom is the fixed-size Bloom filter exported into one config cell
as a compact existence check.

A filter answers "definitely not present" or "maybe present". It is a
prefilter only; the bucketed account records stay authoritative.

# Wire format

The exported bytes are the raw bitset, ceil(N/8) bytes, with LSB0 bit
numbering: bit i of the filter is bit (i mod 8) of byte (i div 8), where
bit 0 is the least significant bit. When N is not a multiple of 8 the
high bits of the last byte are always zero. N and k are not part of the
export; consumers take them from the deployment profile.

# Index derivation

For an item x:

	d  = blake2b-512(0xB0 || x)
	h1 = little-endian uint64 of d[0:8]
	h2 = little-endian uint64 of d[8:16] with the low bit set
	j_i = (h1 + i*h2) mod N    for i in [0, k)

using wrapping 64-bit arithmetic. The same derivation must be used by
every reader of the exported bits.

# False positives

After n insertions the false-positive rate is approximately

	p = (1 - e^(-k*n/N))^k

With the mainnet profile (N = 192000, k = 7) and 20000 reserved accounts
that is about 1.0%; the testnet profile (N = 96000, k = 7) gives the same
rate for 10000 accounts.
*/
package bloom
