// Package hwmix implements a fast non-cryptographic 64-bit mixing hash,
// seeded by a caller-supplied "hardware fingerprint". All multi-byte words
// are read and written little-endian; digests are only comparable between
// parties that agree on this.
package hwmix

import (
	"encoding/binary"
	"math/bits"
)

const (
	goldenRatio = 0x9e3779b97f4a7c15
	wordPrime   = 0x3c79ac492ba7b653
	tailPrime   = 0x1c69b3f74ac4ae35
	fmix1       = 0xff51afd7ed558ccd
	fmix2       = 0xc4ceb9fe1a85ec53
)

// Mix hashes data into a single 64-bit digest. It is a pure function of
// (data, seed): no state survives the call and data is never retained, so
// it's safe to call from any number of goroutines at once.
func Mix(data []byte, seed uint64) uint64 {
	acc := seed ^ (uint64(len(data)) * goldenRatio)
	for len(data) >= 8 {
		w := binary.LittleEndian.Uint64(data[:8])
		acc = bits.RotateLeft64(acc^w, 27) * wordPrime
		data = data[8:]
	}
	if len(data) > 0 {
		var tail [8]byte
		copy(tail[:], data)
		w := binary.LittleEndian.Uint64(tail[:])
		acc = bits.RotateLeft64(acc^w, 31) * tailPrime
	}
	acc ^= acc >> 33
	acc *= fmix1
	acc ^= acc >> 33
	acc *= fmix2
	acc ^= acc >> 33
	return acc
}
