package hwmix

import "encoding/binary"

// ExpandedSize is the length of the byte slice returned by Expand.
const ExpandedSize = 32

// Expand stretches a 64-bit digest into a 32-byte output by laying down
// four words offset by the golden ratio, each little-endian. The result is
// freshly allocated and owned by the caller.
func Expand(digest uint64) []byte {
	out := make([]byte, ExpandedSize)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], digest+uint64(i)*goldenRatio)
	}
	return out
}
