package hwmix

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"time"
)

// seedConst perturbs time and descriptor bytes before they become seeds.
const seedConst = 0x1234567890abcdef

// HardwareSeed derives a 64-bit seed from the current wall clock. Two calls
// within the same second return the same value; that's a documented
// limitation, not a bug.
func HardwareSeed() uint64 {
	return seedFromTime(time.Now().Unix())
}

func seedFromTime(t int64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(t))
	return Mix(buf[:], seedConst)
}

// DescriptorSeed derives a seed from static runtime properties instead of
// the clock. It is stable across calls on one machine configuration.
func DescriptorSeed() uint64 {
	desc := fmt.Sprintf("%v|%v|%v|%v",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), runtime.Version())
	return Mix([]byte(desc), seedConst)
}
