package hwmix

// CustomHashMix is the foreign-call surface: it takes the fingerprint as a
// signed 64-bit value and reinterprets the bit pattern as unsigned. A nil
// input returns a zero-length slice without touching the mixer; anything
// else, including an empty non-nil slice, yields exactly 32 bytes.
func CustomHashMix(input []byte, hardwareFingerprint int64) []byte {
	if input == nil {
		return []byte{}
	}
	return Expand(Mix(input, uint64(hardwareFingerprint)))
}

// GetHardwareSeed returns the time-derived seed reinterpreted as signed,
// matching the foreign-call surface.
func GetHardwareSeed() int64 {
	return int64(HardwareSeed())
}
