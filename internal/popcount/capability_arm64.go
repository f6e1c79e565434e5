//go:build arm64

package popcount

func init() {
	// ASIMD is mandatory on arm64 and bits.OnesCount64 compiles to the
	// vector CNT instruction, so there is no feature bit to check.
	hasHWPopcount = true
	initCapabilities()
}
