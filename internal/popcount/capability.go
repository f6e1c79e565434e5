package popcount

import (
	"os"
	"strings"
)

// Kernel identifies a counting implementation.
type Kernel uint8

const (
	// TableKernel counts one byte at a time through the lookup table.
	TableKernel Kernel = iota
	// WordKernel counts eight bytes at a time with hardware popcount.
	WordKernel
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case TableKernel:
		return "table"
	case WordKernel:
		return "word"
	default:
		return "unknown"
	}
}

// ParseKernel parses a kernel name.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return TableKernel, true
	case "word":
		return WordKernel, true
	default:
		return TableKernel, false
	}
}

// EnvOverride is the environment variable that forces a kernel.
const EnvOverride = "BITVEC_POPCOUNT"

var (
	active      Kernel
	hasOverride bool

	// set by platform-specific init
	hasHWPopcount bool
)

func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			active = k
			return
		}
	}

	if hasHWPopcount {
		active = WordKernel
	} else {
		active = TableKernel
	}
}

// Active returns the kernel used by Bytes, And, Or, Xor and Subset.
func Active() Kernel {
	return active
}

// IsOverridden reports whether BITVEC_POPCOUNT selected the kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasHardwarePopcount reports whether the CPU has a native popcount instruction.
func HasHardwarePopcount() bool {
	return hasHWPopcount
}
