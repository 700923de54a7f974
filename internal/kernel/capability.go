package kernel

import (
	"os"
	"strings"
)

// Kind identifies a population count implementation.
type Kind uint8

const (
	// Generic is the portable SWAR implementation.
	Generic Kind = iota
	// Hardware uses the CPU population count instruction via math/bits.
	Hardware
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind value.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "swar":
		return Generic, true
	case "hardware", "popcnt":
		return Hardware, true
	default:
		return Generic, false
	}
}

// Package-level state, written once during init.
var (
	// activeKind is the selected popcount implementation.
	activeKind Kind

	// hasOverride is true if BITSET_KERNEL was set to a known kernel.
	hasOverride bool

	// hasPopcnt is set by the platform-specific init.
	hasPopcnt bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv("BITSET_KERNEL"); override != "" {
		if kind, ok := ParseKind(override); ok {
			hasOverride = true
			if isAvailable(kind) {
				use(kind)
				return
			}
			// Unavailable override - fall through to auto-detection
		}
	}

	use(selectBest())
}

// isAvailable checks if a kernel is supported on this CPU.
func isAvailable(kind Kind) bool {
	switch kind {
	case Generic:
		return true
	case Hardware:
		return hasPopcnt
	default:
		return false
	}
}

func selectBest() Kind {
	if hasPopcnt {
		return Hardware
	}
	return Generic
}

func use(kind Kind) {
	activeKind = kind
	switch kind {
	case Hardware:
		kernelPopcount = popcountHardware
	default:
		kernelPopcount = popcountGeneric
	}
}

// Active returns the currently active popcount kernel.
func Active() Kind {
	return activeKind
}

// IsOverridden returns true if BITSET_KERNEL was set.
func IsOverridden() bool {
	return hasOverride
}

// HasPopcnt returns true if the CPU has a population count instruction.
func HasPopcnt() bool {
	return hasPopcnt
}
