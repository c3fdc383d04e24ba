package bitops

import (
	"os"
	"strings"
)

// ISA represents a bit-manipulation instruction set.
type ISA uint8

const (
	// Generic represents the pure Go implementation.
	Generic ISA = iota
	// BMI2 represents x86-64 BMI1+BMI2 (PEXT, PDEP, TZCNT, BLSR).
	BMI2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case BMI2:
		return "bmi2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "bmi2":
		return BMI2, true
	default:
		return Generic, false
	}
}

// EnvOverride is the environment variable that pins the active ISA.
const EnvOverride = "BITGRID_BITOPS"

// Package-level state, initialized once at package init.
var (
	// activeISA is the selected implementation.
	activeISA ISA

	// hasOverride is true if BITGRID_BITOPS was set to a known value.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasBMI1 bool
	hasBMI2 bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				activeISA = isa
				return
			}
			// Unavailable override - fall through to auto-detection
		}
	}

	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case BMI2:
		return hasBMI1 && hasBMI2
	default:
		return false
	}
}

func selectBestISA() ISA {
	if hasBMI1 && hasBMI2 {
		return BMI2
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if BITGRID_BITOPS was set.
func IsOverridden() bool {
	return hasOverride
}

// HasBMI1 returns true if TZCNT and BLSR are available.
func HasBMI1() bool {
	return hasBMI1
}

// HasBMI2 returns true if PEXT and PDEP are available.
func HasBMI2() bool {
	return hasBMI2
}
