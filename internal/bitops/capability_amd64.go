//go:build amd64 && !noasm

package bitops

import "golang.org/x/sys/cpu"

func init() {
	hasBMI1 = cpu.X86.HasBMI1
	hasBMI2 = cpu.X86.HasBMI2
	initCapabilities()
}
