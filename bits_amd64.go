//go:build amd64 && !noasm

package pextvarint

import "golang.org/x/sys/cpu"

func initBMI2Selection() {
	if cpu.X86.HasBMI2 {
		extractImpl = pextBMI2
		depositImpl = pdepBMI2
		bmi2Available = true
	}
}

// Assembly entry points provided by bits_amd64.s (generated by internal/avo).
// Both require BMI2.
func pextBMI2(mask uint64, src uint64) uint64

func pdepBMI2(mask uint64, src uint64) uint64
