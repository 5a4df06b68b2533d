//go:generate go run -tags avogen ./internal/avo -out bits_amd64.s

package pextvarint

// extractImpl and depositImpl start out as the portable implementations and
// are replaced by the BMI2 kernels in initBMI2Selection when the CPU has them.
var (
	extractImpl func(mask, src uint64) uint64 = extractScalar
	depositImpl func(mask, src uint64) uint64 = depositScalar
)

var bmi2Available bool

// Initialize BMI2 path if available
func init() {
	initBMI2Selection()
}

// IsBMI2available reports whether Extract and Deposit run on the hardware
// PEXT/PDEP instructions.
func IsBMI2available() bool {
	return bmi2Available
}

// Extract gathers the bits of src selected by mask into the low-order bits
// of the result, lowest mask bit first. All higher result bits are zero.
func Extract(mask, src uint64) uint64 {
	return extractImpl(mask, src)
}

// Deposit scatters the low-order bits of src into the positions selected by
// mask, lowest mask bit first. Result bits outside mask are zero.
// It is the inverse of Extract.
func Deposit(mask, src uint64) uint64 {
	return depositImpl(mask, src)
}

// extractScalar walks the set bits of mask from lowest to highest. The loop
// runs popcount(mask) times, at most 64.
func extractScalar(mask, src uint64) uint64 {
	var out uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		if src&mask&-mask != 0 {
			out |= bit
		}
		mask &= mask - 1
	}
	return out
}

// depositScalar is the inverse walk of extractScalar.
func depositScalar(mask, src uint64) uint64 {
	var out uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		if src&bit != 0 {
			out |= mask & -mask
		}
		mask &= mask - 1
	}
	return out
}
