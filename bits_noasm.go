//go:build !amd64 || noasm

package pextvarint

// initBMI2Selection keeps the portable extract/deposit.
func initBMI2Selection() {}
