//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
)

// This file generates the BMI2 parallel bit extract/deposit kernels used by
// the varint codec. Each kernel is a single PEXTQ/PDEPQ on two register
// operands; Go's operand order is mask, source, destination.

func genPextKernel() {
	TEXT("pextBMI2", NOSPLIT, "func(mask, src uint64) uint64")
	Doc("pextBMI2 gathers the bits of src selected by mask into the low bits of the result.")

	mask := Load(Param("mask"), GP64())
	src := Load(Param("src"), GP64())

	PEXTQ(mask, src, mask)

	Store(mask, ReturnIndex(0))
	RET()
}

func genPdepKernel() {
	TEXT("pdepBMI2", NOSPLIT, "func(mask, src uint64) uint64")
	Doc("pdepBMI2 scatters the low bits of src into the positions selected by mask.")

	mask := Load(Param("mask"), GP64())
	src := Load(Param("src"), GP64())

	PDEPQ(mask, src, mask)

	Store(mask, ReturnIndex(0))
	RET()
}
