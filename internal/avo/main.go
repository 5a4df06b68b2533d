//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var (
	component = flag.String("component", "all", "component to generate")
)

// main emits the extract and deposit kernels into one file so go:generate stays simple.
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/Akron/pextvarint-go")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "pext" || comp == "all" {
		genPextKernel()
	}

	if comp == "pdep" || comp == "all" {
		genPdepKernel()
	}

	Generate()
}
