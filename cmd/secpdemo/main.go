// Command secpdemo exercises the public field/point contracts: it recovers
// two points from compressed x coordinates, validates them, converts one to
// affine and runs a timed repeated-addition loop as a performance smoke
// test.
package main

import (
	"flag"
	"fmt"
	"time"

	secp256k1 "secp256k1.mleku.dev"
)

func main() {
	iterations := flag.Int("n", 100000, "number of additions in the smoke-test loop")
	flag.Parse()

	var f1, f2 secp256k1.FieldElement
	f1.SetHex("8b30bbe9ae2a990696b22f670709dff3727fd8bc04d3362c6c7bf458e2846004")
	f2.SetHex("a357ae915c4a65281309edf20504740f1eb3333990216b4f81063cb65f2f7e0f")

	var g1, g2 secp256k1.GroupElementJacobian
	g1.SetCompressed(&f1, false)
	g2.SetCompressed(&f2, false)
	fmt.Printf("g1: %s (%s)\n", g1.String(), okFail(g1.IsValid()))
	fmt.Printf("g2: %s (%s)\n", g2.String(), okFail(g2.IsValid()))

	var g2a secp256k1.GroupElementAffine
	g2.GetAffine(&g2a)
	fmt.Printf("g2a: %s\n", g2a.String())

	x1 := g1
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		x1.SetAddAffine(&x1, &g2a)
	}
	elapsed := time.Since(start)
	fmt.Printf("res: %s (%s)\n", x1.String(), okFail(x1.IsValid()))
	fmt.Printf("%d additions in %s (%.0f ns/add)\n",
		*iterations, elapsed, float64(elapsed.Nanoseconds())/float64(*iterations))
}

func okFail(ok bool) string {
	if ok {
		return "ok"
	}
	return "fail"
}
