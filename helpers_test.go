package secp256k1

import (
	"fmt"

	sha256simd "github.com/minio/sha256-simd"
)

// pseudoRandomFE derives a deterministic pseudorandom field element from a
// counter, so test runs are reproducible without fixture files. The odds of
// a digest landing in [p, 2^256) are negligible, and both this package and
// the differential oracle reduce consistently anyway.
func pseudoRandomFE(i int) FieldElement {
	sum := sha256simd.Sum256([]byte(fmt.Sprintf("secp256k1 field vector %d", i)))
	var fe FieldElement
	fe.SetB32(sum[:])
	return fe
}

// pseudoRandomBytes32 returns the raw 32-byte digest for a counter, for
// tests that want to drive both implementations from identical input bytes.
func pseudoRandomBytes32(i int) [32]byte {
	return sha256simd.Sum256([]byte(fmt.Sprintf("secp256k1 raw vector %d", i)))
}

// feFromHex decodes a big-endian hex string into a field element.
func feFromHex(s string) FieldElement {
	var fe FieldElement
	fe.SetHex(s)
	return fe
}

// jacobianFromHex decodes big-endian hex strings into a Jacobian point with
// its coordinates set to the resulting values. A zero z marks infinity.
func jacobianFromHex(x, y, z string) GroupElementJacobian {
	var p GroupElementJacobian
	if z == "0" {
		p.SetInfinity()
		return p
	}
	fx, fy, fz := feFromHex(x), feFromHex(y), feFromHex(z)
	var aff GroupElementAffine
	aff.SetXY(&fx, &fy)
	p.SetAffine(&aff)
	p.z = fz
	return p
}

// pseudoRandomPoint derives a deterministic valid curve point by walking
// counters until some x yields a quadratic residue for x^3 + 7. Roughly
// half the candidates succeed, so this terminates quickly.
func pseudoRandomPoint(i int) GroupElementJacobian {
	for j := 0; ; j++ {
		x := pseudoRandomFE(i*1000 + j)
		var p GroupElementJacobian
		p.SetCompressed(&x, j%2 == 1)
		if p.IsValid() {
			return p
		}
	}
}
