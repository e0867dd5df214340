//go:build verify

package secp256k1

import "fmt"

// Magnitude bounds per unit of magnitude: lower limbs may reach 2^53-1,
// the top limb 2^49-1.
const (
	verifyLimbBound    = 0x1FFFFFFFFFFFFF
	verifyTopLimbBound = 0x1FFFFFFFFFFFF
)

// verifyMagnitude asserts that the element's tracked magnitude does not
// exceed max and that the limbs actually honor the tracked bound. Compiled
// only under the "verify" build tag; production builds run no checks.
func (r *FieldElement) verifyMagnitude(max int) {
	if r.magnitude > max {
		panic(fmt.Sprintf("field element magnitude %d exceeds bound %d", r.magnitude, max))
	}
	r.verifyLimbs()
}

// verifyLimbs asserts that every limb is within the range the tracked
// magnitude promises.
func (r *FieldElement) verifyLimbs() {
	m := uint64(r.magnitude)
	for i := 0; i < 4; i++ {
		if r.n[i] > m*verifyLimbBound {
			panic(fmt.Sprintf("field element limb %d exceeds magnitude %d bound", i, r.magnitude))
		}
	}
	if r.n[4] > m*verifyTopLimbBound {
		panic(fmt.Sprintf("field element top limb exceeds magnitude %d bound", r.magnitude))
	}
	if r.normalized && r.magnitude > 1 {
		panic("normalized field element with magnitude above 1")
	}
}
