package secp256k1

import "math/bits"

// uint128 represents a 128-bit unsigned integer for field arithmetic
type uint128 struct {
	high, low uint64
}

// mulU64ToU128 multiplies two uint64 values and returns a uint128
func mulU64ToU128(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{high: hi, low: lo}
}

// addMulU128 computes c + a*b and returns the result as uint128
func addMulU128(c uint128, a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	newLo, carry := bits.Add64(c.low, lo, 0)
	newHi, _ := bits.Add64(c.high, hi, carry)
	return uint128{high: newHi, low: newLo}
}

// addU128 adds a uint64 to a uint128
func addU128(c uint128, a uint64) uint128 {
	newLo, carry := bits.Add64(c.low, a, 0)
	newHi, _ := bits.Add64(c.high, 0, carry)
	return uint128{high: newHi, low: newLo}
}

// lo returns the lower 64 bits
func (u uint128) lo() uint64 {
	return u.low
}

// rshift shifts the uint128 right by n bits
func (u uint128) rshift(n uint) uint128 {
	if n >= 64 {
		return uint128{high: 0, low: u.high >> (n - 64)}
	}
	return uint128{
		high: u.high >> n,
		low:  (u.low >> n) | (u.high << (64 - n)),
	}
}

// Mul sets r = a * b. Both operands must have magnitude at most 8, which
// keeps every 128-bit partial sum below overflow. Result magnitude 1 but not
// normalized: the value may still exceed p, it is merely bounded well enough
// for further magnitude-8 consumers.
//
// The full 520-bit product is accumulated as ten base-2^52 partial sums;
// the upper half is folded back with the shifted reduction constant (the
// extra factor 16 compensates the 48-bit top limb), then a second carry
// pass with the base constant produces the five output limbs.
func (r *FieldElement) Mul(a, b *FieldElement) {
	a.verifyMagnitude(8)
	b.verifyMagnitude(8)

	a0, a1, a2, a3, a4 := a.n[0], a.n[1], a.n[2], a.n[3], a.n[4]
	b0, b1, b2, b3, b4 := b.n[0], b.n[1], b.n[2], b.n[3], b.n[4]

	const M = uint64(limb0Max)

	c := mulU64ToU128(a0, b0)
	t0 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0, b1)
	c = addMulU128(c, a1, b0)
	t1 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0, b2)
	c = addMulU128(c, a1, b1)
	c = addMulU128(c, a2, b0)
	t2 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0, b3)
	c = addMulU128(c, a1, b2)
	c = addMulU128(c, a2, b1)
	c = addMulU128(c, a3, b0)
	t3 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0, b4)
	c = addMulU128(c, a1, b3)
	c = addMulU128(c, a2, b2)
	c = addMulU128(c, a3, b1)
	c = addMulU128(c, a4, b0)
	t4 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a1, b4)
	c = addMulU128(c, a2, b3)
	c = addMulU128(c, a3, b2)
	c = addMulU128(c, a4, b1)
	t5 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a2, b4)
	c = addMulU128(c, a3, b3)
	c = addMulU128(c, a4, b2)
	t6 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a3, b4)
	c = addMulU128(c, a4, b3)
	t7 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a4, b4)
	t8 := c.lo() & M
	c = c.rshift(52)
	t9 := c.lo()

	r.reduceWide(t0, t1, t2, t3, t4, t5, t6, t7, t8, t9)
}

// Sqr sets r = a * a. The operand must have magnitude at most 8. Result
// magnitude 1, not normalized. Shares the reduction with Mul; the partial
// sums exploit symmetry by doubling the cross terms.
func (r *FieldElement) Sqr(a *FieldElement) {
	a.verifyMagnitude(8)

	a0, a1, a2, a3, a4 := a.n[0], a.n[1], a.n[2], a.n[3], a.n[4]

	const M = uint64(limb0Max)

	c := mulU64ToU128(a0, a0)
	t0 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0*2, a1)
	t1 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0*2, a2)
	c = addMulU128(c, a1, a1)
	t2 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0*2, a3)
	c = addMulU128(c, a1*2, a2)
	t3 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a0*2, a4)
	c = addMulU128(c, a1*2, a3)
	c = addMulU128(c, a2, a2)
	t4 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a1*2, a4)
	c = addMulU128(c, a2*2, a3)
	t5 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a2*2, a4)
	c = addMulU128(c, a3, a3)
	t6 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a3*2, a4)
	t7 := c.lo() & M
	c = c.rshift(52)
	c = addMulU128(c, a4, a4)
	t8 := c.lo() & M
	c = c.rshift(52)
	t9 := c.lo()

	r.reduceWide(t0, t1, t2, t3, t4, t5, t6, t7, t8, t9)
}

// reduceWide folds the ten base-2^52 partial sums of a double-width product
// into the five output limbs. First pass: the upper five partials fold onto
// the lower five scaled by the shifted reduction constant, with the top
// output limb masked to 48 bits and its overflow carried into a second pass
// using the base constant.
func (r *FieldElement) reduceWide(t0, t1, t2, t3, t4, t5, t6, t7, t8, t9 uint64) {
	const M = uint64(limb0Max)
	const R = uint64(fieldReductionConstantShifted)

	c := addMulU128(uint128{low: t0}, t5, R)
	t0 = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t1)
	c = addMulU128(c, t6, R)
	t1 = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t2)
	c = addMulU128(c, t7, R)
	r.n[2] = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t3)
	c = addMulU128(c, t8, R)
	r.n[3] = c.lo() & M
	c = c.rshift(52)
	c = addU128(c, t4)
	c = addMulU128(c, t9, R)
	r.n[4] = c.lo() & limb4Max
	c = c.rshift(48)

	// Second pass: the 48-bit overflow re-enters at the bottom
	c = addMulU128(uint128{low: t0}, c.lo(), fieldReductionConstant)
	r.n[0] = c.lo() & M
	c = c.rshift(52)
	r.n[1] = t1 + c.lo()

	r.magnitude = 1
	r.normalized = false
	r.verifyLimbs()
}

// Inv sets r to the modular inverse of a, computed as a^(p-2) through a
// fixed addition chain over the cached powers a^45, a^63, a^1019 and
// a^1023 (the base-1024 digits of p-2 are 63, 21 repetitions of 1023,
// 1019, 1023, 1023, 45).
//
// Inv of zero yields zero without signaling; a caller dividing by a value
// that might be zero must guard for it.
func (r *FieldElement) Inv(a *FieldElement) {
	var a2, a3, a4, a5, a10, a11, a21, a42, a45, a63 FieldElement
	var a126, a252, a504, a1008, a1019, a1023 FieldElement

	a2.Sqr(a)
	a3.Mul(&a2, a)
	a4.Sqr(&a2)
	a5.Mul(&a4, a)
	a10.Sqr(&a5)
	a11.Mul(&a10, a)
	a21.Mul(&a11, &a10)
	a42.Sqr(&a21)
	a45.Mul(&a42, &a3)
	a63.Mul(&a42, &a21)
	a126.Sqr(&a63)
	a252.Sqr(&a126)
	a504.Sqr(&a252)
	a1008.Sqr(&a504)
	a1019.Mul(&a1008, &a11)
	a1023.Mul(&a1019, &a4)

	x := a63
	for i := 0; i < 21; i++ {
		for j := 0; j < 10; j++ {
			x.Sqr(&x)
		}
		x.Mul(&x, &a1023)
	}
	for j := 0; j < 10; j++ {
		x.Sqr(&x)
	}
	x.Mul(&x, &a1019)
	for i := 0; i < 2; i++ {
		for j := 0; j < 10; j++ {
			x.Sqr(&x)
		}
		x.Mul(&x, &a1023)
	}
	for j := 0; j < 10; j++ {
		x.Sqr(&x)
	}
	r.Mul(&x, &a45)
}

// Sqrt sets r to a modular square root of a, computed as a^((p+1)/4)
// through a fixed addition chain over the cached powers a^15, a^780,
// a^1022 and a^1023 (the base-1024 digits of (p+1)/4 are 15, 21
// repetitions of 1023, 1022, 1023, 1023, 780).
//
// The routine performs no residue check: when a is not a quadratic residue
// the result is a well-defined but meaningless element. Callers that cannot
// guarantee residuosity must validate the result themselves, by re-squaring
// or through a dependent check such as JacobianPoint.IsValid.
func (r *FieldElement) Sqrt(a *FieldElement) {
	var a2, a3, a6, a12, a15, a30, a60, a120, a240, a255 FieldElement
	var a510, a750, a780, a1020, a1022, a1023 FieldElement

	a2.Sqr(a)
	a3.Mul(&a2, a)
	a6.Sqr(&a3)
	a12.Sqr(&a6)
	a15.Mul(&a12, &a3)
	a30.Sqr(&a15)
	a60.Sqr(&a30)
	a120.Sqr(&a60)
	a240.Sqr(&a120)
	a255.Mul(&a240, &a15)
	a510.Sqr(&a255)
	a750.Mul(&a510, &a240)
	a780.Mul(&a750, &a30)
	a1020.Sqr(&a510)
	a1022.Mul(&a1020, &a2)
	a1023.Mul(&a1022, a)

	x := a15
	for i := 0; i < 21; i++ {
		for j := 0; j < 10; j++ {
			x.Sqr(&x)
		}
		x.Mul(&x, &a1023)
	}
	for j := 0; j < 10; j++ {
		x.Sqr(&x)
	}
	x.Mul(&x, &a1022)
	for i := 0; i < 2; i++ {
		for j := 0; j < 10; j++ {
			x.Sqr(&x)
		}
		x.Mul(&x, &a1023)
	}
	for j := 0; j < 10; j++ {
		x.Sqr(&x)
	}
	r.Mul(&x, &a780)
}
