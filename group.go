package secp256k1

// FieldBackend is the capability set the curve layer requires from a field
// implementation. It is satisfied by a pointer to the element type E, so the
// point types can hold elements by value and still drive them through
// mutating pointer-receiver methods. *FieldElement is the stock backend;
// any field over the same prime with the same lazy-magnitude contract can
// be substituted without touching the point logic.
type FieldBackend[E any] interface {
	*E

	// SetInt sets the element to a small non-negative integer.
	SetInt(int)
	// SetHex imports a big-endian hex string (permissive; never fails).
	SetHex(string)
	// Hex exports the canonical value as fixed-width uppercase hex.
	Hex() string
	// Normalize reduces to the canonical representative, magnitude 1.
	Normalize()
	// IsZero, IsOdd and Equal normalize their operands in place.
	IsZero() bool
	IsOdd() bool
	Equal(*E) bool
	// Add accumulates; magnitudes sum.
	Add(*E)
	// MulInt scales by a small integer; magnitude scales by it.
	MulInt(int)
	// Negate negates an operand of magnitude at most m; result m+1.
	Negate(a *E, m int)
	// Mul and Sqr accept magnitude at most 8 and produce magnitude 1.
	Mul(a, b *E)
	Sqr(a *E)
	// Inv computes the modular inverse; Inv(0) = 0.
	Inv(a *E)
	// Sqrt computes a candidate square root with no residue check.
	Sqrt(a *E)
}

// AffinePoint represents a point on the secp256k1 curve y^2 = x^3 + 7 in
// affine coordinates, or the group identity when the infinity flag is set
// (in which case the coordinates are meaningless).
type AffinePoint[E any, F FieldBackend[E]] struct {
	x, y     E
	infinity bool
}

// JacobianPoint represents a curve point in Jacobian projective coordinates
// (x, y, z), denoting the affine point (x/z^2, y/z^3) when not infinity.
// z is never zero for a finite point; z = 1 is the canonical just-promoted
// affine case.
type JacobianPoint[E any, F FieldBackend[E]] struct {
	x, y, z  E
	infinity bool
}

// SetXY sets the point to the given affine coordinates. No curve-membership
// check is performed.
func (r *AffinePoint[E, F]) SetXY(x, y *E) {
	r.x = *x
	r.y = *y
	r.infinity = false
}

// SetInfinity sets the point to the group identity.
func (r *AffinePoint[E, F]) SetInfinity() {
	F(&r.x).SetInt(0)
	F(&r.y).SetInt(0)
	r.infinity = true
}

// IsInfinity returns true if the point is the group identity.
func (r *AffinePoint[E, F]) IsInfinity() bool {
	return r.infinity
}

// X returns a pointer to the x coordinate. Meaningful only for finite
// points; mutating it through the pointer is the caller's responsibility.
func (r *AffinePoint[E, F]) X() *E {
	return &r.x
}

// Y returns a pointer to the y coordinate.
func (r *AffinePoint[E, F]) Y() *E {
	return &r.y
}

// Negate sets r to the negation of p. p's y coordinate is normalized in
// place as a side effect; the infinity flag is copied through.
func (r *AffinePoint[E, F]) Negate(p *AffinePoint[E, F]) {
	r.infinity = p.infinity
	r.x = p.x
	F(&p.y).Normalize()
	F(&r.y).Negate(&p.y, 1)
}

// Equal returns true if both points denote the same group element. Finite
// coordinates are normalized in place as a side effect.
func (r *AffinePoint[E, F]) Equal(p *AffinePoint[E, F]) bool {
	if r.infinity || p.infinity {
		return r.infinity == p.infinity
	}
	return F(&r.x).Equal(&p.x) && F(&r.y).Equal(&p.y)
}

// String renders "(x,y)" in canonical hex, or "(inf)". Diagnostic form, not
// a wire format.
func (r *AffinePoint[E, F]) String() string {
	if r.infinity {
		return "(inf)"
	}
	return "(" + F(&r.x).Hex() + "," + F(&r.y).Hex() + ")"
}

// SetAffine promotes an affine point to Jacobian coordinates with z = 1.
func (r *JacobianPoint[E, F]) SetAffine(p *AffinePoint[E, F]) {
	r.x = p.x
	r.y = p.y
	F(&r.z).SetInt(1)
	r.infinity = p.infinity
}

// SetInfinity sets the point to the group identity.
func (r *JacobianPoint[E, F]) SetInfinity() {
	F(&r.x).SetInt(0)
	F(&r.y).SetInt(1)
	F(&r.z).SetInt(0)
	r.infinity = true
}

// IsInfinity returns true if the point is the group identity.
func (r *JacobianPoint[E, F]) IsInfinity() bool {
	return r.infinity
}

// IsValid returns true if the point is a finite point on the curve. The
// curve equation is evaluated in projective form,
//
//	y^2 = x^3 + 7*z^6
//
// which avoids an inversion. Infinity is reported as not valid.
func (r *JacobianPoint[E, F]) IsValid() bool {
	if r.infinity {
		return false
	}
	var y2, x3, z2, z6 E
	F(&y2).Sqr(&r.y)
	F(&x3).Sqr(&r.x)
	F(&x3).Mul(&x3, &r.x)
	F(&z2).Sqr(&r.z)
	F(&z6).Sqr(&z2)
	F(&z6).Mul(&z6, &z2)
	F(&z6).MulInt(7)
	F(&x3).Add(&z6)
	return F(&y2).Equal(&x3)
}

// GetAffine converts the point to affine coordinates, writing them to aff.
// This costs one field inversion, by far the most expensive operation in the
// stack, so chains of additions and doublings should defer it as long as
// possible. The receiver is rewritten to its z = 1 representation as a
// side effect.
func (r *JacobianPoint[E, F]) GetAffine(aff *AffinePoint[E, F]) {
	if r.infinity {
		aff.SetInfinity()
		return
	}

	var z2, z3 E
	F(&r.z).Inv(&r.z)
	F(&z2).Sqr(&r.z)
	F(&z3).Mul(&r.z, &z2)
	F(&r.x).Mul(&r.x, &z2)
	F(&r.y).Mul(&r.y, &z3)
	F(&r.z).SetInt(1)
	aff.SetXY(&r.x, &r.y)
}

// SetCompressed sets the point from an x coordinate and the requested
// oddness of y, recovering y as Sqrt(x^3 + 7). Sqrt performs no residue
// check, so when x^3 + 7 is not a quadratic residue the resulting point is
// simply not on the curve; callers must confirm with IsValid.
func (r *JacobianPoint[E, F]) SetCompressed(x *E, odd bool) {
	r.x = *x
	var x2, c E
	F(&x2).Sqr(&r.x)
	F(&c).Mul(&r.x, &x2)
	var seven E
	F(&seven).SetInt(7)
	F(&c).Add(&seven)
	F(&r.y).Sqrt(&c)
	F(&r.z).SetInt(1)
	r.infinity = false
	if F(&r.y).IsOdd() != odd {
		F(&r.y).Negate(&r.y, 1)
	}
}

// SetDouble sets r to twice p. Doubling infinity, or a point whose y
// normalizes to zero (a 2-torsion point), yields infinity; p's y is
// normalized in place by that check. The formula computes z' = 2yz and
// derives x' and y' from x^2, y^2 and y^4 with small integer scalings,
// saving two squarings over generic addition. r may alias p.
func (r *JacobianPoint[E, F]) SetDouble(p *JacobianPoint[E, F]) {
	if p.infinity || F(&p.y).IsZero() {
		r.SetInfinity()
		return
	}
	r.infinity = false

	var t1, t2, t3, t4 E
	F(&r.z).Mul(&p.y, &p.z)
	F(&r.z).MulInt(2)     // Z' = 2*Y*Z (2)
	F(&t1).Sqr(&p.x)
	F(&t1).MulInt(3)      // T1 = 3*X^2 (3)
	F(&t2).Sqr(&t1)       // T2 = 9*X^4 (1)
	F(&t3).Sqr(&p.y)
	F(&t3).MulInt(2)      // T3 = 2*Y^2 (2)
	F(&t4).Sqr(&t3)
	F(&t4).MulInt(2)      // T4 = 8*Y^4 (2)
	F(&t3).Mul(&p.x, &t3) // T3 = 2*X*Y^2 (1)
	r.x = t3
	F(&r.x).MulInt(4)     // X' = 8*X*Y^2 (4)
	F(&r.x).Negate(&r.x, 4)
	F(&r.x).Add(&t2)      // X' = 9*X^4 - 8*X*Y^2 (6)
	F(&t2).Negate(&t2, 1) // T2 = -9*X^4 (2)
	F(&t3).MulInt(6)      // T3 = 12*X*Y^2 (6)
	F(&t3).Add(&t2)       // T3 = 12*X*Y^2 - 9*X^4 (8)
	F(&r.y).Mul(&t1, &t3) // Y' = 36*X^3*Y^2 - 27*X^6 (1)
	F(&t2).Negate(&t4, 2) // T2 = -8*Y^4 (3)
	F(&r.y).Add(&t2)      // Y' = 36*X^3*Y^2 - 27*X^6 - 8*Y^4 (4)
}

// SetAdd sets r to p + q with both operands in Jacobian coordinates.
// Infinity operands short-circuit by copy; coincident points delegate to
// SetDouble; a point plus its negation yields infinity. r may alias either
// operand: all operand fields are consumed into locals before any receiver
// coordinate is written (the z write happens in the same call that performs
// the last read of the operand z values).
func (r *JacobianPoint[E, F]) SetAdd(p, q *JacobianPoint[E, F]) {
	if p.infinity {
		*r = *q
		return
	}
	if q.infinity {
		*r = *p
		return
	}

	var z12, z22, u1, u2, s1, s2 E
	F(&z22).Sqr(&q.z)
	F(&z12).Sqr(&p.z)
	F(&u1).Mul(&p.x, &z22)
	F(&u2).Mul(&q.x, &z12)
	F(&s1).Mul(&p.y, &z22)
	F(&s1).Mul(&s1, &q.z)
	F(&s2).Mul(&q.y, &z12)
	F(&s2).Mul(&s2, &p.z)
	if F(&u1).Equal(&u2) {
		if F(&s1).Equal(&s2) {
			r.SetDouble(p)
		} else {
			r.SetInfinity()
		}
		return
	}
	r.infinity = false

	var h, rr, r2, h2, h3, t E
	F(&h).Negate(&u1, 1)
	F(&h).Add(&u2) // H = U2 - U1
	F(&rr).Negate(&s1, 1)
	F(&rr).Add(&s2) // R = S2 - S1
	F(&r2).Sqr(&rr)
	F(&h2).Sqr(&h)
	F(&h3).Mul(&h, &h2)
	F(&r.z).Mul(&p.z, &q.z)
	F(&r.z).Mul(&r.z, &h) // Z' = Z1*Z2*H
	F(&t).Mul(&u1, &h2)
	r.x = t
	F(&r.x).MulInt(2)
	F(&r.x).Add(&h3)
	F(&r.x).Negate(&r.x, 3)
	F(&r.x).Add(&r2) // X' = R^2 - H^3 - 2*U1*H^2
	F(&r.y).Negate(&r.x, 5)
	F(&r.y).Add(&t)
	F(&r.y).Mul(&r.y, &rr)
	F(&h3).Mul(&h3, &s1)
	F(&h3).Negate(&h3, 1)
	F(&r.y).Add(&h3) // Y' = R*(U1*H^2 - X') - S1*H^3
}

// SetAddAffine sets r to p + q where q is affine, specializing SetAdd for
// z2 = 1 and saving a squaring/multiplication pair. p's x and y enter the
// comparison as normalized copies; p itself is not mutated. r may alias p.
func (r *JacobianPoint[E, F]) SetAddAffine(p *JacobianPoint[E, F], q *AffinePoint[E, F]) {
	if p.infinity {
		r.x = q.x
		r.y = q.y
		F(&r.z).SetInt(1)
		r.infinity = q.infinity
		return
	}
	if q.infinity {
		*r = *p
		return
	}

	var z12, u1, u2, s1, s2 E
	F(&z12).Sqr(&p.z)
	u1 = p.x
	F(&u1).Normalize()
	F(&u2).Mul(&q.x, &z12)
	s1 = p.y
	F(&s1).Normalize()
	F(&s2).Mul(&q.y, &z12)
	F(&s2).Mul(&s2, &p.z)
	if F(&u1).Equal(&u2) {
		if F(&s1).Equal(&s2) {
			r.SetDouble(p)
		} else {
			r.SetInfinity()
		}
		return
	}
	r.infinity = false

	var h, rr, r2, h2, h3, t E
	F(&h).Negate(&u1, 1)
	F(&h).Add(&u2)
	F(&rr).Negate(&s1, 1)
	F(&rr).Add(&s2)
	F(&r2).Sqr(&rr)
	F(&h2).Sqr(&h)
	F(&h3).Mul(&h, &h2)
	r.z = p.z
	F(&r.z).Mul(&r.z, &h) // Z' = Z1*H
	F(&t).Mul(&u1, &h2)
	r.x = t
	F(&r.x).MulInt(2)
	F(&r.x).Add(&h3)
	F(&r.x).Negate(&r.x, 3)
	F(&r.x).Add(&r2)
	F(&r.y).Negate(&r.x, 5)
	F(&r.y).Add(&t)
	F(&r.y).Mul(&r.y, &rr)
	F(&h3).Mul(&h3, &s1)
	F(&h3).Negate(&h3, 1)
	F(&r.y).Add(&h3)
}

// String renders the affine form of the point, paying the inversion on a
// copy so the receiver keeps its projective coordinates.
func (r *JacobianPoint[E, F]) String() string {
	tmp := *r
	var aff AffinePoint[E, F]
	tmp.GetAffine(&aff)
	return aff.String()
}
