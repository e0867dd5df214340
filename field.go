package secp256k1

import "errors"

// FieldElement represents a field element modulo the secp256k1 field prime
// p = 2^256 - 2^32 - 977, using 5 uint64 limbs in base 2^52.
//
// Values are allowed to be non-canonical: each element carries a magnitude M
// meaning every limb is at most M*(2^53-1), except the most significant one,
// which is at most M*(2^49-1). Operations document how they propagate
// magnitude; only Normalize forces the unique canonical representative in
// [0, p). The magnitude and normalized fields are bookkeeping only: they
// never influence the limb arithmetic, and the bounds they claim are checked
// only when building with the "verify" tag.
type FieldElement struct {
	// n represents sum(i=0..4, n[i] << (i*52)) mod p
	n [5]uint64

	magnitude  int  // magnitude bound this element is known to satisfy
	normalized bool // whether the element is the canonical representative
}

// Field constants
const (
	// Field modulus reduction constant: 2^256 ≡ 2^32 + 977 (mod p)
	fieldReductionConstant = 0x1000003D1
	// Reduction constant scaled by 16, compensating the 48-bit top limb
	// during the wide-product fold
	fieldReductionConstantShifted = 0x1000003D10

	// Maximum values for canonical limbs
	limb0Max = 0xFFFFFFFFFFFFF // 2^52 - 1
	limb4Max = 0x0FFFFFFFFFFFF // 2^48 - 1

	// Field modulus limbs
	fieldModulusLimb0 = 0xFFFFEFFFFFC2F
	fieldModulusLimb1 = 0xFFFFFFFFFFFFF
	fieldModulusLimb2 = 0xFFFFFFFFFFFFF
	fieldModulusLimb3 = 0xFFFFFFFFFFFFF
	fieldModulusLimb4 = 0x0FFFFFFFFFFFF
)

// Field element constants
var (
	// FieldElementOne represents the field element 1
	FieldElementOne = FieldElement{
		n:          [5]uint64{1, 0, 0, 0, 0},
		magnitude:  1,
		normalized: true,
	}

	// FieldElementZero represents the field element 0
	FieldElementZero = FieldElement{
		n:          [5]uint64{0, 0, 0, 0, 0},
		magnitude:  0,
		normalized: true,
	}
)

// SetInt sets a field element to a small non-negative integer. Magnitude 1.
func (r *FieldElement) SetInt(a int) {
	if a < 0 || a > 0x7FFF {
		panic("field element value out of range")
	}

	r.n[0] = uint64(a)
	r.n[1] = 0
	r.n[2] = 0
	r.n[3] = 0
	r.n[4] = 0
	if a == 0 {
		r.magnitude = 0
	} else {
		r.magnitude = 1
	}
	r.normalized = true
}

// SetB32 sets a field element from a 32-byte big-endian array. The value is
// not reduced; magnitude 1.
func (r *FieldElement) SetB32(b []byte) error {
	if len(b) != 32 {
		return errors.New("field element byte array must be 32 bytes")
	}

	// Convert from big-endian bytes to 4x64 limbs, then to 5x52
	var d [4]uint64
	for i := 0; i < 4; i++ {
		d[i] = uint64(b[31-8*i]) | uint64(b[30-8*i])<<8 | uint64(b[29-8*i])<<16 | uint64(b[28-8*i])<<24 |
			uint64(b[27-8*i])<<32 | uint64(b[26-8*i])<<40 | uint64(b[25-8*i])<<48 | uint64(b[24-8*i])<<56
	}
	r.set4x64(d)

	return nil
}

// GetB32 converts a field element to a 32-byte big-endian array, normalizing
// a copy first. The receiver is left untouched.
func (r *FieldElement) GetB32(b []byte) {
	if len(b) != 32 {
		panic("field element byte array must be 32 bytes")
	}

	d := r.get4x64()
	for i := 0; i < 4; i++ {
		b[31-8*i] = byte(d[i])
		b[30-8*i] = byte(d[i] >> 8)
		b[29-8*i] = byte(d[i] >> 16)
		b[28-8*i] = byte(d[i] >> 24)
		b[27-8*i] = byte(d[i] >> 32)
		b[26-8*i] = byte(d[i] >> 40)
		b[25-8*i] = byte(d[i] >> 48)
		b[24-8*i] = byte(d[i] >> 56)
	}
}

// set4x64 loads the limbs from a 4x64 little-endian limb representation.
func (r *FieldElement) set4x64(d [4]uint64) {
	r.n[0] = d[0] & limb0Max
	r.n[1] = ((d[0] >> 52) | (d[1] << 12)) & limb0Max
	r.n[2] = ((d[1] >> 40) | (d[2] << 24)) & limb0Max
	r.n[3] = ((d[2] >> 28) | (d[3] << 36)) & limb0Max
	r.n[4] = d[3] >> 16

	r.magnitude = 1
	r.normalized = false
}

// get4x64 returns the canonical value as 4x64 little-endian limbs,
// normalizing a copy of the receiver.
func (r *FieldElement) get4x64() [4]uint64 {
	t := *r
	t.Normalize()

	var d [4]uint64
	d[0] = t.n[0] | (t.n[1] << 52)
	d[1] = (t.n[1] >> 12) | (t.n[2] << 40)
	d[2] = (t.n[2] >> 24) | (t.n[3] << 28)
	d[3] = (t.n[3] >> 36) | (t.n[4] << 16)
	return d
}

// Normalize reduces a field element to its canonical representation in
// [0, p). Magnitude 1.
//
// The carry pass runs only when some limb exceeds its canonical range; a
// carry escaping the top limb is folded back in at limb 0 scaled by the
// reduction constant, and a value still in [p, 2^256) after propagation is
// recognized by its maximal limb pattern and has p subtracted.
func (r *FieldElement) Normalize() {
	t0, t1, t2, t3, t4 := r.n[0], r.n[1], r.n[2], r.n[3], r.n[4]

	if t0 > limb0Max || t1 > limb0Max || t2 > limb0Max || t3 > limb0Max || t4 > limb4Max {
		c := t0
		t0 = c & limb0Max
		c = (c >> 52) + t1
		t1 = c & limb0Max
		c = (c >> 52) + t2
		t2 = c & limb0Max
		c = (c >> 52) + t3
		t3 = c & limb0Max
		c = (c >> 52) + t4
		t4 = c & limb4Max
		c >>= 48
		if c != 0 {
			// Fold the escaped carry back in at the bottom
			c = c*fieldReductionConstant + t0
			t0 = c & limb0Max
			c = (c >> 52) + t1
			t1 = c & limb0Max
			c = (c >> 52) + t2
			t2 = c & limb0Max
			c = (c >> 52) + t3
			t3 = c & limb0Max
			c = (c >> 52) + t4
			t4 = c & limb4Max
		}
	}

	// The value is now < 2^256; subtract p if it is in [p, 2^256)
	if t4 == fieldModulusLimb4 && t3 == fieldModulusLimb3 && t2 == fieldModulusLimb2 &&
		t1 == fieldModulusLimb1 && t0 >= fieldModulusLimb0 {
		t4 = 0
		t3 = 0
		t2 = 0
		t1 = 0
		t0 -= fieldModulusLimb0
	}

	r.n[0], r.n[1], r.n[2], r.n[3], r.n[4] = t0, t1, t2, t3, t4
	r.magnitude = 1
	r.normalized = true
}

// IsZero returns true if the field element represents zero. The receiver is
// normalized in place as a side effect.
func (r *FieldElement) IsZero() bool {
	r.Normalize()
	return r.n[0] == 0 && r.n[1] == 0 && r.n[2] == 0 && r.n[3] == 0 && r.n[4] == 0
}

// IsOdd returns true if the canonical value of the field element is odd. The
// receiver is normalized in place as a side effect.
func (r *FieldElement) IsOdd() bool {
	r.Normalize()
	return r.n[0]&1 == 1
}

// Equal returns true if two field elements represent the same value. Both
// operands are normalized in place as a side effect.
func (r *FieldElement) Equal(a *FieldElement) bool {
	r.Normalize()
	a.Normalize()
	return r.n[0] == a.n[0] && r.n[1] == a.n[1] && r.n[2] == a.n[2] &&
		r.n[3] == a.n[3] && r.n[4] == a.n[4]
}

// Negate sets r to the negation of a, where m is a magnitude bound on a.
// Computed as (m+1)*p - a limb-wise, which dominates any input of magnitude
// at most m. Result magnitude m+1.
func (r *FieldElement) Negate(a *FieldElement, m int) {
	if m < 0 || m > 31 {
		panic("field negation magnitude out of range")
	}
	a.verifyMagnitude(m)

	k := uint64(m + 1)
	r.n[0] = fieldModulusLimb0*k - a.n[0]
	r.n[1] = fieldModulusLimb1*k - a.n[1]
	r.n[2] = fieldModulusLimb2*k - a.n[2]
	r.n[3] = fieldModulusLimb3*k - a.n[3]
	r.n[4] = fieldModulusLimb4*k - a.n[4]

	r.magnitude = m + 1
	r.normalized = false
	r.verifyLimbs()
}

// Add adds a field element to the receiver: r += a. Magnitudes sum; the
// caller keeps the total within what the next consumer accepts.
func (r *FieldElement) Add(a *FieldElement) {
	r.n[0] += a.n[0]
	r.n[1] += a.n[1]
	r.n[2] += a.n[2]
	r.n[3] += a.n[3]
	r.n[4] += a.n[4]

	r.magnitude += a.magnitude
	r.normalized = false
	r.verifyLimbs()
}

// MulInt multiplies the receiver by a small integer in place. Magnitude
// multiplies by v.
func (r *FieldElement) MulInt(v int) {
	if v < 0 || v > 32 {
		panic("field multiplier out of range")
	}

	uv := uint64(v)
	r.n[0] *= uv
	r.n[1] *= uv
	r.n[2] *= uv
	r.n[3] *= uv
	r.n[4] *= uv

	r.magnitude *= v
	r.normalized = false
	r.verifyLimbs()
}

// hexCvt maps ASCII to nibble values. Characters outside the hex alphabet
// map to 0: hex import degrades silently instead of failing.
var hexCvt = [256]byte{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'a': 10, 'b': 11, 'c': 12, 'd': 13, 'e': 14, 'f': 15,
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14, 'F': 15,
}

const hexDigits = "0123456789ABCDEF"

// SetHex sets a field element from a big-endian hex string. Only the
// trailing 64 characters are considered; shorter strings are right-aligned
// with implicit leading zeros, and unrecognized characters count as 0.
// Parsing never fails. The value is not reduced; magnitude 1.
func (r *FieldElement) SetHex(s string) {
	if len(s) > 64 {
		s = s[len(s)-64:]
	}

	var d [4]uint64
	for i := 0; i < len(s); i++ {
		nib := uint64(hexCvt[s[len(s)-1-i]])
		d[i/16] |= nib << ((i % 16) * 4)
	}
	r.set4x64(d)
}

// Hex returns the canonical value as a fixed-width 64-character uppercase
// big-endian hex string. A copy of the receiver is normalized first.
func (r *FieldElement) Hex() string {
	d := r.get4x64()
	var out [64]byte
	for i := 63; i >= 0; i-- {
		out[63-i] = hexDigits[(d[i/16]>>((i%16)*4))&0xF]
	}
	return string(out[:])
}

// String implements fmt.Stringer as the canonical hex form.
func (r *FieldElement) String() string {
	return r.Hex()
}
