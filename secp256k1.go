package secp256k1

// Concrete point types over the stock 5x52 field backend.
type (
	// GroupElementAffine is an affine secp256k1 point over FieldElement.
	GroupElementAffine = AffinePoint[FieldElement, *FieldElement]
	// GroupElementJacobian is a Jacobian secp256k1 point over FieldElement.
	GroupElementJacobian = JacobianPoint[FieldElement, *FieldElement]
)

// Generator point for secp256k1
var (
	// GeneratorX is the x coordinate of the curve generator
	GeneratorX FieldElement
	// GeneratorY is the y coordinate of the curve generator
	GeneratorY FieldElement
	// GeneratorAffine is the curve generator as an affine point
	GeneratorAffine GroupElementAffine
)

func init() {
	// Generator X: 0x79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798
	gxBytes := []byte{
		0x79, 0xBE, 0x66, 0x7E, 0xF9, 0xDC, 0xBB, 0xAC, 0x55, 0xA0, 0x62, 0x95, 0xCE, 0x87, 0x0B, 0x07,
		0x02, 0x9B, 0xFC, 0xDB, 0x2D, 0xCE, 0x28, 0xD9, 0x59, 0xF2, 0x81, 0x5B, 0x16, 0xF8, 0x17, 0x98,
	}

	// Generator Y: 0x483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8
	gyBytes := []byte{
		0x48, 0x3A, 0xDA, 0x77, 0x26, 0xA3, 0xC4, 0x65, 0x5D, 0xA4, 0xFB, 0xFC, 0x0E, 0x11, 0x08, 0xA8,
		0xFD, 0x17, 0xB4, 0x48, 0xA6, 0x85, 0x54, 0x19, 0x9C, 0x47, 0xD0, 0x8F, 0xFB, 0x10, 0xD4, 0xB8,
	}

	GeneratorX.SetB32(gxBytes)
	GeneratorY.SetB32(gyBytes)
	GeneratorAffine.SetXY(&GeneratorX, &GeneratorY)
}
