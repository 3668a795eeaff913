// Package gf16 implements arithmetic over GF(2^4).
//
// Elements are nibbles carried in the low four bits of a uint8.
// The field is defined by the irreducible polynomial
//
//	m(x) = x^4 + x + 1
package gf16

// Modulus is m(x) = x^4 + x + 1.
const Modulus = 0x13

// Add returns a + b, which in a field of characteristic two is
// also a - b.
func Add(a, b uint8) uint8 {
	return (a ^ b) & 0x0f
}

// Mul returns a * b mod m(x).
//
// Bits above the low nibble of either operand are ignored.
func Mul(a, b uint8) uint8 {
	a &= 0x0f
	b &= 0x0f

	var p uint8
	for i := 0; i < 4; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x08
		a <<= 1
		if hi != 0 {
			a ^= Modulus
		}
		b >>= 1
	}
	return p & 0x0f
}

// Inv returns the multiplicative inverse of a.
//
// Zero has no inverse; Inv(0) returns 0.
func Inv(a uint8) uint8 {
	// a^-1 = a^14 since the multiplicative group has order 15.
	a &= 0x0f
	a2 := Mul(a, a)
	a4 := Mul(a2, a2)
	a8 := Mul(a4, a4)
	return Mul(Mul(a8, a4), a2)
}
