package saes

import "github.com/ericlagergren/toycrypto/internal/gf16"

// matrix is a 2x2 matrix over GF(2^4), indexed [row][col].
type matrix [2][2]uint8

var (
	// mix is the MixColumns matrix.
	mix = matrix{
		{0x1, 0x4},
		{0x4, 0x1},
	}
	// invMix is the inverse of mix.
	invMix = matrix{
		{0x9, 0x2},
		{0x2, 0x9},
	}
)

// toMatrix views x as a state matrix. Nibbles fill the matrix
// column by column, most significant first:
//
//	| b15..b12  b7..b4 |
//	| b11..b8   b3..b0 |
func toMatrix(x uint16) matrix {
	return matrix{
		{uint8(x>>12) & 0x0f, uint8(x>>4) & 0x0f},
		{uint8(x>>8) & 0x0f, uint8(x) & 0x0f},
	}
}

// fromMatrix is the inverse of toMatrix.
func fromMatrix(s matrix) uint16 {
	return uint16(s[0][0])<<12 |
		uint16(s[1][0])<<8 |
		uint16(s[0][1])<<4 |
		uint16(s[1][1])
}

// mul returns m*s over GF(2^4).
func (m *matrix) mul(s matrix) matrix {
	var r matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				r[i][j] = gf16.Add(r[i][j], gf16.Mul(m[i][k], s[k][j]))
			}
		}
	}
	return r
}

// mixColumns multiplies the state matrix of x by m.
func mixColumns(x uint16, m *matrix) uint16 {
	return fromMatrix(m.mul(toMatrix(x)))
}

// shiftRows rotates the second row of the state matrix, which
// swaps nibbles 1 and 3. It is an involution.
func shiftRows(x uint16) uint16 {
	return x&0xf0f0 | (x&0x000f)<<8 | (x&0x0f00)>>8
}
