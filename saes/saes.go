// Package saes implements Simplified AES (S-AES).
//
// S-AES is a teaching cipher with the structure of AES scaled
// down to a 16-bit block, a 16-bit key, and two rounds over
// 4-bit nibbles. It provides no security and exists for study
// and cryptanalysis exercises.
//
// References:
//
//	[saes]: Musa, Schaefer, Wedig. "A Simplified AES Algorithm
//	        and Its Linear and Differential Cryptanalyses."
//	        Cryptologia 27(2), 2003.
package saes

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"

	"github.com/ericlagergren/toycrypto/internal/subtle"
)

const (
	// BlockSize is the size in bytes of an S-AES block.
	BlockSize = 16 / 8
	// KeySize is the size in bytes of an S-AES key.
	KeySize = 16 / 8
	// Rounds is the number of S-AES rounds.
	Rounds = 2
)

type block struct {
	rk RoundKeys
}

var _ cipher.Block = (*block)(nil)

// New creates an S-AES cipher.Block.
//
// Blocks are read and written big endian, so the first byte
// holds the two most significant nibbles. New does not provide
// a mode of operation; each call to Encrypt or Decrypt handles
// exactly one block.
func New(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, errors.New("saes: bad key length")
	}
	return &block{
		rk: ExpandKey(binary.BigEndian.Uint16(key)),
	}, nil
}

func (b *block) BlockSize() int {
	return BlockSize
}

func (b *block) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("saes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("saes: output not full block")
	}
	if subtle.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("saes: invalid buffer overlap")
	}
	x := binary.BigEndian.Uint16(src)
	binary.BigEndian.PutUint16(dst, EncryptWithKeys(x, &b.rk))
}

func (b *block) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("saes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("saes: output not full block")
	}
	if subtle.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("saes: invalid buffer overlap")
	}
	x := binary.BigEndian.Uint16(src)
	binary.BigEndian.PutUint16(dst, DecryptWithKeys(x, &b.rk))
}

// Encrypt encrypts a single block.
func Encrypt(plaintext, key uint16) uint16 {
	rk := ExpandKey(key)
	return EncryptWithKeys(plaintext, &rk)
}

// Decrypt decrypts a single block.
func Decrypt(ciphertext, key uint16) uint16 {
	rk := ExpandKey(key)
	return DecryptWithKeys(ciphertext, &rk)
}

// EncryptWithKeys encrypts a single block using expanded round
// keys.
func EncryptWithKeys(x uint16, rk *RoundKeys) uint16 {
	// Round 0
	x ^= rk[0]

	// Round 1
	x = subNibbles(x, &sbox)
	x = shiftRows(x)
	x = mixColumns(x, &mix)
	x ^= rk[1]

	// Round 2 omits MixColumns.
	x = subNibbles(x, &sbox)
	x = shiftRows(x)
	x ^= rk[2]
	return x
}

// DecryptWithKeys decrypts a single block using expanded round
// keys.
func DecryptWithKeys(x uint16, rk *RoundKeys) uint16 {
	x ^= rk[2]
	x = shiftRows(x)
	x = subNibbles(x, &invSbox)

	x ^= rk[1]
	x = mixColumns(x, &invMix)
	x = shiftRows(x)
	x = subNibbles(x, &invSbox)

	x ^= rk[0]
	return x
}
