package saes

// sbox is the S-AES nibble substitution.
var sbox = [16]uint8{
	0x9, 0x4, 0xa, 0xb,
	0xd, 0x1, 0x8, 0x5,
	0x6, 0x2, 0x0, 0x3,
	0xc, 0xe, 0xf, 0x7,
}

// invSbox is the inverse of sbox.
//
// Invariant: invSbox[sbox[n]] == n.
var invSbox = [16]uint8{
	0xa, 0x5, 0x9, 0xb,
	0x1, 0x7, 0x8, 0xf,
	0x6, 0x0, 0x2, 0x3,
	0xc, 0x4, 0xd, 0xe,
}

func subNib(n uint8, t *[16]uint8) uint8 {
	return t[n&0x0f]
}

// subNibbles substitutes each of the four nibbles of x in
// place.
func subNibbles(x uint16, t *[16]uint8) uint16 {
	return uint16(subNib(uint8(x>>12), t))<<12 |
		uint16(subNib(uint8(x>>8), t))<<8 |
		uint16(subNib(uint8(x>>4), t))<<4 |
		uint16(subNib(uint8(x), t))
}

// subWord applies sbox to both nibbles of a key schedule word.
func subWord(w uint8) uint8 {
	return subNib(w>>4, &sbox)<<4 | subNib(w, &sbox)
}
