package saes

// Round constants for the second and third round keys.
const (
	rcon1 = 0x80
	rcon2 = 0x30
)

// RoundKeys are the three round keys derived from a 16-bit key.
//
// RoundKeys[0] is the key itself.
type RoundKeys [3]uint16

// ExpandKey derives the round keys for key.
//
// The key is split into two 8-bit words w0 and w1. Each
// subsequent pair of words is
//
//	w[2i]   = w[2i-2] ^ RCON(i) ^ SubNib(RotNib(w[2i-1]))
//	w[2i+1] = w[2i] ^ w[2i-1]
func ExpandKey(key uint16) RoundKeys {
	w0 := uint8(key >> 8)
	w1 := uint8(key)
	w2 := w0 ^ rcon1 ^ subWord(rotWord(w1))
	w3 := w1 ^ w2
	w4 := w2 ^ rcon2 ^ subWord(rotWord(w3))
	w5 := w3 ^ w4
	return RoundKeys{
		key,
		uint16(w2)<<8 | uint16(w3),
		uint16(w4)<<8 | uint16(w5),
	}
}

// rotWord swaps the nibbles of w.
func rotWord(w uint8) uint8 {
	return w<<4 | w>>4
}
