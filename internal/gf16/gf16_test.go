package gf16

import (
	"testing"
	"testing/quick"
)

// mulSlow multiplies as polynomials and reduces afterward.
func mulSlow(a, b uint8) uint8 {
	var p uint16
	for i := 0; i < 4; i++ {
		if b&(1<<i) != 0 {
			p ^= uint16(a&0x0f) << i
		}
	}
	for i := 7; i >= 4; i-- {
		if p&(1<<i) != 0 {
			p ^= Modulus << (i - 4)
		}
	}
	return uint8(p)
}

func TestMulIdentity(t *testing.T) {
	for a := uint8(0); a < 16; a++ {
		if got := Mul(a, 1); got != a {
			t.Fatalf("%#x * 1: expected %#x, got %#x", a, a, got)
		}
		if got := Mul(1, a); got != a {
			t.Fatalf("1 * %#x: expected %#x, got %#x", a, a, got)
		}
		if got := Mul(a, 0); got != 0 {
			t.Fatalf("%#x * 0: expected 0, got %#x", a, got)
		}
	}
}

func TestMulKnown(t *testing.T) {
	for _, tc := range []struct {
		a, b, want uint8
	}{
		{0x4, 0x4, 0x3}, // x^4 = x + 1
		{0x2, 0x9, 0x1},
		{0x9, 0x4, 0x2},
		{0x8, 0x2, 0x3},
		{0xf, 0xf, 0xa},
	} {
		if got := Mul(tc.a, tc.b); got != tc.want {
			t.Errorf("%#x * %#x: expected %#x, got %#x",
				tc.a, tc.b, tc.want, got)
		}
	}
}

func TestMulExhaustive(t *testing.T) {
	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			want := mulSlow(a, b)
			if got := Mul(a, b); got != want {
				t.Fatalf("%#x * %#x: expected %#x, got %#x",
					a, b, want, got)
			}
			if Mul(a, b) != Mul(b, a) {
				t.Fatalf("%#x * %#x is not commutative", a, b)
			}
		}
	}
}

func TestMulIgnoresHighBits(t *testing.T) {
	f := func(a, b uint8) bool {
		return Mul(a, b) == Mul(a&0x0f, b&0x0f) && Mul(a, b) < 16
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestMulDistributes(t *testing.T) {
	f := func(a, b, c uint8) bool {
		return Mul(a, Add(b, c)) == Add(Mul(a, b), Mul(a, c))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestInv(t *testing.T) {
	if got := Inv(0); got != 0 {
		t.Fatalf("Inv(0): expected 0, got %#x", got)
	}
	for a := uint8(1); a < 16; a++ {
		if got := Mul(a, Inv(a)); got != 1 {
			t.Fatalf("%#x * Inv(%#x) = %#x", a, a, got)
		}
	}
}
