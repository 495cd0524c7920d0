// Package lfsr implements the two small fixed width linear feedback shift
// registers used by the starfield generator. These are not general random
// sources. They exist to reproduce an exact bit sequence from a fixed seed
// using only a shift and an XOR per step.
package lfsr

import "fmt"

const (
	// StarSeed is the reset value for the star placement register.
	StarSeed = Galois16(0xACE1)
	// TwinkleSeed is the reset value for the twinkle register.
	TwinkleSeed = Fibonacci8(0xA5)

	// Taps for x^16+x^15+x^13+x^4+1 in right shifting Galois form.
	kGALOIS_TAPS = uint16(0xB400)

	kMASK_LOW_BIT  = uint16(0x0001)
	kMASK_LOW_BYTE = uint16(0x00FF)

	// Bit positions XOR'd together for the Fibonacci feed-in.
	kFIB_TAP7 = 7
	kFIB_TAP5 = 5
	kFIB_TAP4 = 4
	kFIB_TAP3 = 3
)

// Galois16 is a 16 bit Galois form LFSR. The zero value is the lock up state
// and never appears when seeded with a non-zero value.
type Galois16 uint16

// Next returns the register after one shift. The low bit shifted out decides
// whether the tap mask is applied.
func (g Galois16) Next() Galois16 {
	v := uint16(g)
	out := v & kMASK_LOW_BIT
	v >>= 1
	if out == kMASK_LOW_BIT {
		v ^= kGALOIS_TAPS
	}
	return Galois16(v)
}

// Step advances the register in place.
func (g *Galois16) Step() {
	*g = g.Next()
}

// LowByteSet returns true when the low 8 bits are all ones. This happens on
// roughly 1 in 256 steps.
func (g Galois16) LowByteSet() bool {
	return uint16(g)&kMASK_LOW_BYTE == kMASK_LOW_BYTE
}

func (g Galois16) String() string {
	return fmt.Sprintf("%.4X", uint16(g))
}

// Fibonacci8 is an 8 bit Fibonacci form LFSR shifting left with taps on
// bits 7,5,4,3 (x^8+x^6+x^5+x^4+1).
type Fibonacci8 uint8

// Next returns the register after one shift. The feed-in bit is computed from
// the old value and becomes the new bit 0.
func (f Fibonacci8) Next() Fibonacci8 {
	v := uint8(f)
	in := ((v >> kFIB_TAP7) ^ (v >> kFIB_TAP5) ^ (v >> kFIB_TAP4) ^ (v >> kFIB_TAP3)) & 0x01
	return Fibonacci8((v << 1) | in)
}

// Step advances the register in place.
func (f *Fibonacci8) Step() {
	*f = f.Next()
}

// Bit returns bit n (0-7) of the register. n is reduced mod 8.
func (f Fibonacci8) Bit(n int) bool {
	return (uint8(f)>>(uint(n)&0x07))&0x01 == 0x01
}

func (f Fibonacci8) String() string {
	return fmt.Sprintf("%.2X", uint8(f))
}
