package starfield

import (
	"fmt"

	"github.com/jmchacon/starfield/vga"
)

// Bit positions on the dedicated output bus. Follows the usual Tiny VGA
// layout where each channel has 2 bits. With only 1 bit per channel both
// carry the same value.
const (
	kPIN_R1    = uint8(0x01)
	kPIN_G1    = uint8(0x02)
	kPIN_B1    = uint8(0x04)
	kPIN_VSYNC = uint8(0x08)
	kPIN_R0    = uint8(0x10)
	kPIN_G0    = uint8(0x20)
	kPIN_B0    = uint8(0x40)
	kPIN_HSYNC = uint8(0x80)

	// The auxiliary bidirectional lines aren't used. They're never driven
	// and never enabled as outputs.
	kAUX_IDLE        = uint8(0x00)
	kAUX_ENABLE_NONE = uint8(0x00)
)

// Output is everything the chip presents on its pins for one clock.
type Output struct {
	vga.Sample
	Aux       uint8 // Value on the auxiliary lines. Always idle.
	AuxEnable uint8 // Output enables for the auxiliary lines. Always off.
}

// output builds the pin state from the final color and the sync pulse states.
// Both syncs are active low so the level is the complement of the pulse.
func output(c vga.Color, hsync, vsync bool) Output {
	return Output{
		Sample: vga.Sample{
			Color: c,
			HSync: !hsync,
			VSync: !vsync,
		},
		Aux:       kAUX_IDLE,
		AuxEnable: kAUX_ENABLE_NONE,
	}
}

// Pins returns the dedicated output bus.
func (o Output) Pins() uint8 {
	var p uint8
	if o.Color.R() {
		p |= kPIN_R1 | kPIN_R0
	}
	if o.Color.G() {
		p |= kPIN_G1 | kPIN_G0
	}
	if o.Color.B() {
		p |= kPIN_B1 | kPIN_B0
	}
	if o.HSync {
		p |= kPIN_HSYNC
	}
	if o.VSync {
		p |= kPIN_VSYNC
	}
	return p
}

func (o Output) String() string {
	return fmt.Sprintf("rgb: %s hsync: %t vsync: %t pins: %.2X", o.Color, o.HSync, o.VSync, o.Pins())
}
