package vga

import "fmt"

// Color is a 3 bit RGB value with one bit per channel.
type Color uint8

const (
	Black   = Color(0x00)
	Blue    = Color(0x01)
	Green   = Color(0x02)
	Red     = Color(0x04)
	Cyan    = Green | Blue
	Magenta = Red | Blue
	Yellow  = Red | Green
	White   = Red | Green | Blue

	kMASK_COLOR = Color(0x07)
)

// RGB builds a color from individual channel bits.
func RGB(r, g, b bool) Color {
	var c Color
	if r {
		c |= Red
	}
	if g {
		c |= Green
	}
	if b {
		c |= Blue
	}
	return c
}

// R returns the red channel.
func (c Color) R() bool { return c&Red == Red }

// G returns the green channel.
func (c Color) G() bool { return c&Green == Green }

// B returns the blue channel.
func (c Color) B() bool { return c&Blue == Blue }

// Invert complements all 3 channels.
func (c Color) Invert() Color {
	return ^c & kMASK_COLOR
}

func (c Color) String() string {
	return fmt.Sprintf("%.3b", uint8(c&kMASK_COLOR))
}

// Sample is everything a display sees on one pixel clock. HSync and VSync are
// line levels, not pulse states (VGA syncs are active low so false == in sync).
type Sample struct {
	Color Color
	HSync bool
	VSync bool
}
