// Package vga implements the horizontal/vertical timing generator for a
// VGA style raster along with the sample type passed between a signal
// source and a display.
package vga

import (
	"fmt"
	"time"
)

// PixelClock is the nominal 640x480@60Hz dot clock in Hz.
const PixelClock = 25175000

// Timing describes the raster schedule for both axes. All sync
// positions are derived from these so they can't drift from the totals.
type Timing struct {
	HVisible    int // Visible pixels per line.
	HFrontPorch int // Blank pixels between visible and the sync pulse.
	HSyncPulse  int // Width of the horizontal sync pulse in pixels.
	HBackPorch  int // Blank pixels between the sync pulse and the next line.
	VVisible    int // Visible lines per frame.
	VFrontPorch int // Blank lines between visible and the sync pulse.
	VSyncPulse  int // Width of the vertical sync pulse in lines.
	VBackPorch  int // Blank lines between the sync pulse and the next frame.
}

// Mode640x480 is the standard 640x480@60Hz schedule giving an 800x525 raster.
var Mode640x480 = Timing{
	HVisible:    640,
	HFrontPorch: 16,
	HSyncPulse:  96,
	HBackPorch:  48,
	VVisible:    480,
	VFrontPorch: 10,
	VSyncPulse:  2,
	VBackPorch:  33,
}

// HTotal returns the number of pixel clocks in a line.
func (t Timing) HTotal() int {
	return t.HVisible + t.HFrontPorch + t.HSyncPulse + t.HBackPorch
}

// VTotal returns the number of lines in a frame.
func (t Timing) VTotal() int {
	return t.VVisible + t.VFrontPorch + t.VSyncPulse + t.VBackPorch
}

// HSyncStart returns the first pixel of the horizontal sync pulse.
func (t Timing) HSyncStart() int {
	return t.HVisible + t.HFrontPorch
}

// HSyncEnd returns the first pixel after the horizontal sync pulse.
func (t Timing) HSyncEnd() int {
	return t.HSyncStart() + t.HSyncPulse
}

// VSyncStart returns the first line of the vertical sync pulse.
func (t Timing) VSyncStart() int {
	return t.VVisible + t.VFrontPorch
}

// VSyncEnd returns the first line after the vertical sync pulse.
func (t Timing) VSyncEnd() int {
	return t.VSyncStart() + t.VSyncPulse
}

// FrameDuration returns the wall clock time one frame takes at PixelClock.
func (t Timing) FrameDuration() time.Duration {
	return time.Duration(int64(t.HTotal()) * int64(t.VTotal()) * int64(time.Second) / PixelClock)
}

// Validate returns an error if any field is non-positive.
func (t Timing) Validate() error {
	for _, f := range []struct {
		name string
		val  int
	}{
		{"HVisible", t.HVisible},
		{"HFrontPorch", t.HFrontPorch},
		{"HSyncPulse", t.HSyncPulse},
		{"HBackPorch", t.HBackPorch},
		{"VVisible", t.VVisible},
		{"VFrontPorch", t.VFrontPorch},
		{"VSyncPulse", t.VSyncPulse},
		{"VBackPorch", t.VBackPorch},
	} {
		if f.val <= 0 {
			return fmt.Errorf("timing %s must be positive: %d", f.name, f.val)
		}
	}
	return nil
}
