package starfield

import "github.com/jmchacon/starfield/vga"

const (
	// Lines above this are deep space where stars draw. Below is the horizon band.
	kHorizonLine = 360
	// The glow is extinguished this many lines below the horizon.
	kGlowDepth = 80
	// Green drops out of the glow this many lines below the horizon leaving red.
	kGlowGreenDepth = 40
	// Low bits compared for the glow dither.
	kMASK_DITHER = 0x07
)

// scene is everything the compositor looks at for one pixel.
type scene struct {
	h         int
	v         int
	visible   bool
	star      bool // The star register flags this position.
	twinkleOn bool // Stars on this line are at full brightness.
	glow      bool // Horizon glow mode is on.
}

// inSpace returns true above the horizon.
func (s scene) inSpace() bool {
	return s.v < kHorizonLine
}

// inHorizon returns true for visible pixels on or below the horizon.
func (s scene) inHorizon() bool {
	return s.v >= kHorizonLine && s.visible
}

// horizonDist is only meaningful when inHorizon() is true.
func (s scene) horizonDist() int {
	return s.v - kHorizonLine
}

// horizonGlow computes the dithered glow band. Comparing the low bits of the
// horizontal position against the low bits of the distance gives a pattern
// whose coverage changes with distance.
func (s scene) horizonGlow() bool {
	if !s.glow || !s.inHorizon() {
		return false
	}
	d := s.horizonDist()
	return s.h&kMASK_DITHER < d&kMASK_DITHER && d < kGlowDepth
}

// composite returns the color for a pixel before any inversion. Blue ignores
// twinkle so a dimmed star shows as blue instead of vanishing.
func composite(s scene) vga.Color {
	if !s.visible {
		return vga.Black
	}
	starOn := s.star && s.inSpace()
	starRG := starOn && s.twinkleOn

	glow := s.horizonGlow()
	glowG := glow && s.horizonDist() < kGlowGreenDepth

	return vga.RGB(starRG || glow, starRG || glowG, starOn)
}
