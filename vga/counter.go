package vga

// Counter is the free running horizontal/vertical position counter.
// The zero value is not usable, use NewCounter.
type Counter struct {
	t Timing
	h int // Current horizontal position. Wraps at t.HTotal().
	v int // Current vertical position. Only advances on an h wrap and wraps at t.VTotal().

	// Cached from t so Tick() doesn't recompute them every pixel.
	hTotal     int
	vTotal     int
	hSyncStart int
	hSyncEnd   int
	vSyncStart int
	vSyncEnd   int
}

// NewCounter returns a counter for the given timing positioned at (0,0).
func NewCounter(t Timing) *Counter {
	return &Counter{
		t:          t,
		hTotal:     t.HTotal(),
		vTotal:     t.VTotal(),
		hSyncStart: t.HSyncStart(),
		hSyncEnd:   t.HSyncEnd(),
		vSyncStart: t.VSyncStart(),
		vSyncEnd:   t.VSyncEnd(),
	}
}

// Reset moves the counter back to the top left pixel.
func (c *Counter) Reset() {
	c.h = 0
	c.v = 0
}

// Tick advances exactly one pixel period.
func (c *Counter) Tick() {
	c.h++
	if c.h == c.hTotal {
		c.h = 0
		c.v++
		if c.v == c.vTotal {
			c.v = 0
		}
	}
}

// Timing returns the timing this counter was built with.
func (c *Counter) Timing() Timing {
	return c.t
}

// H returns the current horizontal position.
func (c *Counter) H() int {
	return c.h
}

// V returns the current vertical position.
func (c *Counter) V() int {
	return c.v
}

// HSync returns true while the horizontal sync pulse is active.
func (c *Counter) HSync() bool {
	return c.h >= c.hSyncStart && c.h < c.hSyncEnd
}

// VSync returns true while the vertical sync pulse is active.
func (c *Counter) VSync() bool {
	return c.v >= c.vSyncStart && c.v < c.vSyncEnd
}

// Visible returns true inside the displayed area.
func (c *Counter) Visible() bool {
	return c.h < c.t.HVisible && c.v < c.t.VVisible
}

// EndOfLine returns true on the last pixel of a line (the tick before h wraps).
func (c *Counter) EndOfLine() bool {
	return c.h == c.hTotal-1
}

// EndOfFrame returns true on the very last pixel of a frame.
func (c *Counter) EndOfFrame() bool {
	return c.EndOfLine() && c.v == c.vTotal-1
}
