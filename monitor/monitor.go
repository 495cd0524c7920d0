// Package monitor implements a VGA display which locks onto the sync levels
// of an incoming sample stream and paints the visible area into an image.
// Like a real monitor it knows nothing about the source beyond the timing
// schedule. Lines start a fixed number of clocks after the horizontal sync
// pulse begins and frames complete when the vertical sync pulse begins.
package monitor

import (
	"errors"
	"image"
	"image/color"

	"github.com/jmchacon/starfield/vga"
)

// 1 bit per channel means full on or full off.
var kPalette = [8]color.NRGBA{
	vga.Black:   {0x00, 0x00, 0x00, 0xFF},
	vga.Blue:    {0x00, 0x00, 0xFF, 0xFF},
	vga.Green:   {0x00, 0xFF, 0x00, 0xFF},
	vga.Cyan:    {0x00, 0xFF, 0xFF, 0xFF},
	vga.Red:     {0xFF, 0x00, 0x00, 0xFF},
	vga.Magenta: {0xFF, 0x00, 0xFF, 0xFF},
	vga.Yellow:  {0xFF, 0xFF, 0x00, 0xFF},
	vga.White:   {0xFF, 0xFF, 0xFF, 0xFF},
}

// RGBA returns the displayed color for a 3 bit color.
func RGBA(c vga.Color) color.NRGBA {
	return kPalette[c&vga.White]
}

// Stats holds counters about what the monitor has seen so far.
type Stats struct {
	Samples     int // Total samples seen.
	Lines       int // Horizontal sync pulses seen.
	Frames      int // Vertical sync pulses seen (each one completes a frame).
	HSyncErrors int // Lines whose length didn't match the timing.
	VSyncErrors int // Frames whose line count didn't match the timing.
}

// Monitor is a sync locked display.
type Monitor struct {
	t         vga.Timing
	picture   *image.NRGBA // The in memory representation of a single frame.
	frameDone func(*image.NRGBA)
	x         int  // Position within the visible line. Negative during back porch.
	y         int  // Position within the visible frame. Negative during back porch.
	hsync     bool // Last horizontal sync level.
	vsync     bool // Last vertical sync level.
	hLocked   bool // True once a horizontal sync pulse has been seen.
	vLocked   bool // True once a vertical sync pulse has been seen.
	lineLen   int  // Samples since the last horizontal sync pulse began.
	lines     int  // Lines since the last vertical sync pulse began.
	hTotal    int
	vTotal    int
	stats     Stats
}

// MonitorDef defines the display.
type MonitorDef struct {
	// Timing is the schedule to lock to. If zero vga.Mode640x480 is used.
	Timing vga.Timing
	// FrameDone is a non-optional function which will be called at the start of
	// every vertical sync pulse with the frame just painted. The image is
	// reused for the next frame so callers must copy it if they need to keep it.
	FrameDone func(*image.NRGBA)
}

// Init returns a monitor positioned as though the next sample is the top left
// visible pixel.
func Init(def *MonitorDef) (*Monitor, error) {
	if def == nil {
		return nil, errors.New("MonitorDef must be non-nil")
	}
	if def.FrameDone == nil {
		return nil, errors.New("FrameDone must be non-nil")
	}
	t := def.Timing
	if t == (vga.Timing{}) {
		t = vga.Mode640x480
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	m := &Monitor{
		t:         t,
		picture:   image.NewNRGBA(image.Rect(0, 0, t.HVisible, t.VVisible)),
		frameDone: def.FrameDone,
		hsync:     true,
		vsync:     true,
		hTotal:    t.HTotal(),
		vTotal:    t.VTotal(),
	}
	return m, nil
}

// Sample feeds one pixel clock worth of signal into the monitor.
func (m *Monitor) Sample(s vga.Sample) {
	m.stats.Samples++

	// Syncs are active low so a pulse starts on a high->low transition.
	if m.vsync && !s.VSync {
		m.startFrame()
	}
	if m.hsync && !s.HSync {
		m.startLine()
	}
	m.vsync = s.VSync
	m.hsync = s.HSync

	if m.x >= 0 && m.x < m.t.HVisible && m.y >= 0 && m.y < m.t.VVisible {
		m.picture.SetNRGBA(m.x, m.y, RGBA(s.Color))
	}
	m.x++
	m.lineLen++
}

// startLine handles the start of a horizontal sync pulse. The next visible
// pixel comes after the pulse and the back porch.
func (m *Monitor) startLine() {
	m.stats.Lines++
	if m.hLocked && m.lineLen != m.hTotal {
		m.stats.HSyncErrors++
	}
	m.hLocked = true
	m.lineLen = 0
	m.lines++
	m.x = -(m.t.HSyncPulse + m.t.HBackPorch)
	m.y++
}

// startFrame handles the start of a vertical sync pulse which completes the
// current frame.
func (m *Monitor) startFrame() {
	m.stats.Frames++
	if m.vLocked && m.lines != m.vTotal {
		m.stats.VSyncErrors++
	}
	m.vLocked = true
	m.lines = 0
	m.frameDone(m.picture)
	// Every line from here until visible gets a horizontal pulse which
	// increments y so start far enough back to land on 0.
	m.y = -(m.t.VSyncPulse + m.t.VBackPorch)
}

// Picture returns the frame currently being painted.
func (m *Monitor) Picture() *image.NRGBA {
	return m.picture
}

// Stats returns the counters so far.
func (m *Monitor) Stats() Stats {
	return m.stats
}

// Timing returns the schedule the monitor locks to.
func (m *Monitor) Timing() vga.Timing {
	return m.t
}

// Census counts how many pixels of each 3 bit color appear in a frame. Pixels
// that aren't palette colors aren't counted.
func Census(i *image.NRGBA) [8]int {
	var out [8]int
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := i.NRGBAAt(x, y)
			if p.A != 0xFF {
				continue
			}
			var c vga.Color
			switch {
			case p.R == 0xFF:
				c |= vga.Red
			case p.R != 0x00:
				continue
			}
			switch {
			case p.G == 0xFF:
				c |= vga.Green
			case p.G != 0x00:
				continue
			}
			switch {
			case p.B == 0xFF:
				c |= vga.Blue
			case p.B != 0x00:
				continue
			}
			out[c]++
		}
	}
	return out
}
