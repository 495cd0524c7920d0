// Package starfield implements a pixel clocked video generator which draws a
// twinkling starfield over a dithered horizon glow on a 640x480 VGA raster.
// Nothing is stored in a framebuffer. Every pixel is rebuilt each clock from
// the raster counters and two small LFSRs.
package starfield

import (
	"errors"

	"github.com/jmchacon/starfield/io"
	"github.com/jmchacon/starfield/lfsr"
	"github.com/jmchacon/starfield/vga"
)

const (
	// Bits on the input bus. Everything else is reserved and ignored.
	kMASK_TWINKLE = uint8(0x01)
	kMASK_GLOW    = uint8(0x02)
	kMASK_INVERT  = uint8(0x04)
	kMASK_MODES   = kMASK_TWINKLE | kMASK_GLOW | kMASK_INVERT
)

// Chip holds the complete register state of the generator.
// NOTE: Registers only change in TickDone() so everything computed in Tick()
//       sees the values from the end of the previous cycle.
type Chip struct {
	tickDone bool // True if TickDone() was called before the current Tick() call.
	clocks   int  // Total number of clock cycles since power on or the last reset.

	inputs io.PortIn8 // If non-nil supplies the mode bits every tick.
	reset  io.PortIn1 // If non-nil and high holds the chip in reset.

	counter *vga.Counter    // Raster position.
	star    lfsr.Galois16   // Star placement. Steps on every visible pixel.
	twinkle lfsr.Fibonacci8 // Twinkle mask. Steps on the last pixel of every line.
	modes   uint8           // Mode bits latched in Tick() for this cycle.
	inReset bool            // Reset level latched in Tick() for this cycle.
	out     Output          // The output computed by the most recent Tick().
}

// ChipDef defines the external connections for a Chip.
type ChipDef struct {
	// Inputs is the 8 bit input bus. Bit 0 enables twinkle, bit 1 enables the
	// horizon glow and bit 2 inverts colors. The remaining bits are ignored.
	// If nil all modes are off.
	Inputs io.PortIn8
	// Reset is an optional reset line. While it returns true the chip holds
	// all registers at their seed values.
	Reset io.PortIn1
}

// Init returns a fully initialized and powered on chip.
func Init(def *ChipDef) (*Chip, error) {
	if def == nil {
		return nil, errors.New("ChipDef must be non-nil")
	}
	c := &Chip{
		inputs:   def.Inputs,
		reset:    def.Reset,
		counter:  vga.NewCounter(vga.Mode640x480),
		tickDone: true,
	}
	c.PowerOn()
	return c, nil
}

// PowerOn performs a full power-on reset. Unlike real silicon there's no
// undefined state so this is the same as Reset().
func (c *Chip) PowerOn() {
	c.Reset()
	c.tickDone = true
	c.modes = 0
	c.inReset = false
	c.out = Output{}
}

// Reset forces every register to its seed value immediately. This models the
// asynchronous side of reset and can be called at any point in a cycle. If
// called between Tick() and TickDone() the pending commit is dropped so the
// registers still hold their seeds once the cycle ends.
func (c *Chip) Reset() {
	if !c.tickDone {
		c.inReset = true
	}
	c.counter.Reset()
	c.star = lfsr.StarSeed
	c.twinkle = lfsr.TwinkleSeed
	c.clocks = 0
}

// Tick does a single pixel clock worth of work. Inputs are sampled and the
// output for the current raster position is computed from the registers as
// they stand. No register changes until TickDone().
// Every tick produces exactly one output sample.
func (c *Chip) Tick() error {
	if !c.tickDone {
		return errors.New("called Tick() without calling TickDone() at end of last cycle")
	}
	c.tickDone = false

	c.modes = 0
	if c.inputs != nil {
		c.modes = c.inputs.Input() & kMASK_MODES
	}
	c.inReset = c.reset != nil && c.reset.Input()

	c.out = output(c.pixel(), c.counter.HSync(), c.counter.VSync())
	return nil
}

// pixel returns the final color for the current position. Inversion only
// applies inside the visible area so blanking stays black.
func (c *Chip) pixel() vga.Color {
	col := composite(c.scene())
	if c.counter.Visible() && c.modes&kMASK_INVERT == kMASK_INVERT {
		col = col.Invert()
	}
	return col
}

// scene gathers the compositor inputs for the current position.
func (c *Chip) scene() scene {
	return scene{
		h:         c.counter.H(),
		v:         c.counter.V(),
		visible:   c.counter.Visible(),
		star:      c.star.LowByteSet(),
		twinkleOn: c.twinkleOn(),
		glow:      c.modes&kMASK_GLOW == kMASK_GLOW,
	}
}

// twinkleOn returns whether a star on the current line is at full brightness.
// With twinkle disabled stars are always at full brightness.
func (c *Chip) twinkleOn() bool {
	if c.modes&kMASK_TWINKLE != kMASK_TWINKLE {
		return true
	}
	return c.twinkle.Bit(c.counter.V())
}

// TickDone is to be called after Tick() to commit the register updates for
// this cycle. Every update uses the values Tick() saw so ordering between
// them doesn't matter.
func (c *Chip) TickDone() {
	c.tickDone = true

	// Reset overrides everything else for as long as it's held.
	if c.inReset {
		c.Reset()
		return
	}
	c.clocks++

	if c.counter.Visible() {
		c.star.Step()
	}
	if c.counter.EndOfLine() {
		c.twinkle.Step()
	}
	c.counter.Tick()
}

// Output returns the sample computed by the most recent Tick().
func (c *Chip) Output() Output {
	return c.out
}

// Clocks returns the number of completed cycles since power on or the last reset.
func (c *Chip) Clocks() int {
	return c.clocks
}

// H returns the current horizontal position.
func (c *Chip) H() int {
	return c.counter.H()
}

// V returns the current vertical position.
func (c *Chip) V() int {
	return c.counter.V()
}

// EndOfFrame returns true when the current position is the last pixel of a frame.
func (c *Chip) EndOfFrame() bool {
	return c.counter.EndOfFrame()
}

// Star returns the current star register.
func (c *Chip) Star() lfsr.Galois16 {
	return c.star
}

// Twinkle returns the current twinkle register.
func (c *Chip) Twinkle() lfsr.Fibonacci8 {
	return c.twinkle
}
