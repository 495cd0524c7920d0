// Package board pulls together a complete starfield display. The generator
// chip and the monitor are implemented in other packages and most of the
// logic here is simply mapping the mode switches onto the chip's input bus
// and clocking everything in the right order.
package board

import (
	"errors"
	"fmt"
	"image"

	"github.com/jmchacon/starfield/io"
	"github.com/jmchacon/starfield/monitor"
	"github.com/jmchacon/starfield/starfield"
	"github.com/jmchacon/starfield/vga"
)

// switches maps the mode switches onto the 8 bit input bus.
type switches struct {
	twinkle io.PortIn1
	glow    io.PortIn1
	invert  io.PortIn1
}

// Input implements io.PortIn8 for the chip input bus. The upper 5 bits
// aren't wired and read as 0.
func (s *switches) Input() uint8 {
	out := uint8(0x00)
	if s.twinkle.Input() {
		out |= 0x01
	}
	if s.glow.Input() {
		out |= 0x02
	}
	if s.invert.Input() {
		out |= 0x04
	}
	return out
}

// Board is a generator wired to a display.
type Board struct {
	chip    *starfield.Chip
	monitor *monitor.Monitor
	inputs  *switches
}

// BoardDef defines the pieces needed to set up a board.
type BoardDef struct {
	// Twinkle turns on star twinkling. True == on.
	Twinkle io.PortIn1
	// Glow turns on the horizon glow. True == on.
	Glow io.PortIn1
	// Invert inverts all colors in the visible area. True == on.
	Invert io.PortIn1
	// Reset is an optional reset button. True == pressed.
	Reset io.PortIn1
	// FrameDone is called at the start of every vertical sync pulse with the
	// frame the monitor just painted. See monitor documentation for more details.
	FrameDone func(*image.NRGBA)
}

// Init returns an initialized and powered on board.
func Init(def *BoardDef) (*Board, error) {
	if def == nil {
		return nil, errors.New("BoardDef must be non-nil")
	}
	if def.Twinkle == nil {
		return nil, errors.New("Twinkle must be non-nil in def")
	}
	if def.Glow == nil {
		return nil, errors.New("Glow must be non-nil in def")
	}
	if def.Invert == nil {
		return nil, errors.New("Invert must be non-nil in def")
	}
	b := &Board{
		inputs: &switches{
			twinkle: def.Twinkle,
			glow:    def.Glow,
			invert:  def.Invert,
		},
	}
	c, err := starfield.Init(&starfield.ChipDef{
		Inputs: b.inputs,
		Reset:  def.Reset,
	})
	if err != nil {
		return nil, fmt.Errorf("can't initialize chip: %v", err)
	}
	b.chip = c
	m, err := monitor.Init(&monitor.MonitorDef{
		Timing:    vga.Mode640x480,
		FrameDone: def.FrameDone,
	})
	if err != nil {
		return nil, fmt.Errorf("can't initialize monitor: %v", err)
	}
	b.monitor = m
	return b, nil
}

// Tick runs one pixel clock across the board.
func (b *Board) Tick() error {
	if err := b.chip.Tick(); err != nil {
		return err
	}
	b.monitor.Sample(b.chip.Output().Sample)
	b.chip.TickDone()
	return nil
}

// RunFrame ticks until the chip has produced one complete frame. Frames don't
// line up with monitor callbacks since those fire on the vertical sync pulse.
// Returns an error if no frame completes in a frame's worth of clocks (i.e.
// reset is being held).
func (b *Board) RunFrame() error {
	limit := vga.Mode640x480.HTotal() * vga.Mode640x480.VTotal()
	for i := 0; i < limit; i++ {
		end := b.chip.EndOfFrame()
		if err := b.Tick(); err != nil {
			return err
		}
		if end {
			return nil
		}
	}
	return fmt.Errorf("no frame completed in %d clocks", limit)
}

// Chip returns the generator.
func (b *Board) Chip() *starfield.Chip {
	return b.chip
}

// Monitor returns the display.
func (b *Board) Monitor() *monitor.Monitor {
	return b.monitor
}
