package vga

import (
	"testing"
	"time"

	"github.com/go-test/deep"
)

func TestTimingTotals(t *testing.T) {
	m := Mode640x480
	if err := m.Validate(); err != nil {
		t.Fatalf("Mode640x480 doesn't validate: %v", err)
	}
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"HTotal", m.HTotal(), 800},
		{"VTotal", m.VTotal(), 525},
		{"HSyncStart", m.HSyncStart(), 656},
		{"HSyncEnd", m.HSyncEnd(), 752},
		{"VSyncStart", m.VSyncStart(), 490},
		{"VSyncEnd", m.VSyncEnd(), 492},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %d want %d", test.name, test.got, test.want)
		}
	}
	// 420000 clocks at 25.175MHz.
	if got, want := m.FrameDuration(), 16683217*time.Nanosecond; got != want {
		t.Errorf("Bad frame duration: got %s want %s", got, want)
	}
}

func TestTimingValidate(t *testing.T) {
	m := Mode640x480
	m.HSyncPulse = 0
	if err := m.Validate(); err == nil {
		t.Error("Didn't get error for zero sync pulse")
	}
	m = Mode640x480
	m.VBackPorch = -1
	if err := m.Validate(); err == nil {
		t.Error("Didn't get error for negative back porch")
	}
}

func TestCounterWrap(t *testing.T) {
	c := NewCounter(Mode640x480)
	hWraps := 0
	vWraps := 0
	lastH := 0
	lastV := 0
	// Run 2 full frames plus a bit.
	total := 2*800*525 + 1234
	for i := 1; i <= total; i++ {
		c.Tick()
		h, v := c.H(), c.V()
		if h < 0 || h > 799 || v < 0 || v > 524 {
			t.Fatalf("Tick %d: counter out of range h: %d v: %d", i, h, v)
		}
		if h == 0 {
			hWraps++
			if got, want := i%800, 0; got != want {
				t.Fatalf("Tick %d: h wrapped off cadence", i)
			}
			if lastV == 524 {
				if v != 0 {
					t.Fatalf("Tick %d: v didn't wrap at 525: %d", i, v)
				}
				vWraps++
			} else if got, want := v, lastV+1; got != want {
				t.Fatalf("Tick %d: v got %d want %d", i, got, want)
			}
		} else {
			if got, want := h, lastH+1; got != want {
				t.Fatalf("Tick %d: h got %d want %d", i, got, want)
			}
			if got, want := v, lastV; got != want {
				t.Fatalf("Tick %d: v changed mid line: got %d want %d", i, got, want)
			}
		}
		lastH, lastV = h, v
	}
	if got, want := hWraps, total/800; got != want {
		t.Errorf("Bad line count: got %d want %d", got, want)
	}
	if got, want := vWraps, 2; got != want {
		t.Errorf("Bad frame count: got %d want %d", got, want)
	}
}

func TestCounterSignals(t *testing.T) {
	c := NewCounter(Mode640x480)
	var hsync []int
	vsync := make(map[int]bool)
	visible := 0
	firstVisible := -1
	for i := 0; i < 800*525; i++ {
		if c.V() == 0 && c.HSync() {
			hsync = append(hsync, c.H())
		}
		if c.VSync() {
			vsync[c.V()] = true
		}
		if c.Visible() {
			if firstVisible == -1 {
				firstVisible = i
			}
			visible++
		}
		if c.EndOfLine() && c.H() != 799 {
			t.Fatalf("EndOfLine at h: %d", c.H())
		}
		if c.EndOfFrame() && (c.H() != 799 || c.V() != 524) {
			t.Fatalf("EndOfFrame at h: %d v: %d", c.H(), c.V())
		}
		c.Tick()
	}
	if got, want := len(hsync), 96; got != want {
		t.Fatalf("Bad hsync width: got %d want %d", got, want)
	}
	for i, h := range hsync {
		if got, want := h, 656+i; got != want {
			t.Errorf("hsync not contiguous: got %d want %d", got, want)
		}
	}
	if diff := deep.Equal(vsync, map[int]bool{490: true, 491: true}); diff != nil {
		t.Errorf("Bad vsync lines: %v", diff)
	}
	if got, want := visible, 640*480; got != want {
		t.Errorf("Bad visible count: got %d want %d", got, want)
	}
	if got, want := firstVisible, 0; got != want {
		t.Errorf("Bad first visible tick: got %d want %d", got, want)
	}
	// Back at the top left after a full frame.
	if c.H() != 0 || c.V() != 0 {
		t.Errorf("Not at origin after a frame: h: %d v: %d", c.H(), c.V())
	}
}

func TestCounterReset(t *testing.T) {
	c := NewCounter(Mode640x480)
	for i := 0; i < 12345; i++ {
		c.Tick()
	}
	c.Reset()
	if c.H() != 0 || c.V() != 0 {
		t.Errorf("Reset didn't return to origin: h: %d v: %d", c.H(), c.V())
	}
	if diff := deep.Equal(c.Timing(), Mode640x480); diff != nil {
		t.Errorf("Timing changed: %v", diff)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		r, g, b bool
		want    Color
	}{
		{false, false, false, Black},
		{true, false, false, Red},
		{false, true, false, Green},
		{false, false, true, Blue},
		{true, true, false, Yellow},
		{true, true, true, White},
	}
	for _, test := range tests {
		c := RGB(test.r, test.g, test.b)
		if got, want := c, test.want; got != want {
			t.Errorf("RGB(%t,%t,%t) got %s want %s", test.r, test.g, test.b, got, want)
		}
		if c.R() != test.r || c.G() != test.g || c.B() != test.b {
			t.Errorf("%s: channel accessors don't match %t/%t/%t", c, test.r, test.g, test.b)
		}
		if got, want := c.Invert().Invert(), c; got != want {
			t.Errorf("%s: double invert got %s", c, got)
		}
		if got, want := c|c.Invert(), White; got != want {
			t.Errorf("%s: color | invert got %s want %s", c, got, want)
		}
	}
}
