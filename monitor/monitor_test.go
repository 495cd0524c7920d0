package monitor

import (
	"image"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/jmchacon/starfield/vga"
)

// pattern is a simple checkerboard of all 8 colors.
func pattern(h, v int) vga.Color {
	return vga.Color((h/8 + v/8) & 0x07)
}

// source generates a pattern with correct syncs from a raster counter.
func source(c *vga.Counter) vga.Sample {
	s := vga.Sample{
		HSync: !c.HSync(),
		VSync: !c.VSync(),
	}
	if c.Visible() {
		s.Color = pattern(c.H(), c.V())
	}
	return s
}

func want() *image.NRGBA {
	w := image.NewNRGBA(image.Rect(0, 0, 640, 480))
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			w.SetNRGBA(x, y, RGBA(pattern(x, y)))
		}
	}
	return w
}

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		def  *MonitorDef
	}{
		{
			name: "nil def",
		},
		{
			name: "nil FrameDone",
			def:  &MonitorDef{},
		},
		{
			name: "bad timing",
			def: &MonitorDef{
				Timing:    vga.Timing{HVisible: 640},
				FrameDone: func(*image.NRGBA) {},
			},
		},
	}
	for _, test := range tests {
		if _, err := Init(test.def); err == nil {
			t.Errorf("%s: didn't get an error", test.name)
		}
	}
	m, err := Init(&MonitorDef{FrameDone: func(*image.NRGBA) {}})
	if err != nil {
		t.Fatalf("Can't Init: %v", err)
	}
	if diff := deep.Equal(m.Timing(), vga.Mode640x480); diff != nil {
		t.Errorf("Default timing wrong: %v", diff)
	}
	if got, want := m.Picture().Bounds(), image.Rect(0, 0, 640, 480); got != want {
		t.Errorf("Bad picture bounds: got %v want %v", got, want)
	}
}

func TestFrames(t *testing.T) {
	var frames []*image.NRGBA
	m, err := Init(&MonitorDef{
		FrameDone: func(i *image.NRGBA) {
			n := image.NewNRGBA(i.Bounds())
			copy(n.Pix, i.Pix)
			frames = append(frames, n)
		},
	})
	if err != nil {
		t.Fatalf("Can't Init: %v", err)
	}
	c := vga.NewCounter(vga.Mode640x480)
	// 3 frames worth of samples completes 3 frames since the sync pulse
	// comes before the end of each one.
	for i := 0; i < 3*800*525; i++ {
		m.Sample(source(c))
		c.Tick()
	}
	if got, want := len(frames), 3; got != want {
		t.Fatalf("Bad frame count: got %d want %d\n%v", got, want, spew.Sdump(m.Stats()))
	}
	w := want()
	for i, f := range frames {
		if diff := deep.Equal(f, w); diff != nil {
			t.Errorf("Frame %d differs: %v", i, diff)
		}
	}
	if diff := deep.Equal(m.Stats(), Stats{
		Samples: 3 * 800 * 525,
		Lines:   3 * 525,
		Frames:  3,
	}); diff != nil {
		t.Errorf("Bad stats: %v", diff)
	}
}

func TestLock(t *testing.T) {
	done := 0
	m, err := Init(&MonitorDef{
		FrameDone: func(*image.NRGBA) {
			done++
		},
	})
	if err != nil {
		t.Fatalf("Can't Init: %v", err)
	}
	// Start the source somewhere random in the middle of a frame. The first
	// frame is junk but the monitor locks on after the first vertical pulse.
	c := vga.NewCounter(vga.Mode640x480)
	for i := 0; i < 123456; i++ {
		c.Tick()
	}
	for done < 2 {
		m.Sample(source(c))
		c.Tick()
	}
	if diff := deep.Equal(m.Picture(), want()); diff != nil {
		t.Errorf("Picture differs after lock: %v", diff)
	}
	if s := m.Stats(); s.HSyncErrors != 0 || s.VSyncErrors != 0 {
		t.Errorf("Sync errors on a clean signal:\n%v", spew.Sdump(s))
	}
}

func TestSyncErrors(t *testing.T) {
	m, err := Init(&MonitorDef{FrameDone: func(*image.NRGBA) {}})
	if err != nil {
		t.Fatalf("Can't Init: %v", err)
	}
	c := vga.NewCounter(vga.Mode640x480)
	for i := 0; i < 2*800*525; i++ {
		// Drop one sample in the middle of line 100 of the first frame.
		if i == 100*800+300 {
			c.Tick()
			continue
		}
		m.Sample(source(c))
		c.Tick()
	}
	if got, want := m.Stats().HSyncErrors, 1; got != want {
		t.Errorf("Bad hsync errors: got %d want %d", got, want)
	}
	if got, want := m.Stats().VSyncErrors, 0; got != want {
		t.Errorf("Bad vsync errors: got %d want %d", got, want)
	}
}

func TestRGBA(t *testing.T) {
	for c := vga.Color(0); c < 8; c++ {
		got := RGBA(c)
		if (got.R == 0xFF) != c.R() || (got.G == 0xFF) != c.G() || (got.B == 0xFF) != c.B() || got.A != 0xFF {
			t.Errorf("%s: bad palette entry %v", c, got)
		}
	}
	// Only the low 3 bits count.
	if got, want := RGBA(vga.Color(0xF9)), RGBA(vga.Blue); got != want {
		t.Errorf("High bits leaked: got %v want %v", got, want)
	}
}

func TestCensus(t *testing.T) {
	i := want()
	got := Census(i)
	total := 0
	for _, n := range got {
		total += n
	}
	if total != 640*480 {
		t.Errorf("Census missed pixels: got %d want %d\n%v", total, 640*480, spew.Sdump(got))
	}
	// Every color shows up in the checkerboard.
	for c, n := range got {
		if n == 0 {
			t.Errorf("No pixels counted for %s", vga.Color(c))
		}
	}

	// Off palette colors are skipped.
	i.Pix[0] = 0x80
	if got, want := Census(i)[pattern(0, 0)], got[pattern(0, 0)]-1; got != want {
		t.Errorf("Off palette pixel counted: got %d want %d", got, want)
	}
}
