// pngdump runs the starfield generator for a number of frames and writes
// each one out as a PNG. A short summary of what was drawn is printed per
// frame.
//
// Output files are named <out>/<prefix>NNNNNN.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmchacon/starfield/board"
	"github.com/jmchacon/starfield/monitor"
	"github.com/jmchacon/starfield/vga"
	"golang.org/x/image/draw"
)

var (
	frames  = flag.Int("frames", 1, "Number of frames to generate")
	out     = flag.String("out", ".", "Directory to write PNGs into")
	prefix  = flag.String("prefix", "starfield", "Filename prefix for each PNG")
	scaler  = flag.Float64("scale", 1.0, "The amount to rescale the output PNGs")
	twinkle = flag.Bool("twinkle", false, "Enable twinkle")
	glow    = flag.Bool("glow", false, "Enable the horizon glow")
	invert  = flag.Bool("invert", false, "Invert colors")
)

type swtch struct {
	b bool
}

func (s *swtch) Input() bool {
	return s.b
}

type styles struct {
	frame  lipgloss.Style
	colors [8]lipgloss.Style
	sync   lipgloss.Style
	err    lipgloss.Style
}

// ANSI color numbers line up with the 3 bit RGB ordering once R and B swap.
func newStyles() styles {
	s := styles{
		frame: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		sync:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		err:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
	for c := vga.Color(0); c <= vga.White; c++ {
		ansi := 0
		if c.R() {
			ansi |= 1
		}
		if c.G() {
			ansi |= 2
		}
		if c.B() {
			ansi |= 4
		}
		st := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(ansi))
		if c == vga.Black {
			st = st.Background(lipgloss.ANSIColor(7))
		}
		s.colors[c] = st
	}
	return s
}

var kNames = [8]string{
	vga.Black:   "black",
	vga.Blue:    "blue",
	vga.Green:   "green",
	vga.Cyan:    "cyan",
	vga.Red:     "red",
	vga.Magenta: "magenta",
	vga.Yellow:  "yellow",
	vga.White:   "white",
}

func main() {
	flag.Parse()
	if *frames < 1 {
		log.Fatalf("--frames must be at least 1: %d", *frames)
	}
	if *scaler <= 0 {
		log.Fatalf("--scale must be positive: %f", *scaler)
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatalf("Can't create %q: %v", *out, err)
	}

	st := newStyles()
	cnt := 0
	var b *board.Board
	now := time.Now()
	frameDone := func(i *image.NRGBA) {
		var n image.Image = i
		if *scaler != 1.0 {
			d := image.NewNRGBA(image.Rect(0, 0, int(float64(i.Bounds().Max.X)**scaler), int(float64(i.Bounds().Max.Y)**scaler)))
			draw.NearestNeighbor.Scale(d, d.Bounds(), i, i.Bounds(), draw.Over, nil)
			n = d
		}
		fn := filepath.Join(*out, fmt.Sprintf("%s%.6d.png", *prefix, cnt))
		o, err := os.Create(fn)
		if err != nil {
			log.Fatalf("Can't open output file %s: %v", fn, err)
		}
		if err := png.Encode(o, n); err != nil {
			log.Fatalf("Can't PNG encode for file %s: %v", fn, err)
		}
		if err := o.Close(); err != nil {
			log.Fatalf("Error closing %s: %v", fn, err)
		}

		var line []string
		line = append(line, st.frame.Render(fmt.Sprintf(" frame %d ", cnt)))
		census := monitor.Census(i)
		for c, num := range census {
			if num == 0 {
				continue
			}
			line = append(line, st.colors[c].Render(fmt.Sprintf("%s:%d", kNames[c], num)))
		}
		s := b.Monitor().Stats()
		line = append(line, st.sync.Render(fmt.Sprintf("lines:%d %s", s.Lines, time.Since(now).Round(time.Millisecond))))
		if s.HSyncErrors != 0 || s.VSyncErrors != 0 {
			line = append(line, st.err.Render(fmt.Sprintf("sync errors h:%d v:%d", s.HSyncErrors, s.VSyncErrors)))
		}
		fmt.Println(strings.Join(line, " "))
		cnt++
		now = time.Now()
	}

	var err error
	b, err = board.Init(&board.BoardDef{
		Twinkle:   &swtch{*twinkle},
		Glow:      &swtch{*glow},
		Invert:    &swtch{*invert},
		FrameDone: frameDone,
	})
	if err != nil {
		log.Fatalf("Can't init board: %v", err)
	}
	// The monitor hands over a frame on each vertical sync which comes before
	// the chip finishes the frame so this emits exactly the number requested.
	for i := 0; i < *frames; i++ {
		if err := b.RunFrame(); err != nil {
			log.Fatalf("RunFrame error: %v", err)
		}
	}
}
