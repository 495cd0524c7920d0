// termview shows the starfield generator in a terminal. Each frame is
// shrunk to the terminal size using half block characters so every cell
// shows 2 rows.
//
// Keys are the same as viewer: 1/2/3 toggle twinkle/glow/invert, r resets
// and ESC or q quits.
package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jmchacon/starfield/board"
	"github.com/jmchacon/starfield/monitor"
	"github.com/jmchacon/starfield/vga"
)

var (
	twinkle = flag.Bool("twinkle", true, "Start with twinkle enabled")
	glow    = flag.Bool("glow", true, "Start with the horizon glow enabled")
	invert  = flag.Bool("invert", false, "Start with colors inverted")
	fps     = flag.Int("fps", 10, "Frames per second to draw. The generator always runs every frame")
)

type swtch struct {
	b bool
}

func (s *swtch) Input() bool {
	return s.b
}

// shrink reduces the w x h block of pixels at (x,y) to one color. Stars are
// single pixels so they'd vanish with plain point sampling. Instead channels
// are OR'd together (or AND'd when inverted since the stars are then the
// dark pixels).
func shrink(i *image.NRGBA, x0, y0, x1, y1 int, inverted bool) tcell.Color {
	var acc vga.Color
	if inverted {
		acc = vga.White
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := i.NRGBAAt(x, y)
			c := vga.RGB(p.R != 0, p.G != 0, p.B != 0)
			if inverted {
				acc &= c
			} else {
				acc |= c
			}
		}
	}
	p := monitor.RGBA(acc)
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}

// span returns the pixel range [lo,hi) covered by cell i of cells across a
// size pixel axis. Every cell gets at least 1 pixel.
func span(size, i, cells int) (int, int) {
	lo := size * i / cells
	hi := size * (i + 1) / cells
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

func draw(s tcell.Screen, i *image.NRGBA, inverted bool) {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}
	b := i.Bounds()
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			x0, x1 := span(b.Dx(), cx, w)
			var col [2]tcell.Color
			for half := 0; half < 2; half++ {
				y0, y1 := span(b.Dy(), cy*2+half, h*2)
				col[half] = shrink(i, x0, y0, x1, y1, inverted)
			}
			s.SetContent(cx, cy, '▀', nil, tcell.StyleDefault.Foreground(col[0]).Background(col[1]))
		}
	}
	s.Show()
}

func main() {
	flag.Parse()
	if *fps < 1 {
		log.Fatalf("--fps must be at least 1: %d", *fps)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Can't create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Can't init screen: %v", err)
	}
	defer screen.Fini()

	tw, gl, in, rst := &swtch{*twinkle}, &swtch{*glow}, &swtch{*invert}, &swtch{}

	frameEvery := vga.Mode640x480.FrameDuration()
	drawEvery := time.Second / time.Duration(*fps)
	lastDraw := time.Time{}
	b, err := board.Init(&board.BoardDef{
		Twinkle: tw,
		Glow:    gl,
		Invert:  in,
		Reset:   rst,
		FrameDone: func(i *image.NRGBA) {
			if time.Since(lastDraw) < drawEvery {
				return
			}
			lastDraw = time.Now()
			draw(screen, i, in.Input())
		},
	})
	if err != nil {
		screen.Fini()
		log.Fatalf("Can't init board: %v", err)
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameEvery)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				if ev.Key() == tcell.KeyRune {
					switch ev.Rune() {
					case 'q':
						return
					case '1':
						tw.b = !tw.b
					case '2':
						gl.b = !gl.b
					case '3':
						in.b = !in.b
					case 'r':
						// Momentary since terminals don't report key up.
						rst.b = true
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		default:
		}
		for i := 0; i < vga.Mode640x480.HTotal()*vga.Mode640x480.VTotal(); i++ {
			if err := b.Tick(); err != nil {
				screen.Fini()
				log.Fatalf("Tick error: %v", err)
			}
			// Hold reset for just the first clock.
			if i == 0 {
				rst.b = false
			}
		}
		<-ticker.C
	}
}
