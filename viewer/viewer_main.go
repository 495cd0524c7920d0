// viewer runs the starfield generator in an SDL window at the real
// pixel clock frame rate.
//
// Keys:
//
// 1 - toggle twinkle
// 2 - toggle horizon glow
// 3 - toggle color inversion
// r - hold to reset
// ESC - quit
package main

import (
	"flag"
	"image"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jmchacon/starfield/board"
	"github.com/jmchacon/starfield/vga"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"
)

var (
	scale   = flag.Int("scale", 1, "Integer window scale factor")
	twinkle = flag.Bool("twinkle", false, "Start with twinkle enabled")
	glow    = flag.Bool("glow", false, "Start with the horizon glow enabled")
	invert  = flag.Bool("invert", false, "Start with colors inverted")
)

// swtch is a switch the SDL thread flips while the board reads it.
type swtch struct {
	b atomic.Bool
}

func (s *swtch) Input() bool {
	return s.b.Load()
}

func (s *swtch) toggle() {
	s.b.Store(!s.b.Load())
}

var window *sdl.Window
var surface *sdl.Surface

func main() {
	flag.Parse()
	if *scale < 1 {
		log.Fatalf("--scale must be at least 1: %d", *scale)
	}
	sdl.Main(func() {
		var wg sync.WaitGroup
		wg.Add(1)
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				log.Fatalf("Can't init SDL: %v", err)
			}

			var err error
			window, err = sdl.CreateWindow("starfield", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(vga.Mode640x480.HVisible**scale), int32(vga.Mode640x480.VVisible**scale), sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("Can't create window: %v", err)
			}
			surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("Can't get window surface: %v", err)
			}
			wg.Done()
		})
		wg.Wait()
		defer func() {
			sdl.Do(func() {
				window.Destroy()
				sdl.Quit()
			})
		}()

		tw, gl, in, rst := &swtch{}, &swtch{}, &swtch{}, &swtch{}
		tw.b.Store(*twinkle)
		gl.b.Store(*glow)
		in.b.Store(*invert)
		quit := false
		// Input is polled every frame period whether or not a frame was drawn.
		poll := func() {
			sdl.Do(func() {
				for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
					switch e := event.(type) {
					case *sdl.QuitEvent:
						quit = true
					case *sdl.KeyboardEvent:
						if e.Keysym.Sym == sdl.K_r {
							rst.b.Store(e.Type == sdl.KEYDOWN)
						}
						if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
							continue
						}
						switch e.Keysym.Sym {
						case sdl.K_1:
							tw.toggle()
						case sdl.K_2:
							gl.toggle()
						case sdl.K_3:
							in.toggle()
						case sdl.K_ESCAPE:
							quit = true
						}
					}
				}
			})
		}

		b, err := board.Init(&board.BoardDef{
			Twinkle: tw,
			Glow:    gl,
			Invert:  in,
			Reset:   rst,
			FrameDone: func(i *image.NRGBA) {
				sdl.Do(func() {
					draw.NearestNeighbor.Scale(surface, surface.Bounds(), i, i.Bounds(), draw.Src, nil)
					window.UpdateSurface()
				})
			},
		})
		if err != nil {
			log.Fatalf("Can't init board: %v", err)
		}

		// Tick as fast as possible then wait out the rest of the frame period.
		ticker := time.NewTicker(vga.Mode640x480.FrameDuration())
		defer ticker.Stop()
		frames := 0
		start := time.Now()
		for !quit {
			for i := 0; i < vga.Mode640x480.HTotal()*vga.Mode640x480.VTotal(); i++ {
				if err := b.Tick(); err != nil {
					log.Fatalf("Tick error: %v", err)
				}
			}
			frames++
			if frames%600 == 0 {
				log.Printf("%d frames in %s (%+v)", frames, time.Since(start), b.Monitor().Stats())
			}
			poll()
			<-ticker.C
		}
	})
}
