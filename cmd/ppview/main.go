//go:build sdl2

// Command ppview is a small interactive viewer for the prettypoly
// rasterizer: it renders a handful of shapes into an SDL2 window, letting
// the arrow keys nudge the scene and space cycle the antialias level, so
// the tile callback has somewhere real to draw rather than a test buffer.
package main

import (
	"log"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"prettypoly"
)

const (
	windowWidth  = 640
	windowHeight = 480
)

// penColor is the single fixed color every tile is blended against; the
// core only ever produces a one-channel coverage byte, so color mixing
// beyond "coverage times one color" is left to the caller, same as the
// reference implementation's own examples.
var penColor = [3]byte{60, 140, 220}

type app struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	raster   *prettypoly.Renderer
	offsetX  float64
	offsetY  float64
	rotation float64
	aa       prettypoly.AntialiasLevel
}

func newApp() (*app, error) {
	window, err := sdl.CreateWindow("pretty poly", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		windowWidth, windowHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STREAMING, windowWidth, windowHeight)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	a := &app{
		window:   window,
		renderer: renderer,
		texture:  texture,
		raster:   prettypoly.NewRenderer(),
		aa:       prettypoly.AntialiasX4,
	}
	a.raster.SetAntialias(a.aa)
	a.raster.SetClip(prettypoly.Rect{X: 0, Y: 0, W: windowWidth, H: windowHeight})
	return a, nil
}

func (a *app) destroy() {
	a.texture.Destroy()
	a.renderer.Destroy()
	a.window.Destroy()
}

func (a *app) scene() prettypoly.Polygon {
	base := prettypoly.Star(windowWidth/2, windowHeight/2, 6, 120, 55)
	gear := prettypoly.Gear(windowWidth/2-200, windowHeight/2, 10, 60, 45)
	ring := prettypoly.Arc(windowWidth/2+200, windowHeight/2, 60, 0, 270, 20)
	return base.Merge(gear).Merge(ring)
}

func (a *app) drawFrame(pixels []byte, pitch int) {
	for i := range pixels {
		pixels[i] = 0
	}

	m := prettypoly.Rotation(a.rotation).Mul(prettypoly.Translation(a.offsetX, a.offsetY))
	a.raster.SetTransform(&m)
	a.raster.SetCallback(func(tile prettypoly.Tile) {
		blendTile(pixels, pitch, tile)
	})
	a.raster.Render(a.scene())
}

// blendTile writes pen-colored, coverage-scaled pixels for one tile directly
// into the RGBA32 framebuffer backing the streaming texture.
func blendTile(pixels []byte, pitch int, tile prettypoly.Tile) {
	for ty := 0; ty < tile.Bounds.H; ty++ {
		outY := tile.Bounds.Y + ty
		if outY < 0 || outY >= windowHeight {
			continue
		}
		row := outY * pitch
		for tx := 0; tx < tile.Bounds.W; tx++ {
			outX := tile.Bounds.X + tx
			if outX < 0 || outX >= windowWidth {
				continue
			}
			alpha := byte(tile.Value(tx, ty))
			if alpha == 0 {
				continue
			}
			off := row + outX*4
			pixels[off+0] = penColor[0]
			pixels[off+1] = penColor[1]
			pixels[off+2] = penColor[2]
			pixels[off+3] = alpha
		}
	}
}

func (a *app) handleKey(keysym sdl.Keysym) {
	switch keysym.Sym {
	case sdl.K_LEFT:
		a.offsetX -= 5
	case sdl.K_RIGHT:
		a.offsetX += 5
	case sdl.K_UP:
		a.offsetY -= 5
	case sdl.K_DOWN:
		a.offsetY += 5
	case sdl.K_q:
		a.rotation -= 3
	case sdl.K_e:
		a.rotation += 3
	case sdl.K_SPACE:
		a.cycleAntialias()
	}
}

func (a *app) cycleAntialias() {
	switch a.aa {
	case prettypoly.AntialiasNone:
		a.aa = prettypoly.AntialiasX4
	case prettypoly.AntialiasX4:
		a.aa = prettypoly.AntialiasX16
	default:
		a.aa = prettypoly.AntialiasNone
	}
	a.raster.SetAntialias(a.aa)
}

func (a *app) run() error {
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.State == sdl.PRESSED {
					a.handleKey(e.Keysym)
				}
			}
		}

		pixels, pitch, err := a.texture.Lock(nil)
		if err != nil {
			return err
		}
		a.drawFrame(pixels, pitch)
		a.texture.Unlock()

		a.renderer.Clear()
		a.renderer.Copy(a.texture, nil, nil)
		a.renderer.Present()
		sdl.Delay(16)
	}
	return nil
}

func main() {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("sdl init: %v", err)
	}
	defer sdl.Quit()

	a, err := newApp()
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer a.destroy()

	if err := a.run(); err != nil {
		log.Printf("run: %v", err)
		os.Exit(1)
	}
}
