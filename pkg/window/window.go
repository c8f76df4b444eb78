// Package window shows the renderer in a desktop window.
package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/taigrr/sector/pkg/control"
	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/render"
)

// Config controls the window.
type Config struct {
	Title      string
	Width      int // render width in pixels
	Height     int // render height in pixels
	Scale      int // window pixels per render pixel
	FPS        int
	FOV        float64
	Background render.Color
}

// keys maps held window keys to actions.
var keys = map[ebiten.Key]control.Action{
	ebiten.KeyW:          control.Advance,
	ebiten.KeyS:          control.Retreat,
	ebiten.KeyA:          control.TurnLeft,
	ebiten.KeyD:          control.TurnRight,
	ebiten.KeyArrowLeft:  control.StrafeLeft,
	ebiten.KeyArrowRight: control.StrafeRight,
	ebiten.KeyComma:      control.StrafeLeft,
	ebiten.KeyPeriod:     control.StrafeRight,
	ebiten.KeyQ:          control.Ascend,
	ebiten.KeyE:          control.Descend,
	ebiten.KeyArrowUp:    control.LookUp,
	ebiten.KeyArrowDown:  control.LookDown,
	ebiten.KeyPageUp:     control.LookUp,
	ebiten.KeyPageDown:   control.LookDown,
	ebiten.KeyEscape:     control.Quit,
}

// game implements ebiten.Game over one camera.
type game struct {
	cam      *render.Camera
	renderer *render.Renderer
	fb       *render.Framebuffer
	latch    *control.Latch
	img      *ebiten.Image
	pix      []byte
	bg       render.Color
	last     time.Time
}

// Run opens a window and blocks until it is closed or Escape is pressed.
func Run(lvl *level.Level, cam *render.Camera, cfg Config) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}

	r := render.NewRenderer(lvl, cfg.Width, cfg.Height)
	r.SetFOV(cfg.FOV)
	g := &game{
		cam:      cam,
		renderer: r,
		fb:       render.NewFramebuffer(cfg.Width, cfg.Height),
		// window keys report releases, so the hold time only bridges
		// a release that never arrives
		latch: control.NewLatch(control.HoldTime, control.NewThrottle(cfg.FPS)),
		pix:   make([]byte, cfg.Width*cfg.Height*4),
		bg:    cfg.Background,
		last:  time.Now(),
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.FPS)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	now := time.Now()
	held := map[control.Action]bool{}
	for k, a := range keys {
		if ebiten.IsKeyPressed(k) {
			held[a] = true
		}
	}
	if held[control.Quit] {
		return ebiten.Termination
	}
	for _, a := range keys {
		if !a.Motion() {
			continue
		}
		if held[a] {
			g.latch.Press(a, now)
		} else {
			g.latch.Release(a)
		}
	}

	dt := now.Sub(g.last).Seconds()
	g.last = now
	g.cam.Update(g.latch.Snapshot(now, dt))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.fb.Width, g.fb.Height)
	}
	g.fb.Clear(g.bg)
	g.renderer.Draw(g.cam, g.fb)
	for i, c := range g.fb.Pixels {
		j := i * 4
		g.pix[j+0] = c.R
		g.pix[j+1] = c.G
		g.pix[j+2] = c.B
		g.pix[j+3] = c.A
	}
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
