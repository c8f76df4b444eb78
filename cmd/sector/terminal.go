package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/sector/pkg/control"
	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/render"
)

// runTerminal draws the level in the terminal until ctx is cancelled or the
// user quits. Each terminal cell shows two pixels.
func runTerminal(ctx context.Context, cancel context.CancelFunc, lvl *level.Level, name string, bg render.Color) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fb := render.NewFramebuffer(width, height*2)
	renderer := render.NewRenderer(lvl, fb.Width, fb.Height)
	renderer.SetFOV(focalFor(fb.Width))

	cam := render.CameraFor(lvl)
	latch := control.NewLatch(control.HoldTime, control.NewThrottle(*targetFPS))
	hud := NewHUD(name)

	// state shared with the event goroutine
	var mu sync.Mutex
	pendingW, pendingH := width, height
	respawn := false

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				mu.Lock()
				pendingW, pendingH = ev.Width, ev.Height
				mu.Unlock()

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("r"):
					mu.Lock()
					respawn = true
					mu.Unlock()
					continue
				case ev.MatchString("?", "shift+/"):
					mu.Lock()
					hud.Show = !hud.Show
					mu.Unlock()
					continue
				}
				a := keyAction(ev.MatchString)
				if a == control.Quit {
					cancel()
					return
				}
				latch.Press(a, time.Now())

			case uv.KeyReleaseEvent:
				latch.Release(keyAction(ev.MatchString))
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		mu.Lock()
		w, h := pendingW, pendingH
		if respawn {
			cam = render.CameraFor(lvl)
			latch.Reset()
			respawn = false
		}
		show := hud.Show
		mu.Unlock()

		if w != width || h != height {
			width, height = w, h
			term.Erase()
			term.Resize(width, height)
			fb.Resize(width, height*2)
			renderer.Resize(fb.Width, fb.Height)
			renderer.SetFOV(focalFor(fb.Width))
		}

		cam.Update(latch.Snapshot(now, dt))

		// Render
		fb.Clear(bg)
		renderer.Draw(cam, fb)

		// Display
		fb.Draw(term, term.Bounds())
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		// HUD overlay
		hud.UpdateFPS()
		if show {
			top, bottom := hud.Lines(width, cam, renderer.Stats)
			fmt.Fprint(os.Stdout, render.MoveTo(1, 1)+top+render.MoveTo(height, 1)+bottom)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// keyAction returns the action for the first bound key name matched by
// match.
func keyAction(match func(...string) bool) control.Action {
	for _, name := range control.KeyNames() {
		if match(name) {
			return control.KeyAction(name)
		}
	}
	return control.None
}
