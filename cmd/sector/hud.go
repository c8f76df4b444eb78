package main

import (
	"fmt"
	"time"

	"github.com/taigrr/sector/pkg/render"
)

// HUD renders an overlay with frame rate, level name and camera state.
type HUD struct {
	name      string
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	Show      bool
}

// NewHUD creates a new HUD
func NewHUD(name string) *HUD {
	return &HUD{
		name:    name,
		fpsTime: time.Now(),
		Show:    true,
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// FPS returns the last measured frame rate.
func (h *HUD) FPS() float64 { return h.fps }

// Lines returns the top and bottom HUD rows for a terminal of the given
// width.
func (h *HUD) Lines(width int, cam *render.Camera, stats render.Stats) (top, bottom string) {
	const (
		reset   = "\x1b[0m"
		bold    = "\x1b[1m"
		dim     = "\x1b[2m"
		bgBlack = "\x1b[40m"
		fgWhite = "\x1b[97m"
		fgGreen = "\x1b[92m"
		fgCyan  = "\x1b[96m"
	)
	fpsStr := fmt.Sprintf("%s%s %.0f FPS %s", bgBlack, fgGreen, h.fps, reset)
	titleCol := max((width-len(h.name)-2)/2, 1)
	title := fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.name, reset)
	walls := fmt.Sprintf("%s%s %d walls %s", bgBlack, fgCyan, stats.WallsProjected, reset)
	top = fpsStr + render.MoveTo(1, titleCol) + title + render.MoveTo(1, max(width-12, 1)) + walls

	bottom = fmt.Sprintf("%s%s x:%d y:%d z:%d  heading:%d  pitch:%d %s%s%s  wasd move  q/e climb  arrows strafe/look  ? hud  esc quit %s",
		bgBlack, fgWhite, cam.X, cam.Y, cam.Z, cam.Heading, cam.Pitch, reset, bgBlack, dim, reset)
	return top, bottom
}
