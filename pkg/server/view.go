package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/taigrr/sector/pkg/control"
	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/render"
)

const reset = "\x1b[0m"

// view is one session's camera and render target.
type view struct {
	cam      *render.Camera
	renderer *render.Renderer
	fb       *render.Framebuffer
	latch    *control.Latch
	bg       render.Color
	cols     int
	rows     int
}

func newView(lvl *level.Level, cfg Config, cols, rows int) *view {
	w, h := viewport(cols, rows)
	r := render.NewRenderer(lvl, w, h)
	r.SetFOV(cfg.FOV * float64(w) / render.DefaultWidth)
	return &view{
		cam:      render.CameraFor(lvl),
		renderer: r,
		fb:       render.NewFramebuffer(w, h),
		latch:    control.NewLatch(control.HoldTime, control.NewThrottle(cfg.FPS)),
		bg:       cfg.Background,
		cols:     cols,
		rows:     rows,
	}
}

// viewport returns the framebuffer size for a terminal: one row is kept for
// the status line and each remaining row holds two pixels.
func viewport(cols, rows int) (w, h int) {
	return max(cols, 2), max(rows-1, 1) * 2
}

// resize follows a terminal size change. It reports whether the size
// changed.
func (v *view) resize(cols, rows int) bool {
	if cols == v.cols && rows == v.rows {
		return false
	}
	v.cols, v.rows = cols, rows
	w, h := viewport(cols, rows)
	fov := v.renderer.FOV() * float64(w) / float64(v.renderer.Width())
	v.renderer.Resize(w, h)
	v.renderer.SetFOV(fov)
	v.fb.Resize(w, h)
	return true
}

// frame advances the camera by dt and writes one full frame to sb.
func (v *view) frame(now time.Time, dt float64, sb *strings.Builder) {
	v.cam.Update(v.latch.Snapshot(now, dt))
	v.fb.Clear(v.bg)
	v.renderer.Draw(v.cam, v.fb)
	v.fb.ANSI(sb)

	sb.WriteString(render.MoveTo(v.rows, 1))
	status := fmt.Sprintf(" x:%d y:%d z:%d  heading:%d  pitch:%d  |  wasd move  q/e climb  arrows strafe/look  esc quit",
		v.cam.X, v.cam.Y, v.cam.Z, v.cam.Heading, v.cam.Pitch)
	if len(status) > v.cols {
		status = status[:max(v.cols, 0)]
	}
	sb.WriteString(status)
	sb.WriteString(reset)
}
