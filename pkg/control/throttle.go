package control

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/sector/pkg/math3d"
)

// Throttle eases camera motion in and out. A critically damped spring moves
// its value toward 1 while motion is engaged and toward 0 otherwise.
type Throttle struct {
	spring harmonica.Spring
	value  float64
	vel    float64
}

// NewThrottle creates a throttle stepped once per frame at fps.
func NewThrottle(fps int) *Throttle {
	return &Throttle{
		// Frequency 6.0 settles in about half a second, damping 1.0 = no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 6.0, 1.0),
	}
}

// Update advances one frame and returns the new value in [0, 1].
func (t *Throttle) Update(engaged bool) float64 {
	target := 0.0
	if engaged {
		target = 1
	}
	t.value, t.vel = t.spring.Update(t.value, t.vel, target)
	t.value = math3d.Clamp(t.value, 0, 1)
	return t.value
}

// Value returns the current throttle.
func (t *Throttle) Value() float64 { return t.value }
