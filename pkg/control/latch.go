package control

import (
	"sync"
	"time"

	"github.com/taigrr/sector/pkg/render"
)

// HoldTime is how long a press stays active without a repeat. It spans a
// typical terminal's initial key-repeat delay.
const HoldTime = 550 * time.Millisecond

// coastFloor is the throttle below which released motion stops.
const coastFloor = 0.05

// Latch tracks which actions are held. Most terminals report presses and
// repeats but no releases, so a press stays active for HoldTime and each
// repeat extends it. Once any release has been seen, presses instead hold
// until released.
//
// Press and Release may be called from an event goroutine while the frame
// loop calls Snapshot.
type Latch struct {
	mu       sync.Mutex
	hold     time.Duration
	until    [numActions]time.Time
	down     [numActions]bool
	releases bool
	throttle *Throttle
	last     render.Input
}

// NewLatch creates a latch. A nil throttle passes DT through unchanged.
func NewLatch(hold time.Duration, throttle *Throttle) *Latch {
	if hold <= 0 {
		hold = HoldTime
	}
	return &Latch{hold: hold, throttle: throttle}
}

// Press marks a as held at now.
func (l *Latch) Press(a Action, now time.Time) {
	if !a.Motion() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.down[a] = true
	l.until[a] = now.Add(l.hold)
}

// Release clears a and switches the latch to release tracking.
func (l *Latch) Release(a Action) {
	if !a.Motion() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.releases = true
	l.down[a] = false
}

// Reset drops every held action.
func (l *Latch) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.down = [numActions]bool{}
	l.until = [numActions]time.Time{}
	l.last = render.Input{}
}

// Active reports whether a is held at now.
func (l *Latch) Active(a Action, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active(a, now)
}

func (l *Latch) active(a Action, now time.Time) bool {
	if !l.down[a] {
		return false
	}
	if l.releases {
		return true
	}
	if now.After(l.until[a]) {
		l.down[a] = false
		return false
	}
	return true
}

// Snapshot returns the input for a frame of dt seconds ending at now. With
// a throttle, DT is scaled by the eased throttle and released motion coasts
// until the throttle settles.
func (l *Latch) Snapshot(now time.Time, dt float64) render.Input {
	l.mu.Lock()
	defer l.mu.Unlock()

	var in render.Input
	for a := Advance; a <= LookDown; a++ {
		if l.active(a, now) {
			Apply(&in, a)
		}
	}

	if l.throttle == nil {
		in.DT = dt
		return in
	}

	engaged := in.Moving()
	k := l.throttle.Update(engaged)
	if engaged {
		l.last = in
	} else if k > coastFloor {
		in = l.last
	}
	in.DT = dt * k
	return in
}
