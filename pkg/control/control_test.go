package control

import (
	"slices"
	"testing"
	"time"

	"github.com/taigrr/sector/pkg/render"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"w", Advance},
		{"s", Retreat},
		{"a", TurnLeft},
		{"d", TurnRight},
		{"left", StrafeLeft},
		{"right", StrafeRight},
		{"q", Ascend},
		{"e", Descend},
		{"up", LookUp},
		{"pgdown", LookDown},
		{"escape", Quit},
		{"ctrl+c", Quit},
		{"z", None},
		{"", None},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := KeyAction(tt.key); got != tt.want {
				t.Errorf("KeyAction(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestKeysCoverEveryAction(t *testing.T) {
	for a := Advance; a < numActions; a++ {
		if len(Keys(a)) == 0 {
			t.Errorf("%v has no key", a)
		}
	}
	for _, k := range KeyNames() {
		if KeyAction(k) == None {
			t.Errorf("key %q listed but unbound", k)
		}
	}
	if got := Keys(LookUp); !slices.Equal(got, []string{"up", "pgup"}) {
		t.Errorf("Keys(LookUp) = %v", got)
	}
}

func TestActionString(t *testing.T) {
	if Advance.String() != "advance" || Quit.String() != "quit" || Action(99).String() != "unknown" {
		t.Error("unexpected action names")
	}
	if Quit.Motion() || None.Motion() || !LookDown.Motion() {
		t.Error("unexpected Motion classification")
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Action
	}{
		{"letters", "wasd", []Action{Advance, TurnLeft, Retreat, TurnRight}},
		{"upper case", "WQ", []Action{Advance, Ascend}},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Action{LookUp, LookDown, StrafeRight, StrafeLeft}},
		{"application arrows", "\x1bOD", []Action{StrafeLeft}},
		{"page keys", "\x1b[5~\x1b[6~", []Action{LookUp, LookDown}},
		{"ctrl-c", "w\x03", []Action{Advance, Quit}},
		{"lone escape", "\x1b", []Action{Quit}},
		{"escape then key", "\x1bw", []Action{Quit, Advance}},
		{"unbound sequence", "\x1b[15~d", []Action{TurnRight}},
		{"unbound keys", "xyz\r\n", nil},
		{"utf8", "é w", []Action{Advance}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBytes([]byte(tt.in)); !slices.Equal(got, tt.want) {
				t.Errorf("ParseBytes(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLatchHoldsUntilExpiry(t *testing.T) {
	l := NewLatch(100*time.Millisecond, nil)
	t0 := time.Unix(1000, 0)

	l.Press(Advance, t0)
	if !l.Active(Advance, t0.Add(50*time.Millisecond)) {
		t.Fatal("press expired early")
	}
	l.Press(Advance, t0.Add(90*time.Millisecond))
	if !l.Active(Advance, t0.Add(150*time.Millisecond)) {
		t.Fatal("repeat did not extend the hold")
	}
	if l.Active(Advance, t0.Add(300*time.Millisecond)) {
		t.Fatal("press did not expire")
	}
}

func TestLatchReleaseTracking(t *testing.T) {
	l := NewLatch(10*time.Millisecond, nil)
	t0 := time.Unix(1000, 0)

	l.Press(TurnLeft, t0)
	l.Press(Ascend, t0)
	l.Release(Ascend)
	if !l.Active(TurnLeft, t0.Add(time.Hour)) {
		t.Error("press expired after releases were seen")
	}
	if l.Active(Ascend, t0) {
		t.Error("released action still active")
	}

	l.Reset()
	if l.Active(TurnLeft, t0) {
		t.Error("Reset kept a held action")
	}
}

func TestLatchIgnoresNonMotion(t *testing.T) {
	l := NewLatch(0, nil)
	l.Press(Quit, time.Now())
	l.Release(Quit)
	if l.releases {
		t.Error("non-motion release switched tracking mode")
	}
}

func TestLatchSnapshot(t *testing.T) {
	l := NewLatch(time.Second, nil)
	now := time.Unix(1000, 0)
	l.Press(Advance, now)
	l.Press(LookDown, now)

	got := l.Snapshot(now, 0.02)
	want := render.Input{Advance: true, LookDown: true, DT: 0.02}
	if got != want {
		t.Errorf("Snapshot = %+v, want %+v", got, want)
	}
}

func TestThrottleEases(t *testing.T) {
	th := NewThrottle(60)
	prev := th.Value()
	for range 10 {
		v := th.Update(true)
		if v < prev {
			t.Fatalf("throttle fell while engaged: %v -> %v", prev, v)
		}
		prev = v
	}
	if prev <= 0 || prev >= 1 {
		t.Fatalf("after 10 frames throttle = %v, want strictly between 0 and 1", prev)
	}
	for range 120 {
		th.Update(true)
	}
	if th.Value() < 0.95 {
		t.Fatalf("throttle did not settle near 1: %v", th.Value())
	}
	for range 120 {
		th.Update(false)
	}
	if th.Value() > 0.05 {
		t.Fatalf("throttle did not settle near 0: %v", th.Value())
	}
}

func TestLatchSnapshotThrottled(t *testing.T) {
	l := NewLatch(time.Hour, NewThrottle(60))
	now := time.Unix(1000, 0)
	l.Press(Advance, now)

	first := l.Snapshot(now, 1.0/60)
	if !first.Advance || first.DT <= 0 || first.DT >= 1.0/60 {
		t.Fatalf("first throttled frame = %+v", first)
	}
	for range 60 {
		l.Snapshot(now, 1.0/60)
	}

	l.Release(Advance)
	coast := l.Snapshot(now, 1.0/60)
	if !coast.Advance || coast.DT <= 0 {
		t.Fatalf("released motion did not coast: %+v", coast)
	}
	for range 240 {
		coast = l.Snapshot(now, 1.0/60)
	}
	if coast.Moving() {
		t.Errorf("motion still coasting after the throttle settled: %+v", coast)
	}
}
