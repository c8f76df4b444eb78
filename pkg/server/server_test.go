package server

import (
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/taigrr/sector/pkg/control"
	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/render"
)

func TestEnsureHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := EnsureHostKey(path); err != nil {
		t.Fatalf("EnsureHostKey: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "PRIVATE KEY" {
		t.Fatalf("host key is not a PEM private key: %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("host key mode = %o, want 600", perm)
	}

	// an existing key is left alone
	if err := EnsureHostKey(path); err != nil {
		t.Fatalf("second EnsureHostKey: %v", err)
	}
	again, _ := os.ReadFile(path)
	if string(again) != string(data) {
		t.Error("existing host key was replaced")
	}
}

func TestEnsureHostKeyBadPath(t *testing.T) {
	if err := EnsureHostKey(filepath.Join(t.TempDir(), "missing", "key")); err == nil {
		t.Error("EnsureHostKey into a missing directory succeeded")
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		cols, rows int
		w, h       int
	}{
		{80, 24, 80, 46},
		{160, 61, 160, 120},
		{0, 0, 2, 2},
		{1, 1, 2, 2},
	}
	for _, tt := range tests {
		w, h := viewport(tt.cols, tt.rows)
		if w != tt.w || h != tt.h {
			t.Errorf("viewport(%d, %d) = %dx%d, want %dx%d", tt.cols, tt.rows, w, h, tt.w, tt.h)
		}
	}
}

func TestViewFrame(t *testing.T) {
	cfg := Config{FPS: 30, FOV: render.DefaultFOV, Background: render.ColorSky}
	v := newView(level.Demo(), cfg, 80, 24)

	var sb strings.Builder
	v.frame(time.Now(), 1.0/30, &sb)
	out := sb.String()

	if !strings.HasPrefix(out, render.MoveTo(1, 1)) {
		t.Error("frame does not start at the home position")
	}
	if n := strings.Count(out, render.HalfBlock); n != 80*23 {
		t.Errorf("half blocks = %d, want %d", n, 80*23)
	}
	if !strings.Contains(out, render.MoveTo(24, 1)+" x:") {
		t.Error("status line missing from the last row")
	}
}

func TestViewResize(t *testing.T) {
	cfg := Config{FPS: 30, FOV: render.DefaultFOV}
	v := newView(level.Demo(), cfg, 80, 24)
	fov := v.renderer.FOV()

	if v.resize(80, 24) {
		t.Error("same size reported a change")
	}
	if !v.resize(160, 41) {
		t.Fatal("new size not reported")
	}
	if v.fb.Width != 160 || v.fb.Height != 80 {
		t.Errorf("framebuffer = %dx%d, want 160x80", v.fb.Width, v.fb.Height)
	}
	if got := v.renderer.FOV(); got != fov*2 {
		t.Errorf("fov = %v, want %v", got, fov*2)
	}
}

func TestViewInputMovesCamera(t *testing.T) {
	cfg := Config{FPS: 30, FOV: render.DefaultFOV}
	v := newView(level.Demo(), cfg, 40, 12)
	start := *v.cam

	now := time.Now()
	for _, a := range control.ParseBytes([]byte("www")) {
		v.latch.Press(a, now)
	}
	var sb strings.Builder
	for i := range 15 {
		sb.Reset()
		v.frame(now.Add(time.Duration(i)*time.Second/30), 1.0/30, &sb)
	}
	if v.cam.X == start.X && v.cam.Y == start.Y {
		t.Error("held advance did not move the camera")
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(level.Demo(), Config{Addr: ":0"})
	if s.cfg.FPS != 30 || s.cfg.FOV != render.DefaultFOV || s.cfg.Background != render.ColorSky {
		t.Errorf("defaults not applied: %+v", s.cfg)
	}
	if s.Sessions() != 0 {
		t.Errorf("sessions = %d", s.Sessions())
	}
	if err := s.Shutdown(t.Context()); err != nil {
		t.Errorf("Shutdown before serve: %v", err)
	}
}
