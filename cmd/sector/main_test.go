package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/sector/pkg/control"
	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/render"
)

func TestParseBackground(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Color
		wantErr bool
	}{
		{"24,28,40", render.RGB(24, 28, 40), false},
		{"#ff8000", render.RGB(255, 128, 0), false},
		{"#ff80", render.Color{}, true},
		{"red", render.Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBackground(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBackground(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseBackground(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("320x200")
	if err != nil || w != 320 || h != 200 {
		t.Errorf("parseSize = %d, %d, %v", w, h, err)
	}
	for _, bad := range []string{"", "320", "2x2", "axb"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Errorf("parseSize(%q) succeeded", bad)
		}
	}
}

func TestFocalFor(t *testing.T) {
	if got := focalFor(render.DefaultWidth); got != *focal {
		t.Errorf("focalFor(default width) = %v, want %v", got, *focal)
	}
	if got := focalFor(2 * render.DefaultWidth); got != 2**focal {
		t.Errorf("focalFor(double width) = %v, want %v", got, 2**focal)
	}
}

func TestLoadLevelDemo(t *testing.T) {
	lvl, name, err := loadLevel("", "")
	if err != nil {
		t.Fatalf("loadLevel: %v", err)
	}
	if name == "" || len(lvl.Sectors) == 0 {
		t.Errorf("demo level = %q with %d sectors", name, len(lvl.Sectors))
	}

	if _, _, err := loadLevel("", filepath.Join(t.TempDir(), "none")); err == nil {
		t.Error("missing texture directory accepted")
	}
	if _, _, err := loadLevel(filepath.Join(t.TempDir(), "missing.json"), ""); err == nil {
		t.Error("missing level accepted")
	}
}

func TestSaveScreenshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	lvl := level.Demo()
	if err := saveScreenshot(lvl, render.CameraFor(lvl), 64, 48, render.ColorSky, path); err != nil {
		t.Fatalf("saveScreenshot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("screenshot not written: %v", err)
	}
}

func TestKeyAction(t *testing.T) {
	match := func(key string) func(...string) bool {
		return func(names ...string) bool {
			for _, n := range names {
				if n == key {
					return true
				}
			}
			return false
		}
	}
	if got := keyAction(match("w")); got != control.Advance {
		t.Errorf("w = %v", got)
	}
	if got := keyAction(match("escape")); got != control.Quit {
		t.Errorf("escape = %v", got)
	}
	if got := keyAction(match("x")); got != control.None {
		t.Errorf("x = %v", got)
	}
}

func TestHUDLines(t *testing.T) {
	h := NewHUD("demo")
	h.UpdateFPS()
	top, bottom := h.Lines(80, &render.Camera{X: 3, Y: -4, Z: 5}, render.Stats{WallsProjected: 7})
	if !strings.Contains(top, "demo") || !strings.Contains(top, "7 walls") {
		t.Errorf("top = %q", top)
	}
	if !strings.Contains(bottom, "x:3 y:-4 z:5") {
		t.Errorf("bottom = %q", bottom)
	}
}
