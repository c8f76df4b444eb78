package level

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func testLevel() *Level {
	return &Level{
		Sectors: []Sector{
			{WallStart: 0, WallEnd: 2, FloorZ: 0, CeilingZ: 40, FloorTexture: 0, CeilingTexture: 1, TextureScale: 1},
		},
		Walls: []Wall{
			{X1: 0, Y1: 0, X2: 10, Y2: 0, Texture: 0, U: 1, V: 1},
			{X1: 10, Y1: 0, X2: 0, Y2: 0, Texture: 1, U: 1, V: 1},
		},
		Textures: []Texture{
			NewSolidTexture("a", 2, 2, color.RGBA{255, 0, 0, 255}),
			NewSolidTexture("b", 2, 2, color.RGBA{0, 255, 0, 255}),
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Level)
		wantErr string
	}{
		{"valid", func(*Level) {}, ""},
		{"no sectors", func(l *Level) { l.Sectors = nil }, "no sectors"},
		{"no textures", func(l *Level) { l.Textures = nil }, "no textures"},
		{"reversed wall range", func(l *Level) { l.Sectors[0].WallStart = 2; l.Sectors[0].WallEnd = 1 }, "wall range"},
		{"wall range past end", func(l *Level) { l.Sectors[0].WallEnd = 3 }, "wall range"},
		{"negative wall start", func(l *Level) { l.Sectors[0].WallStart = -1 }, "wall range"},
		{"floor above ceiling", func(l *Level) { l.Sectors[0].FloorZ = 50 }, "above ceiling"},
		{"bad floor texture", func(l *Level) { l.Sectors[0].FloorTexture = 2 }, "floor texture"},
		{"bad ceiling texture", func(l *Level) { l.Sectors[0].CeilingTexture = -1 }, "ceiling texture"},
		{"bad wall texture", func(l *Level) { l.Walls[1].Texture = 9 }, "wall 1"},
		{"short pixel buffer", func(l *Level) { l.Textures[0].Pixels = l.Textures[0].Pixels[:5] }, "pixel count"},
		{"zero size texture", func(l *Level) { l.Textures[1] = Texture{Name: "empty"} }, "invalid size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := testLevel()
			tc.mutate(lvl)
			err := lvl.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateEmptyWallRange(t *testing.T) {
	lvl := testLevel()
	lvl.Sectors = append(lvl.Sectors, Sector{WallStart: 2, WallEnd: 2, CeilingZ: 10})
	if err := lvl.Validate(); err != nil {
		t.Fatalf("empty wall range should be valid: %v", err)
	}
	if n := len(lvl.SectorWalls(1)); n != 0 {
		t.Errorf("SectorWalls(1) has %d walls, want 0", n)
	}
}

func TestPixelCountError(t *testing.T) {
	tex := NewTexture("t", 4, 4)
	tex.Pixels = tex.Pixels[:10]
	if err := tex.Validate(); !errors.Is(err, ErrPixelCount) {
		t.Errorf("Validate() = %v, want ErrPixelCount", err)
	}
}

func TestDemoIsValid(t *testing.T) {
	lvl := Demo()
	if err := lvl.Validate(); err != nil {
		t.Fatalf("demo level invalid: %v", err)
	}
	for i, s := range lvl.Sectors {
		if s.WallCount() != 4 {
			t.Errorf("sector %d has %d walls, want 4", i, s.WallCount())
		}
	}
}

func TestSectorWalls(t *testing.T) {
	lvl := Demo()
	walls := lvl.SectorWalls(1)
	if len(walls) != 4 || walls[0] != lvl.Walls[4] {
		t.Errorf("SectorWalls(1) = %v, want walls 4..8", walls)
	}
}

func TestTextures(t *testing.T) {
	red := color.RGBA{200, 10, 20, 255}
	blue := color.RGBA{0, 0, 250, 255}

	t.Run("solid", func(t *testing.T) {
		tex := NewSolidTexture("s", 3, 2, red)
		if err := tex.Validate(); err != nil {
			t.Fatal(err)
		}
		r, g, b := tex.RGB(2, 1)
		if r != red.R || g != red.G || b != red.B {
			t.Errorf("RGB = %d,%d,%d, want red", r, g, b)
		}
	})

	t.Run("checker", func(t *testing.T) {
		tex := NewCheckerTexture("c", 4, 4, 2, red, blue)
		if r, _, _ := tex.RGB(0, 0); r != red.R {
			t.Errorf("(0,0) should be c1")
		}
		if _, _, b := tex.RGB(2, 0); b != blue.B {
			t.Errorf("(2,0) should be c2")
		}
		if r, _, _ := tex.RGB(2, 2); r != red.R {
			t.Errorf("(2,2) should be c1")
		}
	})

	t.Run("out of range is black", func(t *testing.T) {
		tex := NewSolidTexture("s", 2, 2, red)
		if r, g, b := tex.RGB(2, 0); r|g|b != 0 {
			t.Errorf("RGB out of range = %d,%d,%d", r, g, b)
		}
	})
}
