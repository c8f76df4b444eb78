package render

import (
	"math"

	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/math3d"
)

// texel maps tiling coordinates onto a texture. v counts up from the bottom
// of the image, so rows are flipped to keep textures upright in a
// bottom-left raster. The result is always in range for a non-empty texture.
func texel(tex *level.Texture, u, v float64) (tx, ty int) {
	tx = math3d.Wrap(whole(u), tex.Width)
	ty = tex.Height - 1 - math3d.Wrap(whole(v), tex.Height)
	return tx, ty
}

// whole floors f, mapping NaN and infinities to 0.
func whole(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Floor(f))
}

// Sample returns the nearest texel at (u, v), tiling in both directions.
// An empty texture samples as magenta.
func Sample(tex *level.Texture, u, v float64) Color {
	if tex == nil || tex.Width <= 0 || tex.Height <= 0 {
		return ColorMagenta
	}
	r, g, b := tex.RGB(texel(tex, u, v))
	return RGB(r, g, b)
}

// Shade darkens c by s per channel, saturating at 0. A negative s brightens,
// saturating at 255.
func Shade(c Color, s int) Color {
	if s == 0 {
		return c
	}
	return Color{
		R: uint8(math3d.Clamp(int(c.R)-s, 0, 255)),
		G: uint8(math3d.Clamp(int(c.G)-s, 0, 255)),
		B: uint8(math3d.Clamp(int(c.B)-s, 0, 255)),
		A: c.A,
	}
}
