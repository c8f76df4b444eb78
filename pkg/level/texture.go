package level

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Texture is an immutable RGB image, row-major from the top-left corner.
type Texture struct {
	Width  int
	Height int
	Name   string
	Pixels []byte // len == Width*Height*3
}

// NewTexture creates a black texture with the given dimensions.
func NewTexture(name string, width, height int) Texture {
	return Texture{
		Width:  width,
		Height: height,
		Name:   name,
		Pixels: make([]byte, width*height*3),
	}
}

// NewSolidTexture creates a single-color texture.
func NewSolidTexture(name string, width, height int, c color.RGBA) Texture {
	tex := NewTexture(name, width, height)
	for i := 0; i < len(tex.Pixels); i += 3 {
		tex.Pixels[i] = c.R
		tex.Pixels[i+1] = c.G
		tex.Pixels[i+2] = c.B
	}
	return tex
}

// NewCheckerTexture creates a procedural checkerboard texture.
func NewCheckerTexture(name string, width, height, checkSize int, c1, c2 color.RGBA) Texture {
	tex := NewTexture(name, width, height)
	if checkSize <= 0 {
		checkSize = 1
	}
	for y := range height {
		for x := range width {
			c := c2
			if (x/checkSize+y/checkSize)%2 == 0 {
				c = c1
			}
			tex.set(x, y, c)
		}
	}
	return tex
}

// NewBrickTexture creates a running-bond brick pattern with mortar lines.
func NewBrickTexture(name string, width, height int, brick, mortar color.RGBA) Texture {
	tex := NewTexture(name, width, height)
	const rowH, brickW = 8, 16
	for y := range height {
		row := y / rowH
		for x := range width {
			off := 0
			if row%2 == 1 {
				off = brickW / 2
			}
			c := brick
			if y%rowH == 0 || (x+off)%brickW == 0 {
				c = mortar
			}
			tex.set(x, y, c)
		}
	}
	return tex
}

// TextureFromImage converts any image into an RGB texture. Alpha is dropped.
func TextureFromImage(name string, img image.Image) Texture {
	bounds := img.Bounds()
	tex := NewTexture(name, bounds.Dx(), bounds.Dy())
	for y := range tex.Height {
		for x := range tex.Width {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			tex.set(x, y, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255})
		}
	}
	return tex
}

// RGB returns the color at (x, y). Callers wrap coordinates first; out of
// range coordinates return black.
func (t Texture) RGB(x, y int) (r, g, b uint8) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return 0, 0, 0
	}
	i := (y*t.Width + x) * 3
	return t.Pixels[i], t.Pixels[i+1], t.Pixels[i+2]
}

// Validate checks the dimensions against the pixel buffer.
func (t Texture) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%q: invalid size %dx%d", t.Name, t.Width, t.Height)
	}
	if want := t.Width * t.Height * 3; len(t.Pixels) != want {
		return fmt.Errorf("%q: %w: have %d bytes, want %d", t.Name, ErrPixelCount, len(t.Pixels), want)
	}
	return nil
}

// ErrPixelCount reports a pixel buffer that does not match the texture size.
var ErrPixelCount = errors.New("pixel count mismatch")

func (t Texture) set(x, y int, c color.RGBA) {
	i := (y*t.Width + x) * 3
	t.Pixels[i] = c.R
	t.Pixels[i+1] = c.G
	t.Pixels[i+2] = c.B
}
