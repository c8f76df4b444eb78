package level

import "image/color"

// Demo texture ids.
const (
	TexGrayBrick = iota
	TexRedBrick
	TexGreenChecker
	TexBlueChecker
	TexStone
	TexSand
)

// Demo returns the built-in level: four boxes around the origin at different
// heights, so that walls, tops and undersides are all visible from the
// default spawn.
func Demo() *Level {
	textures := []Texture{
		NewBrickTexture("gray brick", 32, 32, color.RGBA{120, 120, 120, 255}, color.RGBA{70, 70, 70, 255}),
		NewBrickTexture("red brick", 32, 32, color.RGBA{170, 40, 30, 255}, color.RGBA{90, 80, 70, 255}),
		NewCheckerTexture("green checker", 16, 16, 4, color.RGBA{40, 160, 60, 255}, color.RGBA{20, 110, 40, 255}),
		NewCheckerTexture("blue checker", 16, 16, 4, color.RGBA{50, 70, 190, 255}, color.RGBA{30, 40, 120, 255}),
		NewCheckerTexture("stone", 32, 32, 8, color.RGBA{150, 150, 140, 255}, color.RGBA{110, 110, 100, 255}),
		NewCheckerTexture("sand", 8, 8, 2, color.RGBA{210, 190, 120, 255}, color.RGBA{190, 170, 100, 255}),
	}

	sectors := []Sector{
		{WallStart: 0, WallEnd: 4, FloorZ: 0, CeilingZ: 40, CeilingTexture: TexStone, FloorTexture: TexSand, TextureScale: 4},
		{WallStart: 4, WallEnd: 8, FloorZ: 0, CeilingZ: 20, CeilingTexture: TexGreenChecker, FloorTexture: TexSand, TextureScale: 4},
		{WallStart: 8, WallEnd: 12, FloorZ: 50, CeilingZ: 70, CeilingTexture: TexStone, FloorTexture: TexBlueChecker, TextureScale: 4},
		{WallStart: 12, WallEnd: 16, FloorZ: 0, CeilingZ: 10, CeilingTexture: TexBlueChecker, FloorTexture: TexSand, TextureScale: 2},
	}

	// Walls run counter-clockwise so the outside of each box is the front face.
	var walls []Wall
	walls = append(walls, box(0, 0, 32, TexGrayBrick, TexRedBrick)...)
	walls = append(walls, box(64, 0, 32, TexRedBrick, TexGrayBrick)...)
	walls = append(walls, box(64, 64, 32, TexGreenChecker, TexBlueChecker)...)
	walls = append(walls, box(0, 64, 32, TexBlueChecker, TexGreenChecker)...)

	return &Level{
		Name:     "demo",
		Sectors:  sectors,
		Walls:    walls,
		Textures: textures,
		Spawn:    Spawn{X: 48, Y: -110, Z: 30, Heading: 0},
	}
}

// box returns the four walls of a square with its lower-left corner at (x, y),
// alternating two textures and shading the east/west faces.
func box(x, y, size, texA, texB int) []Wall {
	return []Wall{
		{X1: x, Y1: y, X2: x + size, Y2: y, Texture: texA, U: 1, V: 1},
		{X1: x + size, Y1: y, X2: x + size, Y2: y + size, Texture: texB, U: 1, V: 1, Shade: 40},
		{X1: x + size, Y1: y + size, X2: x, Y2: y + size, Texture: texA, U: 1, V: 1},
		{X1: x, Y1: y + size, X2: x, Y2: y, Texture: texB, U: 1, V: 1, Shade: 40},
	}
}
