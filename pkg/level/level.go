// Package level holds the immutable world the renderer draws: sectors, the
// walls that bound them, and the texture table they reference.
//
// A Level is built once at startup by one of the loaders and never mutated
// afterwards, so it can be shared between any number of renderers.
package level

import (
	"errors"
	"fmt"
)

// Sector is a region bounded by the contiguous wall run [WallStart, WallEnd).
type Sector struct {
	WallStart      int `json:"wall_start"`
	WallEnd        int `json:"wall_end"`
	FloorZ         int `json:"floor_z"`
	CeilingZ       int `json:"ceiling_z"`
	CeilingTexture int `json:"ceiling_texture"`
	FloorTexture   int `json:"floor_texture"`
	TextureScale   int `json:"texture_scale"` // flat tiling factor
}

// WallCount returns the number of walls owned by the sector.
func (s Sector) WallCount() int {
	return s.WallEnd - s.WallStart
}

// Wall is one edge of a sector in world-space integer coordinates.
// The front face is the side seen when (X1,Y1) appears to the left of (X2,Y2).
type Wall struct {
	X1      int     `json:"x1"`
	Y1      int     `json:"y1"`
	X2      int     `json:"x2"`
	Y2      int     `json:"y2"`
	Texture int     `json:"texture"`
	U       float64 `json:"u"` // horizontal repeats across the wall
	V       float64 `json:"v"` // vertical repeats up the wall
	Shade   int     `json:"shade"`
}

// Spawn is the initial camera placement stored with a level.
type Spawn struct {
	X       int `json:"x"`
	Y       int `json:"y"`
	Z       int `json:"z"`
	Heading int `json:"heading"`
}

// Level is the complete static world.
type Level struct {
	Name     string
	Sectors  []Sector
	Walls    []Wall
	Textures []Texture
	Spawn    Spawn
}

// Validation errors.
var (
	ErrNoSectors  = errors.New("level has no sectors")
	ErrNoTextures = errors.New("level has no textures")
)

// SectorWalls returns the walls owned by sector i. The slice aliases the
// level's wall table and must not be modified.
func (l *Level) SectorWalls(i int) []Wall {
	s := l.Sectors[i]
	return l.Walls[s.WallStart:s.WallEnd]
}

// Validate checks every index the renderer will dereference so that a bad
// document fails at load time instead of faulting mid-frame.
func (l *Level) Validate() error {
	if len(l.Sectors) == 0 {
		return ErrNoSectors
	}
	if len(l.Textures) == 0 {
		return ErrNoTextures
	}

	for i, tex := range l.Textures {
		if err := tex.Validate(); err != nil {
			return fmt.Errorf("texture %d: %w", i, err)
		}
	}

	for i, s := range l.Sectors {
		if s.WallStart < 0 || s.WallStart > s.WallEnd || s.WallEnd > len(l.Walls) {
			return fmt.Errorf("sector %d: wall range [%d,%d) outside %d walls", i, s.WallStart, s.WallEnd, len(l.Walls))
		}
		if s.FloorZ > s.CeilingZ {
			return fmt.Errorf("sector %d: floor %d above ceiling %d", i, s.FloorZ, s.CeilingZ)
		}
		if !l.hasTexture(s.FloorTexture) {
			return fmt.Errorf("sector %d: floor texture %d out of range", i, s.FloorTexture)
		}
		if !l.hasTexture(s.CeilingTexture) {
			return fmt.Errorf("sector %d: ceiling texture %d out of range", i, s.CeilingTexture)
		}
	}

	for i, w := range l.Walls {
		if !l.hasTexture(w.Texture) {
			return fmt.Errorf("wall %d: texture %d out of range", i, w.Texture)
		}
	}

	return nil
}

func (l *Level) hasTexture(id int) bool {
	return id >= 0 && id < len(l.Textures)
}
