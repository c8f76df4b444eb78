package render

import (
	"cmp"
	"slices"

	"github.com/taigrr/sector/pkg/level"
)

// SurfaceState selects what a sector draws this frame, based on where the
// camera sits relative to its floor and ceiling.
type SurfaceState int

const (
	SurfaceWall    SurfaceState = iota // between floor and ceiling: walls only
	SurfaceFloor                       // below the floor: its underside is visible
	SurfaceCeiling                     // above the ceiling: its top is visible
)

func (s SurfaceState) String() string {
	switch s {
	case SurfaceFloor:
		return "floor"
	case SurfaceCeiling:
		return "ceiling"
	default:
		return "wall"
	}
}

// Frame is the per-frame scratch state of a renderer. Its slices run
// parallel to the level's sectors, so the level itself is never written.
type Frame struct {
	Order   []int          // sector indices, farthest first
	Dist    []float64      // mean camera-space distance of each sector's walls
	Surface []SurfaceState // per sector
	Horizon [][]int        // per sector, one raster row per column
}

// NewFrame allocates scratch for the given sector count and raster width.
func NewFrame(sectors, width int) *Frame {
	f := &Frame{
		Order:   make([]int, sectors),
		Dist:    make([]float64, sectors),
		Surface: make([]SurfaceState, sectors),
		Horizon: make([][]int, sectors),
	}
	for i := range f.Horizon {
		f.Horizon[i] = make([]int, width)
	}
	return f
}

// Prepare measures, classifies and orders every sector for cam. height is
// the raster height used to seed floor horizons.
func (f *Frame) Prepare(cam *Camera, lvl *level.Level, height int) {
	for i, sec := range lvl.Sectors {
		f.Dist[i] = distance(cam, lvl.SectorWalls(i))
		f.Surface[i] = classify(cam.Z, sec)

		switch f.Surface[i] {
		case SurfaceFloor:
			fill(f.Horizon[i], height)
		case SurfaceCeiling:
			fill(f.Horizon[i], 0)
		}
	}

	for i := range f.Order {
		f.Order[i] = i
	}
	slices.SortStableFunc(f.Order, func(a, b int) int {
		return cmp.Compare(f.Dist[b], f.Dist[a])
	})
}

// distance averages the camera-space length to each wall's midpoint.
func distance(cam *Camera, walls []level.Wall) float64 {
	if len(walls) == 0 {
		return 0
	}
	var sum float64
	for _, w := range walls {
		a := ToCamera(cam, w.X1, w.Y1)
		b := ToCamera(cam, w.X2, w.Y2)
		sum += a.Mid(b).Len()
	}
	return sum / float64(len(walls))
}

func classify(z int, sec level.Sector) SurfaceState {
	switch {
	case z < sec.FloorZ:
		return SurfaceFloor
	case z > sec.CeilingZ:
		return SurfaceCeiling
	default:
		return SurfaceWall
	}
}

func fill(s []int, v int) {
	for i := range s {
		s[i] = v
	}
}
