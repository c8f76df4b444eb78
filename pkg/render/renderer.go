package render

import "github.com/taigrr/sector/pkg/level"

// Default raster size.
const (
	DefaultWidth  = 160
	DefaultHeight = 120
)

// Stats tracks what the last frame did.
type Stats struct {
	SectorsDrawn   int // Sectors visited in painter's order
	WallsProjected int // Wall faces that reached the rasterizer
	WallsCulled    int // Wall faces entirely behind the near plane
	Columns        int // Wall columns painted
}

// Renderer draws a level from a camera. The level is shared and never
// written; each Renderer owns its frame scratch, so one Renderer per viewer
// is safe to run concurrently with others over the same level.
type Renderer struct {
	level *level.Level
	proj  Projector
	frame *Frame
	Stats Stats
}

// NewRenderer creates a renderer for lvl at the given raster size.
func NewRenderer(lvl *level.Level, width, height int) *Renderer {
	return &Renderer{
		level: lvl,
		proj:  Projector{Width: width, Height: height, FOV: DefaultFOV},
		frame: NewFrame(len(lvl.Sectors), width),
	}
}

// Level returns the level being drawn.
func (r *Renderer) Level() *level.Level { return r.level }

// Width returns the raster width.
func (r *Renderer) Width() int { return r.proj.Width }

// Height returns the raster height.
func (r *Renderer) Height() int { return r.proj.Height }

// FOV returns the focal length in pixels.
func (r *Renderer) FOV() float64 { return r.proj.FOV }

// Projector returns the current projection.
func (r *Renderer) Projector() Projector { return r.proj }

// SetFOV sets the focal length in pixels. Non-positive values are ignored.
func (r *Renderer) SetFOV(k float64) {
	if k > 0 {
		r.proj.FOV = k
	}
}

// Resize changes the raster size and reallocates frame scratch.
func (r *Renderer) Resize(width, height int) {
	if width == r.proj.Width && height == r.proj.Height {
		return
	}
	r.proj.Width, r.proj.Height = width, height
	r.frame = NewFrame(len(r.level.Sectors), width)
}

// Frame returns the scratch state of the last Draw.
func (r *Renderer) Frame() *Frame { return r.frame }

// Draw renders one frame from cam into dst. dst is not cleared; pixels no
// surface covers keep whatever they held.
func (r *Renderer) Draw(cam *Camera, dst Surface) {
	r.Stats = Stats{}
	r.frame.Prepare(cam, r.level, r.proj.Height)
	for _, si := range r.frame.Order {
		r.drawSector(cam, si, dst)
	}
}
