package render

import (
	"math"

	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/math3d"
)

// Projection constants.
const (
	DefaultFOV = 200.0 // focal length in pixels at the default 160x120 resolution
	NearDepth  = 1.0   // camera-space depth of the near plane
	ShearDiv   = 32.0  // pitch shear is pitch*depth/ShearDiv
)

// Face selects which side of a wall is projected. Back exchanges the
// endpoints, which mirrors the edge so its inside face winds forward.
type Face int

const (
	Front Face = iota
	Back
)

func (f Face) String() string {
	if f == Back {
		return "back"
	}
	return "front"
}

// endpoints returns the wall endpoints in the order seen by face f.
func (f Face) endpoints(w level.Wall) (x1, y1, x2, y2 int) {
	if f == Back {
		return w.X2, w.Y2, w.X1, w.Y1
	}
	return w.X1, w.Y1, w.X2, w.Y2
}

// Quad is a projected wall edge in raster coordinates (origin bottom-left).
// X1/X2 are the edge columns, B1/B2 the bottom rows and T1/T2 the top rows at
// each column.
type Quad struct {
	X1, X2 int
	B1, B2 int
	T1, T2 int
}

// ToCamera translates a world point by the camera position and rotates it by
// the negative heading. The result has X lateral and Y depth.
func ToCamera(cam *Camera, wx, wy int) math3d.Vec2 {
	x := float64(wx - cam.X)
	y := float64(wy - cam.Y)
	s, c := cam.Heading.Sin(), cam.Heading.Cos()
	return math3d.V2(x*c-y*s, y*c+x*s)
}

// Shear is the vertical offset pitch adds to a point at the given depth.
func Shear(pitch int, depth float64) float64 {
	return float64(pitch) * depth / ShearDiv
}

// ClipNear moves behind onto the near plane along the segment towards ahead.
// The result has depth exactly NearDepth and linearly interpolated X and Z.
func ClipNear(behind, ahead math3d.Vec3) math3d.Vec3 {
	den := ahead.Y - behind.Y
	if den == 0 {
		return math3d.V3(behind.X, NearDepth, behind.Z)
	}
	p := behind.Lerp(ahead, (NearDepth-behind.Y)/den)
	p.Y = NearDepth
	return p
}

// Projector maps camera space to raster coordinates.
type Projector struct {
	Width, Height int
	FOV           float64
}

// Project returns the raster position of v. Depth below NearDepth is treated
// as NearDepth.
func (p Projector) Project(v math3d.Vec3) (sx, sy float64) {
	d := math.Max(v.Y, NearDepth)
	return v.X*p.FOV/d + float64(p.Width)/2, v.Z*p.FOV/d + float64(p.Height)/2
}

// ProjectWall runs one wall face of sector s through the pipeline. It reports
// false when the edge lies entirely behind the near plane.
func (p Projector) ProjectWall(cam *Camera, s level.Sector, w level.Wall, face Face) (Quad, bool) {
	x1, y1, x2, y2 := face.endpoints(w)
	a := ToCamera(cam, x1, y1)
	b := ToCamera(cam, x2, y2)
	if a.Y < NearDepth && b.Y < NearDepth {
		return Quad{}, false
	}

	bottom := float64(s.FloorZ - cam.Z)
	top := float64(s.CeilingZ - cam.Z)

	bl := math3d.V3(a.X, a.Y, bottom+Shear(cam.Pitch, a.Y))
	br := math3d.V3(b.X, b.Y, bottom+Shear(cam.Pitch, b.Y))
	tl := math3d.V3(a.X, a.Y, top+Shear(cam.Pitch, a.Y))
	tr := math3d.V3(b.X, b.Y, top+Shear(cam.Pitch, b.Y))

	if a.Y < NearDepth {
		bl = ClipNear(bl, br)
		tl = ClipNear(tl, tr)
	}
	if b.Y < NearDepth {
		br = ClipNear(br, bl)
		tr = ClipNear(tr, tl)
	}

	sx1, b1 := p.Project(bl)
	sx2, b2 := p.Project(br)
	_, t1 := p.Project(tl)
	_, t2 := p.Project(tr)

	return Quad{
		X1: raster(sx1), X2: raster(sx2),
		B1: raster(b1), B2: raster(b2),
		T1: raster(t1), T2: raster(t2),
	}, true
}

// raster converts a projected coordinate to a whole pixel.
func raster(v float64) int {
	return int(math.Floor(v))
}
