package render

import (
	"math"

	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/math3d"
)

// FlatTile is the world size of one floor or ceiling tile at texture scale 1.
const FlatTile = 32.0

// minDivisor keeps the flat mapping finite on the horizon row.
const minDivisor = 1e-3

// flat maps raster pixels of one sector's floor or ceiling back to texture
// space. It is set up once per sector and reused for every column.
type flat struct {
	tex     *level.Texture
	height  float64 // surface z relative to the camera
	horizon float64 // raster row where the plane vanishes
	cx      float64
	fov     float64
	heading math3d.Heading
	origin  math3d.Vec2
	su, sv  float64 // texels per world unit
}

func newFlat(p Projector, cam *Camera, lvl *level.Level, sec level.Sector, surf SurfaceState) flat {
	z, id := sec.FloorZ, sec.FloorTexture
	if surf == SurfaceCeiling {
		z, id = sec.CeilingZ, sec.CeilingTexture
	}
	tex := &lvl.Textures[id]
	tile := float64(max(sec.TextureScale, 1)) / FlatTile
	return flat{
		tex:     tex,
		height:  float64(z - cam.Z),
		horizon: float64(p.Height)/2 + float64(cam.Pitch)*p.FOV/ShearDiv,
		cx:      float64(p.Width) / 2,
		fov:     p.FOV,
		heading: cam.Heading,
		origin:  math3d.V2(float64(cam.X), float64(cam.Y)),
		su:      tile * float64(tex.Width),
		sv:      tile * float64(tex.Height),
	}
}

// world returns the point on the plane seen through raster pixel (x, y).
// It inverts Project and ToCamera for a plane at f.height.
func (f *flat) world(x, y int) math3d.Vec2 {
	d := float64(y) - f.horizon
	if math3d.Abs(d) < minDivisor {
		d = math.Copysign(minDivisor, d)
	}
	local := math3d.V2((float64(x)-f.cx)*f.height/d, f.fov*f.height/d)
	return local.Rotate(f.heading).Add(f.origin)
}

// at samples the flat texture for raster pixel (x, y).
func (f *flat) at(x, y int) Color {
	p := f.world(x, y)
	return Sample(f.tex, p.X*f.su, p.Y*f.sv)
}
