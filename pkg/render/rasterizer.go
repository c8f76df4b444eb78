package render

import (
	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/math3d"
)

// drawSector rasterizes one sector: the back pass first, so floor and
// ceiling horizons are known before the front pass fills them.
func (r *Renderer) drawSector(cam *Camera, si int, dst Surface) {
	sec := r.level.Sectors[si]
	state := r.frame.Surface[si]

	var fl flat
	if state != SurfaceWall {
		fl = newFlat(r.proj, cam, r.level, sec, state)
	}

	for _, face := range [...]Face{Back, Front} {
		for wi := sec.WallStart; wi < sec.WallEnd; wi++ {
			w := r.level.Walls[wi]
			q, ok := r.proj.ProjectWall(cam, sec, w, face)
			if !ok {
				r.Stats.WallsCulled++
				continue
			}
			r.Stats.WallsProjected++
			r.drawWall(q, si, w, face, &fl, dst)
		}
	}
	r.Stats.SectorsDrawn++
}

// drawWall walks the columns of one projected wall face. Columns run over
// [max(1,x1), min(W-1,x2)); a face whose x2 <= x1 is facing away and draws
// nothing.
func (r *Renderer) drawWall(q Quad, si int, w level.Wall, face Face, fl *flat, dst Surface) {
	dx := q.X2 - q.X1
	if dx <= 0 {
		return
	}
	state := r.frame.Surface[si]
	horizon := r.frame.Horizon[si]
	tex := &r.level.Textures[w.Texture]
	width, height := r.proj.Width, r.proj.Height

	xs := max(q.X1, 1)
	xe := min(q.X2, width-1)

	uStep := float64(tex.Width) * w.U / float64(dx)
	u := uStep * float64(xs-q.X1)

	for x := xs; x < xe; x++ {
		off := x - q.X1
		yb := q.B1 + lerpRow(q.B2-q.B1, off, dx)
		yt := q.T1 + lerpRow(q.T2-q.T1, off, dx)
		cb := math3d.Clamp(yb, 1, height-1)
		ct := math3d.Clamp(yt, 1, height-1)

		if state != SurfaceWall {
			edge := cb
			if state == SurfaceCeiling {
				edge = ct
			}
			if face == Back {
				horizon[x] = edge
				u += uStep
				continue
			}
			r.drawFlatColumn(x, horizon[x], edge, fl, dst)
		}

		r.drawWallColumn(x, yb, yt, cb, ct, u, tex, w, dst)
		r.Stats.Columns++
		u += uStep
	}
}

// lerpRow interpolates an edge across a wall, rounding the column offset
// to its pixel center.
func lerpRow(delta, off, dx int) int {
	return delta * (2*off + 1) / (2 * dx)
}

// drawWallColumn paints rows [cb, ct) of column x. yb and yt are the
// unclamped edges, used to offset v when the bottom is clipped.
func (r *Renderer) drawWallColumn(x, yb, yt, cb, ct int, u float64, tex *level.Texture, w level.Wall, dst Surface) {
	span := yt - yb
	if span <= 0 {
		return
	}
	vStep := float64(tex.Height) * w.V / float64(span)
	v := vStep * float64(cb-yb)
	for y := cb; y < ct; y++ {
		dst.Quad(x, y, Shade(Sample(tex, u, v), w.Shade))
		v += vStep
	}
}

// drawFlatColumn fills the rows between a recorded horizon and a front edge.
func (r *Renderer) drawFlatColumn(x, from, to int, fl *flat, dst Surface) {
	lo := max(min(from, to), 1)
	hi := min(max(from, to), r.proj.Height-1)
	for y := lo; y < hi; y++ {
		dst.Quad(x, y, fl.at(x, y))
	}
}
