package render

import (
	"math"

	"github.com/taigrr/sector/pkg/level"
	"github.com/taigrr/sector/pkg/math3d"
)

// Camera motion rates.
const (
	MoveSpeed  = 80.0  // world units per second
	TurnSpeed  = 120.0 // degrees per second
	ClimbSpeed = 40.0  // world units per second
	LookSpeed  = 24.0  // pitch steps per second
	MaxPitch   = 48    // pitch steps either side of level
)

// Input is one frame's movement snapshot.
type Input struct {
	Advance, Retreat        bool
	StrafeLeft, StrafeRight bool
	TurnLeft, TurnRight     bool
	Ascend, Descend         bool
	LookUp, LookDown        bool

	DT float64 // seconds since the previous frame
}

// Moving reports whether any flag is set.
func (in Input) Moving() bool {
	return in.Advance || in.Retreat || in.StrafeLeft || in.StrafeRight ||
		in.TurnLeft || in.TurnRight || in.Ascend || in.Descend ||
		in.LookUp || in.LookDown
}

// Camera is the viewer: an integer world position, a heading and a pitch.
// Pitch shears the view vertically instead of rotating it.
type Camera struct {
	X, Y, Z int
	Heading math3d.Heading
	Pitch   int

	// fractional motion carried between frames
	rx, ry, rz, rturn, rlook float64
}

// NewCamera returns a camera at the default spawn.
func NewCamera() *Camera {
	return &Camera{X: -37, Y: -190, Z: 20, Heading: math3d.NewHeading(25)}
}

// CameraAt returns a camera placed at a level spawn.
func CameraAt(sp level.Spawn) *Camera {
	return &Camera{X: sp.X, Y: sp.Y, Z: sp.Z, Heading: math3d.NewHeading(sp.Heading)}
}

// CameraFor returns a camera at the level's spawn, or the default camera
// when the level does not set one.
func CameraFor(lvl *level.Level) *Camera {
	if lvl.Spawn == (level.Spawn{}) {
		return NewCamera()
	}
	return CameraAt(lvl.Spawn)
}

// Forward returns the unit ground-plane direction the camera faces.
func (c *Camera) Forward() math3d.Vec2 {
	return math3d.V2(c.Heading.Sin(), c.Heading.Cos())
}

// Update applies one frame of input. Motion is scaled by in.DT; whole units
// move the camera and the fractions carry into the next frame.
func (c *Camera) Update(in Input) {
	if in.DT <= 0 {
		return
	}

	fwd := axis(in.Advance, in.Retreat)
	side := axis(in.StrafeRight, in.StrafeLeft)
	if fwd != 0 || side != 0 {
		s, co := c.Heading.Sin(), c.Heading.Cos()
		step := MoveSpeed * in.DT
		c.X += carry(&c.rx, (fwd*s+side*co)*step)
		c.Y += carry(&c.ry, (fwd*co-side*s)*step)
	}

	if turn := axis(in.TurnRight, in.TurnLeft); turn != 0 {
		c.Heading = c.Heading.Add(carry(&c.rturn, turn*TurnSpeed*in.DT))
	}

	if climb := axis(in.Ascend, in.Descend); climb != 0 {
		c.Z += carry(&c.rz, climb*ClimbSpeed*in.DT)
	}

	if look := axis(in.LookDown, in.LookUp); look != 0 {
		c.Pitch = math3d.Clamp(c.Pitch+carry(&c.rlook, look*LookSpeed*in.DT), -MaxPitch, MaxPitch)
	}
}

// Turn rotates the camera by whole degrees.
func (c *Camera) Turn(deg int) {
	c.Heading = c.Heading.Add(deg)
}

// axis folds a pair of opposing flags into -1, 0 or 1.
func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// carry adds delta to acc and removes and returns the whole part.
func carry(acc *float64, delta float64) int {
	*acc += delta
	whole := math.Trunc(*acc)
	*acc -= whole
	return int(whole)
}
