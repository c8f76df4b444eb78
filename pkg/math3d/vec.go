// Package math3d provides the small amount of math the sector renderer needs:
// camera-space vectors, an integer heading backed by a trig table, and generic
// numeric helpers.
package math3d

import "math"

// Vec2 is a point on the ground plane. In camera space X is lateral offset
// (positive to the right) and Y is depth (positive ahead).
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Scale returns a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Mid returns the midpoint between a and b.
func (a Vec2) Mid(b Vec2) Vec2 {
	return a.Add(b).Scale(0.5)
}

// Len returns the distance from the origin.
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// Rotate rotates a by heading h. It is the inverse of the world-to-camera
// rotation, so Rotate(h) applied to a camera-space point yields the world
// offset from the camera.
func (a Vec2) Rotate(h Heading) Vec2 {
	s, c := h.Sin(), h.Cos()
	return Vec2{
		a.X*c + a.Y*s,
		-a.X*s + a.Y*c,
	}
}

// Vec3 is a camera-space point: X lateral, Y depth, Z height relative to the eye.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	d := b.Sub(a)
	return Vec3{a.X + d.X*t, a.Y + d.Y*t, a.Z + d.Z*t}
}
