package math3d

import "math"

// FullTurn is the number of discrete headings.
const FullTurn = 360

var sinTable, cosTable [FullTurn]float64

func init() {
	for deg := range FullTurn {
		rad := float64(deg) * math.Pi / 180
		sinTable[deg] = math.Sin(rad)
		cosTable[deg] = math.Cos(rad)
	}
}

// Heading is a whole-degree direction in [0, 360). Zero faces world +Y and
// headings grow clockwise when viewed from above.
type Heading int

// NewHeading normalizes deg into [0, 360).
func NewHeading(deg int) Heading {
	return Heading(Wrap(deg, FullTurn))
}

// Add rotates h by delta degrees and wraps the result.
func (h Heading) Add(delta int) Heading {
	return NewHeading(int(h) + delta)
}

// Valid reports whether h is already normalized.
func (h Heading) Valid() bool {
	return h >= 0 && h < FullTurn
}

// Sin returns the table sine of h.
func (h Heading) Sin() float64 {
	return sinTable[h.index()]
}

// Cos returns the table cosine of h.
func (h Heading) Cos() float64 {
	return cosTable[h.index()]
}

// index guards against headings built by a raw conversion.
func (h Heading) index() int {
	if h.Valid() {
		return int(h)
	}
	return Wrap(int(h), FullTurn)
}
