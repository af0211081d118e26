package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D rotation about the origin
// in homogeneous coordinates.
type Transform struct {
	data [3 * 3]float64 // stack stronk
}

// Rotate returns a transform rotating by theta radians about the origin.
func Rotate(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{data: [9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// ApplySet applies the transform to every vector of s and returns a new set.
func (t Transform) ApplySet(s Set) Set {
	out := make(Set, len(s))
	for i := range s {
		out[i] = t.ApplyPos(s[i])
	}
	return out
}
