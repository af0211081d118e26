// Package flasher defines the geometry data model of flasher crease patterns:
// vertices, classified fold edges, faces and the generated Pattern.
package flasher

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Geometry data model of a crease pattern.

// Coord is a vertex position. It is either planar (2D) or spatial (3D).
// A planar coordinate has an implicit zero Z component.
type Coord struct {
	v    r3.Vec
	is3d bool
}

// Coord2 returns a planar coordinate.
func Coord2(v r2.Vec) Coord {
	return Coord{v: r3.Vec{X: v.X, Y: v.Y}}
}

// Coord3 returns a spatial coordinate.
func Coord3(v r3.Vec) Coord {
	return Coord{v: v, is3d: true}
}

// Dims returns 2 for planar coordinates and 3 for spatial ones.
func (c Coord) Dims() int {
	if c.is3d {
		return 3
	}
	return 2
}

// XY returns the coordinate projected onto the xy-plane.
func (c Coord) XY() r2.Vec { return r2.Vec{X: c.v.X, Y: c.v.Y} }

// XYZ returns the coordinate in 3D space. Planar coordinates lie on z=0.
func (c Coord) XYZ() r3.Vec { return c.v }

func (c Coord) String() string {
	if c.is3d {
		return fmt.Sprintf("(%g, %g, %g)", c.v.X, c.v.Y, c.v.Z)
	}
	return fmt.Sprintf("(%g, %g)", c.v.X, c.v.Y)
}

// Vertex is a point of the crease pattern mesh.
type Vertex struct {
	Pos Coord
	// Index is the position of the vertex within its pattern's
	// vertex slice. Edges reference vertices by this index.
	Index int
	// Label is an optional debugging tag such as "p3" or "r2_4".
	Label string
}

// FoldAngle is an optional target fold angle in radians.
// The zero value is unset, which is distinct from a fold angle of zero.
type FoldAngle struct {
	radians float64
	set     bool
}

// NewFoldAngle returns a set fold angle.
func NewFoldAngle(radians float64) FoldAngle {
	return FoldAngle{radians: radians, set: true}
}

// Get returns the fold angle in radians and whether it was set.
func (a FoldAngle) Get() (radians float64, ok bool) { return a.radians, a.set }

// IsSet reports whether the fold angle has been assigned.
func (a FoldAngle) IsSet() bool { return a.set }

// Edge is a crease or mesh connection between two vertices of a pattern,
// referenced by their indices.
type Edge struct {
	Start, End int
	Fold       FoldType
	Angle      FoldAngle
}

// Valid reports whether the edge is a non-loop whose endpoints
// index into a vertex slice of length nverts.
func (e Edge) Valid(nverts int) bool {
	return e.Start != e.End &&
		e.Start >= 0 && e.Start < nverts &&
		e.End >= 0 && e.End < nverts
}

// Face is a triangular mesh face. The zero thickness generator does not produce faces.
type Face struct {
	V [3]Vertex
	// Normal is meaningful only if HasNormal is true.
	Normal    r3.Vec
	HasNormal bool
}

// Triangle returns the face's vertex positions in 3D space.
func (f Face) Triangle() [3]r3.Vec {
	return [3]r3.Vec{f.V[0].Pos.XYZ(), f.V[1].Pos.XYZ(), f.V[2].Pos.XYZ()}
}
