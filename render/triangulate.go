package render

import (
	"github.com/soypat/flasher"
	"gonum.org/v1/gonum/spatial/r3"
)

var up = r3.Vec{Z: 1}

// Triangulate returns the flat sheet of a crease pattern as triangular faces.
// The hub polygon is fanned from the first hub vertex and each gore panel between
// rings i-1 and i of gores k and k+1 is split along the diagonal joining
// ring i-1 of gore k to ring i of gore k+1. All faces are counter-clockwise
// seen from +Z and carry a +Z normal. The pattern is not modified.
func Triangulate(p flasher.Pattern) []flasher.Face {
	N, n := p.Gores(), p.Rings()
	if N < 3 {
		return nil
	}
	faces := make([]flasher.Face, 0, N-2+2*N*n)
	v := func(k, i int) flasher.Vertex {
		return p.Vertices[p.RadialLines[k%N][i]]
	}
	for k := 1; k < N-1; k++ {
		faces = append(faces, flatFace(v(0, 0), v(k, 0), v(k+1, 0)))
	}
	for k := 0; k < N; k++ {
		for i := 1; i <= n; i++ {
			a, b := v(k, i-1), v(k, i)
			c, d := v(k+1, i), v(k+1, i-1)
			faces = append(faces, flatFace(a, b, c), flatFace(a, c, d))
		}
	}
	return faces
}

// DiagonalEdges returns the panel diagonals used by Triangulate as edges of fold type
// flasher.FoldDiagonal, gore-major, ring-minor.
func DiagonalEdges(p flasher.Pattern) []flasher.Edge {
	N, n := p.Gores(), p.Rings()
	edges := make([]flasher.Edge, 0, N*n)
	for k := 0; k < N; k++ {
		for i := 1; i <= n; i++ {
			edges = append(edges, flasher.Edge{
				Start: p.RadialLines[k][i-1],
				End:   p.RadialLines[(k+1)%N][i],
				Fold:  flasher.FoldDiagonal,
			})
		}
	}
	return edges
}

func flatFace(a, b, c flasher.Vertex) flasher.Face {
	return flasher.Face{V: [3]flasher.Vertex{a, b, c}, Normal: up, HasNormal: true}
}
