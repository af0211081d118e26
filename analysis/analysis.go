// Package analysis measures geometric properties of generated flasher
// crease patterns: rotational symmetry, hub regularity, radial linearity
// and fold-line lengths.
package analysis

import (
	"math"

	"github.com/soypat/flasher"
	"github.com/soypat/flasher/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// SymmetryDeviation returns the largest coordinate difference between
// gore k's radial line and gore 0's radial line rotated by k·Beta, over all gores.
// A pattern with exact N-fold rotational symmetry returns zero.
func SymmetryDeviation(p flasher.Pattern) float64 {
	if p.Gores() == 0 {
		return 0
	}
	base := radialMatrix(p, 0)
	var rotated mat.Dense
	worst := 0.0
	for k := 0; k < p.Gores(); k++ {
		s, c := math.Sincos(float64(k) * p.Beta)
		rot := mat.NewDense(2, 2, []float64{
			c, -s,
			s, c,
		})
		rotated.Mul(base, rot.T())
		target := radialMatrix(p, k)
		rotated.Sub(&rotated, target)
		worst = math.Max(worst, maxAbs(&rotated))
	}
	return worst
}

// radialMatrix returns gore k's radial line coordinates as rows of an (n+1)×2 matrix.
func radialMatrix(p flasher.Pattern, k int) *mat.Dense {
	line := p.RadialCoords(k)
	data := make([]float64, 0, 2*len(line))
	for _, v := range line {
		data = append(data, v.X, v.Y)
	}
	return mat.NewDense(len(line), 2, data)
}

func maxAbs(m mat.Matrix) float64 {
	r, c := m.Dims()
	max := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			max = math.Max(max, math.Abs(m.At(i, j)))
		}
	}
	return max
}

// HubEdgeLengths returns the lengths of the hub polygon edges in generation order.
func HubEdgeLengths(p flasher.Pattern) []float64 {
	hub := p.EdgesOf(flasher.FoldHub)
	lengths := make([]float64, len(hub))
	for i, e := range hub {
		lengths[i] = p.EdgeLength(e)
	}
	return lengths
}

// HubIrregularity returns the difference between the longest and shortest
// hub polygon edge. A regular hub returns zero.
func HubIrregularity(p flasher.Pattern) float64 {
	lengths := HubEdgeLengths(p)
	if len(lengths) == 0 {
		return 0
	}
	return floats.Max(lengths) - floats.Min(lengths)
}

// RadialCollinearity returns the largest absolute cross product between the
// hub-to-first-ring direction of a radial line and the hub-to-vertex
// displacement of every other vertex on that line. Straight radial lines return zero.
func RadialCollinearity(p flasher.Pattern) float64 {
	worst := 0.0
	for k := 0; k < p.Gores(); k++ {
		line := p.RadialCoords(k)
		if len(line) < 2 {
			continue
		}
		dir := r2.Sub(line[1], line[0])
		for _, v := range line[1:] {
			worst = math.Max(worst, math.Abs(d2.Cross(dir, r2.Sub(v, line[0]))))
		}
	}
	return worst
}

// RingFoldLengths returns the deployed length of the minor fold joining
// gore k to gore k+1 on ring i as lengths[i-1][k], for rings i = 1..n.
// These are the lengths an isometry solver must match in the stowed state.
func RingFoldLengths(p flasher.Pattern) [][]float64 {
	N, n := p.Gores(), p.Rings()
	lengths := make([][]float64, n)
	for i := 1; i <= n; i++ {
		ring := make([]float64, N)
		for k := 0; k < N; k++ {
			a := p.Vertices[p.RadialLines[k][i]].Pos.XY()
			b := p.Vertices[p.RadialLines[(k+1)%N][i]].Pos.XY()
			ring[k] = r2.Norm(r2.Sub(b, a))
		}
		lengths[i-1] = ring
	}
	return lengths
}

// RingRadii returns the distance from the origin of each ring's vertices on
// gore 0, hub first.
func RingRadii(p flasher.Pattern) []float64 {
	if p.Gores() == 0 {
		return nil
	}
	line := p.RadialCoords(0)
	radii := make([]float64, len(line))
	for i, v := range line {
		radii[i] = d2.CartesianToPolar(v).R
	}
	return radii
}

// DegenerateEdges returns the indices into p.Edges of edges shorter than tol.
func DegenerateEdges(p flasher.Pattern, tol float64) []int {
	var idx []int
	for i, e := range p.Edges {
		if p.EdgeLength(e) < tol {
			idx = append(idx, i)
		}
	}
	return idx
}
