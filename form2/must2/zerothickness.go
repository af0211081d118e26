package must2

import (
	"strconv"

	"github.com/soypat/flasher"
	"gonum.org/v1/gonum/spatial/r2"
)

// ZeroThicknessParms are the symmetry parameters of a zero thickness flasher.
type ZeroThicknessParms struct {
	// Gores is the number of radial gores N. Must be at least 3.
	Gores int
	// Rings is the number of rings n beyond the hub. Must be at least 1.
	Rings int
	// HubRadius is the circumradius A of the regular N-gon hub.
	HubRadius float64
	// RingDistances L holds Rings+1 strictly increasing distances measured
	// outward from the hub vertex along its radial line. L[0] is 0 by convention.
	RingDistances []float64
}

// Validate returns a *flasher.ConfigError if the parameters cannot describe a flasher.
func (p ZeroThicknessParms) Validate() error {
	switch {
	case p.Gores < 3:
		return flasher.NewConfigError("N", "hub needs at least 3 sides, got %d", p.Gores)
	case p.Rings < 1:
		return flasher.NewConfigError("n", "need at least one ring beyond hub, got %d", p.Rings)
	case len(p.RingDistances) != p.Rings+1:
		return flasher.NewConfigError("L", "length %d does not match n+1=%d", len(p.RingDistances), p.Rings+1)
	}
	L := p.RingDistances
	for i := 1; i < len(L); i++ {
		if !(L[i] > L[i-1]) {
			return flasher.NewConfigError("L", "ring distances must be strictly increasing, got L[%d]=%g after L[%d]=%g", i, L[i], i-1, L[i-1])
		}
	}
	return nil
}

// UniformRingDistances returns n+1 ring distances spaced step apart starting at 0.
func UniformRingDistances(n int, step float64) []float64 {
	if n < 0 {
		panic("negative ring count")
	}
	if step <= 0 {
		panic("ring step must be positive")
	}
	L := make([]float64, n+1)
	for i := range L {
		L[i] = float64(i) * step
	}
	return L
}

// ZeroThickness returns the planar crease pattern of a zero thickness flasher.
// It panics with a *flasher.ConfigError if the parameters are invalid.
//
// Vertices are laid out hub first (p_0..p_{N-1}) followed by each gore's
// ring vertices in gore-major, ring-minor order. Edges are the hub polygon,
// then major folds along each radial line, then minor folds joining equal
// rings of adjacent gores. Coincident vertices and edges are not merged.
func ZeroThickness(parms ZeroThicknessParms) flasher.Pattern {
	if err := parms.Validate(); err != nil {
		panic(err)
	}
	N, n, A, L := parms.Gores, parms.Rings, parms.HubRadius, parms.RingDistances
	beta := flasher.GoreWidth(N)
	dirs := Nagon(N, 1)

	verts := make([]flasher.Vertex, 0, N*(n+1))
	lines := make([][]int, N)
	// Hub polygon vertices.
	for k, u := range dirs {
		lines[k] = make([]int, 1, n+1)
		lines[k][0] = len(verts)
		verts = append(verts, flasher.Vertex{
			Pos:   flasher.Coord2(r2.Scale(A, u)),
			Index: len(verts),
			Label: "p" + strconv.Itoa(k),
		})
	}
	// Ring vertices offset from the hub vertex along each gore's ray.
	for k, u := range dirs {
		hub := verts[lines[k][0]].Pos.XY()
		for i := 1; i <= n; i++ {
			lines[k] = append(lines[k], len(verts))
			verts = append(verts, flasher.Vertex{
				Pos:   flasher.Coord2(r2.Add(hub, r2.Scale(L[i], u))),
				Index: len(verts),
				Label: "r" + strconv.Itoa(k) + "_" + strconv.Itoa(i),
			})
		}
	}

	edges := make([]flasher.Edge, 0, N+2*N*n)
	for k := 0; k < N; k++ {
		edges = append(edges, flasher.Edge{
			Start: lines[k][0],
			End:   lines[(k+1)%N][0],
			Fold:  flasher.FoldHub,
		})
	}
	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			edges = append(edges, flasher.Edge{
				Start: line[i-1],
				End:   line[i],
				Fold:  flasher.FoldMajor,
			})
		}
	}
	for k := 0; k < N; k++ {
		next := lines[(k+1)%N]
		for i := 1; i <= n; i++ {
			edges = append(edges, flasher.Edge{
				Start: lines[k][i],
				End:   next[i],
				Fold:  flasher.FoldMinor,
			})
		}
	}
	return flasher.Pattern{
		Vertices:    verts,
		Edges:       edges,
		RadialLines: lines,
		Beta:        beta,
	}
}
