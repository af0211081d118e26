package flasher

import (
	"errors"
	"fmt"

	"github.com/soypat/flasher/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Pattern is a generated crease pattern.
type Pattern struct {
	Vertices []Vertex
	// Edges are stored as generated: hub edges, then major folds, then minor folds.
	Edges []Edge
	// RadialLines holds, for each gore, the vertex indices along its
	// radial line ordered from the hub outward.
	RadialLines [][]int
	// Beta is the angular width of a gore in radians.
	Beta float64
	// Faces may be empty. Consumers must not require it.
	Faces []Face
}

// Gores returns the number of gores in the pattern.
func (p Pattern) Gores() int { return len(p.RadialLines) }

// Rings returns the number of rings beyond the hub.
func (p Pattern) Rings() int {
	if len(p.RadialLines) == 0 {
		return 0
	}
	return len(p.RadialLines[0]) - 1
}

// EdgesOf returns the edges of fold type f in generation order.
func (p Pattern) EdgesOf(f FoldType) []Edge {
	var edges []Edge
	for _, e := range p.Edges {
		if e.Fold == f {
			edges = append(edges, e)
		}
	}
	return edges
}

// RadialCoords returns the planar positions along gore k's radial line.
func (p Pattern) RadialCoords(k int) []r2.Vec {
	line := p.RadialLines[k]
	pos := make([]r2.Vec, len(line))
	for i, idx := range line {
		pos[i] = p.Vertices[idx].Pos.XY()
	}
	return pos
}

// EdgeLength returns the planar length of edge e.
func (p Pattern) EdgeLength(e Edge) float64 {
	return r2.Norm(r2.Sub(p.Vertices[e.End].Pos.XY(), p.Vertices[e.Start].Pos.XY()))
}

// Bounds returns the bounding box of the pattern's vertices projected onto the xy-plane.
func (p Pattern) Bounds() r2.Box {
	if len(p.Vertices) == 0 {
		return r2.Box{}
	}
	v0 := p.Vertices[0].Pos.XY()
	bb := d2.Box{Min: v0, Max: v0}
	for _, v := range p.Vertices[1:] {
		bb = bb.Include(v.Pos.XY())
	}
	return r2.Box(bb)
}

// Validate checks the structural invariants of the pattern: vertex indices
// match their position, every edge references two distinct existing vertices
// with a valid fold type and every radial line has the same length.
func (p Pattern) Validate() error {
	nv := len(p.Vertices)
	for i, v := range p.Vertices {
		if v.Index != i {
			return fmt.Errorf("vertex %d has index %d", i, v.Index)
		}
	}
	for i, e := range p.Edges {
		if !e.Valid(nv) {
			return fmt.Errorf("edge %d (%d->%d) invalid for %d vertices", i, e.Start, e.End, nv)
		}
		if !e.Fold.IsValid() {
			return fmt.Errorf("edge %d has %v", i, e.Fold)
		}
	}
	if len(p.RadialLines) == 0 {
		if nv != 0 {
			return errors.New("vertices present but no radial lines")
		}
		return nil
	}
	n := len(p.RadialLines[0])
	for k, line := range p.RadialLines {
		if len(line) != n {
			return fmt.Errorf("radial line %d has %d vertices, want %d", k, len(line), n)
		}
		for _, idx := range line {
			if idx < 0 || idx >= nv {
				return fmt.Errorf("radial line %d references vertex %d out of range", k, idx)
			}
		}
	}
	return nil
}
