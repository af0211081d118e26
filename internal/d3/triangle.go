package d3

import "gonum.org/v1/gonum/spatial/r3"

// Triangle is a 3d triangle given by its vertices in counter-clockwise order.
type Triangle [3]r3.Vec

// Normal returns the unit normal of the triangle following the right hand rule.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if two or more vertices of the triangle coincide within tol.
func (t Triangle) Degenerate(tol float64) bool {
	// check for identical vertices.
	return EqualWithin(t[0], t[1], tol) ||
		EqualWithin(t[1], t[2], tol) ||
		EqualWithin(t[2], t[0], tol)
}
