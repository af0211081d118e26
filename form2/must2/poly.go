package must2

import (
	"github.com/soypat/flasher"
	"github.com/soypat/flasher/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Nagon return the vertices of a N sided regular polygon with circumradius
// radius, the first vertex on the positive x axis, in counter-clockwise order.
// Each vertex angle is computed directly so error does not accumulate around the polygon.
func Nagon(n int, radius float64) d2.Set {
	if n < 3 {
		panic(flasher.NewConfigError("N", "hub needs at least 3 sides, got %d", n))
	}
	beta := flasher.GoreWidth(n)
	v := make(d2.Set, n)
	for i := range v {
		v[i] = r2.Scale(radius, d2.Unit(float64(i)*beta))
	}
	return v
}
