package form2

import (
	"github.com/soypat/flasher/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Nagon returns the vertices of an n sided regular polygon of the given
// circumradius, starting on the +X axis and ordered counterclockwise.
// These are the hub vertices of a flasher with n gores and hub radius
// radius. It returns an error wrapping flasher.ErrInvalidConfig if n < 3.
func Nagon(n int, radius float64) (v []r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = newShapeErr(a)
		}
	}()
	return must2.Nagon(n, radius), err
}
