package form2

import (
	"github.com/soypat/flasher"
	"github.com/soypat/flasher/form2/must2"
)

// ZeroThicknessParms are the symmetry parameters of a zero thickness flasher.
type ZeroThicknessParms = must2.ZeroThicknessParms

// ZeroThickness returns the planar crease pattern of a zero thickness flasher.
// If parms.RingDistances is nil, rings are spaced a unit distance apart.
// Parameter errors wrap flasher.ErrInvalidConfig and are returned before any
// geometry is built.
func ZeroThickness(parms ZeroThicknessParms) (p flasher.Pattern, err error) {
	if parms.RingDistances == nil && parms.Rings >= 1 {
		parms.RingDistances, err = UniformRingDistances(parms.Rings, 1)
		if err != nil {
			return flasher.Pattern{}, err
		}
	}
	return zeroThickness(parms)
}

// GenerateZeroThicknessFlasher returns the crease pattern of a zero thickness
// flasher with N gores, n rings beyond a hub of radius A and ring distances L.
// Unlike ZeroThickness, L is never defaulted.
func GenerateZeroThicknessFlasher(N, n int, A float64, L []float64) (flasher.Pattern, error) {
	return zeroThickness(ZeroThicknessParms{
		Gores:         N,
		Rings:         n,
		HubRadius:     A,
		RingDistances: L,
	})
}

func zeroThickness(parms ZeroThicknessParms) (p flasher.Pattern, err error) {
	// Configuration errors are returned as is, not wrapped in a shapeErr.
	if err = parms.Validate(); err != nil {
		return flasher.Pattern{}, err
	}
	defer func() {
		if a := recover(); a != nil {
			err = newShapeErr(a)
			p = flasher.Pattern{}
		}
	}()
	return must2.ZeroThickness(parms), nil
}

// UniformRingDistances returns n+1 ring distances spaced step apart starting at 0.
func UniformRingDistances(n int, step float64) (L []float64, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = newShapeErr(a)
		}
	}()
	return must2.UniformRingDistances(n, step), err
}
