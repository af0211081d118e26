package flasher

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// GoreWidth returns the angular width in radians of each of the n gores of a flasher.
func GoreWidth(n int) float64 {
	return tau / float64(n)
}
