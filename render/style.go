package render

import (
	"fmt"
	"image/color"

	"github.com/soypat/flasher"
)

// LineStyle is how a sink draws an edge of a given fold type.
type LineStyle struct {
	Color  color.RGBA
	Width  float64
	Dashed bool
}

// Style returns the line style for fold type f. Every fold type maps to a
// distinct style, including those the zero thickness generator never emits.
func Style(f flasher.FoldType) (LineStyle, error) {
	switch f {
	case flasher.FoldHub:
		return LineStyle{Color: color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}, Width: 2}, nil
	case flasher.FoldMajor:
		return LineStyle{Color: color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, Width: 1.5}, nil
	case flasher.FoldMinor:
		return LineStyle{Color: color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, Width: 1}, nil
	case flasher.FoldMountain:
		return LineStyle{Color: color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, Width: 1}, nil
	case flasher.FoldValley:
		return LineStyle{Color: color.RGBA{R: 0x17, G: 0x4a, B: 0xd6, A: 0xff}, Width: 1, Dashed: true}, nil
	case flasher.FoldNeutral:
		return LineStyle{Color: color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, Width: 0.5}, nil
	case flasher.FoldDiagonal:
		return LineStyle{Color: color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, Width: 0.5, Dashed: true}, nil
	}
	return LineStyle{}, fmt.Errorf("no line style for %v", f)
}
