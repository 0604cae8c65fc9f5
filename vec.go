package viewports

import (
	"image"
	"math"
)

// Vec2 is the float32 coordinate pair used on the GUI-facing side of the
// bridge. GUI libraries hand out fractional positions and sizes; the
// windowing layer works in integer pixels, so conversions round.
type Vec2 struct {
	X float32
	Y float32
}

// Point converts to integer pixel coordinates, rounding half away from
// zero the way the windowing layer expects.
func (v Vec2) Point() image.Point {
	return image.Point{
		X: int(math.Round(float64(v.X))),
		Y: int(math.Round(float64(v.Y))),
	}
}

// PointVec converts integer pixel coordinates back to the GUI-facing
// representation.
func PointVec(p image.Point) Vec2 {
	return Vec2{X: float32(p.X), Y: float32(p.Y)}
}
