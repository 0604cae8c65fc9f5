package viewports

import (
	"image"
	"testing"
)

func TestVec2Point(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want image.Point
	}{
		{"exact", Vec2{X: 100, Y: 200}, image.Point{X: 100, Y: 200}},
		{"rounds up", Vec2{X: 99.5, Y: 0.5}, image.Point{X: 100, Y: 1}},
		{"rounds down", Vec2{X: 99.4, Y: 0.4}, image.Point{X: 99, Y: 0}},
		{"negative rounds away from zero", Vec2{X: -0.5, Y: -1.6}, image.Point{X: -1, Y: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Point(); got != tt.want {
				t.Errorf("Point() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointVec(t *testing.T) {
	v := PointVec(image.Point{X: 640, Y: 480})
	if v.X != 640 || v.Y != 480 {
		t.Errorf("PointVec = %v", v)
	}
}
