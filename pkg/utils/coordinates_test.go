package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestCamera() *Camera {
	return NewCamera(mgl64.Vec3{0, 5, 15}, mgl64.Vec3{0, 2, 0}, 800, 600)
}

func TestTargetProjectsToCenter(t *testing.T) {
	c := newTestCamera()
	x, y := c.WorldToScreen(mgl64.Vec3{0, 2, 0})
	if math.Abs(x-400) > 1e-6 || math.Abs(y-300) > 1e-6 {
		t.Errorf("target projected to (%v, %v), want (400, 300)", x, y)
	}
}

func TestScreenYAxisPointsDown(t *testing.T) {
	c := newTestCamera()
	_, yLow := c.WorldToScreen(mgl64.Vec3{0, 0, 0})
	_, yHigh := c.WorldToScreen(mgl64.Vec3{0, 5, 0})
	if yHigh >= yLow {
		t.Errorf("higher world point should be higher on screen: %v >= %v", yHigh, yLow)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	c := newTestCamera()

	tests := []struct {
		name  string
		world mgl64.Vec3
	}{
		{"弹弓", mgl64.Vec3{-8, 1, 0}},
		{"原点", mgl64.Vec3{0, 0, 0}},
		{"右上", mgl64.Vec3{10, 6, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := c.WorldToScreen(tt.world)
			got, ok := c.ScreenToWorld(x, y)
			if !ok {
				t.Fatal("ScreenToWorld failed")
			}
			if got.Sub(tt.world).Len() > 1e-4 {
				t.Errorf("round trip = %v, want %v", got, tt.world)
			}
		})
	}
}

func TestPixelsPerUnit(t *testing.T) {
	c := newTestCamera()
	near := c.PixelsPerUnit(mgl64.Vec3{0, 2, 0})
	if near <= 0 {
		t.Fatalf("PixelsPerUnit = %v", near)
	}
	c.Resize(1600, 1200)
	if got := c.PixelsPerUnit(mgl64.Vec3{0, 2, 0}); math.Abs(got-2*near) > 1e-6 {
		t.Errorf("doubling the screen should double the scale: %v vs %v", got, near)
	}
}
