package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraEye(t *testing.T) {
	c := NewCamera(800, 400)
	if c.AspectRatio != 2 {
		t.Errorf("aspect = %v, want 2", c.AspectRatio)
	}

	c.Target = mgl32.Vec3{10, 0, 0}
	c.Yaw, c.Pitch, c.Distance = 0, 0, 5
	if eye := c.Eye(); !eye.ApproxEqualThreshold(mgl32.Vec3{15, 0, 0}, 1e-4) {
		t.Errorf("eye = %v, want [15 0 0]", eye)
	}
	if f := c.Forward(); !f.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-4) {
		t.Errorf("forward = %v, want [-1 0 0]", f)
	}

	c.Pitch = 89
	if eye := c.Eye(); eye.Y() <= 4.9 {
		t.Errorf("eye at pitch 89 = %v, want nearly straight above", eye)
	}
}

func TestCameraClamps(t *testing.T) {
	c := NewCamera(100, 0)
	if c.AspectRatio != 0 {
		t.Errorf("zero height set aspect to %v", c.AspectRatio)
	}

	c.Orbit(0, 500)
	if c.Pitch != maxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, maxPitch)
	}
	c.Orbit(370, -500)
	if c.Pitch != minPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, minPitch)
	}
	if c.Yaw < -360 || c.Yaw > 360 {
		t.Errorf("yaw not wrapped: %v", c.Yaw)
	}

	c.Zoom(1e-6)
	if c.Distance != minDistance {
		t.Errorf("distance = %v, want %v", c.Distance, minDistance)
	}
	c.Zoom(1e9)
	if c.Distance != maxDistance {
		t.Errorf("distance = %v, want %v", c.Distance, maxDistance)
	}
	c.Zoom(-1)
	if c.Distance != maxDistance {
		t.Error("non-positive zoom factor changed the distance")
	}
}
