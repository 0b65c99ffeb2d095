package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrustumIntersectsAABB(t *testing.T) {
	proj := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	// Camera at the origin looking down -Z
	view := mgl32.LookAtV(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	f := NewFrustum(proj.Mul4(view))

	tests := []struct {
		name   string
		lo, hi mgl32.Vec3
		want   bool
	}{
		{"ahead", mgl32.Vec3{-1, -1, -20}, mgl32.Vec3{1, 1, -10}, true},
		{"behind", mgl32.Vec3{-1, -1, 10}, mgl32.Vec3{1, 1, 20}, false},
		{"far left", mgl32.Vec3{-200, -1, -20}, mgl32.Vec3{-100, 1, -10}, false},
		{"beyond far plane", mgl32.Vec3{-1, -1, -300}, mgl32.Vec3{1, 1, -200}, false},
		{"around the eye", mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IntersectsAABB(tt.lo, tt.hi); got != tt.want {
				t.Errorf("IntersectsAABB = %v, want %v", got, tt.want)
			}
		})
	}

	var none *Frustum
	if !none.IntersectsAABB(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}) {
		t.Error("nil frustum must not cull")
	}
}
