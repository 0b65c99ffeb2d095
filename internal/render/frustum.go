package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// frustumMargin inflates boxes before testing, in blocks
const frustumMargin float32 = 1.0

type plane struct{ a, b, c, d float32 }

// Frustum holds the six clip planes of a view-projection matrix:
// left, right, bottom, top, near, far.
type Frustum struct {
	planes [6]plane
}

// NewFrustum extracts the planes of clip (proj * view)
func NewFrustum(clip mgl32.Mat4) *Frustum {
	// mgl32 matrices are column-major; row(i) is clip[i], clip[i+4], ...
	row := func(i int) plane {
		return plane{clip[i], clip[i+4], clip[i+8], clip[i+12]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)
	add := func(p, q plane) plane { return plane{p.a + q.a, p.b + q.b, p.c + q.c, p.d + q.d} }
	sub := func(p, q plane) plane { return plane{p.a - q.a, p.b - q.b, p.c - q.c, p.d - q.d} }

	f := &Frustum{}
	f.planes = [6]plane{
		normalizePlane(add(r3, r0)),
		normalizePlane(sub(r3, r0)),
		normalizePlane(add(r3, r1)),
		normalizePlane(sub(r3, r1)),
		normalizePlane(add(r3, r2)),
		normalizePlane(sub(r3, r2)),
	}
	return f
}

func normalizePlane(p plane) plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// IntersectsAABB reports whether the box may be visible. A nil frustum sees
// everything.
func (f *Frustum) IntersectsAABB(lo, hi mgl32.Vec3) bool {
	if f == nil {
		return true
	}
	m := mgl32.Vec3{frustumMargin, frustumMargin, frustumMargin}
	lo, hi = lo.Sub(m), hi.Add(m)
	for _, p := range f.planes {
		// Test the corner furthest along the plane normal
		x, y, z := hi.X(), hi.Y(), hi.Z()
		if p.a < 0 {
			x = lo.X()
		}
		if p.b < 0 {
			y = lo.Y()
		}
		if p.c < 0 {
			z = lo.Z()
		}
		if p.a*x+p.b*y+p.c*z+p.d < 0 {
			return false
		}
	}
	return true
}
