package geometry

import "golang.org/x/image/math/f64"

// Transform is a 2D affine transform. It is used to map pointer
// coordinates from surface space into viewport-local and layout-local
// space, combining the viewport origin translation with the device
// scale factor.
type Transform struct {
	m f64.Aff3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: f64.Aff3{
		1, 0, 0,
		0, 1, 0,
	}}
}

// Translation returns a transform that moves points by delta.
func Translation(delta Offset) Transform {
	return Transform{m: f64.Aff3{
		1, 0, delta.X,
		0, 1, delta.Y,
	}}
}

// Scaling returns a transform that scales points uniformly by factor.
func Scaling(factor float64) Transform {
	return Transform{m: f64.Aff3{
		factor, 0, 0,
		0, factor, 0,
	}}
}

// Then returns the transform equivalent to applying t first and next second.
func (t Transform) Then(next Transform) Transform {
	a, b := next.m, t.m
	return Transform{m: f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}}
}

// Apply maps the point through the transform.
func (t Transform) Apply(p Offset) Offset {
	v := f64.Vec2{p.X, p.Y}
	return Offset{
		X: t.m[0]*v[0] + t.m[1]*v[1] + t.m[2],
		Y: t.m[3]*v[0] + t.m[4]*v[1] + t.m[5],
	}
}
