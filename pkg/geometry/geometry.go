// Package geometry provides the 2D primitives shared by layout, input,
// and paint: offsets, sizes, rectangles, and affine viewport transforms.
package geometry

// Offset is a 2D point or translation in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Div returns the offset scaled by 1/factor.
func (o Offset) Div(factor float64) Offset {
	return Offset{X: o.X / factor, Y: o.Y / factor}
}

// Size is a 2D extent in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle described by its top-left corner and size.
type Rect struct {
	Pos  Offset
	Size Size
}

// RectFromPosSize builds a rect from a position and size.
func RectFromPosSize(pos Offset, size Size) Rect {
	return Rect{Pos: pos, Size: size}
}

// Max returns the bottom-right corner of the rectangle.
func (r Rect) Max() Offset {
	return Offset{X: r.Pos.X + r.Size.Width, Y: r.Pos.Y + r.Size.Height}
}

// ContainsPoint reports whether the point lies inside the rectangle.
// Points on the top or left edge are inside; points on the bottom or
// right edge are outside.
func (r Rect) ContainsPoint(p Offset) bool {
	max := r.Max()
	return p.X >= r.Pos.X && p.X < max.X && p.Y >= r.Pos.Y && p.Y < max.Y
}

// Constrain returns the intersection of r with other. If the rectangles
// do not overlap, the result has zero size.
func (r Rect) Constrain(other Rect) Rect {
	minX := max(r.Pos.X, other.Pos.X)
	minY := max(r.Pos.Y, other.Pos.Y)
	maxX := min(r.Max().X, other.Max().X)
	maxY := min(r.Max().Y, other.Max().Y)

	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}

	return Rect{
		Pos:  Offset{X: minX, Y: minY},
		Size: Size{Width: maxX - minX, Height: maxY - minY},
	}
}
