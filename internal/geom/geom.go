package geom

// Point is a position in desktop space. Coordinates can be negative,
// e.g. for a screen placed left of or above the primary display.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle described by its min and max corners.
// Containment treats Min as inclusive and Max as exclusive, the same
// convention image.Rectangle uses.
type Rect struct {
	Min Point
	Max Point
}

// RectFromMinMax builds a rectangle from its two corners as given.
func RectFromMinMax(min, max Point) Rect {
	return Rect{Min: min, Max: max}
}

// RectFromMinSize builds a rectangle from its min corner and dimensions.
func RectFromMinSize(min Point, width, height float64) Rect {
	return Rect{Min: min, Max: Point{X: min.X + width, Y: min.Y + height}}
}

// RectFromPoints builds the smallest rectangle covering both points.
// The corners are normalized component-wise, so the points may be any
// two opposite corners in any order.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Min: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Area returns Width * Height.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r. A point exactly on the max
// edge is outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Union returns the smallest rectangle covering both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{X: min(r.Min.X, s.Min.X), Y: min(r.Min.Y, s.Min.Y)},
		Max: Point{X: max(r.Max.X, s.Max.X), Y: max(r.Max.Y, s.Max.Y)},
	}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + dx, Y: r.Min.Y + dy},
		Max: Point{X: r.Max.X + dx, Y: r.Max.Y + dy},
	}
}

// Scale multiplies both corners component-wise by the given factors.
// Scaling the corners is the same as scaling the min corner and the
// size, which is how logical bounds map to physical pixels.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X * sx, Y: r.Min.Y * sy},
		Max: Point{X: r.Max.X * sx, Y: r.Max.Y * sy},
	}
}
