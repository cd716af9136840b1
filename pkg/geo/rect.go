package geo

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// NewRect creates a rectangle from the corner at (x, y) with the given
// width and height.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point.
func (r Rect) Center() Point {
	return MidPoint(r.Min, r.Max)
}

// Inset returns the rectangle shrunk by dx horizontally and dy vertically
// on each side. Collapses to a zero-extent rectangle at the center rather
// than inverting.
func (r Rect) Inset(dx, dy float64) Rect {
	if 2*dx > r.Width() {
		dx = r.Width() / 2
	}
	if 2*dy > r.Height() {
		dy = r.Height() / 2
	}
	return Rect{
		Min: Pt(r.Min.X+dx, r.Min.Y+dy),
		Max: Pt(r.Max.X-dx, r.Max.Y-dy),
	}
}

// ToPolygon returns the rectangle as a CCW polygon.
func (r Rect) ToPolygon() Polygon {
	return NewPolygon(
		r.Min,
		Pt(r.Max.X, r.Min.Y),
		r.Max,
		Pt(r.Min.X, r.Max.Y),
	)
}
