package geo

import "math"

// circleSegments is the default resolution for circle approximation.
const circleSegments = 48

// ApproximateCircle returns a polygon approximating a circle with the given
// center, radius, and number of segments. Vertices are in CCW order.
func ApproximateCircle(center Point, radius float64, segments int) Polygon {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Point, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return Polygon{Vertices: pts}
}

// Circle is a convenience wrapper for ApproximateCircle at the default
// resolution.
func Circle(center Point, radius float64) Polygon {
	return ApproximateCircle(center, radius, circleSegments)
}

// ClipToConvex clips the subject polygon to a convex clip polygon using
// the Sutherland-Hodgman algorithm. Returns the intersection polygon,
// which is empty when the shapes do not overlap.
func ClipToConvex(subject, clipper Polygon) Polygon {
	if subject.IsEmpty() || clipper.IsEmpty() {
		return Polygon{}
	}
	clipper = clipper.EnsureCCW()

	output := make([]Point, len(subject.Vertices))
	copy(output, subject.Vertices)

	clipN := len(clipper.Vertices)
	for i := 0; i < clipN; i++ {
		if len(output) == 0 {
			return Polygon{}
		}
		edgeStart := clipper.Vertices[i]
		edgeEnd := clipper.Vertices[(i+1)%clipN]
		input := output
		output = make([]Point, 0, len(input))

		for j := 0; j < len(input); j++ {
			current := input[j]
			next := input[(j+1)%len(input)]
			curInside := isInsideEdge(current, edgeStart, edgeEnd)
			nextInside := isInsideEdge(next, edgeStart, edgeEnd)

			if curInside && nextInside {
				output = append(output, next)
			} else if curInside && !nextInside {
				if ix, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
					output = append(output, ix)
				}
			} else if !curInside && nextInside {
				if ix, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
					output = append(output, ix)
				}
				output = append(output, next)
			}
		}
	}
	if len(output) < 3 {
		return Polygon{}
	}
	return Polygon{Vertices: output}
}

// ClipToRect clips the subject polygon to an axis-aligned rectangle.
func ClipToRect(subject Polygon, r Rect) Polygon {
	if r.Width() <= 0 || r.Height() <= 0 {
		return Polygon{}
	}
	return ClipToConvex(subject, r.ToPolygon())
}

// CircleFits reports whether the circle at center with the given radius
// lies entirely inside the polygon: the center must be contained and no
// boundary edge may come closer than the radius.
func CircleFits(p Polygon, center Point, radius float64) bool {
	if !p.Contains(center) {
		return false
	}
	return p.DistanceToBoundary(center) >= radius
}

// InsetTowardCentroid shrinks the polygon by moving every vertex toward
// the centroid by the given fraction of its distance. A fraction of 0.18
// produces a footprint inset roughly 18% per side. Returns an empty
// polygon for fractions outside (0, 1) applied to degenerate input.
func InsetTowardCentroid(p Polygon, fraction float64) Polygon {
	if p.IsEmpty() || fraction <= 0 || fraction >= 1 {
		return Polygon{}
	}
	c := p.Centroid()
	pts := make([]Point, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = v.Lerp(c, fraction)
	}
	inset := Polygon{Vertices: pts}
	if inset.Area() < 1e-9 {
		return Polygon{}
	}
	return inset
}

// isInsideEdge returns true if the point is on the inside (left) of the
// directed edge from edgeStart to edgeEnd.
func isInsideEdge(p, edgeStart, edgeEnd Point) bool {
	return (edgeEnd.X-edgeStart.X)*(p.Y-edgeStart.Y)-
		(edgeEnd.Y-edgeStart.Y)*(p.X-edgeStart.X) >= 0
}

// lineIntersection returns the intersection point of lines (p1→p2) and (p3→p4).
func lineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	d := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(d) < 1e-12 {
		return Point{}, false
	}
	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / d
	return Point{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
	}, true
}
