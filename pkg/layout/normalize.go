package layout

import (
	"github.com/HasnainAbbasi1/planit/pkg/geo"
	"github.com/HasnainAbbasi1/planit/pkg/plan"
)

// Canvas dimensions every boundary is normalized into.
const (
	CanvasWidth  = 1000.0
	CanvasHeight = 1000.0

	// paddingRatio keeps a margin between the boundary and the canvas
	// edge so road bands and labels have room.
	paddingRatio = 0.05
)

// NormalizeBoundary fits the raw boundary ring into the working canvas,
// preserving aspect ratio and centering the shape inside the padded area.
// An explicitly closed ring (first == last) is accepted; the duplicate
// closing point is dropped since polygon closure is implicit.
//
// Returns plan.ErrInvalidGeometry for rings with fewer than three distinct
// points or a zero-extent bounding box.
func NormalizeBoundary(ring [][2]float64, canvasW, canvasH float64) (geo.Polygon, error) {
	pts := ringPoints(ring)
	if len(pts) < 3 {
		return geo.Polygon{}, plan.ErrInvalidGeometry
	}

	raw := geo.NewPolygon(pts...)
	minP, maxP := raw.BoundingBox()
	geoW := maxP.X - minP.X
	geoH := maxP.Y - minP.Y
	if geoW <= 0 || geoH <= 0 {
		return geo.Polygon{}, plan.ErrInvalidGeometry
	}

	padX := canvasW * paddingRatio
	padY := canvasH * paddingRatio
	availW := canvasW - 2*padX
	availH := canvasH - 2*padY

	scale := availW / geoW
	if s := availH / geoH; s < scale {
		scale = s
	}

	// Center the scaled shape within the padded canvas.
	offsetX := padX + (availW-geoW*scale)/2
	offsetY := padY + (availH-geoH*scale)/2

	out := make([]geo.Point, len(pts))
	for i, p := range pts {
		out[i] = geo.Pt(
			offsetX+(p.X-minP.X)*scale,
			offsetY+(p.Y-minP.Y)*scale,
		)
	}
	norm := geo.NewPolygon(out...).EnsureCCW()
	if norm.Area() == 0 {
		return geo.Polygon{}, plan.ErrInvalidGeometry
	}
	return norm, nil
}

// ringPoints converts the raw ring, dropping consecutive duplicates and
// the explicit closing point.
func ringPoints(ring [][2]float64) []geo.Point {
	var pts []geo.Point
	for _, p := range ring {
		pt := geo.Pt(p[0], p[1])
		if len(pts) > 0 && pts[len(pts)-1] == pt {
			continue
		}
		pts = append(pts, pt)
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}
