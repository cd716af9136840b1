package layout

import (
	"math"

	"github.com/HasnainAbbasi1/planit/pkg/geo"
)

const (
	// fitRetries bounds the inward-nudge search for a roundabout center.
	fitRetries = 18

	// influenceFactor grows the reservation buffer past the circle edge.
	influenceFactor = 1.35

	// laterShrink tapers the radius of each subsequent roundabout.
	laterShrink = 0.06

	// verticalJitter offsets candidate centers off the horizontal midline.
	verticalJitter = 0.03
)

// planRoundabouts places 1-4 traffic circles along evenly spaced
// horizontal fractions of the boundary's bounding box. Each candidate is
// nudged toward the boundary centroid in bounded retries until the whole
// circle fits inside the boundary; candidates that never fit are dropped.
// Cells whose rect center falls inside a circle's influence buffer are
// reserved and excluded from zone accounting.
func (ctx *layoutContext) planRoundabouts(cells []Cell) []Roundabout {
	count := roundaboutCount(ctx.acres)
	baseRadius := math.Max(
		0.5*math.Min(ctx.blockW, ctx.blockH),
		ArterialRoadWidth*2.2,
	)

	bboxW := ctx.bboxMax.X - ctx.bboxMin.X
	bboxH := ctx.bboxMax.Y - ctx.bboxMin.Y
	centroid := ctx.boundary.Centroid()

	var placed []Roundabout
	for i := 0; i < count; i++ {
		radius := baseRadius * (1 - laterShrink*float64(i))

		jitter := verticalJitter
		if i%2 == 1 {
			jitter = -verticalJitter
		}
		candidate := geo.Pt(
			ctx.bboxMin.X+bboxW*float64(i+1)/float64(count+1),
			ctx.bboxMin.Y+bboxH*(0.5+jitter),
		)

		if center, ok := fitCircle(ctx.boundary, candidate, centroid, radius); ok {
			placed = append(placed, Roundabout{Center: center, Radius: radius})
		}
	}

	for _, rb := range placed {
		buffer := rb.Radius * influenceFactor
		for i := range cells {
			if cells[i].Rect.Center().Distance(rb.Center) <= buffer {
				cells[i].Reservation = ReservationRoundabout
			}
		}
	}
	return placed
}

// roundaboutCount brackets the circle count by site area.
func roundaboutCount(acres float64) int {
	switch {
	case acres < 45:
		return 1
	case acres < 80:
		return 2
	case acres < 120:
		return 3
	default:
		return 4
	}
}

// fitCircle pulls the candidate center toward the centroid in bounded
// steps until the circle lies fully inside the boundary. Reports failure
// when even the final nudge cannot contain it.
func fitCircle(boundary geo.Polygon, candidate, centroid geo.Point, radius float64) (geo.Point, bool) {
	for try := 0; try < fitRetries; try++ {
		center := candidate.Lerp(centroid, float64(try)/float64(fitRetries))
		if geo.CircleFits(boundary, center, radius) {
			return center, true
		}
	}
	return geo.Point{}, false
}
