package layout

import "github.com/HasnainAbbasi1/planit/pkg/geo"

// Road band widths in canvas units. The boulevard runs 1.1× arterial.
const (
	LocalRoadWidth     = 4.0
	CollectorRoadWidth = 6.5
	ArterialRoadWidth  = 9.0
	boulevardFactor    = 1.1
)

// buildRoadBands computes one band per grid line plus the perimeter
// boulevard. This is a static structural pattern: widths come from the
// line's position in the hierarchy, labels mark key crossings, and no
// routing of any kind happens here.
func (ctx *layoutContext) buildRoadBands() []RoadBand {
	bands := make([]RoadBand, 0, ctx.rows+ctx.cols+3)

	// Column lines (vertical bands): tier decided by position among cols,
	// labels placed at row crossings.
	for i := 0; i <= ctx.cols; i++ {
		x := ctx.bboxMin.X + float64(i)*ctx.blockW
		tier, width := lineTier(i, ctx.cols)
		bands = append(bands, RoadBand{
			Orientation: "col",
			Index:       i,
			Tier:        tier,
			Width:       width,
			Start:       geo.Pt(x, ctx.bboxMin.Y),
			End:         geo.Pt(x, ctx.bboxMax.Y),
			Labels:      labelPoints(ctx.rows, func(j int) geo.Point { return geo.Pt(x, ctx.bboxMin.Y+float64(j)*ctx.blockH) }),
		})
	}

	// Row lines (horizontal bands).
	for j := 0; j <= ctx.rows; j++ {
		y := ctx.bboxMin.Y + float64(j)*ctx.blockH
		tier, width := lineTier(j, ctx.rows)
		bands = append(bands, RoadBand{
			Orientation: "row",
			Index:       j,
			Tier:        tier,
			Width:       width,
			Start:       geo.Pt(ctx.bboxMin.X, y),
			End:         geo.Pt(ctx.bboxMax.X, y),
			Labels:      labelPoints(ctx.cols, func(i int) geo.Point { return geo.Pt(ctx.bboxMin.X+float64(i)*ctx.blockW, y) }),
		})
	}

	// Perimeter boulevard along the bottom external edge.
	bands = append(bands, RoadBand{
		Orientation: "boulevard",
		Index:       0,
		Tier:        TierBoulevard,
		Width:       ArterialRoadWidth * boulevardFactor,
		Start:       ctx.bboxMin,
		End:         geo.Pt(ctx.bboxMax.X, ctx.bboxMin.Y),
	})
	return bands
}

// lineTier classifies a grid line. The outermost lines and an interior
// set spaced by max(2, dim/3) are arterial; multiples of 3 are collector
// once the dimension reaches 6; the rest are local.
func lineTier(index, dim int) (RoadTier, float64) {
	spacing := dim / 3
	if spacing < 2 {
		spacing = 2
	}
	switch {
	case index == 0 || index == dim || index%spacing == 0:
		return TierArterial, ArterialRoadWidth
	case dim >= 6 && index%3 == 0:
		return TierCollector, CollectorRoadWidth
	default:
		return TierLocal, LocalRoadWidth
	}
}

// labelPoints marks the crossings a band is labeled at: the first and
// last index, the midpoint, and every third crossing once the crossing
// dimension reaches 6.
func labelPoints(dim int, at func(int) geo.Point) []geo.Point {
	marked := map[int]bool{0: true, dim: true, dim / 2: true}
	if dim >= 6 {
		for i := 3; i < dim; i += 3 {
			marked[i] = true
		}
	}
	pts := make([]geo.Point, 0, len(marked))
	for i := 0; i <= dim; i++ {
		if marked[i] {
			pts = append(pts, at(i))
		}
	}
	return pts
}
