package layout

import (
	"math/rand"

	"github.com/HasnainAbbasi1/planit/pkg/geo"
	"github.com/HasnainAbbasi1/planit/pkg/plan"
	"github.com/HasnainAbbasi1/planit/pkg/units"
)

// layoutContext threads every stage's shared state through the pipeline:
// the normalized boundary, the real-world scale, the terrain summary, and
// one RNG seeded exactly once per run. No stage re-seeds it.
type layoutContext struct {
	boundary    geo.Polygon
	bboxMin     geo.Point
	bboxMax     geo.Point
	scaleFactor float64 // m² per canvas unit²
	acres       float64
	totalMarla  float64
	terrain     plan.TerrainSummary
	seed        int64
	rng         *rand.Rand

	rows, cols     int
	blockW, blockH float64
}

// newLayoutContext builds the context for a validated request and its
// normalized boundary.
func newLayoutContext(req plan.Request, boundary geo.Polygon) *layoutContext {
	area := req.Area.Resolve()
	terrain := plan.FlatTerrain
	if req.Terrain != nil {
		terrain = *req.Terrain
	}
	bboxMin, bboxMax := boundary.BoundingBox()
	return &layoutContext{
		boundary:    boundary,
		bboxMin:     bboxMin,
		bboxMax:     bboxMax,
		scaleFactor: area.SquareMeters / boundary.Area(),
		acres:       area.Acres,
		totalMarla:  units.MarlaFromSquareMeters(area.SquareMeters),
		terrain:     terrain,
		seed:        req.Seed,
		rng:         rand.New(rand.NewSource(req.Seed)),
	}
}

// marlaOf converts a canvas-space area to marla using the run's scale.
func (ctx *layoutContext) marlaOf(canvasArea float64) float64 {
	return units.MarlaFromSquareMeters(canvasArea * ctx.scaleFactor)
}

// cellSeed derives a stable per-cell seed for plot subdivision. Pure in
// (run seed, cell index), so one cell's subdivision never depends on the
// order the others are processed in.
func (ctx *layoutContext) cellSeed(cellIndex int) int64 {
	return ctx.seed*1000003 + int64(cellIndex)*7919
}
