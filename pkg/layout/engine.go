// Package layout is the generative spatial-partitioning and
// area-accounting engine. It consumes a boundary polygon, a real-world
// area summary, an optional terrain summary, and a seed, and emits a
// serializable LayoutResult plus a findings report. The engine performs
// no I/O: identical inputs always produce a bit-identical result.
package layout

import (
	"fmt"

	"github.com/HasnainAbbasi1/planit/pkg/plan"
	"github.com/HasnainAbbasi1/planit/pkg/validation"
)

// Generate runs the full pipeline: normalize → size grid → reserve
// roundabouts → allocate zones → place amenities → subdivide plots →
// reconcile ledger → emit road bands.
//
// The boundary check at entry is the only hard failure; past it, every
// stage narrows, retries, or skips rather than abort, because a layout
// with fewer amenities beats no layout at all. Callers receive either a
// complete result with a findings report, or plan.ErrInvalidGeometry with
// no partial output.
func Generate(req plan.Request) (*LayoutResult, *validation.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, fmt.Errorf("layout request: %w", err)
	}

	boundary, err := NormalizeBoundary(req.Boundary, CanvasWidth, CanvasHeight)
	if err != nil {
		return nil, nil, fmt.Errorf("normalizing boundary: %w", err)
	}

	report := validation.NewReport()
	ctx := newLayoutContext(req, boundary)
	ctx.rows, ctx.cols = SizeGrid(ctx.acres, ctx.terrain)

	cells := ctx.buildGrid()
	roundabouts := ctx.planRoundabouts(cells)
	ctx.allocateZones(cells, report)
	amenities := ctx.placeAmenities(cells, report)

	var plots []Plot
	for i := range cells {
		if cells[i].Reservation != ReservationNone {
			continue
		}
		if cells[i].Zone != ZoneResidential && cells[i].Zone != ZoneCommercial {
			continue
		}
		plots = append(plots, ctx.subdivideCell(cells[i])...)
	}

	ledger := ctx.buildLedger(cells, plots, amenities, report)
	roads := ctx.buildRoadBands()

	report.AddInfo(validation.Result{
		Level: validation.LevelLedger,
		Message: fmt.Sprintf("laid out %d cells (%dx%d), %d plots, %d amenities, %d roundabouts",
			len(cells), ctx.rows, ctx.cols, len(plots), len(amenities), len(roundabouts)),
	})

	return &LayoutResult{
		Name:        req.Name,
		Seed:        req.Seed,
		Boundary:    boundary,
		CanvasW:     CanvasWidth,
		CanvasH:     CanvasHeight,
		ScaleFactor: ctx.scaleFactor,
		Rows:        ctx.rows,
		Cols:        ctx.cols,
		BlockW:      ctx.blockW,
		BlockH:      ctx.blockH,
		Cells:       cells,
		Amenities:   amenities,
		Plots:       plots,
		Roundabouts: roundabouts,
		Roads:       roads,
		Ledger:      ledger,
	}, report, nil
}
