package layout

import (
	"math"

	"github.com/HasnainAbbasi1/planit/pkg/geo"
	"github.com/HasnainAbbasi1/planit/pkg/plan"
)

const (
	// maxGridCells caps the partition grid regardless of site size.
	maxGridCells = 500
	minGridCells = 9

	// Hazardous terrain shrinks the grid: steep or flood-prone sites get
	// fewer, larger blocks.
	hazardMaxSlopeDeg = 50.0
	hazardFloodRisk   = 0.4

	// minCellAreaFraction drops numeric slivers produced by clipping a
	// grid rectangle against the boundary.
	minCellAreaFraction = 0.001
)

// blocksPerAcre is the density table: small sites are carved densely so a
// layout still reads as a neighborhood, large sites taper off.
func blocksPerAcre(acres float64) float64 {
	switch {
	case acres < 1:
		return 6
	case acres < 5:
		return 5
	case acres < 25:
		return 4.2
	case acres < 50:
		return 3.5
	case acres < 100:
		return 3
	case acres < 200:
		return 2.5
	default:
		return 2
	}
}

// SizeGrid chooses the grid dimensions for a site. Rows derive from
// sqrt(target/1.3) so the grid leans slightly wide; the smaller dimension
// grows until the cell count covers the target, bounded by the cap.
func SizeGrid(acres float64, terrain plan.TerrainSummary) (rows, cols int) {
	target := int(math.Round(acres * blocksPerAcre(acres)))
	if target < minGridCells {
		target = minGridCells
	}
	if target > maxGridCells {
		target = maxGridCells
	}

	rows = int(math.Sqrt(float64(target) / 1.3))
	if rows < 3 {
		rows = 3
	}
	cols = target / rows
	if cols < 3 {
		cols = 3
	}
	for rows*cols < target {
		if rows <= cols {
			if (rows+1)*cols > maxGridCells {
				break
			}
			rows++
		} else {
			if rows*(cols+1) > maxGridCells {
				break
			}
			cols++
		}
	}

	if terrain.MaxSlopeDeg > hazardMaxSlopeDeg || terrain.FloodRisk > hazardFloodRisk {
		rows = shrinkDim(rows)
		cols = shrinkDim(cols)
	}
	return rows, cols
}

func shrinkDim(d int) int {
	d = int(float64(d) * 0.9)
	if d < 3 {
		d = 3
	}
	return d
}

// BuildGrid partitions the boundary's bounding box into rows×cols
// rectangles and clips each to the boundary. Cells that fall outside the
// boundary (or survive only as slivers) are dropped; the survivors carry
// their row-major grid index.
func (ctx *layoutContext) buildGrid() []Cell {
	bw := (ctx.bboxMax.X - ctx.bboxMin.X) / float64(ctx.cols)
	bh := (ctx.bboxMax.Y - ctx.bboxMin.Y) / float64(ctx.rows)
	ctx.blockW, ctx.blockH = bw, bh

	minKeep := bw * bh * minCellAreaFraction

	cells := make([]Cell, 0, ctx.rows*ctx.cols)
	for r := 0; r < ctx.rows; r++ {
		for c := 0; c < ctx.cols; c++ {
			rect := geo.NewRect(
				ctx.bboxMin.X+float64(c)*bw,
				ctx.bboxMin.Y+float64(r)*bh,
				bw, bh,
			)
			clipped := geo.ClipToRect(ctx.boundary, rect)
			if clipped.IsEmpty() || clipped.Area() < minKeep {
				continue
			}
			cells = append(cells, Cell{
				Index:    r*ctx.cols + c,
				Row:      r,
				Col:      c,
				Rect:     rect,
				Geometry: clipped,
			})
		}
	}
	return cells
}
