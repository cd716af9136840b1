package layout

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/HasnainAbbasi1/planit/pkg/geo"
	"github.com/HasnainAbbasi1/planit/pkg/units"
)

const (
	// plotPadding is the inter-plot corridor as a fraction of the plot
	// dimension, split across the two facing sides.
	plotPadding = 0.01

	// maxPlotPadding bounds padding growth during degenerate retries.
	maxPlotPadding = 0.05

	// minPlotAreaFraction discards clipped slivers smaller than this
	// fraction of the even share cellArea/(rows*cols).
	minPlotAreaFraction = 0.12

	// maxPlotGridDim bounds the per-cell subdivision fan-out.
	maxPlotGridDim = 20

	// minRowsDense keeps 5- and 7-marla grids legible.
	minRowsDense = 3
)

// subdivideCell carves one residential or commercial cell into plots.
// The nominal plot size comes from the zone's catalogue via the per-cell
// seed; the grid dimensions approximate the resulting target count while
// respecting the cell's aspect ratio. Labels show the nominal catalogue
// size; the recorded area always comes from the clipped geometry.
//
// A non-empty cell always yields at least one plot: degenerate clipping
// retries with a halved grid and grown padding, terminating at 1×1.
func (ctx *layoutContext) subdivideCell(cell Cell) []Plot {
	rng := rand.New(rand.NewSource(ctx.cellSeed(cell.Index)))

	var (
		nominalMarla float64
		label        string
		minRows      = 1
		minCount     = 1
	)
	switch cell.Zone {
	case ZoneResidential:
		nominalMarla = units.ResidentialCatalogue[rng.Intn(len(units.ResidentialCatalogue))]
		label = fmt.Sprintf("%g marla", nominalMarla)
		if nominalMarla <= 7 {
			minRows = minRowsDense
		}
	case ZoneCommercial:
		catalogue := units.CommercialCatalogue(ctx.acres)
		cat := catalogue[rng.Intn(len(catalogue))]
		nominalMarla = cat.NominalMarla()
		label = string(cat)
		minCount = 4
	default:
		return nil
	}

	rows, cols := ctx.plotGridDims(cell, nominalMarla, minRows, minCount)

	padding := plotPadding
	for {
		plots := clipPlots(cell, rows, cols, padding)
		if len(plots) > 0 {
			for i := range plots {
				plots[i].Zone = cell.Zone
				plots[i].Label = label
				plots[i].AreaMarla = ctx.marlaOf(plots[i].Geometry.Area())
			}
			return plots
		}
		if rows == 1 && cols == 1 {
			// Guaranteed floor: the whole cell as one plot.
			return []Plot{{
				CellIndex: cell.Index,
				Number:    1,
				Zone:      cell.Zone,
				Label:     label,
				Geometry:  cell.Geometry,
				AreaMarla: ctx.marlaOf(cell.Geometry.Area()),
			}}
		}
		rows = shrinkPlotDim(rows)
		cols = shrinkPlotDim(cols)
		padding = math.Min(maxPlotPadding, padding*2)
	}
}

// plotGridDims approximates the target plot count with a rows×cols grid
// matching the cell's aspect ratio, then converges on the count in a
// bounded loop without violating the minimum-rows rule.
func (ctx *layoutContext) plotGridDims(cell Cell, nominalMarla float64, minRows, minCount int) (rows, cols int) {
	targetPlotArea := units.SquareMetersFromMarla(nominalMarla) / ctx.scaleFactor
	targetCount := cell.Geometry.Area() / targetPlotArea
	if targetCount < float64(minCount) {
		targetCount = float64(minCount)
	}
	if targetCount > maxPlotGridDim*maxPlotGridDim {
		targetCount = maxPlotGridDim * maxPlotGridDim
	}

	aspect := cell.Rect.Width() / cell.Rect.Height()
	cols = clampPlotDim(int(math.Round(math.Sqrt(targetCount * aspect))))
	rows = clampPlotDim(int(math.Round(targetCount / float64(cols))))
	if rows < minRows {
		rows = minRows
	}

	want := int(math.Round(targetCount))
	for i := 0; i < 8; i++ {
		count := rows * cols
		switch {
		case count < want && cols <= rows && cols < maxPlotGridDim:
			cols++
		case count < want && rows < maxPlotGridDim:
			rows++
		case count > want+cols && rows > minRows:
			rows--
		case count > want+rows && cols > 1:
			cols--
		default:
			return rows, cols
		}
	}
	return rows, cols
}

func clampPlotDim(d int) int {
	if d < 1 {
		return 1
	}
	if d > maxPlotGridDim {
		return maxPlotGridDim
	}
	return d
}

func shrinkPlotDim(d int) int {
	d = d / 2
	if d < 1 {
		return 1
	}
	return d
}

// clipPlots partitions the cell's bounding box into an evenly spaced grid
// with padded corridors, intersects each slot with the true cell polygon,
// discards sub-threshold slivers, and numbers the survivors in reading
// order: left to right, top to bottom.
func clipPlots(cell Cell, rows, cols int, padding float64) []Plot {
	minP, maxP := cell.Geometry.BoundingBox()
	plotW := (maxP.X - minP.X) / float64(cols)
	plotH := (maxP.Y - minP.Y) / float64(rows)
	if plotW <= 0 || plotH <= 0 {
		return nil
	}
	gapX := plotW * padding
	gapY := plotH * padding
	minKeep := cell.Geometry.Area() / float64(rows*cols) * minPlotAreaFraction

	type slot struct {
		r, c int
		geom geo.Polygon
	}
	var survivors []slot
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rect := geo.NewRect(
				minP.X+float64(c)*plotW+gapX/2,
				minP.Y+float64(r)*plotH+gapY/2,
				plotW-gapX,
				plotH-gapY,
			)
			clipped := geo.ClipToRect(cell.Geometry, rect)
			if clipped.IsEmpty() || clipped.Area() < minKeep {
				continue
			}
			survivors = append(survivors, slot{r: r, c: c, geom: clipped})
		}
	}
	if len(survivors) == 0 {
		return nil
	}

	// Reading order: top row first. Row 0 sits at the bottom of the
	// canvas, so sort rows descending, columns ascending.
	sort.SliceStable(survivors, func(a, b int) bool {
		if survivors[a].r != survivors[b].r {
			return survivors[a].r > survivors[b].r
		}
		return survivors[a].c < survivors[b].c
	})

	plots := make([]Plot, len(survivors))
	for i, s := range survivors {
		plots[i] = Plot{
			CellIndex: cell.Index,
			Number:    i + 1,
			Geometry:  s.geom,
		}
	}
	return plots
}
