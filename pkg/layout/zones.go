package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/HasnainAbbasi1/planit/pkg/units"
	"github.com/HasnainAbbasi1/planit/pkg/validation"
)

// allocateZones assigns residential/commercial/park to every unreserved
// cell so the three counts hit the 50/30/20 split exactly by count.
//
// Commercial goes to the highest-ranked cells (corners, then edges) of a
// seeded shuffle. Park assignment runs two passes: the first avoids
// 8-adjacent park neighbors, the second fills any shortfall ignoring
// adjacency so the quota is always met. Everything left is residential.
// This stage never fails.
func (ctx *layoutContext) allocateZones(cells []Cell, report *validation.Report) {
	assignable := make([]int, 0, len(cells))
	for i := range cells {
		if cells[i].Reservation == ReservationNone {
			assignable = append(assignable, i)
		}
	}
	n := len(assignable)
	if n == 0 {
		return
	}

	residentialN := int(math.Floor(units.ResidentialTarget * float64(n)))
	commercialN := int(math.Floor(units.CommercialTarget * float64(n)))
	parkN := n - residentialN - commercialN

	ctx.rng.Shuffle(n, func(i, j int) {
		assignable[i], assignable[j] = assignable[j], assignable[i]
	})

	// Rank by position suitability, keeping the shuffled order within
	// equal scores so the seed decides ties.
	sort.SliceStable(assignable, func(a, b int) bool {
		return ctx.suitability(cells[assignable[a]]) > ctx.suitability(cells[assignable[b]])
	})

	for _, idx := range assignable[:commercialN] {
		cells[idx].Zone = ZoneCommercial
	}
	remaining := assignable[commercialN:]

	byPos := positionIndex(cells)

	// Pass 1: parks with no 8-adjacent park.
	placed := 0
	for _, idx := range remaining {
		if placed >= parkN {
			break
		}
		if cells[idx].Zone != "" {
			continue
		}
		if hasAdjacentZone(cells, byPos, cells[idx], ZonePark) {
			continue
		}
		cells[idx].Zone = ZonePark
		placed++
	}
	// Pass 2: fill the remaining quota ignoring adjacency.
	for _, idx := range remaining {
		if placed >= parkN {
			break
		}
		if cells[idx].Zone != "" {
			continue
		}
		cells[idx].Zone = ZonePark
		placed++
	}

	for _, idx := range remaining {
		if cells[idx].Zone == "" {
			cells[idx].Zone = ZoneResidential
		}
	}

	checkZoneDeviation(n, residentialN, commercialN, parkN, report)
}

// suitability scores a cell's position: corners are the most commercial-
// worthy, then edges, then the interior.
func (ctx *layoutContext) suitability(c Cell) int {
	onRowEdge := c.Row == 0 || c.Row == ctx.rows-1
	onColEdge := c.Col == 0 || c.Col == ctx.cols-1
	switch {
	case onRowEdge && onColEdge:
		return 3
	case onRowEdge || onColEdge:
		return 2
	default:
		return 1
	}
}

// positionIndex maps (row, col) to the cell's slice position.
func positionIndex(cells []Cell) map[[2]int]int {
	byPos := make(map[[2]int]int, len(cells))
	for i, c := range cells {
		byPos[[2]int{c.Row, c.Col}] = i
	}
	return byPos
}

// hasAdjacentZone reports whether any of the 8 neighbors of c carries the
// given zone.
func hasAdjacentZone(cells []Cell, byPos map[[2]int]int, c Cell, zone ZoneType) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if i, ok := byPos[[2]int{c.Row + dr, c.Col + dc}]; ok && cells[i].Zone == zone {
				return true
			}
		}
	}
	return false
}

// checkZoneDeviation warns when the realized split drifts more than five
// percentage points from the targets. Small grids can't land closer.
func checkZoneDeviation(n, residentialN, commercialN, parkN int, report *validation.Report) {
	fn := float64(n)
	checks := []struct {
		name     string
		realized float64
		target   float64
	}{
		{"residential", float64(residentialN) / fn, units.ResidentialTarget},
		{"commercial", float64(commercialN) / fn, units.CommercialTarget},
		{"park", float64(parkN) / fn, units.GreenTarget},
	}
	for _, c := range checks {
		delta := math.Abs(c.realized-c.target) * 100
		if delta > 5 {
			report.AddWarning(validation.Result{
				Level:   validation.LevelZoning,
				Subject: c.name,
				Message: fmt.Sprintf("%s share %.1f%% deviates %.1f points from %.0f%% target",
					c.name, c.realized*100, delta, c.target*100),
			})
		}
	}
}
