package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/HasnainAbbasi1/planit/pkg/geo"
	"github.com/HasnainAbbasi1/planit/pkg/validation"
)

const (
	// amenitySlotCap is the global ceiling on placed amenities.
	amenitySlotCap = 50

	// parkShareCap keeps at least half the park cells as pure parks.
	parkShareCap = 0.5

	// footprintInset shrinks an amenity footprint from its host cell.
	footprintInset = 0.18

	// poolStretch widens the candidate pool: when the park pool is
	// thinner than poolStretch× the schedule, fallback zones join it.
	poolStretch = 3
)

// amenitySchedule returns the bracketed facility counts for a site.
// Counts are monotonically non-decreasing with area, with fixed floors on
// small sites and per-acre ratios above 100 acres.
func amenitySchedule(acres float64) map[AmenityCategory]int {
	s := map[AmenityCategory]int{}
	switch {
	case acres < 10:
		s[Mosque] = 1
	case acres < 25:
		s[Mosque] = 2
	case acres < 50:
		s[Mosque] = 4
	case acres < 100:
		s[Mosque] = 6
	default:
		s[Mosque] = int(math.Round(acres / 16))
	}
	switch {
	case acres < 25:
		s[Hospital] = 1
	case acres < 50:
		s[Hospital] = 2
	case acres < 100:
		s[Hospital] = 3
	default:
		s[Hospital] = int(math.Round(acres / 40))
	}
	switch {
	case acres < 10:
		s[School] = 1
	case acres < 25:
		s[School] = 2
	case acres < 50:
		s[School] = 3
	case acres < 100:
		s[School] = 5
	default:
		s[School] = int(math.Round(acres / 18))
	}
	if acres >= 120 {
		s[GridStation] = 1
	}
	return s
}

// placeAmenities selects and places civic facilities into green cells
// (falling back to commercial, then residential) under two hard
// constraints: no same-category 8-adjacency, and no hospital/school
// 8-adjacency. An instance with no acceptable candidate is skipped with a
// warning; under-placement is a terminal outcome, never an error.
func (ctx *layoutContext) placeAmenities(cells []Cell, report *validation.Report) []Amenity {
	instances := ctx.amenityInstances(cells)
	if len(instances) == 0 {
		return nil
	}

	pool := ctx.candidatePool(cells, len(instances))
	if len(pool) == 0 {
		report.AddWarning(validation.Result{
			Level:   validation.LevelPlacement,
			Message: "no candidate cells for amenities; all instances skipped",
		})
		return nil
	}
	order := spreadOrder(cells, pool, len(instances))

	byPos := positionIndex(cells)
	hosted := make(map[int]AmenityCategory) // cell slice index → category

	var placed []Amenity
	for _, cat := range instances {
		slot := -1
		for _, ci := range order {
			if _, used := hosted[ci]; used {
				continue
			}
			if conflicts(cells, byPos, hosted, cells[ci], cat) {
				continue
			}
			slot = ci
			break
		}
		if slot < 0 {
			report.AddWarning(validation.Result{
				Level:   validation.LevelPlacement,
				Subject: string(cat),
				Message: fmt.Sprintf("no admissible cell for %s; instance skipped", cat),
			})
			continue
		}

		hosted[slot] = cat
		cells[slot].Reservation = ReservationAmenity

		footprint := geo.InsetTowardCentroid(cells[slot].Geometry, footprintInset)
		if footprint.IsEmpty() {
			footprint = cells[slot].Geometry
		}
		placed = append(placed, Amenity{
			CellIndex: cells[slot].Index,
			Category:  cat,
			Geometry:  footprint,
			AreaMarla: ctx.marlaOf(footprint.Area()),
		})
	}
	return placed
}

// amenityInstances expands the schedule into a round-robin interleaved
// list (mosque, hospital, school, ...), caps it against the park supply
// and the global slot cap, and shuffles it with the run seed.
func (ctx *layoutContext) amenityInstances(cells []Cell) []AmenityCategory {
	schedule := amenitySchedule(ctx.acres)

	parkAvail := 0
	for i := range cells {
		if cells[i].Zone == ZonePark && cells[i].Reservation == ReservationNone {
			parkAvail++
		}
	}

	counts := map[AmenityCategory]int{}
	for k, v := range schedule {
		counts[k] = v
	}
	orderOfTypes := []AmenityCategory{Mosque, Hospital, School, GridStation}

	var interleaved []AmenityCategory
	for {
		added := false
		for _, cat := range orderOfTypes {
			if counts[cat] > 0 {
				interleaved = append(interleaved, cat)
				counts[cat]--
				added = true
			}
		}
		if !added {
			break
		}
	}

	limit := int(float64(parkAvail) * parkShareCap)
	if limit > amenitySlotCap {
		limit = amenitySlotCap
	}
	if len(interleaved) > limit {
		interleaved = interleaved[:limit]
	}

	ctx.rng.Shuffle(len(interleaved), func(i, j int) {
		interleaved[i], interleaved[j] = interleaved[j], interleaved[i]
	})
	return interleaved
}

// candidatePool gathers host candidates: park cells first, extended with
// commercial and then residential cells when the park pool is thin.
func (ctx *layoutContext) candidatePool(cells []Cell, need int) []int {
	collect := func(zone ZoneType) []int {
		var out []int
		for i := range cells {
			if cells[i].Zone == zone && cells[i].Reservation == ReservationNone {
				out = append(out, i)
			}
		}
		return out
	}

	pool := collect(ZonePark)
	if len(pool) < need*poolStretch {
		pool = append(pool, collect(ZoneCommercial)...)
	}
	if len(pool) < need*poolStretch {
		pool = append(pool, collect(ZoneResidential)...)
	}
	return pool
}

// spreadOrder orders candidates by angular position around the pool
// centroid, grouped into coarse distance bands, then stride-samples the
// ordering so consecutive placements land far apart.
func spreadOrder(cells []Cell, pool []int, need int) []int {
	var cx, cy float64
	for _, ci := range pool {
		c := cells[ci].Rect.Center()
		cx += c.X
		cy += c.Y
	}
	centroid := geo.Pt(cx/float64(len(pool)), cy/float64(len(pool)))

	maxDist := 0.0
	for _, ci := range pool {
		if d := cells[ci].Rect.Center().Distance(centroid); d > maxDist {
			maxDist = d
		}
	}
	bandWidth := maxDist/3 + 1e-9

	type ranked struct {
		idx   int
		band  int
		angle float64
	}
	rankedPool := make([]ranked, len(pool))
	for i, ci := range pool {
		rel := cells[ci].Rect.Center().Sub(centroid)
		rankedPool[i] = ranked{
			idx:   ci,
			band:  int(rel.Length() / bandWidth),
			angle: rel.Angle(),
		}
	}
	sort.SliceStable(rankedPool, func(a, b int) bool {
		if rankedPool[a].band != rankedPool[b].band {
			return rankedPool[a].band < rankedPool[b].band
		}
		return rankedPool[a].angle < rankedPool[b].angle
	})

	stride := len(rankedPool) / need
	if stride < 1 {
		stride = 1
	}
	order := make([]int, 0, len(rankedPool))
	for offset := 0; offset < stride; offset++ {
		for i := offset; i < len(rankedPool); i += stride {
			order = append(order, rankedPool[i].idx)
		}
	}
	return order
}

// conflicts applies the two hard adjacency constraints for a candidate:
// same category next door, or the hospital/school pairing next door.
func conflicts(cells []Cell, byPos map[[2]int]int, hosted map[int]AmenityCategory, c Cell, cat AmenityCategory) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			ni, ok := byPos[[2]int{c.Row + dr, c.Col + dc}]
			if !ok {
				continue
			}
			neighborCat, used := hosted[ni]
			if !used {
				continue
			}
			if neighborCat == cat {
				return true
			}
			if isCarePair(neighborCat, cat) {
				return true
			}
		}
	}
	return false
}

// isCarePair reports the hospital/school exclusion: sirens and school
// traffic don't mix.
func isCarePair(a, b AmenityCategory) bool {
	return (a == Hospital && b == School) || (a == School && b == Hospital)
}
