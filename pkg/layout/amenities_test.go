package layout

import (
	"testing"

	"github.com/HasnainAbbasi1/planit/pkg/validation"
)

func TestAmenityScheduleMonotone(t *testing.T) {
	areas := []float64{5, 15, 30, 60, 120, 250, 600}
	prev := map[AmenityCategory]int{}
	for _, a := range areas {
		s := amenitySchedule(a)
		for _, cat := range []AmenityCategory{Mosque, Hospital, School} {
			if s[cat] < prev[cat] {
				t.Errorf("%s count decreased at %v acres: %d < %d", cat, a, s[cat], prev[cat])
			}
			prev[cat] = s[cat]
		}
	}
}

func TestAmenityScheduleFortyAcres(t *testing.T) {
	s := amenitySchedule(40)
	if s[Mosque] < 4 || s[Hospital] < 2 || s[School] < 3 {
		t.Errorf("40-acre schedule too thin: %+v", s)
	}
	if s[GridStation] != 0 {
		t.Error("grid station should not appear below 120 acres")
	}
	if amenitySchedule(150)[GridStation] != 1 {
		t.Error("150-acre site should schedule one grid station")
	}
}

// amenityFixture runs the pipeline through amenity placement.
func amenityFixture(t *testing.T, acres float64, seed int64) ([]Cell, []Amenity, *validation.Report) {
	t.Helper()
	ctx, cells := zonedFixture(t, acres, seed)
	report := validation.NewReport()
	amenities := ctx.placeAmenities(cells, report)
	return cells, amenities, report
}

func TestAmenityAdjacencyConstraints(t *testing.T) {
	for _, seed := range []int64{1, 42, 777} {
		cells, amenities, _ := amenityFixture(t, 80, seed)

		byIndex := map[int]AmenityCategory{}
		pos := map[int][2]int{}
		for _, c := range cells {
			pos[c.Index] = [2]int{c.Row, c.Col}
		}
		for _, a := range amenities {
			byIndex[a.CellIndex] = a.Category
		}

		for _, a := range amenities {
			p := pos[a.CellIndex]
			for idx, cat := range byIndex {
				if idx == a.CellIndex {
					continue
				}
				q := pos[idx]
				dr, dc := p[0]-q[0], p[1]-q[1]
				if dr < -1 || dr > 1 || dc < -1 || dc > 1 {
					continue
				}
				if cat == a.Category {
					t.Errorf("seed %d: %s at %v adjacent to same category at %v", seed, a.Category, p, q)
				}
				if isCarePair(cat, a.Category) {
					t.Errorf("seed %d: hospital/school pair adjacent at %v and %v", seed, p, q)
				}
			}
		}
	}
}

func TestAmenityHostCellsMarked(t *testing.T) {
	cells, amenities, _ := amenityFixture(t, 40, 42)
	hosts := map[int]bool{}
	for _, c := range cells {
		if c.Reservation == ReservationAmenity {
			hosts[c.Index] = true
		}
	}
	if len(hosts) != len(amenities) {
		t.Errorf("%d host cells but %d amenities", len(hosts), len(amenities))
	}
	for _, a := range amenities {
		if !hosts[a.CellIndex] {
			t.Errorf("amenity cell %d not marked as host", a.CellIndex)
		}
		if a.Geometry.IsEmpty() {
			t.Errorf("amenity in cell %d has empty footprint", a.CellIndex)
		}
		if a.AreaMarla <= 0 {
			t.Errorf("amenity in cell %d has non-positive area", a.CellIndex)
		}
	}
}

func TestAmenityFootprintInsideCell(t *testing.T) {
	cells, amenities, _ := amenityFixture(t, 40, 42)
	byIndex := map[int]Cell{}
	for _, c := range cells {
		byIndex[c.Index] = c
	}
	for _, a := range amenities {
		host := byIndex[a.CellIndex]
		if a.Geometry.Area() >= host.Geometry.Area() {
			t.Errorf("footprint in cell %d not inset: %f >= %f",
				a.CellIndex, a.Geometry.Area(), host.Geometry.Area())
		}
	}
}

func TestAmenityParkShareCap(t *testing.T) {
	cells, amenities, _ := amenityFixture(t, 300, 9)
	parkTotal := 0
	for _, c := range cells {
		if c.Zone == ZonePark && c.Reservation != ReservationRoundabout {
			parkTotal++
		}
	}
	// At most half the park supply may host amenities.
	if len(amenities) > parkTotal/2+1 {
		t.Errorf("%d amenities exceed half of %d park cells", len(amenities), parkTotal)
	}
	if len(amenities) > amenitySlotCap {
		t.Errorf("%d amenities exceed the global cap", len(amenities))
	}
}
