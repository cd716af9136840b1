package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/HasnainAbbasi1/planit/pkg/plan"
	"github.com/HasnainAbbasi1/planit/pkg/units"
)

func squareRequest(acres float64, seed int64) plan.Request {
	side := math.Sqrt(units.SquareMetersFromAcres(acres))
	return plan.Request{
		Name:     "test-site",
		Boundary: [][2]float64{{0, 0}, {side, 0}, {side, side}, {0, side}},
		Area:     plan.AreaSummary{Acres: acres},
		Seed:     seed,
	}
}

func TestGenerateFortyAcreSquare(t *testing.T) {
	result, report, err := Generate(squareRequest(40, 42))
	if err != nil {
		t.Fatal(err)
	}
	if report == nil {
		t.Fatal("nil report")
	}

	if n := len(result.Cells); n < 100 || n > 160 {
		t.Errorf("40-acre grid has %d cells, want 100..160", n)
	}

	counts := zoneCounts(result.Cells)
	unreserved := counts[ZoneResidential] + counts[ZoneCommercial] + counts[ZonePark]
	if d := math.Abs(float64(counts[ZoneResidential])/float64(unreserved) - 0.5); d > 0.05 {
		t.Errorf("residential share off 50%% by %.1f points", d*100)
	}
	if d := math.Abs(float64(counts[ZoneCommercial])/float64(unreserved) - 0.3); d > 0.05 {
		t.Errorf("commercial share off 30%% by %.1f points", d*100)
	}

	if len(result.Roundabouts) != 1 {
		t.Errorf("expected 1 roundabout below 45 acres, got %d", len(result.Roundabouts))
	}

	ac := result.Ledger.AmenityCounts
	if ac[Mosque] < 4 || ac[Hospital] < 2 || ac[School] < 3 {
		t.Errorf("amenity counts too thin for 40 acres: %+v", ac)
	}
	if ac[GridStation] != 0 {
		t.Error("grid station placed below 120 acres")
	}

	// Every unreserved residential/commercial cell carries plots.
	plotted := map[int]bool{}
	for _, p := range result.Plots {
		plotted[p.CellIndex] = true
	}
	for _, c := range result.Cells {
		buildable := c.Reservation == ReservationNone &&
			(c.Zone == ZoneResidential || c.Zone == ZoneCommercial)
		if buildable && !plotted[c.Index] {
			t.Errorf("buildable cell (%d,%d) has no plots", c.Row, c.Col)
		}
	}

	led := result.Ledger
	usable := (led.Residential + led.Commercial + led.Park) / led.TotalMarla * 100
	if usable < 88 || usable > 100 {
		t.Errorf("residential+commercial+park = %.2f%% of total, want 88..100", usable)
	}
}

func TestGenerateLedgerConservation(t *testing.T) {
	for _, acres := range []float64{5, 40, 150} {
		result, _, err := Generate(squareRequest(acres, 7))
		if err != nil {
			t.Fatal(err)
		}
		led := result.Ledger
		tracked := led.Residential + led.Commercial + led.Park +
			led.Reserved + led.Amenity + led.Roads
		if math.Abs(tracked-led.TotalMarla) > 1e-6 {
			t.Errorf("%v acres: ledger sums to %f marla, boundary holds %f",
				acres, tracked, led.TotalMarla)
		}
		if led.Roads < 0 {
			t.Errorf("%v acres: negative roads remainder %f", acres, led.Roads)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	req := squareRequest(40, 42)
	a, _, err := Generate(req)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Generate(req)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("identical requests diverged (-first +second):\n%s", diff)
	}
}

func TestGenerateSeedChangesLayout(t *testing.T) {
	a, _, err := Generate(squareRequest(40, 1))
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Generate(squareRequest(40, 2))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Cells, b.Cells); diff == "" {
		t.Error("different seeds produced identical cell assignments")
	}
}

func TestGenerateInvalidGeometry(t *testing.T) {
	cases := []plan.Request{
		{Boundary: [][2]float64{{0, 0}, {1, 1}}, Area: plan.AreaSummary{Acres: 10}},
		{Boundary: [][2]float64{{0, 0}, {5, 0}, {10, 0}}, Area: plan.AreaSummary{Acres: 10}},
		{Boundary: [][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}}},
	}
	for i, req := range cases {
		result, report, err := Generate(req)
		if !errors.Is(err, plan.ErrInvalidGeometry) {
			t.Errorf("case %d: expected ErrInvalidGeometry, got %v", i, err)
		}
		if result != nil || report != nil {
			t.Errorf("case %d: partial output alongside a hard failure", i)
		}
	}
}

func TestGenerateHazardousTerrainCoarsens(t *testing.T) {
	flat, _, err := Generate(squareRequest(60, 3))
	if err != nil {
		t.Fatal(err)
	}
	req := squareRequest(60, 3)
	req.Terrain = &plan.TerrainSummary{MaxSlopeDeg: 60, FloodRisk: 0.7}
	steep, _, err := Generate(req)
	if err != nil {
		t.Fatal(err)
	}
	if steep.Rows*steep.Cols >= flat.Rows*flat.Cols {
		t.Errorf("hazardous terrain should coarsen the grid: %d vs %d cells",
			steep.Rows*steep.Cols, flat.Rows*flat.Cols)
	}
}

func TestGenerateTriangleSite(t *testing.T) {
	side := math.Sqrt(units.SquareMetersFromAcres(30)) * 2
	req := plan.Request{
		Boundary: [][2]float64{{0, 0}, {side, 0}, {0, side}},
		Area:     plan.AreaSummary{Acres: 30},
		Seed:     13,
	}
	result, _, err := Generate(req)
	if err != nil {
		t.Fatal(err)
	}
	// Roughly half the grid rectangles fall outside a right triangle.
	if len(result.Cells) >= result.Rows*result.Cols {
		t.Errorf("triangle should drop exterior cells: kept %d of %d",
			len(result.Cells), result.Rows*result.Cols)
	}
	for _, c := range result.Cells {
		if c.Geometry.Area() <= 0 {
			t.Errorf("cell (%d,%d) kept with empty geometry", c.Row, c.Col)
		}
	}
	led := result.Ledger
	tracked := led.Residential + led.Commercial + led.Park +
		led.Reserved + led.Amenity + led.Roads
	if math.Abs(tracked-led.TotalMarla) > 1e-6 {
		t.Errorf("triangle ledger sums to %f, want %f", tracked, led.TotalMarla)
	}
}
