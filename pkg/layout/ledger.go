package layout

import (
	"fmt"

	"github.com/HasnainAbbasi1/planit/pkg/units"
	"github.com/HasnainAbbasi1/planit/pkg/validation"
)

// LedgerEntry is one category row of the area ledger.
type LedgerEntry struct {
	Category string  `json:"category"`
	Marla    float64 `json:"marla"`
	Percent  float64 `json:"percent"` // of total boundary marla
}

// Ledger reconciles every allocated marla against the boundary's true
// area. The roads figure is the unaccounted remainder, clamped at zero.
type Ledger struct {
	TotalMarla  float64 `json:"total_marla"`
	Residential float64 `json:"residential_marla"`
	Commercial  float64 `json:"commercial_marla"`
	Park        float64 `json:"park_marla"`
	Reserved    float64 `json:"reserved_marla"`
	Amenity     float64 `json:"amenity_marla"`
	Roads       float64 `json:"roads_marla"`

	Entries []LedgerEntry `json:"entries"`

	AmenityCounts map[AmenityCategory]int `json:"amenity_counts"`
	PlotCounts    map[ZoneType]int        `json:"plot_counts"`

	// Compliance deltas in percentage points against the 50/30/20
	// land-use baseline.
	ResidentialDelta float64 `json:"residential_delta"`
	CommercialDelta  float64 `json:"commercial_delta"`
	GreenDelta       float64 `json:"green_delta"`
}

// buildLedger accumulates real-world marla per category and derives the
// roads remainder. Tracked categories overshooting the boundary total is
// a warning (a side effect of geometry insets), never an error.
func (ctx *layoutContext) buildLedger(cells []Cell, plots []Plot, amenities []Amenity, report *validation.Report) Ledger {
	led := Ledger{
		TotalMarla:    ctx.totalMarla,
		AmenityCounts: map[AmenityCategory]int{},
		PlotCounts:    map[ZoneType]int{},
	}

	for _, p := range plots {
		led.PlotCounts[p.Zone]++
		switch p.Zone {
		case ZoneResidential:
			led.Residential += p.AreaMarla
		case ZoneCommercial:
			led.Commercial += p.AreaMarla
		}
	}
	for i := range cells {
		switch {
		case cells[i].Reservation == ReservationRoundabout:
			led.Reserved += ctx.marlaOf(cells[i].Geometry.Area())
		case cells[i].Zone == ZonePark && cells[i].Reservation == ReservationNone:
			led.Park += ctx.marlaOf(cells[i].Geometry.Area())
		}
	}
	for _, a := range amenities {
		led.AmenityCounts[a.Category]++
		led.Amenity += a.AreaMarla
	}

	tracked := led.Residential + led.Commercial + led.Park + led.Reserved + led.Amenity
	led.Roads = led.TotalMarla - tracked
	if led.Roads < 0 {
		report.AddWarning(validation.Result{
			Level: validation.LevelLedger,
			Message: fmt.Sprintf("tracked categories overshoot boundary total by %.2f marla; clamping roads to 0",
				-led.Roads),
		})
		led.Roads = 0
	}

	pct := func(m float64) float64 {
		if led.TotalMarla <= 0 {
			return 0
		}
		return m / led.TotalMarla * 100
	}
	led.Entries = []LedgerEntry{
		{Category: "residential", Marla: led.Residential, Percent: pct(led.Residential)},
		{Category: "commercial", Marla: led.Commercial, Percent: pct(led.Commercial)},
		{Category: "park", Marla: led.Park, Percent: pct(led.Park)},
		{Category: "reserved", Marla: led.Reserved, Percent: pct(led.Reserved)},
		{Category: "amenity", Marla: led.Amenity, Percent: pct(led.Amenity)},
		{Category: "roads", Marla: led.Roads, Percent: pct(led.Roads)},
	}

	led.ResidentialDelta = pct(led.Residential) - units.ResidentialTarget*100
	led.CommercialDelta = pct(led.Commercial) - units.CommercialTarget*100
	led.GreenDelta = pct(led.Park) - units.GreenTarget*100
	return led
}
