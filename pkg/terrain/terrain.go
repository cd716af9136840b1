// Package terrain condenses raw elevation/slope samples into the summary
// the layout engine consumes. The engine itself never sees raw samples;
// it only reacts to the aggregate slope and flood-risk figures.
package terrain

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/HasnainAbbasi1/planit/pkg/plan"
)

// Sample is one terrain measurement inside the boundary, typically read
// off a DEM raster by the download/cache layer.
type Sample struct {
	ElevationM float64 `yaml:"elevation_m" json:"elevation_m"`
	SlopeDeg   float64 `yaml:"slope_deg" json:"slope_deg"`
}

// floodQuantile marks the low-elevation band considered flood-prone: any
// sample within floodMargin meters of the 5th-percentile elevation.
const (
	floodQuantile = 0.05
	floodMargin   = 1.5
)

// ErrNoSamples is returned when there is nothing to summarize.
var ErrNoSamples = errors.New("terrain: no samples")

// Summarize reduces a set of samples to the engine-facing summary:
// mean/max slope, flood-risk fraction, mean elevation, and an erosion
// index from slope dispersion.
func Summarize(samples []Sample) (plan.TerrainSummary, error) {
	if len(samples) == 0 {
		return plan.TerrainSummary{}, ErrNoSamples
	}

	elev := make([]float64, len(samples))
	slope := make([]float64, len(samples))
	for i, s := range samples {
		elev[i] = s.ElevationM
		slope[i] = s.SlopeDeg
	}

	sortedElev := make([]float64, len(elev))
	copy(sortedElev, elev)
	sort.Float64s(sortedElev)

	floodLine := stat.Quantile(floodQuantile, stat.Empirical, sortedElev, nil) + floodMargin
	flooded := 0
	for _, e := range elev {
		if e <= floodLine {
			flooded++
		}
	}

	meanSlope := stat.Mean(slope, nil)
	return plan.TerrainSummary{
		MeanSlopeDeg:  meanSlope,
		MaxSlopeDeg:   floats.Max(slope),
		FloodRisk:     float64(flooded) / float64(len(samples)),
		MeanElevation: stat.Mean(elev, nil),
		ErosionIndex:  erosionIndex(meanSlope, stat.StdDev(slope, nil)),
	}, nil
}

// erosionIndex folds slope magnitude and dispersion into a 0-1 score.
// Steep, uneven ground erodes; flat, uniform ground does not.
func erosionIndex(meanSlope, slopeStdDev float64) float64 {
	idx := meanSlope/45 + slopeStdDev/30
	if idx > 1 {
		idx = 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
