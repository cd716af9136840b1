package plan

import (
	"errors"

	"github.com/HasnainAbbasi1/planit/pkg/units"
)

// ErrInvalidGeometry is returned when the boundary is malformed: fewer
// than three distinct points, or a zero-extent bounding box. It is the
// only hard failure the engine raises.
var ErrInvalidGeometry = errors.New("invalid boundary geometry")

// Request is the input document for one layout run. The boundary is an
// ordered ring of (x, y) pairs in a single consistent coordinate system;
// an open ring is closed by the engine.
type Request struct {
	Name     string          `yaml:"name" json:"name"`
	Boundary [][2]float64    `yaml:"boundary" json:"boundary"`
	Area     AreaSummary     `yaml:"area" json:"area"`
	Terrain  *TerrainSummary `yaml:"terrain,omitempty" json:"terrain,omitempty"`
	Seed     int64           `yaml:"seed" json:"seed"`
}

// AreaSummary carries the real-world area of the boundary, computed by an
// external geodesic or planar calculator. Either field may be zero; the
// missing one is derived from the other.
type AreaSummary struct {
	Acres        float64 `yaml:"acres" json:"acres"`
	SquareMeters float64 `yaml:"square_meters" json:"square_meters"`
}

// Resolve fills whichever of the two fields is missing. Returns the
// summary unchanged when both are present or both absent.
func (a AreaSummary) Resolve() AreaSummary {
	if a.SquareMeters == 0 && a.Acres > 0 {
		a.SquareMeters = units.SquareMetersFromAcres(a.Acres)
	}
	if a.Acres == 0 && a.SquareMeters > 0 {
		a.Acres = units.AcresFromSquareMeters(a.SquareMeters)
	}
	return a
}

// TerrainSummary is the optional terrain context for a site. Absent
// terrain is treated as flat, low-risk ground.
type TerrainSummary struct {
	MeanSlopeDeg  float64 `yaml:"mean_slope_deg" json:"mean_slope_deg"`
	MaxSlopeDeg   float64 `yaml:"max_slope_deg" json:"max_slope_deg"`
	FloodRisk     float64 `yaml:"flood_risk" json:"flood_risk"` // fraction in [0,1]
	MeanElevation float64 `yaml:"mean_elevation_m" json:"mean_elevation_m"`
	ErosionIndex  float64 `yaml:"erosion_index" json:"erosion_index"`
}

// FlatTerrain is the default used when no terrain summary is supplied.
var FlatTerrain = TerrainSummary{MeanSlopeDeg: 0, MaxSlopeDeg: 0, FloodRisk: 0}

// Validate performs the fail-fast geometry checks: at least three distinct
// boundary points and a non-degenerate bounding box. A positive area
// summary is also required since the scale factor derives from it.
func (r Request) Validate() error {
	distinct := distinctPoints(r.Boundary)
	if distinct < 3 {
		return ErrInvalidGeometry
	}
	minX, minY := r.Boundary[0][0], r.Boundary[0][1]
	maxX, maxY := minX, minY
	for _, p := range r.Boundary {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	if maxX-minX <= 0 || maxY-minY <= 0 {
		return ErrInvalidGeometry
	}
	area := r.Area.Resolve()
	if area.SquareMeters <= 0 {
		return ErrInvalidGeometry
	}
	return nil
}

// distinctPoints counts boundary points, treating an explicit closing
// point equal to the first as a duplicate.
func distinctPoints(ring [][2]float64) int {
	seen := make(map[[2]float64]struct{}, len(ring))
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen)
}
