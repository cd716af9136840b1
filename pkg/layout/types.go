package layout

import "github.com/HasnainAbbasi1/planit/pkg/geo"

// ZoneType identifies the land use assigned to a grid cell.
type ZoneType string

const (
	ZoneResidential ZoneType = "residential"
	ZoneCommercial  ZoneType = "commercial"
	ZonePark        ZoneType = "park"
)

// Reservation marks a cell claimed by something other than plots.
type Reservation string

const (
	ReservationNone       Reservation = ""
	ReservationRoundabout Reservation = "roundabout"
	ReservationAmenity    Reservation = "amenity_host"
)

// Cell is one boundary-clipped unit of the partition grid: the atomic
// unit of zone assignment. A cell either hosts one amenity or is
// subdivided into plots, never both.
type Cell struct {
	Index       int         `json:"index"` // row*cols + col
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Rect        geo.Rect    `json:"rect"`
	Geometry    geo.Polygon `json:"geometry"` // rect ∩ boundary, non-empty
	Zone        ZoneType    `json:"zone,omitempty"`
	Reservation Reservation `json:"reservation,omitempty"`
}

// AmenityCategory is a civic facility class.
type AmenityCategory string

const (
	Mosque      AmenityCategory = "mosque"
	Hospital    AmenityCategory = "hospital"
	School      AmenityCategory = "school"
	GridStation AmenityCategory = "grid_station"
)

// Amenity is a placed civic facility occupying exactly one cell.
type Amenity struct {
	CellIndex int             `json:"cell_index"`
	Category  AmenityCategory `json:"category"`
	Geometry  geo.Polygon     `json:"geometry"` // cell inset ~18% per side
	AreaMarla float64         `json:"area_marla"`
}

// Plot is the smallest land unit within a zoned cell, numbered in reading
// order (left to right, top to bottom) within its cell.
type Plot struct {
	CellIndex int         `json:"cell_index"`
	Number    int         `json:"number"`
	Zone      ZoneType    `json:"zone"`
	Label     string      `json:"label"` // nominal catalogue size
	Geometry  geo.Polygon `json:"geometry"`
	AreaMarla float64     `json:"area_marla"` // actual clipped area
}

// Roundabout is a traffic circle reserving the cells under its influence
// buffer (radius × 1.35).
type Roundabout struct {
	Center geo.Point `json:"center"`
	Radius float64   `json:"radius"`
}

// RoadTier is the width class of a road band.
type RoadTier string

const (
	TierArterial  RoadTier = "arterial"
	TierCollector RoadTier = "collector"
	TierLocal     RoadTier = "local"
	TierBoulevard RoadTier = "boulevard"
)

// RoadBand is one structural road band along a grid line, plus the
// perimeter boulevard. Purely decorative geometry; no routing.
type RoadBand struct {
	Orientation string      `json:"orientation"` // "row", "col", "boulevard"
	Index       int         `json:"index"`
	Tier        RoadTier    `json:"tier"`
	Width       float64     `json:"width"`
	Start       geo.Point   `json:"start"` // centerline
	End         geo.Point   `json:"end"`
	Labels      []geo.Point `json:"labels,omitempty"`
}

// LayoutResult is the complete serializable output of one engine run:
// cells, amenities, plots, roundabouts, road bands, and the area ledger.
// It holds no rendering primitives and no references back into the engine.
type LayoutResult struct {
	Name        string       `json:"name,omitempty"`
	Seed        int64        `json:"seed"`
	Boundary    geo.Polygon  `json:"boundary"` // normalized to the canvas
	CanvasW     float64      `json:"canvas_w"`
	CanvasH     float64      `json:"canvas_h"`
	ScaleFactor float64      `json:"scale_factor"` // m² per canvas unit²
	Rows        int          `json:"rows"`
	Cols        int          `json:"cols"`
	BlockW      float64      `json:"block_w"`
	BlockH      float64      `json:"block_h"`
	Cells       []Cell       `json:"cells"`
	Amenities   []Amenity    `json:"amenities"`
	Plots       []Plot       `json:"plots"`
	Roundabouts []Roundabout `json:"roundabouts"`
	Roads       []RoadBand   `json:"roads"`
	Ledger      Ledger       `json:"ledger"`
}
