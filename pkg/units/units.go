// Package units holds the area units and sizing catalogues shared by the
// layout engine and its reporting surfaces. The marla is the canonical
// accounting unit; every ledger figure is expressed in marla.
package units

// Conversion constants.
const (
	// SquareMetersPerMarla is the canonical marla used by the ledger.
	SquareMetersPerMarla = 25.2929

	// SquareMetersPerAcre is the international acre.
	SquareMetersPerAcre = 4046.8564224

	// MarlaPerAcre follows from the two constants above (~160).
	MarlaPerAcre = SquareMetersPerAcre / SquareMetersPerMarla
)

// MarlaFromSquareMeters converts an area in m² to marla.
func MarlaFromSquareMeters(m2 float64) float64 {
	return m2 / SquareMetersPerMarla
}

// SquareMetersFromMarla converts an area in marla to m².
func SquareMetersFromMarla(marla float64) float64 {
	return marla * SquareMetersPerMarla
}

// AcresFromSquareMeters converts an area in m² to acres.
func AcresFromSquareMeters(m2 float64) float64 {
	return m2 / SquareMetersPerAcre
}

// SquareMetersFromAcres converts an area in acres to m².
func SquareMetersFromAcres(acres float64) float64 {
	return acres * SquareMetersPerAcre
}

// ResidentialCatalogue lists the standard residential plot sizes in marla,
// largest first. The subdivider picks one nominal size per block.
var ResidentialCatalogue = []float64{20, 15, 7, 5}

// CommercialCategory is a named commercial plot class.
type CommercialCategory string

// Commercial plot classes, smallest to largest.
const (
	Shop        CommercialCategory = "shop"
	Store       CommercialCategory = "store"
	Retail      CommercialCategory = "retail"
	Mall        CommercialCategory = "mall"
	Supermarket CommercialCategory = "supermarket"
)

// NominalMarla returns the nominal plot size in marla for a commercial
// category.
func (c CommercialCategory) NominalMarla() float64 {
	switch c {
	case Shop:
		return 2
	case Store:
		return 4
	case Retail:
		return 6
	case Mall:
		return 16
	case Supermarket:
		return 10
	default:
		return 4
	}
}

// CommercialCatalogue returns the commercial categories available for a
// site of the given size. Larger formats only make sense on larger sites.
func CommercialCatalogue(acres float64) []CommercialCategory {
	switch {
	case acres < 10:
		return []CommercialCategory{Shop, Store}
	case acres < 50:
		return []CommercialCategory{Shop, Store, Retail}
	case acres < 120:
		return []CommercialCategory{Shop, Store, Retail, Supermarket}
	default:
		return []CommercialCategory{Shop, Store, Retail, Mall, Supermarket}
	}
}

// Land-use percentage baseline: 50% residential, 30% commercial, 20% green.
const (
	ResidentialTarget = 0.50
	CommercialTarget  = 0.30
	GreenTarget       = 0.20
)
