// Package report renders a layout run as a printable PDF: site summary,
// the area ledger with compliance deltas, and the amenity roster.
package report

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/HasnainAbbasi1/planit/pkg/layout"
	"github.com/HasnainAbbasi1/planit/pkg/units"
)

// WritePDF renders the result to an A4 PDF at path.
func WritePDF(result *layout.LayoutResult, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Land Subdivision Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	title := result.Name
	if title == "" {
		title = "Unnamed Site"
	}
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	acres := units.AcresFromSquareMeters(result.Ledger.TotalMarla * units.SquareMetersPerMarla)
	pdf.CellFormat(0, 6, fmt.Sprintf("Site area: %.2f acres (%.0f marla)", acres, result.Ledger.TotalMarla), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Grid: %d x %d blocks, %d kept after boundary clipping", result.Rows, result.Cols, len(result.Cells)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Seed: %d", result.Seed), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeLedgerTable(pdf, result.Ledger)
	pdf.Ln(4)
	writeComplianceLines(pdf, result.Ledger)
	pdf.Ln(4)
	writeAmenityRoster(pdf, result)

	return pdf.OutputFileAndClose(path)
}

func writeLedgerTable(pdf *fpdf.Fpdf, led layout.Ledger) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Area Ledger", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(60, 7, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Marla", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Share", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range led.Entries {
		pdf.CellFormat(60, 6, e.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", e.Marla), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.1f%%", e.Percent), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(60, 6, "total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", led.TotalMarla), "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, "100.0%", "1", 1, "R", false, 0, "")
}

func writeComplianceLines(pdf *fpdf.Fpdf, led layout.Ledger) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Land-Use Compliance (50/30/20 baseline)", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	rows := []struct {
		label string
		delta float64
	}{
		{"Residential vs 50%", led.ResidentialDelta},
		{"Commercial vs 30%", led.CommercialDelta},
		{"Green space vs 20%", led.GreenDelta},
	}
	for _, row := range rows {
		pdf.CellFormat(0, 5, fmt.Sprintf("%s: %+.1f points", row.label, row.delta), "", 1, "L", false, 0, "")
	}
}

func writeAmenityRoster(pdf *fpdf.Fpdf, result *layout.LayoutResult) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Amenities", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, cat := range []layout.AmenityCategory{layout.Mosque, layout.Hospital, layout.School, layout.GridStation} {
		n := result.Ledger.AmenityCounts[cat]
		if n == 0 {
			continue
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("%s: %d", cat, n), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5, fmt.Sprintf("roundabouts: %d", len(result.Roundabouts)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("plots: %d residential, %d commercial",
		result.Ledger.PlotCounts[layout.ZoneResidential],
		result.Ledger.PlotCounts[layout.ZoneCommercial]), "", 1, "L", false, 0, "")
}
