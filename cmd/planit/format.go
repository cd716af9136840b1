package main

import (
	"fmt"

	"github.com/HasnainAbbasi1/planit/pkg/layout"
	"github.com/HasnainAbbasi1/planit/pkg/validation"
)

func printFindings(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Subject != "" {
				fmt.Printf("    -> %s\n", e.Subject)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Subject != "" {
				fmt.Printf("    -> %s\n", w.Subject)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printLedger(result *layout.LayoutResult) {
	led := result.Ledger

	fmt.Println("Area Ledger")
	fmt.Println("===========")
	fmt.Println()
	fmt.Printf("%-14s %14s %8s\n", "Category", "Marla", "Share")
	fmt.Printf("%-14s %14s %8s\n", "--------------", "--------------", "--------")
	for _, e := range led.Entries {
		fmt.Printf("%-14s %14.2f %7.1f%%\n", e.Category, e.Marla, e.Percent)
	}
	fmt.Printf("%-14s %14.2f %7.1f%%\n", "total", led.TotalMarla, 100.0)

	fmt.Println()
	fmt.Println("Compliance (50/30/20 baseline)")
	fmt.Println("------------------------------")
	fmt.Printf("  Residential: %+.1f points\n", led.ResidentialDelta)
	fmt.Printf("  Commercial:  %+.1f points\n", led.CommercialDelta)
	fmt.Printf("  Green space: %+.1f points\n", led.GreenDelta)

	fmt.Println()
	fmt.Printf("Grid %dx%d, %d cells, %d plots, %d amenities, %d roundabouts\n",
		result.Rows, result.Cols, len(result.Cells),
		len(result.Plots), countAmenities(led), len(result.Roundabouts))
}

func countAmenities(led layout.Ledger) int {
	n := 0
	for _, c := range led.AmenityCounts {
		n += c
	}
	return n
}
