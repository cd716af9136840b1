package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/HasnainAbbasi1/planit/internal/report"
	"github.com/HasnainAbbasi1/planit/pkg/layout"
	"github.com/HasnainAbbasi1/planit/pkg/plan"
	"github.com/HasnainAbbasi1/planit/pkg/terrain"
	"github.com/HasnainAbbasi1/planit/pkg/validation"
)

// loadAndGenerate loads the request file, optionally summarizing raw
// terrain samples into it, and runs the engine.
func loadAndGenerate(path, terrainPath string) (*layout.LayoutResult, *validation.Report, error) {
	req, err := plan.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if terrainPath != "" {
		summary, err := loadTerrain(terrainPath)
		if err != nil {
			return nil, nil, err
		}
		req.Terrain = summary
	}
	result, findings, err := layout.Generate(*req)
	if err != nil {
		return nil, nil, fmt.Errorf("generating layout: %w", err)
	}
	return result, findings, nil
}

// loadTerrain reads a YAML list of elevation/slope samples and condenses
// it into the summary the engine consumes.
func loadTerrain(path string) (*plan.TerrainSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading terrain samples: %w", err)
	}
	var samples []terrain.Sample
	if err := yaml.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parsing terrain samples %s: %w", path, err)
	}
	summary, err := terrain.Summarize(samples)
	if err != nil {
		return nil, fmt.Errorf("summarizing terrain: %w", err)
	}
	return &summary, nil
}

func runPlan(path, terrainPath string, summary bool) error {
	result, findings, err := loadAndGenerate(path, terrainPath)
	if err != nil {
		return err
	}

	if summary {
		printLedger(result)
		if len(findings.Warnings) > 0 {
			fmt.Println()
			printFindings(findings)
		}
		return nil
	}

	output := map[string]any{
		"result":   result,
		"findings": findings,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runValidate(path, terrainPath string) error {
	_, findings, err := loadAndGenerate(path, terrainPath)
	if err != nil {
		return err
	}

	printFindings(findings)

	if !findings.Valid {
		os.Exit(1)
	}
	return nil
}

func runReport(path, terrainPath, output string) error {
	result, findings, err := loadAndGenerate(path, terrainPath)
	if err != nil {
		return err
	}
	if err := report.WritePDF(result, output); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}

	fmt.Printf("Wrote %s\n", output)
	if len(findings.Warnings) > 0 {
		fmt.Println()
		printFindings(findings)
	}
	return nil
}
