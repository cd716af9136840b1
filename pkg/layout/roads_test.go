package layout

import (
	"math"
	"testing"
)

func TestRoadBandCount(t *testing.T) {
	ctx, _ := zonedFixture(t, 40, 42)
	bands := ctx.buildRoadBands()
	want := ctx.rows + ctx.cols + 3
	if len(bands) != want {
		t.Fatalf("expected %d bands for a %dx%d grid, got %d", want, ctx.rows, ctx.cols, len(bands))
	}
}

func TestRoadPerimeterLinesArterial(t *testing.T) {
	ctx, _ := zonedFixture(t, 40, 42)
	for _, b := range ctx.buildRoadBands() {
		if b.Orientation == "boulevard" {
			continue
		}
		dim := ctx.cols
		if b.Orientation == "row" {
			dim = ctx.rows
		}
		if (b.Index == 0 || b.Index == dim) && b.Tier != TierArterial {
			t.Errorf("%s line %d on the perimeter should be arterial, got %s", b.Orientation, b.Index, b.Tier)
		}
	}
}

func TestRoadBoulevardWidth(t *testing.T) {
	ctx, _ := zonedFixture(t, 40, 42)
	found := false
	for _, b := range ctx.buildRoadBands() {
		if b.Orientation != "boulevard" {
			continue
		}
		found = true
		if b.Tier != TierBoulevard {
			t.Errorf("boulevard band carries tier %s", b.Tier)
		}
		want := ArterialRoadWidth * 1.1
		if math.Abs(b.Width-want) > 1e-9 {
			t.Errorf("boulevard width %f, want %f", b.Width, want)
		}
		if b.Start.Y != b.End.Y {
			t.Error("boulevard should run along the bottom edge")
		}
	}
	if !found {
		t.Fatal("no boulevard band emitted")
	}
}

func TestLineTierHierarchy(t *testing.T) {
	// dim 10: spacing max(2, 10/3)=3, so 0,3,6,9,10 arterial; 10>=6 so
	// remaining %3 lines are already arterial; rest local.
	cases := []struct {
		index, dim int
		want       RoadTier
	}{
		{0, 10, TierArterial},
		{10, 10, TierArterial},
		{3, 10, TierArterial},
		{1, 10, TierLocal},
		{5, 10, TierLocal},
		// dim 8: spacing 2, every even line arterial, odd local.
		{4, 8, TierArterial},
		{5, 8, TierLocal},
		// dim 7: spacing 2; 3 is odd and dim>=6, so collector.
		{3, 7, TierCollector},
	}
	for _, c := range cases {
		tier, _ := lineTier(c.index, c.dim)
		if tier != c.want {
			t.Errorf("lineTier(%d, %d) = %s, want %s", c.index, c.dim, tier, c.want)
		}
	}
}

func TestLineTierWidths(t *testing.T) {
	if _, w := lineTier(0, 10); w != ArterialRoadWidth {
		t.Errorf("arterial width %f", w)
	}
	if _, w := lineTier(3, 7); w != CollectorRoadWidth {
		t.Errorf("collector width %f", w)
	}
	if _, w := lineTier(1, 10); w != LocalRoadWidth {
		t.Errorf("local width %f", w)
	}
}

func TestRoadLabelPoints(t *testing.T) {
	ctx, _ := zonedFixture(t, 40, 42)
	for _, b := range ctx.buildRoadBands() {
		if b.Orientation == "boulevard" {
			continue
		}
		crossings := ctx.rows
		if b.Orientation == "row" {
			crossings = ctx.cols
		}
		if len(b.Labels) < 3 {
			t.Fatalf("%s line %d has %d labels, want at least first/mid/last", b.Orientation, b.Index, len(b.Labels))
		}
		// Labels sit on the band's line.
		for _, p := range b.Labels {
			if b.Orientation == "col" && math.Abs(p.X-b.Start.X) > 1e-9 {
				t.Errorf("col label off its line: %v", p)
			}
			if b.Orientation == "row" && math.Abs(p.Y-b.Start.Y) > 1e-9 {
				t.Errorf("row label off its line: %v", p)
			}
		}
		if crossings >= 6 && len(b.Labels) < 4 {
			t.Errorf("dense grid line should carry interval labels, got %d", len(b.Labels))
		}
	}
}
