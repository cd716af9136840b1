package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/HasnainAbbasi1/planit/pkg/plan"
)

func TestNormalizeSquareFillsPaddedCanvas(t *testing.T) {
	ring := [][2]float64{{0, 0}, {200, 0}, {200, 200}, {0, 200}}
	poly, err := NormalizeBoundary(ring, CanvasWidth, CanvasHeight)
	if err != nil {
		t.Fatal(err)
	}
	minP, maxP := poly.BoundingBox()
	if math.Abs(minP.X-50) > 0.01 || math.Abs(maxP.X-950) > 0.01 {
		t.Errorf("square should span the padded width, got [%f, %f]", minP.X, maxP.X)
	}
	if math.Abs(maxP.Y-minP.Y-900) > 0.01 {
		t.Errorf("square should span 900 units vertically, got %f", maxP.Y-minP.Y)
	}
}

func TestNormalizePreservesAspect(t *testing.T) {
	// 2:1 shape: the long axis fills the canvas, the short one is centered.
	ring := [][2]float64{{0, 0}, {400, 0}, {400, 200}, {0, 200}}
	poly, err := NormalizeBoundary(ring, CanvasWidth, CanvasHeight)
	if err != nil {
		t.Fatal(err)
	}
	minP, maxP := poly.BoundingBox()
	w := maxP.X - minP.X
	h := maxP.Y - minP.Y
	if math.Abs(w/h-2.0) > 0.01 {
		t.Errorf("aspect ratio not preserved: %f x %f", w, h)
	}
	// Centered vertically.
	if math.Abs((minP.Y+maxP.Y)/2-CanvasHeight/2) > 0.01 {
		t.Errorf("shape not vertically centered: [%f, %f]", minP.Y, maxP.Y)
	}
}

func TestNormalizeWithinCanvas(t *testing.T) {
	ring := [][2]float64{{-31.2, 74.5}, {-31.1, 74.52}, {-31.15, 74.56}, {-31.22, 74.53}}
	poly, err := NormalizeBoundary(ring, CanvasWidth, CanvasHeight)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range poly.Vertices {
		if v.X < 0 || v.X > CanvasWidth || v.Y < 0 || v.Y > CanvasHeight {
			t.Errorf("vertex %v escaped the canvas", v)
		}
	}
}

func TestNormalizeDropsClosingPoint(t *testing.T) {
	open := [][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	closed := append(append([][2]float64{}, open...), [2]float64{0, 0})
	a, err := NormalizeBoundary(open, CanvasWidth, CanvasHeight)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NormalizeBoundary(closed, CanvasWidth, CanvasHeight)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != b.Len() {
		t.Errorf("open and closed rings should normalize identically: %d vs %d vertices", a.Len(), b.Len())
	}
}

func TestNormalizeRejectsDegenerateInput(t *testing.T) {
	cases := [][][2]float64{
		{},
		{{1, 1}},
		{{0, 0}, {10, 10}},
		{{0, 0}, {10, 10}, {0, 0}, {10, 10}},  // two distinct points
		{{5, 0}, {5, 10}, {5, 20}},            // zero width
		{{0, 7}, {10, 7}, {20, 7}},            // zero height
	}
	for i, ring := range cases {
		if _, err := NormalizeBoundary(ring, CanvasWidth, CanvasHeight); !errors.Is(err, plan.ErrInvalidGeometry) {
			t.Errorf("case %d: expected ErrInvalidGeometry, got %v", i, err)
		}
	}
}
