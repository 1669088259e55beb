package torus_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/quadric/torus"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestUVsModeDispatch(t *testing.T) {
	const minorSeg, majorSeg = 12, 48
	// Twist divisible by the minor segment count closes the seam onto the
	// grid; anything else forms a single ribbon.
	grid := torus.UVs(minorSeg, majorSeg, 12)
	if !reflect.DeepEqual(grid, torus.GridUVs(minorSeg, majorSeg)) {
		t.Error("twist 12 with 12 minor segments should select the grid atlas")
	}
	ribbon := torus.UVs(minorSeg, majorSeg, 5)
	if !reflect.DeepEqual(ribbon, torus.RibbonUVs(minorSeg, majorSeg, 5)) {
		t.Error("twist 5 with 12 minor segments should select the ribbon strip")
	}
	if reflect.DeepEqual(grid, ribbon) {
		t.Error("grid and ribbon layouts should differ")
	}
	zero := torus.UVs(minorSeg, majorSeg, 0)
	if !reflect.DeepEqual(zero, torus.GridUVs(minorSeg, majorSeg)) {
		t.Error("zero twist should select the grid atlas")
	}
}

func TestGridUVsSquareScenario(t *testing.T) {
	// 4x4 grid, step 0.25 on both axes, initial offset 0.5.
	uv := torus.GridUVs(4, 4)
	if len(uv) != 64 {
		t.Fatalf("got %d loop UVs, want 64", len(uv))
	}
	want := [4]r2.Vec{
		{X: 0.5, Y: 0.5},
		{X: 0.75, Y: 0.5},
		{X: 0.75, Y: 0.75},
		{X: 0.5, Y: 0.75},
	}
	for k := 0; k < 4; k++ {
		if uv[k] != want[k] {
			t.Errorf("first face corner %d = %v, want %v", k, uv[k], want[k])
		}
	}
}

func TestGridUVsWrap(t *testing.T) {
	// Both axes must stay within the unit square after wrapping, for
	// segment counts divisible by 4 and not.
	for _, seg := range [][2]int{{4, 4}, {12, 48}, {5, 7}, {6, 10}} {
		minorSeg, majorSeg := seg[0], seg[1]
		uv := torus.GridUVs(minorSeg, majorSeg)
		if len(uv) != 4*minorSeg*majorSeg {
			t.Fatalf("%v: got %d loop UVs, want %d", seg, len(uv), 4*minorSeg*majorSeg)
		}
		uStep := 1.0 / float64(majorSeg)
		vStep := 1.0 / float64(minorSeg)
		for i, c := range uv {
			if c.X < -uStep || c.X > 1+uStep || c.Y < -vStep || c.Y > 1+vStep {
				t.Fatalf("%v: loop %d UV %v strays outside the wrapped unit square", seg, i, c)
			}
		}
		// Each face cell must be exactly one step wide and tall.
		const tol = 1e-12
		for f := 0; f < minorSeg*majorSeg; f++ {
			l := 4 * f
			if du := uv[l+1].X - uv[l].X; math.Abs(du-uStep) > tol {
				t.Fatalf("%v: face %d cell width %g, want %g", seg, f, du, uStep)
			}
			if dv := uv[l+3].Y - uv[l].Y; math.Abs(dv-vStep) > tol {
				t.Fatalf("%v: face %d cell height %g, want %g", seg, f, dv, vStep)
			}
		}
	}
}

func TestRibbonUVsStrip(t *testing.T) {
	const (
		minorSeg = 4
		majorSeg = 3
		twist    = 1
		tol      = 1e-12
	)
	uv := torus.RibbonUVs(minorSeg, majorSeg, twist)
	count := minorSeg * majorSeg
	if len(uv) != 4*count {
		t.Fatalf("got %d loop UVs, want %d", len(uv), 4*count)
	}
	uStep := 1.0 / float64(count)
	// Twist 1 visits every face exactly once: face idx*minorSeg+off is the
	// (off*majorSeg+idx)-th face of the strip.
	for off := 0; off < minorSeg; off++ {
		for idx := 0; idx < majorSeg; idx++ {
			l := 4 * (idx*minorSeg + off)
			wantU := float64(off*majorSeg+idx) * uStep
			if math.Abs(uv[l].X-wantU) > tol {
				t.Errorf("face (%d,%d): U starts at %g, want %g", idx, off, uv[l].X, wantU)
			}
			if math.Abs(uv[l+1].X-uv[l].X-uStep) > tol {
				t.Errorf("face (%d,%d): strip cell width %g, want %g", idx, off, uv[l+1].X-uv[l].X, uStep)
			}
			if uv[l].Y != 0 || uv[l+1].Y != 0 || uv[l+2].Y != 1 || uv[l+3].Y != 1 {
				t.Errorf("face (%d,%d): V must be 0 on one long edge and 1 on the other", idx, off)
			}
		}
	}
	last := uv[len(uv)-2] // corner 2 of the face assigned last
	if math.Abs(last.X-1) > tol {
		t.Errorf("strip should end at U=1, got %g", last.X)
	}
}
