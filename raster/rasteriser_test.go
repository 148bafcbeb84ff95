// seehuhn.de/go/canvasfx - drawing helpers for 2D canvases
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvasfx/testcases"
)

// TestAgainstVector compares the fill coverage of the rasteriser with the
// output of golang.org/x/image/vector for the same polygons.  Paths with
// curves are skipped, since the two packages flatten curves differently.
func TestAgainstVector(t *testing.T) {
	for _, tc := range testcases.Fills {
		if tc.Rule != testcases.NonZero || hasCurves(tc.Path) {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			w, h := tc.Width, tc.Height

			actual := make([]byte, w*h)
			renderFill(tc, actual, w, h, w)

			expected := renderVector(tc)

			if err := compareImages(tc.Name, expected, actual, w, h); err != nil {
				t.Error(err)
			}
		})
	}
}

func hasCurves(p *path.Data) bool {
	for _, cmd := range p.Cmds {
		if cmd == path.CmdQuadTo || cmd == path.CmdCubeTo {
			return true
		}
	}
	return false
}

// renderFill renders a fill test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func renderFill(tc testcases.FillCase, buf []byte, width, height, stride int) {
	clip := rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(width),
		URy: float64(height),
	}
	r := NewRasteriser(clip)

	// zero-value means identity
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	emit := func(y, xMin int, coverage []float32) {
		row := buf[y*stride:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
		}
	}

	if tc.Rule == testcases.EvenOdd {
		r.FillEvenOdd(tc.Path, emit)
	} else {
		r.FillNonZero(tc.Path, emit)
	}
}

// renderVector renders a fill test case using x/image/vector.
func renderVector(tc testcases.FillCase) []byte {
	m := tc.CTM
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	dev := func(p vec.Vec2) (float32, float32) {
		return float32(m[0]*p.X + m[2]*p.Y + m[4]), float32(m[1]*p.X + m[3]*p.Y + m[5])
	}

	z := vector.NewRasterizer(tc.Width, tc.Height)
	k := 0
	for _, cmd := range tc.Path.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(dev(tc.Path.Coords[k]))
			k++
		case path.CmdLineTo:
			z.LineTo(dev(tc.Path.Coords[k]))
			k++
		case path.CmdQuadTo:
			x1, y1 := dev(tc.Path.Coords[k])
			x2, y2 := dev(tc.Path.Coords[k+1])
			z.QuadTo(x1, y1, x2, y2)
			k += 2
		case path.CmdCubeTo:
			x1, y1 := dev(tc.Path.Coords[k])
			x2, y2 := dev(tc.Path.Coords[k+1])
			x3, y3 := dev(tc.Path.Coords[k+2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
			k += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst.Pix
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h

	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]
	worst := diffs[total-1]

	// Both rasterisers compute exact area coverage for straight edges;
	// differences come from rounding and from curve flattening.
	var failures []string
	if p95 > 2 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <=2)", p95))
	}
	if p99 > 16 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <=16)", p99))
	}
	if worst > 64 {
		failures = append(failures, fmt.Sprintf("largest diff is %d (want <=64)", worst))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes a 3-panel image into the debug/ directory:
// actual (left), diff (middle), expected (right).
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green=under, red=over, black=match
			diff := int(expected[i]) - int(actual[i])
			diffColor := color.RGBA{A: 255}
			if diff > 0 {
				diffColor.G = uint8(diff)
			} else if diff < 0 {
				diffColor.R = uint8(-diff)
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	clip := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1}
	r := NewRasteriser(clip)

	coverage := make([]float32, 10)
	emit := func(y, xMin int, cov []float32) {
		if y == 0 {
			for i, c := range cov {
				coverage[xMin+i] = c
			}
		}
	}

	r.FillNonZero(trianglePath, emit)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := coverage[x]
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

// TestFillRules checks a square with a hole, drawn with both subpaths in
// the same direction: the hole is filled under the nonzero rule and empty
// under the even-odd rule.
func TestFillRules(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 9, Y: 0}).
		LineTo(vec.Vec2{X: 9, Y: 9}).
		LineTo(vec.Vec2{X: 0, Y: 9}).
		Close().
		MoveTo(vec.Vec2{X: 3, Y: 3}).
		LineTo(vec.Vec2{X: 6, Y: 3}).
		LineTo(vec.Vec2{X: 6, Y: 6}).
		LineTo(vec.Vec2{X: 3, Y: 6}).
		Close()

	type testCase struct {
		evenOdd bool
		hole    float32
	}
	cases := []testCase{
		{evenOdd: false, hole: 1},
		{evenOdd: true, hole: 0},
	}
	for _, c := range cases {
		got := coverageGrid(9, 9, func(r *Rasteriser, emit func(int, int, []float32)) {
			if c.evenOdd {
				r.FillEvenOdd(p, emit)
			} else {
				r.FillNonZero(p, emit)
			}
		})
		if v := got[4][4]; math.Abs(float64(v-c.hole)) > 1e-6 {
			t.Errorf("evenOdd=%t: hole coverage %g, want %g", c.evenOdd, v, c.hole)
		}
		if v := got[1][1]; math.Abs(float64(v-1)) > 1e-6 {
			t.Errorf("evenOdd=%t: ring coverage %g, want 1", c.evenOdd, v)
		}
	}
}

// TestOpenSubpathFill checks that open subpaths are filled as if closed.
func TestOpenSubpathFill(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 1, Y: 5})
	closed := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 1, Y: 5}).
		Close()

	a := coverageGrid(6, 6, func(r *Rasteriser, emit func(int, int, []float32)) {
		r.FillNonZero(open, emit)
	})
	b := coverageGrid(6, 6, func(r *Rasteriser, emit func(int, int, []float32)) {
		r.FillNonZero(closed, emit)
	})
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Errorf("pixel (%d,%d): open %g, closed %g", x, y, a[y][x], b[y][x])
			}
		}
	}
}

// TestClip checks that no coverage is emitted outside the clip rectangle.
func TestClip(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: -20, Y: -20}).
		LineTo(vec.Vec2{X: 40, Y: -20}).
		LineTo(vec.Vec2{X: 40, Y: 40}).
		LineTo(vec.Vec2{X: -20, Y: 40}).
		Close()

	clip := rect.Rect{LLx: 2, LLy: 3, URx: 7, URy: 8}
	r := NewRasteriser(clip)
	count := 0
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		if y < 3 || y >= 8 || xMin < 2 || xMin+len(coverage) > 7 {
			t.Errorf("row %d, pixels %d to %d outside clip", y, xMin, xMin+len(coverage))
		}
		for _, c := range coverage {
			if c != 1 {
				t.Errorf("row %d: coverage %g, want 1", y, c)
			}
			count++
		}
	})
	if count != 25 {
		t.Errorf("got %d pixels, want 25", count)
	}
}

// coverageGrid runs draw on a fresh rasteriser and collects the coverage
// into a height×width grid.
func coverageGrid(width, height int, draw func(*Rasteriser, func(int, int, []float32))) [][]float32 {
	grid := make([][]float32, height)
	for y := range grid {
		grid[y] = make([]float32, width)
	}
	r := NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	draw(r, func(y, xMin int, coverage []float32) {
		copy(grid[y][xMin:], coverage)
	})
	return grid
}
