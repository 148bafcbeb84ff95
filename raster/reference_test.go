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
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/canvasfx/testcases"
)

// TestAgainstReference compares the canvas output for all shape test cases
// with reference images rendered by Ghostscript.  The reference images
// are generated by testcases/genpdf; cases without a reference image are
// skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image, run genpdf first")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				actual, err := renderShape(tc)
				if err != nil {
					t.Fatal(err)
				}

				if err := compareReference(name, ref, actual, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderShape draws a test case on a black canvas and returns the gray
// levels of the result, in row-major order.
func renderShape(tc testcases.TestCase) ([]byte, error) {
	c := NewCanvas(tc.Width, tc.Height)
	c.Clear(color.Black)
	c.FillStyle = grayLevel(tc.Style.Fill)
	c.StrokeStyle = grayLevel(tc.Style.Stroke)
	c.LineWidth = tc.Style.LineWidth

	if err := tc.Shape.Draw(c); err != nil {
		return nil, err
	}

	img := c.Image()
	gray := make([]byte, tc.Width*tc.Height)
	for y := range tc.Height {
		for x := range tc.Width {
			gray[y*tc.Width+x] = img.NRGBAAt(x, y).G
		}
	}
	return gray, nil
}

func grayLevel(v float64) color.Gray {
	return color.Gray{Y: uint8(math.Round(max(0, min(1, v)) * 255))}
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)

	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareReference checks the rendering against a Ghostscript reference.
// Ghostscript anti-aliases with 4x4 supersampling, so only the bulk of the
// pixels can be expected to agree exactly.
func compareReference(name string, expected, actual []byte, w, h int) error {
	total := w * h
	if len(expected) != total {
		return fmt.Errorf("reference has %d pixels, want %d", len(expected), total)
	}

	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	// - at least 80% of pixels are identical (p80 == 0)
	// - at least 95% of differences are < 64 (p95 < 64)
	// - at least 99% of differences are < 128 (p99 < 128)
	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}
