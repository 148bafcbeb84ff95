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

package canvasfx_test

import (
	"image/color"
	"testing"

	"seehuhn.de/go/canvasfx"
	"seehuhn.de/go/canvasfx/raster"
)

// TestCapsuleSymmetric checks that swapping the end points of a capsule
// does not change the rendered image.
func TestCapsuleSymmetric(t *testing.T) {
	segments := [][4]float64{
		{10, 20, 50, 20},
		{20, 10, 20, 50},
		{12, 14, 48, 44},
		{12, 44, 48, 14},
	}
	for _, seg := range segments {
		a := raster.NewCanvas(64, 64)
		if err := canvasfx.DrawCapsule(a, seg[0], seg[1], seg[2], seg[3], 6); err != nil {
			t.Fatal(err)
		}
		b := raster.NewCanvas(64, 64)
		if err := canvasfx.DrawCapsule(b, seg[2], seg[3], seg[0], seg[1], 6); err != nil {
			t.Fatal(err)
		}

		imgA, imgB := a.Image(), b.Image()
		for i := range imgA.Pix {
			d := int(imgA.Pix[i]) - int(imgB.Pix[i])
			if d < -2 || d > 2 {
				t.Errorf("segment %v: byte %d differs: %d vs %d", seg, i, imgA.Pix[i], imgB.Pix[i])
				break
			}
		}
	}
}

// TestCapsuleCoverage checks pixels inside and outside a rendered capsule.
func TestCapsuleCoverage(t *testing.T) {
	c := raster.NewCanvas(64, 32)
	c.FillStyle = color.NRGBA{R: 255, A: 255}
	c.StrokeStyle = color.NRGBA{B: 255, A: 255}
	if err := canvasfx.DrawCapsule(c, 16, 16, 48, 16, 10); err != nil {
		t.Fatal(err)
	}

	img := c.Image()
	type testCase struct {
		x, y int
		want color.NRGBA
	}
	cases := []testCase{
		{32, 16, color.NRGBA{R: 255, A: 255}}, // center of the segment
		{8, 16, color.NRGBA{R: 255, A: 255}},  // inside the left cap
		{56, 16, color.NRGBA{R: 255, A: 255}}, // inside the right cap
		{32, 2, color.NRGBA{}},                // above the capsule
		{1, 16, color.NRGBA{}},                // left of the left cap
		{62, 16, color.NRGBA{}},               // right of the right cap
		{7, 8, color.NRGBA{}},                 // outside the rounded corner
	}
	for _, tc := range cases {
		if got := img.NRGBAAt(tc.x, tc.y); got != tc.want {
			t.Errorf("pixel (%d,%d): got %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

// TestRoundedRectCoverage checks that the corners are cut off and that a
// zero radius keeps a square corner.
func TestRoundedRectCoverage(t *testing.T) {
	c := raster.NewCanvas(40, 40)
	c.FillStyle = color.NRGBA{G: 255, A: 255}
	c.LineWidth = 0
	radii := canvasfx.CornerRadii(10, 0, 10, 0)
	if err := canvasfx.RoundedRect(c, 5, 5, 30, 30, radii); err != nil {
		t.Fatal(err)
	}

	img := c.Image()
	filled := func(x, y int) bool { return img.NRGBAAt(x, y).A == 255 }
	empty := func(x, y int) bool { return img.NRGBAAt(x, y).A == 0 }

	if !filled(20, 20) {
		t.Error("center not filled")
	}
	if !empty(5, 5) {
		t.Error("rounded top-left corner filled")
	}
	if !filled(34, 5) {
		t.Error("square top-right corner not filled")
	}
	if !empty(34, 34) {
		t.Error("rounded bottom-right corner filled")
	}
	if !filled(5, 34) {
		t.Error("square bottom-left corner not filled")
	}
}

func TestPixelOpsOnCanvas(t *testing.T) {
	c := raster.NewCanvas(8, 8)
	c.Clear(color.NRGBA{R: 255, A: 255})

	if err := canvasfx.GrayProcessing(c, canvasfx.Region{W: 4}); err != nil {
		t.Fatal(err)
	}
	if err := canvasfx.InverseColor(c, canvasfx.Region{X: 4}); err != nil {
		t.Fatal(err)
	}

	img := c.Image()
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 76, G: 76, B: 76, A: 255}) {
		t.Errorf("gray half: got %v", got)
	}
	if got := img.NRGBAAt(6, 6); got != (color.NRGBA{G: 255, B: 255, A: 255}) {
		t.Errorf("inverted half: got %v", got)
	}
}
