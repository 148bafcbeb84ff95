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

package testcases

var roundRectCases = []TestCase{
	{
		Name:   "uniform",
		Width:  64,
		Height: 48,
		Shape:  RoundedRect{X: 8, Y: 8, W: 48, H: 32, Radii: []float64{8}},
		Style:  DefaultStyle,
	},
	{
		Name:   "square_corners",
		Width:  64,
		Height: 48,
		Shape:  RoundedRect{X: 8, Y: 8, W: 48, H: 32, Radii: []float64{0}},
		Style:  DefaultStyle,
	},
	{
		Name:   "two_values",
		Width:  64,
		Height: 48,
		Shape:  RoundedRect{X: 8, Y: 8, W: 48, H: 32, Radii: []float64{12, 2}},
		Style:  DefaultStyle,
	},
	{
		Name:   "three_values",
		Width:  64,
		Height: 48,
		Shape:  RoundedRect{X: 8, Y: 8, W: 48, H: 32, Radii: []float64{2, 8, 14}},
		Style:  DefaultStyle,
	},
	{
		Name:   "four_values",
		Width:  64,
		Height: 48,
		Shape:  RoundedRect{X: 8, Y: 8, W: 48, H: 32, Radii: []float64{0, 4, 10, 16}},
		Style:  DefaultStyle,
	},
	{
		// radii larger than half the height are clamped, giving a pill
		Name:   "clamped",
		Width:  64,
		Height: 48,
		Shape:  RoundedRect{X: 8, Y: 8, W: 48, H: 32, Radii: []float64{100}},
		Style:  DefaultStyle,
	},
	{
		Name:   "circle",
		Width:  48,
		Height: 48,
		Shape:  RoundedRect{X: 8, Y: 8, W: 32, H: 32, Radii: []float64{16}},
		Style:  DefaultStyle,
	},
	{
		Name:   "negative_radius",
		Width:  64,
		Height: 48,
		Shape:  RoundedRect{X: 8, Y: 8, W: 48, H: 32, Radii: []float64{-5}},
		Style:  DefaultStyle,
	},
	{
		Name:   "small",
		Width:  16,
		Height: 16,
		Shape:  RoundedRect{X: 2.5, Y: 2.5, W: 11, H: 11, Radii: []float64{3}},
		Style:  Style{LineWidth: 1, Stroke: 1, Fill: 0.25},
	},
}
