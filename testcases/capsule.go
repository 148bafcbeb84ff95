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

var capsuleCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  64,
		Height: 32,
		Shape:  Capsule{X1: 16, Y1: 16, X2: 48, Y2: 16, Radius: 10},
		Style:  DefaultStyle,
	},
	{
		Name:   "horizontal_reversed",
		Width:  64,
		Height: 32,
		Shape:  Capsule{X1: 48, Y1: 16, X2: 16, Y2: 16, Radius: 10},
		Style:  DefaultStyle,
	},
	{
		Name:   "vertical",
		Width:  32,
		Height: 64,
		Shape:  Capsule{X1: 16, Y1: 16, X2: 16, Y2: 48, Radius: 10},
		Style:  DefaultStyle,
	},
	{
		Name:   "vertical_up",
		Width:  32,
		Height: 64,
		Shape:  Capsule{X1: 16, Y1: 48, X2: 16, Y2: 16, Radius: 10},
		Style:  DefaultStyle,
	},
	{
		Name:   "diagonal_down",
		Width:  64,
		Height: 64,
		Shape:  Capsule{X1: 16, Y1: 16, X2: 48, Y2: 48, Radius: 8},
		Style:  DefaultStyle,
	},
	{
		Name:   "diagonal_up",
		Width:  64,
		Height: 64,
		Shape:  Capsule{X1: 16, Y1: 48, X2: 48, Y2: 16, Radius: 8},
		Style:  DefaultStyle,
	},
	{
		Name:   "steep_left",
		Width:  64,
		Height: 64,
		Shape:  Capsule{X1: 40, Y1: 10, X2: 24, Y2: 54, Radius: 6},
		Style:  DefaultStyle,
	},
	{
		Name:   "point",
		Width:  32,
		Height: 32,
		Shape:  Capsule{X1: 16, Y1: 16, X2: 16, Y2: 16, Radius: 10},
		Style:  DefaultStyle,
	},
	{
		Name:   "thin",
		Width:  64,
		Height: 16,
		Shape:  Capsule{X1: 8, Y1: 8, X2: 56, Y2: 8, Radius: 1.5},
		Style:  Style{LineWidth: 0.5, Stroke: 1, Fill: 1},
	},
	{
		Name:   "fill_only",
		Width:  64,
		Height: 32,
		Shape:  Capsule{X1: 16, Y1: 16, X2: 48, Y2: 16, Radius: 10},
		Style:  Style{Fill: 1},
	},
}
