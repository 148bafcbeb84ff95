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

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []FillCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.3, 10.7, 43.6, 44.2),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "sliver",
		Path:   triangle(2, 30, 62, 31, 62, 31.2),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "ring_evenodd",
		Path:   ring(32, 32, 28, 16),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},
	{
		Name:   "scale_2x_1y",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 1).Translate(32, 32),
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pts[i])
	}
	return p.Close()
}

// ring builds two concentric circles in the same direction.
func ring(cx, cy, outer, inner float64) *path.Data {
	p := &path.Data{}
	p = circle(p, cx, cy, outer)
	return circle(p, cx, cy, inner)
}

// circle appends a circle made of four cubic Bézier curves.
func circle(p *path.Data, cx, cy, r float64) *path.Data {
	const k = 0.5522847498
	kr := k * r
	return p.MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
		Close()
}
