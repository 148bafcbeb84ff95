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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrNegativeRadius is returned by Arc and ArcTo for a negative radius.
var ErrNegativeRadius = errors.New("raster: negative radius")

// PathBuilder constructs a path using the path operations of the HTML
// canvas.  Arcs are converted to cubic Bézier curves.
//
// The zero value is an empty path, ready to use.
type PathBuilder struct {
	path        *path.Data
	start       vec.Vec2
	current     vec.Vec2
	hasSubpath  bool
	needsMoveTo bool // the last subpath was closed
}

// Path returns the path constructed so far.  The result is shared with
// the builder and is only valid until the next call to BeginPath.
func (b *PathBuilder) Path() *path.Data {
	if b.path == nil {
		b.path = &path.Data{}
	}
	return b.path
}

// BeginPath discards the current path.
func (b *PathBuilder) BeginPath() {
	p := b.Path()
	p.Cmds = p.Cmds[:0]
	p.Coords = p.Coords[:0]
	b.hasSubpath = false
	b.needsMoveTo = false
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	b.moveTo(vec.Vec2{X: x, Y: y})
}

// LineTo adds a straight line from the current point to (x, y).
// Without a current subpath, this is the same as MoveTo.
func (b *PathBuilder) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	b.lineTo(vec.Vec2{X: x, Y: y})
}

// Rect adds a closed rectangular subpath.
func (b *PathBuilder) Rect(x, y, w, h float64) {
	if !finite(x, y, w, h) {
		return
	}
	b.moveTo(vec.Vec2{X: x, Y: y})
	b.lineTo(vec.Vec2{X: x + w, Y: y})
	b.lineTo(vec.Vec2{X: x + w, Y: y + h})
	b.lineTo(vec.Vec2{X: x, Y: y + h})
	b.ClosePath()
}

// Arc adds a circular arc around (x, y), from startAngle to endAngle.
// If there is a current subpath, a straight line connects its current
// point to the start of the arc.  Calls with non-finite arguments are
// ignored.
func (b *PathBuilder) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) error {
	if !finite(x, y, radius, startAngle, endAngle) {
		return nil
	}
	if radius < 0 {
		return ErrNegativeRadius
	}

	center := vec.Vec2{X: x, Y: y}
	sweep := arcSweep(startAngle, endAngle, anticlockwise)
	b.lineTo(polar(center, radius, startAngle))
	b.path = appendArc(b.path, center, radius, startAngle, sweep)
	b.current = polar(center, radius, startAngle+sweep)
	return nil
}

// ArcTo adds an arc of the given radius which is tangent to the line from
// the current point to (x1, y1) and to the line from (x1, y1) to (x2, y2).
// A straight line connects the current point to the start of the arc.
// If the three points are collinear, or if the radius is zero, a straight
// line to (x1, y1) is added instead.
func (b *PathBuilder) ArcTo(x1, y1, x2, y2, radius float64) error {
	if !finite(x1, y1, x2, y2, radius) {
		return nil
	}
	if radius < 0 {
		return ErrNegativeRadius
	}

	p1 := vec.Vec2{X: x1, Y: y1}
	p2 := vec.Vec2{X: x2, Y: y2}
	if !b.hasSubpath {
		b.moveTo(p1)
	}
	p0 := b.current
	if p0 == p1 || p1 == p2 || radius == 0 {
		b.lineTo(p1)
		return nil
	}

	arc, ok := cornerArc(p0, p1, p2, radius)
	if !ok {
		b.lineTo(p1)
		return nil
	}
	b.lineTo(arc.T1)
	b.path = appendArc(b.path, arc.Center, radius, arc.Start, arc.Sweep)
	b.current = arc.T2
	return nil
}

// ClosePath connects the current point to the start of the subpath.
// A following path operation continues from the start point of the
// closed subpath.
func (b *PathBuilder) ClosePath() {
	if !b.hasSubpath || b.needsMoveTo {
		return
	}
	b.path = b.Path().Close()
	b.current = b.start
	b.needsMoveTo = true
}

func (b *PathBuilder) moveTo(p vec.Vec2) {
	b.path = b.Path().MoveTo(p)
	b.start = p
	b.current = p
	b.hasSubpath = true
	b.needsMoveTo = false
}

func (b *PathBuilder) lineTo(p vec.Vec2) {
	if !b.hasSubpath {
		b.moveTo(p)
		return
	}
	if b.needsMoveTo {
		b.path = b.path.MoveTo(b.start)
		b.needsMoveTo = false
	}
	b.path = b.path.LineTo(p)
	b.current = p
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
