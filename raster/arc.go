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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// arcSweep returns the signed angle swept by a canvas arc from start to
// end.  Clockwise arcs (positive angles) sweep between 0 and 2π,
// anticlockwise arcs between -2π and 0.
func arcSweep(start, end float64, anticlockwise bool) float64 {
	const tau = 2 * math.Pi
	if !anticlockwise {
		if end-start >= tau {
			return tau
		}
		s := math.Mod(end-start, tau)
		if s < 0 {
			s += tau
		}
		return s
	}
	if start-end >= tau {
		return -tau
	}
	s := math.Mod(start-end, tau)
	if s < 0 {
		s += tau
	}
	return -s
}

// polar returns the point at the given angle on the circle around center.
func polar(center vec.Vec2, radius, angle float64) vec.Vec2 {
	return vec.Vec2{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// appendArc appends cubic Bézier curves approximating the circular arc
// which starts at angle start and sweeps by sweep.  The current point of p
// must already be at the start of the arc.  Each curve covers at most a
// quarter circle.
func appendArc(p *path.Data, center vec.Vec2, radius, start, sweep float64) *path.Data {
	if sweep == 0 || radius == 0 {
		return p
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * radius

	a := start
	for range n {
		b := a + step
		p0 := polar(center, radius, a)
		p3 := polar(center, radius, b)
		p1 := p0.Add(vec.Vec2{X: -math.Sin(a), Y: math.Cos(a)}.Mul(k))
		p2 := p3.Sub(vec.Vec2{X: -math.Sin(b), Y: math.Cos(b)}.Mul(k))
		p = p.CubeTo(p1, p2, p3)
		a = b
	}
	return p
}

// tangentArc describes the arc which rounds the corner p0, p1, p2 with the
// given radius.
type tangentArc struct {
	T1, T2        vec.Vec2 // tangent points on p1-p0 and p1-p2
	Center        vec.Vec2
	Start, Sweep  float64
	Anticlockwise bool
}

// cornerArc computes the arc of the given radius which is tangent to the
// lines p0-p1 and p1-p2.  The second result is false if the three points
// are collinear, in which case no such arc exists.
func cornerArc(p0, p1, p2 vec.Vec2, radius float64) (tangentArc, bool) {
	v1 := p0.Sub(p1)
	v2 := p2.Sub(p1)
	l1, l2 := v1.Length(), v2.Length()
	cross := v1.X*v2.Y - v1.Y*v2.X
	if l1 == 0 || l2 == 0 || math.Abs(cross) <= collinearityThreshold*l1*l2 {
		return tangentArc{}, false
	}
	u1 := v1.Mul(1 / l1)
	u2 := v2.Mul(1 / l2)

	// phi is the angle at p1 between the two lines.
	phi := math.Acos(max(-1, min(1, u1.Dot(u2))))
	dist := radius / math.Tan(phi/2)

	bisector := u1.Add(u2)
	bisector = bisector.Mul(1 / bisector.Length())

	arc := tangentArc{
		T1:     p1.Add(u1.Mul(dist)),
		T2:     p1.Add(u2.Mul(dist)),
		Center: p1.Add(bisector.Mul(radius / math.Sin(phi/2))),
	}

	// Moving along p0, p1, p2 the path turns by -cross; a negative turn
	// is anticlockwise.
	arc.Anticlockwise = cross > 0
	arc.Start = math.Atan2(arc.T1.Y-arc.Center.Y, arc.T1.X-arc.Center.X)
	end := math.Atan2(arc.T2.Y-arc.Center.Y, arc.T2.X-arc.Center.X)
	arc.Sweep = arcSweep(arc.Start, end, arc.Anticlockwise)
	return arc, true
}
