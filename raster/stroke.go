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
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a non-degenerate line segment in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A to B
	N    vec.Vec2 // unit normal, T turned by +90°
}

// Stroke computes the coverage of the outline of p, using Width, Cap, Join
// and MiterLimit.  Coverage is delivered in the same way as for
// FillNonZero.
//
// Each subpath is turned into a single outline polygon: the offset curve
// on the left of the path, the end cap, the offset curve on the right
// walked backwards and the start cap.  A closed subpath gives two rings
// of opposite orientation instead.  Zero-length subpaths are ignored.
func (r *Rasteriser) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.flattenForStroke(p)
	if len(r.segStart) == 0 || r.Width <= 0 {
		return
	}

	d := r.Width / 2
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]
	for i := range r.segStart {
		segs := r.subpath(i)
		closed := r.closed[i]
		r.reversed = appendReversed(r.reversed[:0], segs)

		r.outlineStart = append(r.outlineStart, len(r.outline))
		r.addSide(segs, closed, d)
		if closed {
			r.outlineStart = append(r.outlineStart, len(r.outline))
		} else {
			last := &segs[len(segs)-1]
			r.addCap(last.B, last.T, last.N, d)
		}
		r.addSide(r.reversed, closed, d)
		if !closed {
			last := &r.reversed[len(r.reversed)-1]
			r.addCap(last.B, last.T, last.N, d)
		}
	}

	r.startEdges()
	for i, start := range r.outlineStart {
		end := len(r.outline)
		if i+1 < len(r.outlineStart) {
			end = r.outlineStart[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 3 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.scan(fillNonZero, emit)
}

// subpath returns the segments of flattened subpath i.
func (r *Rasteriser) subpath(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segStart) {
		end = r.segStart[i+1]
	}
	return r.segs[r.segStart[i]:end]
}

// flattenForStroke converts p into straight segments, grouped by subpath.
func (r *Rasteriser) flattenForStroke(p path.Path) {
	r.segs = r.segs[:0]
	r.segStart = r.segStart[:0]
	r.closed = r.closed[:0]

	var current, start vec.Vec2
	first := 0
	inSubpath := false
	finish := func(closed bool) {
		if inSubpath && len(r.segs) > first {
			r.segStart = append(r.segStart, first)
			r.closed = append(r.closed, closed)
		}
		first = len(r.segs)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = pts[0]
			start = current
			inSubpath = true
		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			r.addStrokeSegment(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			r.flattenQuadratic(current, pts[0], pts[1], r.addStrokeSegment)
			current = pts[1]
		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addStrokeSegment)
			current = pts[2]
		case path.CmdClose:
			if !inSubpath {
				continue
			}
			r.addStrokeSegment(current, start)
			current = start
			finish(true)
			inSubpath = false
		}
	}
	finish(false)
}

// addStrokeSegment appends the segment from a to b, unless it is too
// short to have a direction.
func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// appendReversed appends the segments of segs to dst, in reverse order
// and with reversed direction.
func appendReversed(dst, segs []strokeSegment) []strokeSegment {
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		dst = append(dst, strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)})
	}
	return dst
}

// addSide appends the offset curve at distance d on the +N side of segs.
// For a closed subpath the curve returns to its own start and the corner
// between the last and the first segment is included.
func (r *Rasteriser) addSide(segs []strokeSegment, closed bool, d float64) {
	n := len(segs)
	if !closed {
		r.outline = append(r.outline, segs[0].A.Add(segs[0].N.Mul(d)))
	}
	for i := range n {
		if i == n-1 && !closed {
			r.outline = append(r.outline, segs[i].B.Add(segs[i].N.Mul(d)))
			break
		}
		r.addCorner(&segs[i], &segs[(i+1)%n], d)
	}
}

// addCorner appends the +N side outline where s1 ends and s2 begins.
// On the inner side of a turn the two offset lines are cut at their
// intersection, so that the outline does not overlap itself.
func (r *Rasteriser) addCorner(s1, s2 *strokeSegment, d float64) {
	P := s2.A
	o1 := P.Add(s1.N.Mul(d))
	o2 := P.Add(s2.N.Mul(d))
	sin := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X
	cos := s1.T.Dot(s2.T)

	switch {
	case cos < cuspCosineThreshold:
		r.outline = append(r.outline, o1)
		r.addCap(P, s1.T, s1.N, d)
		r.outline = append(r.outline, o2)
	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, o1, o2)
	case sin > 0:
		// The path turns towards +N, so this is the inner side.
		if tip, ok := bisectorPoint(P, s1.N, s2.N, cos, d); ok {
			r.outline = append(r.outline, tip)
		} else {
			r.outline = append(r.outline, o1, o2)
		}
	default:
		r.outline = append(r.outline, o1)
		r.addJoin(P, s1.N, sin, cos, d)
		r.outline = append(r.outline, o2)
	}
}

// bisectorPoint returns the intersection of the lines at distance d from
// P along the normals n1 and n2, where cos is the cosine of the turning
// angle.
func bisectorPoint(P, n1, n2 vec.Vec2, cos, d float64) (vec.Vec2, bool) {
	cosHalf := math.Sqrt((1 + cos) / 2)
	bisector := n1.Add(n2)
	l := bisector.Length()
	if cosHalf < 1e-9 || l < zeroLengthThreshold {
		return vec.Vec2{}, false
	}
	return P.Add(bisector.Mul(d / (cosHalf * l))), true
}

// addJoin appends the join geometry between the offset points P+d*n1 and
// P+d*n2 on the outer side of a turn.  The endpoints themselves are added
// by the caller.
func (r *Rasteriser) addJoin(P, n1 vec.Vec2, sin, cos, d float64) {
	switch r.Join {
	case graphics.LineJoinRound:
		r.addArc(P, n1, math.Atan2(sin, cos), d)
	case graphics.LineJoinMiter:
		// The miter length, in units of the line width, is 1/cos(θ/2)
		// where θ is the turning angle.
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+1e-10 {
			n2 := rotate(n1, sin, cos)
			if tip, ok := bisectorPoint(P, n1, n2, cos, d); ok {
				r.outline = append(r.outline, tip)
			}
		}
	}
}

// addCap appends the cap at P, going from P+d*N to P-d*N around the
// outward direction T.
func (r *Rasteriser) addCap(P, T, N vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(P, N, -math.Pi, d)
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	}
}

// addArc appends the interior vertices of the circular arc around center
// which starts in direction dir and turns by sweep radians.  The number
// of vertices keeps the chord error below Flatness in device space.
func (r *Rasteriser) addArc(center, dir vec.Vec2, sweep, radius float64) {
	devRadius := max(
		r.deviceLinear(vec.Vec2{X: radius}).Length(),
		r.deviceLinear(vec.Vec2{Y: radius}).Length(),
	)
	if devRadius <= r.Flatness {
		return
	}
	n := 1
	if step := 2 * math.Acos(1-r.Flatness/devRadius); step > 0 {
		n = max(n, int(math.Ceil(math.Abs(sweep)/step)))
	}
	for i := 1; i < n; i++ {
		phi := sweep * float64(i) / float64(n)
		r.outline = append(r.outline, center.Add(rotate(dir, math.Sin(phi), math.Cos(phi)).Mul(radius)))
	}
}

// rotate turns v by the angle with the given sine and cosine.
func rotate(v vec.Vec2, sin, cos float64) vec.Vec2 {
	return vec.Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
