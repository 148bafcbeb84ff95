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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser turns paths into anti-aliased pixel coverage.
// Coverage is the fraction of a pixel's area inside the shape, from 0 to 1.
//
// Internal buffers are kept between calls, so a single Rasteriser should be
// reused for many paths.  A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  It must be invertible.
	CTM matrix.Matrix

	// Clip is the device space rectangle which receives output.
	// Its coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a
	// curve and the line segments used to approximate it.
	Flatness float64

	// Width is the line width for Stroke, in user space units.
	Width float64

	// Cap is the shape used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio of miter length to line width
	// before a miter join is replaced by a bevel.  At least 1.
	MiterLimit float64

	cover     []float32 // signed vertical extent per pixel; becomes the output
	area      []float32 // area left of the edge within each pixel
	edges     []edge
	active    []int
	crossings []float64

	// stroke geometry
	segs         []strokeSegment
	segStart     []int  // first segment of each flattened subpath
	closed       []bool // whether the subpath was closed
	reversed     []strokeSegment
	outline      []vec.Vec2
	outlineStart []int // first vertex of each outline polygon

	bboxEmpty bool
	bbox      rect.Rect // device space bounding box of edges
}

// NewRasteriser returns a Rasteriser for the given clip rectangle,
// with the defaults of the HTML canvas for the remaining fields.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default settings and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// deviceLinear applies the linear part of the CTM, ignoring translation.
func (r *Rasteriser) deviceLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic splits the quadratic Bézier curve p0, p1, p2 into line
// segments and calls emit for each of them.  The number of segments is
// chosen so that the error in device space stays below Flatness.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.deviceLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic splits the cubic Bézier curve p0, p1, p2, p3 into line
// segments and calls emit for each of them.  The segment count follows
// Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.deviceLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.deviceLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// FillNonZero computes the coverage of the path under the nonzero winding
// rule.  Coverage is passed to emit one row at a time, starting at pixel
// xMin of row y.  The slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd computes the coverage of the path under the even-odd rule.
// Coverage is delivered in the same way as for FillNonZero.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			// subpaths are filled as if closed
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	r.scan(rule, emit)
}

// startEdges clears the edge list.
func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms the segment from a to b into device space and
// appends it to the edge list.  Horizontal edges do not contribute to
// coverage and are dropped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	box := rect.Rect{LLx: min(x0, x1), LLy: min(y0, y1), URx: max(x0, x1), URy: max(y0, y1)}
	if r.bboxEmpty {
		r.bbox = box
		r.bboxEmpty = false
	} else {
		r.bbox.LLx = min(r.bbox.LLx, box.LLx)
		r.bbox.LLy = min(r.bbox.LLy, box.LLy)
		r.bbox.URx = max(r.bbox.URx, box.URx)
		r.bbox.URy = max(r.bbox.URy, box.URy)
	}
}

// pixelBounds returns the integer pixel range touched by the edge list,
// intersected with the clip rectangle.
func (r *Rasteriser) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Each pixel collects two sums from the edges crossing it:
//
//	cover: the signed height of the edge pieces inside the pixel
//	area:  cover weighted by the fraction of the pixel right of the edge
//
// Walking a row from left to right, the coverage of a pixel is the cover
// carried in from the pixels to its left plus its own area value.  The
// sign is +1 for edges going down and -1 for edges going up, so the
// result is the winding number integrated over the pixel.

// scan runs the active edge list over all scanlines of the bounding box.
func (r *Rasteriser) scan(rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e inside scanline y to the cover and area
// buffers, which start at pixel xMin.  Edge pieces left of the buffer are
// folded into its first pixel, pieces right of it are dropped.  The
// return value tells whether e intersects the scanline.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bottom := min(float64(y+1), e.yMax())
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(top), e.xAt(bottom)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	// Split the piece wherever it crosses a pixel boundary.
	r.crossings = append(r.crossings[:0], top, bottom)
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > top && yx < bottom {
			r.crossings = append(r.crossings, yx)
		}
	}
	if len(r.crossings) > 2 {
		slices.Sort(r.crossings)
	}

	for i := 1; i < len(r.crossings); i++ {
		y0, y1 := r.crossings[i-1], r.crossings[i]
		if y1 <= y0 {
			continue
		}
		c := sign * float32(y1-y0)
		xm := e.xAt((y0 + y1) / 2)
		px := int(math.Floor(xm))

		switch {
		case px < xMin:
			r.cover[0] += c
			r.area[0] += c
		case px < xMax:
			idx := px - xMin
			r.cover[idx] += c
			r.area[idx] += c * float32(1-(xm-float64(px)))
		}
	}
	return true
}

// integrateNonZero turns one row of cover/area sums into coverage using
// the nonzero winding rule.  The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(w), 1)
	}
}

// integrateEvenOdd turns one row of cover/area sums into coverage using
// the even-odd rule.  The result overwrites cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		w := abs32(acc + area[i])
		acc += cover[i]
		w -= 2 * float32(int(w/2))
		cover[i] = 1 - abs32(1-w)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips zero coverage from both ends of a row.
// It returns nil if the whole row is zero.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is the default miter limit of the HTML canvas.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent for which
	// an edge is kept.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the smallest length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest |sin| of the turning angle at
	// which two segments are treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cosine of the turning angle below which
	// the path is taken to double back on itself.  cos(179.2°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)
