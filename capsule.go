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

package canvasfx

import (
	"math"

	"seehuhn.de/go/canvasfx/internal/vecmath"
)

// DrawCapsule draws a capsule (a stadium shape) around the line segment
// from (x1, y1) to (x2, y2): all points within distance radius of the
// segment.  The outline is stroked and then filled, using the current
// styles of the surface.
//
// If both end points coincide, the capsule is a circle.  The radius is
// passed to the surface unchecked; for a negative radius the result
// depends on the surface.  Errors from the surface are returned unchanged.
func DrawCapsule(s PathSurface, x1, y1, x2, y2, radius float64) error {
	ang := capsuleAngle(x1, y1, x2, y2)
	rad := vecmath.DegToRad(ang)

	s.BeginPath()
	if err := s.Arc(x1, y1, radius, rad, math.Pi+rad, false); err != nil {
		return err
	}
	if err := s.Arc(x2, y2, radius, math.Pi+rad, rad, false); err != nil {
		return err
	}
	s.ClosePath()
	s.Stroke()
	s.Fill()
	return nil
}

// capsuleAngle returns the direction, in degrees, from the first end point
// to the start of the first end cap.  This is the direction of the
// segment turned by 90 degrees, so that each cap sweeps around the outer
// side of its end point.
func capsuleAngle(x1, y1, x2, y2 float64) float64 {
	p1 := vecmath.V2(x1, y1)
	p2 := vecmath.V2(x2, y2)
	p3 := p2.Sub(p1)

	// The included angle carries no sign, so segments pointing towards
	// positive y need to be mirrored.
	included := vecmath.IncludedAngle(p3, vecmath.XAxis)
	if p3.Y > 0 {
		return 90 + included
	}
	return 90 - included
}
