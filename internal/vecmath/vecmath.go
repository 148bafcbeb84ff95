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

// Package vecmath collects the small numeric helpers used by the drawing
// functions: angles between vectors, unit conversion, CSS-style four-value
// expansion and range clamping.
package vecmath

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// XAxis is the unit vector along the positive x-axis.
var XAxis = vec.Vec2{X: 1, Y: 0}

// V2 returns the vector (x, y).
func V2(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// IncludedAngle returns the angle between a and b in degrees.
// The result is in the range [0, 180].  If either vector has length zero,
// the result is 0.
func IncludedAngle(a, b vec.Vec2) float64 {
	cross := a.X*b.Y - a.Y*b.X
	dot := a.Dot(b)
	return RadToDeg(math.Atan2(math.Abs(cross), dot))
}

// DegToRad converts an angle from degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts an angle from radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ErrValueCount is returned by FourValueSplit when it is given
// fewer than one or more than four values.
var ErrValueCount = errors.New("vecmath: need between 1 and 4 values")

// FourValueSplit expands one to four values into four, following the CSS
// shorthand rules for corner radii:
//
//	a       -> a, a, a, a
//	a b     -> a, b, a, b
//	a b c   -> a, b, c, b
//	a b c d -> a, b, c, d
func FourValueSplit(vals ...float64) ([4]float64, error) {
	switch len(vals) {
	case 1:
		return [4]float64{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return [4]float64{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return [4]float64{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return [4]float64{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return [4]float64{}, ErrValueCount
}

// Clamp restricts v to the range [lo, hi].
// If hi < lo, the result is lo.
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
