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

import "seehuhn.de/go/canvasfx/internal/vecmath"

// Radii holds the corner radii of a rounded rectangle, in the order
// top-left, top-right, bottom-right, bottom-left.
type Radii [4]float64

// UniformRadii returns Radii with all four corners set to r.
func UniformRadii(r float64) Radii {
	return Radii{r, r, r, r}
}

// CornerRadii returns Radii with the given per-corner values.
func CornerRadii(topLeft, topRight, bottomRight, bottomLeft float64) Radii {
	return Radii{topLeft, topRight, bottomRight, bottomLeft}
}

// SplitRadii expands one to four values into corner radii, following the
// CSS border-radius shorthand.
func SplitRadii(vals ...float64) (Radii, error) {
	four, err := vecmath.FourValueSplit(vals...)
	if err != nil {
		return Radii{}, err
	}
	return Radii(four), nil
}

// Clamp restricts every radius to the range [0, min(w, h)/2], so that
// the arcs of neighbouring corners cannot overlap.
func (r Radii) Clamp(w, h float64) Radii {
	maxRadius := min(w, h) / 2
	for i := range r {
		r[i] = vecmath.Clamp(r[i], 0, maxRadius)
	}
	return r
}

// RoundedRect draws the rectangle with corner (x, y), width w and height h,
// with each corner replaced by a circular arc of the corresponding radius.
// The radii are first clamped using [Radii.Clamp].  The outline is stroked
// and then filled, using the current styles of the surface.
// Errors from the surface are returned unchanged.
func RoundedRect(s PathSurface, x, y, w, h float64, radii Radii) error {
	r := radii.Clamp(w, h)
	topLeft, topRight, bottomRight, bottomLeft := r[0], r[1], r[2], r[3]

	s.BeginPath()
	s.MoveTo(x, y+topLeft)
	if err := s.ArcTo(x, y, x+topLeft, y, topLeft); err != nil {
		return err
	}
	if err := s.ArcTo(x+w, y, x+w, y+topRight, topRight); err != nil {
		return err
	}
	if err := s.ArcTo(x+w, y+h, x+w-bottomRight, y+h, bottomRight); err != nil {
		return err
	}
	if err := s.ArcTo(x, y+h, x, y+h-bottomLeft, bottomLeft); err != nil {
		return err
	}
	s.ClosePath()
	s.Stroke()
	s.Fill()
	return nil
}
