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

// Package testcases collects the shapes and paths used to test and
// benchmark the drawing helpers and the rasteriser.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvasfx"
)

// TestCase is a shape drawn by one of the canvasfx helpers.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Shape  Shape
	Style  Style
}

// Shape is a drawing operation on a path surface.
type Shape interface {
	Draw(s canvasfx.PathSurface) error
}

// Style gives the paint used for a test case.  Colours are gray levels
// between 0 (black) and 1 (white).
type Style struct {
	LineWidth float64
	Stroke    float64
	Fill      float64
}

// DefaultStyle is a thin white outline around a gray interior, so that
// reference images show both the stroke and the fill.
var DefaultStyle = Style{LineWidth: 2, Stroke: 1, Fill: 0.5}

// Capsule draws a capsule with [canvasfx.DrawCapsule].
type Capsule struct {
	X1, Y1 float64
	X2, Y2 float64
	Radius float64
}

// Draw implements the [Shape] interface.
func (c Capsule) Draw(s canvasfx.PathSurface) error {
	return canvasfx.DrawCapsule(s, c.X1, c.Y1, c.X2, c.Y2, c.Radius)
}

// RoundedRect draws a rounded rectangle with [canvasfx.RoundedRect].
// Radii holds one to four values, expanded with [canvasfx.SplitRadii].
type RoundedRect struct {
	X, Y  float64
	W, H  float64
	Radii []float64
}

// Draw implements the [Shape] interface.
func (r RoundedRect) Draw(s canvasfx.PathSurface) error {
	radii, err := canvasfx.SplitRadii(r.Radii...)
	if err != nil {
		return err
	}
	return canvasfx.RoundedRect(s, r.X, r.Y, r.W, r.H, radii)
}

// FillCase is a path filled directly by the rasteriser.
type FillCase struct {
	Name   string
	Path   *path.Data
	Width  int
	Height int
	Rule   FillRule
	CTM    matrix.Matrix // zero-value means no transform
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
