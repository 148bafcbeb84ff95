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

// Package canvasfx implements convenience drawing operations on top of a
// 2D drawing surface: capsule outlines, rounded rectangles with individual
// corner radii, colour inversion and grayscale conversion.
//
// The drawing surface is described by the [PathSurface] and [PixelSurface]
// interfaces, which follow the HTML canvas 2D context.  The package
// seehuhn.de/go/canvasfx/raster provides an implementation which renders
// into an in-memory image.
package canvasfx

// PathSurface is the path construction and painting part of a 2D drawing
// surface.  Angles are in radians, and positive angles turn from the
// positive x-axis towards the positive y-axis.
type PathSurface interface {
	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// Arc adds a circular arc around (x, y) to the current subpath,
	// connected to the previous point by a straight line.
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) error

	// ArcTo adds a straight line and an arc of the given radius, tangent
	// to the lines from the current point to (x1, y1) and from (x1, y1)
	// to (x2, y2).
	ArcTo(x1, y1, x2, y2, radius float64) error

	// ClosePath connects the current point to the start of the subpath.
	ClosePath()

	// Stroke outlines the current path using the current stroke style.
	Stroke()

	// Fill fills the current path using the current fill style.
	Fill()
}

// PixelSurface gives access to the pixels of a 2D drawing surface.
type PixelSurface interface {
	// Size returns the width and height of the surface in pixels.
	Size() (width, height int)

	// GetImageData returns a copy of the pixels in the given rectangle.
	GetImageData(x, y, w, h int) (*ImageData, error)

	// PutImageData replaces the pixels of the surface, starting at (x, y),
	// with the contents of img.
	PutImageData(img *ImageData, x, y int) error
}

// Surface is a drawing surface which supports both paths and pixel access.
type Surface interface {
	PathSurface
	PixelSurface
}

// ImageData is a rectangular block of pixels.  Pixels are stored in
// row-major order, four bytes per pixel in the order red, green, blue,
// alpha.  Colour values are not premultiplied by alpha.
type ImageData struct {
	Width  int
	Height int
	Data   []uint8
}

// NewImageData allocates a transparent black pixel block of the given size.
func NewImageData(width, height int) *ImageData {
	return &ImageData{
		Width:  width,
		Height: height,
		Data:   make([]uint8, 4*width*height),
	}
}

// Offset returns the index in Data of the red channel of pixel (x, y).
func (img *ImageData) Offset(x, y int) int {
	return (y*img.Width + x) * 4
}
