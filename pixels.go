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

// Region selects a rectangle of pixels on a surface.
//
// The zero value selects the whole surface: X and Y default to 0, and a
// zero W or H stands for the full width or height of the surface.
type Region struct {
	X, Y int
	W, H int
}

// Resolve fills in the defaults of r for a surface of the given size.
func (r Region) Resolve(width, height int) Region {
	if r.W == 0 {
		r.W = width
	}
	if r.H == 0 {
		r.H = height
	}
	return r
}

// InverseColor replaces every pixel in the region by its complementary
// colour.  The alpha channel of all pixels in the region is set to 255.
// A zero W or H in r selects the full width or height of the surface, so
// Region{} processes the whole surface; an empty region cannot be
// expressed.  Errors from the surface are returned unchanged.
func InverseColor(s PixelSurface, r Region) error {
	return transformRegion(s, r, InvertPixels)
}

// GrayProcessing converts every pixel in the region to gray, using the
// luma weights of ITU-R BT.601.  The alpha channel of all pixels in the
// region is set to 255.  As for [InverseColor], a zero W or H stands for
// the full width or height of the surface.  Errors from the surface are
// returned unchanged.
func GrayProcessing(s PixelSurface, r Region) error {
	return transformRegion(s, r, GrayPixels)
}

func transformRegion(s PixelSurface, r Region, f func(*ImageData)) error {
	r = r.Resolve(s.Size())

	img, err := s.GetImageData(r.X, r.Y, r.W, r.H)
	if err != nil {
		return err
	}
	f(img)
	return s.PutImageData(img, r.X, r.Y)
}

// InvertPixels replaces the colour channels of each pixel by 255 minus
// their value and makes every pixel opaque.
func InvertPixels(img *ImageData) {
	data := img.Data
	for i := 0; i+3 < len(data); i += 4 {
		data[i+0] = 255 - data[i+0]
		data[i+1] = 255 - data[i+1]
		data[i+2] = 255 - data[i+2]
		data[i+3] = 255
	}
}

// GrayPixels replaces the colour channels of each pixel by their luma
// value and makes every pixel opaque.
func GrayPixels(img *ImageData) {
	data := img.Data
	for i := 0; i+3 < len(data); i += 4 {
		gray := Luma(data[i+0], data[i+1], data[i+2])
		data[i+0] = gray
		data[i+1] = gray
		data[i+2] = gray
		data[i+3] = 255
	}
}

// Luma returns 0.299*r + 0.587*g + 0.114*b, rounded down.
//
// The computation is exact, so that Luma(v, v, v) == v for all v.
func Luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}
