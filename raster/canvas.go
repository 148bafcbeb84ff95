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
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvasfx"
)

// FillRule selects how the inside of a path is determined.
type FillRule int

// These are the fill rules supported by [Canvas].
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}

var (
	// ErrEmptyRegion is returned by GetImageData for a zero width or height.
	ErrEmptyRegion = errors.New("raster: empty image region")

	// ErrImageDataSize is returned by PutImageData if the pixel data is
	// shorter than its dimensions require.
	ErrImageDataSize = errors.New("raster: image data too short")
)

// Canvas is an in-memory drawing surface in the style of the HTML canvas
// 2D context.  Paths are built with the methods of the embedded
// PathBuilder and painted with Fill and Stroke using anti-aliased
// coverage.
//
// The exported fields hold the drawing state.  They can be changed at any
// time and take effect at the next call to Fill or Stroke.
type Canvas struct {
	PathBuilder

	FillStyle   color.Color
	StrokeStyle color.Color

	// LineWidth is the stroke width in user space units.  If LineWidth
	// is zero or negative, Stroke paints nothing.  This differs from the
	// HTML canvas, which ignores such values and keeps the previous width.
	LineWidth float64

	LineCap    graphics.LineCapStyle
	LineJoin   graphics.LineJoinStyle
	MiterLimit float64
	FillRule   FillRule

	img  *image.NRGBA
	mask *image.Alpha
	r    *Rasteriser
	ctm  matrix.Matrix

	dirty         image.Rectangle
	dirtyNotEmpty bool
}

var _ canvasfx.Surface = (*Canvas)(nil)

// NewCanvas returns a transparent black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return newCanvas(image.NewNRGBA(image.Rect(0, 0, width, height)))
}

// NewCanvasFromImage returns a canvas initialised with a copy of src.
// The top-left corner of src becomes the origin of the canvas.
func NewCanvasFromImage(src image.Image) *Canvas {
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Rect, src, b.Min, draw.Src)
	return newCanvas(img)
}

func newCanvas(img *image.NRGBA) *Canvas {
	clip := rect.Rect{URx: float64(img.Rect.Dx()), URy: float64(img.Rect.Dy())}
	c := &Canvas{
		FillStyle:   color.Black,
		StrokeStyle: color.Black,
		LineWidth:   1,
		LineCap:     graphics.LineCapButt,
		LineJoin:    graphics.LineJoinMiter,
		MiterLimit:  defaultMiterLimit,

		img:  img,
		mask: image.NewAlpha(img.Rect),
		r:    NewRasteriser(clip),
		ctm:  matrix.Identity,
	}
	return c
}

// Image returns the pixels of the canvas.  The image is shared with the
// canvas, not copied.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Size returns the width and height of the canvas in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

// SetTransform sets the matrix which maps path coordinates to pixels.
// The matrix in effect when Fill or Stroke is called is used for the
// whole path.
func (c *Canvas) SetTransform(m matrix.Matrix) {
	c.ctm = m
}

// Transform returns the current transformation matrix.
func (c *Canvas) Transform() matrix.Matrix {
	return c.ctm
}

// Clear sets every pixel of the canvas to col, ignoring the current path.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Fill fills the current path with FillStyle, using FillRule.
func (c *Canvas) Fill() {
	p := c.Path()
	if len(p.Cmds) == 0 {
		return
	}
	c.setupRasteriser()
	if c.FillRule == EvenOdd {
		c.r.FillEvenOdd(p, c.addCoverage)
	} else {
		c.r.FillNonZero(p, c.addCoverage)
	}
	c.composite(c.FillStyle)
}

// Stroke outlines the current path with StrokeStyle, using the current
// line width, caps and joins.  Nothing is painted if LineWidth is not
// positive.
func (c *Canvas) Stroke() {
	p := c.Path()
	if len(p.Cmds) == 0 || c.LineWidth <= 0 {
		return
	}
	c.setupRasteriser()
	c.r.Stroke(p.Iter(), c.addCoverage)
	c.composite(c.StrokeStyle)
}

func (c *Canvas) setupRasteriser() {
	c.r.CTM = c.ctm
	c.r.Width = c.LineWidth
	c.r.Cap = c.LineCap
	c.r.Join = c.LineJoin
	c.r.MiterLimit = max(c.MiterLimit, 1)
}

// addCoverage writes one row of coverage into the mask.
func (c *Canvas) addCoverage(y, xMin int, coverage []float32) {
	row := c.mask.Pix[c.mask.PixOffset(xMin, y):]
	for i, v := range coverage {
		row[i] = uint8(min(v, 1)*255 + 0.5)
	}

	r := image.Rect(xMin, y, xMin+len(coverage), y+1)
	if c.dirtyNotEmpty {
		c.dirty = c.dirty.Union(r)
	} else {
		c.dirty = r
		c.dirtyNotEmpty = true
	}
}

// composite paints col through the mask onto the canvas and clears the
// mask again.
func (c *Canvas) composite(col color.Color) {
	if !c.dirtyNotEmpty {
		return
	}
	if col == nil {
		col = color.Black
	}
	draw.DrawMask(c.img, c.dirty, image.NewUniform(col), image.Point{}, c.mask, c.dirty.Min, draw.Over)

	for y := c.dirty.Min.Y; y < c.dirty.Max.Y; y++ {
		clear(c.mask.Pix[c.mask.PixOffset(c.dirty.Min.X, y):c.mask.PixOffset(c.dirty.Max.X, y)])
	}
	c.dirtyNotEmpty = false
}

// GetImageData returns a copy of the pixels in the rectangle with corner
// (x, y), width w and height h.  Negative sizes extend the rectangle to the
// left or upwards.  Pixels outside the canvas are transparent black.
func (c *Canvas) GetImageData(x, y, w, h int) (*canvasfx.ImageData, error) {
	if w == 0 || h == 0 {
		return nil, ErrEmptyRegion
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}

	out := canvasfx.NewImageData(w, h)
	src := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	for sy := src.Min.Y; sy < src.Max.Y; sy++ {
		from := c.img.Pix[c.img.PixOffset(src.Min.X, sy):c.img.PixOffset(src.Max.X, sy)]
		copy(out.Data[out.Offset(src.Min.X-x, sy-y):], from)
	}
	return out, nil
}

// PutImageData replaces the pixels of the canvas, starting at (x, y), by
// the contents of img.  Pixels which fall outside the canvas are ignored.
// No compositing takes place.
func (c *Canvas) PutImageData(img *canvasfx.ImageData, x, y int) error {
	if img.Width < 0 || img.Height < 0 || len(img.Data) < 4*img.Width*img.Height {
		return ErrImageDataSize
	}

	dst := image.Rect(x, y, x+img.Width, y+img.Height).Intersect(c.img.Rect)
	for dy := dst.Min.Y; dy < dst.Max.Y; dy++ {
		from := img.Data[img.Offset(dst.Min.X-x, dy-y):img.Offset(dst.Max.X-x, dy-y)]
		copy(c.img.Pix[c.img.PixOffset(dst.Min.X, dy):], from)
	}
	return nil
}
