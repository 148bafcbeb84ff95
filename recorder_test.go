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
	"errors"
	"fmt"
	"math"
)

// call is one recorded surface operation.
type call struct {
	Op   string
	Args []float64
	CCW  bool
}

func (c call) String() string {
	if c.Op == "Arc" {
		return fmt.Sprintf("%s%v ccw=%t", c.Op, c.Args, c.CCW)
	}
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// recorder is a Surface which records the path operations it receives and
// keeps its pixels in memory.
type recorder struct {
	calls []call
	err   error // returned by Arc and ArcTo, if set

	width, height int
	pix           []uint8
}

func newRecorder(width, height int) *recorder {
	return &recorder{
		width:  width,
		height: height,
		pix:    make([]uint8, 4*width*height),
	}
}

func (r *recorder) record(op string, args ...float64) {
	r.calls = append(r.calls, call{Op: op, Args: args})
}

func (r *recorder) BeginPath() { r.record("BeginPath") }
func (r *recorder) MoveTo(x, y float64) { r.record("MoveTo", x, y) }
func (r *recorder) ClosePath() { r.record("ClosePath") }
func (r *recorder) Stroke() { r.record("Stroke") }
func (r *recorder) Fill() { r.record("Fill") }

func (r *recorder) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) error {
	r.calls = append(r.calls, call{
		Op:   "Arc",
		Args: []float64{x, y, radius, startAngle, endAngle},
		CCW:  anticlockwise,
	})
	return r.err
}

func (r *recorder) ArcTo(x1, y1, x2, y2, radius float64) error {
	r.record("ArcTo", x1, y1, x2, y2, radius)
	return r.err
}

func (r *recorder) ops() []string {
	var res []string
	for _, c := range r.calls {
		res = append(res, c.Op)
	}
	return res
}

func (r *recorder) Size() (width, height int) {
	return r.width, r.height
}

var errOutside = errors.New("region outside the surface")

func (r *recorder) GetImageData(x, y, w, h int) (*ImageData, error) {
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > r.width || y+h > r.height {
		return nil, errOutside
	}
	img := NewImageData(w, h)
	for row := range h {
		start := ((y+row)*r.width + x) * 4
		copy(img.Data[img.Offset(0, row):img.Offset(0, row+1)], r.pix[start:start+4*w])
	}
	return img, nil
}

func (r *recorder) PutImageData(img *ImageData, x, y int) error {
	if x < 0 || y < 0 || x+img.Width > r.width || y+img.Height > r.height {
		return errOutside
	}
	for row := range img.Height {
		start := ((y+row)*r.width + x) * 4
		copy(r.pix[start:start+4*img.Width], img.Data[img.Offset(0, row):img.Offset(0, row+1)])
	}
	return nil
}

func (r *recorder) set(x, y int, red, green, blue, alpha uint8) {
	i := (y*r.width + x) * 4
	r.pix[i+0] = red
	r.pix[i+1] = green
	r.pix[i+2] = blue
	r.pix[i+3] = alpha
}

func (r *recorder) at(x, y int) [4]uint8 {
	i := (y*r.width + x) * 4
	return [4]uint8(r.pix[i : i+4])
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
