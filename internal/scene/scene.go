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

// Package scene reads drawing instructions from YAML files and replays
// them on a raster canvas.
//
// A scene file looks like this:
//
//	width: 200
//	height: 100
//	background: "#fff"
//	ops:
//	  - op: capsule
//	    from: [20, 50]
//	    to: [180, 50]
//	    radius: 15
//	    fill: "#f80"
//	    stroke: "#000"
//	    line_width: 2
//	  - op: rounded_rect
//	    rect: [10, 10, 60, 40]
//	    radii: [8, 4]
//	  - op: grayscale
//	    region: [0, 0, 100, 100]
//
// The drawing state (fill colour, stroke colour, line width) carries over
// from one operation to the next, as it does on the canvas.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/canvasfx"
	"seehuhn.de/go/canvasfx/raster"
)

// Operation names.
const (
	OpCapsule     = "capsule"
	OpRoundedRect = "rounded_rect"
	OpInvert      = "invert"
	OpGrayscale   = "grayscale"
)

var (
	// ErrUnknownOp is returned for an unsupported operation name.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrNoSize is returned when a scene has neither a positive size nor
	// an input image.
	ErrNoSize = errors.New("scene needs a size or an input image")

	errArgs = errors.New("wrong number of values")
)

// Scene is a sequence of drawing operations on a canvas.
type Scene struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background *Color `yaml:"background"`

	// Input names an image to draw on.  If set, Width and Height are
	// taken from the image.  Relative names are resolved against the
	// directory of the scene file by Load.
	Input string `yaml:"input"`

	Ops []Op `yaml:"ops"`
}

// Op is a single drawing operation.  Which fields are used depends on
// the operation.
type Op struct {
	Op string `yaml:"op"`

	From   []float64 `yaml:"from,flow"`   // capsule
	To     []float64 `yaml:"to,flow"`     // capsule
	Radius float64   `yaml:"radius"`      // capsule
	Rect   []float64 `yaml:"rect,flow"`   // rounded_rect: x, y, w, h
	Radii  []float64 `yaml:"radii,flow"`  // rounded_rect: 1 to 4 values
	Region []int     `yaml:"region,flow"` // invert, grayscale

	Fill      *Color   `yaml:"fill"`
	Stroke    *Color   `yaml:"stroke"`
	LineWidth *float64 `yaml:"line_width"`
}

// Parse reads a scene from r.  Unknown keys are an error.
func Parse(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Scene{}
	err := dec.Decode(s)
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty scene")
	} else if err != nil {
		return nil, err
	}

	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads a scene file.
func Load(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", fname, err)
	}
	if s.Input != "" && !filepath.IsAbs(s.Input) {
		s.Input = filepath.Join(filepath.Dir(fname), s.Input)
	}
	return s, nil
}

func (s *Scene) check() error {
	if s.Input == "" && (s.Width <= 0 || s.Height <= 0) {
		return ErrNoSize
	}
	for i, op := range s.Ops {
		if err := op.check(); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op.Op, err)
		}
	}
	return nil
}

func (op *Op) check() error {
	switch op.Op {
	case OpCapsule:
		if len(op.From) != 2 || len(op.To) != 2 {
			return fmt.Errorf("from/to: %w", errArgs)
		}
	case OpRoundedRect:
		if len(op.Rect) != 4 {
			return fmt.Errorf("rect: %w", errArgs)
		}
		if _, err := canvasfx.SplitRadii(op.Radii...); err != nil {
			return fmt.Errorf("radii: %w", err)
		}
	case OpInvert, OpGrayscale:
		if len(op.Region) != 0 && len(op.Region) != 4 {
			return fmt.Errorf("region: %w", errArgs)
		}
	default:
		return ErrUnknownOp
	}
	return nil
}

// NewCanvas returns the canvas the scene is drawn on.  If src is non-nil
// the canvas starts as a copy of src, otherwise it has the size of the
// scene.  A background colour is placed underneath src.
func (s *Scene) NewCanvas(src image.Image) *raster.Canvas {
	if src == nil {
		c := raster.NewCanvas(s.Width, s.Height)
		if s.Background != nil {
			c.Clear(s.Background.NRGBA())
		}
		return c
	}
	if s.Background == nil {
		return raster.NewCanvasFromImage(src)
	}

	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Rect, image.NewUniform(s.Background.NRGBA()), image.Point{}, draw.Src)
	draw.Draw(img, img.Rect, src, b.Min, draw.Over)
	return raster.NewCanvasFromImage(img)
}

// Apply runs the operations of the scene on c, in order.
func (s *Scene) Apply(c *raster.Canvas) error {
	for i, op := range s.Ops {
		if err := op.apply(c); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op.Op, err)
		}
	}
	return nil
}

func (op *Op) apply(c *raster.Canvas) error {
	if op.Fill != nil {
		c.FillStyle = op.Fill.NRGBA()
	}
	if op.Stroke != nil {
		c.StrokeStyle = op.Stroke.NRGBA()
	}
	if op.LineWidth != nil {
		c.LineWidth = *op.LineWidth
	}

	switch op.Op {
	case OpCapsule:
		return canvasfx.DrawCapsule(c, op.From[0], op.From[1], op.To[0], op.To[1], op.Radius)
	case OpRoundedRect:
		radii, err := canvasfx.SplitRadii(op.Radii...)
		if err != nil {
			return err
		}
		return canvasfx.RoundedRect(c, op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3], radii)
	case OpInvert:
		return canvasfx.InverseColor(c, op.region())
	case OpGrayscale:
		return canvasfx.GrayProcessing(c, op.region())
	default:
		return ErrUnknownOp
	}
}

func (op *Op) region() canvasfx.Region {
	if len(op.Region) != 4 {
		return canvasfx.Region{}
	}
	return canvasfx.Region{X: op.Region[0], Y: op.Region[1], W: op.Region[2], H: op.Region[3]}
}

// Color is a colour given as a hex string in a scene file.
type Color color.NRGBA

// NRGBA returns the colour as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	col, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(col)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}
