// Command export writes the test case definitions to JSON, for use by
// reference generators outside of Go.  Run it from the raster/ directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/canvasfx"
	"seehuhn.de/go/canvasfx/testcases"
)

func main() {
	var out struct {
		Shapes []jsonShape    `json:"shapes"`
		Fills  []jsonFillCase `json:"fills"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			js, err := shapeToJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.Shapes = append(out.Shapes, js)
		}
	}
	for _, tc := range testcases.Fills {
		out.Fills = append(out.Fills, fillToJSON(tc))
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonShape struct {
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Kind      string  `json:"kind"`
	LineWidth float64 `json:"line_width,omitempty"`
	Stroke    float64 `json:"stroke"`
	Fill      float64 `json:"fill"`

	// capsule
	X1     float64 `json:"x1,omitempty"`
	Y1     float64 `json:"y1,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
	Radius float64 `json:"radius,omitempty"`

	// rounded rectangle, with radii after expansion and clamping
	X     float64   `json:"x,omitempty"`
	Y     float64   `json:"y,omitempty"`
	W     float64   `json:"w,omitempty"`
	H     float64   `json:"h,omitempty"`
	Radii []float64 `json:"radii,omitempty"`
}

type jsonFillCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Path     []jsonSegment `json:"path"`
	FillRule string        `json:"fill_rule"`
	CTM      []float64     `json:"ctm,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func shapeToJSON(category string, tc testcases.TestCase) (jsonShape, error) {
	js := jsonShape{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		LineWidth: tc.Style.LineWidth,
		Stroke:    tc.Style.Stroke,
		Fill:      tc.Style.Fill,
	}

	switch s := tc.Shape.(type) {
	case testcases.Capsule:
		js.Kind = "capsule"
		js.X1, js.Y1, js.X2, js.Y2 = s.X1, s.Y1, s.X2, s.Y2
		js.Radius = s.Radius
	case testcases.RoundedRect:
		js.Kind = "rounded_rect"
		js.X, js.Y, js.W, js.H = s.X, s.Y, s.W, s.H
		radii, err := canvasfx.SplitRadii(s.Radii...)
		if err != nil {
			return js, fmt.Errorf("%s: %w", js.Name, err)
		}
		clamped := radii.Clamp(s.W, s.H)
		js.Radii = clamped[:]
	default:
		return js, fmt.Errorf("%s: unknown shape %T", js.Name, tc.Shape)
	}
	return js, nil
}

func fillToJSON(tc testcases.FillCase) jsonFillCase {
	jfc := jsonFillCase{
		Name:     "fill_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Path:     pathToJSON(tc.Path),
		FillRule: "nonzero",
	}
	if tc.Rule == testcases.EvenOdd {
		jfc.FillRule = "evenodd"
	}
	if tc.CTM != (matrix.Matrix{}) {
		jfc.CTM = tc.CTM[:]
	}
	return jfc
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
