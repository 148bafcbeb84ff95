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

// Command genpdf generates reference images for the raster tests.
// It draws the test cases into PDF files and renders them to PNGs using
// Ghostscript.  Run it from the raster/ directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/canvasfx/raster"
	"seehuhn.de/go/canvasfx/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			err := generate(name, func(pdfPath string) error {
				return shapePDF(tc, pdfPath)
			})
			if err != nil {
				panic(err)
			}
		}
	}
	for _, tc := range testcases.Fills {
		name := "fill_" + tc.Name
		err := generate(name, func(pdfPath string) error {
			return fillPDF(tc, pdfPath)
		})
		if err != nil {
			panic(err)
		}
	}
}

func generate(name string, writePDF func(string) error) error {
	pdfPath := filepath.Join(refDir, name+".pdf")
	pngPath := filepath.Join(refDir, name+".png")

	if err := writePDF(pdfPath); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := renderPNG(pdfPath, pngPath); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// page is the part of the PDF page writer used to draw paths.
type page interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	Fill()
	Stroke()
}

// pdfSurface implements canvasfx.PathSurface on a PDF page.  The path is
// collected by a raster.PathBuilder and replayed onto the page for every
// paint operation, so that stroke and fill can use the same path.
type pdfSurface struct {
	raster.PathBuilder
	page   page
	stroke bool
}

func (s *pdfSurface) Stroke() {
	if !s.stroke {
		return
	}
	s.replay(s.Path())
	s.page.Stroke()
}

func (s *pdfSurface) Fill() {
	s.replay(s.Path())
	s.page.Fill()
}

func (s *pdfSurface) replay(p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			s.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			s.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			s.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			s.page.ClosePath()
		}
	}
}

func shapePDF(tc testcases.TestCase, pdfPath string) error {
	// 1 point = 1 pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	doc, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that gray levels match the test rendering
	doc.SetFillColor(color.DeviceGray(0))
	doc.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	doc.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	doc.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// Stroke parameters must be set before path construction.
	doc.SetFillColor(color.DeviceGray(tc.Style.Fill))
	doc.SetStrokeColor(color.DeviceGray(tc.Style.Stroke))
	if tc.Style.LineWidth > 0 {
		doc.SetLineWidth(tc.Style.LineWidth)
	}

	s := &pdfSurface{page: doc, stroke: tc.Style.LineWidth > 0}
	if err := tc.Shape.Draw(s); err != nil {
		return err
	}

	return doc.Close()
}

func fillPDF(tc testcases.FillCase, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	doc, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	doc.SetFillColor(color.DeviceGray(0))
	doc.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	doc.Fill()

	doc.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		doc.Transform(tc.CTM)
	}

	// white on black gives coverage values
	doc.SetFillColor(color.DeviceGray(1))
	s := &pdfSurface{page: doc}
	s.replay(tc.Path)
	if tc.Rule == testcases.EvenOdd {
		doc.FillEvenOdd()
	} else {
		doc.Fill()
	}

	return doc.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
