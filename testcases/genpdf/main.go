// seehuhn.de/go/dash - dash patterns for vector paths
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

// Command genpdf generates reference images for the dash tests.
// Each PDF shows the path dashed by the PDF viewer in gray, overlaid with
// the output of the dash filter in white. The PDFs are rendered to PNGs
// using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/dash"
	"seehuhn.de/go/dash/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	op, isStroke := tc.Op.(testcases.Stroke)
	if isStroke {
		page.SetLineWidth(op.Width)
		page.SetLineCap(op.Cap)
		page.SetLineJoin(op.Join)
		page.SetMiterLimit(op.MiterLimit)
	}

	// the viewer's own rendition of the dashed path
	page.SetFillColor(color.DeviceGray(0.5))
	page.SetStrokeColor(color.DeviceGray(0.5))
	if isStroke && dash.IsValid(op.DashPhase, op.Dash) {
		page.SetLineDash(op.Dash, op.DashPhase)
	}
	drawPath(page, tc.Path)
	if isStroke {
		page.Stroke()
	} else {
		page.Fill()
	}

	// the output of the dash filter
	f := newFilter(tc)
	dst := &dash.Path{}
	style, ok := f.Apply(dst, dash.FromData(tc.Path))
	if ok {
		page.SetFillColor(color.DeviceGray(1))
		page.SetStrokeColor(color.DeviceGray(1))
		page.SetLineDash(nil, 0)
		drawPath(page, dst.Data())
		if style == dash.StyleFill {
			page.Fill()
		} else {
			page.Stroke()
		}
	}

	return page.Close()
}

// newFilter returns a dash filter configured for the given test case.
func newFilter(tc testcases.TestCase) *dash.Filter {
	f := dash.NewFilter()
	f.Cull = tc.Cull
	switch op := tc.Op.(type) {
	case testcases.Fill:
		f.Style = dash.StyleFill
	case testcases.Stroke:
		f.Width = op.Width
		f.Cap = op.Cap
		f.Join = op.Join
		f.MiterLimit = op.MiterLimit
		f.Dash = op.Dash
		f.DashPhase = op.DashPhase
	}
	return f
}

type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath draws p, converting quadratic to cubic curves (PDF doesn't
// support quadratic curves).
func drawPath(page pathWriter, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
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
