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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single dashing test.
type TestCase struct {
	Name   string      // lowercase a-z and _ only
	Path   *path.Data  // the geometry to dash
	Width  int         // canvas width, for the generated PDF files
	Height int         // canvas height, for the generated PDF files
	Op     Operation   // fill or stroke
	Cull   *rect.Rect  // visible area (nil disables culling)
	Want   Expectation // expected outcome
}

// Operation is the painting operation applied to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation. Filled paths cannot be dashed.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (0 for hairlines)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
	Dash       []float64              // dash pattern
	DashPhase  float64                // dash phase offset
}

func (Stroke) isOperation() {}

// Expectation describes the result of dashing a test case.
type Expectation struct {
	Fail   bool    // the path must be rejected
	Dashes int     // number of contours in the result
	Length float64 // total length of all dashes (only checked if Filled is false)
	Filled bool    // dashes are emitted as outlines, to be filled
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// roundStroke returns a stroke with round caps and joins, which is dashed
// by the general algorithm.
func roundStroke(width float64, phase float64, dash ...float64) Stroke {
	return Stroke{
		Width:      width,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: 10,
		Dash:       dash,
		DashPhase:  phase,
	}
}

// buttStroke returns a stroke with butt caps and miter joins.
func buttStroke(width float64, phase float64, dash ...float64) Stroke {
	return Stroke{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
		Dash:       dash,
		DashPhase:  phase,
	}
}
