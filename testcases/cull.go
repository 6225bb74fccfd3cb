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
	"seehuhn.de/go/pdf/graphics"
)

// canvas is the visible area used by the culling tests.
var canvas = &rect.Rect{LLx: 0, LLy: 0, URx: 64, URy: 64}

var cullCases = []TestCase{
	// only 80 units of the line are kept, starting on a whole cycle
	{
		Name:   "long_line",
		Path:   horizontalLine(-10000, 32, 10000),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 4, 4),
		Cull:   canvas,
		Want:   Expectation{Dashes: 10, Length: 40},
	},

	// the phase is kept when the line is shortened
	{
		Name:   "long_line_phase",
		Path:   horizontalLine(-10000, 32, 10000),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 2, 4, 4),
		Cull:   canvas,
		Want:   Expectation{Dashes: 11, Length: 40},
	},

	// the miter limit widens the bounds, the cut stays on a whole cycle
	{
		Name:   "long_line_miter",
		Path:   verticalLine(32, -10000, 10000),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      2,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 4,
			Dash:       []float64{4, 4},
		},
		Cull: canvas,
		Want: Expectation{Dashes: 10, Length: 40},
	},

	// lines outside the visible area vanish
	{
		Name:   "outside_line",
		Path:   horizontalLine(-10000, -100, 10000),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 4, 4),
		Cull:   canvas,
		Want:   Expectation{Dashes: 0},
	},

	// only the bottom and left edges of a large square are visible
	{
		Name:   "big_square",
		Path:   closedSquare(0, 0, 1000),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 5, 5),
		Cull:   canvas,
		Want:   Expectation{Dashes: 14, Length: 70},
	},

	// a square around the visible area
	{
		Name:   "enclosing_square",
		Path:   closedSquare(-100, -100, 300),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 5, 5),
		Cull:   canvas,
		Want:   Expectation{Dashes: 0},
	},

	// a visible square is opened at its first corner; a small extra
	// contour keeps the join at this corner
	{
		Name:   "square_corner",
		Path:   closedSquare(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 9, 3),
		Cull:   canvas,
		Want:   Expectation{Dashes: 15, Length: 121 + 80.0/4096},
	},

	// curves are not culled
	{
		Name: "curve",
		Path: (&path.Data{}).
			MoveTo(pt(2, 32)).
			QuadTo(pt(32, 32), pt(62, 32)),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 10, 10),
		Cull:   canvas,
		Want:   Expectation{Dashes: 3, Length: 30},
	},
}
