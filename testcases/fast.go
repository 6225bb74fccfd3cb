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
	"seehuhn.de/go/pdf/graphics"
)

// Single lines with butt caps are dashed directly into filled rectangles.
var fastCases = []TestCase{
	{
		Name:   "line",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     buttStroke(4, 0, 10, 10),
		Want:   Expectation{Dashes: 3, Filled: true},
	},
	{
		Name:   "diagonal",
		Path:   (&path.Data{}).MoveTo(pt(2, 2)).LineTo(pt(38, 50)),
		Width:  64,
		Height: 64,
		Op:     buttStroke(4, 0, 10, 10),
		Want:   Expectation{Dashes: 3, Filled: true},
	},
	{
		Name:   "phase",
		Path:   verticalLine(32, 2, 62),
		Width:  64,
		Height: 64,
		Op:     buttStroke(4, 5, 10, 10),
		Want:   Expectation{Dashes: 4, Filled: true},
	},

	// square caps need the stroker
	{
		Name:   "square_cap",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{10, 10},
		},
		Want: Expectation{Dashes: 3, Length: 30},
	},

	// so do paths with more than one segment
	{
		Name: "polyline",
		Path: (&path.Data{}).
			MoveTo(pt(2, 10)).
			LineTo(pt(62, 10)).
			LineTo(pt(62, 50)),
		Width:  64,
		Height: 64,
		Op:     buttStroke(4, 0, 10, 10),
		Want:   Expectation{Dashes: 5, Length: 50},
	},

	// hairlines have no width to fill
	{
		Name:   "hairline",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     buttStroke(0, 0, 10, 10),
		Want:   Expectation{Dashes: 3, Length: 30},
	},
}
