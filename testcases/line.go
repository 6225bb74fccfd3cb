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

import "seehuhn.de/go/geom/path"

var lineCases = []TestCase{
	// [10, 10] on a line of length 60: dashes at 0, 20 and 40
	{
		Name:   "even",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 0, 10, 10),
		Want:   Expectation{Dashes: 3, Length: 30},
	},

	// phase 5 cuts the first dash and adds a partial dash at the end
	{
		Name:   "phase",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 5, 10, 10),
		Want:   Expectation{Dashes: 4, Length: 30},
	},

	// phase -5 is the same as phase 15, starting inside a gap
	{
		Name:   "negative_phase",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, -5, 10, 10),
		Want:   Expectation{Dashes: 3, Length: 30},
	},

	// a phase on an interval boundary starts the next interval
	{
		Name:   "phase_on_boundary",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 10, 10, 10),
		Want:   Expectation{Dashes: 3, Length: 30},
	},

	// four intervals: 5 cycles of length 12 with two dashes each
	{
		Name:   "four_intervals",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 0, 6, 2, 2, 2),
		Want:   Expectation{Dashes: 10, Length: 40},
	},

	// zero-length dashes still produce dots with round caps
	{
		Name:   "dots",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 0, 0, 10),
		Want:   Expectation{Dashes: 6, Length: 0},
	},

	// no gaps: the dashes cover the whole line
	{
		Name:   "no_gaps",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 0, 25, 0),
		Want:   Expectation{Dashes: 3, Length: 60},
	},

	// vertical line with a hairline stroke
	{
		Name:   "hairline",
		Path:   verticalLine(32, 2, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(0, 0, 3, 3),
		Want:   Expectation{Dashes: 10, Length: 30},
	},

	// a line made of several segments is measured as one contour
	{
		Name: "polyline",
		Path: (&path.Data{}).
			MoveTo(pt(2, 10)).
			LineTo(pt(62, 10)).
			LineTo(pt(62, 50)).
			LineTo(pt(22, 50)),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 0, 15, 5),
		Want:   Expectation{Dashes: 7, Length: 105},
	},
}

// horizontalLine builds a single horizontal line from x1 to x2.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y)).
		LineTo(pt(x2, y))
}

// verticalLine builds a single vertical line from y1 to y2.
func verticalLine(x, y1, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y1)).
		LineTo(pt(x, y2))
}
