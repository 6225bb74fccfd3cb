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

var closedCases = []TestCase{
	// half the perimeter: the first dash is emitted as its own contour
	{
		Name:   "square_half",
		Path:   closedSquare(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 0, 80, 80),
		Want:   Expectation{Dashes: 1, Length: 80},
	},

	// the last dash continues across the start point
	{
		Name:   "square_seam",
		Path:   closedSquare(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 5, 10, 10),
		Want:   Expectation{Dashes: 8, Length: 80},
	},

	// a pattern starting in a gap needs no joining
	{
		Name:   "square_gap_first",
		Path:   closedSquare(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 15, 10, 10),
		Want:   Expectation{Dashes: 8, Length: 80},
	},

	// a pattern which fits the perimeter exactly
	{
		Name:   "square_exact",
		Path:   closedSquare(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 0, 20, 20),
		Want:   Expectation{Dashes: 4, Length: 80},
	},

	// every contour starts with the same phase
	{
		Name: "two_squares",
		Path: (&path.Data{}).
			MoveTo(pt(4, 4)).LineTo(pt(28, 4)).LineTo(pt(28, 28)).LineTo(pt(4, 28)).Close().
			MoveTo(pt(36, 36)).LineTo(pt(60, 36)).LineTo(pt(60, 60)).LineTo(pt(36, 60)).Close(),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 6, 12, 12),
		Want:   Expectation{Dashes: 8, Length: 96},
	},

	// a closed triangle whose perimeter is a whole number of cycles
	{
		Name: "triangle",
		Path: (&path.Data{}).
			MoveTo(pt(8, 8)).
			LineTo(pt(56, 8)).
			LineTo(pt(8, 44)).
			Close(),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 16, 8),
		Want:   Expectation{Dashes: 6, Length: 96},
	},
}

// closedSquare builds a closed square path starting at (x, y) with given
// side length.
func closedSquare(x, y, side float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+side, y)).
		LineTo(pt(x+side, y+side)).
		LineTo(pt(x, y+side)).
		Close()
}
