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

// Invalid patterns and unusual geometry.
var degenerateCases = []TestCase{
	{
		Name:   "point",
		Path:   horizontalLine(32, 32, 32),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 10, 10),
		Want:   Expectation{Dashes: 0},
	},
	{
		Name:   "fill",
		Path:   closedSquare(12, 12, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Want:   Expectation{Fail: true},
	},
	{
		Name:   "zero_pattern",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 0, 0),
		Want:   Expectation{Fail: true},
	},
	{
		Name:   "negative_interval",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 5, -1),
		Want:   Expectation{Fail: true},
	},
	{
		Name:   "odd_pattern",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 5, 5, 5),
		Want:   Expectation{Fail: true},
	},

	// zero-length segments do not move the pattern
	{
		Name: "zero_length_segments",
		Path: horizontalLine(2, 32, 2).
			LineTo(pt(32, 32)).
			LineTo(pt(32, 32)).
			LineTo(pt(62, 32)),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 10, 10),
		Want:   Expectation{Dashes: 3, Length: 30},
	},

	// contours without drawing commands are skipped
	{
		Name: "empty_contours",
		Path: horizontalLine(2, 32, 62).
			MoveTo(pt(10, 10)).
			MoveTo(pt(20, 20)),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 10, 10),
		Want:   Expectation{Dashes: 3, Length: 30},
	},

	// too many dashes
	{
		Name:   "tiny_intervals",
		Path:   horizontalLine(2, 32, 62),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 1e-5, 1e-5),
		Want:   Expectation{Fail: true},
	},
}
