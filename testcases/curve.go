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
	"math"

	"seehuhn.de/go/geom/path"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	// a full circle with the last dash joined to the first
	{
		Name:   "circle",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     roundStroke(3, 0, 10, 10),
		Want:   Expectation{Dashes: 6, Length: 60 + (40*math.Pi - 120)},
	},

	// an open half circle
	{
		Name:   "half_circle",
		Path:   halfCircle(32, 40, 20),
		Width:  64,
		Height: 64,
		Op:     roundStroke(3, 0, 10, 10),
		Want:   Expectation{Dashes: 4, Length: 30 + (20*math.Pi - 60)},
	},

	// a parabola with known arc length
	{
		Name: "parabola",
		Path: (&path.Data{}).
			MoveTo(pt(10, 10)).
			QuadTo(pt(30, 10), pt(50, 50)),
		Width:  64,
		Height: 64,
		Op:     roundStroke(3, 0, 10, 10),
		Want:   Expectation{Dashes: 3, Length: 30},
	},

	// quadratic curve along a straight line
	{
		Name: "straight_quad",
		Path: (&path.Data{}).
			MoveTo(pt(2, 32)).
			QuadTo(pt(32, 32), pt(62, 32)),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 0, 10, 10),
		Want:   Expectation{Dashes: 3, Length: 30},
	},

	// cubic curve along a straight line
	{
		Name: "straight_cubic",
		Path: (&path.Data{}).
			MoveTo(pt(2, 32)).
			CubeTo(pt(22, 32), pt(42, 32), pt(62, 32)),
		Width:  64,
		Height: 64,
		Op:     roundStroke(4, 0, 10, 10),
		Want:   Expectation{Dashes: 3, Length: 30},
	},

	// a rounded rectangle: lines and quarter circles in one contour
	{
		Name:   "rounded_rect",
		Path:   roundedRect(8, 8, 48, 48, 8),
		Width:  64,
		Height: 64,
		Op:     roundStroke(2, 0, 4*(32+4*math.Pi)/8, 4*(32+4*math.Pi)/8),
		Want:   Expectation{Dashes: 4, Length: 2 * (32 + 4*math.Pi)},
	},
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}

// halfCircle builds the upper half of a circle, from right to left.
func halfCircle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy))
}

// roundedRect builds a closed rectangle with corners rounded by quarter
// circles of radius r.
func roundedRect(x, y, w, h, r float64) *path.Data {
	k := r * kappa
	x2, y2 := x+w, y+h

	return (&path.Data{}).
		MoveTo(pt(x+r, y)).
		LineTo(pt(x2-r, y)).
		CubeTo(pt(x2-r+k, y), pt(x2, y+r-k), pt(x2, y+r)).
		LineTo(pt(x2, y2-r)).
		CubeTo(pt(x2, y2-r+k), pt(x2-r+k, y2), pt(x2-r, y2)).
		LineTo(pt(x+r, y2)).
		CubeTo(pt(x+r-k, y2), pt(x, y2-r+k), pt(x, y2-r)).
		LineTo(pt(x, y+r)).
		CubeTo(pt(x, y+r-k), pt(x+r-k, y), pt(x+r, y)).
		Close()
}
