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

package dash

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// lineDasher turns the dashes of a single straight line directly into
// filled quadrilaterals, bypassing the general stroker.
type lineDasher struct {
	A      vec.Vec2 // start point
	T      vec.Vec2 // unit tangent
	N      vec.Vec2 // normal, scaled to half the line width
	Length float64
}

// isLine reports whether p consists of exactly one straight line segment.
func (p *Path) isLine() (a, b vec.Vec2, ok bool) {
	if len(p.Verbs) != 2 || p.Verbs[0] != VerbMoveTo || p.Verbs[1] != VerbLineTo {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	return p.Points[0], p.Points[1], true
}

// init prepares the fast path for src. It returns false if the fast path
// cannot be used. On success, room for all dashes is reserved in dst.
func (ld *lineDasher) init(dst, src *Path, f *Filter, st resolved) bool {
	if f.Style != StyleStroke || !(f.Width > 0) || f.Cap != graphics.LineCapButt {
		return false
	}
	a, b, ok := src.isLine()
	if !ok {
		return false
	}

	d := b.Sub(a)
	length := d.Length()
	if !(length > 0) || math.IsInf(length, 0) {
		return false
	}
	t := d.Mul(1 / length)
	if math.IsNaN(t.X) || math.IsNaN(t.Y) || math.IsInf(t.X, 0) || math.IsInf(t.Y, 0) {
		return false
	}

	estimate := math.Ceil(length * float64(len(f.Dash)/2) / st.cycle)
	estimate = min(estimate, f.maxDashCount())
	if math.IsNaN(estimate) {
		return false
	}

	ld.A = a
	ld.T = t
	ld.N = vec.Vec2{X: -t.Y, Y: t.X}.Mul(f.Width / 2)
	ld.Length = length

	// MoveTo, three LineTo and Close per dash
	if estimate < f.maxDashCount() {
		dst.Grow(5 * int(estimate))
	}
	return true
}

// addSegment appends the dash covering distances d0 to d1 along the line.
func (ld *lineDasher) addSegment(dst *Path, d0, d1 float64) {
	d1 = min(d1, ld.Length)
	p0 := ld.A.Add(ld.T.Mul(d0))
	p1 := ld.A.Add(ld.T.Mul(d1))
	dst.MoveTo(p0.Add(ld.N)).
		LineTo(p1.Add(ld.N)).
		LineTo(p1.Sub(ld.N)).
		LineTo(p0.Sub(ld.N)).
		Close()
}
