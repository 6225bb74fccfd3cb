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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const (
	// zeroLengthNudge is added to the end of a culled line whose end points
	// coincide, so that the stroker still sees a direction.
	zeroLengthNudge = 1.0 / (1 << 20)

	// cornerFraction is the fraction of the adjacent edges used for the
	// small corner contour which restores the first join of a culled
	// rectangle.
	cornerFraction = 1.0 / 4096
)

// isRect reports whether p is a single closed, axis-aligned rectangle. The
// rectangle must be given as MoveTo, three or four LineTo and Close, with
// edges alternating between horizontal and vertical.
func (p *Path) isRect() (corners [4]vec.Vec2, ok bool) {
	nv := len(p.Verbs)
	if nv != 5 && nv != 6 {
		return corners, false
	}
	if p.Verbs[0] != VerbMoveTo || p.Verbs[nv-1] != VerbClose {
		return corners, false
	}
	for _, v := range p.Verbs[1 : nv-1] {
		if v != VerbLineTo {
			return corners, false
		}
	}
	copy(corners[:], p.Points[:4])
	if nv == 6 && p.Points[4] != p.Points[0] {
		return corners, false
	}

	for i := range 4 {
		a, b := corners[i], corners[(i+1)%4]
		horizontal := a.Y == b.Y && a.X != b.X
		vertical := a.X == b.X && a.Y != b.Y
		if horizontal == vertical {
			return corners, false
		}
		c := corners[(i+2)%4]
		if horizontal == (b.Y == c.Y) {
			return corners, false
		}
	}
	return corners, true
}

// cullBounds returns the cull rectangle grown by the distance a stroke can
// reach beyond its path.
func (f *Filter) cullBounds() rect.Rect {
	r := f.Width / 2
	if r == 0 {
		r = 1
	}
	if f.Join == graphics.LineJoinMiter {
		r *= max(f.MiterLimit, 1)
	}
	b := *f.Cull
	b.LLx -= r
	b.LLy -= r
	b.URx += r
	b.URy += r
	return b
}

// cull replaces src by a shorter, equivalent path in dst, if src is a
// single line or an axis-aligned rectangle. Pieces which cannot become
// visible inside the cull rectangle are removed, keeping the positions of
// all dashes unchanged. The return value reports whether dst should be
// used in place of src.
func (f *Filter) cull(dst, src *Path, st resolved) bool {
	bounds := f.cullBounds()
	if a, b, ok := src.isLine(); ok {
		a, b, visible, ok := clipEdge(a, b, bounds, st.cycle, 0)
		if !ok {
			return false
		}
		if visible {
			dst.MoveTo(a).LineTo(b)
		}
		return true
	}
	if corners, ok := src.isRect(); ok {
		f.cullRect(dst, corners, bounds, st)
		return true
	}
	return false
}

func (f *Filter) cullRect(dst *Path, corners [4]vec.Vec2, bounds rect.Rect, st resolved) {
	var accum float64
	for i := range 4 {
		a, b := corners[i], corners[(i+1)%4]
		priorPhase := math.Mod(accum, st.cycle)
		if a2, b2, visible, _ := clipEdge(a, b, bounds, st.cycle, priorPhase); visible {
			if last, ok := dst.LastPt(); !ok || last != a2 {
				dst.MoveTo(a2)
			}
			dst.LineTo(b2)
		}
		accum += math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
	}

	if dst.IsEmpty() || st.index%2 != 0 {
		return
	}

	// Find the interval in which the pattern ends after one perimeter.
	endPhase := math.Mod(st.phase+accum, st.cycle)
	index := 0
	for index < len(f.Dash) && endPhase > f.Dash[index] {
		endPhase -= f.Dash[index]
		index++
	}
	if index == len(f.Dash) {
		return
	}
	if (index%2 == 0) == (endPhase > 0) {
		mid := corners[0]
		dst.MoveTo(mid.Sub(mid.Sub(corners[3]).Mul(cornerFraction))).
			LineTo(mid).
			LineTo(mid.Add(corners[1].Sub(mid).Mul(cornerFraction)))
	}
}

func coord(v vec.Vec2, axis int) float64 {
	if axis == 0 {
		return v.X
	}
	return v.Y
}

func setCoord(v vec.Vec2, axis int, x float64) vec.Vec2 {
	if axis == 0 {
		v.X = x
	} else {
		v.Y = x
	}
	return v
}

func axisRange(b rect.Rect, axis int) (lo, hi float64) {
	if axis == 0 {
		return b.LLx, b.URx
	}
	return b.LLy, b.URy
}

// clipEdge shortens the axis-aligned line from a to b to the part which can
// be visible inside bounds. The ends are only moved by whole multiples of
// cycle, and the new start is moved back by priorPhase, so that the dash
// pattern stays in place.
//
// If the line is not axis-aligned, ok is false. If no part of the line is
// inside the bounds, visible is false.
func clipEdge(a, b vec.Vec2, bounds rect.Rect, cycle, priorPhase float64) (a2, b2 vec.Vec2, visible, ok bool) {
	var axis int
	switch {
	case a.Y == b.Y && a.X != b.X:
		axis = 0
	case a.X == b.X && a.Y != b.Y:
		axis = 1
	default:
		return a, b, false, false
	}

	olo, ohi := axisRange(bounds, 1-axis)
	if c := coord(a, 1-axis); c < olo || c > ohi {
		return a, b, false, true
	}

	lo, hi := axisRange(bounds, axis)
	v0, v1 := coord(a, axis), coord(b, axis)
	swapped := v1 < v0
	if swapped {
		v0, v1 = v1, v0
	}
	if v1 < lo || v0 > hi {
		return a, b, false, true
	}

	if v0 < lo {
		v0 = lo - math.Mod(lo-v0, cycle)
		if !swapped {
			v0 -= priorPhase
		}
	}
	if v1 > hi {
		v1 = hi + math.Mod(v1-hi, cycle)
		if swapped {
			v1 += priorPhase
		}
	}
	if swapped {
		v0, v1 = v1, v0
	}

	a2 = setCoord(a, axis, v0)
	b2 = setCoord(b, axis, v1)
	if a2 == b2 {
		b2 = setCoord(b2, axis, v1+zeroLengthNudge)
	}
	return a2, b2, true, true
}
