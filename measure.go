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
	"sort"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

// DefaultAccuracy is the default accuracy of arc length computations, in
// path units.
const DefaultAccuracy = 1e-3

// measuredSegment is one segment of a contour, together with its position
// along the contour.
type measuredSegment struct {
	verb Verb
	pts  [4]vec.Vec2
	w    float64

	// end is the distance from the start of the contour to the end of the
	// segment.
	end float64

	// piece0 and piece1 delimit the arc length table of conic segments
	// in Measure.pieces.
	piece0, piece1 int
}

// Measure iterates over the contours of a path and measures them.
//
// A Measure keeps its internal buffers between contours and between calls
// to Reset; the buffers grow but never shrink.
type Measure struct {
	// Accuracy is the maximal error of arc length computations.
	Accuracy float64

	src      *Path
	verbIdx  int
	ptIdx    int
	wIdx     int
	lastMove vec.Vec2

	segs   []measuredSegment
	pieces []conicPiece
	conics conicMeasure
	length float64
	closed bool
}

// NewMeasure returns a Measure for the contours of p. Call Next to advance
// to the first contour.
func NewMeasure(p *Path, accuracy float64) *Measure {
	m := &Measure{Accuracy: accuracy}
	m.Reset(p)
	return m
}

// Reset restarts the iteration with the contours of p.
func (m *Measure) Reset(p *Path) {
	m.src = p
	m.verbIdx = 0
	m.ptIdx = 0
	m.wIdx = 0
	m.lastMove = vec.Vec2{}
	m.segs = m.segs[:0]
	m.pieces = m.pieces[:0]
	m.length = 0
	m.closed = false
}

// Next advances to the next contour of non-zero length.
// It returns false once all contours have been visited.
func (m *Measure) Next() bool {
	if m.src == nil {
		return false
	}
	for m.verbIdx < len(m.src.Verbs) {
		m.loadContour()
		if m.length > 0 {
			return true
		}
	}
	m.segs = m.segs[:0]
	m.length = 0
	m.closed = false
	return false
}

// Length returns the length of the current contour.
func (m *Measure) Length() float64 {
	return m.length
}

// IsClosed reports whether the current contour ends with a Close command.
func (m *Measure) IsClosed() bool {
	return m.closed
}

func (m *Measure) accuracy() float64 {
	if m.Accuracy > 0 {
		return m.Accuracy
	}
	return DefaultAccuracy
}

// loadContour reads verbs up to the end of the next contour and builds the
// segment table.
func (m *Measure) loadContour() {
	m.segs = m.segs[:0]
	m.pieces = m.pieces[:0]
	m.length = 0
	m.closed = false

	p := m.src
	haveStart := false
	var start, current vec.Vec2
	for m.verbIdx < len(p.Verbs) {
		v := p.Verbs[m.verbIdx]
		if v == VerbMoveTo && haveStart {
			return
		}
		pts := p.Points[m.ptIdx : m.ptIdx+numPoints[v]]
		m.verbIdx++
		m.ptIdx += numPoints[v]

		if !haveStart && v != VerbMoveTo {
			start = m.lastMove
			current = start
		}
		haveStart = true

		switch v {
		case VerbMoveTo:
			start = pts[0]
			current = start
			m.lastMove = start
		case VerbLineTo:
			m.addSegment(VerbLineTo, [4]vec.Vec2{current, pts[0]}, 0)
			current = pts[0]
		case VerbQuadTo:
			m.addSegment(VerbQuadTo, [4]vec.Vec2{current, pts[0], pts[1]}, 0)
			current = pts[1]
		case VerbConicTo:
			w := p.Weights[m.wIdx]
			m.wIdx++
			m.addSegment(VerbConicTo, [4]vec.Vec2{current, pts[0], pts[1]}, w)
			current = pts[1]
		case VerbCubeTo:
			m.addSegment(VerbCubeTo, [4]vec.Vec2{current, pts[0], pts[1], pts[2]}, 0)
			current = pts[2]
		case VerbClose:
			m.addSegment(VerbLineTo, [4]vec.Vec2{current, start}, 0)
			m.closed = true
			return
		}
	}
}

// addSegment measures a segment and appends it to the table.
// Segments of zero length are dropped.
func (m *Measure) addSegment(v Verb, pts [4]vec.Vec2, w float64) {
	seg := measuredSegment{verb: v, pts: pts, w: w}
	var l float64
	switch v {
	case VerbLineTo:
		l = pts[1].Sub(pts[0]).Length()
	case VerbQuadTo, VerbCubeTo:
		l = seg.curve().Arclen(m.accuracy())
	case VerbConicTo:
		seg.piece0 = len(m.pieces)
		m.pieces, l = m.conics.appendPieces(m.pieces, seg.conic(), m.accuracy())
		seg.piece1 = len(m.pieces)
	}
	if !(l > 0) {
		if v == VerbConicTo {
			m.pieces = m.pieces[:seg.piece0]
		}
		return
	}
	m.length += l
	seg.end = m.length
	m.segs = append(m.segs, seg)
}

func toCurvePoint(v vec.Vec2) curve.Point {
	return curve.Point{X: v.X, Y: v.Y}
}

func fromCurvePoint(p curve.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// curve returns the segment as a curve.PathSegment.
// It is only used for quadratic and cubic segments.
func (s *measuredSegment) curve() curve.PathSegment {
	if s.verb == VerbQuadTo {
		return curve.PathSegment{
			Kind: curve.QuadKind,
			P0:   toCurvePoint(s.pts[0]),
			P1:   toCurvePoint(s.pts[1]),
			P2:   toCurvePoint(s.pts[2]),
		}
	}
	return curve.PathSegment{
		Kind: curve.CubicKind,
		P0:   toCurvePoint(s.pts[0]),
		P1:   toCurvePoint(s.pts[1]),
		P2:   toCurvePoint(s.pts[2]),
		P3:   toCurvePoint(s.pts[3]),
	}
}

func (s *measuredSegment) conic() conic {
	return conic{P0: s.pts[0], P1: s.pts[1], P2: s.pts[2], W: s.w}
}

func (m *Measure) segStart(i int) float64 {
	if i == 0 {
		return 0
	}
	return m.segs[i-1].end
}

// locate finds the segment containing distance d and the curve parameter
// of d within this segment. If d falls on the boundary between two
// segments, the earlier segment is used, unless atStart is set.
func (m *Measure) locate(d float64, atStart bool) (int, float64) {
	var i int
	if atStart {
		i = sort.Search(len(m.segs), func(i int) bool { return m.segs[i].end > d })
	} else {
		i = sort.Search(len(m.segs), func(i int) bool { return m.segs[i].end >= d })
	}
	if i >= len(m.segs) {
		i = len(m.segs) - 1
	}
	s := &m.segs[i]
	s0 := m.segStart(i)
	local := d - s0
	l := s.end - s0
	switch {
	case local <= 0:
		return i, 0
	case local >= l:
		return i, 1
	}

	var t float64
	switch s.verb {
	case VerbLineTo:
		t = local / l
	case VerbQuadTo, VerbCubeTo:
		t = s.curve().SolveForArclen(local, m.accuracy())
	case VerbConicTo:
		t = pieceParam(m.pieces[s.piece0:s.piece1], local)
	}
	return i, min(max(t, 0), 1)
}

func (s *measuredSegment) pointAt(t float64) vec.Vec2 {
	switch {
	case t <= 0:
		return s.pts[0]
	case t >= 1:
		return s.endPoint()
	}
	switch s.verb {
	case VerbLineTo:
		return s.pts[0].Add(s.pts[1].Sub(s.pts[0]).Mul(t))
	case VerbConicTo:
		return s.conic().eval(t)
	default:
		return fromCurvePoint(s.curve().Eval(t))
	}
}

func (s *measuredSegment) endPoint() vec.Vec2 {
	switch s.verb {
	case VerbLineTo:
		return s.pts[1]
	case VerbCubeTo:
		return s.pts[3]
	default:
		return s.pts[2]
	}
}

// tangent returns the unnormalised direction of the segment at t.
func (s *measuredSegment) tangent(t float64) vec.Vec2 {
	p := s.pts
	var d vec.Vec2
	switch s.verb {
	case VerbLineTo:
		d = p[1].Sub(p[0])
	case VerbQuadTo:
		d = p[1].Sub(p[0]).Mul(2 * (1 - t)).Add(p[2].Sub(p[1]).Mul(2 * t))
	case VerbConicTo:
		d = s.conic().tangent(t)
	case VerbCubeTo:
		u := 1 - t
		d = p[1].Sub(p[0]).Mul(3 * u * u).
			Add(p[2].Sub(p[1]).Mul(6 * u * t)).
			Add(p[3].Sub(p[2]).Mul(3 * t * t))
	}
	if d.X == 0 && d.Y == 0 {
		d = s.endPoint().Sub(p[0])
	}
	return d
}

// appendPart appends the part of the segment between parameters t0 and t1
// to dst. The current point of dst must be the point at t0.
func (s *measuredSegment) appendPart(dst *Path, t0, t1 float64) {
	if t0 == t1 {
		if last, ok := dst.LastPt(); ok {
			dst.LineTo(last)
		}
		return
	}
	whole := t0 <= 0 && t1 >= 1

	switch s.verb {
	case VerbLineTo:
		dst.LineTo(s.pointAt(t1))
	case VerbQuadTo:
		if whole {
			dst.QuadTo(s.pts[1], s.pts[2])
			return
		}
		sub := s.curve().Subsegment(t0, t1)
		dst.QuadTo(fromCurvePoint(sub.P1), fromCurvePoint(sub.P2))
	case VerbConicTo:
		if whole {
			dst.ConicTo(s.pts[1], s.pts[2], s.w)
			return
		}
		sub := s.conic().subsegment(t0, t1)
		dst.ConicTo(sub.P1, sub.P2, sub.W)
	case VerbCubeTo:
		if whole {
			dst.CubeTo(s.pts[1], s.pts[2], s.pts[3])
			return
		}
		sub := s.curve().Subsegment(t0, t1)
		dst.CubeTo(fromCurvePoint(sub.P1), fromCurvePoint(sub.P2), fromCurvePoint(sub.P3))
	}
}

// Segment appends the part of the current contour between the distances
// start and stop to dst. If startWithMoveTo is set, the part begins with a
// MoveTo, otherwise it continues the last contour of dst.
//
// The start is clamped to 0 and stop to the contour length. If the
// resulting range is empty or invalid, nothing is appended and false is
// returned. A range of length zero appends a zero-length line.
func (m *Measure) Segment(start, stop float64, dst *Path, startWithMoveTo bool) bool {
	if len(m.segs) == 0 {
		return false
	}
	if start < 0 {
		start = 0
	}
	if stop > m.length {
		stop = m.length
	}
	if !(start <= stop) {
		return false
	}

	i0, t0 := m.locate(start, true)
	i1, t1 := m.locate(stop, false)
	if i1 < i0 {
		// stop lies on the boundary before the start segment
		i1, t1 = i0, t0
	}
	if startWithMoveTo {
		dst.MoveTo(m.segs[i0].pointAt(t0))
	}
	if i0 == i1 {
		m.segs[i0].appendPart(dst, t0, t1)
		return true
	}
	m.segs[i0].appendPart(dst, t0, 1)
	for i := i0 + 1; i < i1; i++ {
		m.segs[i].appendPart(dst, 0, 1)
	}
	m.segs[i1].appendPart(dst, 0, t1)
	return true
}

// PosTan returns the position and the unit tangent at distance d along the
// current contour. The distance is clamped to the length of the contour.
func (m *Measure) PosTan(d float64) (pos, tan vec.Vec2, ok bool) {
	if len(m.segs) == 0 || math.IsNaN(d) {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	d = min(max(d, 0), m.length)
	i, t := m.locate(d, false)
	s := &m.segs[i]
	pos = s.pointAt(t)
	dir := s.tangent(t)
	l := dir.Length()
	if !(l > 0) || math.IsInf(l, 0) {
		return pos, vec.Vec2{}, false
	}
	return pos, dir.Mul(1 / l), true
}
