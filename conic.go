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
)

const (
	// conicTolerance is the maximal distance between a conic and the
	// quadratic spline which replaces it when a path is converted to a geom
	// path.
	conicTolerance = 0.25

	// maxConicQuadPow2 limits the conversion of a conic to at most
	// 2^maxConicQuadPow2 quadratic curves.
	maxConicQuadPow2 = 5

	// maxConicDepth limits the subdivision depth used to measure conics.
	maxConicDepth = 16
)

// conic is a rational quadratic Bézier curve in standard form,
// where the end points have weight 1 and the control point has weight W.
type conic struct {
	P0, P1, P2 vec.Vec2
	W          float64
}

// hpoint is a point in homogeneous coordinates.
type hpoint struct {
	x, y, w float64
}

func (a hpoint) lerp(b hpoint, t float64) hpoint {
	s := 1 - t
	return hpoint{
		x: s*a.x + t*b.x,
		y: s*a.y + t*b.y,
		w: s*a.w + t*b.w,
	}
}

func (a hpoint) project() vec.Vec2 {
	return vec.Vec2{X: a.x / a.w, Y: a.y / a.w}
}

func (c conic) homogeneous() (h0, h1, h2 hpoint) {
	h0 = hpoint{c.P0.X, c.P0.Y, 1}
	h1 = hpoint{c.P1.X * c.W, c.P1.Y * c.W, c.W}
	h2 = hpoint{c.P2.X, c.P2.Y, 1}
	return h0, h1, h2
}

// fromHomogeneous returns the conic with the given homogeneous control
// points, normalised to standard form.
func fromHomogeneous(h0, h1, h2 hpoint) conic {
	return conic{
		P0: h0.project(),
		P1: h1.project(),
		P2: h2.project(),
		W:  h1.w / math.Sqrt(h0.w*h2.w),
	}
}

// eval returns the point at parameter t.
func (c conic) eval(t float64) vec.Vec2 {
	s := 1 - t
	b0 := s * s
	b1 := 2 * s * t * c.W
	b2 := t * t
	den := b0 + b1 + b2
	return vec.Vec2{
		X: (b0*c.P0.X + b1*c.P1.X + b2*c.P2.X) / den,
		Y: (b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y) / den,
	}
}

// tangent returns the (unnormalised) direction of the curve at t.
func (c conic) tangent(t float64) vec.Vec2 {
	h0, h1, h2 := c.homogeneous()
	a := h0.lerp(h1, t)
	b := h1.lerp(h2, t)
	d := b.project().Sub(a.project())
	if d.X == 0 && d.Y == 0 {
		d = c.P2.Sub(c.P0)
	}
	return d
}

// split divides the curve at parameter t.
func (c conic) split(t float64) (conic, conic) {
	h0, h1, h2 := c.homogeneous()
	a := h0.lerp(h1, t)
	b := h1.lerp(h2, t)
	m := a.lerp(b, t)
	return fromHomogeneous(h0, a, m), fromHomogeneous(m, b, h2)
}

// subsegment returns the part of the curve between parameters t0 and t1,
// where 0 <= t0 <= t1 <= 1.
func (c conic) subsegment(t0, t1 float64) conic {
	if t0 <= 0 && t1 >= 1 {
		return c
	}
	if t1 <= 0 {
		return conic{P0: c.P0, P1: c.P0, P2: c.P0, W: 1}
	}
	left := c
	if t1 < 1 {
		left, _ = c.split(t1)
	}
	if t0 <= 0 {
		return left
	}
	_, right := left.split(t0 / t1)
	return right
}

// quadPow2 returns the base-2 logarithm of the number of quadratic curves
// needed to approximate c within tol.
func (c conic) quadPow2(tol float64) int {
	if !(tol > 0) || math.IsInf(tol, 0) {
		return 0
	}
	a := c.W - 1
	k := a / (4 * (2 + a))
	x := k * (c.P0.X - 2*c.P1.X + c.P2.X)
	y := k * (c.P0.Y - 2*c.P1.Y + c.P2.Y)
	err := math.Sqrt(x*x + y*y)
	pow2 := 0
	for pow2 < maxConicQuadPow2 && err > tol {
		err *= 0.25
		pow2++
	}
	return pow2
}

// appendQuads appends a quadratic spline approximating c to dst.
// Each curve contributes its control point followed by its end point.
func (c conic) appendQuads(dst []vec.Vec2, tol float64) []vec.Vec2 {
	n := 1 << c.quadPow2(tol)
	for i := range n {
		sub := c.subsegment(float64(i)/float64(n), float64(i+1)/float64(n))
		dst = append(dst, sub.P1, sub.P2)
	}
	return dst
}

// conicPiece gives the arc length from the start of a conic to parameter t.
type conicPiece struct {
	t, dist float64
}

type conicSpan struct {
	c      conic
	t0, t1 float64
	depth  int
}

// conicMeasure measures conics, keeping its work stack between calls.
type conicMeasure struct {
	stack []conicSpan
}

// appendPieces subdivides c until every piece is flat within tol and appends
// the cumulative arc length at the end of each piece to dst. The total
// length of the curve is returned.
func (cm *conicMeasure) appendPieces(dst []conicPiece, c conic, tol float64) ([]conicPiece, float64) {
	cm.stack = append(cm.stack[:0], conicSpan{c: c, t0: 0, t1: 1})
	dist := 0.0
	for len(cm.stack) > 0 {
		s := cm.stack[len(cm.stack)-1]
		cm.stack = cm.stack[:len(cm.stack)-1]

		chord := s.c.P2.Sub(s.c.P0).Length()
		poly := s.c.P1.Sub(s.c.P0).Length() + s.c.P2.Sub(s.c.P1).Length()
		if s.depth >= maxConicDepth || !(poly-chord > tol) {
			dist += (2*chord + poly) / 3
			dst = append(dst, conicPiece{t: s.t1, dist: dist})
			continue
		}

		left, right := s.c.split(0.5)
		tm := (s.t0 + s.t1) / 2
		cm.stack = append(cm.stack,
			conicSpan{c: right, t0: tm, t1: s.t1, depth: s.depth + 1},
			conicSpan{c: left, t0: s.t0, t1: tm, depth: s.depth + 1})
	}
	return dst, dist
}

// pieceParam converts a distance along a conic into a curve parameter,
// using the pieces computed by appendPieces.
func pieceParam(pieces []conicPiece, d float64) float64 {
	prevT, prevD := 0.0, 0.0
	for _, p := range pieces {
		if p.dist >= d {
			if p.dist == prevD {
				return p.t
			}
			return prevT + (p.t-prevT)*(d-prevD)/(p.dist-prevD)
		}
		prevT, prevD = p.t, p.dist
	}
	return 1
}
