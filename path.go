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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Verb identifies a path construction command.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbConicTo
	VerbCubeTo
	VerbClose
)

// numPoints is the number of points stored for each verb.
var numPoints = [...]int{
	VerbMoveTo:  1,
	VerbLineTo:  1,
	VerbQuadTo:  2,
	VerbConicTo: 2,
	VerbCubeTo:  3,
	VerbClose:   0,
}

func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "M"
	case VerbLineTo:
		return "L"
	case VerbQuadTo:
		return "Q"
	case VerbConicTo:
		return "K"
	case VerbCubeTo:
		return "C"
	case VerbClose:
		return "Z"
	}
	return "?"
}

// Path is a sequence of contours built from lines, quadratic, conic and
// cubic Bézier segments.
//
// Points holds the points of all verbs in order (MoveTo and LineTo store one
// point, QuadTo and ConicTo two, CubeTo three, Close none). Weights holds
// one weight per ConicTo.
//
// The zero value is an empty path, ready to use.
type Path struct {
	Verbs   []Verb
	Points  []vec.Vec2
	Weights []float64
}

// MoveTo starts a new contour at p.
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	p.Verbs = append(p.Verbs, VerbMoveTo)
	p.Points = append(p.Points, pt)
	return p
}

// LineTo appends a straight line to pt.
func (p *Path) LineTo(pt vec.Vec2) *Path {
	p.Verbs = append(p.Verbs, VerbLineTo)
	p.Points = append(p.Points, pt)
	return p
}

// QuadTo appends a quadratic Bézier curve with control point c.
func (p *Path) QuadTo(c, pt vec.Vec2) *Path {
	p.Verbs = append(p.Verbs, VerbQuadTo)
	p.Points = append(p.Points, c, pt)
	return p
}

// ConicTo appends a rational quadratic curve with control point c and
// weight w. A weight of 1 gives a quadratic Bézier curve, weights below 1
// give elliptical arcs and weights above 1 hyperbolic arcs.
//
// Weights which are not positive degrade to a line to pt, infinite weights
// to two lines through c.
func (p *Path) ConicTo(c, pt vec.Vec2, w float64) *Path {
	switch {
	case !(w > 0):
		return p.LineTo(pt)
	case math.IsInf(w, 1):
		return p.LineTo(c).LineTo(pt)
	case w == 1:
		return p.QuadTo(c, pt)
	}
	p.Verbs = append(p.Verbs, VerbConicTo)
	p.Points = append(p.Points, c, pt)
	p.Weights = append(p.Weights, w)
	return p
}

// CubeTo appends a cubic Bézier curve with control points c1 and c2.
func (p *Path) CubeTo(c1, c2, pt vec.Vec2) *Path {
	p.Verbs = append(p.Verbs, VerbCubeTo)
	p.Points = append(p.Points, c1, c2, pt)
	return p
}

// Close closes the current contour.
func (p *Path) Close() *Path {
	p.Verbs = append(p.Verbs, VerbClose)
	return p
}

// Grow makes room for at least n more verbs and n more points without
// reallocation.
func (p *Path) Grow(n int) {
	if n <= 0 {
		return
	}
	p.Verbs = slices.Grow(p.Verbs, n)
	p.Points = slices.Grow(p.Points, n)
}

// Reset removes all contours, keeping the allocated storage.
func (p *Path) Reset() {
	p.Verbs = p.Verbs[:0]
	p.Points = p.Points[:0]
	p.Weights = p.Weights[:0]
}

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool {
	return len(p.Verbs) == 0
}

// LastPt returns the last point of the path.
func (p *Path) LastPt() (vec.Vec2, bool) {
	if len(p.Points) == 0 {
		return vec.Vec2{}, false
	}
	return p.Points[len(p.Points)-1], true
}

// NumContours returns the number of MoveTo commands in the path.
func (p *Path) NumContours() int {
	n := 0
	for _, v := range p.Verbs {
		if v == VerbMoveTo {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of all points, including control points.
func (p *Path) Bounds() rect.Rect {
	if len(p.Points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, pt := range p.Points {
		b.LLx = min(b.LLx, pt.X)
		b.LLy = min(b.LLy, pt.Y)
		b.URx = max(b.URx, pt.X)
		b.URy = max(b.URy, pt.Y)
	}
	return b
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		Verbs:   slices.Clone(p.Verbs),
		Points:  slices.Clone(p.Points),
		Weights: slices.Clone(p.Weights),
	}
}

// FromGeom converts a geom path into a Path.
// Drawing commands which are not preceded by a MoveTo are ignored.
func FromGeom(src path.Path) *Path {
	p := &Path{}
	inSubpath := false
	for cmd, pts := range src {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(pts[0])
			inSubpath = true
		case path.CmdLineTo:
			if inSubpath {
				p.LineTo(pts[0])
			}
		case path.CmdQuadTo:
			if inSubpath {
				p.QuadTo(pts[0], pts[1])
			}
		case path.CmdCubeTo:
			if inSubpath {
				p.CubeTo(pts[0], pts[1], pts[2])
			}
		case path.CmdClose:
			if inSubpath {
				p.Close()
			}
		}
	}
	return p
}

// FromData converts a geom path stored in a path.Data value into a Path.
func FromData(src *path.Data) *Path {
	p := &Path{}
	p.Grow(len(src.Cmds))
	coordIdx := 0
	inSubpath := false
	for _, cmd := range src.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(src.Coords[coordIdx])
			coordIdx++
			inSubpath = true
		case path.CmdLineTo:
			if inSubpath {
				p.LineTo(src.Coords[coordIdx])
			}
			coordIdx++
		case path.CmdQuadTo:
			if inSubpath {
				p.QuadTo(src.Coords[coordIdx], src.Coords[coordIdx+1])
			}
			coordIdx += 2
		case path.CmdCubeTo:
			if inSubpath {
				p.CubeTo(src.Coords[coordIdx], src.Coords[coordIdx+1], src.Coords[coordIdx+2])
			}
			coordIdx += 3
		case path.CmdClose:
			if inSubpath {
				p.Close()
			}
		}
	}
	return p
}

// Data converts the path into a geom path. Conic segments are approximated
// by quadratic splines within [conicTolerance].
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	var current, start vec.Vec2
	ptIdx, wIdx := 0, 0
	var quads []vec.Vec2
	for _, v := range p.Verbs {
		pts := p.Points[ptIdx : ptIdx+numPoints[v]]
		ptIdx += numPoints[v]
		switch v {
		case VerbMoveTo:
			d = d.MoveTo(pts[0])
			start = pts[0]
		case VerbLineTo:
			d = d.LineTo(pts[0])
		case VerbQuadTo:
			d = d.QuadTo(pts[0], pts[1])
		case VerbConicTo:
			c := conic{P0: current, P1: pts[0], P2: pts[1], W: p.Weights[wIdx]}
			wIdx++
			quads = c.appendQuads(quads[:0], conicTolerance)
			for i := 0; i+1 < len(quads); i += 2 {
				d = d.QuadTo(quads[i], quads[i+1])
			}
		case VerbCubeTo:
			d = d.CubeTo(pts[0], pts[1], pts[2])
		case VerbClose:
			d = d.Close()
			current = start
		}
		if len(pts) > 0 {
			current = pts[len(pts)-1]
		}
	}
	return d
}

// pathMark records the lengths of a path's slices, so that everything
// appended afterwards can be dropped again.
type pathMark struct {
	verbs, points, weights int
}

func (p *Path) mark() pathMark {
	return pathMark{len(p.Verbs), len(p.Points), len(p.Weights)}
}

func (p *Path) truncate(m pathMark) {
	p.Verbs = p.Verbs[:m.verbs]
	p.Points = p.Points[:m.points]
	p.Weights = p.Weights[:m.weights]
}
