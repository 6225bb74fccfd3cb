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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestFromGeom(t *testing.T) {
	var src path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdLineTo, []vec.Vec2{{X: 7, Y: 7}}) &&
			yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 10, Y: 0}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: 10, Y: 10}, {X: 0, Y: 10}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: -5, Y: 10}, {X: -5, Y: 0}, {X: 0, Y: 0}}) &&
			yield(path.CmdClose, nil)
	}
	want := &Path{
		Verbs:  []Verb{VerbMoveTo, VerbLineTo, VerbQuadTo, VerbCubeTo, VerbClose},
		Points: []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10), pt(-5, 10), pt(-5, 0), pt(0, 0)},
	}
	if d := cmp.Diff(want, FromGeom(src)); d != "" {
		t.Errorf("FromGeom (-want +got):\n%s", d)
	}

	data := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		QuadTo(pt(10, 10), pt(0, 10)).
		CubeTo(pt(-5, 10), pt(-5, 0), pt(0, 0)).
		Close()
	if d := cmp.Diff(want, FromData(data)); d != "" {
		t.Errorf("FromData (-want +got):\n%s", d)
	}
}

func TestData(t *testing.T) {
	p := &Path{}
	p.MoveTo(pt(0, 0)).
		LineTo(pt(1, 0)).
		ConicTo(pt(1, 1), pt(0, 1), math.Sqrt2/2).
		CubeTo(pt(-0.5, 1), pt(-0.5, 0), pt(0, 0)).
		Close()

	d := p.Data()
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose}
	if !slices.Equal(d.Cmds, wantCmds) {
		t.Errorf("commands %v, want %v", d.Cmds, wantCmds)
	}
	if d.Coords[3] != pt(0, 1) {
		t.Errorf("conic ends at %v", d.Coords[3])
	}

	back := FromData(d)
	if !slices.Equal(back.Points, []vec.Vec2{pt(0, 0), pt(1, 0), d.Coords[2], pt(0, 1), pt(-0.5, 1), pt(-0.5, 0), pt(0, 0)}) {
		t.Errorf("round trip gave %v", back.Points)
	}
}

func TestConicToDegenerate(t *testing.T) {
	cases := []struct {
		name  string
		w     float64
		verbs []Verb
	}{
		{"conic", 0.5, []Verb{VerbMoveTo, VerbConicTo}},
		{"quadratic", 1, []Verb{VerbMoveTo, VerbQuadTo}},
		{"zero", 0, []Verb{VerbMoveTo, VerbLineTo}},
		{"negative", -1, []Verb{VerbMoveTo, VerbLineTo}},
		{"NaN", math.NaN(), []Verb{VerbMoveTo, VerbLineTo}},
		{"infinite", math.Inf(1), []Verb{VerbMoveTo, VerbLineTo, VerbLineTo}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := (&Path{}).MoveTo(pt(0, 0)).ConicTo(pt(1, 1), pt(2, 0), tc.w)
			if !slices.Equal(p.Verbs, tc.verbs) {
				t.Errorf("verbs %v, want %v", p.Verbs, tc.verbs)
			}
			last, _ := p.LastPt()
			if last != pt(2, 0) {
				t.Errorf("ends at %v", last)
			}
		})
	}
}

func TestPathHelpers(t *testing.T) {
	p := square(1, 2, 3)
	p.MoveTo(pt(-1, 0)).LineTo(pt(0, 9))

	if n := p.NumContours(); n != 2 {
		t.Errorf("NumContours() = %d", n)
	}
	if b := p.Bounds(); b != (rect.Rect{LLx: -1, LLy: 0, URx: 4, URy: 9}) {
		t.Errorf("Bounds() = %v", b)
	}

	q := p.Clone()
	q.Points[0] = pt(100, 100)
	if p.Points[0] != pt(1, 2) {
		t.Error("Clone shares storage")
	}

	m := p.mark()
	p.LineTo(pt(5, 5)).ConicTo(pt(6, 6), pt(7, 5), 0.5)
	p.truncate(m)
	if last, _ := p.LastPt(); last != pt(0, 9) || len(p.Weights) != 0 {
		t.Errorf("truncate left %v, %v", p.Verbs, p.Weights)
	}

	p.Reset()
	if !p.IsEmpty() {
		t.Error("Reset left verbs")
	}
	if _, ok := p.LastPt(); ok {
		t.Error("empty path has a last point")
	}
}
