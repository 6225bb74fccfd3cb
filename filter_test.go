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
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// hairlineFilter returns a Filter which always uses the general dash loop.
func hairlineFilter(phase float64, intervals ...float64) *Filter {
	f := NewFilter()
	f.Width = 0
	f.Dash = intervals
	f.DashPhase = phase
	return f
}

func hline(x0, x1, y float64) *Path {
	return (&Path{}).MoveTo(pt(x0, y)).LineTo(pt(x1, y))
}

// subpaths splits p into the point lists of its contours.
func subpaths(p *Path) [][]vec.Vec2 {
	var res [][]vec.Vec2
	ptIdx := 0
	for _, v := range p.Verbs {
		pts := p.Points[ptIdx : ptIdx+numPoints[v]]
		ptIdx += numPoints[v]
		if v == VerbMoveTo {
			res = append(res, nil)
		}
		if len(res) > 0 {
			res[len(res)-1] = append(res[len(res)-1], pts...)
		}
	}
	return res
}

func TestApplyLine(t *testing.T) {
	cases := []struct {
		name      string
		phase     float64
		intervals []float64
		want      [][]vec.Vec2
	}{
		{
			name:      "phase 0",
			intervals: []float64{2, 2},
			want: [][]vec.Vec2{
				{pt(0, 0), pt(2, 0)},
				{pt(4, 0), pt(6, 0)},
				{pt(8, 0), pt(10, 0)},
			},
		},
		{
			name:      "phase 1",
			phase:     1,
			intervals: []float64{2, 2},
			want: [][]vec.Vec2{
				{pt(0, 0), pt(1, 0)},
				{pt(3, 0), pt(5, 0)},
				{pt(7, 0), pt(9, 0)},
			},
		},
		{
			name:      "negative phase",
			phase:     -3,
			intervals: []float64{2, 2},
			want: [][]vec.Vec2{
				{pt(0, 0), pt(1, 0)},
				{pt(3, 0), pt(5, 0)},
				{pt(7, 0), pt(9, 0)},
			},
		},
		{
			name:      "phase on boundary",
			phase:     2,
			intervals: []float64{2, 2},
			want: [][]vec.Vec2{
				{pt(2, 0), pt(4, 0)},
				{pt(6, 0), pt(8, 0)},
			},
		},
		{
			name:      "no gaps",
			intervals: []float64{10, 0},
			want: [][]vec.Vec2{
				{pt(0, 0), pt(10, 0)},
			},
		},
		{
			name:      "zero length dashes",
			intervals: []float64{0, 4},
			want: [][]vec.Vec2{
				{pt(0, 0), pt(0, 0)},
				{pt(4, 0), pt(4, 0)},
				{pt(8, 0), pt(8, 0)},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := hairlineFilter(tc.phase, tc.intervals...)
			dst := &Path{}
			style, ok := f.Apply(dst, hline(0, 10, 0))
			if !ok {
				t.Fatal("Apply failed")
			}
			if style != StyleStroke {
				t.Errorf("style %v, want %v", style, StyleStroke)
			}
			if d := cmp.Diff(tc.want, subpaths(dst)); d != "" {
				t.Errorf("dashes (-want +got):\n%s", d)
			}
		})
	}
}

func TestApplyDashCount(t *testing.T) {
	f := hairlineFilter(0, 1, 1)
	dst := &Path{}
	for n := 1; n <= 20; n++ {
		dst.Reset()
		if _, ok := f.Apply(dst, hline(0, float64(n), 0)); !ok {
			t.Fatalf("length %d: Apply failed", n)
		}
		if got, want := dst.NumContours(), (n+1)/2; got != want {
			t.Errorf("length %d: %d dashes, want %d", n, got, want)
		}
	}
}

func TestApplyFullCoverage(t *testing.T) {
	f := hairlineFilter(0, 4, 0)
	dst := &Path{}
	if _, ok := f.Apply(dst, hline(0, 10, 0)); !ok {
		t.Fatal("Apply failed")
	}
	pos := 0.0
	for _, sp := range subpaths(dst) {
		if sp[0].X != pos {
			t.Errorf("dash starts at %g, want %g", sp[0].X, pos)
		}
		pos = sp[len(sp)-1].X
	}
	if pos != 10 {
		t.Errorf("dashes end at %g, want 10", pos)
	}
}

func TestApplyClosed(t *testing.T) {
	cases := []struct {
		name  string
		phase float64
		want  [][]vec.Vec2
	}{
		{
			// the first dash is emitted last, as a separate subpath
			name: "phase 0",
			want: [][]vec.Vec2{
				{pt(0, 0), pt(10, 0), pt(10, 10)},
			},
		},
		{
			// the dash crossing the start point is one piece
			name:  "phase P/4",
			phase: 10,
			want: [][]vec.Vec2{
				{pt(0, 10), pt(0, 0), pt(10, 0)},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := hairlineFilter(tc.phase, 20, 20)
			dst := &Path{}
			if _, ok := f.Apply(dst, square(0, 0, 10)); !ok {
				t.Fatal("Apply failed")
			}
			if d := cmp.Diff(tc.want, subpaths(dst)); d != "" {
				t.Errorf("dashes (-want +got):\n%s", d)
			}
		})
	}
}

func TestApplyClosedSeam(t *testing.T) {
	// 4 dashes of length 5, one of them crossing the start point
	f := hairlineFilter(2.5, 5, 5)
	dst := &Path{}
	if _, ok := f.Apply(dst, square(0, 0, 10)); !ok {
		t.Fatal("Apply failed")
	}
	sps := subpaths(dst)
	if len(sps) != 4 {
		t.Fatalf("got %d dashes, want 4", len(sps))
	}
	seam := sps[len(sps)-1]
	want := []vec.Vec2{pt(0, 2.5), pt(0, 0), pt(2.5, 0)}
	if d := cmp.Diff(want, seam, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("seam dash (-want +got):\n%s", d)
	}
}

func TestApplyCircle(t *testing.T) {
	const r = 10
	f := hairlineFilter(0, 5, 5)
	f.Accuracy = 1e-6
	dst := &Path{}
	if _, ok := f.Apply(dst, circle(0, 0, r)); !ok {
		t.Fatal("Apply failed")
	}

	// dashes at [0, 5], [10, 15], ..., [60, 2πr], where the first and the
	// last dash are joined
	if n := dst.NumContours(); n != 6 {
		t.Errorf("got %d dashes, want 6", n)
	}
	total := 0.0
	m := NewMeasure(dst, 1e-6)
	for m.Next() {
		total += m.Length()
	}
	want := 6*5 + (2*math.Pi*r - 60)
	if math.Abs(total-want) > 1e-2 {
		t.Errorf("total dash length %g, want %g", total, want)
	}
	for _, p := range dst.Points {
		if math.Abs(p.Length()-r) > 1e-9 && p.Length() < r {
			t.Errorf("point %v inside the circle", p)
		}
	}
}

func TestApplyFailures(t *testing.T) {
	src := hline(0, 1000, 0)

	t.Run("fill", func(t *testing.T) {
		f := hairlineFilter(0, 1, 1)
		f.Style = StyleFill
		if _, ok := f.Apply(&Path{}, src); ok {
			t.Error("fill was dashed")
		}
		f.Style = StyleStrokeAndFill
		if _, ok := f.Apply(&Path{}, src); ok {
			t.Error("stroke and fill was dashed")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		f := hairlineFilter(0, 1, -1)
		if _, ok := f.Apply(&Path{}, src); ok {
			t.Error("invalid pattern was used")
		}
	})

	t.Run("governor", func(t *testing.T) {
		f := hairlineFilter(0, 1, 1)
		f.MaxDashCount = 100
		dst := hline(-1, -2, 0)
		before := dst.Clone()
		if _, ok := f.Apply(dst, src); ok {
			t.Error("500 dashes were produced")
		}
		if d := cmp.Diff(before, dst, cmpopts.EquateEmpty()); d != "" {
			t.Errorf("dst modified (-want +got):\n%s", d)
		}

		f.MaxDashCount = 1000
		if _, ok := f.Apply(dst, src); !ok {
			t.Error("500 dashes were rejected")
		}
	})

	t.Run("tiny intervals", func(t *testing.T) {
		f := NewFilter()
		f.Dash = []float64{1e-6, 1e-6}
		dst := &Path{}
		if _, ok := f.Apply(dst, src); ok {
			t.Error("5e8 dashes were produced")
		}
		if !dst.IsEmpty() {
			t.Errorf("dst has %d verbs", len(dst.Verbs))
		}
	})

	t.Run("many contours", func(t *testing.T) {
		f := hairlineFilter(0, 1, 1)
		f.MaxDashCount = 100
		p := &Path{}
		for i := range 10 {
			p.MoveTo(pt(0, float64(i))).LineTo(pt(30, float64(i)))
		}
		if _, ok := f.Apply(&Path{}, p); ok {
			t.Error("150 dashes were produced")
		}
	})
}

func TestApplyFastPath(t *testing.T) {
	f := NewFilter()
	f.Width = 2
	f.Dash = []float64{2, 2}
	dst := &Path{}
	style, ok := f.Apply(dst, hline(0, 10, 0))
	if !ok {
		t.Fatal("Apply failed")
	}
	if style != StyleFill {
		t.Errorf("style %v, want %v", style, StyleFill)
	}
	want := [][]vec.Vec2{
		{pt(0, 1), pt(2, 1), pt(2, -1), pt(0, -1)},
		{pt(4, 1), pt(6, 1), pt(6, -1), pt(4, -1)},
		{pt(8, 1), pt(10, 1), pt(10, -1), pt(8, -1)},
	}
	if d := cmp.Diff(want, subpaths(dst)); d != "" {
		t.Errorf("dashes (-want +got):\n%s", d)
	}
	closes := 0
	for _, v := range dst.Verbs {
		if v == VerbClose {
			closes++
		}
	}
	if closes != 3 {
		t.Errorf("%d closed contours, want 3", closes)
	}

	// other caps use the stroker
	f.Cap = graphics.LineCapRound
	dst.Reset()
	style, _ = f.Apply(dst, hline(0, 10, 0))
	if style != StyleStroke || dst.NumContours() != 3 || len(dst.Verbs) != 6 {
		t.Errorf("round caps: style %v, verbs %v", style, dst.Verbs)
	}
}

func TestApplyCullLine(t *testing.T) {
	src := hline(-1000, 1000, 5)

	full := hairlineFilter(1.5, 3, 2)
	full.Join = graphics.LineJoinBevel
	ref := &Path{}
	full.Apply(ref, src)

	culled := hairlineFilter(1.5, 3, 2)
	culled.Join = graphics.LineJoinBevel
	culled.Cull = &rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}
	dst := &Path{}
	if _, ok := culled.Apply(dst, src); !ok {
		t.Fatal("Apply failed")
	}

	got := subpaths(dst)
	if len(got) == 0 || len(got) > 30 {
		t.Fatalf("got %d dashes", len(got))
	}
	if got[0][0].X != -5 {
		t.Errorf("culled line starts at %g, want -5", got[0][0].X)
	}
	compareVisible(t, *culled.Cull, got, subpaths(ref))
}

func TestApplyCullRect(t *testing.T) {
	src := square(0, 0, 1000)

	full := hairlineFilter(0, 5, 5)
	full.Join = graphics.LineJoinBevel
	ref := &Path{}
	full.Apply(ref, src)

	culled := hairlineFilter(0, 5, 5)
	culled.Join = graphics.LineJoinBevel
	culled.Cull = &rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}
	dst := &Path{}
	if _, ok := culled.Apply(dst, src); !ok {
		t.Fatal("Apply failed")
	}

	got := subpaths(dst)
	if len(got) != 22 {
		t.Errorf("got %d dashes, want 22", len(got))
	}
	compareVisible(t, *culled.Cull, got, subpaths(ref))
}

func TestApplyCullOutside(t *testing.T) {
	f := hairlineFilter(0, 1, 1)
	f.Cull = &rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}
	for _, src := range []*Path{hline(200, 300, 500), hline(-50, 50, -20), square(-500, -500, 2000)} {
		dst := &Path{}
		if _, ok := f.Apply(dst, src); !ok {
			t.Error("Apply failed")
		}
		if !dst.IsEmpty() {
			t.Errorf("invisible path produced %d verbs", len(dst.Verbs))
		}
	}
}

// compareVisible checks that the dashes starting inside r are the same in
// got and ref.
func compareVisible(t *testing.T, r rect.Rect, got, ref [][]vec.Vec2) {
	t.Helper()
	visible := func(sps [][]vec.Vec2) []vec.Vec2 {
		var res []vec.Vec2
		for _, sp := range sps {
			p := sp[0]
			if p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy {
				res = append(res, sp[0], sp[len(sp)-1])
			}
		}
		slices.SortFunc(res, func(a, b vec.Vec2) int {
			switch {
			case a.X < b.X || a.X == b.X && a.Y < b.Y:
				return -1
			case a == b:
				return 0
			}
			return 1
		})
		return res
	}
	want := visible(ref)
	if len(want) == 0 {
		t.Fatal("no visible dashes")
	}
	if d := cmp.Diff(want, visible(got), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("visible dashes (-want +got):\n%s", d)
	}
}
