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

// Package dash applies dash patterns to vector paths.
//
// A [Filter] converts a path into a new path which contains only the "on"
// parts of a dash pattern. Curves are split at arc length positions, dashes
// which cross the start of a closed contour are joined into one piece, and
// the amount of work per call is bounded, so that malicious or degenerate
// inputs cannot exhaust time or memory.
package dash

//go:generate go run ./testcases/export

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Style describes how a path is painted.
type Style int

const (
	StyleStroke Style = iota
	StyleFill
	StyleStrokeAndFill
)

func (s Style) String() string {
	switch s {
	case StyleStroke:
		return "stroke"
	case StyleFill:
		return "fill"
	case StyleStrokeAndFill:
		return "stroke and fill"
	}
	return "unknown"
}

const (
	// DefaultMaxDashCount is the default limit for the estimated number of
	// dashes produced by one call to Filter.Apply.
	DefaultMaxDashCount = 1e6

	defaultMiterLimit = 10.0
)

// Filter applies a dash pattern to paths.
//
// A Filter can be reused for many paths. It keeps internal buffers which
// grow but never shrink. A Filter must not be used concurrently.
type Filter struct {
	// Width is the stroke width. Zero selects hairlines.
	Width float64

	// Cap is the style of the ends of dashes.
	Cap graphics.LineCapStyle

	// Join is the style used where segments of a dash meet.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins.
	MiterLimit float64

	// Style is the painting style of the path. Only stroked paths can be
	// dashed.
	Style Style

	// Dash lists alternating "on" and "off" lengths.
	Dash []float64

	// DashPhase is the distance into the pattern at which each contour
	// starts. Negative values count backwards from the end of the pattern.
	DashPhase float64

	// Cull, if non-nil, is the visible area. Single lines and axis-aligned
	// rectangles are shortened to the part which can be visible in this
	// area before dashing.
	Cull *rect.Rect

	// MaxDashCount limits the estimated number of dashes. Apply fails if a
	// path would produce more dashes than this.
	MaxDashCount float64

	// Accuracy is the maximal error of arc length computations.
	Accuracy float64

	meas   Measure
	culled Path
	line   lineDasher
}

// NewFilter returns a Filter for stroked paths with width 1, butt caps and
// miter joins. The dash pattern must be set before use.
func NewFilter() *Filter {
	return &Filter{
		Width:        1.0,
		Cap:          graphics.LineCapButt,
		Join:         graphics.LineJoinMiter,
		MiterLimit:   defaultMiterLimit,
		Style:        StyleStroke,
		MaxDashCount: DefaultMaxDashCount,
		Accuracy:     DefaultAccuracy,
	}
}

func (f *Filter) maxDashCount() float64 {
	if f.MaxDashCount > 0 {
		return f.MaxDashCount
	}
	return DefaultMaxDashCount
}

// Apply appends the dashed version of src to dst. The paths must be
// different.
//
// On success, Apply returns the style in which dst must be painted and
// true. This is StyleFill if the dashes were emitted as filled outlines,
// and the original stroke style otherwise. Apply fails, leaving dst
// unchanged, if the style is not StyleStroke, if the dash pattern is
// invalid, or if the path would produce more than MaxDashCount dashes.
func (f *Filter) Apply(dst, src *Path) (Style, bool) {
	if f.Style != StyleStroke {
		return f.Style, false
	}
	if !IsValid(f.DashPhase, f.Dash) {
		return f.Style, false
	}
	st := resolve(f.DashPhase, f.Dash)

	if f.Cull != nil {
		f.culled.Reset()
		if f.cull(&f.culled, src, st) {
			src = &f.culled
		}
	}

	mark := dst.mark()
	style := f.Style
	fast := f.line.init(dst, src, f, st)
	if fast {
		style = StyleFill
	}

	f.meas.Accuracy = f.Accuracy
	f.meas.Reset(src)
	defer f.meas.Reset(nil)

	count := len(f.Dash)
	maxCount := f.maxDashCount()
	var dashCount float64
	for f.meas.Next() {
		length := f.meas.Length()
		closed := f.meas.IsClosed()

		contourDashes := length * float64(count/2) / st.cycle
		dashCount += contourDashes
		if !(dashCount <= maxCount) {
			dst.truncate(mark)
			return f.Style, false
		}
		if !fast {
			// a MoveTo and at least one drawing command per dash
			dst.Grow(2 * int(math.Ceil(contourDashes)))
		}

		skipFirst := closed
		added := false
		index := st.index
		run := st.initial
		distance := 0.0
		for distance < length {
			added = false
			if index%2 == 0 && !skipFirst {
				added = true
				if fast {
					f.line.addSegment(dst, distance, distance+run)
				} else {
					f.meas.Segment(distance, distance+run, dst, true)
				}
			}
			distance += run
			skipFirst = false

			index++
			if index == count {
				index = 0
			}
			run = f.Dash[index]
		}

		// The dash skipped at the start of a closed contour is emitted
		// last, joined to the final dash if that one reaches the end.
		if closed && st.index%2 == 0 {
			f.meas.Segment(0, st.initial, dst, !added)
		}
	}

	return style, true
}
