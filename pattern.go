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

import "math"

// IsValid reports whether intervals and phase describe a usable dash
// pattern: an even number of at least two intervals, none of them negative,
// with a finite, positive sum, and a finite phase.
func IsValid(phase float64, intervals []float64) bool {
	if len(intervals) < 2 || len(intervals)%2 != 0 {
		return false
	}
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return false
	}
	sum := 0.0
	for _, l := range intervals {
		if !(l >= 0) {
			return false
		}
		sum += l
	}
	return sum > 0 && !math.IsInf(sum, 0)
}

// resolved describes where in a dash pattern a contour starts.
type resolved struct {
	// initial is the remaining length of the interval the pattern starts in.
	initial float64

	// index is the interval the pattern starts in. Even indices are "on",
	// odd indices are "off".
	index int

	// cycle is the sum of all intervals.
	cycle float64

	// phase is the normalised phase, in [0, cycle).
	phase float64
}

// resolve converts a dash phase into a starting interval and the length
// remaining in that interval. The pattern must be valid.
//
// A phase which falls exactly on the end of a non-empty interval starts at
// the beginning of the next interval.
func resolve(phase float64, intervals []float64) resolved {
	cycle := 0.0
	for _, l := range intervals {
		cycle += l
	}

	if phase < 0 {
		phase = -phase
		if phase > cycle {
			phase = math.Mod(phase, cycle)
		}
		phase = cycle - phase
		if phase == cycle {
			phase = 0
		}
	} else if phase >= cycle {
		phase = math.Mod(phase, cycle)
	}

	initial, index := startInterval(phase, intervals)
	return resolved{
		initial: initial,
		index:   index,
		cycle:   cycle,
		phase:   phase,
	}
}

// startInterval finds the interval containing the non-negative phase and
// the length remaining in this interval. If rounding errors place phase
// beyond the end of the pattern, the pattern starts at the beginning.
func startInterval(phase float64, intervals []float64) (float64, int) {
	for i, gap := range intervals {
		if phase > gap || (phase == gap && gap != 0) {
			phase -= gap
			continue
		}
		return gap - phase, i
	}
	return intervals[0], 0
}
