// svg2font - convert SVG icons into a TrueType icon font
// Copyright (C) 2026  The svg2font Authors
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

package quadratic

import "math"

const (
	// DefaultTolerance is the maximal error, in font design units, accepted
	// for a single quadratic segment.
	DefaultTolerance = 1.0

	// DefaultMaxDepth limits the number of times a cubic is bisected.
	DefaultMaxDepth = 16
)

// Approximate returns a sequence of quadratic curves which together follow
// the cubic c.
//
// The cubic is compared to the quadratic with the same end points whose
// control point is the average of the two cubic control points.  If the two
// curves differ by less than tolerance at t=0.5 (measured as L1 distance),
// the quadratic is used.  Otherwise the cubic is split in half and both
// halves are approximated separately.  After maxDepth splits the candidate
// quadratic is accepted regardless of its error.
//
// The result always contains at least one curve.
func Approximate(c Cubic, tolerance float64, maxDepth int) []Quad {
	return AppendApproximation(nil, c, tolerance, maxDepth)
}

// AppendApproximation is like Approximate, but appends the quadratic curves
// to qq.
func AppendApproximation(qq []Quad, c Cubic, tolerance float64, maxDepth int) []Quad {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return appendApprox(qq, c, tolerance, maxDepth)
}

func appendApprox(qq []Quad, c Cubic, tolerance float64, depth int) []Quad {
	q, e := Candidate(c)
	if e < tolerance || depth == 0 {
		return append(qq, q)
	}
	left, right := c.Split()
	qq = appendApprox(qq, left, tolerance, depth-1)
	return appendApprox(qq, right, tolerance, depth-1)
}

// Candidate returns the single quadratic used to approximate c, together
// with its L1 distance from c at t=0.5.
func Candidate(c Cubic) (Quad, float64) {
	q := Quad{
		P0: c.P0,
		P1: midpoint(c.P1, c.P2),
		P2: c.P3,
	}
	want := c.Eval(0.5)
	got := q.Eval(0.5)
	e := math.Abs(want.X-got.X) + math.Abs(want.Y-got.Y)
	return q, e
}
