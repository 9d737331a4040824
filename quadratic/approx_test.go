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

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestStraightCubic(t *testing.T) {
	c := Cubic{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 10, Y: 0},
		P2: vec.Vec2{X: 20, Y: 0},
		P3: vec.Vec2{X: 30, Y: 0},
	}
	qq := Approximate(c, DefaultTolerance, DefaultMaxDepth)
	want := []Quad{{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 15, Y: 0},
		P2: vec.Vec2{X: 30, Y: 0},
	}}
	if d := cmp.Diff(want, qq); d != "" {
		t.Errorf("unexpected approximation (-want +got):\n%s", d)
	}
}

func TestLargeDisplacement(t *testing.T) {
	// control points offset by ten times the chord length
	c := Cubic{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 0, Y: 100},
		P2: vec.Vec2{X: 10, Y: 100},
		P3: vec.Vec2{X: 10, Y: 0},
	}
	qq := Approximate(c, DefaultTolerance, DefaultMaxDepth)
	if len(qq) < 2 {
		t.Fatalf("expected more than one quadratic, got %d", len(qq))
	}
	if len(qq) > 1<<DefaultMaxDepth {
		t.Errorf("too many quadratics: %d", len(qq))
	}
	checkChain(t, c, qq)
}

func TestDepthLimit(t *testing.T) {
	c := Cubic{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 0, Y: 1e6},
		P2: vec.Vec2{X: 1, Y: 1e6},
		P3: vec.Vec2{X: 1, Y: 0},
	}
	for _, depth := range []int{0, 1, 3, 8} {
		qq := Approximate(c, 1e-9, depth)
		if len(qq) != 1<<depth {
			t.Errorf("depth %d: got %d quadratics, want %d", depth, len(qq), 1<<depth)
		}
		checkChain(t, c, qq)
	}

	qq := Approximate(c, 1, -5)
	if len(qq) != 1 {
		t.Errorf("negative depth: got %d quadratics", len(qq))
	}
}

// TestErrorBound checks that every emitted quadratic satisfies the error
// bound, unless the depth limit forced its acceptance.
func TestErrorBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randVec := func() vec.Vec2 {
		return vec.Vec2{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000}
	}

	for i := 0; i < 200; i++ {
		c := Cubic{randVec(), randVec(), randVec(), randVec()}
		tol := 0.25 + rng.Float64()
		qq := Approximate(c, tol, DefaultMaxDepth)
		checkChain(t, c, qq)

		var leaves []Quad
		var walk func(c Cubic, depth int)
		walk = func(c Cubic, depth int) {
			q, e := Candidate(c)
			if e < tol || depth == 0 {
				if depth > 0 && e >= tol {
					t.Errorf("quadratic accepted with error %g >= %g", e, tol)
				}
				leaves = append(leaves, q)
				return
			}
			left, right := c.Split()
			walk(left, depth-1)
			walk(right, depth-1)
		}
		walk(c, DefaultMaxDepth)

		if d := cmp.Diff(leaves, qq); d != "" {
			t.Fatalf("%d: unexpected approximation (-want +got):\n%s", i, d)
		}
	}
}

func TestSplit(t *testing.T) {
	c := Cubic{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 10, Y: 40},
		P2: vec.Vec2{X: 60, Y: 40},
		P3: vec.Vec2{X: 80, Y: 0},
	}
	left, right := c.Split()
	for _, s := range []float64{0, 0.1, 0.25, 0.6, 1} {
		p := left.Eval(s)
		q := c.Eval(s / 2)
		if !near(p, q) {
			t.Errorf("left half at %g: %v != %v", s, p, q)
		}
		p = right.Eval(s)
		q = c.Eval(0.5 + s/2)
		if !near(p, q) {
			t.Errorf("right half at %g: %v != %v", s, p, q)
		}
	}
}

func TestBBox(t *testing.T) {
	c := Cubic{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 0, Y: 100},
		P2: vec.Vec2{X: 100, Y: 100},
		P3: vec.Vec2{X: 100, Y: 0},
	}
	xMin, yMin, xMax, yMax := c.BBox()
	if xMin != 0 || xMax != 100 || yMin != 0 || math.Abs(yMax-75) > 1e-9 {
		t.Errorf("cubic bbox: %g %g %g %g", xMin, yMin, xMax, yMax)
	}

	q := Quad{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 50, Y: -100},
		P2: vec.Vec2{X: 100, Y: 0},
	}
	xMin, yMin, xMax, yMax = q.BBox()
	if xMin != 0 || xMax != 100 || yMin != -50 || yMax != 0 {
		t.Errorf("quad bbox: %g %g %g %g", xMin, yMin, xMax, yMax)
	}
}

func checkChain(t *testing.T, c Cubic, qq []Quad) {
	t.Helper()
	if len(qq) == 0 {
		t.Fatal("empty approximation")
	}
	if qq[0].P0 != c.P0 {
		t.Errorf("first start point %v != %v", qq[0].P0, c.P0)
	}
	if qq[len(qq)-1].P2 != c.P3 {
		t.Errorf("last end point %v != %v", qq[len(qq)-1].P2, c.P3)
	}
	for i := 1; i < len(qq); i++ {
		if qq[i].P0 != qq[i-1].P2 {
			t.Errorf("gap between segment %d and %d", i-1, i)
		}
	}
}

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
