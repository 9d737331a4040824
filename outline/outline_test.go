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

package outline

import (
	"errors"
	"math"
	"testing"

	"github.com/cipherchabon/svg2font/path"
	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestTransform(t *testing.T) {
	// a clockwise square in the y-down source system
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: 0, Y: 0})
	p.LineTo(vec.Vec2{X: 100, Y: 0})
	p.LineTo(vec.Vec2{X: 100, Y: 100})
	p.LineTo(vec.Vec2{X: 0, Y: 100})
	p.Close()

	got, err := Build(p, 100, 100, path.NonZero, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := &path.Data{}
	want.MoveTo(vec.Vec2{X: 0, Y: 1000})
	want.LineTo(vec.Vec2{X: 1000, Y: 1000})
	want.LineTo(vec.Vec2{X: 1000, Y: 0})
	want.LineTo(vec.Vec2{X: 0, Y: 0})
	want.Close()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outline (-want +got):\n%s", diff)
	}
}

func TestNonSquareViewport(t *testing.T) {
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: 0, Y: 0})
	p.LineTo(vec.Vec2{X: 200, Y: 100})
	p.LineTo(vec.Vec2{X: 0, Y: 100})
	p.Close()

	got, err := Build(p, 200, 100, path.NonZero, nil)
	if err != nil {
		t.Fatal(err)
	}
	bbox := got.BBox()
	if bbox.LLx != 0 || bbox.LLy != 0 || bbox.URx != 1000 || bbox.URy != 500 {
		t.Errorf("unexpected bounding box %v", bbox)
	}
}

func TestUnitsPerEm(t *testing.T) {
	m, err := Matrix(24, 24, 2048)
	if err != nil {
		t.Fatal(err)
	}
	s := 2048.0 / 24
	if m[0] != s || m[3] != -s || math.Abs(m[5]-2048) > 1e-9 {
		t.Errorf("unexpected matrix %v", m)
	}
}

func TestLargeDisplacement(t *testing.T) {
	// The chord has length 10 in font units, the control points are
	// displaced by 100 in font units.
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: 10, Y: 50})
	p.CubeTo(vec.Vec2{X: 10, Y: 40}, vec.Vec2{X: 11, Y: 40}, vec.Vec2{X: 11, Y: 50})
	p.Close()

	got, err := Build(p, 100, 100, path.NonZero, nil)
	if err != nil {
		t.Fatal(err)
	}
	n := NumQuads(got)
	if n <= 1 || n > 1<<16 {
		t.Errorf("got %d quadratic segments", n)
	}
	for _, cmd := range got.Cmds {
		if cmd == path.CmdCubeTo {
			t.Fatal("cubic segment in glyph outline")
		}
	}

	// the curve must still end where the cubic ended
	end := got.Coords[len(got.Coords)-1]
	if math.Abs(end.X-110) > 1e-9 || math.Abs(end.Y-500) > 1e-9 {
		t.Errorf("curve ends at %v", end)
	}
}

func TestEvenOdd(t *testing.T) {
	p := &path.Data{}
	for _, r := range [][4]float64{{0, 0, 100, 100}, {25, 25, 75, 75}} {
		p.MoveTo(vec.Vec2{X: r[0], Y: r[1]})
		p.LineTo(vec.Vec2{X: r[2], Y: r[1]})
		p.LineTo(vec.Vec2{X: r[2], Y: r[3]})
		p.LineTo(vec.Vec2{X: r[0], Y: r[3]})
		p.Close()
	}

	got, err := Build(p, 100, 100, path.EvenOdd, nil)
	if err != nil {
		t.Fatal(err)
	}
	cc := got.Contours()
	if len(cc) != 2 {
		t.Fatalf("got %d contours", len(cc))
	}
	if a := cc[0].SignedArea(); a >= 0 {
		t.Errorf("outer contour has area %g, want clockwise", a)
	}
	if a := cc[1].SignedArea(); a <= 0 {
		t.Errorf("inner contour has area %g, want counter-clockwise", a)
	}
}

func TestEmpty(t *testing.T) {
	for _, p := range []*path.Data{nil, {}} {
		got, err := Build(p, 24, 24, path.EvenOdd, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !got.IsEmpty() {
			t.Errorf("expected empty outline, got %v", got)
		}
	}
}

func TestInvalidViewport(t *testing.T) {
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: 0, Y: 0})
	p.LineTo(vec.Vec2{X: 1, Y: 1})

	for _, size := range [][2]float64{
		{0, 10},
		{10, 0},
		{-5, 10},
		{math.NaN(), 10},
		{10, math.Inf(1)},
	} {
		_, err := Build(p, size[0], size[1], path.NonZero, nil)
		if !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("%v: got %v, want ErrInvalidViewport", size, err)
		}
	}
}

func TestMalformed(t *testing.T) {
	p := &path.Data{}
	p.LineTo(vec.Vec2{X: 1, Y: 1})

	_, err := Build(p, 24, 24, path.NonZero, nil)
	var pathErr *MalformedPathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("got %v, want MalformedPathError", err)
	}
	if pathErr.Err.Index != 0 {
		t.Errorf("error reported for command %d", pathErr.Err.Index)
	}
}
