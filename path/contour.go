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

package path

import (
	"math"

	"github.com/cipherchabon/svg2font/quadratic"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Contours splits the path into its contours.
// A new contour starts at every MoveTo command except the first one.
// The returned paths share no storage with d.
func (d *Data) Contours() []*Data {
	var res []*Data
	var cur *Data
	for cmd, pts := range d.All() {
		if cmd == CmdMoveTo || cur == nil {
			cur = &Data{}
			res = append(res, cur)
		}
		cur.Cmds = append(cur.Cmds, cmd)
		cur.Coords = append(cur.Coords, pts...)
	}
	return res
}

// NumContours returns the number of contours in the path.
func (d *Data) NumContours() int {
	n := 0
	for i, cmd := range d.Cmds {
		if cmd == CmdMoveTo || i == 0 {
			n++
		}
	}
	return n
}

// Endpoints returns the end point of every MoveTo, LineTo, QuadTo and CubeTo
// command, ignoring curve control points.
func (d *Data) Endpoints() []vec.Vec2 {
	var res []vec.Vec2
	for cmd, pts := range d.All() {
		if cmd == CmdClose {
			continue
		}
		res = append(res, pts[len(pts)-1])
	}
	return res
}

// SignedArea returns the area enclosed by the polygon through the command
// end points of the path, computed with the shoelace formula.  The result is
// positive for counter-clockwise and negative for clockwise contours, in a
// coordinate system where y increases upwards.
//
// Curve control points are ignored.  For paths with several contours the
// areas of all contours are added.
func (d *Data) SignedArea() float64 {
	var total float64
	for _, c := range d.Contours() {
		total += polygonArea(c.Endpoints())
	}
	return total
}

func polygonArea(pp []vec.Vec2) float64 {
	n := len(pp)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, p := range pp {
		q := pp[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// BBox returns the bounding box of the path.  Curve segments are bounded
// tightly, not by their control points.  The bounding box of an empty path
// is the zero rectangle.
func (d *Data) BBox() rect.Rect {
	first := true
	var bbox rect.Rect
	extend := func(xMin, yMin, xMax, yMax float64) {
		if first {
			bbox = rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
			first = false
			return
		}
		bbox.LLx = math.Min(bbox.LLx, xMin)
		bbox.LLy = math.Min(bbox.LLy, yMin)
		bbox.URx = math.Max(bbox.URx, xMax)
		bbox.URy = math.Max(bbox.URy, yMax)
	}

	var cur vec.Vec2
	for cmd, pts := range d.All() {
		switch cmd {
		case CmdMoveTo, CmdLineTo:
			extend(pts[0].X, pts[0].Y, pts[0].X, pts[0].Y)
			cur = pts[0]
		case CmdQuadTo:
			extend(quadratic.Quad{P0: cur, P1: pts[0], P2: pts[1]}.BBox())
			cur = pts[1]
		case CmdCubeTo:
			extend(quadratic.Cubic{P0: cur, P1: pts[0], P2: pts[1], P3: pts[2]}.BBox())
			cur = pts[2]
		}
	}
	return bbox
}

// Contains reports whether the point p lies inside the polygon formed by the
// command end points of the path, using the ray casting (even-odd) test.
// Curve control points are ignored.
func (d *Data) Contains(p vec.Vec2) bool {
	inside := false
	for _, c := range d.Contours() {
		pp := c.Endpoints()
		n := len(pp)
		for i := 0; i < n; i++ {
			a := pp[i]
			b := pp[(i+n-1)%n]
			if (a.Y > p.Y) != (b.Y > p.Y) &&
				p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
				inside = !inside
			}
		}
	}
	return inside
}

// Reverse returns a copy of the contour d with the direction of travel
// reversed.  The shape of every segment is preserved; control points of
// curve segments are swapped accordingly.  The method expects d to consist
// of a single contour.  Contours consisting of a single point are returned
// unchanged.
func (d *Data) Reverse() *Data {
	type segment struct {
		cmd  Command
		ctrl []vec.Vec2
		from vec.Vec2
	}

	var segs []segment
	var cur vec.Vec2
	hasStart := false
	isClosed := false
	for cmd, pts := range d.All() {
		switch cmd {
		case CmdMoveTo:
			cur = pts[0]
			hasStart = true
		case CmdClose:
			isClosed = true
		default:
			n := len(pts)
			segs = append(segs, segment{cmd: cmd, ctrl: pts[:n-1], from: cur})
			cur = pts[n-1]
		}
	}
	if !hasStart || len(segs) == 0 {
		return d.Clone()
	}

	res := &Data{}
	res.MoveTo(cur)
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		switch s.cmd {
		case CmdLineTo:
			res.LineTo(s.from)
		case CmdQuadTo:
			res.QuadTo(s.ctrl[0], s.from)
		case CmdCubeTo:
			res.CubeTo(s.ctrl[1], s.ctrl[0], s.from)
		}
	}
	if isClosed {
		res.Close()
	}
	return res
}
