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

// Package winding rewrites the contour directions of even-odd filled paths,
// so that the paths render identically under the non-zero winding rule.
//
// Contours are oriented by nesting depth: top-level contours run clockwise,
// holes counter-clockwise, islands inside holes clockwise again, and so on.
// Both area and containment are evaluated on the polygon through the
// command end points; curve control points are ignored.
package winding

import (
	"math"

	"github.com/cipherchabon/svg2font/path"
	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Info describes one contour of a path.
type Info struct {
	Contour *path.Data

	// Area is the signed area of the contour.  Positive values indicate
	// counter-clockwise orientation.
	Area float64

	// BBox is the box spanned by all points of the contour, including
	// curve control points.
	BBox rect.Rect
}

// NewInfo computes the area and bounding box of a single contour.
func NewInfo(c *path.Data) Info {
	return Info{
		Contour: c,
		Area:    c.SignedArea(),
		BBox:    pointBox(c.Coords),
	}
}

// Clockwise reports whether the contour runs clockwise.
func (info Info) Clockwise() bool {
	return info.Area < 0
}

// matches reports whether the contour already has the orientation required
// at the given nesting level.  Contours with zero area have no orientation
// and always match, so they are never reversed.
func (info Info) matches(level int) bool {
	if info.Area == 0 {
		return true
	}
	return info.Clockwise() == (level%2 == 0)
}

// Normalize returns a path which, filled with the non-zero winding rule,
// covers the same region as p filled with rule.
//
// Paths using the non-zero rule, and paths with at most one contour, are
// returned unchanged.  Otherwise the contours are sorted by decreasing
// bounding box area and each contour is reversed if its orientation does
// not match its nesting level.  Contours with zero area keep their
// direction.
func Normalize(p *path.Data, rule path.FillRule) *path.Data {
	if rule != path.EvenOdd || p.IsEmpty() {
		return p
	}
	contours := p.Contours()
	if len(contours) <= 1 {
		return p
	}

	infos := make([]Info, len(contours))
	for i, c := range contours {
		infos[i] = NewInfo(c)
	}
	slices.SortStableFunc(infos, func(a, b Info) int {
		areaA := boxArea(a.BBox)
		areaB := boxArea(b.BBox)
		switch {
		case areaA > areaB:
			return -1
		case areaA < areaB:
			return 1
		default:
			return 0
		}
	})

	levels := NestingLevels(infos)

	res := &path.Data{}
	for i, info := range infos {
		c := info.Contour
		if !info.matches(levels[i]) {
			c = c.Reverse()
		}
		res.Append(c)
	}
	return res
}

// NestingLevels returns the nesting level of every contour in infos.
//
// The slice must be sorted by decreasing bounding box area.  The level of
// contour i is the number of contours j < i which contain the midpoint of
// the bounding box of contour i, both by bounding box and by the ray
// casting test on the contour outline.
func NestingLevels(infos []Info) []int {
	levels := make([]int, len(infos))
	for i, info := range infos {
		mid := vec.Vec2{
			X: (info.BBox.LLx + info.BBox.URx) / 2,
			Y: (info.BBox.LLy + info.BBox.URy) / 2,
		}
		for j := 0; j < i; j++ {
			if boxContains(infos[j].BBox, mid) && infos[j].Contour.Contains(mid) {
				levels[i]++
			}
		}
	}
	return levels
}

func pointBox(pp []vec.Vec2) rect.Rect {
	if len(pp) == 0 {
		return rect.Rect{}
	}
	bbox := rect.Rect{LLx: pp[0].X, LLy: pp[0].Y, URx: pp[0].X, URy: pp[0].Y}
	for _, p := range pp[1:] {
		bbox.LLx = math.Min(bbox.LLx, p.X)
		bbox.LLy = math.Min(bbox.LLy, p.Y)
		bbox.URx = math.Max(bbox.URx, p.X)
		bbox.URy = math.Max(bbox.URy, p.Y)
	}
	return bbox
}

func boxArea(r rect.Rect) float64 {
	return (r.URx - r.LLx) * (r.URy - r.LLy)
}

func boxContains(r rect.Rect, p vec.Vec2) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}
