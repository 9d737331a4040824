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

package svg

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cipherchabon/svg2font/path"
	"github.com/tdewolff/canvas"
	"seehuhn.de/go/geom/vec"
)

// shape returns the outline of a path or basic shape element, in user
// coordinates.  Shapes with missing or non-positive size give nil.
func shape(e xml.StartElement) (*path.Data, error) {
	switch e.Name.Local {
	case "path":
		d, ok := findAttr(e, "d")
		if !ok {
			return nil, nil
		}
		return ParsePathData(d)

	case "rect":
		x, _ := lengthAttr(e, "x")
		y, _ := lengthAttr(e, "y")
		w, _ := lengthAttr(e, "width")
		h, _ := lengthAttr(e, "height")
		if !(w > 0 && h > 0) {
			return nil, nil
		}
		rx, okX := lengthAttr(e, "rx")
		ry, okY := lengthAttr(e, "ry")
		if !okX || rx < 0 {
			rx, okX = ry, okY
		}
		if !okY || ry < 0 {
			ry = rx
		}
		rx = math.Max(0, math.Min(rx, w/2))
		ry = math.Max(0, math.Min(ry, h/2))
		return rect(x, y, w, h, rx, ry), nil

	case "circle":
		cx, _ := lengthAttr(e, "cx")
		cy, _ := lengthAttr(e, "cy")
		r, _ := lengthAttr(e, "r")
		if !(r > 0) {
			return nil, nil
		}
		return ellipsePath(cx, cy, r, r), nil

	case "ellipse":
		cx, _ := lengthAttr(e, "cx")
		cy, _ := lengthAttr(e, "cy")
		rx, _ := lengthAttr(e, "rx")
		ry, _ := lengthAttr(e, "ry")
		if !(rx > 0 && ry > 0) {
			return nil, nil
		}
		return ellipsePath(cx, cy, rx, ry), nil

	case "polygon", "polyline":
		s, _ := findAttr(e, "points")
		v, ok := parseNumbers(s)
		if !ok {
			return nil, fmt.Errorf("svg: invalid points %q", s)
		}
		if len(v) < 4 {
			return nil, nil
		}
		p := &path.Data{}
		p.MoveTo(vec.Vec2{X: v[0], Y: v[1]})
		for i := 2; i+1 < len(v); i += 2 {
			p.LineTo(vec.Vec2{X: v[i], Y: v[i+1]})
		}
		if e.Name.Local == "polygon" {
			p.Close()
		}
		return p, nil
	}
	return nil, nil
}

// rect returns a rectangle, with corners rounded by elliptical arcs
// if rx and ry are positive.
func rect(x, y, w, h, rx, ry float64) *path.Data {
	if rx == 0 || ry == 0 {
		p := &path.Data{}
		p.MoveTo(vec.Vec2{X: x, Y: y})
		p.LineTo(vec.Vec2{X: x + w, Y: y})
		p.LineTo(vec.Vec2{X: x + w, Y: y + h})
		p.LineTo(vec.Vec2{X: x, Y: y + h})
		p.Close()
		return p
	}

	cp := &canvas.Path{}
	cp.MoveTo(x+rx, y)
	cp.LineTo(x+w-rx, y)
	cp.ArcTo(rx, ry, 0, false, true, x+w, y+ry)
	cp.LineTo(x+w, y+h-ry)
	cp.ArcTo(rx, ry, 0, false, true, x+w-rx, y+h)
	cp.LineTo(x+rx, y+h)
	cp.ArcTo(rx, ry, 0, false, true, x, y+h-ry)
	cp.LineTo(x, y+ry)
	cp.ArcTo(rx, ry, 0, false, true, x+rx, y)
	cp.Close()
	return fromCanvas(cp.ReplaceArcs())
}

// ellipsePath returns an axis-aligned ellipse, drawn in the same
// direction as the SVG standard prescribes.
func ellipsePath(cx, cy, rx, ry float64) *path.Data {
	cp := &canvas.Path{}
	cp.MoveTo(cx+rx, cy)
	cp.ArcTo(rx, ry, 0, false, true, cx-rx, cy)
	cp.ArcTo(rx, ry, 0, false, true, cx+rx, cy)
	cp.Close()
	return fromCanvas(cp.ReplaceArcs())
}

// lengthAttr reads a length attribute in user units.  Values with units
// other than "px", and percentages, are treated as missing.
func lengthAttr(e xml.StartElement, name string) (float64, bool) {
	s, ok := findAttr(e, name)
	if !ok {
		return 0, false
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, false
	}
	return x, true
}
