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

package sfnt

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cipherchabon/svg2font/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
)

// glyphFromPath converts a quadratic outline into a simple TrueType glyph.
//
// The path must only use MoveTo, LineTo, QuadTo and Close commands, with
// coordinates in font design units.  Coordinates are rounded to the nearest
// integer.  An empty path gives a nil glyph.
func glyphFromPath(p *path.Data) (*glyf.Glyph, *glyf.GlyphInfo, error) {
	info, err := contoursFromPath(p)
	if err != nil {
		return nil, nil, err
	}
	if len(info.Contours) == 0 {
		return nil, info, nil
	}
	if len(info.Contours) > 0x7FFF {
		return nil, nil, fmt.Errorf("too many contours (%d)", len(info.Contours))
	}

	var bbox funit.Rect16
	numPoints := 0
	for _, cc := range info.Contours {
		for _, pt := range cc {
			if numPoints == 0 {
				bbox = funit.Rect16{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
			}
			numPoints++
			bbox.LLx = min(bbox.LLx, pt.X)
			bbox.LLy = min(bbox.LLy, pt.Y)
			bbox.URx = max(bbox.URx, pt.X)
			bbox.URy = max(bbox.URy, pt.Y)
		}
	}
	if numPoints > 0xFFFF {
		return nil, nil, fmt.Errorf("too many points (%d)", numPoints)
	}

	g := &glyf.Glyph{
		Rect16: bbox,
		Data:   info.Encode(),
	}
	return g, info, nil
}

// contoursFromPath splits the path into TrueType contours.
// A closing point which coincides with the start of the contour is
// dropped, since TrueType contours are closed implicitly.
func contoursFromPath(p *path.Data) (*glyf.GlyphInfo, error) {
	info := &glyf.GlyphInfo{}
	var cur glyf.Contour
	flush := func() {
		if n := len(cur); n > 1 && cur[n-1] == cur[0] {
			cur = cur[:n-1]
		}
		if len(cur) > 0 {
			info.Contours = append(info.Contours, cur)
		}
		cur = nil
	}

	var err error
	point := func(v vec.Vec2, onCurve bool) glyf.Point {
		x, okX := roundFUnit(v.X)
		y, okY := roundFUnit(v.Y)
		if (!okX || !okY) && err == nil {
			err = fmt.Errorf("coordinate (%g, %g) out of range", v.X, v.Y)
		}
		return glyf.Point{X: x, Y: y, OnCurve: onCurve}
	}

	for cmd, pts := range p.All() {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur = append(cur, point(pts[0], true))
		case path.CmdLineTo:
			cur = append(cur, point(pts[0], true))
		case path.CmdQuadTo:
			cur = append(cur, point(pts[0], false), point(pts[1], true))
		case path.CmdCubeTo:
			return nil, fmt.Errorf("cubic segment in glyph outline")
		case path.CmdClose:
			flush()
		}
		if err != nil {
			return nil, err
		}
	}
	flush()

	return info, nil
}

// roundFUnit converts x to the nearest design unit.  The second return
// value is false if x is not finite or does not fit into an int16.
func roundFUnit(x float64) (funit.Int16, bool) {
	r := math.Round(x)
	if math.IsNaN(r) || r < math.MinInt16 || r > math.MaxInt16 {
		return 0, false
	}
	return funit.Int16(r), true
}

// shortenLoca rewrites a long "loca" table in the short format, if all
// offsets are even and the largest offset fits into a short field after
// halving.  The second return value reports whether this was possible.
func shortenLoca(locaData []byte) ([]byte, bool) {
	n := len(locaData) / 4
	if n == 0 || len(locaData)%4 != 0 {
		return nil, false
	}
	short := make([]byte, 2*n)
	for i := range n {
		off := binary.BigEndian.Uint32(locaData[4*i:])
		if off%2 != 0 || off/2 > 0xFFFF {
			return nil, false
		}
		binary.BigEndian.PutUint16(short[2*i:], uint16(off/2))
	}
	return short, true
}

// maxProfile returns the largest number of points and contours used by a
// single glyph.
func maxProfile(contours []*glyf.GlyphInfo) (maxPoints, maxContours int) {
	for _, info := range contours {
		if info == nil {
			continue
		}
		numPoints := 0
		for _, cc := range info.Contours {
			numPoints += len(cc)
		}
		maxPoints = max(maxPoints, numPoints)
		maxContours = max(maxContours, len(info.Contours))
	}
	return maxPoints, maxContours
}
