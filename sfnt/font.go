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

// Package sfnt assembles TrueType font files from glyph outlines.
//
// The generic tables are encoded by the packages of seehuhn.de/go/sfnt.
// The tables with svg2font's fixed metric policy are built here, and
// [Font.Encode] writes all of them in a fixed order.
package sfnt

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/cipherchabon/svg2font/path"
	"github.com/cipherchabon/svg2font/sfnt/header"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/head"
	"seehuhn.de/go/sfnt/maxp"
	"seehuhn.de/go/sfnt/post"
)

// Font holds the font-wide values and glyph outlines of an icon font.
type Font struct {
	FamilyName string
	UnitsPerEm uint16

	Ascent  funit.Int16
	Descent funit.Int16 // negative
	LineGap funit.Int16

	// Copyright and Version override the default copyright notice and
	// version string of the "name" table, if non-empty.
	Copyright string
	Version   string

	// Timestamp is used as the creation and modification time.
	// The zero value gives reproducible output.
	Timestamp time.Time

	// Outlines contains one quadratic outline per glyph.  Outlines[0] is
	// the missing glyph and should be empty.
	Outlines []*path.Data

	// CMap maps code points to glyph indices.  Code points which are not
	// Unicode scalar values are ignored.
	CMap map[rune]glyph.ID
}

// Layout describes the result of encoding a font.
type Layout struct {
	NumGlyphs  int
	LocaFormat int16
}

// EncodingError is returned when a table cannot be represented in the
// binary font format.
type EncodingError struct {
	Table string
	Err   error
}

func (err *EncodingError) Error() string {
	return fmt.Sprintf("sfnt: cannot encode %q table: %v", err.Table, err.Err)
}

// Unwrap returns the underlying error.
func (err *EncodingError) Unwrap() error {
	return err.Err
}

// TableOrder lists the tables of an encoded font, in the order in which
// their bodies appear in the file.
var TableOrder = []string{
	"head", "hhea", "maxp", "OS/2", "hmtx", "cmap", "name", "post", "loca", "glyf",
}

// Encode converts the font into the binary TrueType format.
func (f *Font) Encode() ([]byte, error) {
	data, _, err := f.EncodeLayout()
	return data, err
}

// EncodeLayout is like Encode, but also reports how the font was laid out.
func (f *Font) EncodeLayout() ([]byte, *Layout, error) {
	upem := f.UnitsPerEm
	if upem < 16 || upem > 16384 {
		return nil, nil, &EncodingError{
			Table: "head",
			Err:   fmt.Errorf("unitsPerEm %d, must be between 16 and 16384", upem),
		}
	}
	numGlyphs := len(f.Outlines)
	if numGlyphs == 0 || numGlyphs > 0xFFFF {
		return nil, nil, &EncodingError{
			Table: "maxp",
			Err:   fmt.Errorf("%d glyphs, must be between 1 and 65535", numGlyphs),
		}
	}

	glyphs := make(glyf.Glyphs, numGlyphs)
	contours := make([]*glyf.GlyphInfo, numGlyphs)
	var bbox funit.Rect16
	first := true
	for i, p := range f.Outlines {
		g, info, err := glyphFromPath(p)
		if err != nil {
			return nil, nil, &EncodingError{
				Table: "glyf",
				Err:   fmt.Errorf("glyph %d: %w", i, err),
			}
		}
		glyphs[i] = g
		contours[i] = info
		if g == nil {
			continue
		}
		if first {
			bbox = g.Rect16
			first = false
			continue
		}
		bbox.LLx = min(bbox.LLx, g.LLx)
		bbox.LLy = min(bbox.LLy, g.LLy)
		bbox.URx = max(bbox.URx, g.URx)
		bbox.URy = max(bbox.URy, g.URy)
	}
	enc := glyphs.Encode()
	if len(enc.GlyfData) > math.MaxUint32 {
		return nil, nil, &EncodingError{
			Table: "loca",
			Err:   fmt.Errorf("%d bytes of glyph data", len(enc.GlyfData)),
		}
	}
	if enc.LocaFormat != 0 {
		if short, ok := shortenLoca(enc.LocaData); ok {
			enc.LocaData = short
			enc.LocaFormat = 0
		}
	}

	headInfo := &head.Info{
		FontRevision:   0x00010000, // 1.0
		HasYBaseAt0:    true,
		HasXBaseAt0:    true,
		UnitsPerEm:     upem,
		Created:        f.Timestamp,
		Modified:       f.Timestamp,
		FontBBox:       bbox,
		LowestRecPPEM:  8,
		HasLongOffsets: enc.LocaFormat != 0,
	}
	headData, err := headInfo.Encode()
	if err != nil {
		return nil, nil, &EncodingError{Table: "head", Err: err}
	}

	hheaData, hmtxData := encodeHmtx(numGlyphs, upem, f.Ascent, f.Descent, f.LineGap)

	maxPoints, maxContours := maxProfile(contours)
	maxpInfo := &maxp.Info{
		NumGlyphs: numGlyphs,
		TTF: &maxp.TTFInfo{
			MaxPoints:   uint16(maxPoints),
			MaxContours: uint16(maxContours),
			MaxZones:    2,
		},
	}

	valid := make(map[rune]glyph.ID, len(f.CMap))
	var firstChar, lastChar rune
	for r, gid := range f.CMap {
		if !IsUnicodeScalar(r) {
			continue
		}
		if int(gid) >= numGlyphs {
			return nil, nil, &EncodingError{
				Table: "cmap",
				Err:   fmt.Errorf("U+%04X maps to missing glyph %d", r, gid),
			}
		}
		if gid == 0 {
			continue
		}
		if len(valid) == 0 || r < firstChar {
			firstChar = r
		}
		if len(valid) == 0 || r > lastChar {
			lastChar = r
		}
		valid[r] = gid
	}
	cmapTable, err := buildCMap(valid)
	if err != nil {
		return nil, nil, &EncodingError{Table: "cmap", Err: err}
	}

	os2Data := encodeOS2(&os2Metrics{
		UnitsPerEm: upem,
		Ascent:     f.Ascent,
		Descent:    f.Descent,
		LineGap:    f.LineGap,
		FirstChar:  firstChar,
		LastChar:   lastChar,
	})

	nameData, err := encodeName(f.FamilyName, f.Copyright, f.Version)
	if err != nil {
		return nil, nil, &EncodingError{Table: "name", Err: err}
	}

	bodies := map[string][]byte{
		"head": headData,
		"hhea": hheaData,
		"maxp": maxpInfo.Encode(),
		"OS/2": os2Data,
		"hmtx": hmtxData,
		"cmap": cmapTable.Encode(),
		"name": nameData,
		"post": (&post.Info{}).Encode(),
		"loca": enc.LocaData,
		"glyf": enc.GlyfData,
	}
	tables := make([]header.Table, len(TableOrder))
	for i, tag := range TableOrder {
		tables[i] = header.Table{Tag: tag, Data: bodies[tag]}
	}

	buf := &bytes.Buffer{}
	_, err = header.Write(buf, header.ScalerTypeTrueType, tables)
	if err != nil {
		return nil, nil, err
	}

	layout := &Layout{
		NumGlyphs:  numGlyphs,
		LocaFormat: enc.LocaFormat,
	}
	return buf.Bytes(), layout, nil
}
