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

	"golang.org/x/exp/slices"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// Keys of the Unicode subtables.
var (
	keyUnicodeBMP  = cmap.Key{PlatformID: 0, EncodingID: 3}
	keyWindowsBMP  = cmap.Key{PlatformID: 3, EncodingID: 1}
	keyUnicodeFull = cmap.Key{PlatformID: 0, EncodingID: 4}
	keyWindowsFull = cmap.Key{PlatformID: 3, EncodingID: 10}
)

// IsUnicodeScalar reports whether r is a Unicode scalar value, i.e. whether
// r can be listed in a "cmap" table.
func IsUnicodeScalar(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && (r < 0xD800 || r > 0xDFFF)
}

// buildCMap constructs the "cmap" table for a mapping from Unicode scalar
// values to glyphs.  The mapping must not contain other code points.
//
// A format 4 subtable for the Basic Multilingual Plane is always included.
// A format 12 subtable is added if any code point lies outside the BMP.
func buildCMap(m map[rune]glyph.ID) (cmap.Table, error) {
	codes := make([]rune, 0, len(m))
	bmp := cmap.Format4{}
	for r, gid := range m {
		if gid == 0 {
			continue
		}
		codes = append(codes, r)
		if r <= 0xFFFF {
			bmp[uint16(r)] = gid
		}
	}
	slices.Sort(codes)

	bmpData := bmp.Encode(0)
	if len(bmpData) > 0xFFFF {
		return nil, fmt.Errorf("format 4 subtable too large (%d bytes)", len(bmpData))
	}
	table := cmap.Table{
		keyUnicodeBMP: bmpData,
		keyWindowsBMP: bmpData,
	}

	if n := len(codes); n > 0 && codes[n-1] > 0xFFFF {
		fullData := encodeFormat12(codes, m)
		table[keyUnicodeFull] = fullData
		table[keyWindowsFull] = fullData
	}
	return table, nil
}

// encodeFormat12 builds a format 12 subtable.  The code points must be
// sorted.  Runs of consecutive code points mapping to consecutive glyphs
// share one segment.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-12-segmented-coverage
func encodeFormat12(codes []rune, m map[rune]glyph.ID) []byte {
	type segment struct {
		start, end rune
		startGID   glyph.ID
	}
	var segs []segment
	for _, c := range codes {
		gid := m[c]
		if n := len(segs); n > 0 {
			last := &segs[n-1]
			if last.end+1 == c && int(last.startGID)+int(c-last.start) == int(gid) {
				last.end = c
				continue
			}
		}
		segs = append(segs, segment{start: c, end: c, startGID: gid})
	}

	l := 16 + 12*len(segs)
	out := make([]byte, l)
	binary.BigEndian.PutUint16(out[0:], 12)
	binary.BigEndian.PutUint32(out[4:], uint32(l))
	binary.BigEndian.PutUint32(out[12:], uint32(len(segs)))
	for i, seg := range segs {
		base := 16 + 12*i
		binary.BigEndian.PutUint32(out[base:], uint32(seg.start))
		binary.BigEndian.PutUint32(out[base+4:], uint32(seg.end))
		binary.BigEndian.PutUint32(out[base+8:], uint32(seg.startGID))
	}
	return out
}
