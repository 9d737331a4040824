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
	"bytes"
	"encoding/binary"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/os2"
)

// Bits of the ulUnicodeRange and ulCodePageRange fields of the "OS/2" table.
const (
	unicodeRangeNonPlane0  = 57
	unicodeRangePrivateUse = 60
	codePageLatin1         = 0
)

// os2Metrics holds the values of the "OS/2" table which depend on the font.
// All other fields are fixed.
type os2Metrics struct {
	UnitsPerEm uint16
	Ascent     funit.Int16
	Descent    funit.Int16 // negative
	LineGap    funit.Int16

	// FirstChar and LastChar are the smallest and largest mapped code
	// points.  Both are zero if no code points are mapped.
	FirstChar rune
	LastChar  rune
}

// os2Table is the binary layout of a version 4 "OS/2" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
type os2Table struct {
	Version            uint16
	AvgCharWidth       int16
	WeightClass        uint16
	WidthClass         uint16
	Type               uint16
	SubscriptXSize     int16
	SubscriptYSize     int16
	SubscriptXOffset   int16
	SubscriptYOffset   int16
	SuperscriptXSize   int16
	SuperscriptYSize   int16
	SuperscriptXOffset int16
	SuperscriptYOffset int16
	StrikeoutSize      int16
	StrikeoutPosition  int16
	FamilyClass        int16
	Panose             [10]byte
	UnicodeRange       [4]uint32
	VendID             [4]byte
	Selection          uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16
	TypoAscender       funit.Int16
	TypoDescender      funit.Int16
	TypoLineGap        funit.Int16
	WinAscent          uint16
	WinDescent         uint16
	CodePageRange      [2]uint32
	XHeight            funit.Int16
	CapHeight          funit.Int16
	DefaultChar        uint16
	BreakChar          uint16
	MaxContext         uint16
}

const (
	fsSelectionRegular        = 0x0040
	fsSelectionUseTypoMetrics = 0x0080
)

// encodeOS2 builds the "OS/2" table of an icon font: a regular weight,
// normal width font in the Unicode Private Use Area.
func encodeOS2(m *os2Metrics) []byte {
	var unicodeRange [4]uint32
	setBit := func(b int) {
		unicodeRange[b/32] |= 1 << (b % 32)
	}
	setBit(unicodeRangePrivateUse)
	if m.LastChar > 0xFFFF {
		setBit(unicodeRangeNonPlane0)
	}

	t := &os2Table{
		Version:            4,
		AvgCharWidth:       int16(min(m.UnitsPerEm, 0x7FFF)),
		WeightClass:        uint16(os2.WeightNormal),
		WidthClass:         uint16(os2.WidthNormal),
		Type:               0, // installable embedding
		SubscriptXSize:     650,
		SubscriptYSize:     600,
		SubscriptXOffset:   0,
		SubscriptYOffset:   75,
		SuperscriptXSize:   650,
		SuperscriptYSize:   600,
		SuperscriptXOffset: 0,
		SuperscriptYOffset: 350,
		StrikeoutSize:      50,
		StrikeoutPosition:  300,
		UnicodeRange:       unicodeRange,
		VendID:             [4]byte{' ', ' ', ' ', ' '},
		Selection:          fsSelectionRegular | fsSelectionUseTypoMetrics,
		FirstCharIndex:     uint16(min(m.FirstChar, 0xFFFF)),
		LastCharIndex:      uint16(min(m.LastChar, 0xFFFF)),
		TypoAscender:       m.Ascent,
		TypoDescender:      m.Descent,
		TypoLineGap:        m.LineGap,
		WinAscent:          m.UnitsPerEm,
		WinDescent:         uint16(-min(m.Descent, 0)),
		CodePageRange:      [2]uint32{1 << codePageLatin1, 0},
		XHeight:            500,
		CapHeight:          700,
		DefaultChar:        0,
		BreakChar:          0x20,
	}

	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, t)
	return buf.Bytes()
}
