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
)

// hheaHeader is the binary layout of the "hhea" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
type hheaHeader struct {
	Version             uint32
	Ascent              funit.Int16
	Descent             funit.Int16
	LineGap             funit.Int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	_                   [4]int16
	MetricDataFormat    int16
	NumOfLongHorMetrics uint16
}

// encodeHmtx builds the "hhea" and "hmtx" tables for a font where every
// glyph has the same advance width and a left side bearing of zero.
// Every glyph gets a full metrics record.
func encodeHmtx(numGlyphs int, advance uint16, ascent, descent, lineGap funit.Int16) (hheaData, hmtxData []byte) {
	hhea := &hheaHeader{
		Version:             0x00010000,
		Ascent:              ascent,
		Descent:             descent,
		LineGap:             lineGap,
		AdvanceWidthMax:     advance,
		XMaxExtent:          int16(min(advance, 0x7FFF)),
		CaretSlopeRise:      1,
		NumOfLongHorMetrics: uint16(numGlyphs),
	}
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, hhea)

	hmtxData = make([]byte, 4*numGlyphs)
	for i := range numGlyphs {
		binary.BigEndian.PutUint16(hmtxData[4*i:], advance)
	}
	return buf.Bytes(), hmtxData
}
