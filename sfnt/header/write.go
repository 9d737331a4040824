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

// Package header writes the table directory of an sfnt file, followed by
// the table bodies.
package header

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"golang.org/x/exp/slices"
)

// ScalerTypeTrueType identifies fonts with TrueType outlines.
const ScalerTypeTrueType uint32 = 0x00010000

// Table is one table of an sfnt file.
type Table struct {
	Tag  string
	Data []byte
}

// Write writes an sfnt file containing the given tables.
//
// Table bodies are written in the order given, each padded to a multiple
// of four bytes.  The table records in the directory are sorted by tag.
// Tables where the data is nil are not written, use a zero-length slice
// to write a table with no data.
// This changes the checksum in the "head" table in place.
func Write(w io.Writer, scalerType uint32, tables []Table) (int64, error) {
	var use []Table
	seen := make(map[string]bool, len(tables))
	for _, t := range tables {
		if t.Data == nil {
			continue
		}
		if len(t.Tag) != 4 || !isASCII(t.Tag) {
			return 0, fmt.Errorf("sfnt/header: invalid table tag %q", t.Tag)
		}
		if seen[t.Tag] {
			return 0, fmt.Errorf("sfnt/header: duplicate table %q", t.Tag)
		}
		seen[t.Tag] = true
		use = append(use, t)
	}
	numTables := len(use)
	if numTables > 0xFFFF {
		return 0, fmt.Errorf("sfnt/header: too many tables (%d)", numTables)
	}

	// prepare the header
	entrySelector := 0
	if numTables > 0 {
		entrySelector = bits.Len(uint(numTables)) - 1
	}
	searchRange := 16 << entrySelector
	hdr := &offsets{
		ScalerType:    scalerType,
		NumTables:     uint16(numTables),
		SearchRange:   uint16(searchRange),
		EntrySelector: uint16(entrySelector),
		RangeShift:    uint16(max(16*numTables-searchRange, 0)),
	}

	// temporarily clear the checksum in the "head" table
	var headData []byte
	for _, t := range use {
		if t.Tag == "head" && len(t.Data) >= 12 {
			headData = t.Data
			clearChecksum(headData)
		}
	}

	var totalSum uint32
	offset := uint32(12 + 16*numTables)
	records := make([]rawRecord, numTables)
	for i, t := range use {
		length := uint32(len(t.Data))
		sum := Checksum(t.Data)

		records[i].Tag = tag{t.Tag[0], t.Tag[1], t.Tag[2], t.Tag[3]}
		records[i].CheckSum = sum
		records[i].Offset = offset
		records[i].Length = length

		totalSum += sum
		offset += 4 * ((length + 3) / 4)
	}
	slices.SortFunc(records, func(a, b rawRecord) int {
		return bytes.Compare(a.Tag[:], b.Tag[:])
	})

	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, hdr)
	_ = binary.Write(buf, binary.BigEndian, records)
	headerBytes := buf.Bytes()
	totalSum += Checksum(headerBytes)

	// set the final checksum in the "head" table
	if headData != nil {
		patchChecksum(headData, totalSum)
	}

	// write the tables
	var totalSize int64
	n, err := w.Write(headerBytes)
	totalSize += int64(n)
	if err != nil {
		return totalSize, err
	}
	var pad [3]byte
	for _, t := range use {
		n, err := w.Write(t.Data)
		totalSize += int64(n)
		if err != nil {
			return totalSize, err
		}
		if k := n % 4; k != 0 {
			l, err := w.Write(pad[:4-k])
			totalSize += int64(l)
			if err != nil {
				return totalSize, err
			}
		}
	}
	return totalSize, nil
}

// clearChecksum zeros the checksum field of the head table.
func clearChecksum(head []byte) {
	binary.BigEndian.PutUint32(head[8:12], 0)
}

// patchChecksum updates the checksum of the head table.
// The argument is the checksum of the entire font before patching.
func patchChecksum(head []byte, checksum uint32) {
	binary.BigEndian.PutUint32(head[8:12], 0xB1B0AFBA-checksum)
}

// The offsets sub-table forms the first part of the file header.
type offsets struct {
	ScalerType    uint32
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
}

type tag [4]byte

// A rawRecord is part of the file header.  It contains data about a single
// sfnt table.
type rawRecord struct {
	Tag      tag
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 32 || s[i] > 126 {
			return false
		}
	}
	return true
}
