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
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Name IDs written to the "name" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
const (
	nameCopyright      = 0
	nameFamily         = 1
	nameSubfamily      = 2
	nameUniqueID       = 3
	nameFullName       = 4
	nameVersion        = 5
	namePostScriptName = 6
)

// All name records use the Windows platform, Unicode BMP encoding and
// US English.
const (
	namePlatformWindows = 3
	nameEncodingUnicode = 1
	nameLanguageEnUS    = 0x0409
)

const (
	defaultCopyright = "Generated by svg2font"
	defaultVersion   = "Version 1.0"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

var errNameTooLarge = errors.New("string data too large")

// postScriptName removes all spaces from the family name.
func postScriptName(family string) string {
	return strings.ReplaceAll(family, " ", "")
}

// encodeName builds the "name" table.  Empty copyright and version
// strings are replaced by the defaults.
func encodeName(family, copyright, version string) ([]byte, error) {
	if copyright == "" {
		copyright = defaultCopyright
	}
	if version == "" {
		version = defaultVersion
	}
	values := [...]string{
		nameCopyright:      copyright,
		nameFamily:         family,
		nameSubfamily:      "Regular",
		nameUniqueID:       "svg2font: " + family,
		nameFullName:       family,
		nameVersion:        version,
		namePostScriptName: postScriptName(family),
	}

	enc := utf16BE.NewEncoder()
	var strData []byte
	seen := make(map[string]int, len(values))
	numRec := len(values)
	startOfStrings := 6 + 12*numRec
	res := make([]byte, startOfStrings)
	res[3] = byte(numRec)
	res[4] = byte(startOfStrings >> 8)
	res[5] = byte(startOfStrings)
	for nameID, val := range values {
		data, err := enc.Bytes([]byte(val))
		if err != nil {
			return nil, fmt.Errorf("name %d: %w", nameID, err)
		}
		if len(data) > 0xFFFF {
			return nil, errNameTooLarge
		}
		offset, ok := seen[string(data)]
		if !ok {
			offset = len(strData)
			seen[string(data)] = offset
			strData = append(strData, data...)
		}
		if offset > 0xFFFF {
			return nil, errNameTooLarge
		}

		rec := res[6+12*nameID:]
		rec[1] = namePlatformWindows
		rec[3] = nameEncodingUnicode
		rec[4] = byte(nameLanguageEnUS >> 8)
		rec[5] = byte(nameLanguageEnUS & 0xFF)
		rec[7] = byte(nameID)
		rec[8] = byte(len(data) >> 8)
		rec[9] = byte(len(data))
		rec[10] = byte(offset >> 8)
		rec[11] = byte(offset)
	}
	return append(res, strData...), nil
}
