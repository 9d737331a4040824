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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/image/font/sfnt"
)

// privateUse lists the Private Use Areas of Unicode.
var privateUse = []struct{ first, last rune }{
	{0xE000, 0xF8FF},
	{0xF0000, 0xFFFFD},
	{0x100000, 0x10FFFD},
}

func check(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	fname := args[0]

	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	font, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	buf := &sfnt.Buffer{}
	family, err := font.Name(buf, sfnt.NameIDFamily)
	if errors.Is(err, sfnt.ErrNotFound) {
		family = "(unknown)"
	} else if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	fmt.Fprintf(stdout, "Family: %s\n", family)
	fmt.Fprintf(stdout, "Glyphs: %d\n", font.NumGlyphs())
	fmt.Fprintf(stdout, "Units per em: %d\n", font.UnitsPerEm())

	count := 0
	for _, r := range privateUse {
		for c := r.first; c <= r.last; c++ {
			gid, err := font.GlyphIndex(buf, c)
			if err != nil {
				return fmt.Errorf("%s: %w", fname, err)
			}
			if gid == 0 {
				continue
			}
			fmt.Fprintf(stdout, "  U+%04X -> glyph %d\n", c, gid)
			count++
		}
	}

	summary := fmt.Sprintf("%d private-use code points mapped", count)
	fmt.Fprintln(stdout, highlight(stdout, summary))
	return nil
}
