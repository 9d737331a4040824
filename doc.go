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

// Package svg2font converts vector icons into a TrueType icon font.
//
// Each [Icon] carries a path in the coordinate system of its viewport and
// the code point under which the glyph is reachable, usually from the
// Unicode Private Use Area.  [Build] turns the icons into glyph outlines
// and assembles the font file:
//
//	icons := []*svg2font.Icon{
//		{Name: "home", Path: home, Width: 24, Height: 24, Codepoint: 0xE000},
//		{Name: "star", Path: star, Width: 24, Height: 24, Codepoint: 0xE001},
//	}
//	data, err := svg2font.Build(icons, "My Icons", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Glyph 0 of the generated font is an empty missing glyph, glyph i is the
// i-th icon.  The outlines use quadratic Bézier curves only and follow the
// non-zero winding convention, whatever fill rule the icon was drawn with.
//
// The package is silent by default; use [SetLogger] to enable log output.
package svg2font
