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

package svg2font

import "github.com/cipherchabon/svg2font/path"

// Icon is a single vector icon.
type Icon struct {
	// Name identifies the icon in log messages and errors.
	Name string

	// Path is the outline, in the coordinate system of the viewport.
	// The y-axis points down.  A nil or empty path gives an empty glyph.
	Path *path.Data

	// Width and Height give the size of the viewport.
	Width, Height float64

	FillRule path.FillRule

	// Codepoint is the character the glyph is mapped to.
	Codepoint rune
}
