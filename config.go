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

import (
	"time"

	"github.com/cipherchabon/svg2font/quadratic"
)

// Config holds the parameters used by [Build].
type Config struct {
	UnitsPerEm uint16

	// Tolerance is the largest distance, in font units, allowed between
	// a cubic curve and its quadratic approximation.
	Tolerance float64

	// MaxDepth limits the number of times a cubic curve is subdivided.
	MaxDepth int

	Ascent  int16
	Descent int16 // negative
	LineGap int16

	// Workers is the number of goroutines used to build glyph outlines.
	// Values below 2 build the outlines sequentially.
	Workers int

	// Timestamp is recorded as creation and modification time of the font.
	Timestamp time.Time

	// Copyright and Version replace the default strings of the "name"
	// table, if non-empty.
	Copyright string
	Version   string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UnitsPerEm: 1000,
		Tolerance:  quadratic.DefaultTolerance,
		MaxDepth:   quadratic.DefaultMaxDepth,
		Ascent:     800,
		Descent:    -200,
		LineGap:    0,
		Workers:    1,
	}
}
