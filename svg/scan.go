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

package svg

import parsestrconv "github.com/tdewolff/parse/v2/strconv"

// scanner reads numbers from SVG attribute values.
// Numbers may be separated by white space and at most one comma.
type scanner struct {
	s   string
	pos int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// skipSep skips white space with an optional comma.
func (sc *scanner) skipSep() {
	sc.skipSpace()
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ',' {
		sc.pos++
		sc.skipSpace()
	}
}

func (sc *scanner) done() bool {
	sc.skipSpace()
	return sc.pos >= len(sc.s)
}

func (sc *scanner) peek() byte {
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

// number reads a number in SVG syntax, for example "-1.5e3" or ".5".
// A sign or a second decimal point ends the number, so that "1-2" and
// "0.5.5" each hold two numbers.
func (sc *scanner) number() (float64, bool) {
	x, n := parsestrconv.ParseFloat([]byte(sc.s[sc.pos:]))
	if n == 0 {
		return 0, false
	}
	sc.pos += n
	return x, true
}

// parseNumbers parses a list of numbers.
func parseNumbers(s string) ([]float64, bool) {
	sc := &scanner{s: s}
	var res []float64
	for !sc.done() {
		x, ok := sc.number()
		if !ok {
			return nil, false
		}
		res = append(res, x)
		sc.skipSep()
	}
	return res, true
}
