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

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
)

// ParseTransform parses the value of a "transform" attribute.
//
// The returned matrix maps user coordinates of the element to the
// coordinate system of its parent.  It follows the convention of the
// matrix package: a point (x, y) is mapped to (a x + c y + e, b x + d y + f)
// and M.Mul(N) applies M first.
func ParseTransform(s string) (matrix.Matrix, error) {
	sc := &scanner{s: s}
	res := matrix.Identity
	for {
		sc.skipSep()
		if sc.done() {
			return res, nil
		}

		start := sc.pos
		for sc.pos < len(sc.s) && isLetter(sc.s[sc.pos]) {
			sc.pos++
		}
		name := sc.s[start:sc.pos]
		sc.skipSpace()
		if sc.peek() != '(' {
			return matrix.Identity, transformError(s, "missing '('")
		}
		sc.pos++

		var args []float64
		for {
			sc.skipSep()
			if sc.peek() == ')' {
				sc.pos++
				break
			}
			x, ok := sc.number()
			if !ok {
				return matrix.Identity, transformError(s, "invalid argument")
			}
			args = append(args, x)
		}

		m, err := transformMatrix(name, args)
		if err != nil {
			return matrix.Identity, transformError(s, err.Error())
		}
		// later entries in the list are applied first
		res = m.Mul(res)
	}
}

func transformMatrix(name string, args []float64) (matrix.Matrix, error) {
	n := len(args)
	switch {
	case name == "matrix" && n == 6:
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
	case name == "translate" && n == 1:
		return matrix.Translate(args[0], 0), nil
	case name == "translate" && n == 2:
		return matrix.Translate(args[0], args[1]), nil
	case name == "scale" && n == 1:
		return matrix.Scale(args[0], args[0]), nil
	case name == "scale" && n == 2:
		return matrix.Scale(args[0], args[1]), nil
	case name == "rotate" && (n == 1 || n == 3):
		phi := args[0] * math.Pi / 180
		c, s := math.Cos(phi), math.Sin(phi)
		r := matrix.Matrix{c, s, -s, c, 0, 0}
		if n == 3 {
			cx, cy := args[1], args[2]
			r = matrix.Translate(-cx, -cy).Mul(r).Mul(matrix.Translate(cx, cy))
		}
		return r, nil
	case name == "skewX" && n == 1:
		return matrix.Matrix{1, 0, math.Tan(args[0] * math.Pi / 180), 1, 0, 0}, nil
	case name == "skewY" && n == 1:
		return matrix.Matrix{1, math.Tan(args[0] * math.Pi / 180), 0, 1, 0, 0}, nil
	}
	return matrix.Identity, fmt.Errorf("unsupported %s with %d arguments", name, n)
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func transformError(s, msg string) error {
	return fmt.Errorf("svg: transform %q: %s", s, msg)
}
