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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNumbers(t *testing.T) {
	for in, want := range map[string][]float64{
		"":            nil,
		"1 2 3":       {1, 2, 3},
		"10,20 , 30":  {10, 20, 30},
		"1-2":         {1, -2},
		".5.5":        {0.5, 0.5},
		"-1.5e2 +3":   {-150, 3},
		"\t0\n100 50": {0, 100, 50},
	} {
		got, ok := parseNumbers(in)
		if !ok {
			t.Errorf("%q: parse failed", in)
			continue
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", in, d)
		}
	}

	for _, in := range []string{"1 x", "a", "1,,2"} {
		if _, ok := parseNumbers(in); ok {
			t.Errorf("%q: expected failure", in)
		}
	}
}
