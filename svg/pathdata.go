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

	"github.com/cipherchabon/svg2font/path"
	"github.com/tdewolff/canvas"
	"seehuhn.de/go/geom/vec"
)

// PathDataError reports a syntax error in the "d" attribute of a path.
type PathDataError struct {
	Data string
	Err  error
}

func (err *PathDataError) Error() string {
	d := err.Data
	if len(d) > 40 {
		d = d[:37] + "..."
	}
	return fmt.Sprintf("svg: path data %q: %v", d, err.Err)
}

// Unwrap returns the underlying parser error.
func (err *PathDataError) Unwrap() error {
	return err.Err
}

// ParsePathData converts SVG path data into a path.
// Elliptical arcs are converted into cubic Bézier curves.
func ParsePathData(d string) (*path.Data, error) {
	cp, err := canvas.ParseSVGPath(d)
	if err != nil {
		return nil, &PathDataError{Data: d, Err: err}
	}
	return fromCanvas(cp.ReplaceArcs()), nil
}

// fromCanvas copies a path without arcs into a path.Data.
// Drawing after a closepath continues from the start of the closed
// contour, as a new contour.
func fromCanvas(cp *canvas.Path) *path.Data {
	p := &path.Data{}
	var start vec.Vec2
	open := false
	for sc := cp.Scanner(); sc.Scan(); {
		cmd := sc.Cmd()
		end := toVec(sc.End())
		if !open && cmd != canvas.MoveToCmd && cmd != canvas.CloseCmd {
			p.MoveTo(start)
		}
		open = cmd != canvas.CloseCmd
		switch cmd {
		case canvas.MoveToCmd:
			p.MoveTo(end)
			start = end
		case canvas.LineToCmd:
			p.LineTo(end)
		case canvas.QuadToCmd:
			p.QuadTo(toVec(sc.CP1()), end)
		case canvas.CubeToCmd:
			p.CubeTo(toVec(sc.CP1()), toVec(sc.CP2()), end)
		case canvas.CloseCmd:
			p.Close()
		}
	}
	return p
}

func toVec(pt canvas.Point) vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}
