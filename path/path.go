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

// Package path represents vector outlines as sequences of drawing commands.
//
// A path consists of one or more contours.  Each contour starts with a
// MoveTo command, followed by line and curve segments, and is optionally
// terminated by a Close command.  Contours are always treated as closed.
package path

import (
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Command is a path drawing command.
type Command byte

// These are the supported path drawing commands.
const (
	CmdMoveTo Command = iota
	CmdLineTo
	CmdQuadTo
	CmdCubeTo
	CmdClose
)

func (c Command) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdQuadTo:
		return "QuadTo"
	case CmdCubeTo:
		return "CubeTo"
	case CmdClose:
		return "Close"
	default:
		return fmt.Sprintf("Command(%d)", c)
	}
}

// NumArgs returns the number of coordinates used by the command.
func (c Command) NumArgs() int {
	switch c {
	case CmdMoveTo, CmdLineTo:
		return 1
	case CmdQuadTo:
		return 2
	case CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// FillRule determines which regions enclosed by a path are filled.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// Data stores a path.
//
// Cmds lists the drawing commands.  Coords stores the command arguments,
// in order: one point for MoveTo and LineTo, the control point and the end
// point for QuadTo, two control points and the end point for CubeTo, and
// nothing for Close.
type Data struct {
	Cmds   []Command
	Coords []vec.Vec2
}

// MoveTo starts a new contour at p.
func (d *Data) MoveTo(p vec.Vec2) {
	d.Cmds = append(d.Cmds, CmdMoveTo)
	d.Coords = append(d.Coords, p)
}

// LineTo adds a straight line segment ending at p.
func (d *Data) LineTo(p vec.Vec2) {
	d.Cmds = append(d.Cmds, CmdLineTo)
	d.Coords = append(d.Coords, p)
}

// QuadTo adds a quadratic Bézier segment with control point c, ending at p.
func (d *Data) QuadTo(c, p vec.Vec2) {
	d.Cmds = append(d.Cmds, CmdQuadTo)
	d.Coords = append(d.Coords, c, p)
}

// CubeTo adds a cubic Bézier segment with control points c1 and c2, ending
// at p.
func (d *Data) CubeTo(c1, c2, p vec.Vec2) {
	d.Cmds = append(d.Cmds, CmdCubeTo)
	d.Coords = append(d.Coords, c1, c2, p)
}

// Close closes the current contour.
func (d *Data) Close() {
	d.Cmds = append(d.Cmds, CmdClose)
}

// Append adds all commands of other to the end of d.
func (d *Data) Append(other *Data) {
	if other == nil {
		return
	}
	d.Cmds = append(d.Cmds, other.Cmds...)
	d.Coords = append(d.Coords, other.Coords...)
}

// IsEmpty returns true if the path contains no commands.
func (d *Data) IsEmpty() bool {
	return d == nil || len(d.Cmds) == 0
}

// Clone returns a deep copy of the path.
func (d *Data) Clone() *Data {
	if d == nil {
		return &Data{}
	}
	return &Data{
		Cmds:   append([]Command(nil), d.Cmds...),
		Coords: append([]vec.Vec2(nil), d.Coords...),
	}
}

// All iterates over the commands of the path, together with the
// coordinates used by each command.
// The coordinate slices point into the path data and must not be modified.
func (d *Data) All() iter.Seq2[Command, []vec.Vec2] {
	return func(yield func(Command, []vec.Vec2) bool) {
		if d == nil {
			return
		}
		pos := 0
		for _, cmd := range d.Cmds {
			n := cmd.NumArgs()
			if pos+n > len(d.Coords) {
				return
			}
			if !yield(cmd, d.Coords[pos:pos+n]) {
				return
			}
			pos += n
		}
	}
}

// Transform returns a new path with m applied to every coordinate.
// The matrix uses the PDF convention: a point (x, y) is mapped to
// (m[0]x + m[2]y + m[4], m[1]x + m[3]y + m[5]).
func (d *Data) Transform(m matrix.Matrix) *Data {
	res := d.Clone()
	for i, p := range res.Coords {
		res.Coords[i] = Apply(m, p)
	}
	return res
}

// Apply maps the point p using the matrix m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Validate checks that the path is structurally sound: every contour
// starts with MoveTo, nothing but MoveTo follows a Close, the number of
// coordinates matches the commands, and all coordinates are finite.
func (d *Data) Validate() error {
	if d == nil {
		return nil
	}
	need := 0
	for i, cmd := range d.Cmds {
		if cmd > CmdClose {
			return &MalformedError{Index: i, Reason: fmt.Sprintf("unknown command %d", cmd)}
		}
		need += cmd.NumArgs()
	}
	if need != len(d.Coords) {
		return &MalformedError{
			Index: -1,
			Reason: fmt.Sprintf("%d coordinates for %d commands, need %d",
				len(d.Coords), len(d.Cmds), need),
		}
	}

	open := false
	closed := false
	for i, cmd := range d.Cmds {
		switch cmd {
		case CmdMoveTo:
			open = true
			closed = false
		case CmdClose:
			if !open {
				return &MalformedError{Index: i, Reason: "Close without current contour"}
			}
			closed = true
		default:
			if !open {
				return &MalformedError{Index: i, Reason: cmd.String() + " without MoveTo"}
			}
			if closed {
				return &MalformedError{Index: i, Reason: cmd.String() + " after Close"}
			}
		}
	}

	for i, p := range d.Coords {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return &MalformedError{Index: -1, Reason: fmt.Sprintf("coordinate %d is not finite", i)}
		}
	}
	return nil
}

// MalformedError indicates a structurally invalid path.
type MalformedError struct {
	Index  int // index of the offending command, or -1
	Reason string
}

func (err *MalformedError) Error() string {
	if err.Index < 0 {
		return "path: " + err.Reason
	}
	return fmt.Sprintf("path: command %d: %s", err.Index, err.Reason)
}
