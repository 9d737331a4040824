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

// Package outline converts icon paths from their source coordinate system
// into glyph outlines in font units.
//
// The source coordinate system has its origin in the top left corner of the
// viewport, with y increasing downwards.  Glyph outlines have y increasing
// upwards, with the bottom of the viewport on the baseline.  The longer side
// of the viewport is scaled to the em size.
package outline

import (
	"errors"
	"math"

	"github.com/cipherchabon/svg2font/path"
	"github.com/cipherchabon/svg2font/quadratic"
	"github.com/cipherchabon/svg2font/winding"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Options control the outline construction.
// Zero fields are replaced by the corresponding default values.
type Options struct {
	// UnitsPerEm is the em size of the target font.
	UnitsPerEm float64

	// Tolerance is the maximal error, in font units, allowed when cubic
	// Bézier segments are replaced by quadratic ones.
	Tolerance float64

	// MaxDepth limits the number of times a cubic segment is bisected.
	MaxDepth int
}

// Default values for the fields of [Options].
const (
	DefaultUnitsPerEm = 1000
)

func (opt *Options) resolve() Options {
	res := Options{
		UnitsPerEm: DefaultUnitsPerEm,
		Tolerance:  quadratic.DefaultTolerance,
		MaxDepth:   quadratic.DefaultMaxDepth,
	}
	if opt == nil {
		return res
	}
	if opt.UnitsPerEm > 0 {
		res.UnitsPerEm = opt.UnitsPerEm
	}
	if opt.Tolerance > 0 {
		res.Tolerance = opt.Tolerance
	}
	if opt.MaxDepth > 0 {
		res.MaxDepth = opt.MaxDepth
	}
	return res
}

// ErrInvalidViewport is returned when the viewport width or height is not
// a finite, positive number.
var ErrInvalidViewport = errors.New("outline: invalid viewport")

// MalformedPathError is returned for structurally invalid input paths.
type MalformedPathError struct {
	Err *path.MalformedError
}

func (err *MalformedPathError) Error() string {
	return "outline: " + err.Err.Error()
}

func (err *MalformedPathError) Unwrap() error {
	return err.Err
}

// Matrix returns the transformation from the coordinate system of a
// width×height viewport to font units.
func Matrix(width, height, unitsPerEm float64) (matrix.Matrix, error) {
	if !isPositive(width) || !isPositive(height) || !isPositive(unitsPerEm) {
		return matrix.Identity, ErrInvalidViewport
	}
	s := unitsPerEm / math.Max(width, height)
	return matrix.Matrix{s, 0, 0, -s, 0, height * s}, nil
}

func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Build converts the path p, given in the coordinate system of a
// width×height viewport, into a glyph outline.
//
// The result uses only MoveTo, LineTo, QuadTo and Close commands, and its
// contours follow the non-zero winding convention.  An empty input path
// gives an empty outline.  If opt is nil, default options are used.
func Build(p *path.Data, width, height float64, rule path.FillRule, opt *Options) (*path.Data, error) {
	o := opt.resolve()

	m, err := Matrix(width, height, o.UnitsPerEm)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		var pathErr *path.MalformedError
		if errors.As(err, &pathErr) {
			return nil, &MalformedPathError{Err: pathErr}
		}
		return nil, err
	}
	if p.IsEmpty() {
		return &path.Data{}, nil
	}

	normalized := winding.Normalize(p.Transform(m), rule)

	res := &path.Data{}
	var quads []quadratic.Quad
	var cur vec.Vec2
	for cmd, pts := range normalized.All() {
		switch cmd {
		case path.CmdMoveTo:
			res.MoveTo(pts[0])
			cur = pts[0]
		case path.CmdLineTo:
			res.LineTo(pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			res.QuadTo(pts[0], pts[1])
			cur = pts[1]
		case path.CmdCubeTo:
			c := quadratic.Cubic{P0: cur, P1: pts[0], P2: pts[1], P3: pts[2]}
			quads = quadratic.AppendApproximation(quads[:0], c, o.Tolerance, o.MaxDepth)
			for _, q := range quads {
				res.QuadTo(q.P1, q.P2)
			}
			cur = pts[2]
		case path.CmdClose:
			res.Close()
		}
	}
	return res, nil
}

// NumQuads returns the number of quadratic segments in p.
func NumQuads(p *path.Data) int {
	n := 0
	for _, cmd := range p.Cmds {
		if cmd == path.CmdQuadTo {
			n++
		}
	}
	return n
}
