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

// Package quadratic approximates cubic Bézier curves by sequences of
// quadratic Bézier curves, the only curve type available in TrueType glyph
// outlines.
package quadratic

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Quad is a quadratic Bézier curve.
type Quad struct {
	P0, P1, P2 vec.Vec2
}

// Eval returns the point on the curve at parameter t.
func (q Quad) Eval(t float64) vec.Vec2 {
	s := 1 - t
	return q.P0.Mul(s * s).Add(q.P1.Mul(2 * s * t)).Add(q.P2.Mul(t * t))
}

// BBox returns the tight bounding box of the curve as
// (xMin, yMin, xMax, yMax).
func (q Quad) BBox() (xMin, yMin, xMax, yMax float64) {
	xMin, xMax = minMax(q.P0.X, q.P2.X)
	yMin, yMax = minMax(q.P0.Y, q.P2.Y)
	for _, t := range []float64{
		quadExtremum(q.P0.X, q.P1.X, q.P2.X),
		quadExtremum(q.P0.Y, q.P1.Y, q.P2.Y),
	} {
		if t <= 0 || t >= 1 {
			continue
		}
		p := q.Eval(t)
		xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
		yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
	}
	return
}

// quadExtremum returns the parameter where the derivative of a
// one-dimensional quadratic vanishes, or -1 if there is none.
func quadExtremum(a, b, c float64) float64 {
	d := a - 2*b + c
	if d == 0 {
		return -1
	}
	return (a - b) / d
}

// Cubic is a cubic Bézier curve.
type Cubic struct {
	P0, P1, P2, P3 vec.Vec2
}

// Eval returns the point on the curve at parameter t.
func (c Cubic) Eval(t float64) vec.Vec2 {
	s := 1 - t
	return c.P0.Mul(s * s * s).
		Add(c.P1.Mul(3 * s * s * t)).
		Add(c.P2.Mul(3 * s * t * t)).
		Add(c.P3.Mul(t * t * t))
}

// Split divides the curve at t=0.5 using De Casteljau's construction.
func (c Cubic) Split() (Cubic, Cubic) {
	p01 := midpoint(c.P0, c.P1)
	p12 := midpoint(c.P1, c.P2)
	p23 := midpoint(c.P2, c.P3)
	p012 := midpoint(p01, p12)
	p123 := midpoint(p12, p23)
	p0123 := midpoint(p012, p123)

	return Cubic{c.P0, p01, p012, p0123}, Cubic{p0123, p123, p23, c.P3}
}

// BBox returns the tight bounding box of the curve as
// (xMin, yMin, xMax, yMax).
func (c Cubic) BBox() (xMin, yMin, xMax, yMax float64) {
	xMin, xMax = minMax(c.P0.X, c.P3.X)
	yMin, yMax = minMax(c.P0.Y, c.P3.Y)

	var tt []float64
	tt = cubicExtrema(tt, c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	tt = cubicExtrema(tt, c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	for _, t := range tt {
		p := c.Eval(t)
		xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
		yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
	}
	return
}

// cubicExtrema appends the parameters in (0, 1) where the derivative of a
// one-dimensional cubic vanishes.
func cubicExtrema(tt []float64, p0, p1, p2, p3 float64) []float64 {
	// derivative / 3 = a t^2 + b t + c
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	add := func(t float64) {
		if t > 0 && t < 1 {
			tt = append(tt, t)
		}
	}

	if math.Abs(a) < 1e-12 {
		if b != 0 {
			add(-c / b)
		}
		return tt
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return tt
	}
	sq := math.Sqrt(disc)
	add((-b + sq) / (2 * a))
	add((-b - sq) / (2 * a))
	return tt
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
