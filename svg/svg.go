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

// Package svg reads the outlines of SVG icons.
//
// Only the parts of SVG which matter for single-color icons are supported:
// paths, basic shapes, groups and transformations.  All filled shapes are
// merged into one path.  Strokes, paint servers, text, clipping and masks
// are ignored.
package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cipherchabon/svg2font/path"
	"seehuhn.de/go/geom/matrix"
)

// Image is the outline of an SVG image.
type Image struct {
	// Width and Height give the size of the viewport, in user units.
	// Path coordinates are relative to the top-left corner of the
	// viewport, with the y-axis pointing down.
	Width, Height float64

	Path *path.Data

	// FillRule is EvenOdd if any of the shapes uses the even-odd rule.
	FillRule path.FillRule
}

var (
	errNoSVG      = errors.New("svg: missing <svg> root element")
	errNoViewport = errors.New("svg: missing viewBox or width/height")
)

// ParseFile reads an SVG image from a file.
func ParseFile(fname string) (*Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Parse(fd)
}

// Parse reads an SVG document and collects the filled outlines.
func Parse(r io.Reader) (*Image, error) {
	d := xml.NewDecoder(r)
	for {
		t, err := d.Token()
		if err == io.EOF {
			return nil, errNoSVG
		} else if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}
		e, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		if e.Name.Local != "svg" {
			return nil, errNoSVG
		}
		return parseRoot(d, e)
	}
}

func parseRoot(d *xml.Decoder, e xml.StartElement) (*Image, error) {
	img := &Image{Path: &path.Data{}}

	m := matrix.Identity
	if vb, ok := findAttr(e, "viewBox"); ok {
		v, ok := parseNumbers(vb)
		if !ok || len(v) != 4 || !(v[2] > 0) || !(v[3] > 0) {
			return nil, fmt.Errorf("svg: invalid viewBox %q", vb)
		}
		img.Width, img.Height = v[2], v[3]
		m = matrix.Translate(-v[0], -v[1])
	} else {
		w, okW := lengthAttr(e, "width")
		h, okH := lengthAttr(e, "height")
		if !okW || !okH || !(w > 0) || !(h > 0) {
			return nil, errNoViewport
		}
		img.Width, img.Height = w, h
	}

	b := &builder{img: img}
	st := state{m: m}
	if err := b.children(d, st.inherit(e)); err != nil {
		return nil, err
	}
	return img, nil
}

// state holds the inherited properties of an element.
type state struct {
	m      matrix.Matrix
	rule   path.FillRule
	noFill bool
}

// inherit returns the state for element e, given the state of its parent.
// The transform attribute of e is not included.
func (st state) inherit(e xml.StartElement) state {
	props := presentation(e)
	if v, ok := props["fill-rule"]; ok {
		switch v {
		case "evenodd":
			st.rule = path.EvenOdd
		case "nonzero":
			st.rule = path.NonZero
		}
	}
	if v, ok := props["fill"]; ok && v != "inherit" {
		st.noFill = v == "none" || v == "transparent"
	}
	return st
}

// presentation collects the presentation attributes of e, with values
// from the style attribute taking precedence.
func presentation(e xml.StartElement) map[string]string {
	props := make(map[string]string)
	for _, a := range e.Attr {
		switch a.Name.Local {
		case "fill", "fill-rule", "display", "visibility":
			props[a.Name.Local] = strings.TrimSpace(a.Value)
		}
	}
	if style, ok := findAttr(e, "style"); ok {
		for _, decl := range strings.Split(style, ";") {
			key, val, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			val = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "!important"))
			props[key] = val
		}
	}
	return props
}

func hidden(e xml.StartElement) bool {
	props := presentation(e)
	return props["display"] == "none"
}

type builder struct {
	img *Image
}

// children processes the child elements of a container, up to and
// including the closing tag.
func (b *builder) children(d *xml.Decoder, st state) error {
	for {
		t, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return fmt.Errorf("svg: %w", io.ErrUnexpectedEOF)
			}
			return fmt.Errorf("svg: %w", err)
		}
		switch t := t.(type) {
		case xml.StartElement:
			if err := b.element(d, t, st); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (b *builder) element(d *xml.Decoder, e xml.StartElement, parent state) error {
	if hidden(e) {
		return d.Skip()
	}

	st := parent.inherit(e)
	if tr, ok := findAttr(e, "transform"); ok {
		m, err := ParseTransform(tr)
		if err != nil {
			return err
		}
		st.m = m.Mul(st.m)
	}

	switch e.Name.Local {
	case "g", "a", "switch", "svg":
		return b.children(d, st)
	case "path", "rect", "circle", "ellipse", "polygon", "polyline":
		// handled below
	default:
		// defs, symbol, clipPath, mask, text, style, metadata, ...
		return d.Skip()
	}

	p, err := shape(e)
	if err != nil {
		return err
	}
	if err := d.Skip(); err != nil {
		return err
	}
	if st.noFill || p == nil || p.IsEmpty() {
		return nil
	}
	b.img.Path.Append(p.Transform(st.m))
	if st.rule == path.EvenOdd {
		b.img.FillRule = path.EvenOdd
	}
	return nil
}

func findAttr(e xml.StartElement, name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}
