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

// Package manifest writes and reads the JSON description of an icon font.
//
// A manifest lists every icon of a font together with the file it was
// loaded from and the code point it was assigned.  Code points are
// written as upper case hexadecimal strings without a prefix, for
// example "E000".
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cipherchabon/svg2font/iconset"
)

// Manifest describes the icons of a font.
type Manifest struct {
	FontFamily string `json:"fontFamily"`
	Icons      []Icon `json:"icons"`
}

// Icon is a single manifest entry.
type Icon struct {
	Name      string    `json:"name"`
	Filename  string    `json:"filename"`
	Codepoint Codepoint `json:"codepoint"`
}

// Codepoint is a Unicode code point which is stored as a hexadecimal
// string in JSON.
type Codepoint rune

func (c Codepoint) String() string {
	return fmt.Sprintf("%04X", rune(c))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Codepoint) MarshalText() ([]byte, error) {
	if c < 0 || c > 0x10FFFF {
		return nil, fmt.Errorf("manifest: invalid code point %d", int32(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *Codepoint) UnmarshalText(text []byte) error {
	x, err := strconv.ParseUint(string(text), 16, 32)
	if err != nil || x > 0x10FFFF {
		return fmt.Errorf("manifest: invalid code point %q", text)
	}
	*c = Codepoint(x)
	return nil
}

// New creates the manifest for a font built from the given entries.
// The entries must be in glyph order.
func New(family string, entries []*iconset.Entry) *Manifest {
	m := &Manifest{
		FontFamily: family,
		Icons:      make([]Icon, len(entries)),
	}
	for i, e := range entries {
		m.Icons[i] = Icon{
			Name:      e.Name,
			Filename:  e.Filename,
			Codepoint: Codepoint(e.Codepoint),
		}
	}
	return m
}

// Write writes the manifest as indented JSON.
func (m *Manifest) Write(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Read decodes a manifest written by [Manifest.Write].
func Read(r io.Reader) (*Manifest, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	m := &Manifest{}
	err := dec.Decode(m)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if m.FontFamily == "" {
		return nil, errNoFamily
	}
	return m, nil
}

var errNoFamily = errors.New("manifest: missing font family")
