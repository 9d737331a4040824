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
	"fmt"
	"log/slog"
	"sync"

	"github.com/cipherchabon/svg2font/outline"
	"github.com/cipherchabon/svg2font/path"
	"github.com/cipherchabon/svg2font/sfnt"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
)

// Build converts the icons into a TrueType font with the given family name.
//
// The icons must be sorted by strictly increasing code point.  Glyph 0 of
// the font is the missing glyph, icon i becomes glyph i+1.  Code points
// which are not Unicode scalar values keep their glyph but are left out of
// the character map.  If cfg is nil, [DefaultConfig] is used.
func Build(icons []*Icon, familyName string, cfg *Config) ([]byte, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if len(icons) == 0 {
		return nil, ErrNoIcons
	}
	for i := 1; i < len(icons); i++ {
		if icons[i].Codepoint <= icons[i-1].Codepoint {
			return nil, &IconError{Index: i, Name: icons[i].Name, Err: ErrCodepointOrder}
		}
	}

	opt := &outline.Options{
		UnitsPerEm: float64(c.UnitsPerEm),
		Tolerance:  c.Tolerance,
		MaxDepth:   c.MaxDepth,
	}
	outlines, err := buildOutlines(icons, opt, c.Workers)
	if err != nil {
		return nil, err
	}

	logger := Logger()
	cmap := make(map[rune]glyph.ID, len(icons))
	for i, icon := range icons {
		cmap[icon.Codepoint] = glyph.ID(i + 1)
		logger.Debug("glyph",
			slog.String("name", icon.Name),
			slog.String("codepoint", fmt.Sprintf("U+%04X", icon.Codepoint)),
			slog.Int("contours", outlines[i+1].NumContours()),
			slog.Int("quadratics", outline.NumQuads(outlines[i+1])))
	}

	upem := c.UnitsPerEm
	if upem == 0 {
		upem = outline.DefaultUnitsPerEm
	}
	// Glyph counts beyond the range of glyph.ID are rejected by the encoder.
	font := &sfnt.Font{
		FamilyName: familyName,
		UnitsPerEm: upem,
		Ascent:     funit.Int16(c.Ascent),
		Descent:    funit.Int16(c.Descent),
		LineGap:    funit.Int16(c.LineGap),
		Copyright:  c.Copyright,
		Version:    c.Version,
		Timestamp:  c.Timestamp,
		Outlines:   outlines,
		CMap:       cmap,
	}
	data, layout, err := font.EncodeLayout()
	if err != nil {
		return nil, err
	}

	locaFormat := "short"
	if layout.LocaFormat != 0 {
		locaFormat = "long"
	}
	logger.Info("font built",
		slog.String("family", familyName),
		slog.Int("glyphs", layout.NumGlyphs),
		slog.Int("bytes", len(data)),
		slog.String("loca", locaFormat))

	return data, nil
}

// buildOutlines converts all icons into glyph outlines.  The result has
// an empty outline at index 0, followed by the outlines of the icons in
// order.  If several icons fail, the error for the first one is returned.
func buildOutlines(icons []*Icon, opt *outline.Options, workers int) ([]*path.Data, error) {
	n := len(icons)
	outlines := make([]*path.Data, n+1)
	outlines[0] = &path.Data{}
	errs := make([]error, n)

	convert := func(i int) {
		icon := icons[i]
		p := icon.Path
		if p == nil {
			p = &path.Data{}
		}
		o, err := outline.Build(p, icon.Width, icon.Height, icon.FillRule, opt)
		if err != nil {
			errs[i] = &IconError{Index: i, Name: icon.Name, Err: err}
			return
		}
		outlines[i+1] = o
	}

	if workers < 2 {
		for i := range icons {
			convert(i)
			if errs[i] != nil {
				return nil, errs[i]
			}
		}
		return outlines, nil
	}

	todo := make(chan int)
	var wg sync.WaitGroup
	for range min(workers, n) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range todo {
				convert(i)
			}
		}()
	}
	for i := range icons {
		todo <- i
	}
	close(todo)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return outlines, nil
}
