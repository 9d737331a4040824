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

// Package iconset loads a directory of SVG icons.
package iconset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/cipherchabon/svg2font"
	"github.com/cipherchabon/svg2font/svg"
)

// DefaultBase is the first code point of the Unicode Private Use Area.
const DefaultBase rune = 0xE000

// Entry is an icon loaded from a file.
type Entry struct {
	*svg2font.Icon

	// Filename is the file name without the ".svg" extension.
	Filename string
}

// Load reads all ".svg" files in dir, in order of their file names.
// Subdirectories are not searched.
//
// The icons are assigned consecutive code points, starting at base.
// Files which cannot be parsed are skipped with a warning and do not
// use up a code point.  If logger is nil, the logger of the svg2font
// package is used.
func Load(dir string, base rune, logger *slog.Logger) ([]*Entry, error) {
	if logger == nil {
		logger = svg2font.Logger()
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("iconset: %w", err)
	}

	var res []*Entry
	r := base
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || filepath.Ext(name) != ".svg" {
			continue
		}
		fname := filepath.Join(dir, name)
		img, err := svg.ParseFile(fname)
		if err != nil {
			logger.Warn("skipping icon", "file", fname, "error", err)
			continue
		}

		stem := strings.TrimSuffix(name, ".svg")
		e := &Entry{
			Icon: &svg2font.Icon{
				Name:      Identifier(stem),
				Path:      img.Path,
				Width:     img.Width,
				Height:    img.Height,
				FillRule:  img.FillRule,
				Codepoint: r,
			},
			Filename: stem,
		}
		logger.Debug("parsed icon",
			slog.String("file", name),
			slog.String("codepoint", fmt.Sprintf("U+%04X", r)))
		res = append(res, e)
		r++
	}
	return res, nil
}

// Icons returns the icons of the entries, in order.
func Icons(entries []*Entry) []*svg2font.Icon {
	res := make([]*svg2font.Icon, len(entries))
	for i, e := range entries {
		res[i] = e.Icon
	}
	return res
}

var styleSuffixes = strings.NewReplacer(
	"-filled", "Filled",
	"-stroke", "Stroke",
	"-outline", "Outline",
)

// Identifier converts a file name stem into a snake_case identifier,
// suitable for use in source code.  For example "arrowDown-filled"
// becomes "arrow_down_filled".  Names which do not start with a letter
// get the prefix "icon_".
func Identifier(stem string) string {
	name := styleSuffixes.Replace(stem)

	b := &strings.Builder{}
	prevLower := false
	for _, c := range name {
		switch {
		case c == '-' || c == ' ':
			b.WriteByte('_')
			prevLower = false
		case unicode.IsUpper(c) && prevLower:
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(c))
			prevLower = false
		default:
			b.WriteRune(unicode.ToLower(c))
			prevLower = unicode.IsLower(c)
		}
	}

	res := b.String()
	if res == "" || unicode.IsDigit([]rune(res)[0]) {
		res = "icon_" + res
	}
	return res
}
