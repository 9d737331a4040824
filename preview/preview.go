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

// Package preview renders a standalone HTML page which shows all glyphs of
// an icon font.
//
// The font is embedded into the page as a data URL, so that the page can be
// opened directly from the file system.
package preview

import (
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/cipherchabon/svg2font/iconset"
)

// Write renders the preview page for the font data fontFile, which was
// built from the given entries, to w.
func Write(w io.Writer, family string, fontFile []byte, entries []*iconset.Entry) error {
	p := &page{
		Family: family,
		Font:   base64.StdEncoding.EncodeToString(fontFile),
		Icons:  make([]card, len(entries)),
	}
	for i, e := range entries {
		p.Icons[i] = card{
			Name:      e.Filename,
			Codepoint: fmt.Sprintf("%04X", e.Codepoint),
		}
	}
	return pageTmpl.Execute(w, p)
}

type page struct {
	Family string
	Font   string
	Icons  []card
}

type card struct {
	Name      string
	Codepoint string
}

// fontFace returns the style rules which make the font available to the
// page.  Data URLs are rejected by the escaper of html/template in CSS
// context, so the rules are assembled here.
func fontFace(p *page) template.CSS {
	name := cssString(p.Family)
	b := &strings.Builder{}
	fmt.Fprintf(b, "@font-face {\n")
	fmt.Fprintf(b, "            font-family: %s;\n", name)
	fmt.Fprintf(b, "            src: url('data:font/truetype;base64,%s') format('truetype');\n", p.Font)
	fmt.Fprintf(b, "            font-weight: normal;\n")
	fmt.Fprintf(b, "            font-style: normal;\n")
	fmt.Fprintf(b, "        }\n\n")
	fmt.Fprintf(b, "        .icon-glyph {\n")
	fmt.Fprintf(b, "            font-family: %s;\n", name)
	fmt.Fprintf(b, "        }")
	return template.CSS(b.String())
}

// cssString quotes s as a CSS string literal.  Characters which could end
// the string or the style element are written as hex escapes.
func cssString(s string) string {
	b := &strings.Builder{}
	b.WriteByte('\'')
	for _, r := range s {
		switch {
		case r == '\'' || r == '"' || r == '\\' || r == '<' || r == '>' || r == '&',
			r < 0x20, r == 0x7F:
			fmt.Fprintf(b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

//go:embed preview.html
var pageSource string

var pageTmpl = template.Must(template.New("preview").Funcs(template.FuncMap{
	"fontFace": fontFace,
	"glyph": func(codepoint string) template.HTML {
		return template.HTML("&#x" + codepoint + ";")
	},
}).Parse(pageSource))
