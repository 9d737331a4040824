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

package sfnt

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/cipherchabon/svg2font/path"
	"github.com/cipherchabon/svg2font/sfnt/header"
	"golang.org/x/image/font"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/glyph"
)

func square(x0, y0, x1, y1 float64) *path.Data {
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: x0, Y: y0})
	p.LineTo(vec.Vec2{X: x0, Y: y1})
	p.LineTo(vec.Vec2{X: x1, Y: y1})
	p.LineTo(vec.Vec2{X: x1, Y: y0})
	p.Close()
	return p
}

func testFont() *Font {
	ring := square(0, 0, 1000, 1000)
	ring.Append(square(250, 250, 750, 750).Reverse())

	curve := &path.Data{}
	curve.MoveTo(vec.Vec2{X: 100, Y: 100})
	curve.QuadTo(vec.Vec2{X: 500, Y: 900}, vec.Vec2{X: 900, Y: 100})
	curve.Close()

	return &Font{
		FamilyName: "Test Icons",
		UnitsPerEm: 1000,
		Ascent:     800,
		Descent:    -200,
		Outlines: []*path.Data{
			{},
			square(100, 100, 900, 900),
			ring,
			curve,
		},
		CMap: map[rune]glyph.ID{
			0xE000: 1,
			0xE001: 2,
			0xE002: 3,
		},
	}
}

func TestEncode(t *testing.T) {
	data, err := testFont().Encode()
	if err != nil {
		t.Fatal(err)
	}
	if got := header.Checksum(data); got != 0xB1B0AFBA {
		t.Errorf("file checksum %08x", got)
	}

	f, err := xsfnt.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if n := f.NumGlyphs(); n != 4 {
		t.Errorf("got %d glyphs, want 4", n)
	}
	if u := f.UnitsPerEm(); u != 1000 {
		t.Errorf("got %d units per em", u)
	}

	buf := &xsfnt.Buffer{}
	family, err := f.Name(buf, xsfnt.NameIDFamily)
	if err != nil {
		t.Fatal(err)
	}
	if family != "Test Icons" {
		t.Errorf("got family %q", family)
	}
	psName, err := f.Name(buf, xsfnt.NameIDPostScript)
	if err != nil {
		t.Fatal(err)
	}
	if psName != "TestIcons" {
		t.Errorf("got PostScript name %q", psName)
	}

	for r, want := range map[rune]xsfnt.GlyphIndex{
		0xE000: 1,
		0xE001: 2,
		0xE002: 3,
		0xE003: 0,
		'A':    0,
	} {
		gid, err := f.GlyphIndex(buf, r)
		if err != nil {
			t.Fatal(err)
		}
		if gid != want {
			t.Errorf("U+%04X: got glyph %d, want %d", r, gid, want)
		}
	}

	for gid := 0; gid < 4; gid++ {
		adv, err := f.GlyphAdvance(buf, xsfnt.GlyphIndex(gid), fixed.I(1000), font.HintingNone)
		if err != nil {
			t.Fatal(err)
		}
		if adv != fixed.I(1000) {
			t.Errorf("glyph %d: advance %v", gid, adv)
		}
	}

	segs, err := f.LoadGlyph(buf, 2, fixed.I(1000), nil)
	if err != nil {
		t.Fatal(err)
	}
	moves := 0
	for _, s := range segs {
		if s.Op == xsfnt.SegmentOpMoveTo {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("glyph 2 has %d contours, want 2", moves)
	}

	segs, err = f.LoadGlyph(buf, 3, fixed.I(1000), nil)
	if err != nil {
		t.Fatal(err)
	}
	hasQuad := false
	for _, s := range segs {
		if s.Op == xsfnt.SegmentOpQuadTo {
			hasQuad = true
		}
	}
	if !hasQuad {
		t.Error("glyph 3 lost its curve")
	}
}

func TestEncodeLayout(t *testing.T) {
	_, layout, err := testFont().EncodeLayout()
	if err != nil {
		t.Fatal(err)
	}
	if layout.NumGlyphs != 4 || layout.LocaFormat != 0 {
		t.Errorf("unexpected layout %+v", layout)
	}
}

func TestReproducible(t *testing.T) {
	a, err := testFont().Encode()
	if err != nil {
		t.Fatal(err)
	}
	b, err := testFont().Encode()
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("output differs between runs")
	}
}

func TestInvalidCodepoints(t *testing.T) {
	fnt := testFont()
	fnt.CMap[0xD800] = 2
	fnt.CMap[0x110000] = 3
	data, err := fnt.Encode()
	if err != nil {
		t.Fatal(err)
	}
	f, err := xsfnt.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if n := f.NumGlyphs(); n != 4 {
		t.Errorf("got %d glyphs, want 4", n)
	}
}

func TestNonBMP(t *testing.T) {
	fnt := testFont()
	fnt.CMap[0xF0000] = 3
	data, err := fnt.Encode()
	if err != nil {
		t.Fatal(err)
	}
	f, err := xsfnt.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	gid, err := f.GlyphIndex(&xsfnt.Buffer{}, 0xF0000)
	if err != nil {
		t.Fatal(err)
	}
	if gid != 3 {
		t.Errorf("got glyph %d, want 3", gid)
	}
}

func TestEncodingErrors(t *testing.T) {
	cubic := &path.Data{}
	cubic.MoveTo(vec.Vec2{X: 0, Y: 0})
	cubic.CubeTo(vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 0})
	cubic.Close()

	huge := square(0, 0, 40000, 40000)

	for _, test := range []struct {
		font  *Font
		table string
	}{
		{&Font{UnitsPerEm: 1000}, "maxp"},
		{&Font{Outlines: []*path.Data{{}}}, "head"},
		{&Font{UnitsPerEm: 20000, Outlines: []*path.Data{{}}}, "head"},
		{&Font{UnitsPerEm: 1000, Outlines: []*path.Data{{}, cubic}}, "glyf"},
		{&Font{UnitsPerEm: 1000, Outlines: []*path.Data{{}, huge}}, "glyf"},
		{&Font{
			UnitsPerEm: 1000,
			Outlines:   []*path.Data{{}},
			CMap:       map[rune]glyph.ID{0xE000: 5},
		}, "cmap"},
	} {
		_, err := test.font.Encode()
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("expected *EncodingError, got %v", err)
			continue
		}
		if encErr.Table != test.table {
			t.Errorf("error in table %q, want %q", encErr.Table, test.table)
		}
	}
}

type dirEntry struct {
	Tag    string
	Offset uint32
	Length uint32
}

// readDirectory returns the table records of an sfnt file.
func readDirectory(t *testing.T, data []byte) []dirEntry {
	t.Helper()
	if len(data) < 12 {
		t.Fatal("file too short")
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	if len(data) < 12+16*numTables {
		t.Fatal("truncated table directory")
	}
	res := make([]dirEntry, numTables)
	for i := range res {
		rec := data[12+16*i:]
		res[i] = dirEntry{
			Tag:    string(rec[0:4]),
			Offset: binary.BigEndian.Uint32(rec[8:12]),
			Length: binary.BigEndian.Uint32(rec[12:16]),
		}
	}
	return res
}

func tableData(t *testing.T, data []byte, tag string) []byte {
	t.Helper()
	for _, e := range readDirectory(t, data) {
		if e.Tag == tag {
			return data[e.Offset : e.Offset+e.Length]
		}
	}
	t.Fatalf("table %q not found", tag)
	return nil
}

func TestTableOrder(t *testing.T) {
	data, err := testFont().Encode()
	if err != nil {
		t.Fatal(err)
	}
	dir := readDirectory(t, data)
	if len(dir) != len(TableOrder) {
		t.Fatalf("got %d tables, want %d", len(dir), len(TableOrder))
	}

	offset := make(map[string]uint32, len(dir))
	for i, e := range dir {
		if i > 0 && dir[i-1].Tag >= e.Tag {
			t.Errorf("directory not sorted: %q before %q", dir[i-1].Tag, e.Tag)
		}
		if e.Offset%4 != 0 {
			t.Errorf("table %q at unaligned offset %d", e.Tag, e.Offset)
		}
		offset[e.Tag] = e.Offset
	}

	prev := uint32(0)
	for _, tag := range TableOrder {
		off, ok := offset[tag]
		if !ok {
			t.Fatalf("table %q missing", tag)
		}
		if off <= prev {
			t.Errorf("table %q at offset %d, expected after %d", tag, off, prev)
		}
		prev = off
	}
}

func TestHorizontalMetrics(t *testing.T) {
	data, err := testFont().Encode()
	if err != nil {
		t.Fatal(err)
	}

	hhea := tableData(t, data, "hhea")
	if len(hhea) != 36 {
		t.Fatalf("hhea has %d bytes", len(hhea))
	}
	for _, test := range []struct {
		name string
		pos  int
		want uint16
	}{
		{"ascender", 4, 800},
		{"descender", 6, 0xFF38}, // -200
		{"lineGap", 8, 0},
		{"advanceWidthMax", 10, 1000},
		{"numberOfHMetrics", 34, 4},
	} {
		if got := binary.BigEndian.Uint16(hhea[test.pos:]); got != test.want {
			t.Errorf("%s = %d, want %d", test.name, got, test.want)
		}
	}

	hmtx := tableData(t, data, "hmtx")
	if len(hmtx) != 4*4 {
		t.Fatalf("hmtx has %d bytes", len(hmtx))
	}
	for i := 0; i < 4; i++ {
		adv := binary.BigEndian.Uint16(hmtx[4*i:])
		lsb := binary.BigEndian.Uint16(hmtx[4*i+2:])
		if adv != 1000 || lsb != 0 {
			t.Errorf("glyph %d: advance %d, lsb %d", i, adv, lsb)
		}
	}
}

func TestOS2(t *testing.T) {
	data, err := testFont().Encode()
	if err != nil {
		t.Fatal(err)
	}
	os2 := tableData(t, data, "OS/2")
	if len(os2) != 96 {
		t.Fatalf("OS/2 has %d bytes", len(os2))
	}
	for _, test := range []struct {
		name string
		pos  int
		want uint16
	}{
		{"version", 0, 4},
		{"usWeightClass", 4, 400},
		{"usWidthClass", 6, 5},
		{"fsType", 8, 0},
		{"fsSelection", 62, 0x00C0},
		{"usFirstCharIndex", 64, 0xE000},
		{"usLastCharIndex", 66, 0xE002},
		{"sTypoAscender", 68, 800},
		{"usWinAscent", 74, 1000},
		{"usWinDescent", 76, 200},
		{"usDefaultChar", 90, 0},
		{"usBreakChar", 92, 0x20},
	} {
		if got := binary.BigEndian.Uint16(os2[test.pos:]); got != test.want {
			t.Errorf("%s = %d, want %d", test.name, got, test.want)
		}
	}
	// ulUnicodeRange2, bit 60 overall
	if got := binary.BigEndian.Uint32(os2[46:]); got&(1<<28) == 0 {
		t.Error("Private Use Area bit not set")
	}
}

func TestNameRecords(t *testing.T) {
	data, err := testFont().Encode()
	if err != nil {
		t.Fatal(err)
	}
	name := tableData(t, data, "name")
	numRec := int(binary.BigEndian.Uint16(name[2:]))
	if numRec != 7 {
		t.Fatalf("got %d name records, want 7", numRec)
	}
	for i := 0; i < numRec; i++ {
		rec := name[6+12*i:]
		platform := binary.BigEndian.Uint16(rec[0:])
		encoding := binary.BigEndian.Uint16(rec[2:])
		language := binary.BigEndian.Uint16(rec[4:])
		nameID := binary.BigEndian.Uint16(rec[6:])
		if platform != 3 || encoding != 1 || language != 0x0409 {
			t.Errorf("record %d: platform %d, encoding %d, language %04x",
				i, platform, encoding, language)
		}
		if int(nameID) != i {
			t.Errorf("record %d has name ID %d", i, nameID)
		}
	}

	f, err := xsfnt.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	buf := &xsfnt.Buffer{}
	for id, want := range map[xsfnt.NameID]string{
		xsfnt.NameIDCopyright:        "Generated by svg2font",
		xsfnt.NameIDSubfamily:        "Regular",
		xsfnt.NameIDUniqueIdentifier: "svg2font: Test Icons",
		xsfnt.NameIDFull:             "Test Icons",
		xsfnt.NameIDVersion:          "Version 1.0",
	} {
		got, err := f.Name(buf, id)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("name %d: got %q, want %q", id, got, want)
		}
	}
}

func TestShortenLoca(t *testing.T) {
	long := []byte{
		0, 0, 0, 0,
		0, 0, 0, 20,
		0, 1, 0xFF, 0xFC, // 0x1FFFC
	}
	short, ok := shortenLoca(long)
	if !ok {
		t.Fatal("offsets should fit the short format")
	}
	want := []byte{0, 0, 0, 10, 0xFF, 0xFE}
	if string(short) != string(want) {
		t.Errorf("got % x, want % x", short, want)
	}

	for _, data := range [][]byte{
		{0, 0, 0, 0, 0, 2, 0, 0},  // 0x20000 / 2 does not fit
		{0, 0, 0, 0, 0, 0, 0, 11}, // odd offset
	} {
		if _, ok := shortenLoca(data); ok {
			t.Errorf("% x: unexpected short format", data)
		}
	}
}

func TestLargeGlyphData(t *testing.T) {
	// Each glyph carries a few hundred bytes, so that the final offset
	// exceeds 0xFFFF but still fits into a short loca table.
	wiggle := &path.Data{}
	wiggle.MoveTo(vec.Vec2{X: 0, Y: 0})
	for i := 1; i < 100; i++ {
		wiggle.LineTo(vec.Vec2{X: float64(i * 7), Y: float64((i * 397) % 1000)})
	}
	wiggle.Close()

	fnt := testFont()
	for len(fnt.Outlines) < 300 {
		fnt.Outlines = append(fnt.Outlines, wiggle)
	}
	data, layout, err := fnt.EncodeLayout()
	if err != nil {
		t.Fatal(err)
	}
	glyf := tableData(t, data, "glyf")
	if len(glyf) <= 0xFFFF || len(glyf)/2 > 0xFFFF {
		t.Fatalf("glyf has %d bytes, test needs more than 0xFFFF", len(glyf))
	}
	if layout.LocaFormat != 0 {
		t.Errorf("loca format %d, want short", layout.LocaFormat)
	}
	loca := tableData(t, data, "loca")
	if len(loca) != 2*(len(fnt.Outlines)+1) {
		t.Errorf("short loca has %d bytes", len(loca))
	}

	f, err := xsfnt.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	segs, err := f.LoadGlyph(&xsfnt.Buffer{}, 299, fixed.I(1000), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) < 100 || segs[0].Op != xsfnt.SegmentOpMoveTo {
		t.Errorf("last glyph has %d segments, want at least 100", len(segs))
	}
}
