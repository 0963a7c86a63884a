// seehuhn.de/go/glyphsheet - character tables for font files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package font

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphsheet/pdf"
)

func writeGoRegular(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "goregular.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestEmbed(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}

	F, err := Embed(w, writeGoRegular(t))
	if err != nil {
		t.Fatal(err)
	}
	F.Filters = nil // keep the CMaps readable

	s := F.Encode("AB€")
	if string(s) != "AB€" {
		t.Errorf("Encode returned %q", s)
	}
	err = F.Close()
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"/Subtype /Type0",
		"/Subtype /CIDFontType2",
		"/CIDToGIDMap /Identity",
		"/BaseFont /" + F.PostScriptName(),
		"/FontFile2 ",
		"/Length1 ",
		"/Type /FontDescriptor",
		"/Type /CMap",
		"4 begincodespacerange\n",
		"1 beginbfrange\n<41> <42> <0041>\nendbfrange\n",
		"1 beginbfchar\n<e282ac> <20ac>\nendbfchar\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}

	// Length1 gives the size of the embedded font program
	m := regexp.MustCompile(`/Length1 (\d+)`).FindStringSubmatch(out)
	if m == nil {
		t.Fatal("Length1 not found")
	}
	if length1, _ := strconv.Atoi(m[1]); length1 < 10000 || length1 > len(out) {
		t.Errorf("implausible Length1 %d", length1)
	}

	// a second call to Close must not write anything
	n := buf.Len()
	err = F.Close()
	if err != nil || buf.Len() != n {
		t.Errorf("second Close: err=%v, %d bytes written", err, buf.Len()-n)
	}
}

func TestEmbedMissingFile(t *testing.T) {
	w, err := pdf.NewWriter(&bytes.Buffer{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Embed(w, filepath.Join(t.TempDir(), "missing.ttf"))
	if !os.IsNotExist(err) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestEmbedGarbage(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "garbage.ttf")
	err := os.WriteFile(fname, []byte("this is not a font"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	w, err := pdf.NewWriter(&bytes.Buffer{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Embed(w, fname)
	if err == nil {
		t.Error("garbage font file accepted")
	}
}

func TestEncodeRecordsCodes(t *testing.T) {
	w, err := pdf.NewWriter(&bytes.Buffer{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	F, err := Embed(w, writeGoRegular(t))
	if err != nil {
		t.Fatal(err)
	}

	F.Encode("aba")
	F.Encode("\xed\xa0\x80") // U+D800, not in the font
	F.Encode("\x80")         // not a valid code

	if len(F.used) != 3 {
		t.Fatalf("got %d codes, want 3", len(F.used))
	}
	if F.used["a"].cp != 'a' || F.used["a"].gid == 0 {
		t.Errorf("wrong entry for a: %v", F.used["a"])
	}
	if u := F.used["\xed\xa0\x80"]; u.cp != 0xD800 || u.gid != 0 {
		t.Errorf("wrong entry for U+D800: %v", u)
	}
}

func TestEncodeWidths(t *testing.T) {
	ww := []widthRec{
		{CID: 8, W: 800},
		{CID: 0, W: 500},
		{CID: 1, W: 600},
		{CID: 2, W: 600},
		{CID: 3, W: 600},
		{CID: 5, W: 500},
		{CID: 7, W: 700},
	}
	dw, W := encodeWidths(ww)
	if dw != 600 {
		t.Errorf("DW = %g, want 600", dw)
	}
	want := pdf.Array{
		pdf.Integer(0), pdf.Integer(0), pdf.Number(500),
		pdf.Integer(5), pdf.Array{pdf.Number(500)},
		pdf.Integer(7), pdf.Array{pdf.Number(700), pdf.Number(800)},
	}
	if d := cmp.Diff(want, W); d != "" {
		t.Errorf("W (-want +got):\n%s", d)
	}
}

func TestEncodeWidthsDefaultOnly(t *testing.T) {
	ww := []widthRec{{CID: 0, W: 1000}, {CID: 1, W: 1000}}
	dw, W := encodeWidths(ww)
	if dw != 1000 || W != nil {
		t.Errorf("got DW=%g W=%v", dw, W)
	}
}

func TestDescriptorFlags(t *testing.T) {
	fd := &Descriptor{
		FontName:   "Test",
		IsSymbolic: true,
		IsItalic:   true,
		FontBBox:   rect.Rect{LLx: -100, LLy: -200, URx: 1000, URy: 900},
	}
	dict := fd.AsDict()
	if dict["Flags"] != pdf.Integer(68) {
		t.Errorf("Flags = %v, want 68", dict["Flags"])
	}
	want := pdf.Array{pdf.Number(-100), pdf.Number(-200), pdf.Number(1000), pdf.Number(900)}
	if d := cmp.Diff(want, dict["FontBBox"]); d != "" {
		t.Errorf("FontBBox: %s", d)
	}

	fd.IsSymbolic = false
	if dict := fd.AsDict(); dict["Flags"] != pdf.Integer(96) {
		t.Errorf("Flags = %v, want 96", dict["Flags"])
	}
}
