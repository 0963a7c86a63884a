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

package charset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"seehuhn.de/go/sfnt/glyph"
)

// testParser returns faces which enumerate a fixed list of code points.
type testParser struct {
	codes    []uint32
	openErr  error
	closeErr error

	faces []*testFace
}

func (p *testParser) Name() string {
	return "test"
}

func (p *testParser) Open(fileName string) (Face, error) {
	if p.openErr != nil {
		return nil, p.openErr
	}
	f := &testFace{codes: p.codes, closeErr: p.closeErr}
	p.faces = append(p.faces, f)
	return f, nil
}

type testFace struct {
	codes    []uint32
	pos      int
	closed   bool
	closeErr error
}

func (f *testFace) FirstChar() (uint32, glyph.ID) {
	f.pos = 0
	return f.get()
}

func (f *testFace) NextChar(code uint32) (uint32, glyph.ID) {
	f.pos++
	return f.get()
}

func (f *testFace) get() (uint32, glyph.ID) {
	if f.pos >= len(f.codes) {
		return 0, 0
	}
	return f.codes[f.pos], glyph.ID(f.pos + 1)
}

func (f *testFace) Close() error {
	f.closed = true
	return f.closeErr
}

func TestCollect(t *testing.T) {
	p := &testParser{codes: []uint32{0x41, 0x4E2D, 0x41, 0x20, 0xE9}}

	cases := []struct {
		order Order
		want  []string
	}{
		{ByteOrder, []string{" ", "A", "é", "中"}},
		{FontOrder, []string{"A", "中", " ", "é"}},
	}
	for _, c := range cases {
		set, err := Collect(p, "test.ttf", c.order)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.want, set.Chars()); d != "" {
			t.Errorf("%s order (-want +got):\n%s", c.order, d)
		}
	}
	for i, f := range p.faces {
		if !f.closed {
			t.Errorf("face %d not closed", i)
		}
	}
}

func TestCollectDuplicates(t *testing.T) {
	p := &testParser{codes: []uint32{0x61, 0x61, 0x62, 0x61}}
	set, err := Collect(p, "test.ttf", FontOrder)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 2 {
		t.Errorf("got %d characters, want 2", set.Len())
	}
	if !set.Contains("a") || !set.Contains("b") || set.Contains("c") {
		t.Errorf("wrong set contents %q", set.Chars())
	}
}

func TestCollectEmpty(t *testing.T) {
	set, err := Collect(&testParser{}, "empty.ttf", ByteOrder)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 0 {
		t.Errorf("got %d characters, want 0", set.Len())
	}
}

func TestCollectCollated(t *testing.T) {
	p := &testParser{codes: []uint32{'z', 0xE9, 'a', 'B'}}
	set, err := Collect(p, "test.ttf", Collated(language.English))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "B", "é", "z"}
	if d := cmp.Diff(want, set.Chars()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestCollectSurrogate(t *testing.T) {
	p := &testParser{codes: []uint32{0xD800}}
	set, err := Collect(p, "test.ttf", ByteOrder)
	if err != nil {
		t.Fatal(err)
	}
	if !set.Contains("\xed\xa0\x80") {
		t.Errorf("got %q", set.Chars())
	}
}

func TestCollectOpenError(t *testing.T) {
	errTest := errors.New("test error")
	p := &testParser{openErr: errTest}
	_, err := Collect(p, "broken.ttf", ByteOrder)

	var loadErr *FontLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected FontLoadError, got %v", err)
	}
	if loadErr.FileName != "broken.ttf" || !errors.Is(err, errTest) {
		t.Errorf("wrong error %v", err)
	}
}

func TestCollectCloseError(t *testing.T) {
	errTest := errors.New("close failed")
	p := &testParser{codes: []uint32{0x41}, closeErr: errTest}
	set, err := Collect(p, "test.ttf", ByteOrder)
	if set != nil || !errors.Is(err, errTest) {
		t.Errorf("got %v, %v", set, err)
	}
	if !p.faces[0].closed {
		t.Error("face not closed")
	}
}

// loopFace never ends its enumeration.
type loopFace struct {
	closed bool
}

func (f *loopFace) FirstChar() (uint32, glyph.ID)      { return 0x41, 1 }
func (f *loopFace) NextChar(uint32) (uint32, glyph.ID) { return 0x41, 1 }
func (f *loopFace) Close() error                       { f.closed = true; return nil }

type loopParser struct {
	face *loopFace
}

func (p *loopParser) Name() string { return "loop" }

func (p *loopParser) Open(string) (Face, error) {
	p.face = &loopFace{}
	return p.face, nil
}

func TestCollectNoTermination(t *testing.T) {
	p := &loopParser{}
	_, err := Collect(p, "loop.ttf", ByteOrder)
	var loadErr *FontLoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected FontLoadError, got %v", err)
	}
	if !p.face.closed {
		t.Error("face not closed")
	}
}

func TestSetChars(t *testing.T) {
	p := &testParser{codes: []uint32{0x41, 0x42}}
	set, err := Collect(p, "test.ttf", ByteOrder)
	if err != nil {
		t.Fatal(err)
	}

	chars := set.Chars()
	chars[0] = "X"
	if d := cmp.Diff([]string{"A", "B"}, set.Chars()); d != "" {
		t.Errorf("set was modified via Chars: %s", d)
	}

	var all []string
	for c := range set.All() {
		all = append(all, c)
	}
	if d := cmp.Diff([]string{"A", "B"}, all); d != "" {
		t.Errorf("All: %s", d)
	}
}

func TestParseOrder(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "bytes", true},
		{"bytes", "bytes", true},
		{"font", "font", true},
		{"collate:de", "collate:de", true},
		{"collate:zh-Hans", "collate:zh-Hans", true},
		{"collate:", "", false},
		{"random", "", false},
	}
	for _, c := range cases {
		order, err := ParseOrder(c.in)
		if (err == nil) != c.ok {
			t.Errorf("ParseOrder(%q): unexpected error status %v", c.in, err)
			continue
		}
		if c.ok && order.String() != c.want {
			t.Errorf("ParseOrder(%q) = %s, want %s", c.in, order, c.want)
		}
	}
}

func TestLookupParser(t *testing.T) {
	p, err := LookupParser("")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != DefaultParser {
		t.Errorf("default parser is %q", p.Name())
	}

	_, err = LookupParser("no-such-parser")
	var initErr *FontInitError
	if !errors.As(err, &initErr) || initErr.Parser != "no-such-parser" {
		t.Errorf("expected FontInitError, got %v", err)
	}

	if d := cmp.Diff([]string{"sfnt", "ximage"}, Parsers()); d != "" {
		t.Errorf("Parsers: %s", d)
	}
}

func TestGoRegular(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "goregular.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	var sets [][]string
	for _, name := range []string{"sfnt", "ximage"} {
		p, err := LookupParser(name)
		if err != nil {
			t.Fatal(err)
		}
		set, err := Collect(p, fname, ByteOrder)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for _, c := range []string{"A", "z", "€", "ß"} {
			if !set.Contains(c) {
				t.Errorf("%s: missing %q", name, c)
			}
		}
		if set.Len() < 500 {
			t.Errorf("%s: only %d characters", name, set.Len())
		}
		sets = append(sets, set.Chars())
	}
	if d := cmp.Diff(sets[0], sets[1]); d != "" {
		t.Errorf("parsers disagree (-sfnt +ximage):\n%s", d)
	}
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ttf")
	for _, name := range Parsers() {
		p, err := LookupParser(name)
		if err != nil {
			t.Fatal(err)
		}
		_, err = Collect(p, missing, ByteOrder)
		var loadErr *FontLoadError
		if !errors.As(err, &loadErr) || !os.IsNotExist(loadErr.Err) {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
}
