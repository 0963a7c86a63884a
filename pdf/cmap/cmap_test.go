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

package cmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/glyphsheet/pdf"
	"seehuhn.de/go/glyphsheet/utf8enc"
)

func TestInCodeSpace(t *testing.T) {
	cases := []struct {
		code []byte
		ok   bool
	}{
		{[]byte{0x41}, true},
		{[]byte{0x80}, false},
		{[]byte{0xC3, 0xA9}, true},
		{[]byte{0xC3, 0x41}, false},
		{utf8enc.Encode(0x4E2D), true},
		{utf8enc.Encode(0x1F600), true},
		{[]byte{}, false},
	}
	for _, c := range cases {
		if got := InCodeSpace(UTF8, c.code); got != c.ok {
			t.Errorf("InCodeSpace(% x) = %t, want %t", c.code, got, c.ok)
		}
	}
}

func TestGroup(t *testing.T) {
	entries := []entry{
		{Code: []byte{0x43}, Value: 12},
		{Code: []byte{0x41}, Value: 10},
		{Code: []byte{0x42}, Value: 11},
		{Code: []byte{0x45}, Value: 20},
		{Code: []byte{0xC3, 0xA9}, Value: 30},
		{Code: []byte{0xC3, 0xAA}, Value: 40},
	}
	singles, spans := group(entries, func(prev, next uint32) bool {
		return next == prev+1
	})

	wantSingles := []entry{
		{Code: []byte{0x45}, Value: 20},
		{Code: []byte{0xC3, 0xA9}, Value: 30},
		{Code: []byte{0xC3, 0xAA}, Value: 40},
	}
	wantSpans := []span{
		{First: []byte{0x41}, Last: []byte{0x43}, Value: 10},
	}
	if d := cmp.Diff(wantSingles, singles); d != "" {
		t.Errorf("singles (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wantSpans, spans); d != "" {
		t.Errorf("spans (-want +got):\n%s", d)
	}
}

func TestChunks(t *testing.T) {
	x := make([]int, 250)
	var lens []int
	for _, c := range chunks(x) {
		lens = append(lens, len(c))
	}
	if d := cmp.Diff([]int{100, 100, 50}, lens); d != "" {
		t.Error(d)
	}
	if chunks([]int{}) != nil {
		t.Error("chunks of empty slice")
	}
}

func TestEncodingWrite(t *testing.T) {
	e := &Encoding{
		Name:      "Test-UTF8",
		ROS:       Identity,
		CodeSpace: UTF8,
		CID: map[string]cid.CID{
			"A": 36,
			"B": 37,
			"C": 38,
			"é": 100,
		},
	}
	buf := &bytes.Buffer{}
	err := e.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"/CMapName /Test-UTF8 def\n",
		"/Registry (Adobe) def\n",
		"4 begincodespacerange\n<00> <7f>\n<c280> <dfbf>\n<e08080> <efbfbf>\n<f0808080> <f7bfbfbf>\nendcodespacerange\n",
		"1 begincidchar\n<c3a9> 100\nendcidchar\n",
		"1 begincidrange\n<41> <43> 36\nendcidrange\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestEncodingChunks(t *testing.T) {
	// Values going down never form ranges.
	m := make(map[string]cid.CID)
	for i := range 150 {
		m[string(utf8enc.Encode(uint32(0x4E00+2*i)))] = cid.CID(1000 - i)
	}
	e := &Encoding{Name: "X", ROS: Identity, CodeSpace: UTF8, CID: m}
	buf := &bytes.Buffer{}
	if err := e.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "100 begincidchar\n") || !strings.Contains(out, "50 begincidchar\n") {
		t.Errorf("unexpected chunking:\n%s", out)
	}
	if strings.Contains(out, "begincidrange") {
		t.Error("unexpected cidrange")
	}
}

func TestEncodingEmbed(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	e := &Encoding{
		Name:      "Bad",
		ROS:       Identity,
		CodeSpace: UTF8,
		CID:       map[string]cid.CID{"\x80": 1},
	}
	err = e.Embed(w, w.Alloc())
	if err == nil {
		t.Error("code outside code space not detected")
	}

	e.CID = map[string]cid.CID{"a": 1}
	err = e.Embed(w, w.Alloc())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Type /CMap")) {
		t.Error("missing /Type /CMap")
	}
}

func TestUTF16(t *testing.T) {
	cases := []struct {
		cp   uint32
		want []byte
	}{
		{0x41, []byte{0x00, 0x41}},
		{0xD800, []byte{0xD8, 0x00}},
		{0xFFFF, []byte{0xFF, 0xFF}},
		{0x10000, []byte{0xD8, 0x00, 0xDC, 0x00}},
		{0x1F600, []byte{0xD8, 0x3D, 0xDE, 0x00}},
		{0x10FFFF, []byte{0xDB, 0xFF, 0xDF, 0xFF}},
		{0x110000, []byte{0xFF, 0xFD}},
	}
	for _, c := range cases {
		if d := cmp.Diff(c.want, UTF16(c.cp)); d != "" {
			t.Errorf("UTF16(%04X): %s", c.cp, d)
		}
	}
}

func TestToUnicodeWrite(t *testing.T) {
	text := make(map[string]uint32)
	for _, cp := range []uint32{0x41, 0x42, 0x43, 0xFE, 0xFF, 0x100, 0x1F600} {
		text[string(utf8enc.Encode(cp))] = cp
	}
	tu := &ToUnicode{CodeSpace: UTF8, Text: text}
	buf := &bytes.Buffer{}
	err := tu.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"/CMapName /Adobe-Identity-UCS def\n",
		"/CMapType 2 def\n",
		"2 beginbfchar\n<c480> <0100>\n<f09f9880> <d83dde00>\nendbfchar\n",
		"2 beginbfrange\n<41> <43> <0041>\n<c3be> <c3bf> <00fe>\nendbfrange\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestToUnicodeWrap(t *testing.T) {
	tu := &ToUnicode{
		CodeSpace: UTF8,
		Text:      map[string]uint32{"a": 0x1FE, "b": 0x1FF, "c": 0x200},
	}
	buf := &bytes.Buffer{}
	err := tu.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "1 beginbfrange\n<61> <62> <01fe>\nendbfrange\n") {
		t.Errorf("wrong range in\n%s", out)
	}
	if !strings.Contains(out, "1 beginbfchar\n<63> <0200>\nendbfchar\n") {
		t.Errorf("wrong single in\n%s", out)
	}
}
