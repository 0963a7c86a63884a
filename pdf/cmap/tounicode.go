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
	"fmt"
	"io"
	"text/template"

	"seehuhn.de/go/glyphsheet/pdf"
	"seehuhn.de/go/postscript"
)

// ToUnicode is a CMap which maps character codes to Unicode text.
// Every code maps to a single code point.
type ToUnicode struct {
	CodeSpace []Range

	// Text maps character codes (as strings of bytes) to code points.
	Text map[string]uint32
}

// Write writes the CMap in PostScript format to w.
func (t *ToUnicode) Write(w io.Writer) error {
	entries := make([]entry, 0, len(t.Text))
	for code, cp := range t.Text {
		entries = append(entries, entry{Code: []byte(code), Value: cp})
	}
	singles, spans := group(entries, func(prev, next uint32) bool {
		// The last byte of the UTF-16 destination must not wrap around.
		return next == prev+1 && next <= 0x10FFFF && next&0xFF != 0
	})

	data := &toUnicodeData{
		ToUnicode: t,
		Singles:   singles,
		Spans:     spans,
	}
	return toUnicodeTmpl.Execute(w, data)
}

// Embed writes the CMap as a stream object with reference ref.
func (t *ToUnicode) Embed(w *pdf.Writer, ref pdf.Reference, filters ...pdf.Filter) error {
	stm, err := w.OpenStream(ref, pdf.Dict{}, filters...)
	if err != nil {
		return err
	}
	err = t.Write(stm)
	if err != nil {
		return err
	}
	return stm.Close()
}

// UTF16 returns the UTF-16BE encoding of cp.  Surrogate code points are
// encoded as single code units.  Values outside the Unicode range are
// replaced with U+FFFD.
func UTF16(cp uint32) []byte {
	switch {
	case cp < 0x10000:
		return []byte{byte(cp >> 8), byte(cp)}
	case cp <= 0x10FFFF:
		cp -= 0x10000
		hi := 0xD800 + cp>>10
		lo := 0xDC00 + cp&0x3FF
		return []byte{byte(hi >> 8), byte(hi), byte(lo >> 8), byte(lo)}
	default:
		return []byte{0xFF, 0xFD}
	}
}

type toUnicodeData struct {
	*ToUnicode
	Singles []entry
	Spans   []span
}

var toUnicodeTmpl = template.Must(template.New("tounicode").Funcs(template.FuncMap{
	"PS": func(s string) string {
		x := postscript.String(s)
		return x.PS()
	},
	"B": func(x []byte) string {
		return fmt.Sprintf("<%02x>", x)
	},
	"SingleChunks": chunks[entry],
	"Single": func(s entry) string {
		return fmt.Sprintf("<%02x> <%02x>", s.Code, UTF16(s.Value))
	},
	"SpanChunks": chunks[span],
	"Span": func(s span) string {
		return fmt.Sprintf("<%02x> <%02x> <%02x>", s.First, s.Last, UTF16(s.Value))
	},
	"ROS": func() string {
		reg := postscript.String(Identity.Registry)
		ord := postscript.String(Identity.Ordering)
		return fmt.Sprintf("/Registry %s def\n/Ordering %s def\n/Supplement %d def",
			reg.PS(), ord.PS(), Identity.Supplement)
	},
}).Parse(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo 3 dict dup begin
{{ROS}}
end def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
{{len .CodeSpace}} begincodespacerange
{{range .CodeSpace -}}
{{B .Low}} {{B .High}}
{{end -}}
endcodespacerange
{{range SingleChunks .Singles -}}
{{len .}} beginbfchar
{{range . -}}
{{Single .}}
{{end -}}
endbfchar
{{end -}}
{{range SpanChunks .Spans -}}
{{len .}} beginbfrange
{{range . -}}
{{Span .}}
{{end -}}
endbfrange
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
