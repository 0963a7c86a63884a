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
	"seehuhn.de/go/postscript/cid"
)

// Encoding is a CMap which maps character codes to CID values.
type Encoding struct {
	// Name is the CMap name.
	Name string

	// ROS describes the character collection.
	ROS *cid.SystemInfo

	// CodeSpace lists the valid character codes.
	CodeSpace []Range

	// CID maps character codes (as strings of bytes) to CID values.
	CID map[string]cid.CID
}

// Write writes the CMap in PostScript format to w.
func (e *Encoding) Write(w io.Writer) error {
	entries := make([]entry, 0, len(e.CID))
	for code, c := range e.CID {
		entries = append(entries, entry{Code: []byte(code), Value: uint32(c)})
	}
	singles, spans := group(entries, func(prev, next uint32) bool {
		return next == prev+1
	})

	data := &encodingData{
		Encoding: e,
		Singles:  singles,
		Spans:    spans,
	}
	return encodingTmpl.Execute(w, data)
}

// Embed writes the CMap as a stream object with reference ref.
func (e *Encoding) Embed(w *pdf.Writer, ref pdf.Reference, filters ...pdf.Filter) error {
	for code := range e.CID {
		if !InCodeSpace(e.CodeSpace, []byte(code)) {
			return fmt.Errorf("cmap %q: code %x outside the code space", e.Name, code)
		}
	}

	dict := pdf.Dict{
		"Type":          pdf.Name("CMap"),
		"CMapName":      pdf.Name(e.Name),
		"CIDSystemInfo": rosDict(e.ROS),
	}
	stm, err := w.OpenStream(ref, dict, filters...)
	if err != nil {
		return err
	}
	err = e.Write(stm)
	if err != nil {
		return err
	}
	return stm.Close()
}

func rosDict(ros *cid.SystemInfo) pdf.Dict {
	return pdf.Dict{
		"Registry":   pdf.String(ros.Registry),
		"Ordering":   pdf.String(ros.Ordering),
		"Supplement": pdf.Integer(ros.Supplement),
	}
}

type encodingData struct {
	*Encoding
	Singles []entry
	Spans   []span
}

var encodingTmpl = template.Must(template.New("cmap").Funcs(template.FuncMap{
	"PS": func(s string) string {
		x := postscript.String(s)
		return x.PS()
	},
	"PN": func(s string) string {
		x := postscript.Name(s)
		return x.PS()
	},
	"B": func(x []byte) string {
		return fmt.Sprintf("<%02x>", x)
	},
	"SingleChunks": chunks[entry],
	"Single": func(s entry) string {
		return fmt.Sprintf("<%02x> %d", s.Code, s.Value)
	},
	"SpanChunks": chunks[span],
	"Span": func(s span) string {
		return fmt.Sprintf("<%02x> <%02x> %d", s.First, s.Last, s.Value)
	},
}).Parse(`%!PS-Adobe-3.0 Resource-CMap
%%DocumentNeededResources: ProcSet (CIDInit)
%%IncludeResource: ProcSet (CIDInit)
%%BeginResource: CMap {{PS .Name}}
%%Title: {{printf "%s %s %s %d" .Name .ROS.Registry .ROS.Ordering .ROS.Supplement | PS}}
%%Version: 1.000
%%EndComments
/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo 3 dict dup begin
/Registry {{PS .ROS.Registry}} def
/Ordering {{PS .ROS.Ordering}} def
/Supplement {{.ROS.Supplement}} def
end def
/CMapName {{PN .Name}} def
/CMapType 1 def
/WMode 0 def
{{len .CodeSpace}} begincodespacerange
{{range .CodeSpace -}}
{{B .Low}} {{B .High}}
{{end -}}
endcodespacerange
{{range SingleChunks .Singles -}}
{{len .}} begincidchar
{{range . -}}
{{Single .}}
{{end -}}
endcidchar
{{end -}}
{{range SpanChunks .Spans -}}
{{len .}} begincidrange
{{range . -}}
{{Span .}}
{{end -}}
endcidrange
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
%%EndResource
%%EOF
`))
