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
	"slices"

	"seehuhn.de/go/dag"
	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/glyphsheet/pdf"
)

type widthRec struct {
	CID cid.CID
	W   float64
}

// encodeWidths constructs the DW and W entries for a CIDFont dictionary.
// The most frequent width is used as the default width.
// This modifies ww.
func encodeWidths(ww []widthRec) (pdf.Number, pdf.Array) {
	slices.SortFunc(ww, func(a, b widthRec) int {
		return int(a.CID) - int(b.CID)
	})

	dw := mostFrequent(ww)

	g := graph{ww, dw}
	ee, err := dag.ShortestPath[edge, int](g, len(ww))
	if err != nil {
		panic(err)
	}

	var res pdf.Array
	pos := 0
	for _, e := range ee {
		switch {
		case e > 0:
			res = append(res,
				pdf.Integer(ww[pos].CID),
				pdf.Integer(ww[pos+int(e)-1].CID),
				pdf.Number(ww[pos].W))
		case e < 0:
			var wi pdf.Array
			for i := pos; i < pos+int(-e); i++ {
				wi = append(wi, pdf.Number(ww[i].W))
			}
			res = append(res,
				pdf.Integer(ww[pos].CID),
				wi)
		}
		pos = g.To(pos, e)
	}

	return pdf.Number(dw), res
}

type graph struct {
	ww []widthRec
	dw float64
}

// An edge encodes how the next CID widths are encoded:
//
//	e=0: the width of the next CID is the default width, so no entry is needed
//	e>0: the next e CIDs have the same width, encode as a range
//	e<0: the next -e entries have consecutive CIDs, encode as an array
type edge int32

func (g graph) AppendEdges(ee []edge, v int) []edge {
	ww := g.ww
	if ww[v].W == g.dw {
		return append(ee, 0)
	}

	n := len(ww)

	// positive edges = sequences of CIDS with the same width
	i := v + 1
	for i < n && ww[i].W == ww[v].W {
		i++
	}
	ee = append(ee, edge(i-v))

	// negative edges = sequences of consecutive CIDs
	i = v + 1
	for i < n && int(ww[i].CID)-int(ww[v].CID) == i-v {
		i++
	}
	ee = append(ee, edge(v-i))

	return ee
}

func (g graph) Length(v int, e edge) int {
	// for simplicity we assume that all numbers in the output have 3 digits
	if e == 0 {
		return 0
	} else if e > 0 {
		// "%d %d %d\n"
		return 12
	} else {
		// "%d [%d ... %d]\n"
		return 6 + 4*int(-e)
	}
}

func (g graph) To(v int, e edge) int {
	if e == 0 {
		return v + 1
	}
	step := int(e)
	if step < 0 {
		step = -step
	}
	return v + step
}

func mostFrequent(ww []widthRec) float64 {
	hist := make(map[float64]int)
	for _, wi := range ww {
		hist[wi.W]++
	}

	bestCount := 0
	bestVal := 0.0
	for wi, count := range hist {
		if count > bestCount || (count == bestCount && wi < bestVal) {
			bestCount = count
			bestVal = wi
		}
	}
	return bestVal
}
