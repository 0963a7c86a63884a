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

package document

import (
	"bytes"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/icc"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/glyphsheet/pdf"
)

// writeMetadata fills in the document information dictionary and adds an
// XMP metadata stream to the document catalog.
func (doc *MultiPage) writeMetadata() error {
	w := doc.Out
	opt := &doc.opt

	now := opt.CreationDate
	if now.IsZero() {
		now = time.Now()
	}

	if opt.Title != "" {
		w.Info["Title"] = pdf.TextString(opt.Title)
	}
	if opt.Producer != "" {
		w.Info["Producer"] = pdf.TextString(opt.Producer)
	}
	w.Info["CreationDate"] = pdf.Date(now)
	w.Info["ModDate"] = pdf.Date(now)

	dc := &xmp.DublinCore{}
	if opt.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), opt.Title)
		if opt.Language != language.Und {
			dc.Title.Set(opt.Language, opt.Title)
		}
	}
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(now)
	basic.ModifyDate = xmp.NewDate(now)
	pdfInfo := &xmpPDF{}
	pdfInfo.PDFVersion = xmp.NewText(w.Version.String())
	if opt.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(opt.Producer)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	ref := w.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	// XMP packets are stored uncompressed.
	stm, err := w.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	err = packet.Write(stm, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return fmt.Errorf("XMP metadata: %w", err)
	}
	err = stm.Close()
	if err != nil {
		return err
	}
	w.Catalog["Metadata"] = ref

	return nil
}

// xmpPDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type xmpPDF struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	PDFVersion xmp.Text
	Producer   xmp.AgentName
}

// writeOutputIntent adds an sRGB output intent to the document catalog.
func (doc *MultiPage) writeOutputIntent() error {
	w := doc.Out

	profile := sRGBProfile()
	p, err := icc.Decode(bytes.Clone(profile))
	if err != nil {
		return err
	}
	if p.ColorSpace != icc.RGBSpace || p.Class != icc.DisplayDeviceProfile {
		return fmt.Errorf("unexpected output profile %s/%s", p.Class, p.ColorSpace)
	}

	ref := w.Alloc()
	dict := pdf.Dict{
		"N": pdf.Integer(p.ColorSpace.NumComponents()),
	}
	stm, err := w.OpenStream(ref, dict, doc.filters...)
	if err != nil {
		return err
	}
	_, err = stm.Write(profile)
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	intent := pdf.Dict{
		"Type":                      pdf.Name("OutputIntent"),
		"S":                         pdf.Name("GTS_PDFA1"),
		"OutputConditionIdentifier": pdf.TextString(sRGBCondition),
		"Info":                      pdf.TextString(sRGBCondition),
		"DestOutputProfile":         ref,
	}
	w.Catalog["OutputIntents"] = pdf.Array{intent}
	return nil
}
