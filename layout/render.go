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

package layout

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/glyphsheet/pdf/document"
	"seehuhn.de/go/glyphsheet/pdf/graphics"
)

// Render draws the pages into the document, using the font F for all text.
// Line positions are taken relative to the lower left corner of the page.
// Each page is added to the document and closed again before the next page
// is started.
func Render(doc *document.MultiPage, F graphics.Font, pages []Page) error {
	for i := range pages {
		p := &pages[i]

		page := doc.AddPage()
		box := page.Size()
		page.TextStart()
		page.TextSetFont(F, p.FontSize)
		for _, line := range p.Lines {
			page.TextSetMatrix(matrix.Translate(box.LLx+line.X, box.LLy+line.Y))
			page.TextShow(line.Text)
		}
		page.TextEnd()
		err := page.Close()
		if err != nil {
			return fmt.Errorf("page %d: %w", p.Number, err)
		}
	}
	return nil
}
