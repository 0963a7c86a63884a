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

// Package pdf implements the subset of the PDF file format needed to write
// character tables: the native object types and a sequential writer.
//
// Objects are written to the file in the order in which they are passed to
// the [Writer].  Indirect objects are identified by a [Reference], which can
// be allocated before the object is written.  This allows for cycles, for
// example between a page and its parent page tree node:
//
//	w, err := pdf.NewWriter(fd, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ref := w.Alloc()
//	... write objects which refer to ref ...
//	err = w.Put(ref, pdf.Dict{...})
//	...
//	w.Catalog["Pages"] = pagesRef
//	err = w.Close()
package pdf
