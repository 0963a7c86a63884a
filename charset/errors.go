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

import "fmt"

// FontInitError indicates that a font parsing backend could not be
// initialised.
type FontInitError struct {
	Parser string
	Err    error
}

func (err *FontInitError) Error() string {
	return fmt.Sprintf("font parser %q: %v", err.Parser, err.Err)
}

func (err *FontInitError) Unwrap() error {
	return err.Err
}

// FontLoadError indicates that a font file could not be read or parsed.
type FontLoadError struct {
	FileName string
	Err      error
}

func (err *FontLoadError) Error() string {
	return fmt.Sprintf("cannot load font %q: %v", err.FileName, err.Err)
}

func (err *FontLoadError) Unwrap() error {
	return err.Err
}
