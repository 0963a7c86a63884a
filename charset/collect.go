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
	"log/slog"

	"seehuhn.de/go/glyphsheet/utf8enc"
)

// maxSteps bounds the length of a character map enumeration.
// Each Unicode code point can occur at most once, plus some slack for
// faces which report duplicates.
const maxSteps = 2 * (maxCodePoint + 1)

// Collect enumerates the Unicode character map of a font file and returns
// the distinct characters it contains, arranged in the given order.
//
// If the font cannot be loaded, a [*FontLoadError] is returned.
func Collect(p Parser, fileName string, order Order) (*Set, error) {
	return CollectLogged(p, fileName, order, nil)
}

// CollectLogged is like [Collect], but reports progress to logger.
// If logger is nil, nothing is logged.
func CollectLogged(p Parser, fileName string, order Order, logger *slog.Logger) (set *Set, err error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	face, err := p.Open(fileName)
	if err != nil {
		return nil, &FontLoadError{FileName: fileName, Err: err}
	}
	defer func() {
		closeErr := face.Close()
		if err == nil && closeErr != nil {
			set = nil
			err = &FontLoadError{FileName: fileName, Err: closeErr}
		}
	}()

	set = newSet()
	duplicates := 0
	steps := 0
	code, gid := face.FirstChar()
	for gid != 0 {
		if !set.add(utf8enc.EncodeString(code)) {
			duplicates++
		}
		steps++
		if steps > maxSteps {
			return nil, &FontLoadError{
				FileName: fileName,
				Err:      errors.New("character map enumeration does not terminate"),
			}
		}
		code, gid = face.NextChar(code)
	}
	order.sort(set.chars)

	logger.Debug("characters collected",
		"parser", p.Name(),
		"file", fileName,
		"count", set.Len(),
		"duplicates", duplicates,
		"order", order.String())
	return set, nil
}
