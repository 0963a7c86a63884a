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

// Package layout arranges characters into the lines and pages of a
// character table.
//
// Every page holds a fixed number of characters, grouped into lines of a
// fixed length.  The font size is chosen so that the lines of a full page,
// at a line spacing of 1.5 times the font size, fill the page height.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Params describes the grid of a character table.
type Params struct {
	// PageWords is the number of characters per page.
	PageWords int

	// LineWords is the number of characters per line.
	LineWords int

	// PageHeight is the height of a page, in PDF units.
	PageHeight float64

	// Left is the x coordinate of the start of each line.
	Left float64
}

// Default values for [Params].
const (
	DefaultPageWords  = 300
	DefaultLineWords  = 15
	DefaultPageHeight = 841.890 // A4
	DefaultLeft       = 50
)

// LineSpacing is the distance between baselines, as a multiple of the font
// size.
const LineSpacing = 1.5

// DefaultParams returns the parameters for 20 lines of 15 characters per
// A4 page.
func DefaultParams() Params {
	return Params{
		PageWords:  DefaultPageWords,
		LineWords:  DefaultLineWords,
		PageHeight: DefaultPageHeight,
		Left:       DefaultLeft,
	}
}

// Validate checks that the parameters describe a usable grid.
func (p Params) Validate() error {
	if p.PageWords < 1 {
		return fmt.Errorf("invalid number of characters per page: %d", p.PageWords)
	}
	if p.LineWords < 1 {
		return fmt.Errorf("invalid number of characters per line: %d", p.LineWords)
	}
	if p.LineWords > p.PageWords {
		return fmt.Errorf("%d characters per line exceed %d characters per page",
			p.LineWords, p.PageWords)
	}
	if !(p.PageHeight > 0) {
		return errors.New("page height must be positive")
	}
	return nil
}

// PageLines returns the number of lines on a full page.
func (p Params) PageLines() int {
	return p.PageWords / p.LineWords
}

// FontSize returns the font size used on every page.
func (p Params) FontSize() float64 {
	return p.PageHeight / (float64(p.PageLines()) * LineSpacing)
}

// Page is one page of a character table.
type Page struct {
	// Number is the 1-based page number.
	Number int

	FontSize float64
	Lines    []Line
}

// Line is one line of text on a page.
type Line struct {
	// X and Y give the start of the baseline.
	X, Y float64

	// Text is the concatenation of the characters on the line.
	Text string

	// Count is the number of characters on the line.
	Count int
}

// Count returns the number of characters on the page.
func (p *Page) Count() int {
	n := 0
	for _, l := range p.Lines {
		n += l.Count
	}
	return n
}

// Paginate breaks a list of characters into pages.
//
// The last page may be partially filled.  No page is generated for an empty
// list of characters.
func Paginate(chars []string, p Params) ([]Page, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	fontSize := p.FontSize()
	skip := fontSize * LineSpacing

	var pages []Page
	var body []string
	flush := func() {
		page := Page{
			Number:   len(pages) + 1,
			FontSize: fontSize,
		}
		y := p.PageHeight - fontSize
		for len(body) > 0 {
			k := min(len(body), p.LineWords)
			page.Lines = append(page.Lines, Line{
				X:     p.Left,
				Y:     y,
				Text:  strings.Join(body[:k], ""),
				Count: k,
			})
			body = body[k:]
			y -= skip
		}
		pages = append(pages, page)
	}

	for _, c := range chars {
		body = append(body, c)
		if len(body) == p.PageWords {
			flush()
		}
	}
	if len(body) > 0 {
		flush()
	}
	return pages, nil
}
