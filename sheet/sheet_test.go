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

package sheet

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphsheet/charset"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	fontFile := filepath.Join(dir, "goregular.ttf")
	err := os.WriteFile(fontFile, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.FontFile = fontFile
	cfg.OutputFile = filepath.Join(dir, "output.pdf")
	cfg.Now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := testConfig(t)

	p, err := charset.LookupParser(cfg.Parser)
	if err != nil {
		t.Fatal(err)
	}
	set, err := charset.Collect(p, cfg.FontFile, cfg.Order)
	if err != nil {
		t.Fatal(err)
	}

	res, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{
		Characters: set.Len(),
		Pages:      (set.Len() + 299) / 300,
		OutputFile: cfg.OutputFile,
	}
	if d := cmp.Diff(want, res); d != "" {
		t.Errorf("result (-want +got):\n%s", d)
	}

	data, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7\n")) {
		t.Errorf("wrong header %q", data[:min(len(data), 10)])
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("missing end of file marker")
	}
	if !bytes.Contains(data, []byte("/CreationDate (D:20250601120000+00'00)")) {
		t.Error("missing creation date")
	}

	// no temporary files are left behind
	entries, err := os.ReadDir(filepath.Dir(cfg.OutputFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("unexpected directory contents %v", entries)
	}
}

func TestGenerateUncompressed(t *testing.T) {
	cfg := testConfig(t)
	cfg.Compress = false
	cfg.PageWords = 20
	cfg.LineWords = 10
	cfg.Order = charset.FontOrder

	res, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.Pages != (res.Characters+19)/20 {
		t.Errorf("%d pages for %d characters", res.Pages, res.Characters)
	}

	data, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if n := strings.Count(out, "/Type /Page\n"); n != res.Pages {
		t.Errorf("found %d page objects, want %d", n, res.Pages)
	}
	for _, want := range []string{
		"/Encoding ",
		"/ToUnicode ",
		"/CIDSystemInfo ",
		"/Title (Characters in goregular.ttf)",
		"/Producer (glyphsheet)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestGenerateMissingFont(t *testing.T) {
	cfg := testConfig(t)
	cfg.FontFile = filepath.Join(t.TempDir(), "missing.ttf")

	_, err := Generate(cfg)
	var loadErr *FontLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected FontLoadError, got %v", err)
	}
	if _, err := os.Stat(cfg.OutputFile); !os.IsNotExist(err) {
		t.Error("output file was created")
	}
}

func TestGenerateKeepsExistingOutput(t *testing.T) {
	cfg := testConfig(t)
	old := []byte("old contents")
	err := os.WriteFile(cfg.OutputFile, old, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(cfg.FontFile, []byte("not a font"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Generate(cfg)
	var loadErr *FontLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected FontLoadError, got %v", err)
	}
	data, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, old) {
		t.Error("output file was modified")
	}
}

func TestGenerateUnknownParser(t *testing.T) {
	cfg := testConfig(t)
	cfg.Parser = "unknown"

	_, err := Generate(cfg)
	var initErr *FontInitError
	if !errors.As(err, &initErr) {
		t.Errorf("expected FontInitError, got %v", err)
	}
}

func TestGenerateCreateError(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputFile = filepath.Join(t.TempDir(), "no-such-dir", "output.pdf")

	_, err := Generate(cfg)
	var createErr *DocumentCreateError
	if !errors.As(err, &createErr) {
		t.Errorf("expected DocumentCreateError, got %v", err)
	}
}

// fixedParser reports the character "A" for every file, without reading it.
type fixedParser struct {
	name  string
	panic bool
}

func (p fixedParser) Name() string { return p.name }

func (p fixedParser) Open(string) (charset.Face, error) {
	if p.panic {
		panic("parser failure")
	}
	return &fixedFace{}, nil
}

type fixedFace struct{}

func (f *fixedFace) FirstChar() (uint32, glyph.ID)      { return 'A', 1 }
func (f *fixedFace) NextChar(uint32) (uint32, glyph.ID) { return 0, 0 }
func (f *fixedFace) Close() error                       { return nil }

func TestGenerateEmbedError(t *testing.T) {
	charset.RegisterParser(fixedParser{name: "sheet-test-fixed"})

	cfg := testConfig(t)
	cfg.Parser = "sheet-test-fixed"
	err := os.WriteFile(cfg.FontFile, []byte("not a font"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Generate(cfg)
	var embedErr *FontEmbedError
	if !errors.As(err, &embedErr) {
		t.Fatalf("expected FontEmbedError, got %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(cfg.OutputFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 { // only the font file
		t.Errorf("unexpected directory contents %v", entries)
	}
}

func TestGeneratePanic(t *testing.T) {
	charset.RegisterParser(fixedParser{name: "sheet-test-panic", panic: true})

	cfg := testConfig(t)
	cfg.Parser = "sheet-test-panic"

	res, err := Generate(cfg)
	var internalErr *InternalError
	if res != nil || !errors.As(err, &internalErr) {
		t.Fatalf("expected InternalError, got %v, %v", res, err)
	}
	if internalErr.Value != "parser failure" {
		t.Errorf("wrong panic value %v", internalErr.Value)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config: %v", err)
	}

	cases := []func(*Config){
		func(c *Config) { c.FontFile = "" },
		func(c *Config) { c.OutputFile = "" },
		func(c *Config) { c.PageWords = 0 },
		func(c *Config) { c.LineWords = 400 },
		func(c *Config) { c.Paper.URy = 0 },
	}
	for i, modify := range cases {
		cfg := DefaultConfig()
		modify(cfg)
		if cfg.Validate() == nil {
			t.Errorf("%d: invalid config accepted", i)
		}
		if _, err := Generate(cfg); err == nil {
			t.Errorf("%d: Generate accepted invalid config", i)
		}
	}
}
