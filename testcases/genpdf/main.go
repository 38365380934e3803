// seehuhn.de/go/sketch - 2D path geometry for immediate-mode rasterizers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Command genpdf renders all scenes to testdata/reference, once as PDF
// and once as PNG. The PNG files come from the raster backend; rendering
// the PDF files with an independent viewer gives a visual cross-check.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/pdfout"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/testcases"
)

const refDir = "testdata/reference"

func main() {
	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	im := raster.New()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := sc.Render(pdfout.New(pdfPath)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(im, sc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(im *raster.Image, sc testcases.Scene, pngPath string) (err error) {
	if err := sc.Render(im); err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return im.WritePNG(f)
}
