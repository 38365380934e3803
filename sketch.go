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

// Package sketch turns 2D vector drawing commands into geometry for an
// immediate-mode rasterizer.
//
// A [Surface] collects lines, rectangles, rounded rectangles, elliptic
// sectors and free-form subpaths into a [Path]. Stroking or filling the
// path converts every shape into primitives (hairlines, filled
// rectangles, triangles and triangle strips) which are passed to a
// [Backend]. Curved shapes are approximated by polylines whose resolution
// depends on their size; concave outlines are triangulated by ear
// clipping.
//
// Backends live in sub-packages: raster draws into an in-memory image and
// pdfout writes PDF files. [Recorder] keeps all drawing calls in memory.
package sketch

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
