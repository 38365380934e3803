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

// Package raster implements a [sketch.Backend] which draws into an
// in-memory RGBA image, with anti-aliasing.
//
// Filled geometry is converted to polygons and rasterized with exact area
// coverage under the nonzero winding rule. Hairlines are drawn as one
// pixel wide filled outlines.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch"
)

// Image is a [sketch.Backend] which renders frames into an [image.RGBA].
// Drawing coordinates have the origin at the top-left corner of the
// viewport, with y pointing down.
//
// An Image can be reused for several frames; each Begin allocates a new
// image. An Image is not safe for concurrent use.
type Image struct {
	// Join is the style for corners of hairline strips.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins, relative to the line
	// width. Longer miters are drawn as bevels.
	MiterLimit float64

	img     *image.RGBA
	view    image.Rectangle
	color   sketch.Color
	scan    *scanner
	line    outliner
	poly    path.Data
	drawing bool
}

var _ sketch.Backend = (*Image)(nil)

// New returns an Image with miter joins and the PDF default miter limit.
func New() *Image {
	return &Image{
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
		color:      sketch.Black,
		scan:       newScanner(rect.Rect{}),
	}
}

// Begin implements the [sketch.Backend] interface.
func (im *Image) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid frame size %dx%d", width, height)
	}
	if im.scan == nil {
		im.scan = newScanner(rect.Rect{})
	}
	im.img = image.NewRGBA(image.Rect(0, 0, width, height))
	im.drawing = true
	im.color = sketch.Black
	im.Viewport(0, 0, width, height)
	return nil
}

// Viewport implements the [sketch.Backend] interface.
func (im *Image) Viewport(x, y, width, height int) {
	if im.img == nil {
		return
	}
	im.view = image.Rect(x, y, x+width, y+height).Intersect(im.img.Bounds())
	im.scan.toDevice = matrix.Matrix{1, 0, 0, 1, float64(x), float64(y)}
	im.scan.clip = rect.Rect{
		LLx: float64(im.view.Min.X),
		LLy: float64(im.view.Min.Y),
		URx: float64(im.view.Max.X),
		URy: float64(im.view.Max.Y),
	}
}

// SetColor implements the [sketch.Backend] interface.
func (im *Image) SetColor(c sketch.Color) {
	im.color = c
}

// Clear implements the [sketch.Backend] interface. The pixels of the
// viewport are replaced, not blended.
func (im *Image) Clear() {
	if !im.drawing {
		return
	}
	r, g, b, a := im.color.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for y := im.view.Min.Y; y < im.view.Max.Y; y++ {
		row := im.img.Pix[im.img.PixOffset(im.view.Min.X, y):im.img.PixOffset(im.view.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], px[:])
		}
	}
}

// DrawLine implements the [sketch.Backend] interface.
func (im *Image) DrawLine(a, b vec.Vec2) {
	im.DrawLineStrip([]vec.Vec2{a, b})
}

// DrawLineStrip implements the [sketch.Backend] interface.
func (im *Image) DrawLineStrip(pts []vec.Vec2) {
	if !im.startPolygons() {
		return
	}
	im.line.addPolyline(&im.poly, pts)
	im.fillPolygons()
}

// DrawLines implements the [sketch.Backend] interface.
func (im *Image) DrawLines(segs []sketch.Segment) {
	if !im.startPolygons() {
		return
	}
	var pair [2]vec.Vec2
	for _, s := range segs {
		pair[0], pair[1] = s.A, s.B
		im.line.addPolyline(&im.poly, pair[:])
	}
	im.fillPolygons()
}

// DrawFilledRect implements the [sketch.Backend] interface.
func (im *Image) DrawFilledRect(r rect.Rect) {
	if !im.startPolygons() {
		return
	}
	im.poly.MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
	im.fillPolygons()
}

// DrawFilledTriangles implements the [sketch.Backend] interface.
func (im *Image) DrawFilledTriangles(tris []sketch.Triangle) {
	if !im.startPolygons() {
		return
	}
	for _, t := range tris {
		im.line.addPolygon(&im.poly, t.A, t.B, t.C)
	}
	im.fillPolygons()
}

// DrawFilledTriangleStrip implements the [sketch.Backend] interface.
func (im *Image) DrawFilledTriangleStrip(pts []vec.Vec2) {
	if !im.startPolygons() {
		return
	}
	for i := 2; i < len(pts); i++ {
		im.line.addPolygon(&im.poly, pts[i-2], pts[i-1], pts[i])
	}
	im.fillPolygons()
}

// Flush implements the [sketch.Backend] interface. Drawing calls are
// applied immediately, so there is nothing left to do.
func (im *Image) Flush() error {
	if !im.drawing {
		return errNoFrame
	}
	return nil
}

// End implements the [sketch.Backend] interface.
func (im *Image) End() error {
	if !im.drawing {
		return errNoFrame
	}
	im.drawing = false
	return nil
}

// Image returns the image of the most recent frame, or nil if no frame
// was started.
func (im *Image) Image() *image.RGBA {
	return im.img
}

// WritePNG encodes the image of the most recent frame as PNG.
func (im *Image) WritePNG(w io.Writer) error {
	if im.img == nil {
		return errNoFrame
	}
	return png.Encode(w, im.img)
}

// startPolygons prepares the polygon buffer for a drawing call. It
// reports false if no frame is active.
func (im *Image) startPolygons() bool {
	if !im.drawing {
		sketch.Logger().Warn("raster: drawing outside of a frame")
		return false
	}
	im.poly.Cmds = im.poly.Cmds[:0]
	im.poly.Coords = im.poly.Coords[:0]
	im.line.Width = hairlineWidth
	im.line.Join = im.Join
	im.line.MiterLimit = im.MiterLimit
	return true
}

// fillPolygons composites the polygon buffer with the current color.
func (im *Image) fillPolygons() {
	if len(im.poly.Cmds) == 0 {
		return
	}
	c := im.color
	im.scan.fill(&im.poly, func(y, xMin int, coverage []float32) {
		off := im.img.PixOffset(xMin, y)
		pix := im.img.Pix[off : off+4*len(coverage)]
		for i, cov := range coverage {
			a := c.A * cov
			if a <= 0 {
				continue
			}
			p := pix[4*i : 4*i+4]
			p[0] = blend(c.R*a, p[0], a)
			p[1] = blend(c.G*a, p[1], a)
			p[2] = blend(c.B*a, p[2], a)
			p[3] = blend(a, p[3], a)
		}
	})
}

// blend composites a premultiplied source channel over a destination
// channel using source-over.
func blend(src float32, dst uint8, alpha float32) uint8 {
	v := src*255 + float32(dst)*(1-alpha)
	return uint8(min(255, max(0, v+0.5)))
}

var errNoFrame = errors.New("raster: no active frame")

const (
	// defaultMiterLimit is the PDF default miter limit.
	defaultMiterLimit = 10.0

	// hairlineWidth is the width of hairlines in pixels.
	hairlineWidth = 1.0
)
