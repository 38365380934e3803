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

// Package pdfout implements a [sketch.Backend] which writes each frame as
// a single-page PDF file.
//
// Geometry is written as PDF path operators, so the output is resolution
// independent. Hairlines are stroked with line width 1, butt caps and
// miter joins. Filled primitives are painted with the nonzero winding
// rule. PDF has no per-color transparency, so the alpha channel of colors
// is ignored.
package pdfout

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sketch"
)

// Page is a [sketch.Backend] which writes one frame to a PDF file. One
// pixel of the frame corresponds to one PDF point.
//
// A Page is not safe for concurrent use.
type Page struct {
	// FileName is the name of the PDF file. Begin creates or truncates
	// the file.
	FileName string

	// MiterLimit limits the length of miter joins of hairline strips.
	MiterLimit float64

	page   *document.Page
	height float64
	origin vec.Vec2
	view   rect.Rect
	color  sketch.Color
}

var _ sketch.Backend = (*Page)(nil)

// New returns a Page which writes to the named file.
func New(fileName string) *Page {
	return &Page{
		FileName:   fileName,
		MiterLimit: defaultMiterLimit,
		color:      sketch.Black,
	}
}

// Begin implements the [sketch.Backend] interface.
func (p *Page) Begin(width, height int) error {
	if p.page != nil {
		return errors.New("pdfout: frame already started")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pdfout: invalid frame size %dx%d", width, height)
	}

	paper := &pdf.Rectangle{URx: float64(width), URy: float64(height)}
	page, err := document.CreateSinglePage(p.FileName, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("pdfout: %w", err)
	}
	p.page = page
	p.height = float64(height)

	// PDF origin is bottom-left; frames use top-left with y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, p.height})

	page.SetLineWidth(hairlineWidth)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetMiterLimit(p.MiterLimit)

	p.Viewport(0, 0, width, height)
	p.SetColor(sketch.Black)
	return nil
}

// Viewport implements the [sketch.Backend] interface. Drawing outside of
// the viewport is not clipped.
func (p *Page) Viewport(x, y, width, height int) {
	p.origin = vec.Vec2{X: float64(x), Y: float64(y)}
	p.view = rect.Rect{
		LLx: float64(x),
		LLy: float64(y),
		URx: float64(x + width),
		URy: float64(y + height),
	}
}

// SetColor implements the [sketch.Backend] interface.
func (p *Page) SetColor(c sketch.Color) {
	p.color = c
	if p.page == nil {
		return
	}
	col := color.DeviceRGB{float64(c.R), float64(c.G), float64(c.B)}
	p.page.SetFillColor(col)
	p.page.SetStrokeColor(col)
}

// Clear implements the [sketch.Backend] interface.
func (p *Page) Clear() {
	if !p.drawing() {
		return
	}
	p.page.Rectangle(p.view.LLx, p.view.LLy, p.view.URx-p.view.LLx, p.view.URy-p.view.LLy)
	p.page.Fill()
}

// DrawLine implements the [sketch.Backend] interface.
func (p *Page) DrawLine(a, b vec.Vec2) {
	if !p.drawing() {
		return
	}
	p.moveTo(a)
	p.lineTo(b)
	p.page.Stroke()
}

// DrawLineStrip implements the [sketch.Backend] interface. A strip which
// ends at its first point is written as a closed subpath, so that the
// corner at the start gets a join.
func (p *Page) DrawLineStrip(pts []vec.Vec2) {
	if !p.drawing() || len(pts) < 2 {
		return
	}
	closed := len(pts) > 2 && pts[0] == pts[len(pts)-1]
	if closed {
		pts = pts[:len(pts)-1]
	}
	p.moveTo(pts[0])
	for _, pt := range pts[1:] {
		p.lineTo(pt)
	}
	if closed {
		p.page.ClosePath()
	}
	p.page.Stroke()
}

// DrawLines implements the [sketch.Backend] interface.
func (p *Page) DrawLines(segs []sketch.Segment) {
	if !p.drawing() || len(segs) == 0 {
		return
	}
	for _, s := range segs {
		p.moveTo(s.A)
		p.lineTo(s.B)
	}
	p.page.Stroke()
}

// DrawFilledRect implements the [sketch.Backend] interface.
func (p *Page) DrawFilledRect(r rect.Rect) {
	if !p.drawing() {
		return
	}
	p.page.Rectangle(r.LLx+p.origin.X, r.LLy+p.origin.Y, r.URx-r.LLx, r.URy-r.LLy)
	p.page.Fill()
}

// DrawFilledTriangles implements the [sketch.Backend] interface.
func (p *Page) DrawFilledTriangles(tris []sketch.Triangle) {
	if !p.drawing() || len(tris) == 0 {
		return
	}
	for _, t := range tris {
		p.triangle(t.A, t.B, t.C)
	}
	p.page.Fill()
}

// DrawFilledTriangleStrip implements the [sketch.Backend] interface.
func (p *Page) DrawFilledTriangleStrip(pts []vec.Vec2) {
	if !p.drawing() || len(pts) < 3 {
		return
	}
	for i := 2; i < len(pts); i++ {
		// alternate triangles of a strip have opposite orientation
		if i%2 == 0 {
			p.triangle(pts[i-2], pts[i-1], pts[i])
		} else {
			p.triangle(pts[i-1], pts[i-2], pts[i])
		}
	}
	p.page.Fill()
}

// Flush implements the [sketch.Backend] interface. Content is written to
// the page as it is drawn, so there is nothing left to do.
func (p *Page) Flush() error {
	if p.page == nil {
		return errNoFrame
	}
	return nil
}

// End implements the [sketch.Backend] interface. It completes the PDF
// file.
func (p *Page) End() error {
	if p.page == nil {
		return errNoFrame
	}
	err := p.page.Close()
	p.page = nil
	if err != nil {
		return fmt.Errorf("pdfout: %w", err)
	}
	return nil
}

func (p *Page) drawing() bool {
	if p.page == nil {
		sketch.Logger().Warn("pdfout: drawing outside of a frame")
		return false
	}
	return true
}

func (p *Page) moveTo(v vec.Vec2) {
	p.page.MoveTo(v.X+p.origin.X, v.Y+p.origin.Y)
}

func (p *Page) lineTo(v vec.Vec2) {
	p.page.LineTo(v.X+p.origin.X, v.Y+p.origin.Y)
}

func (p *Page) triangle(a, b, c vec.Vec2) {
	p.moveTo(a)
	p.lineTo(b)
	p.lineTo(c)
	p.page.ClosePath()
}

var errNoFrame = errors.New("pdfout: no active frame")

const (
	// defaultMiterLimit is the PDF default miter limit.
	defaultMiterLimit = 10.0

	hairlineWidth = 1.0
)
