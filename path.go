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

package sketch

// Path is an ordered list of shapes which are stroked or filled together.
// The shapes are drawn in the order they were added.
type Path struct {
	shapes []Shape
	buf    []Primitive
}

// Reset removes all shapes from the path.
func (p *Path) Reset() {
	clear(p.shapes)
	p.shapes = p.shapes[:0]
}

// Append adds a shape at the end of the path.
func (p *Path) Append(s Shape) {
	p.shapes = append(p.shapes, s)
}

// IsEmpty reports whether the path has no shapes.
func (p *Path) IsEmpty() bool {
	return len(p.shapes) == 0
}

// Len returns the number of shapes in the path.
func (p *Path) Len() int {
	return len(p.shapes)
}

// Shapes returns the shapes of the path, in drawing order.
// The returned slice must not be modified.
func (p *Path) Shapes() []Shape {
	return p.shapes
}

// LastSubpath returns the last shape of the path if it is a free-form
// subpath, and nil otherwise.
func (p *Path) LastSubpath() *Subpath {
	if len(p.shapes) == 0 {
		return nil
	}
	return p.shapes[len(p.shapes)-1].Subpath()
}

// StrokeGeometry returns the primitives which stroke all shapes with the
// given line width.
func (p *Path) StrokeGeometry(width float64) []Primitive {
	var res []Primitive
	for i := range p.shapes {
		res = p.shapes[i].AppendStroke(res, width)
	}
	return res
}

// FillGeometry returns the primitives which fill all shapes.
func (p *Path) FillGeometry() []Primitive {
	var res []Primitive
	for i := range p.shapes {
		res = p.shapes[i].AppendFill(res)
	}
	return res
}

// Stroke draws the outlines of all shapes using the given style.
func (p *Path) Stroke(b Backend, style StrokeStyle) {
	b.SetColor(style.Color)
	for i := range p.shapes {
		p.buf = p.shapes[i].AppendStroke(p.buf[:0], style.Width)
		p.draw(b)
	}
}

// Fill draws the interiors of all shapes using the given style.
func (p *Path) Fill(b Backend, style FillStyle) {
	b.SetColor(style.Color)
	for i := range p.shapes {
		p.buf = p.shapes[i].AppendFill(p.buf[:0])
		p.draw(b)
	}
}

func (p *Path) draw(b Backend) {
	for i := range p.buf {
		p.buf[i].Draw(b)
	}
	clear(p.buf)
}
