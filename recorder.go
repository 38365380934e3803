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

import (
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Op is one drawing call captured by a [Recorder].
type Op struct {
	Kind      PrimitiveKind
	Color     Color
	Points    []vec.Vec2
	Segments  []Segment
	Triangles []Triangle
	Rect      rect.Rect

	// Clear is set for the filled rectangle recorded by a Clear call.
	Clear bool
}

// Recorder is a Backend which stores all drawing calls in memory instead of
// rasterizing them. It is used for testing and for exporting the geometry
// of a frame.
type Recorder struct {
	Width, Height int
	Viewports     []rect.Rect

	// Ops lists the drawing calls in the order they were issued. Clear
	// calls are recorded as a filled rectangle covering the viewport, with
	// the Clear flag set.
	Ops []Op

	Begins, Flushes, Ends int

	color Color
	view  rect.Rect
}

var _ Backend = (*Recorder)(nil)

// Begin implements the [Backend] interface.
func (r *Recorder) Begin(width, height int) error {
	r.Width, r.Height = width, height
	r.view = rect.Rect{URx: float64(width), URy: float64(height)}
	r.Begins++
	return nil
}

// Viewport implements the [Backend] interface.
func (r *Recorder) Viewport(x, y, width, height int) {
	r.view = rect.Rect{
		LLx: float64(x),
		LLy: float64(y),
		URx: float64(x + width),
		URy: float64(y + height),
	}
	r.Viewports = append(r.Viewports, r.view)
}

// SetColor implements the [Backend] interface.
func (r *Recorder) SetColor(c Color) {
	r.color = c
}

// Clear implements the [Backend] interface.
func (r *Recorder) Clear() {
	view := rect.Rect{URx: r.view.URx - r.view.LLx, URy: r.view.URy - r.view.LLy}
	r.Ops = append(r.Ops, Op{Kind: PrimFilledRect, Color: r.color, Rect: view, Clear: true})
}

// DrawLine implements the [Backend] interface.
func (r *Recorder) DrawLine(a, b vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: PrimLine, Color: r.color, Points: []vec.Vec2{a, b}})
}

// DrawLineStrip implements the [Backend] interface.
func (r *Recorder) DrawLineStrip(pts []vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: PrimLineStrip, Color: r.color, Points: slices.Clone(pts)})
}

// DrawLines implements the [Backend] interface.
func (r *Recorder) DrawLines(segs []Segment) {
	r.Ops = append(r.Ops, Op{Kind: PrimLines, Color: r.color, Segments: slices.Clone(segs)})
}

// DrawFilledRect implements the [Backend] interface.
func (r *Recorder) DrawFilledRect(rc rect.Rect) {
	r.Ops = append(r.Ops, Op{Kind: PrimFilledRect, Color: r.color, Rect: rc})
}

// DrawFilledTriangles implements the [Backend] interface.
func (r *Recorder) DrawFilledTriangles(tris []Triangle) {
	r.Ops = append(r.Ops, Op{Kind: PrimTriangles, Color: r.color, Triangles: slices.Clone(tris)})
}

// DrawFilledTriangleStrip implements the [Backend] interface.
func (r *Recorder) DrawFilledTriangleStrip(pts []vec.Vec2) {
	r.Ops = append(r.Ops, Op{Kind: PrimTriangleStrip, Color: r.color, Points: slices.Clone(pts)})
}

// Flush implements the [Backend] interface.
func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}

// End implements the [Backend] interface.
func (r *Recorder) End() error {
	r.Ends++
	return nil
}

// OpsOf returns the recorded drawing calls of the given kind, not counting
// Clear calls.
func (r *Recorder) OpsOf(kind PrimitiveKind) []Op {
	var res []Op
	for _, op := range r.Ops {
		if op.Kind == kind && !op.Clear {
			res = append(res, op)
		}
	}
	return res
}
