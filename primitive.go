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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Triangle is a filled triangle, as handed to the rasterizer.
type Triangle struct {
	A, B, C vec.Vec2
}

// SignedArea returns the signed area of the triangle. The result is
// positive for counter-clockwise (y-up) vertex order.
func (t Triangle) SignedArea() float64 {
	return Cross(t.A, t.B, t.C) / 2
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// oriented returns the triangle with its vertices ordered so that the
// signed area is non-negative.
func (t Triangle) oriented() Triangle {
	if Cross(t.A, t.B, t.C) < 0 {
		t.B, t.C = t.C, t.B
	}
	return t
}

// Segment is an independent hairline segment.
type Segment struct {
	A, B vec.Vec2
}

// PrimitiveKind identifies the rasterizer call a [Primitive] maps to.
type PrimitiveKind uint8

// These are the supported primitive kinds.
const (
	PrimLine          PrimitiveKind = iota // a single hairline, Points[0]→Points[1]
	PrimLineStrip                          // a connected hairline through Points
	PrimLines                              // independent hairlines, Segments
	PrimFilledRect                         // an axis-aligned filled Rect
	PrimTriangles                          // independent filled Triangles
	PrimTriangleStrip                      // a filled triangle strip through Points
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimLine:
		return "line"
	case PrimLineStrip:
		return "line_strip"
	case PrimLines:
		return "lines"
	case PrimFilledRect:
		return "filled_rect"
	case PrimTriangles:
		return "triangles"
	case PrimTriangleStrip:
		return "triangle_strip"
	default:
		return "unknown"
	}
}

// Primitive is one unit of geometry produced by a shape. Only the fields
// belonging to Kind are used.
type Primitive struct {
	Kind      PrimitiveKind
	Points    []vec.Vec2
	Segments  []Segment
	Triangles []Triangle
	Rect      rect.Rect
}

// Draw issues the rasterizer call for the primitive.
func (p *Primitive) Draw(b Backend) {
	switch p.Kind {
	case PrimLine:
		b.DrawLine(p.Points[0], p.Points[1])
	case PrimLineStrip:
		b.DrawLineStrip(p.Points)
	case PrimLines:
		b.DrawLines(p.Segments)
	case PrimFilledRect:
		b.DrawFilledRect(p.Rect)
	case PrimTriangles:
		b.DrawFilledTriangles(p.Triangles)
	case PrimTriangleStrip:
		b.DrawFilledTriangleStrip(p.Points)
	}
}

// normalizedRect returns the axis-aligned rectangle spanned by two corners,
// independent of their order.
func normalizedRect(p1, p2 vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: min(p1.X, p2.X),
		LLy: min(p1.Y, p2.Y),
		URx: max(p1.X, p2.X),
		URy: max(p1.Y, p2.Y),
	}
}

// appendHairline adds a line strip through pts, if pts has a visible
// extent.
func appendHairline(dst []Primitive, pts []vec.Vec2) []Primitive {
	if len(pts) < 2 {
		return dst
	}
	return append(dst, Primitive{Kind: PrimLineStrip, Points: pts})
}

// appendThickLine adds the quad for one thick segment. Zero-length
// segments are skipped.
func appendThickLine(dst []Primitive, a, b vec.Vec2, width float64) []Primitive {
	q, ok := ThickLine(a, b, width)
	if !ok {
		Logger().Debug("skipping zero-length thick segment", "x", a.X, "y", a.Y)
		return dst
	}
	return append(dst, Primitive{Kind: PrimTriangleStrip, Points: q[:]})
}

// appendThickLines adds one independent quad per consecutive pair of
// points. Corners between segments are not joined.
func appendThickLines(dst []Primitive, pts []vec.Vec2, width float64) []Primitive {
	for i := 1; i < len(pts); i++ {
		dst = appendThickLine(dst, pts[i-1], pts[i], width)
	}
	return dst
}
