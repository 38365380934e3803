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

// ShapeKind identifies the variant of a [Shape].
type ShapeKind uint8

// These are the supported shape kinds.
const (
	ShapeLine ShapeKind = iota
	ShapeRect
	ShapeRoundRect
	ShapeEllipse
	ShapeSubpath
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeRect:
		return "rect"
	case ShapeRoundRect:
		return "roundrect"
	case ShapeEllipse:
		return "ellipse"
	case ShapeSubpath:
		return "subpath"
	default:
		return "unknown"
	}
}

// Shape is one entry of a [Path]. The set of variants is closed; Kind
// selects which of the parameter fields are used:
//
//   - ShapeLine: P1→P2.
//   - ShapeRect: the box spanned by the corners P1 and P2.
//   - ShapeRoundRect: the box P1, P2 with corner radii RX, RY.
//   - ShapeEllipse: the ellipse inscribed in the box P1, P2, restricted to
//     the parameter angles Start..End.
//   - ShapeSubpath: a free-form subpath.
//
// Shapes other than subpaths are immutable once created.
type Shape struct {
	Kind       ShapeKind
	P1, P2     vec.Vec2
	RX, RY     float64
	Start, End float64

	sub *Subpath
}

// LineShape returns a straight line from p1 to p2.
func LineShape(p1, p2 vec.Vec2) Shape {
	return Shape{Kind: ShapeLine, P1: p1, P2: p2}
}

// RectShape returns the rectangle spanned by the corners p1 and p2.
func RectShape(p1, p2 vec.Vec2) Shape {
	return Shape{Kind: ShapeRect, P1: p1, P2: p2}
}

// RoundRectShape returns the rectangle spanned by p1 and p2 with elliptic
// corners of radii rx and ry. The corners are normalized so that P1 is
// the minimum corner, and the radii are clamped to the range from zero
// to half the side length.
func RoundRectShape(p1, p2 vec.Vec2, rx, ry float64) Shape {
	r := normalizedRect(p1, p2)
	rx = clampRadius(rx, (r.URx-r.LLx)/2)
	ry = clampRadius(ry, (r.URy-r.LLy)/2)
	return Shape{
		Kind: ShapeRoundRect,
		P1:   vec.Vec2{X: r.LLx, Y: r.LLy},
		P2:   vec.Vec2{X: r.URx, Y: r.URy},
		RX:   rx,
		RY:   ry,
	}
}

func clampRadius(r, limit float64) float64 {
	if !(r > 0) {
		return 0
	}
	return min(r, limit)
}

// EllipseShape returns the sector of the ellipse inscribed in the box
// spanned by p1 and p2, between the parameter angles start and end (in
// radians). The full ellipse is start=0, end=2π.
func EllipseShape(p1, p2 vec.Vec2, start, end float64) Shape {
	return Shape{Kind: ShapeEllipse, P1: p1, P2: p2, Start: start, End: end}
}

// SubpathShape returns a shape wrapping the given subpath.
func SubpathShape(s *Subpath) Shape {
	return Shape{Kind: ShapeSubpath, sub: s}
}

// Subpath returns the subpath of a ShapeSubpath entry, and nil for all
// other kinds.
func (s *Shape) Subpath() *Subpath {
	if s.Kind != ShapeSubpath {
		return nil
	}
	return s.sub
}

// AppendStroke appends the primitives which stroke the shape with the
// given line width.
func (s *Shape) AppendStroke(dst []Primitive, width float64) []Primitive {
	if !(width > 0) || math.IsInf(width, 0) {
		return dst
	}
	hairline := width == 1

	switch s.Kind {
	case ShapeLine:
		if hairline {
			return append(dst, Primitive{Kind: PrimLine, Points: []vec.Vec2{s.P1, s.P2}})
		}
		return appendThickLine(dst, s.P1, s.P2, width)

	case ShapeRect:
		corners := s.rectOutline()
		if hairline {
			return append(dst, Primitive{Kind: PrimLineStrip, Points: corners})
		}
		return appendThickLines(dst, corners, width)

	case ShapeRoundRect:
		return s.appendRoundRectStroke(dst, width)

	case ShapeEllipse:
		pts := EllipsePoints(s.P1, s.P2, s.Start, s.End)
		if hairline {
			return appendHairline(dst, pts)
		}
		return appendThickLines(dst, pts, width)

	case ShapeSubpath:
		return s.sub.appendStroke(dst, width)
	}
	return dst
}

// AppendFill appends the primitives which fill the shape. Lines have no
// interior and produce nothing.
func (s *Shape) AppendFill(dst []Primitive) []Primitive {
	switch s.Kind {
	case ShapeRect:
		return append(dst, Primitive{Kind: PrimFilledRect, Rect: normalizedRect(s.P1, s.P2)})

	case ShapeRoundRect:
		return s.appendRoundRectFill(dst)

	case ShapeEllipse:
		e := EllipseInBox(s.P1, s.P2)
		pts := appendEllipsePoints(nil, e, s.Start, s.End)
		tris := appendFan(nil, e.Center, pts)
		if len(tris) == 0 {
			return dst
		}
		return append(dst, Primitive{Kind: PrimTriangles, Triangles: tris})

	case ShapeSubpath:
		return s.sub.appendFill(dst)
	}
	return dst
}

// rectOutline returns the closed outline of a rectangle, starting and
// ending at P1.
func (s *Shape) rectOutline() []vec.Vec2 {
	p1, p2 := s.P1, s.P2
	return []vec.Vec2{
		{X: p1.X, Y: p1.Y},
		{X: p2.X, Y: p1.Y},
		{X: p2.X, Y: p2.Y},
		{X: p1.X, Y: p2.Y},
		{X: p1.X, Y: p1.Y},
	}
}

// roundRectEdges returns the four straight edges of a rounded rectangle,
// clockwise on screen starting at the top edge.
func (s *Shape) roundRectEdges() [4]Segment {
	p1, p2, rx, ry := s.P1, s.P2, s.RX, s.RY
	return [4]Segment{
		{A: vec.Vec2{X: p1.X + rx, Y: p1.Y}, B: vec.Vec2{X: p2.X - rx, Y: p1.Y}},
		{A: vec.Vec2{X: p2.X, Y: p1.Y + ry}, B: vec.Vec2{X: p2.X, Y: p2.Y - ry}},
		{A: vec.Vec2{X: p2.X - rx, Y: p2.Y}, B: vec.Vec2{X: p1.X + rx, Y: p2.Y}},
		{A: vec.Vec2{X: p1.X, Y: p2.Y - ry}, B: vec.Vec2{X: p1.X, Y: p1.Y + ry}},
	}
}

// cornerArc is one quarter of a corner ellipse of a rounded rectangle.
type cornerArc struct {
	e          Ellipse
	start, end float64
}

// roundRectCorners returns the corner arcs in the order top-left,
// top-right, bottom-right, bottom-left (in y-down screen coordinates).
func (s *Shape) roundRectCorners() [4]cornerArc {
	p1, p2, rx, ry := s.P1, s.P2, s.RX, s.RY
	box := func(x1, y1, x2, y2 float64) Ellipse {
		return EllipseInBox(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2})
	}
	return [4]cornerArc{
		{box(p1.X, p1.Y, p1.X+2*rx, p1.Y+2*ry), math.Pi, 1.5 * math.Pi},
		{box(p2.X-2*rx, p1.Y, p2.X, p1.Y+2*ry), 1.5 * math.Pi, 2 * math.Pi},
		{box(p2.X-2*rx, p2.Y-2*ry, p2.X, p2.Y), 0, 0.5 * math.Pi},
		{box(p1.X, p2.Y-2*ry, p1.X+2*rx, p2.Y), 0.5 * math.Pi, math.Pi},
	}
}

func (s *Shape) appendRoundRectStroke(dst []Primitive, width float64) []Primitive {
	edges := s.roundRectEdges()
	if width == 1 {
		dst = append(dst, Primitive{Kind: PrimLines, Segments: edges[:]})
	} else {
		for _, e := range edges {
			dst = appendThickLine(dst, e.A, e.B, width)
		}
	}

	for _, c := range s.roundRectCorners() {
		arc := appendEllipsePoints(nil, c.e, c.start, c.end)
		if width == 1 {
			dst = appendHairline(dst, arc)
		} else {
			dst = appendThickLines(dst, arc, width)
		}
	}
	return dst
}

// appendRoundRectFill covers the straight parts of a rounded rectangle
// with a horizontal and a vertical band, and each corner with a fan. The
// bands overlap in the middle; with a constant fill color this is not
// visible.
func (s *Shape) appendRoundRectFill(dst []Primitive) []Primitive {
	p1, p2, rx, ry := s.P1, s.P2, s.RX, s.RY

	horizontal := rect.Rect{LLx: p1.X, LLy: p1.Y + ry, URx: p2.X, URy: p2.Y - ry}
	vertical := rect.Rect{LLx: p1.X + rx, LLy: p1.Y, URx: p2.X - rx, URy: p2.Y}
	for _, r := range []rect.Rect{horizontal, vertical} {
		if r.URx > r.LLx && r.URy > r.LLy {
			dst = append(dst, Primitive{Kind: PrimFilledRect, Rect: r})
		}
	}

	var tris []Triangle
	for _, c := range s.roundRectCorners() {
		arc := appendEllipsePoints(nil, c.e, c.start, c.end)
		tris = appendFan(tris, c.e.Center, arc)
	}
	if len(tris) > 0 {
		dst = append(dst, Primitive{Kind: PrimTriangles, Triangles: tris})
	}
	return dst
}

// appendFan adds the triangles connecting center to each consecutive pair
// of boundary points. Triangles without area are kept, so that the
// number of triangles is always one less than the number of points.
func appendFan(dst []Triangle, center vec.Vec2, boundary []vec.Vec2) []Triangle {
	for i := 1; i < len(boundary); i++ {
		t := Triangle{A: center, B: boundary[i-1], C: boundary[i]}
		dst = append(dst, t.oriented())
	}
	return dst
}
