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
	"seehuhn.de/go/geom/vec"
)

// Subpath is a free-form polyline built from move, line, arc and close
// commands.
//
// A subpath starts out empty. MoveTo sets the first point; LineTo and
// ArcTo extend the polyline and do nothing while the subpath is empty.
// ClosePath returns to the first point. Once closed, the subpath ignores
// further commands.
type Subpath struct {
	points []vec.Vec2
	closed bool
}

// MoveTo sets the first point of the subpath. It does nothing if the
// subpath already has points.
func (s *Subpath) MoveTo(p vec.Vec2) {
	if len(s.points) > 0 {
		return
	}
	s.points = append(s.points, p)
}

// LineTo appends a straight segment to p.
func (s *Subpath) LineTo(p vec.Vec2) {
	if !s.IsOpen() {
		return
	}
	s.points = append(s.points, p)
}

// ArcTo rounds the corner p1 between the current point and p2 with a
// circular arc of the given radius. The arc starts where it touches the
// segment from the current point to p1 and ends where it touches the
// segment from p1 to p2; p2 itself is not added.
//
// If no such arc exists, because one of the segments has zero length or
// the three points are collinear, the corner is kept sharp and p1 is
// appended as with LineTo.
func (s *Subpath) ArcTo(p1, p2 vec.Vec2, radius float64) {
	if !s.IsOpen() {
		return
	}
	p0 := s.points[len(s.points)-1]
	n := len(s.points)
	s.points = appendTangentArc(s.points, p0, p1, p2, radius)
	if len(s.points) == n {
		Logger().Debug("no tangent arc, using sharp corner",
			"x", p1.X, "y", p1.Y, "radius", radius)
		s.points = append(s.points, p1)
	}
}

// ClosePath appends a copy of the first point. Calling ClosePath more than
// once, or on a subpath which already ends at its first point, appends
// nothing.
func (s *Subpath) ClosePath() {
	if len(s.points) == 0 || s.closed {
		return
	}
	if first := s.points[0]; s.points[len(s.points)-1] != first {
		s.points = append(s.points, first)
	}
	s.closed = true
}

// IsEmpty reports whether the subpath has no points yet.
func (s *Subpath) IsEmpty() bool {
	return len(s.points) == 0
}

// IsOpen reports whether the subpath accepts LineTo and ArcTo commands.
func (s *Subpath) IsOpen() bool {
	return len(s.points) > 0 && !s.closed
}

// IsClosed reports whether ClosePath has been called.
func (s *Subpath) IsClosed() bool {
	return s.closed
}

// Points returns the points of the subpath. The returned slice must not be
// modified.
func (s *Subpath) Points() []vec.Vec2 {
	return s.points
}

// CurrentPoint returns the last point of the subpath, and false if the
// subpath is empty.
func (s *Subpath) CurrentPoint() (vec.Vec2, bool) {
	if len(s.points) == 0 {
		return vec.Vec2{}, false
	}
	return s.points[len(s.points)-1], true
}

func (s *Subpath) appendStroke(dst []Primitive, width float64) []Primitive {
	if width == 1 {
		return appendHairline(dst, s.points)
	}
	return appendThickLines(dst, s.points, width)
}

// appendFill triangulates the polyline as it is. An open subpath is
// closed implicitly by the triangulation.
func (s *Subpath) appendFill(dst []Primitive) []Primitive {
	tris := Triangulate(s.points)
	if len(tris) == 0 {
		return dst
	}
	return append(dst, Primitive{Kind: PrimTriangles, Triangles: tris})
}
