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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestSubpathEmpty(t *testing.T) {
	var s Subpath
	s.LineTo(v(1, 1))
	s.ArcTo(v(2, 2), v(3, 0), 1)
	s.ClosePath()

	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsOpen())
	assert.False(t, s.IsClosed())
	_, ok := s.CurrentPoint()
	assert.False(t, ok)
}

func TestSubpathMoveOnce(t *testing.T) {
	var s Subpath
	s.MoveTo(v(1, 2))
	s.MoveTo(v(3, 4))
	assert.Equal(t, []vec.Vec2{v(1, 2)}, s.Points())

	cur, ok := s.CurrentPoint()
	require.True(t, ok)
	assert.Equal(t, v(1, 2), cur)
}

func TestSubpathClose(t *testing.T) {
	var s Subpath
	s.MoveTo(v(0, 0))
	s.LineTo(v(10, 0))
	s.LineTo(v(10, 10))
	s.ClosePath()
	s.ClosePath()

	want := []vec.Vec2{v(0, 0), v(10, 0), v(10, 10), v(0, 0)}
	assert.Equal(t, want, s.Points())
	assert.True(t, s.IsClosed())
	assert.False(t, s.IsOpen())

	// a closed subpath ignores further commands
	s.LineTo(v(5, 5))
	s.ArcTo(v(0, 10), v(0, 0), 2)
	s.MoveTo(v(7, 7))
	assert.Equal(t, want, s.Points())
}

func TestSubpathCloseAtStart(t *testing.T) {
	var s Subpath
	s.MoveTo(v(0, 0))
	s.LineTo(v(10, 0))
	s.LineTo(v(0, 10))
	s.LineTo(v(0, 0))
	s.ClosePath()

	assert.Len(t, s.Points(), 4)
	assert.True(t, s.IsClosed())
}

func TestSubpathArcTo(t *testing.T) {
	var s Subpath
	s.MoveTo(v(0, 0))
	s.ArcTo(v(100, 0), v(100, 100), 50)

	pts := s.Points()
	require.Greater(t, len(pts), 2)
	assert.Equal(t, v(0, 0), pts[0])
	assert.InDelta(t, 0, Distance(pts[1], v(50, 0)), 1e-9)
	assert.InDelta(t, 0, Distance(pts[len(pts)-1], v(100, 50)), 1e-9)
	for i, p := range pts[1:] {
		assert.InDelta(t, 50, Distance(p, v(50, 50)), 1e-9, "point %d", i+1)
	}
}

func TestSubpathArcToFallback(t *testing.T) {
	for _, tc := range []struct {
		name   string
		p1, p2 vec.Vec2
	}{
		{"collinear", v(10, 0), v(20, 0)},
		{"zero_first_segment", v(0, 0), v(10, 10)},
		{"zero_second_segment", v(10, 0), v(10, 0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var s Subpath
			s.MoveTo(v(0, 0))
			s.ArcTo(tc.p1, tc.p2, 5)
			assert.Equal(t, []vec.Vec2{v(0, 0), tc.p1}, s.Points())
		})
	}
}

func TestSubpathFillTriangle(t *testing.T) {
	var s Subpath
	s.MoveTo(v(0, 0))
	s.LineTo(v(10, 0))
	s.LineTo(v(10, 10))
	s.ClosePath()

	prims := s.appendFill(nil)
	require.Len(t, prims, 1)
	require.Equal(t, PrimTriangles, prims[0].Kind)
	require.Len(t, prims[0].Triangles, 1)
	assert.InDelta(t, 50, prims[0].Triangles[0].Area(), 1e-9)
}

func TestSubpathFillOpen(t *testing.T) {
	// an open subpath is filled as if it was closed
	var s Subpath
	s.MoveTo(v(0, 0))
	s.LineTo(v(10, 0))
	s.LineTo(v(10, 10))
	s.LineTo(v(0, 10))

	prims := s.appendFill(nil)
	require.Len(t, prims, 1)
	assert.InDelta(t, 100, totalArea(prims[0].Triangles), 1e-9)
}

func TestSubpathStroke(t *testing.T) {
	var s Subpath
	s.MoveTo(v(0, 0))
	s.LineTo(v(10, 0))
	s.LineTo(v(10, 10))

	prims := s.appendStroke(nil, 1)
	require.Len(t, prims, 1)
	assert.Equal(t, PrimLineStrip, prims[0].Kind)
	assert.Equal(t, s.Points(), prims[0].Points)

	prims = s.appendStroke(nil, 4)
	require.Len(t, prims, 2)
	for _, p := range prims {
		assert.Equal(t, PrimTriangleStrip, p.Kind)
	}

	// a single point has nothing to stroke
	var dot Subpath
	dot.MoveTo(v(3, 3))
	assert.Empty(t, dot.appendStroke(nil, 1))
	assert.Empty(t, dot.appendStroke(nil, 4))
	assert.Empty(t, dot.appendFill(nil))
}
