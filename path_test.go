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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestPathLastSubpath(t *testing.T) {
	var p Path
	assert.Nil(t, p.LastSubpath())

	p.Append(RectShape(v(0, 0), v(1, 1)))
	assert.Nil(t, p.LastSubpath())

	sub := &Subpath{}
	p.Append(SubpathShape(sub))
	assert.Same(t, sub, p.LastSubpath())

	p.Append(LineShape(v(0, 0), v(1, 1)))
	assert.Nil(t, p.LastSubpath())
}

func TestPathReset(t *testing.T) {
	var p Path
	assert.True(t, p.IsEmpty())
	p.Append(RectShape(v(0, 0), v(1, 1)))
	p.Append(EllipseShape(v(0, 0), v(1, 1), 0, 1))
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.IsEmpty())

	p.Reset()
	assert.True(t, p.IsEmpty())
	assert.Zero(t, p.Len())
	assert.Empty(t, p.StrokeGeometry(1))
}

func TestPathStrokeOrder(t *testing.T) {
	var p Path
	p.Append(LineShape(v(0, 0), v(10, 10)))
	p.Append(RectShape(v(20, 20), v(30, 30)))
	p.Append(EllipseShape(v(40, 40), v(60, 60), 0, 1))

	prims := p.StrokeGeometry(1)
	require.Len(t, prims, 3)
	assert.Equal(t, PrimLine, prims[0].Kind)
	assert.Equal(t, []vec.Vec2{v(0, 0), v(10, 10)}, prims[0].Points)
	assert.Equal(t, PrimLineStrip, prims[1].Kind)
	assert.Equal(t, v(20, 20), prims[1].Points[0])
	assert.Equal(t, PrimLineStrip, prims[2].Kind)
}

func TestPathFillSkipsLines(t *testing.T) {
	var p Path
	p.Append(LineShape(v(0, 0), v(10, 10)))
	p.Append(RectShape(v(30, 30), v(20, 20)))

	prims := p.FillGeometry()
	require.Len(t, prims, 1)
	assert.Equal(t, PrimFilledRect, prims[0].Kind)
	assert.Equal(t, rect.Rect{LLx: 20, LLy: 20, URx: 30, URy: 30}, prims[0].Rect)
}

func TestPathDraw(t *testing.T) {
	var p Path
	p.Append(LineShape(v(0, 0), v(10, 10)))
	p.Append(RectShape(v(20, 20), v(30, 30)))
	p.Append(EllipseShape(v(40, 40), v(60, 60), 0, 6.3))

	red := ARGB(0xffff0000)
	b := &testBackend{}
	p.Stroke(b, StrokeStyle{Color: red, Width: 1})

	// one color change per call, then the primitives in path order
	assert.Equal(t, []Color{red}, b.colors)
	require.Len(t, b.Ops, 3)
	assert.Equal(t, PrimLine, b.Ops[0].Kind)
	assert.Equal(t, PrimLineStrip, b.Ops[1].Kind)
	assert.Equal(t, PrimLineStrip, b.Ops[2].Kind)
	for _, op := range b.Ops {
		assert.Equal(t, red, op.Color)
	}

	blue := ARGB(0xff0000ff)
	b.Ops = nil
	p.Fill(b, FillStyle{Color: blue})
	assert.Equal(t, []Color{red, blue}, b.colors)
	require.Len(t, b.Ops, 2)
	assert.Equal(t, PrimFilledRect, b.Ops[0].Kind)
	assert.Equal(t, PrimTriangles, b.Ops[1].Kind)
}
