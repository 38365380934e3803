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

package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// polygonSizes returns the number of vertices of each polygon in p.
func polygonSizes(p *path.Data) []int {
	var sizes []int
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			sizes = append(sizes, 1)
		case path.CmdLineTo:
			sizes[len(sizes)-1]++
		}
	}
	return sizes
}

// signedAreas returns twice the signed area of each polygon in p.
func signedAreas(p *path.Data) []float64 {
	var res []float64
	var poly []vec.Vec2
	flush := func() {
		if len(poly) == 0 {
			return
		}
		a := 0.0
		for i := range poly {
			u, v := poly[i], poly[(i+1)%len(poly)]
			a += u.X*v.Y - u.Y*v.X
		}
		res = append(res, a)
		poly = poly[:0]
	}
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			poly = append(poly, p.Coords[k])
			k++
		case path.CmdLineTo:
			poly = append(poly, p.Coords[k])
			k++
		}
	}
	flush()
	return res
}

var square = []vec.Vec2{
	{X: 2.5, Y: 2.5}, {X: 12.5, Y: 2.5}, {X: 12.5, Y: 12.5}, {X: 2.5, Y: 12.5}, {X: 2.5, Y: 2.5},
}

func TestOutlineOpenStrip(t *testing.T) {
	o := &outliner{Width: 1, Join: graphics.LineJoinMiter, MiterLimit: 10}
	p := &path.Data{}
	o.addPolyline(p, square[:4])

	// three segments with miter joins at the two inner corners
	assert.Equal(t, []int{4, 4, 4, 4, 4}, polygonSizes(p))
}

func TestOutlineClosedStrip(t *testing.T) {
	o := &outliner{Width: 1, Join: graphics.LineJoinMiter, MiterLimit: 10}
	p := &path.Data{}
	o.addPolyline(p, square)

	// four segments and four joins, including the corner at the start
	assert.Equal(t, []int{4, 4, 4, 4, 4, 4, 4, 4}, polygonSizes(p))
}

func TestOutlineOrientation(t *testing.T) {
	zigzag := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 10}, {X: 10, Y: 15}}
	for _, join := range []graphics.LineJoinStyle{
		graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel,
	} {
		o := &outliner{Width: 1, Join: join, MiterLimit: 10}
		p := &path.Data{}
		o.addPolyline(p, zigzag)
		for i, a := range signedAreas(p) {
			assert.Positive(t, a, "join %v, polygon %d", join, i)
		}
	}
}

func TestOutlineMiterLimit(t *testing.T) {
	// a sharp corner of about 22°
	sharp := []vec.Vec2{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 0, Y: 20}}

	o := &outliner{Width: 1, Join: graphics.LineJoinMiter, MiterLimit: 10}
	p := &path.Data{}
	o.addPolyline(p, sharp)
	assert.Equal(t, []int{4, 4, 4}, polygonSizes(p))

	o.MiterLimit = 2
	p = &path.Data{}
	o.addPolyline(p, sharp)
	assert.Equal(t, []int{4, 4, 3}, polygonSizes(p), "bevel expected")
}

func TestOutlineDegenerate(t *testing.T) {
	o := &outliner{Width: 1, Join: graphics.LineJoinMiter, MiterLimit: 10}
	p := &path.Data{}
	o.addPolyline(p, []vec.Vec2{{X: 1, Y: 1}, {X: 1, Y: 1}})
	o.addPolyline(p, []vec.Vec2{{X: 1, Y: 1}})
	o.addPolyline(p, nil)
	assert.Empty(t, p.Cmds)

	// collinear points need no join
	o.addPolyline(p, []vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}})
	assert.Equal(t, []int{4, 4}, polygonSizes(p))
}
