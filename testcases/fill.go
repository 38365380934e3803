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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

var fillScenes = []Scene{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Draw:   fillPolygon(pt(10, 50), pt(32, 10), pt(54, 50)),
	},
	{
		Name:   "arrow",
		Width:  64,
		Height: 64,
		Draw: fillPolygon(
			pt(8, 24), pt(36, 24), pt(36, 10), pt(58, 32),
			pt(36, 54), pt(36, 40), pt(8, 40)),
	},
	{
		Name:   "star_concave",
		Width:  64,
		Height: 64,
		Draw:   fillPolygon(starPolygon(32, 32, 28, 12, 5)...),
	},
	{
		// Ear clipping assumes a simple outline; only part of this star is filled.
		Name:   "star_self_intersecting",
		Width:  64,
		Height: 64,
		Draw:   fillPolygon(pentagram(32, 32, 28)...),
	},
	{
		Name:   "collinear_vertices",
		Width:  64,
		Height: 64,
		Draw: fillPolygon(
			pt(10, 10), pt(20, 10), pt(30, 10), pt(54, 10),
			pt(54, 54), pt(32, 54), pt(10, 54), pt(10, 32)),
	},
	{
		Name:   "rectangle_reversed",
		Width:  64,
		Height: 64,
		Draw: func(s *sketch.Surface) {
			s.Rectangle(pt(54, 54), pt(10, 10))
			s.Fill()
		},
	},
	{
		Name:   "roundrect_clamped",
		Width:  64,
		Height: 64,
		Draw: func(s *sketch.Surface) {
			s.RoundRect(pt(8, 16), pt(56, 48), 40, 40)
			s.Fill()
		},
	},
	{
		Name:   "ellipse",
		Width:  64,
		Height: 64,
		Draw: func(s *sketch.Surface) {
			s.Ellipse(pt(4, 12), pt(60, 52))
			s.Fill()
		},
	},
	{
		Name:   "sector",
		Width:  64,
		Height: 64,
		Draw: func(s *sketch.Surface) {
			s.EllipseArc(pt(8, 8), pt(56, 56), 0, 1.5*math.Pi)
			s.Fill()
		},
	},
}

// fillPolygon fills the closed polygon through pts.
func fillPolygon(pts ...vec.Vec2) func(*sketch.Surface) {
	return func(s *sketch.Surface) {
		s.MoveTo(pts[0])
		for _, p := range pts[1:] {
			s.LineTo(p)
		}
		s.ClosePath()
		s.Fill()
	}
}

// starPolygon returns the outline of an n-pointed star with alternating
// outer and inner radii. The outline does not cross itself.
func starPolygon(cx, cy, outer, inner float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 2*n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}

// pentagram returns a five-pointed star drawn by connecting every second
// vertex of a regular pentagon.
func pentagram(cx, cy, r float64) []vec.Vec2 {
	var pts []vec.Vec2
	for _, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return pts
}
