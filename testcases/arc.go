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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

var arcScenes = []Scene{
	{
		Name:   "left_turn",
		Width:  128,
		Height: 128,
		Draw:   roundedCorner(pt(16, 100), pt(64, 20), pt(112, 100), 20),
	},
	{
		Name:   "right_turn",
		Width:  128,
		Height: 128,
		Draw:   roundedCorner(pt(16, 20), pt(64, 100), pt(112, 20), 20),
	},
	{
		Name:   "obtuse",
		Width:  128,
		Height: 128,
		Draw:   roundedCorner(pt(10, 64), pt(64, 54), pt(118, 64), 30),
	},
	{
		Name:   "collinear",
		Width:  128,
		Height: 128,
		Draw:   roundedCorner(pt(10, 64), pt(64, 64), pt(118, 64), 30),
	},
	{
		Name:   "zero_radius",
		Width:  128,
		Height: 128,
		Draw:   roundedCorner(pt(16, 100), pt(64, 20), pt(112, 100), 0),
	},
	{
		Name:   "rounded_square",
		Width:  128,
		Height: 128,
		Draw:   roundedSquare(24, 24, 104, 104, 16),
	},
}

// roundedCorner strokes the polyline p0, p1, p2 with the corner at p1
// rounded by a tangent arc.
func roundedCorner(p0, p1, p2 vec.Vec2, radius float64) func(*sketch.Surface) {
	return func(s *sketch.Surface) {
		fillWith(s, 0xffffffff)
		s.Clear()

		s.MoveTo(p0)
		s.ArcTo(p1, p2, radius)
		s.LineTo(p2)
		strokeWith(s, 0xff000000, 4)
		s.Stroke()
	}
}

// roundedSquare fills and outlines a square with all four corners
// rounded by tangent arcs.
func roundedSquare(x1, y1, x2, y2, radius float64) func(*sketch.Surface) {
	return func(s *sketch.Surface) {
		fillWith(s, 0xffffffff)
		s.Clear()

		s.MoveTo(pt((x1+x2)/2, y1))
		s.ArcTo(pt(x2, y1), pt(x2, y2), radius)
		s.ArcTo(pt(x2, y2), pt(x1, y2), radius)
		s.ArcTo(pt(x1, y2), pt(x1, y1), radius)
		s.ArcTo(pt(x1, y1), pt(x2, y1), radius)
		s.ClosePath()

		fillWith(s, 0xffccd5ae)
		s.Fill()
		strokeWith(s, 0xff000000, 1)
		s.Stroke()
	}
}
