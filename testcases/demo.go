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

var demoScenes = []Scene{
	{
		Name:   "frame",
		Width:  640,
		Height: 640,
		Draw:   demoFrame,
	},
	{
		Name:   "arc_to",
		Width:  200,
		Height: 200,
		Draw:   arcToMarkers,
	},
}

// demoFrame draws a line, a rectangle and an ellipse with one fill and
// one stroke, then a quarter sector and a rounded rectangle, and finally
// the rounded corner of arcToMarkers.
func demoFrame(s *sketch.Surface) {
	fillWith(s, 0xfffefae0)
	s.Clear()

	s.BeginPath()
	s.Line(pt(10, 10), pt(50, 50))
	s.Rectangle(pt(10, 10), pt(50, 50))
	s.Ellipse(pt(100, 100), pt(300, 300))

	fillWith(s, 0xffe9edc9)
	s.Fill()
	strokeWith(s, 0xffccd5ae, 3)
	s.Stroke()

	s.BeginPath()
	s.EllipseArc(pt(400, 400), pt(500, 500), math.Pi, 1.5*math.Pi)
	s.RoundRect(pt(100, 400), pt(400, 600), 20, 20)

	fillWith(s, 0xfffaedcd)
	s.Fill()
	strokeWith(s, 0xffd4a373, 3)
	s.Stroke()

	arcToMarkers(s)
}

// arcToMarkers rounds a right-angle corner with a tangent arc, closes the
// subpath, and marks the three control points with small dots.
func arcToMarkers(s *sketch.Surface) {
	p0 := pt(50, 120)
	p1 := pt(100, 120)
	p2 := pt(100, 170)

	s.BeginPath()
	s.MoveTo(p0)
	s.ArcTo(p1, p2, 50)
	s.ClosePath()
	strokeWith(s, 0xffd4a373, 3)
	s.Stroke()

	for i, p := range []vec.Vec2{p0, p1, p2} {
		s.BeginPath()
		s.Ellipse(pt(p.X-5, p.Y-5), pt(p.X+5, p.Y+5))
		if i == 1 {
			fillWith(s, 0x800000ff)
		} else {
			fillWith(s, 0x80ff0000)
		}
		s.Fill()
	}
}
