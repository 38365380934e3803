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
	"seehuhn.de/go/sketch"
)

var subpathScenes = []Scene{
	{
		Name:   "two_triangles",
		Width:  64,
		Height: 64,
		Draw: func(s *sketch.Surface) {
			s.MoveTo(pt(4, 44))
			s.LineTo(pt(16, 20))
			s.LineTo(pt(28, 44))
			s.ClosePath()
			s.MoveTo(pt(36, 44))
			s.LineTo(pt(48, 20))
			s.LineTo(pt(60, 44))
			s.ClosePath()
			s.Fill()
			s.Stroke()
		},
	},
	{
		// LineTo without a preceding MoveTo starts a new subpath.
		Name:   "implicit_start",
		Width:  64,
		Height: 64,
		Draw: func(s *sketch.Surface) {
			s.LineTo(pt(10, 10))
			s.LineTo(pt(54, 10))
			s.LineTo(pt(32, 54))
			s.ClosePath()
			s.Fill()
		},
	},
	{
		// A second ClosePath and commands after closing change nothing.
		Name:   "close_twice",
		Width:  64,
		Height: 64,
		Draw: func(s *sketch.Surface) {
			s.MoveTo(pt(10, 10))
			s.LineTo(pt(54, 10))
			s.LineTo(pt(54, 54))
			s.ClosePath()
			s.ClosePath()
			s.StrokeStyle.Width = 3
			s.Stroke()
		},
	},
	{
		// Subpaths and shapes in one path are drawn in insertion order.
		Name:   "mixed",
		Width:  64,
		Height: 64,
		Draw: func(s *sketch.Surface) {
			s.Rectangle(pt(4, 4), pt(28, 28))
			s.MoveTo(pt(36, 4))
			s.LineTo(pt(60, 4))
			s.LineTo(pt(48, 28))
			s.ClosePath()
			s.Ellipse(pt(20, 36), pt(44, 60))
			s.Fill()
			s.StrokeStyle.Color = sketch.ARGB(0xffff0000)
			s.Stroke()
		},
	},
}
