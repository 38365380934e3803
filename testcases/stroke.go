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

var strokeScenes = []Scene{
	{
		Name:   "line_hairline",
		Width:  64,
		Height: 64,
		Draw:   strokeLine(1),
	},
	{
		Name:   "line_thick",
		Width:  64,
		Height: 64,
		Draw:   strokeLine(8),
	},
	{
		// Zero width draws nothing.
		Name:   "line_zero_width",
		Width:  64,
		Height: 64,
		Draw:   strokeLine(0),
	},
	{
		Name:   "rectangle_hairline",
		Width:  64,
		Height: 64,
		Draw:   strokeRectangle(1),
	},
	{
		Name:   "rectangle_thick",
		Width:  64,
		Height: 64,
		Draw:   strokeRectangle(6),
	},
	{
		Name:   "roundrect_hairline",
		Width:  64,
		Height: 64,
		Draw:   strokeRoundRect(1),
	},
	{
		Name:   "roundrect_thick",
		Width:  64,
		Height: 64,
		Draw:   strokeRoundRect(4),
	},
	{
		Name:   "ellipse_hairline",
		Width:  64,
		Height: 64,
		Draw:   strokeEllipse(1),
	},
	{
		Name:   "ellipse_thick",
		Width:  64,
		Height: 64,
		Draw:   strokeEllipse(5),
	},
	{
		Name:   "zigzag_hairline",
		Width:  64,
		Height: 64,
		Draw:   strokeZigzag(1),
	},
	{
		Name:   "zigzag_thick",
		Width:  64,
		Height: 64,
		Draw:   strokeZigzag(4),
	},
}

func strokeLine(width float64) func(*sketch.Surface) {
	return func(s *sketch.Surface) {
		s.Line(pt(10, 20), pt(54, 44))
		s.StrokeStyle.Width = width
		s.Stroke()
	}
}

func strokeRectangle(width float64) func(*sketch.Surface) {
	return func(s *sketch.Surface) {
		s.Rectangle(pt(12.5, 12.5), pt(51.5, 51.5))
		s.StrokeStyle.Width = width
		s.Stroke()
	}
}

func strokeRoundRect(width float64) func(*sketch.Surface) {
	return func(s *sketch.Surface) {
		s.RoundRect(pt(8.5, 16.5), pt(55.5, 47.5), 10, 8)
		s.StrokeStyle.Width = width
		s.Stroke()
	}
}

func strokeEllipse(width float64) func(*sketch.Surface) {
	return func(s *sketch.Surface) {
		s.Ellipse(pt(8, 14), pt(56, 50))
		s.StrokeStyle.Width = width
		s.Stroke()
	}
}

func strokeZigzag(width float64) func(*sketch.Surface) {
	return func(s *sketch.Surface) {
		s.MoveTo(pt(6, 50))
		s.LineTo(pt(18, 14))
		s.LineTo(pt(30, 50))
		s.LineTo(pt(42, 14))
		s.LineTo(pt(58, 50))
		s.StrokeStyle.Width = width
		s.Stroke()
	}
}
