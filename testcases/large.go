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

	"seehuhn.de/go/sketch"
)

// largeScenes cover areas above 65536 pixels, so that the raster backend
// switches to row-by-row scanning.
var largeScenes = []Scene{
	{
		Name:   "rectangle",
		Width:  512,
		Height: 512,
		Draw: func(s *sketch.Surface) {
			s.Rectangle(pt(50, 50), pt(462, 462))
			s.Fill()
		},
	},
	{
		Name:   "disc",
		Width:  512,
		Height: 512,
		Draw: func(s *sketch.Surface) {
			s.Ellipse(pt(56, 56), pt(456, 456))
			s.Fill()
			s.StrokeStyle.Width = 6
			s.StrokeStyle.Color = sketch.ARGB(0xff4060a0)
			s.Stroke()
		},
	},
	{
		Name:   "clipped",
		Width:  512,
		Height: 512,
		Draw: func(s *sketch.Surface) {
			s.RoundRect(pt(-100, 100), pt(612, 400), 60, 60)
			s.Fill()
		},
	},
	{
		Name:   "ellipse_grid",
		Width:  512,
		Height: 512,
		Draw:   ellipseGrid(8, 8, 512, 512, 4),
	},
}

// ellipseGrid fills a grid of ellipses and strokes their outlines, with
// one path per grid row.
func ellipseGrid(rows, cols, width, height int, gap float64) func(*sketch.Surface) {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)
	return func(s *sketch.Surface) {
		for row := range rows {
			s.BeginPath()
			for col := range cols {
				x1 := float64(col)*cellW + gap
				y1 := float64(row)*cellH + gap
				x2 := float64(col+1)*cellW - gap
				y2 := float64(row+1)*cellH - gap
				s.EllipseArc(pt(x1, y1), pt(x2, y2), 0, 2*math.Pi*float64(col+1)/float64(cols))
			}
			s.FillStyle.Color = sketch.RGBA(float32(row)/float32(rows), 0.5, 0.5, 1)
			s.Fill()
			s.Stroke()
		}
	}
}
