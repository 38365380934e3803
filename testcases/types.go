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

// Package testcases contains drawing scenes which exercise the path
// engine. The scenes are shared by the tests of the backends and by the
// commands which export recorded geometry and render reference images.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

// Scene is one frame of drawing commands.
type Scene struct {
	Name   string // lowercase a-z and _ only
	Width  int    // frame width in pixels
	Height int    // frame height in pixels

	// Draw issues the drawing commands on a fresh surface.
	Draw func(s *sketch.Surface)
}

// Render draws the scene as one frame on the backend.
func (sc Scene) Render(b sketch.Backend) error {
	return sketch.Draw(b, sc.Width, sc.Height, func(s *sketch.Surface) error {
		sc.Draw(s)
		return nil
	})
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// fillWith sets the fill color of the surface from a packed 0xAARRGGBB
// value.
func fillWith(s *sketch.Surface, argb uint32) {
	s.FillStyle.Color = sketch.ARGB(argb)
}

// strokeWith sets the stroke color and width of the surface.
func strokeWith(s *sketch.Surface, argb uint32, width float64) {
	s.StrokeStyle.Color = sketch.ARGB(argb)
	s.StrokeStyle.Width = width
}
