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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Backend is the immediate-mode rasterizer that receives the geometry
// produced by a [Surface].
//
// The lifecycle of one frame is: Begin, Viewport, any number of drawing
// calls, Flush, End. Drawing calls use the color set by the most recent
// SetColor call. Slices passed to drawing calls are only valid for the
// duration of the call.
type Backend interface {
	// Begin starts a frame of the given size in pixels.
	Begin(width, height int) error

	// Viewport sets the device rectangle that drawing coordinates map to.
	// The origin of the drawing coordinates is at (x, y).
	Viewport(x, y, width, height int)

	// SetColor sets the color for subsequent drawing calls.
	SetColor(c Color)

	// Clear fills the whole viewport with the current color.
	Clear()

	// DrawLine draws a single hairline segment.
	DrawLine(a, b vec.Vec2)

	// DrawLineStrip draws a connected hairline through the points.
	DrawLineStrip(pts []vec.Vec2)

	// DrawLines draws independent hairline segments.
	DrawLines(segs []Segment)

	// DrawFilledRect fills an axis-aligned rectangle.
	DrawFilledRect(r rect.Rect)

	// DrawFilledTriangles fills independent triangles.
	DrawFilledTriangles(tris []Triangle)

	// DrawFilledTriangleStrip fills the triangle strip through the points:
	// every three consecutive points form one triangle.
	DrawFilledTriangleStrip(pts []vec.Vec2)

	// Flush submits all drawing calls of the frame.
	Flush() error

	// End finishes the frame. No drawing calls follow.
	End() error
}
