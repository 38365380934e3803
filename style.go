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

import "math"

// Color is a non-premultiplied RGBA color with channels in the range 0..1.
type Color struct {
	R, G, B, A float32
}

// RGBA returns the color with the given channel values.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ARGB converts a packed 0xAARRGGBB value to a Color.
func ARGB(argb uint32) Color {
	return Color{
		A: float32((argb>>24)&0xff) / 255,
		R: float32((argb>>16)&0xff) / 255,
		G: float32((argb>>8)&0xff) / 255,
		B: float32(argb&0xff) / 255,
	}
}

// RGBA implements the [image/color.Color] interface. The returned values
// are alpha-premultiplied and range over 0..0xffff.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel16(c.A)
	r = channel16(c.R) * a / 0xffff
	g = channel16(c.G) * a / 0xffff
	b = channel16(c.B) * a / 0xffff
	return r, g, b, a
}

func channel16(v float32) uint32 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint32(math.Round(float64(v) * 0xffff))
}

// Black is opaque black, the default drawing color.
var Black = Color{A: 1}

// StrokeStyle controls how a path is stroked.
type StrokeStyle struct {
	Color Color

	// Width is the line width. A width of exactly 1 selects single-pixel
	// hairlines; any other positive width is drawn as filled quads. A
	// width of zero or less draws nothing.
	Width float64
}

// FillStyle controls how a path is filled.
type FillStyle struct {
	Color Color
}

// DefaultStrokeStyle returns a black hairline style.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Color: Black, Width: 1}
}

// DefaultFillStyle returns a black fill style.
func DefaultFillStyle() FillStyle {
	return FillStyle{Color: Black}
}
