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
	"bytes"
	"image/color"
	"image/png"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

var (
	opaqueRed   = sketch.ARGB(0xffff0000)
	opaqueWhite = sketch.ARGB(0xffffffff)
)

func TestFilledRect(t *testing.T) {
	im := New()
	require.NoError(t, im.Begin(16, 16))
	im.SetColor(opaqueRed)
	im.DrawFilledRect(rect.Rect{LLx: 4, LLy: 4, URx: 8, URy: 8})
	require.NoError(t, im.End())

	img := im.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(4, 7))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(3, 5))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(8, 5))
}

func TestHalfPixelEdge(t *testing.T) {
	im := New()
	require.NoError(t, im.Begin(8, 8))
	im.DrawFilledRect(rect.Rect{LLx: 2.5, LLy: 2, URx: 6, URy: 6})
	require.NoError(t, im.End())

	a := im.Image().RGBAAt(2, 3).A
	assert.InDelta(t, 128, int(a), 1)
	assert.Equal(t, uint8(255), im.Image().RGBAAt(3, 3).A)
}

func TestClearReplaces(t *testing.T) {
	im := New()
	require.NoError(t, im.Begin(4, 4))
	im.SetColor(opaqueRed)
	im.Clear()
	im.SetColor(sketch.RGBA(0, 0, 1, 0.5))
	im.Clear()
	require.NoError(t, im.End())

	// premultiplied half-transparent blue, not blended with red
	assert.Equal(t, color.RGBA{B: 128, A: 128}, im.Image().RGBAAt(1, 1))
}

func TestSourceOver(t *testing.T) {
	im := New()
	require.NoError(t, im.Begin(4, 4))
	im.SetColor(opaqueWhite)
	im.Clear()
	im.SetColor(sketch.RGBA(0, 0, 0, 0.5))
	im.DrawFilledRect(rect.Rect{URx: 4, URy: 4})
	require.NoError(t, im.End())

	px := im.Image().RGBAAt(2, 2)
	assert.InDelta(t, 128, int(px.R), 1)
	assert.InDelta(t, 128, int(px.G), 1)
	assert.InDelta(t, 128, int(px.B), 1)
	assert.Equal(t, uint8(255), px.A)
}

func TestHairline(t *testing.T) {
	im := New()
	require.NoError(t, im.Begin(16, 16))
	im.DrawLine(vec.Vec2{X: 2, Y: 5.5}, vec.Vec2{X: 12, Y: 5.5})
	require.NoError(t, im.End())

	img := im.Image()
	for x := 2; x < 12; x++ {
		assert.Equal(t, uint8(255), img.RGBAAt(x, 5).A, "x=%d", x)
		assert.Equal(t, uint8(0), img.RGBAAt(x, 4).A, "x=%d", x)
		assert.Equal(t, uint8(0), img.RGBAAt(x, 6).A, "x=%d", x)
	}
	assert.Equal(t, uint8(0), img.RGBAAt(1, 5).A)
	assert.Equal(t, uint8(0), img.RGBAAt(12, 5).A)
}

// TestStripNoSeam checks that the two triangles of a thick line quad
// cover their shared diagonal without a visible seam.
func TestStripNoSeam(t *testing.T) {
	q, ok := sketch.ThickLine(vec.Vec2{X: 0, Y: 8}, vec.Vec2{X: 16, Y: 8}, 8)
	require.True(t, ok)

	im := New()
	require.NoError(t, im.Begin(16, 16))
	im.DrawFilledTriangleStrip(q[:])
	require.NoError(t, im.End())

	img := im.Image()
	for y := 4; y < 12; y++ {
		for x := range 16 {
			assert.Equal(t, uint8(255), img.RGBAAt(x, y).A, "(%d,%d)", x, y)
		}
	}
	assert.Equal(t, uint8(0), img.RGBAAt(8, 3).A)
	assert.Equal(t, uint8(0), img.RGBAAt(8, 12).A)
}

func TestViewport(t *testing.T) {
	im := New()
	require.NoError(t, im.Begin(20, 20))
	im.Viewport(10, 10, 10, 10)
	im.DrawFilledRect(rect.Rect{URx: 100, URy: 100})
	require.NoError(t, im.End())

	img := im.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(10, 10).A)
	assert.Equal(t, uint8(255), img.RGBAAt(19, 19).A)
	assert.Equal(t, uint8(0), img.RGBAAt(9, 9).A)
	assert.Equal(t, uint8(0), img.RGBAAt(15, 5).A)
}

func TestFrameLifecycle(t *testing.T) {
	im := New()
	assert.Error(t, im.Begin(0, 10))
	assert.Error(t, im.End())

	require.NoError(t, im.Begin(4, 4))
	require.NoError(t, im.Flush())
	require.NoError(t, im.End())
	assert.Error(t, im.End())

	// drawing after End is ignored
	im.DrawFilledRect(rect.Rect{URx: 4, URy: 4})
	assert.Equal(t, uint8(0), im.Image().RGBAAt(1, 1).A)
}

func TestWritePNG(t *testing.T) {
	im := New()
	assert.Error(t, im.WritePNG(&bytes.Buffer{}))

	require.NoError(t, testcases.All["demo"][0].Render(im))
	buf := &bytes.Buffer{}
	require.NoError(t, im.WritePNG(buf))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
}

// TestScenes renders every scene and checks a few invariants of the
// result.
func TestScenes(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				im := New()
				require.NoError(t, sc.Render(im))
				b := im.Image().Bounds()
				assert.Equal(t, sc.Width, b.Dx())
				assert.Equal(t, sc.Height, b.Dy())
			})
		}
	}
}

// TestDemoFrame spot-checks colors of the demo frame.
func TestDemoFrame(t *testing.T) {
	im := New()
	require.NoError(t, testcases.All["demo"][0].Render(im))
	img := im.Image()

	// background
	assert.Equal(t, color.RGBA{R: 0xfe, G: 0xfa, B: 0xe0, A: 0xff}, img.RGBAAt(600, 50))
	// inside the ellipse
	assert.Equal(t, color.RGBA{R: 0xe9, G: 0xed, B: 0xc9, A: 0xff}, img.RGBAAt(160, 220))
	// inside the rounded rectangle
	assert.Equal(t, color.RGBA{R: 0xfa, G: 0xed, B: 0xcd, A: 0xff}, img.RGBAAt(250, 500))
}

func BenchmarkScenes(b *testing.B) {
	var scenes []testcases.Scene
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		scenes = append(scenes, testcases.All[category]...)
	}
	im := New()

	b.ResetTimer()
	for b.Loop() {
		for _, sc := range scenes {
			if err := sc.Render(im); err != nil {
				b.Fatal(err)
			}
		}
	}
}
