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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestARGB(t *testing.T) {
	c := ARGB(0x80ff4000)
	assert.InDelta(t, 128.0/255, c.A, 1e-6)
	assert.Equal(t, float32(1), c.R)
	assert.InDelta(t, 64.0/255, c.G, 1e-6)
	assert.Zero(t, c.B)
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := ARGB(0xffff0000).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})

	// premultiplied
	r, g, b, a = RGBA(1, 0.5, 0, 0.5).RGBA()
	assert.Equal(t, uint32(0x8000), a)
	assert.Equal(t, a, r)
	assert.Equal(t, uint32(0x4000), g)
	assert.Zero(t, b)

	// out of range channels are clamped
	r, _, _, a = RGBA(2, 0, 0, -1).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, a)
}

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	var s Subpath
	s.MoveTo(v(0, 0))
	s.ArcTo(v(10, 0), v(20, 0), 5)
	assert.Contains(t, buf.String(), "no tangent arc")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
