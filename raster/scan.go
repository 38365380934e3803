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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// scanner computes anti-aliased pixel coverage for polygons, using the
// nonzero winding rule. Buffers are kept between calls, so that a scanner
// which is reused does not allocate in steady state.
//
// Coverage is accumulated per pixel in two buffers. An edge piece which
// crosses pixel x with vertical extent dy (signed by edge direction)
// adds dy to cover[x] and dy·(1-f) to area[x], where f is the horizontal
// position of the piece inside the pixel. Integrating a row from left to
// right, the coverage of pixel x is the running sum of cover[0..x-1]
// plus area[x].
type scanner struct {
	// toDevice maps drawing coordinates to device pixels.
	toDevice matrix.Matrix

	// clip is the integer-aligned device rectangle which receives output.
	clip rect.Rect

	// smallArea is the largest bounding box area, in pixels, for which
	// the whole box is buffered at once. Larger polygons are scanned row
	// by row with an active edge list.
	smallArea int

	edges  []edge
	active []int
	cover  []float32
	area   []float32
	rowHit []bool

	bbox  rect.Rect
	first bool
}

func newScanner(clip rect.Rect) *scanner {
	return &scanner{
		toDevice:  matrix.Identity,
		clip:      clip,
		smallArea: smallPathThreshold,
	}
}

// fill computes the coverage of the polygons in p. Only MoveTo, LineTo and
// Close commands are expected; open subpaths are closed implicitly. For
// each row with non-zero coverage, emit is called with the row index, the
// x coordinate of the first pixel, and the coverage values. The slice is
// only valid during the call.
func (s *scanner) fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := s.collectEdges(p)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < s.smallArea {
		s.scanBuffered(xMin, xMax, yMin, yMax, emit)
	} else {
		s.scanActive(xMin, xMax, yMin, yMax, emit)
	}
}

// collectEdges builds the edge list for p and returns the device pixel
// range touched by the edges, clamped to the clip rectangle.
func (s *scanner) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	s.edges = s.edges[:0]
	s.first = true

	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				s.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			s.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			k += 2
		case path.CmdCubeTo:
			k += 3
		case path.CmdClose:
			if current != start {
				s.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		s.addEdge(current, start)
	}

	if len(s.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(s.bbox.LLx)), int(s.clip.LLx))
	xMax = min(int(math.Floor(s.bbox.URx))+1, int(s.clip.URx))
	yMin = max(int(math.Floor(s.bbox.LLy)), int(s.clip.LLy))
	yMax = min(int(math.Floor(s.bbox.URy))+1, int(s.clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (s *scanner) addEdge(a, b vec.Vec2) {
	m := s.toDevice
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	s.edges = append(s.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	box := rect.Rect{LLx: min(x0, x1), LLy: min(y0, y1), URx: max(x0, x1), URy: max(y0, y1)}
	if s.first {
		s.bbox = box
		s.first = false
		return
	}
	s.bbox.LLx = min(s.bbox.LLx, box.LLx)
	s.bbox.LLy = min(s.bbox.LLy, box.LLy)
	s.bbox.URx = max(s.bbox.URx, box.URx)
	s.bbox.URy = max(s.bbox.URy, box.URy)
}

// accumulate adds the part of e inside row y to the row buffers, which
// cover the pixel columns xMin..xMax-1. Contributions left of xMin are
// folded into the first column.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	switch {
	case right < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case left >= xMax:
		return
	case left == right:
		deposit(e, yTop, yBot, sign, left, cover, area, xMin, xMax)
		return
	}

	// the edge crosses several columns: split it at the column boundaries
	dydx := 1 / e.dxdy
	for x := left; x <= right; x++ {
		ya := e.y0 + dydx*(float64(x)-e.x0)
		yb := e.y0 + dydx*(float64(x+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		deposit(e, lo, hi, sign, x, cover, area, xMin, xMax)
	}
}

// deposit adds the piece of e between lo and hi, which lies inside pixel
// column x, to the row buffers.
func deposit(e *edge, lo, hi float64, sign float32, x int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(hi-lo)
	if x < xMin {
		cover[0] += c
		area[0] += c
		return
	}
	if x >= xMax {
		return
	}
	xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
	f := xMid - float64(x)
	i := x - xMin
	cover[i] += c
	area[i] += c * float32(1-f)
}

// integrate turns the accumulated buffers of one row into coverage values,
// in place in cover.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the offset of that part. The result is nil if all
// values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// scanBuffered accumulates all edges into a buffer covering the whole
// bounding box, then integrates it row by row.
func (s *scanner) scanBuffered(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	h := yMax - yMin
	n := w * h
	s.cover = slices.Grow(s.cover[:0], n)[:n]
	s.area = slices.Grow(s.area[:0], n)[:n]
	s.rowHit = slices.Grow(s.rowHit[:0], h)[:h]
	clear(s.cover)
	clear(s.area)
	clear(s.rowHit)

	for i := range s.edges {
		e := &s.edges[i]
		y0 := max(int(math.Floor(e.yMin())), yMin)
		y1 := min(int(math.Floor(e.yMax()))+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			off := row * w
			accumulate(e, y, s.cover[off:off+w], s.area[off:off+w], xMin, xMax)
			s.rowHit[row] = true
		}
	}

	for row := range h {
		if !s.rowHit[row] {
			continue
		}
		off := row * w
		cov := s.cover[off : off+w]
		integrate(cov, s.area[off:off+w])
		if trimmed, k := trimZeros(cov); trimmed != nil {
			emit(yMin+row, xMin+k, trimmed)
		}
	}
}

// scanActive processes one row at a time, keeping only the edges which
// intersect the current row.
func (s *scanner) scanActive(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	s.cover = slices.Grow(s.cover[:0], w)[:w]
	s.area = slices.Grow(s.area[:0], w)[:w]

	slices.SortFunc(s.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	s.active = s.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(s.edges) && s.edges[next].yMin() < bot {
			s.active = append(s.active, next)
			next++
		}
		if len(s.active) == 0 {
			continue
		}

		clear(s.cover)
		clear(s.area)
		hit := false
		for i := 0; i < len(s.active); {
			e := &s.edges[s.active[i]]
			if e.yMax() <= top {
				last := len(s.active) - 1
				s.active[i] = s.active[last]
				s.active = s.active[:last]
				continue
			}
			accumulate(e, y, s.cover, s.area, xMin, xMax)
			hit = true
			i++
		}
		if !hit {
			continue
		}

		integrate(s.cover, s.area)
		if trimmed, k := trimZeros(s.cover); trimmed != nil {
			emit(y, xMin+k, trimmed)
		}
	}
}

// Numerical tolerances and tuning parameters for the scanner.
const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default for scanner.smallArea.
	smallPathThreshold = 65536
)
