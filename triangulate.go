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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Triangulate splits a simple polygon into triangles by ear clipping.
//
// The polygon is given by its vertices in order; an explicit closing
// vertex equal to the first one is allowed. Either orientation is accepted.
// All returned triangles have non-negative signed area.
//
// The result is empty if the polygon has fewer than three vertices, has
// zero area, or if no ear can be found at some stage. The last case
// happens for self-intersecting input or after accumulated rounding
// errors; callers should treat it as "nothing to fill".
//
// The running time is O(n²) in the number of vertices.
func Triangulate(poly []vec.Vec2) []Triangle {
	return appendTriangulation(nil, poly)
}

func appendTriangulation(dst []Triangle, poly []vec.Vec2) []Triangle {
	n := len(poly)
	if n > 1 && poly[0] == poly[n-1] {
		n--
	}
	if n < 3 {
		return dst
	}
	poly = poly[:n]

	// orientation of the polygon as a whole
	area2 := 0.0
	for i := range n {
		area2 += cross2(poly[i], poly[(i+1)%n])
	}
	if math.Abs(area2) < areaEpsilon {
		return dst
	}
	sign := 1.0
	if area2 < 0 {
		sign = -1
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	start := len(dst)
	for len(idx) > 3 {
		m := len(idx)
		found := false
		for i := range m {
			ia, ib, ic := idx[(i+m-1)%m], idx[i], idx[(i+1)%m]
			a, b, c := poly[ia], poly[ib], poly[ic]
			turn := sign * Cross(a, b, c)

			if math.Abs(turn) <= areaEpsilon {
				// b is a collinear or duplicate vertex and spans no
				// area: drop it without emitting a triangle
				idx = append(idx[:i], idx[i+1:]...)
				found = true
				break
			}
			if turn < 0 {
				continue // reflex vertex
			}
			if containsOtherVertex(poly, idx, ia, ib, ic) {
				continue
			}

			dst = append(dst, Triangle{A: a, B: b, C: c}.oriented())
			idx = append(idx[:i], idx[i+1:]...)
			found = true
			break
		}
		if !found {
			Logger().Debug("triangulation failed: no ear found",
				"vertices", n, "remaining", len(idx))
			return dst[:start]
		}
	}

	t := Triangle{A: poly[idx[0]], B: poly[idx[1]], C: poly[idx[2]]}
	if t.Area() > areaEpsilon/2 {
		dst = append(dst, t.oriented())
	}
	return dst
}

// containsOtherVertex reports whether any remaining polygon vertex other
// than the ear's own corners lies inside or on the triangle a, b, c.
// Vertices at the same position as a corner are ignored.
func containsOtherVertex(poly []vec.Vec2, idx []int, ia, ib, ic int) bool {
	a, b, c := poly[ia], poly[ib], poly[ic]
	for _, j := range idx {
		if j == ia || j == ib || j == ic {
			continue
		}
		p := poly[j]
		if p == a || p == b || p == c {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return true
		}
	}
	return false
}

// pointInTriangle reports whether p lies inside or on the boundary of the
// triangle a, b, c, for either orientation.
func pointInTriangle(p, a, b, c vec.Vec2) bool {
	d1 := Cross(a, b, p)
	d2 := Cross(b, c, p)
	d3 := Cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// areaEpsilon is the smallest doubled area treated as non-zero by the
// triangulator.
const areaEpsilon = 1e-12
