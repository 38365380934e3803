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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// lineSegment is one segment of a polyline, with its unit tangent T and
// the unit normal N, rotated 90° counter-clockwise from T.
type lineSegment struct {
	A, B vec.Vec2
	T, N vec.Vec2
}

// outliner converts polylines into polygons which, filled with the
// nonzero rule, cover the stroked line. Each segment becomes one
// rectangle with butt ends; the gaps on the outer side of corners are
// filled by separate join polygons. All polygons are emitted with the
// same orientation, so that overlaps do not cancel.
type outliner struct {
	Width      float64
	Join       graphics.LineJoinStyle
	MiterLimit float64

	segs []lineSegment
	poly []vec.Vec2
}

// addPolyline appends the outline of the polyline through pts to dst. A
// polyline whose last point equals its first point is treated as closed
// and gets a join at the first point as well.
func (o *outliner) addPolyline(dst *path.Data, pts []vec.Vec2) {
	o.segs = o.segs[:0]
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Length()
		if l < zeroLengthThreshold {
			continue
		}
		t := d.Mul(1 / l)
		o.segs = append(o.segs, lineSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
	}
	if len(o.segs) == 0 {
		return
	}

	d := o.Width / 2
	for i := range o.segs {
		s := &o.segs[i]
		o.addPolygon(dst,
			s.A.Add(s.N.Mul(d)),
			s.B.Add(s.N.Mul(d)),
			s.B.Sub(s.N.Mul(d)),
			s.A.Sub(s.N.Mul(d)))
		if i > 0 {
			o.addJoin(dst, s.A, o.segs[i-1].T, s.T, d)
		}
	}

	closed := len(pts) > 2 && pts[0] == pts[len(pts)-1]
	if closed && len(o.segs) > 1 {
		last := &o.segs[len(o.segs)-1]
		o.addJoin(dst, o.segs[0].A, last.T, o.segs[0].T, d)
	}
}

// addJoin fills the wedge on the outer side of the corner P, where the
// direction changes from T1 to T2.
func (o *outliner) addJoin(dst *path.Data, P, T1, T2 vec.Vec2, d float64) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	if math.Abs(sinTheta) < collinearityThreshold || cosTheta < cuspCosineThreshold {
		return
	}

	// The outer side is to the right of a left turn and vice versa.
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(side)
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(side)
	p1 := P.Add(N1.Mul(d))
	p2 := P.Add(N2.Mul(d))

	switch o.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2),
		// where φ is the angle between the two segments.
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		if sinHalf > 0 && 1/sinHalf <= o.MiterLimit+miterEpsilon {
			bisector := N1.Add(N2)
			if l := bisector.Length(); l > zeroLengthThreshold {
				tip := P.Add(bisector.Mul(d / (sinHalf * l)))
				o.addPolygon(dst, P, p1, tip, p2)
				return
			}
		}
		o.addPolygon(dst, P, p1, p2)

	case graphics.LineJoinRound:
		// the normals turn by the same angle as the tangents
		angle := math.Atan2(sinTheta, cosTheta)
		n := max(1, int(math.Ceil(math.Abs(angle)*d/roundJoinStep)))
		o.poly = append(o.poly[:0], P, p1)
		for i := 1; i < n; i++ {
			a := angle * float64(i) / float64(n)
			sin, cos := math.Sincos(a)
			r := vec.Vec2{X: N1.X*cos - N1.Y*sin, Y: N1.X*sin + N1.Y*cos}
			o.poly = append(o.poly, P.Add(r.Mul(d)))
		}
		o.poly = append(o.poly, p2)
		o.addPolygon(dst, o.poly...)

	default:
		o.addPolygon(dst, P, p1, p2)
	}
}

// addPolygon appends a closed polygon with positive orientation.
func (o *outliner) addPolygon(dst *path.Data, pts ...vec.Vec2) {
	area2 := 0.0
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area2 += a.X*b.Y - a.Y*b.X
	}
	if area2 >= 0 {
		dst.MoveTo(pts[0])
		for _, p := range pts[1:] {
			dst.LineTo(p)
		}
	} else {
		dst.MoveTo(pts[len(pts)-1])
		for i := len(pts) - 2; i >= 0; i-- {
			dst.LineTo(pts[i])
		}
	}
	dst.Close()
}

// Tolerances for outline construction.
const (
	// zeroLengthThreshold is the minimum length of a polyline segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the smallest |sin| of a corner angle which
	// gets a join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects polylines which double back on
	// themselves. No join is drawn at such corners.
	cuspCosineThreshold = -0.9999

	miterEpsilon = 1e-10

	// roundJoinStep is the arc length between vertices of round joins.
	roundJoinStep = 0.5
)
