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

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 vec.Vec2) float64 {
	return p2.Sub(p1).Length()
}

// Cross returns twice the signed area of the triangle a, b, c.
// The result is positive if c lies to the left of the directed line a→b
// (counter-clockwise in a y-up coordinate system), negative if it lies to
// the right, and zero if the three points are collinear.
func Cross(a, b, c vec.Vec2) float64 {
	return cross2(b.Sub(a), c.Sub(a))
}

// cross2 is the z component of the cross product of two vectors.
func cross2(u, v vec.Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

// AngleBetween returns the unsigned angle, in radians, at p2 between the
// segments p2→p1 and p2→p3. The result is NaN if either segment has zero
// length.
func AngleBetween(p1, p2, p3 vec.Vec2) float64 {
	u := p1.Sub(p2)
	v := p3.Sub(p2)
	lu := u.Length()
	lv := v.Length()
	if lu == 0 || lv == 0 {
		return math.NaN()
	}
	c := u.Dot(v) / (lu * lv)
	return math.Acos(max(-1, min(1, c)))
}

// Ellipse describes an axis-aligned ellipse by its center and radii.
type Ellipse struct {
	Center vec.Vec2
	RX, RY float64
}

// EllipseInBox returns the ellipse inscribed in the box spanned by the two
// corners. Radii are signed: they are negative when corner2 lies left of or
// above corner1, which mirrors the sampling direction.
func EllipseInBox(corner1, corner2 vec.Vec2) Ellipse {
	rx := (corner2.X - corner1.X) / 2
	ry := (corner2.Y - corner1.Y) / 2
	return Ellipse{
		Center: vec.Vec2{X: corner1.X + rx, Y: corner1.Y + ry},
		RX:     rx,
		RY:     ry,
	}
}

// At returns the point at parameter angle alpha.
func (e Ellipse) At(alpha float64) vec.Vec2 {
	return vec.Vec2{
		X: e.Center.X + math.Cos(alpha)*e.RX,
		Y: e.Center.Y + math.Sin(alpha)*e.RY,
	}
}

// Step returns the angular step used to sample the ellipse.
// The step is chosen so that consecutive samples are roughly one unit
// apart, using the quadratic-mean approximation 2π·sqrt((rx²+ry²)/2) for
// the perimeter. The result is +Inf for an ellipse of zero size.
func (e Ellipse) Step() float64 {
	perimeter := 2 * math.Pi * math.Sqrt((e.RX*e.RX+e.RY*e.RY)/2)
	return 2 * math.Pi / perimeter
}

// EllipsePoints samples the ellipse inscribed in the box spanned by corner1
// and corner2, walking the parameter angle from angleStart to angleEnd.
//
// The number of samples grows with the size of the ellipse, so that the
// chord length stays approximately constant, up to maxEllipseSegments
// segments; beyond that the chords get longer. Sweeps of more than one
// full turn are reduced to a full turn starting at angleStart. The last
// point is always the exact point at the (reduced) end angle. At least one
// point is returned: if the box has zero size, or if angleEnd < angleStart,
// the result is the single point at angleEnd.
func EllipsePoints(corner1, corner2 vec.Vec2, angleStart, angleEnd float64) []vec.Vec2 {
	return appendEllipsePoints(nil, EllipseInBox(corner1, corner2), angleStart, angleEnd)
}

func appendEllipsePoints(dst []vec.Vec2, e Ellipse, angleStart, angleEnd float64) []vec.Vec2 {
	step := e.Step()
	sweep := angleEnd - angleStart
	if math.IsInf(step, 0) || !(step > 0) || !(sweep > 0) {
		return append(dst, e.At(angleEnd))
	}
	if sweep > 2*math.Pi+angleEpsilon {
		Logger().Debug("ellipse sweep reduced to a full turn", "sweep", sweep)
		sweep = 2 * math.Pi
		angleEnd = angleStart + sweep
	}

	// Multiply rather than accumulate, so that rounding errors do not
	// drift over long sweeps.
	k := math.Floor(sweep / step)
	if k > maxEllipseSegments {
		k = maxEllipseSegments
		step = sweep / k
	}
	n := int(k)
	for i := 0; i <= n; i++ {
		dst = append(dst, e.At(angleStart+float64(i)*step))
	}

	// close the gap between the last regular sample and angleEnd
	if angleEnd-(angleStart+float64(n)*step) > angleEpsilon {
		dst = append(dst, e.At(angleEnd))
	}
	return dst
}

// TangentArc computes the circular fillet of the given radius at the corner
// p1 of the polyline p0→p1→p2. The arc is tangent to both segments; the
// returned points start at the tangent point on p0→p1 and end at the
// tangent point on p1→p2, spaced roughly two units apart along the arc.
//
// The function returns nil if no well-defined arc exists: when either
// segment has zero length, when the radius is not positive, or when the
// segments are (nearly) collinear, in which case the tangent points would
// lie at or beyond infinity.
func TangentArc(p0, p1, p2 vec.Vec2, radius float64) []vec.Vec2 {
	return appendTangentArc(nil, p0, p1, p2, radius)
}

func appendTangentArc(dst []vec.Vec2, p0, p1, p2 vec.Vec2, radius float64) []vec.Vec2 {
	if !(radius > zeroLengthThreshold) || math.IsInf(radius, 0) {
		return dst
	}

	// unit vectors pointing from the corner back along the incoming
	// segment (d0) and forward along the outgoing segment (d1)
	v0 := p0.Sub(p1)
	v1 := p2.Sub(p1)
	l0 := v0.Length()
	l1 := v1.Length()
	if l0 < zeroLengthThreshold || l1 < zeroLengthThreshold {
		return dst
	}
	d0 := v0.Mul(1 / l0)
	d1 := v1.Mul(1 / l1)

	// Both the straight-through case and the U-turn have sin = 0.
	sinTheta := cross2(d0, d1)
	if math.Abs(sinTheta) < collinearThreshold {
		return dst
	}

	// theta is the interior angle at the corner
	theta := math.Acos(max(-1, min(1, d0.Dot(d1))))
	half := theta / 2
	dist := radius / math.Tan(half)
	if dist > maxTangentRatio*max(l0, l1) {
		return dst
	}

	// The center lies on the bisector of the corner.
	bisector := d0.Add(d1)
	bisector = bisector.Mul(1 / bisector.Length())
	center := p1.Add(bisector.Mul(radius / math.Sin(half)))

	t0 := p1.Add(d0.Mul(dist))
	t1 := p1.Add(d1.Mul(dist))
	a0 := math.Atan2(t0.Y-center.Y, t0.X-center.X)

	// The direction of travel follows the turn of the polyline: a left
	// turn (positive cross product of the incoming and outgoing
	// directions) sweeps with increasing angle.
	sweep := math.Pi - theta
	if cross2(d0.Mul(-1), d1) < 0 {
		sweep = -sweep
	}

	n := int(math.Ceil(radius * math.Abs(sweep) / arcStepLength))
	n = max(n, minArcSegments)
	n = min(n, maxArcSegments)

	dst = append(dst, t0)
	for i := 1; i < n; i++ {
		a := a0 + sweep*float64(i)/float64(n)
		dst = append(dst, vec.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return append(dst, t1)
}

// Quad holds the four corners of a thick line segment, in triangle strip
// order: the triangles (Q[0], Q[1], Q[2]) and (Q[1], Q[2], Q[3]) cover the
// rectangle without overlap.
type Quad [4]vec.Vec2

// ThickLine returns the rectangle of the given width centered on the
// segment start→end. The first strip triangle has positive orientation.
// The second return value is false, and the quad must be ignored, if the
// segment has zero length or the width is not positive.
func ThickLine(start, end vec.Vec2, width float64) (Quad, bool) {
	d := end.Sub(start)
	length := d.Length()
	if length < zeroLengthThreshold || !(width > 0) {
		return Quad{}, false
	}

	// offset is the direction rotated by 90°, scaled to half the width
	offset := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width / (2 * length))

	// corners in drawing order: 0=start-offset, 1=start+offset,
	// 2=end+offset, 3=end-offset; a strip needs the order 0, 1, 3, 2
	q := Quad{
		start.Sub(offset),
		start.Add(offset),
		end.Sub(offset),
		end.Add(offset),
	}
	if Cross(q[0], q[1], q[2]) < 0 {
		q[0], q[1] = q[1], q[0]
		q[2], q[3] = q[3], q[2]
	}
	return q, true
}

// Area returns the area covered by the quad.
func (q Quad) Area() float64 {
	return math.Abs(Cross(q[0], q[1], q[2]))/2 + math.Abs(Cross(q[1], q[2], q[3]))/2
}

// Numerical tolerances for the geometry kernel.
const (
	// zeroLengthThreshold is the minimum length of a segment. Shorter
	// segments have no usable direction.
	zeroLengthThreshold = 1e-10

	// collinearThreshold is the minimum |sin| of the corner angle for
	// which a tangent arc is constructed.
	collinearThreshold = 1e-6

	// maxTangentRatio bounds the distance from the corner to the tangent
	// points, relative to the longer adjacent segment. Larger ratios only
	// occur for corners which almost reverse direction.
	maxTangentRatio = 1e3

	// angleEpsilon is the smallest angular gap worth closing with an
	// extra ellipse sample.
	angleEpsilon = 1e-9
)

// Sampling resolution for tangent arcs.
const (
	arcStepLength  = 2.0 // target arc length between samples
	minArcSegments = 4
	maxArcSegments = 1024
)

// maxEllipseSegments is the largest number of segments used for one
// ellipse sweep.
const maxEllipseSegments = 1 << 16
