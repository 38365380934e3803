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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Surface is the drawing surface for one frame. It owns the current path
// and the active stroke and fill styles, and hands finished geometry to
// a [Backend].
//
// Shape commands add to the current path; Stroke and Fill draw the whole
// path with the style that is active at the time of the call.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	// StrokeStyle is used by Stroke.
	StrokeStyle StrokeStyle

	// FillStyle is used by Fill and Clear.
	FillStyle FillStyle

	b      Backend
	path   Path
	failed bool // Begin returned an error
	closed bool
}

// NewSurface starts a frame of the given size on the backend, with a
// viewport covering the whole frame. The caller must call Close when done
// drawing; [Draw] does this automatically.
//
// If the backend fails to start the frame, the error is returned together
// with a surface on which all drawing is ignored. Close must still be
// called.
func NewSurface(b Backend, width, height int) (*Surface, error) {
	s := &Surface{
		StrokeStyle: DefaultStrokeStyle(),
		FillStyle:   DefaultFillStyle(),
		b:           b,
	}
	if err := b.Begin(width, height); err != nil {
		s.failed = true
		return s, fmt.Errorf("begin frame: %w", err)
	}
	b.Viewport(0, 0, width, height)
	return s, nil
}

// Draw runs fn on a new surface and closes the surface afterwards, on
// every return path. The frame is flushed and ended exactly once, even if
// fn returns an error or panics.
func Draw(b Backend, width, height int, fn func(*Surface) error) (err error) {
	s, err := NewSurface(b, width, height)
	defer func() {
		cerr := s.Close()
		if err == nil {
			err = cerr
		} else if cerr != nil {
			Logger().Warn("closing surface after error", "error", cerr)
			err = errors.Join(err, cerr)
		}
	}()
	if err != nil {
		return err
	}
	return fn(s)
}

// Close flushes all drawing to the backend and ends the frame. Calls
// after the first one do nothing and return nil.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.path.Reset()

	var errs []error
	if !s.failed {
		if err := s.b.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("flush frame: %w", err))
		}
	}
	if err := s.b.End(); err != nil {
		errs = append(errs, fmt.Errorf("end frame: %w", err))
	}
	return errors.Join(errs...)
}

func (s *Surface) active() bool {
	return !s.closed && !s.failed
}

// Clear fills the whole viewport with the fill color. The current path is
// not affected.
func (s *Surface) Clear() {
	if !s.active() {
		return
	}
	s.b.SetColor(s.FillStyle.Color)
	s.b.Clear()
}

// BeginPath discards the current path and starts a new, empty one.
func (s *Surface) BeginPath() {
	s.path.Reset()
}

// Path returns the current path.
func (s *Surface) Path() *Path {
	return &s.path
}

// Line adds a straight line from p1 to p2 to the current path.
func (s *Surface) Line(p1, p2 vec.Vec2) {
	s.path.Append(LineShape(p1, p2))
}

// Rectangle adds the rectangle spanned by the corners p1 and p2.
func (s *Surface) Rectangle(p1, p2 vec.Vec2) {
	s.path.Append(RectShape(p1, p2))
}

// RoundRect adds the rectangle spanned by p1 and p2 with elliptic corners
// of radii rx and ry.
func (s *Surface) RoundRect(p1, p2 vec.Vec2, rx, ry float64) {
	s.path.Append(RoundRectShape(p1, p2, rx, ry))
}

// Ellipse adds the ellipse inscribed in the box spanned by p1 and p2.
func (s *Surface) Ellipse(p1, p2 vec.Vec2) {
	s.path.Append(EllipseShape(p1, p2, 0, 2*math.Pi))
}

// EllipseArc adds the sector of the ellipse inscribed in the box spanned
// by p1 and p2, between the parameter angles start and end.
func (s *Surface) EllipseArc(p1, p2 vec.Vec2, start, end float64) {
	s.path.Append(EllipseShape(p1, p2, start, end))
}

// MoveTo starts a new free-form subpath at p.
func (s *Surface) MoveTo(p vec.Vec2) {
	sub := &Subpath{}
	sub.MoveTo(p)
	s.path.Append(SubpathShape(sub))
}

// LineTo extends the current subpath by a straight segment to p. If there
// is no open subpath, a new one is started at p.
func (s *Surface) LineTo(p vec.Vec2) {
	sub, created := s.currentSubpath(p)
	if created {
		return
	}
	sub.LineTo(p)
}

// ArcTo rounds the corner at p1, between the current point and p2, with a
// circular arc of the given radius. If there is no open subpath, a new one
// is started at p1.
func (s *Surface) ArcTo(p1, p2 vec.Vec2, radius float64) {
	sub, created := s.currentSubpath(p1)
	if created {
		return
	}
	sub.ArcTo(p1, p2, radius)
}

// ClosePath closes the current subpath. It does nothing if there is no
// open subpath.
func (s *Surface) ClosePath() {
	if sub := s.path.LastSubpath(); sub != nil {
		sub.ClosePath()
	}
}

// currentSubpath returns the subpath at the end of the current path if it
// is still open. Otherwise a new subpath anchored at anchor is appended
// and returned, and created is true.
func (s *Surface) currentSubpath(anchor vec.Vec2) (sub *Subpath, created bool) {
	if sub := s.path.LastSubpath(); sub != nil && sub.IsOpen() {
		return sub, false
	}
	s.MoveTo(anchor)
	return s.path.LastSubpath(), true
}

// Stroke draws the outline of the current path with the stroke style.
func (s *Surface) Stroke() {
	if !s.active() {
		return
	}
	s.path.Stroke(s.b, s.StrokeStyle)
}

// Fill draws the interior of the current path with the fill style.
func (s *Surface) Fill() {
	if !s.active() {
		return
	}
	s.path.Fill(s.b, s.FillStyle)
}
