// math/segment.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// Segment is a bounded piece of a Line. It embeds Line by value rather than
// holding a pointer back to one, so there is no cyclic reference between
// the two types; Line's point-side, distance, and bisector operations are
// available on a Segment through embedding, and the methods below shadow
// the ones that need to respect the segment's bounds.
type Segment struct {
	Line
}

func NewSegment(start, end Point) Segment {
	return Segment{Line: NewLine(start, end)}
}

func (s Segment) Start() Point { return s.P1 }
func (s Segment) End() Point   { return s.P2 }

func (s Segment) Length() float64 {
	return s.Start().Distance(s.End())
}

func (s Segment) Reverse() Segment {
	return NewSegment(s.End(), s.Start())
}

func (s Segment) box() (min, max Point) {
	return Point{minOf(s.Start().X, s.End().X), minOf(s.Start().Y, s.End().Y)},
		Point{maxOf(s.Start().X, s.End().X), maxOf(s.Start().Y, s.End().Y)}
}

func (s Segment) contains(p Point) bool {
	min, max := s.box()
	return inside(p.X, min.X, max.X) && inside(p.Y, min.Y, max.Y)
}

// PointAlong shadows Line.PointAlong: if walking distance t along the
// underlying line would leave the segment's bounding box, the result is
// clamped to the nearest point on the segment instead.
func (s Segment) PointAlong(t float64) Point {
	p := s.Line.PointAlong(t)
	if !s.contains(p) {
		p = s.NearestPoint(p)
	}
	return p
}

// NearestPoint shadows Line.NearestPoint, clamping the projection parameter
// to [0, 1] so the result always lies between Start and End.
func (s Segment) NearestPoint(point Point) Point {
	dir := Vector{s.B, -s.A}
	u := VectorFromPoints(s.Start(), point).Dot(dir) / dir.SquareLength()
	switch {
	case u < 0:
		return s.Start()
	case u > 1:
		return s.End()
	default:
		return s.Start().AddVector(dir.Scale(u))
	}
}

// IntersectLine returns the point where s and line cross, true only when
// that point lies within s's bounds.
func (s Segment) IntersectLine(line Line) (Point, bool) {
	d := det(line.A, line.B, s.A, s.B)
	if d == 0 {
		return Point{}, false
	}
	p := Point{
		X: -det(line.C, line.B, s.C, s.B) / d,
		Y: -det(line.A, line.C, s.A, s.C) / d,
	}
	return p, s.contains(p)
}

// Intersect returns the point where s and o cross, true only when that
// point lies within both segments' bounds.
func (s Segment) Intersect(o Segment) (Point, bool) {
	d := det(s.A, s.B, o.A, o.B)
	if d == 0 {
		return Point{}, false
	}
	p := Point{
		X: -det(s.C, s.B, o.C, o.B) / d,
		Y: -det(s.A, s.C, o.A, o.C) / d,
	}
	return p, s.contains(p) && o.contains(p)
}

func (s Segment) Equal(o Segment) bool {
	return s.Start().Equal(o.Start()) && s.End().Equal(o.End())
}

// SegmentBisector returns the line bisecting the angle between s1 and s2,
// or s1's own line when the two segments coincide.
func SegmentBisector(s1, s2 Segment) Line {
	if s1.Equal(s2) {
		return s1.Line
	}
	return Bisector(s1.Line, s2.Line)
}

// SegmentTanAngle returns the tangent of the angle between s1 and s2.
func SegmentTanAngle(s1, s2 Segment) float64 {
	return TanAngle(s1.Line, s2.Line)
}
