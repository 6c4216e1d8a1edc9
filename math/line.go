// math/line.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// PointSide classifies a point's position relative to a directed line.
type PointSide int

const (
	Below PointSide = iota - 1
	On
	Above
)

// Line is an infinite line in standard form a*x + b*y + c = 0. It also
// retains two points p1, p2 on the line so that directional queries
// (PointAlong, and the line's orientation for PointSide) are well defined;
// for a line built directly from (a, b, c) these are synthesized.
type Line struct {
	A, B, C float64
	P1, P2  Point
}

// NewLine builds a line through p1 and p2. p1, p2 are retained verbatim as
// the line's directional reference points.
func NewLine(p1, p2 Point) Line {
	return Line{
		A:  p1.Y - p2.Y,
		B:  p2.X - p1.X,
		C:  p1.X*p2.Y - p2.X*p1.Y,
		P1: p1,
		P2: p2,
	}
}

// NewLineFromCoefficients builds a line from its standard-form coefficients,
// synthesizing two reference points on it at coordinate -1000 and +1000
// (x for a non-vertical line, y for a vertical one).
func NewLineFromCoefficients(a, b, c float64) Line {
	const span = 1000.0
	var p1, p2 Point
	switch {
	case Abs(a) <= Epsilon && Abs(b) >= Epsilon:
		p1 = Point{-span, -(c / b)}
		p2 = Point{span, p1.Y}
	case Abs(b) <= Epsilon && Abs(a) >= Epsilon:
		p1 = Point{-(c / a), -span}
		p2 = Point{p1.X, span}
	default:
		p1 = Point{-span, -((a*(-span) + c) / b)}
		p2 = Point{span, -((a*span + c) / b)}
	}
	return Line{A: a, B: b, C: c, P1: p1, P2: p2}
}

// NewDirectedLine builds a line through p in direction v.
func NewDirectedLine(p Point, v Vector) Line {
	return NewLine(p, p.AddVector(v))
}

// SquareLength is the squared distance between the line's two reference
// points; meaningful mainly when the line was built from two points.
func (l Line) SquareLength() float64 {
	return l.P1.SquareDistance(l.P2)
}

// PointAlong returns the point reached by walking distance t from P1 toward
// P2 along the line's direction.
func (l Line) PointAlong(t float64) Point {
	dir := VectorFromPoints(l.P1, l.P2).Unit()
	return l.P1.AddVector(dir.Scale(t))
}

// Distance returns the signed perpendicular distance from point to the line.
func (l Line) Distance(point Point) float64 {
	n := l.A*point.X + l.B*point.Y + l.C
	m := Sqrt(l.A*l.A + l.B*l.B)
	return n / m
}

// NearestPoint projects point onto the line.
func (l Line) NearestPoint(point Point) Point {
	dir := Vector{l.B, -l.A}
	u := VectorFromPoints(l.P1, point).Dot(dir) / dir.SquareLength()
	return l.P1.AddVector(dir.Scale(u))
}

// PointSideOf reports whether point lies above, on, or below the line,
// relative to its direction from P1.
func (l Line) PointSideOf(point Point) PointSide {
	s := l.A*(point.X-l.P1.X) + l.B*(point.Y-l.P1.Y)
	switch {
	case s > 0:
		return Above
	case s < 0:
		return Below
	default:
		return On
	}
}

// SameLine reports whether l and o describe the same infinite line, by
// checking that each of o's reference points lies on l.
func SameLine(l, o Line) bool {
	return l.PointSideOf(o.P1) == On && l.PointSideOf(o.P2) == On
}

// CrossLine returns the point where l and o intersect, and false when they
// are parallel (determinant is zero).
func (l Line) CrossLine(o Line) (Point, bool) {
	d := det(l.A, l.B, o.A, o.B)
	if d == 0 {
		return Point{}, false
	}
	return Point{
		X: -det(l.C, l.B, o.C, o.B) / d,
		Y: -det(l.A, l.C, o.A, o.C) / d,
	}, true
}

// Bisector returns the line bisecting the angle between l and o.
func Bisector(l, o Line) Line {
	if SameLine(l, o) {
		return l
	}
	q1 := Sqrt(l.A*l.A + l.B*l.B)
	q2 := Sqrt(o.A*o.A + o.B*o.B)
	return NewLineFromCoefficients(l.A/q1-o.A/q2, l.B/q1-o.B/q2, l.C/q1-o.C/q2)
}

// TanAngle returns the tangent of the angle between l and o.
func TanAngle(l, o Line) float64 {
	return (l.A*o.B - o.A*l.B) / (l.A*o.A + l.B*o.B)
}

func det(a, b, c, d float64) float64 {
	return a*d - b*c
}

func minOf(a, b float64) float64 {
	if a > b {
		return b
	}
	return a
}

func maxOf(a, b float64) float64 {
	if a < b {
		return b
	}
	return a
}

// inside reports whether v lies within [min, max], widened by Epsilon on
// both ends to absorb floating-point noise at the boundary.
func inside(v, lo, hi float64) bool {
	return lo <= v+Epsilon && v <= hi+Epsilon
}
