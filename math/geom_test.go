// math/geom_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "testing"

func TestPointAbsAndNegation(t *testing.T) {
	p := Point{-3, 4}
	if got := p.Abs(); got != (Point{3, 4}) {
		t.Errorf("Abs() = %v, want (3, 4)", got)
	}
	if got := p.Neg().Add(p); !got.Equal(Point{0, 0}) {
		t.Errorf("(-p)+p = %v, want (0, 0)", got)
	}
}

func TestVectorUnitLength(t *testing.T) {
	v := Vector{3, 4}
	if l := v.Unit().Length(); !NearlyEqual(l, 1) {
		t.Errorf("unit length = %v, want 1", l)
	}
	if got := (Vector{}).Unit(); got != (Vector{}) {
		t.Errorf("zero vector unit = %v, want zero", got)
	}
}

func TestVectorNormal(t *testing.T) {
	v := Vector{1, 0}
	got := v.Normal()
	want := Vector{0, -1}
	if !got.Equal(want) {
		t.Errorf("Normal() = %v, want %v", got, want)
	}
}

func TestSegmentReverseRoundTrip(t *testing.T) {
	s := NewSegment(Point{0, 0}, Point{1, 1})
	rr := s.Reverse().Reverse()
	if !rr.Equal(s) {
		t.Errorf("reverse().reverse() = %v, want %v", rr, s)
	}
}

func TestLineCrossLineParallelFails(t *testing.T) {
	l1 := NewLine(Point{0, 0}, Point{1, 0})
	l2 := NewLine(Point{0, 1}, Point{1, 1})
	if _, ok := l1.CrossLine(l2); ok {
		t.Errorf("parallel lines should not cross")
	}
}

func TestLineCrossLineIntersection(t *testing.T) {
	l1 := NewLine(Point{0, 0}, Point{4, 4})
	l2 := NewLine(Point{0, 4}, Point{6, 0})
	p, ok := l1.CrossLine(l2)
	if !ok {
		t.Fatalf("expected intersection")
	}
	want := Point{2.4, 2.4}
	if !p.Equal(want) {
		t.Errorf("intersection = %v, want %v", p, want)
	}

	l3 := NewLine(Point{0, 4}, Point{-4, 0})
	if _, ok := l1.CrossLine(l3); ok {
		t.Errorf("l1 and l3 are parallel, should not intersect")
	}
}
