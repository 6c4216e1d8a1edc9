// polygon/polygon_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package polygon

import (
	"testing"

	geom "github.com/pabloteleco22/flagsearch-go/math"
)

func square() Polygon {
	return New([]geom.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	})
}

func TestPolygonAreaSquare(t *testing.T) {
	if got := square().Area(); got != 100 {
		t.Errorf("Area() = %v, want 100", got)
	}
}

func TestPolygonCentroidSquare(t *testing.T) {
	c, err := square().Centroid()
	if err != nil {
		t.Fatalf("Centroid() error: %v", err)
	}
	want := geom.Point{X: 5, Y: 5}
	if !c.Equal(want) {
		t.Errorf("Centroid() = %v, want %v", c, want)
	}
}

func TestPolygonIsClockwise(t *testing.T) {
	cw, err := square().IsClockwise()
	if err != nil {
		t.Fatalf("IsClockwise() error: %v", err)
	}
	if cw {
		t.Errorf("vertex order (0,0)->(10,0)->(10,10)->(0,10) is counter-clockwise, got clockwise")
	}
}

func TestPolygonIsPointInside(t *testing.T) {
	sq := square()
	inside, err := sq.IsPointInside(geom.Point{X: 5, Y: 5})
	if err != nil {
		t.Fatalf("IsPointInside() error: %v", err)
	}
	if !inside {
		t.Errorf("(5,5) should be inside the square")
	}

	outside, err := sq.IsPointInside(geom.Point{X: 15, Y: 5})
	if err != nil {
		t.Fatalf("IsPointInside() error: %v", err)
	}
	if outside {
		t.Errorf("(15,5) should be outside the square")
	}
}

func TestPolygonFindNearestPoint(t *testing.T) {
	sq := square()
	nearest, err := sq.FindNearestPoint(geom.Point{X: 5, Y: -3})
	if err != nil {
		t.Fatalf("FindNearestPoint() error: %v", err)
	}
	want := geom.Point{X: 5, Y: 0}
	if !nearest.Equal(want) {
		t.Errorf("FindNearestPoint() = %v, want %v", nearest, want)
	}
}

func TestPolygonSplitEqualHalves(t *testing.T) {
	sq := square()
	total := sq.Area()

	p1, p2, err := sq.Split(total / 2)
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	a1, a2 := p1.Area(), p2.Area()
	if geom.Abs(a1-total/2) > 1e-3 {
		t.Errorf("piece 1 area = %v, want ~%v", a1, total/2)
	}
	if geom.Abs(a1+a2-total) > 1e-3 {
		t.Errorf("piece areas sum to %v, want %v", a1+a2, total)
	}
}

func TestPolygonSplitNotEnoughVertices(t *testing.T) {
	p := New([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if _, _, err := p.Split(1); err == nil {
		t.Errorf("Split() on a 2-vertex polygon should fail")
	}
}
