// partition/partition_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package partition

import (
	"testing"

	geom "github.com/pabloteleco22/flagsearch-go/math"
	"github.com/pabloteleco22/flagsearch-go/polygon"
)

func unitSquare() polygon.Polygon {
	return polygon.New([]geom.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	})
}

func TestPartitionerSingleSystemReturnsWholeArea(t *testing.T) {
	p := New(unitSquare())
	got, err := p.PolygonOfInterest(1, 1)
	if err != nil {
		t.Fatalf("PolygonOfInterest() error: %v", err)
	}
	if geom.Abs(got.Area()-1) > 1e-6 {
		t.Errorf("area = %v, want 1", got.Area())
	}
}

func TestPartitionerFourWaySplitEqualShares(t *testing.T) {
	big := polygon.New([]geom.Point{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 100, Y: 20},
		{X: 0, Y: 20},
	})
	p := New(big)

	total := 0.0
	for k := uint(1); k <= 4; k++ {
		sub, err := p.PolygonOfInterest(k, 4)
		if err != nil {
			t.Fatalf("PolygonOfInterest(%d, 4) error: %v", k, err)
		}
		if geom.Abs(sub.Area()-500) > 1 {
			t.Errorf("system %d area = %v, want ~500", k, sub.Area())
		}
		total += sub.Area()
	}
	if geom.Abs(total-2000) > 4 {
		t.Errorf("sub-areas sum to %v, want ~2000", total)
	}
}

func TestPartitionerInvalidSystemID(t *testing.T) {
	p := New(unitSquare())
	if _, err := p.PolygonOfInterest(0, 4); err == nil {
		t.Errorf("system ID 0 should fail")
	}
	if _, err := p.PolygonOfInterest(5, 4); err == nil {
		t.Errorf("system ID greater than number of systems should fail")
	}
}
