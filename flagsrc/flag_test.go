// flagsrc/flag_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flagsrc

import (
	"math/rand"
	"testing"

	geom "github.com/pabloteleco22/flagsearch-go/math"
	"github.com/pabloteleco22/flagsearch-go/polygon"
)

func TestFixedPosition(t *testing.T) {
	f := NewFixed(Position{LatitudeDeg: 1, LongitudeDeg: 2})
	if got := f.Position(); got != (Position{1, 2}) {
		t.Errorf("Position() = %v, want (1, 2)", got)
	}
}

func TestFixedDefault(t *testing.T) {
	if got := NewFixedDefault().Position(); got != DefaultFixedPosition {
		t.Errorf("default Fixed position = %v, want %v", got, DefaultFixedPosition)
	}
}

func TestRandomWithinInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	lat := NewInterval(-5, 5)
	lon := NewInterval(0, 1)

	for i := 0; i < 100; i++ {
		pos := NewRandom(lat, lon, rng).Position()
		if pos.LatitudeDeg < -5 || pos.LatitudeDeg > 5 {
			t.Fatalf("latitude %v out of [-5,5]", pos.LatitudeDeg)
		}
		if pos.LongitudeDeg < 0 || pos.LongitudeDeg > 1 {
			t.Fatalf("longitude %v out of [0,1]", pos.LongitudeDeg)
		}
	}
}

func TestRandomDeterministicUnderSeed(t *testing.T) {
	a := NewRandom(NewInterval(-10, 10), NewInterval(-10, 10), rand.New(rand.NewSource(7))).Position()
	b := NewRandom(NewInterval(-10, 10), NewInterval(-10, 10), rand.New(rand.NewSource(7))).Position()
	if a != b {
		t.Errorf("same seed produced different positions: %v vs %v", a, b)
	}
}

func TestRandomZeroSpanIntervalPinsValue(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pos := NewRandom(NewInterval(3, 3), NewInterval(-2, -2), rng).Position()
	if pos.LatitudeDeg != 3 || pos.LongitudeDeg != -2 {
		t.Errorf("Position() = %v, want (3, -2)", pos)
	}
}

func TestDistanceTo(t *testing.T) {
	a := Position{LatitudeDeg: 0, LongitudeDeg: 0}
	b := Position{LatitudeDeg: 3, LongitudeDeg: 4}
	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("DistanceTo() = %v, want 5", got)
	}
}

func TestRandomPolyStaysInsidePolygon(t *testing.T) {
	area := polygon.New([]geom.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	})
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 20; i++ {
		flag, err := NewRandomPoly(area, rng)
		if err != nil {
			t.Fatalf("NewRandomPoly() error: %v", err)
		}
		pos := flag.Position()
		inside, err := area.IsPointInside(geom.Point{X: pos.LatitudeDeg, Y: pos.LongitudeDeg})
		if err != nil {
			t.Fatalf("IsPointInside() error: %v", err)
		}
		if !inside {
			t.Errorf("flag at %v fell outside the polygon", pos)
		}
	}
}
