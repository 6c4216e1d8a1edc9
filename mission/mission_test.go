// mission/mission_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

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

func TestGoCenterOnUnitSquare(t *testing.T) {
	planner := NewGoCenter(unitSquare())
	waypoints, err := planner.NewMission(1, 1)
	if err != nil {
		t.Fatalf("NewMission() error: %v", err)
	}
	if len(waypoints) != 1 {
		t.Fatalf("len(waypoints) = %d, want 1", len(waypoints))
	}
	w := waypoints[0]
	if geom.Abs(w.LatitudeDeg-0.5) > 1e-6 || geom.Abs(w.LongitudeDeg-0.5) > 1e-6 {
		t.Errorf("waypoint = (%v, %v), want (0.5, 0.5)", w.LatitudeDeg, w.LongitudeDeg)
	}
}

func TestGoCenterEmptyAreaFails(t *testing.T) {
	planner := NewGoCenter(polygon.Polygon{})
	if _, err := planner.NewMission(3, 2); err == nil {
		t.Errorf("NewMission on an empty area should fail")
	}
}

func TestSpiralSweepCenterEndsAtCentroid(t *testing.T) {
	planner := NewSpiralSweepCenter(unitSquare(), 0.2)
	waypoints, err := planner.NewMission(1, 1)
	if err != nil {
		t.Fatalf("NewMission() error: %v", err)
	}
	if len(waypoints) == 0 {
		t.Fatalf("expected at least one waypoint")
	}
	last := waypoints[len(waypoints)-1]
	if geom.Abs(last.LatitudeDeg-0.5) > 1e-6 || geom.Abs(last.LongitudeDeg-0.5) > 1e-6 {
		t.Errorf("last waypoint = (%v, %v), want the centroid (0.5, 0.5)", last.LatitudeDeg, last.LongitudeDeg)
	}
}

func TestSpiralSweepEdgeProducesWaypoints(t *testing.T) {
	planner := NewSpiralSweepEdge(unitSquare(), 0.2)
	waypoints, err := planner.NewMission(1, 1)
	if err != nil {
		t.Fatalf("NewMission() error: %v", err)
	}
	if len(waypoints) == 0 {
		t.Errorf("expected at least one waypoint")
	}
}

func TestParallelSweepCoversSquare(t *testing.T) {
	planner := NewParallelSweep(unitSquare(), 0.2)
	waypoints, err := planner.NewMission(1, 1)
	if err != nil {
		t.Fatalf("NewMission() error: %v", err)
	}
	if len(waypoints) == 0 {
		t.Errorf("expected at least one waypoint")
	}
}

func TestAutoAssignRoundRobins(t *testing.T) {
	auto := newAutoAssign()
	first := auto.assign(3)
	second := auto.assign(3)
	third := auto.assign(3)
	fourth := auto.assign(3)

	if first != 1 || second != 2 || third != 3 || fourth != 1 {
		t.Errorf("assign sequence = %d,%d,%d,%d, want 1,2,3,1", first, second, third, fourth)
	}
}
