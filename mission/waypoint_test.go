// mission/waypoint_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import "testing"

func TestPlanIndexed(t *testing.T) {
	plan := Plan{
		newWaypoint(1, 1, 10),
		newWaypoint(2, 2, 10),
		newWaypoint(3, 3, 10),
	}

	indexed := plan.Indexed()
	if len(indexed) != 3 {
		t.Fatalf("len(Indexed()) = %d, want 3", len(indexed))
	}
	for i, iw := range indexed {
		if iw.Index != i {
			t.Errorf("Indexed()[%d].Index = %d, want %d", i, iw.Index, i)
		}
		if iw.Waypoint != plan[i] {
			t.Errorf("Indexed()[%d].Waypoint = %v, want %v", i, iw.Waypoint, plan[i])
		}
	}
}
