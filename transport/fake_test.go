// transport/fake_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package transport

import (
	"context"
	"errors"
	"testing"

	"github.com/pabloteleco22/flagsearch-go/mission"
)

func TestFakeDiscoverSystems(t *testing.T) {
	v1 := NewFakeVehicle(1)
	v2 := NewFakeVehicle(2)
	fleet := NewFake(v1, v2)

	ch, err := fleet.DiscoverSystems(context.Background())
	if err != nil {
		t.Fatalf("DiscoverSystems() error: %v", err)
	}

	var found []uint
	for link := range ch {
		found = append(found, link.SystemID())
	}
	if len(found) != 2 || found[0] != 1 || found[1] != 2 {
		t.Errorf("discovered = %v, want [1 2]", found)
	}
}

func TestFakeUploadMissionRoundTrips(t *testing.T) {
	v := NewFakeVehicle(1)
	plan := mission.Plan{
		{LatitudeDeg: 1.5, LongitudeDeg: -2.5, RelativeAltitude: 30, SpeedMS: 5},
	}

	if err := v.UploadMission(context.Background(), plan); err != nil {
		t.Fatalf("UploadMission() error: %v", err)
	}

	got := v.UploadedPlan()
	if len(got) != 1 || got[0].LatitudeDeg != 1.5 || got[0].LongitudeDeg != -2.5 {
		t.Errorf("UploadedPlan() = %v, want %v", got, plan)
	}
}

func TestFakeUploadMissionFailure(t *testing.T) {
	v := NewFakeVehicle(1)
	wantErr := errors.New("boom")
	v.FailUpload(wantErr)

	if err := v.UploadMission(context.Background(), mission.Plan{}); !errors.Is(err, wantErr) {
		t.Errorf("UploadMission() error = %v, want %v", err, wantErr)
	}
}

func TestFakeHealthAllOK(t *testing.T) {
	v := NewFakeVehicle(1)
	ok, err := v.HealthAllOK(context.Background())
	if err != nil {
		t.Fatalf("HealthAllOK() error: %v", err)
	}
	if !ok {
		t.Errorf("default fake vehicle should report healthy")
	}
}

func TestFakePositionStream(t *testing.T) {
	v := NewFakeVehicle(1)
	ch, err := v.SubscribePosition(context.Background())
	if err != nil {
		t.Fatalf("SubscribePosition() error: %v", err)
	}

	v.Positions <- Position{LatitudeDeg: 1, LongitudeDeg: 2, RelativeAltitudeM: 3}
	got := <-ch
	if got.LatitudeDeg != 1 || got.LongitudeDeg != 2 || got.RelativeAltitudeM != 3 {
		t.Errorf("got %v, want (1,2,3)", got)
	}
}
