// search/search_test.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package search

import (
	"context"
	"testing"
	"time"

	"github.com/pabloteleco22/flagsearch-go/flagsrc"
	"github.com/pabloteleco22/flagsearch-go/transport"
)

func TestControllerDetectsOwnSample(t *testing.T) {
	vehicle := transport.NewFakeVehicle(1)
	state := &State{}
	flag := flagsrc.Position{LatitudeDeg: 1, LongitudeDeg: 1}
	controller := New(vehicle, state, flag, 0.01, 1.0)

	done := make(chan struct{})
	var gotFoundByMe bool
	go func() {
		_ = controller.Activate(context.Background(), func(pos flagsrc.Position, foundByMe bool) {
			gotFoundByMe = foundByMe
			close(done)
		})
	}()

	vehicle.Positions <- transport.Position{LatitudeDeg: 1.001, LongitudeDeg: 1.001}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}

	if !gotFoundByMe {
		t.Errorf("foundByMe = false, want true")
	}
	if !state.Found() {
		t.Errorf("shared state should report found")
	}
}

func TestControllerObservesPeerDetection(t *testing.T) {
	vehicle := transport.NewFakeVehicle(2)
	state := &State{}
	state.TrySetFound()
	flag := flagsrc.Position{LatitudeDeg: 5, LongitudeDeg: 5}
	controller := New(vehicle, state, flag, 0.01, 1.0)

	done := make(chan struct{})
	var gotFoundByMe bool
	go func() {
		_ = controller.Activate(context.Background(), func(pos flagsrc.Position, foundByMe bool) {
			gotFoundByMe = foundByMe
			close(done)
		})
	}()

	vehicle.Positions <- transport.Position{LatitudeDeg: 0, LongitudeDeg: 0}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}

	if gotFoundByMe {
		t.Errorf("foundByMe = true, want false (peer already found it)")
	}
}

func TestControllerFiresAtMostOnce(t *testing.T) {
	vehicle := transport.NewFakeVehicle(3)
	state := &State{}
	flag := flagsrc.Position{LatitudeDeg: 1, LongitudeDeg: 1}
	controller := New(vehicle, state, flag, 0.01, 1.0)

	calls := 0
	done := make(chan struct{})
	go func() {
		_ = controller.Activate(context.Background(), func(pos flagsrc.Position, foundByMe bool) {
			calls++
			close(done)
		})
	}()

	vehicle.Positions <- transport.Position{LatitudeDeg: 1.001, LongitudeDeg: 1.001}
	<-done

	if calls != 1 {
		t.Errorf("callback fired %d times, want 1", calls)
	}
}
