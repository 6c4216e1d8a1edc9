// transport/fake.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/pabloteleco22/flagsearch-go/mission"
)

// Fake is an in-memory Fleet + VehicleLink used by tests. Vehicles are
// pre-seeded with NewFake; their telemetry streams are driven by whatever
// the test pushes onto the returned FakeVehicle's channels.
type Fake struct {
	mu       sync.Mutex
	vehicles []*FakeVehicle
	connects []string
}

// NewFake builds a fleet fake with the given pre-seeded vehicles.
func NewFake(vehicles ...*FakeVehicle) *Fake {
	return &Fake{vehicles: vehicles}
}

func (f *Fake) AddAnyConnection(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects = append(f.connects, url)
	return nil
}

// Connections returns every URL passed to AddAnyConnection, in order.
func (f *Fake) Connections() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.connects...)
}

func (f *Fake) DiscoverSystems(ctx context.Context) (<-chan VehicleLink, error) {
	out := make(chan VehicleLink, len(f.vehicles))
	for _, v := range f.vehicles {
		out <- v
	}
	close(out)
	return out, nil
}

// FakeVehicle is a single scripted VehicleLink. Tests populate Positions,
// LandedStates, and Progress before calling the corresponding Subscribe*
// method, or push to them concurrently to simulate a live stream.
type FakeVehicle struct {
	ID uint

	mu              sync.Mutex
	health          Health
	healthErr       error
	rateErr         error
	clearErr        error
	uploadErr       error
	rtlErr          error
	rtlAltitudeErr  error
	armErr          error
	startErr        error
	returnErr       error
	uploadedPlan    mission.Plan
	uploadedWire    []byte
	rtlEnabled      bool
	rtlAltitudeM    float32

	Positions    chan Position
	LandedStates chan LandedState
	Progress     chan MissionProgress
}

// NewFakeVehicle builds a healthy, default-configured fake vehicle with the
// given system ID.
func NewFakeVehicle(id uint) *FakeVehicle {
	return &FakeVehicle{
		ID: id,
		health: Health{
			GyrometerCalibrationOK:     true,
			AccelerometerCalibrationOK: true,
			MagnetometerCalibrationOK: true,
			LocalPositionOK:            true,
			GlobalPositionOK:           true,
			HomePositionOK:             true,
			ArmableOK:                  true,
		},
		Positions:    make(chan Position, 16),
		LandedStates: make(chan LandedState, 16),
		Progress:     make(chan MissionProgress, 16),
	}
}

func (v *FakeVehicle) SystemID() uint { return v.ID }

// SetHealth overrides the health record HealthAllOK/Health report.
func (v *FakeVehicle) SetHealth(h Health) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.health = h
}

// FailHealth makes HealthAllOK/Health return err.
func (v *FakeVehicle) FailHealth(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.healthErr = err
}

// FailUpload makes UploadMission return err instead of storing the plan.
func (v *FakeVehicle) FailUpload(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.uploadErr = err
}

// FailArm makes Arm return err.
func (v *FakeVehicle) FailArm(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.armErr = err
}

// FailStart makes StartMission return err.
func (v *FakeVehicle) FailStart(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.startErr = err
}

// UploadedPlan returns the plan most recently accepted by UploadMission,
// round-tripped through the msgpack wire codec exactly as a real link would.
func (v *FakeVehicle) UploadedPlan() mission.Plan {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.uploadedPlan
}

func (v *FakeVehicle) HealthAllOK(ctx context.Context) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.healthErr != nil {
		return false, v.healthErr
	}
	return v.health.AllOK(), nil
}

func (v *FakeVehicle) Health(ctx context.Context) (Health, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.healthErr != nil {
		return Health{}, v.healthErr
	}
	return v.health, nil
}

func (v *FakeVehicle) SetRatePosition(ctx context.Context, hz float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rateErr
}

func (v *FakeVehicle) SubscribePosition(ctx context.Context) (<-chan Position, error) {
	return v.Positions, nil
}

func (v *FakeVehicle) SubscribeLandedState(ctx context.Context) (<-chan LandedState, error) {
	return v.LandedStates, nil
}

func (v *FakeVehicle) SubscribeMissionProgress(ctx context.Context) (<-chan MissionProgress, error) {
	return v.Progress, nil
}

func (v *FakeVehicle) ClearMission(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.clearErr
}

// UploadMission encodes plan with msgpack and decodes it back immediately,
// standing in for the over-the-wire round trip a real link performs.
func (v *FakeVehicle) UploadMission(ctx context.Context, plan mission.Plan) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.uploadErr != nil {
		return v.uploadErr
	}

	wire, err := msgpack.Marshal(plan)
	if err != nil {
		return fmt.Errorf("transport: encoding mission plan: %w", err)
	}

	var decoded mission.Plan
	if err := msgpack.Unmarshal(wire, &decoded); err != nil {
		return fmt.Errorf("transport: decoding mission plan: %w", err)
	}

	v.uploadedWire = wire
	v.uploadedPlan = decoded
	return nil
}

func (v *FakeVehicle) SetReturnToLaunchAfterMission(ctx context.Context, enabled bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.rtlErr != nil {
		return v.rtlErr
	}
	v.rtlEnabled = enabled
	return nil
}

func (v *FakeVehicle) SetReturnToLaunchAltitude(ctx context.Context, meters float32) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.rtlAltitudeErr != nil {
		return v.rtlAltitudeErr
	}
	v.rtlAltitudeM = meters
	return nil
}

func (v *FakeVehicle) Arm(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.armErr
}

func (v *FakeVehicle) StartMission(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.startErr
}

func (v *FakeVehicle) ReturnToLaunch(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.returnErr
}

var _ Fleet = (*Fake)(nil)
var _ VehicleLink = (*FakeVehicle)(nil)
