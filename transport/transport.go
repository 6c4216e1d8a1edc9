// transport/transport.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package transport defines the autopilot link capability surface the
// pipeline and search controller drive vehicles through, and provides an
// in-memory fake implementation for tests.
package transport

import (
	"context"

	"github.com/pabloteleco22/flagsearch-go/mission"
)

// LandedState mirrors a vehicle's ground/air state stream.
type LandedState int

const (
	LandedStateUnknown LandedState = iota
	LandedStateOnGround
	LandedStateTakingOff
	LandedStateInAir
	LandedStateLanding
)

func (s LandedState) String() string {
	switch s {
	case LandedStateOnGround:
		return "OnGround"
	case LandedStateTakingOff:
		return "TakingOff"
	case LandedStateInAir:
		return "InAir"
	case LandedStateLanding:
		return "Landing"
	default:
		return "Unknown"
	}
}

// Health reports the subsystem checks behind health_all_ok.
type Health struct {
	GyrometerCalibrationOK     bool
	AccelerometerCalibrationOK bool
	MagnetometerCalibrationOK bool
	LocalPositionOK            bool
	GlobalPositionOK           bool
	HomePositionOK             bool
	ArmableOK                  bool
}

// AllOK reports whether every individual check passed.
func (h Health) AllOK() bool {
	return h.GyrometerCalibrationOK && h.AccelerometerCalibrationOK &&
		h.MagnetometerCalibrationOK && h.LocalPositionOK &&
		h.GlobalPositionOK && h.HomePositionOK && h.ArmableOK
}

// Position is one sample from a vehicle's position stream.
type Position struct {
	LatitudeDeg       float64
	LongitudeDeg      float64
	RelativeAltitudeM float64
}

// MissionProgress reports how far a vehicle has advanced through its
// uploaded plan.
type MissionProgress struct {
	Current int
	Total   int
}

// Fleet is the connection- and discovery-level surface, shared across every
// vehicle reachable through it.
type Fleet interface {
	// AddAnyConnection registers a connection endpoint (e.g. "udp://:14540").
	AddAnyConnection(ctx context.Context, url string) error

	// DiscoverSystems streams a VehicleLink each time a new vehicle answers.
	// The channel closes once discovery is stopped or the context is done.
	DiscoverSystems(ctx context.Context) (<-chan VehicleLink, error)
}

// VehicleLink is the per-vehicle capability surface the operation pipeline
// and search controller drive.
type VehicleLink interface {
	SystemID() uint

	HealthAllOK(ctx context.Context) (bool, error)
	Health(ctx context.Context) (Health, error)

	SetRatePosition(ctx context.Context, hz float64) error
	SubscribePosition(ctx context.Context) (<-chan Position, error)
	SubscribeLandedState(ctx context.Context) (<-chan LandedState, error)
	SubscribeMissionProgress(ctx context.Context) (<-chan MissionProgress, error)

	ClearMission(ctx context.Context) error
	UploadMission(ctx context.Context, plan mission.Plan) error

	SetReturnToLaunchAfterMission(ctx context.Context, enabled bool) error
	SetReturnToLaunchAltitude(ctx context.Context, meters float32) error

	Arm(ctx context.Context) error
	StartMission(ctx context.Context) error
	ReturnToLaunch(ctx context.Context) error
}
