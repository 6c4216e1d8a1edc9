// config/config.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package config holds the tunable constants that govern timing, retry
// policy, and geometric tolerance across the rest of the module.
package config

import "time"

const (
	// MaxWaitingTime bounds how long discovery waits for new vehicles.
	MaxWaitingTime = 10 * time.Second

	// RefreshTime is the polling/retry interval used throughout the
	// pipeline, and the delay held inside the mission-upload lock.
	RefreshTime = 1 * time.Second

	// MaxAttempts is how many times a pipeline stage retries before giving
	// up on a vehicle.
	MaxAttempts = 10

	// PercentageDronesRequired is the default fraction of discovered
	// systems that must remain for the quorum to hold.
	PercentageDronesRequired = 66.0

	// BaseReturnAltitudeM is the return-to-launch altitude offset in
	// meters, before adding a vehicle's system index.
	BaseReturnAltitudeM = 10.0

	// SeparationM is the default track spacing used by the sweep planners.
	SeparationM = 5.0

	// GeometricTolerance has the value of the geometry engine's epsilon for
	// absorbing floating-point noise; the engine itself reads its own
	// Epsilon constant, not this one.
	GeometricTolerance = 1e-6

	// SplitScale has the value of the factor the partitioner scales
	// coordinates by before rounding; the partitioner reads its own
	// precision constant, not this one.
	SplitScale = 1e6

	// PositionRateHz is the position-reporting rate requested from each
	// vehicle once the search controller activates.
	PositionRateHz = 1.0

	// DetectionRadiusDeg is how close (in degree-space) a vehicle must get
	// to the flag to count as having found it.
	DetectionRadiusDeg = 1e-4
)
