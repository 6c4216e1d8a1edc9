// mission/waypoint.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package mission turns a sub-polygon assigned to one vehicle into an
// ordered list of waypoints, using one of four coverage strategies.
package mission

// CameraAction mirrors the camera directive attached to a waypoint.
type CameraAction int

const (
	CameraActionNone CameraAction = iota
	CameraActionTakePhoto
	CameraActionStartPhotoInterval
	CameraActionStopPhotoInterval
	CameraActionStartVideo
	CameraActionStopVideo
)

// Waypoint is one stop in a vehicle's flight plan. Order within a list
// defines flight order.
type Waypoint struct {
	LatitudeDeg      float64      `msgpack:"latitude_deg"`
	LongitudeDeg     float64      `msgpack:"longitude_deg"`
	RelativeAltitude float32      `msgpack:"relative_altitude_m"`
	SpeedMS          float32      `msgpack:"speed_m_s"`
	IsFlyThrough     bool         `msgpack:"is_fly_through"`
	GimbalPitchDeg   float32      `msgpack:"gimbal_pitch_deg"`
	GimbalYawDeg     float32      `msgpack:"gimbal_yaw_deg"`
	CameraAction     CameraAction `msgpack:"camera_action"`
}

// Plan is the ordered waypoint list uploaded to one vehicle.
type Plan []Waypoint

// IndexedWaypoint pairs a Waypoint with its zero-based position in the
// flight order. The index is derived from slice position rather than
// stored on Waypoint itself, so there is only one source of truth for
// flight order.
type IndexedWaypoint struct {
	Index int
	Waypoint
}

// Indexed returns p's waypoints paired with their flight-order index.
func (p Plan) Indexed() []IndexedWaypoint {
	out := make([]IndexedWaypoint, len(p))
	for i, w := range p {
		out[i] = IndexedWaypoint{Index: i, Waypoint: w}
	}
	return out
}

const (
	defaultSpeedMS        = 5.0
	defaultGimbalPitchDeg = 20.0
	defaultGimbalYawDeg   = 60.0
	baseAltitudeM         = 10.0
)

func newWaypoint(lat, lon float64, altitude float32) Waypoint {
	return Waypoint{
		LatitudeDeg:      lat,
		LongitudeDeg:     lon,
		RelativeAltitude: altitude,
		SpeedMS:          defaultSpeedMS,
		IsFlyThrough:     false,
		GimbalPitchDeg:   defaultGimbalPitchDeg,
		GimbalYawDeg:     defaultGimbalYawDeg,
		CameraAction:     CameraActionNone,
	}
}

// altitudeFor staggers peer vehicles vertically so they don't share a flight
// level: base_altitude + system index.
func altitudeFor(systemIndex uint) float32 {
	return baseAltitudeM + float32(systemIndex)
}
