// mission/spiral.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"fmt"

	geom "github.com/pabloteleco22/flagsearch-go/math"
	"github.com/pabloteleco22/flagsearch-go/partition"
	"github.com/pabloteleco22/flagsearch-go/polygon"
)

// SpiralSweepCenter walks a segment from the sub-polygon's centroid to each
// vertex, round-robin, in increments of separation, so the flight spirals
// inward from the edges to the centroid.
type SpiralSweepCenter struct {
	area       partition.Partitioner
	separation float64
}

func NewSpiralSweepCenter(area polygon.Polygon, separation float64) SpiralSweepCenter {
	return SpiralSweepCenter{area: partition.New(area), separation: separation}
}

var spiralSweepCenterAuto = newAutoAssign()

func (s SpiralSweepCenter) NewMission(numberOfSystems uint, systemID uint) ([]Waypoint, error) {
	systemID = resolveSystemID(systemID, numberOfSystems, spiralSweepCenterAuto)

	poi, err := s.area.PolygonOfInterest(systemID, numberOfSystems)
	if err != nil {
		return nil, fmt.Errorf("spiral-sweep-center mission: %w", err)
	}
	center, err := poi.Centroid()
	if err != nil {
		return nil, fmt.Errorf("spiral-sweep-center mission: %w", err)
	}
	altitude := altitudeFor(systemID)

	segments := make([]geom.Segment, 0, poi.Size())
	for _, v := range poi.Vertices() {
		segments = append(segments, geom.NewSegment(center, v))
	}

	var waypoints []Waypoint
	idx := 0
	for len(segments) > 0 {
		seg := segments[idx]
		p := seg.PointAlong(s.separation)
		end := seg.End()

		if !p.Equal(end) {
			waypoints = append(waypoints, newWaypoint(p.X, p.Y, altitude))
			segments[idx] = geom.NewSegment(p, end)
			idx++
		} else {
			segments = append(segments[:idx], segments[idx+1:]...)
		}

		if idx >= len(segments) {
			idx = 0
		}
	}

	reverseWaypoints(waypoints)
	waypoints = append(waypoints, newWaypoint(center.X, center.Y, altitude))

	return waypoints, nil
}

// SpiralSweepEdge is the symmetric counterpart of SpiralSweepCenter: it
// walks from each vertex centroid-ward, emits no reversal, and no final
// centroid waypoint.
type SpiralSweepEdge struct {
	area       partition.Partitioner
	separation float64
}

func NewSpiralSweepEdge(area polygon.Polygon, separation float64) SpiralSweepEdge {
	return SpiralSweepEdge{area: partition.New(area), separation: separation}
}

var spiralSweepEdgeAuto = newAutoAssign()

func (s SpiralSweepEdge) NewMission(numberOfSystems uint, systemID uint) ([]Waypoint, error) {
	systemID = resolveSystemID(systemID, numberOfSystems, spiralSweepEdgeAuto)

	poi, err := s.area.PolygonOfInterest(systemID, numberOfSystems)
	if err != nil {
		return nil, fmt.Errorf("spiral-sweep-edge mission: %w", err)
	}
	center, err := poi.Centroid()
	if err != nil {
		return nil, fmt.Errorf("spiral-sweep-edge mission: %w", err)
	}
	altitude := altitudeFor(systemID)

	segments := make([]geom.Segment, 0, poi.Size())
	for _, v := range poi.Vertices() {
		segments = append(segments, geom.NewSegment(v, center))
	}

	var waypoints []Waypoint
	idx := 0
	for len(segments) > 0 {
		seg := segments[idx]
		p := seg.PointAlong(s.separation)

		if !p.Equal(center) {
			waypoints = append(waypoints, newWaypoint(p.X, p.Y, altitude))
			segments[idx] = geom.NewSegment(p, center)
			idx++
		} else {
			segments = append(segments[:idx], segments[idx+1:]...)
		}

		if idx >= len(segments) {
			idx = 0
		}
	}

	return waypoints, nil
}

func reverseWaypoints(w []Waypoint) {
	for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}
}
