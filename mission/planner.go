// mission/planner.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"fmt"
	"sync"

	"github.com/pabloteleco22/flagsearch-go/partition"
	"github.com/pabloteleco22/flagsearch-go/polygon"
)

// AutoSystemID is the sentinel a caller passes to ask a Planner to assign
// its own system index, round-robin, instead of supplying one.
const AutoSystemID = 256

// Planner builds a waypoint list covering the sub-polygon assigned to one
// system out of a fleet of numberOfSystems.
type Planner interface {
	NewMission(numberOfSystems uint, systemID uint) ([]Waypoint, error)
}

// autoAssign is shared by every planner type's instances, mirroring the
// original's per-class static counter: all GoCenter instances draw from one
// counter, all SpiralSweepCenter instances from another, and so on.
type autoAssign struct {
	mu   sync.Mutex
	next uint
}

func newAutoAssign() *autoAssign {
	return &autoAssign{next: 1}
}

func (a *autoAssign) assign(numberOfSystems uint) uint {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.next
	a.next++
	if a.next > numberOfSystems {
		a.next = 1
	}
	return id
}

func resolveSystemID(requested uint, numberOfSystems uint, auto *autoAssign) uint {
	if requested > 255 {
		return auto.assign(numberOfSystems)
	}
	return requested
}

// GoCenter plans a single waypoint at the sub-polygon's centroid.
type GoCenter struct {
	area partition.Partitioner
}

func NewGoCenter(area polygon.Polygon) GoCenter {
	return GoCenter{area: partition.New(area)}
}

func (g GoCenter) NewMission(numberOfSystems uint, systemID uint) ([]Waypoint, error) {
	systemID = resolveSystemID(systemID, numberOfSystems, goCenterAuto)

	poi, err := g.area.PolygonOfInterest(systemID, numberOfSystems)
	if err != nil {
		return nil, fmt.Errorf("go-center mission: %w", err)
	}

	center, err := poi.Centroid()
	if err != nil {
		return nil, fmt.Errorf("go-center mission: %w", err)
	}

	return []Waypoint{newWaypoint(center.X, center.Y, altitudeFor(systemID))}, nil
}

var goCenterAuto = newAutoAssign()
