// partition/partition.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package partition splits a search area into one equal-area sub-polygon
// per participating vehicle.
package partition

import (
	"fmt"
	stdmath "math"

	geom "github.com/pabloteleco22/flagsearch-go/math"
	"github.com/pabloteleco22/flagsearch-go/polygon"
)

// precision is the scale factor applied before rounding vertex coordinates,
// to keep the split algorithm's arithmetic away from floating-point noise.
const precision = 1e6

// Partitioner divides a fixed search area among a fleet, handing each
// system index its own sub-polygon.
type Partitioner struct {
	area polygon.Polygon
}

// New builds a partitioner over area. area is not modified by subsequent
// calls.
func New(area polygon.Polygon) Partitioner {
	return Partitioner{area: area}
}

// PolygonOfInterest returns the sub-polygon assigned to systemID (1-indexed)
// out of numberOfSystems equal-area shares of the partitioner's area.
func (p Partitioner) PolygonOfInterest(systemID, numberOfSystems uint) (polygon.Polygon, error) {
	scaled := scale(p.area, precision)

	total := scaled.Area()
	partialArea := total / float64(numberOfSystems)

	if partialArea <= 0 {
		return polygon.Polygon{}, fmt.Errorf("%w: the required area is zero or less", ErrCannotMakeMission)
	}
	if systemID == 0 {
		return polygon.Polygon{}, fmt.Errorf("%w: the system ID must be greater than 0", ErrCannotMakeMission)
	}
	if systemID > numberOfSystems {
		return polygon.Polygon{}, fmt.Errorf("%w: the system ID must be less than or equal to the number of systems", ErrCannotMakeMission)
	}

	remainder := scaled
	var cutPiece, discarded polygon.Polygon

	niter := systemID
	if numberOfSystems-1 < niter {
		niter = numberOfSystems - 1
	}

	for i := uint(0); i < niter; i++ {
		poly1, poly2, err := remainder.Split(partialArea)
		if err != nil {
			return polygon.Polygon{}, fmt.Errorf("%w: cannot split the required area: %v", ErrCannotMakeMission, err)
		}

		if poly1.Area()-partialArea < poly2.Area()-partialArea {
			cutPiece, discarded = poly1, poly2
		} else {
			cutPiece, discarded = poly2, poly1
		}

		remainder = discarded
	}

	if numberOfSystems == 1 {
		return p.area, nil
	}

	result := cutPiece
	if systemID == numberOfSystems {
		result = discarded
	}

	return scale(result, 1/precision), nil
}

// scale multiplies every vertex by factor. When factor is precision itself
// (the forward direction, not its reciprocal), it additionally rounds to
// the nearest integer to cancel floating-point drift before the split
// algorithm runs.
func scale(p polygon.Polygon, factor float64) polygon.Polygon {
	verts := p.Vertices()
	scaled := make([]geom.Point, len(verts))
	for i, v := range verts {
		x, y := v.X*factor, v.Y*factor
		if factor == precision {
			x, y = stdmath.Round(x), stdmath.Round(y)
		}
		scaled[i] = geom.Point{X: x, Y: y}
	}
	return polygon.New(scaled)
}
