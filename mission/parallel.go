// mission/parallel.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"fmt"

	geom "github.com/pabloteleco22/flagsearch-go/math"
	"github.com/pabloteleco22/flagsearch-go/partition"
	"github.com/pabloteleco22/flagsearch-go/polygon"
)

// ParallelSweep covers the sub-polygon with a family of parallel lines,
// spaced separation apart, alternating the entry point of each swath so
// the flight zig-zags back and forth across the area.
type ParallelSweep struct {
	area       partition.Partitioner
	separation float64
}

func NewParallelSweep(area polygon.Polygon, separation float64) ParallelSweep {
	return ParallelSweep{area: partition.New(area), separation: separation}
}

var parallelSweepAuto = newAutoAssign()

func (s ParallelSweep) NewMission(numberOfSystems uint, systemID uint) ([]Waypoint, error) {
	systemID = resolveSystemID(systemID, numberOfSystems, parallelSweepAuto)

	poi, err := s.area.PolygonOfInterest(systemID, numberOfSystems)
	if err != nil {
		return nil, fmt.Errorf("parallel-sweep mission: %w", err)
	}
	altitude := altitudeFor(systemID)

	vertices := poi.Vertices()
	if len(vertices) < 2 {
		return nil, fmt.Errorf("parallel-sweep mission: %w", polygon.ErrNotEnoughPoints)
	}

	dir := geom.VectorFromPoints(vertices[0], vertices[1])
	norm := dir.Normal().Unit().Scale(s.separation)
	baseLine := geom.NewDirectedLine(vertices[0], dir)

	var forward, backward []Waypoint
	sweep(poi, baseLine, dir, norm, s.separation, altitude, true, &forward)
	reverseWaypoints(forward)
	sweep(poi, baseLine, dir, norm.Neg(), s.separation, altitude, false, &backward)

	return append(forward, backward...), nil
}

// sweep walks a family of lines parallel to baseLine, stepping by norm each
// iteration, and appends one or two waypoints per line that still crosses
// the polygon. alt flips which extreme crossing leads each swath, so
// consecutive swaths connect into a zig-zag rather than retracing.
func sweep(poi polygon.Polygon, baseLine geom.Line, dir, norm geom.Vector, separation float64, altitude float32, first bool, out *[]Waypoint) {
	line := baseLine
	if first {
		line = geom.NewDirectedLine(line.P1.AddVector(norm), dir)
	}

	alt := true
	for {
		crossings := crossPoints(poi, line)
		line = geom.NewDirectedLine(line.P1.AddVector(norm), dir)

		switch len(crossings) {
		case 0:
			return
		case 1:
			*out = append(*out, newWaypoint(crossings[0].X, crossings[0].Y, altitude))
		default:
			maxI, minI := extremes(crossings)
			lead, trail := crossings[maxI], crossings[minI]
			if !alt {
				lead, trail = trail, lead
			}

			side := geom.VectorFromPoints(lead, trail).Unit()
			distance := lead.Distance(trail)
			switch {
			case distance > 2*separation:
				lead = lead.AddVector(side.Scale(separation))
				trail = trail.AddVector(side.Neg().Scale(separation))
			case distance > separation:
				lead = lead.AddVector(side.Scale(separation))
			}

			*out = append(*out, newWaypoint(lead.X, lead.Y, altitude))
			*out = append(*out, newWaypoint(trail.X, trail.Y, altitude))
			alt = !alt
		}
	}
}

// crossPoints finds every point at which line crosses one of poi's edges.
func crossPoints(poi polygon.Polygon, line geom.Line) []geom.Point {
	n := poi.Size()
	var points []geom.Point
	for i := 0; i < n; i++ {
		edge := geom.NewSegment(poi.At(i), poi.At((i+1)%n))
		if p, ok := edge.IntersectLine(line); ok {
			points = append(points, p)
		}
	}
	return points
}

// extremes returns the indices of the lexicographically greatest
// (max, by (y, x)) and least (min) points among crossings.
func extremes(crossings []geom.Point) (maxI, minI int) {
	for i := 1; i < len(crossings); i++ {
		if greater(crossings[i], crossings[maxI]) {
			maxI = i
		}
		if greater(crossings[minI], crossings[i]) {
			minI = i
		}
	}
	return maxI, minI
}

func greater(a, b geom.Point) bool {
	if a.Y != b.Y {
		return a.Y > b.Y
	}
	return a.X > b.X
}
