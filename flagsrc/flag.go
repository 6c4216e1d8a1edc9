// flagsrc/flag.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package flagsrc provides the sources the fleet searches for: a fixed
// position, a uniform-random point in a rectangle, or a uniform-random
// point in an arbitrary polygon.
package flagsrc

import (
	"fmt"
	stdmath "math"
	"math/rand"

	geom "github.com/pabloteleco22/flagsearch-go/math"
	"github.com/pabloteleco22/flagsearch-go/polygon"
)

// Position is a flag's location. Construction is the only side effect: once
// built, a flag never moves.
type Position struct {
	LatitudeDeg  float64
	LongitudeDeg float64
}

func (p Position) String() string {
	return fmt.Sprintf("Latitude [deg]: %g\nLongitude [deg]: %g", p.LatitudeDeg, p.LongitudeDeg)
}

// DistanceTo returns the Euclidean distance, in degree-space, between p and
// to. Used by the search controller instead of comparing squared distances
// directly, so the detection radius reads in the same units it's defined in.
func (p Position) DistanceTo(to Position) float64 {
	dx := p.LatitudeDeg - to.LatitudeDeg
	dy := p.LongitudeDeg - to.LongitudeDeg
	return stdmath.Sqrt(dx*dx + dy*dy)
}

// Source yields the position of a flag placed somewhere in the search area.
type Source interface {
	Position() Position
}

// Fixed is a flag at an unconditional position.
type Fixed struct {
	pos Position
}

// DefaultFixedPosition is the position a Fixed source built by
// NewFixedDefault reports.
var DefaultFixedPosition = Position{LatitudeDeg: 10.0, LongitudeDeg: 0.0}

func NewFixed(pos Position) Fixed {
	return Fixed{pos: pos}
}

// NewFixedDefault builds a Fixed source at DefaultFixedPosition.
func NewFixedDefault() Fixed {
	return Fixed{pos: DefaultFixedPosition}
}

func (f Fixed) Position() Position {
	return f.pos
}

// Interval is an inclusive numeric range, normalized so Min never exceeds
// Max regardless of construction order.
type Interval struct {
	min, max float64
}

func NewInterval(a, b float64) Interval {
	if a > b {
		return Interval{min: b, max: a}
	}
	return Interval{min: a, max: b}
}

func (r Interval) Min() float64  { return r.min }
func (r Interval) Max() float64  { return r.max }
func (r Interval) Span() float64 { return r.max - r.min }

var (
	// DefaultLatitudeInterval and DefaultLongitudeInterval bound the random
	// rectangle used when Random is built without explicit intervals.
	DefaultLatitudeInterval  = NewInterval(-10, 10)
	DefaultLongitudeInterval = NewInterval(-10, 10)
)

// Random is a flag placed uniformly at random within an axis-aligned
// rectangle of latitude/longitude.
type Random struct {
	pos Position
}

// NewRandom builds a Random source within latitude x longitude, drawing from
// rng. Passing a rand.Rand seeded deterministically makes placement
// reproducible; nil draws from the package-level default source.
func NewRandom(latitude, longitude Interval, rng *rand.Rand) Random {
	draw := randomFloat(rng)
	pos := Position{
		LatitudeDeg:  sampleInterval(latitude, draw()),
		LongitudeDeg: sampleInterval(longitude, draw()),
	}
	return Random{pos: pos}
}

// NewRandomDefault builds a Random source within the default rectangle.
func NewRandomDefault(rng *rand.Rand) Random {
	return NewRandom(DefaultLatitudeInterval, DefaultLongitudeInterval, rng)
}

func (r Random) Position() Position {
	return r.pos
}

func sampleInterval(interval Interval, u float64) float64 {
	if interval.Span() == 0 {
		return interval.Max()
	}
	return interval.Min() + interval.Span()*u
}

func randomFloat(rng *rand.Rand) func() float64 {
	if rng == nil {
		return rand.Float64
	}
	return rng.Float64
}

// RandomPoly is a flag placed uniformly at random within an arbitrary
// simple polygon, found by rejection-sampling its bounding rectangle.
type RandomPoly struct {
	pos Position
}

// DefaultPolygonVertices bounds a 20x20-degree square used when RandomPoly
// is built without an explicit polygon.
var DefaultPolygonVertices = []geom.Point{
	{X: -10, Y: -10},
	{X: -10, Y: 10},
	{X: 10, Y: 10},
	{X: 10, Y: -10},
}

// NewRandomPoly builds a RandomPoly source within area, rejection-sampling
// its bounding box until a draw falls inside the polygon itself.
func NewRandomPoly(area polygon.Polygon, rng *rand.Rand) (RandomPoly, error) {
	vertices := area.Vertices()
	if len(vertices) == 0 {
		return RandomPoly{}, fmt.Errorf("flagsrc: polygon has no vertices")
	}

	minP, maxP := vertices[0], vertices[0]
	for _, v := range vertices {
		if v.X < minP.X {
			minP.X = v.X
		}
		if v.Y < minP.Y {
			minP.Y = v.Y
		}
		if v.X > maxP.X {
			maxP.X = v.X
		}
		if v.Y > maxP.Y {
			maxP.Y = v.Y
		}
	}

	latitude := NewInterval(maxP.X, minP.X)
	longitude := NewInterval(maxP.Y, minP.Y)

	for {
		candidate := NewRandom(latitude, longitude, rng).Position()
		inside, err := area.IsPointInside(geom.Point{X: candidate.LatitudeDeg, Y: candidate.LongitudeDeg})
		if err != nil {
			return RandomPoly{}, fmt.Errorf("flagsrc: %w", err)
		}
		if inside {
			return RandomPoly{pos: candidate}, nil
		}
	}
}

// NewRandomPolyDefault builds a RandomPoly source within
// DefaultPolygonVertices.
func NewRandomPolyDefault(rng *rand.Rand) (RandomPoly, error) {
	return NewRandomPoly(polygon.New(DefaultPolygonVertices), rng)
}

func (r RandomPoly) Position() Position {
	return r.pos
}
