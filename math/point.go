// math/point.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "fmt"

// Point is an ordered pair of coordinates. Depending on context it holds
// either a planar (x, y) offset used by the polygon engine, or a
// (latitude, longitude) pair expressed in degrees; the two share the same
// representation since the system never attempts geodesic correctness
// (see DESIGN.md).
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// AddVector translates p by v.
func (p Point) AddVector(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Equal reports approximate equality under Epsilon.
func (p Point) Equal(o Point) bool {
	return NearlyEqual(p.X, o.X) && NearlyEqual(p.Y, o.Y)
}

func (p Point) SquareDistance(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

func (p Point) Distance(o Point) float64 {
	return Sqrt(p.SquareDistance(o))
}

func (p Point) Abs() Point {
	return Point{Abs(p.X), Abs(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
