// polygon/polygon.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package polygon implements the computational-geometry engine that the
// partitioner and mission planners build on: area and centroid, point
// containment, nearest-edge queries, and the equal-area split algorithm
// that drives the partitioner.
package polygon

import (
	"fmt"

	geom "github.com/pabloteleco22/flagsearch-go/math"
)

// Polygon is an ordered, implicitly-closed sequence of vertices.
type Polygon struct {
	vertices []geom.Point
}

// New builds a polygon from the given vertices, in order.
func New(vertices []geom.Point) Polygon {
	return Polygon{vertices: append([]geom.Point(nil), vertices...)}
}

func (p Polygon) Size() int {
	return len(p.vertices)
}

func (p Polygon) Empty() bool {
	return len(p.vertices) == 0
}

// Vertices returns a copy of the polygon's vertex list.
func (p Polygon) Vertices() []geom.Point {
	return append([]geom.Point(nil), p.vertices...)
}

func (p Polygon) At(i int) geom.Point {
	return p.vertices[i]
}

func (p *Polygon) PushBack(point geom.Point) {
	p.vertices = append(p.vertices, point)
}

func (p *Polygon) Clear() {
	p.vertices = nil
}

// AreaSigned returns the shoelace-formula signed area. Its sign follows
// the same convention as IsClockwise: positive for a clockwise polygon,
// negative for a counter-clockwise one.
func (p Polygon) AreaSigned() float64 {
	n := len(p.vertices)
	if n < 3 {
		return 0
	}

	var result float64
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			result += p.vertices[i].X * (p.vertices[n-1].Y - p.vertices[i+1].Y)
		case n - 1:
			result += p.vertices[i].X * (p.vertices[i-1].Y - p.vertices[0].Y)
		default:
			result += p.vertices[i].X * (p.vertices[i-1].Y - p.vertices[i+1].Y)
		}
	}
	return result / 2
}

// Area returns the unsigned area.
func (p Polygon) Area() float64 {
	return geom.Abs(p.AreaSigned())
}

// IsClockwise reports whether the vertex order is clockwise, per the sign
// of sum((x[i+1]-x[i])*(y[i+1]+y[i])): a positive sum means clockwise.
func (p Polygon) IsClockwise() (bool, error) {
	n := len(p.vertices)
	if n < 2 {
		return false, fmt.Errorf("%w: is_clockwise needs at least 2 vertices", ErrNotEnoughPoints)
	}

	var sum float64
	for i := 0; i < n-1; i++ {
		sum += (p.vertices[i+1].X - p.vertices[i].X) * (p.vertices[i+1].Y + p.vertices[i].Y)
	}
	sum += (p.vertices[0].X - p.vertices[n-1].X) * (p.vertices[0].Y + p.vertices[n-1].Y)
	return sum > 0, nil
}

// Centroid returns the unweighted average of the vertices.
func (p Polygon) Centroid() (geom.Point, error) {
	n := len(p.vertices)
	if n == 0 {
		return geom.Point{}, fmt.Errorf("%w: centroid needs at least 1 vertex", ErrNotEnoughPoints)
	}

	var sum geom.Point
	for _, v := range p.vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(n)), nil
}

func (p Polygon) edge(i int) geom.Segment {
	n := len(p.vertices)
	return geom.NewSegment(p.vertices[i], p.vertices[(i+1)%n])
}

// FindNearestPoint returns the point on the polygon's boundary nearest to
// point.
func (p Polygon) FindNearestPoint(point geom.Point) (geom.Point, error) {
	n := len(p.vertices)
	if n < 2 {
		return geom.Point{}, fmt.Errorf("%w: find_nearest_point needs at least 2 vertices", ErrNotEnoughPoints)
	}

	best := p.edge(0).NearestPoint(point)
	bestDist := best.Distance(point)
	for i := 1; i < n; i++ {
		cand := p.edge(i).NearestPoint(point)
		if d := cand.Distance(point); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best, nil
}

// FindDistance returns the distance from point to the polygon's boundary.
func (p Polygon) FindDistance(point geom.Point) (float64, error) {
	near, err := p.FindNearestPoint(point)
	if err != nil {
		return 0, err
	}
	return near.Distance(point), nil
}

// SplitNearestEdge inserts the projection of point onto its nearest edge
// as a new vertex, unless that projection already coincides with one of
// the edge's endpoints.
func (p *Polygon) SplitNearestEdge(point geom.Point) error {
	n := len(p.vertices)
	if n < 2 {
		return fmt.Errorf("%w: split_nearest_edge needs at least 2 vertices", ErrNotEnoughPoints)
	}

	bestIdx := -1
	var best geom.Point
	bestDist := 0.0
	for i := 0; i < n; i++ {
		cand := p.edge(i).NearestPoint(point)
		d := cand.Distance(point)
		if bestIdx == -1 || d < bestDist {
			bestIdx, best, bestDist = i, cand, d
		}
	}

	next := (bestIdx + 1) % n
	if !p.vertices[bestIdx].Equal(best) && !p.vertices[next].Equal(best) {
		tail := append([]geom.Point{best}, p.vertices[next:]...)
		p.vertices = append(p.vertices[:next], tail...)
	}
	return nil
}

// IsPointInside reports containment using a vertical ray cast from point
// upward and counting boundary crossings; odd parity means interior.
func (p Polygon) IsPointInside(point geom.Point) (bool, error) {
	n := len(p.vertices)
	if n < 3 {
		return false, fmt.Errorf("%w: is_point_inside needs at least 3 vertices", ErrNotEnoughPoints)
	}

	ray := geom.NewSegment(point, geom.Point{X: point.X, Y: 1e100})
	count := 0
	for i := 0; i < n; i++ {
		if _, ok := ray.Intersect(p.edge(i)); ok {
			count++
		}
	}
	return count%2 != 0, nil
}

// IsSegmentInside reports whether segment lies entirely within the
// polygon: it must not cross any edge other than the two named by index
// (which are excluded because segment is expected to touch them at its
// own endpoints), and its midpoint must be interior.
func (p Polygon) IsSegmentInside(segment geom.Segment, excludeEdge1, excludeEdge2 int) (bool, error) {
	n := len(p.vertices)
	if n < 3 {
		return false, fmt.Errorf("%w: is_segment_inside needs at least 3 vertices", ErrNotEnoughPoints)
	}

	for i := 0; i < n; i++ {
		if i == excludeEdge1 || i == excludeEdge2 {
			continue
		}
		e := p.edge(i)
		if cross, ok := e.Intersect(segment); ok {
			if e.Start().SquareDistance(cross) > geom.Epsilon && e.End().SquareDistance(cross) > geom.Epsilon {
				return false, nil
			}
		}
	}

	return p.IsPointInside(segment.PointAlong(segment.Length() / 2))
}
