// polygon/split.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package polygon

import (
	"fmt"

	geom "github.com/pabloteleco22/flagsearch-go/math"
)

// Split cuts the polygon into two pieces by a single straight segment whose
// endpoints lie on two of its edges, choosing the cut so that one piece has
// area targetArea (the other gets the remainder). Among all edge pairs that
// admit such a cut, the one with the shortest cut segment is kept.
//
// poly2 is the piece sized to targetArea (the two cut points plus the
// vertices between the two cut edges); poly1 is the remainder. When several
// candidate cuts tie on length, the one picked is whichever the edge-pair
// scan reaches first.
func (p Polygon) Split(targetArea float64) (poly1, poly2 Polygon, err error) {
	n := len(p.vertices)
	if n < 3 {
		return Polygon{}, Polygon{}, fmt.Errorf("%w: split needs at least 3 vertices", ErrNotEnoughPoints)
	}

	found := false
	var bestLen2 float64
	var bestP1, bestP2 Polygon

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacentEdges(n, i, j) {
				continue
			}

			cutI, cutJ, ok := p.findCut(i, j, targetArea)
			if !ok {
				continue
			}

			one, two := p.piecesFromCut(i, j, cutI, cutJ)
			length2 := cutI.SquareDistance(cutJ)
			if !found || length2 < bestLen2 {
				found = true
				bestLen2 = length2
				bestP1, bestP2 = two, one
			}
		}
	}

	if !found {
		return Polygon{}, Polygon{}, fmt.Errorf("%w: no cut achieves the requested area", ErrCannotSplit)
	}
	return bestP1, bestP2, nil
}

// adjacentEdges reports whether edges i and j (0-indexed, edge k running from
// vertex k to vertex k+1 mod n) share a vertex, which would make a cut
// between them degenerate.
func adjacentEdges(n, i, j int) bool {
	return j == i+1 || (i == 0 && j == n-1)
}

// findCut looks for a point along edge i and a point along edge j, lying on
// a shared line through the bisector pencil of the two edges, such that the
// sub-polygon running from edge i's cut point through vertices i+1..j to
// edge j's cut point has area targetArea. When the two edges are parallel,
// the pencil is instead the family of lines perpendicular to edge i. It
// returns false when the pencil runs parallel to either edge or when no line
// in the pencil keeps both cut points within their edges while spanning the
// target area.
func (p Polygon) findCut(i, j int, targetArea float64) (geom.Point, geom.Point, bool) {
	ei, ej := p.edge(i), p.edge(j)
	bis := geom.SegmentBisector(ei, ej)
	if geom.Abs(geom.SegmentTanAngle(ei, ej)) <= geom.Epsilon {
		// The bisector of parallel edges is parallel to both, so no line of
		// its pencil crosses them.
		bis = geom.NewDirectedLine(ei.Start(), geom.VectorFromPoints(ei.Start(), ei.End()).Normal())
	}

	loI, hiI, ok := cutRange(bis, ei)
	if !ok {
		return geom.Point{}, geom.Point{}, false
	}
	loJ, hiJ, ok := cutRange(bis, ej)
	if !ok {
		return geom.Point{}, geom.Point{}, false
	}

	lo := maxF(loI, loJ)
	hi := minF(hiI, hiJ)
	if lo >= hi {
		return geom.Point{}, geom.Point{}, false
	}

	area := func(c float64) float64 {
		pi, _ := pencilPoint(bis, ei, c)
		pj, _ := pencilPoint(bis, ej, c)
		return p.pieceArea(i, j, pi, pj)
	}

	areaLo, areaHi := area(lo), area(hi)
	if (areaLo-targetArea)*(areaHi-targetArea) > 0 {
		return geom.Point{}, geom.Point{}, false
	}

	c := bisectForTarget(lo, hi, areaLo, areaHi, targetArea, area)
	pi, ok1 := pencilPoint(bis, ei, c)
	pj, ok2 := pencilPoint(bis, ej, c)
	if !ok1 || !ok2 {
		return geom.Point{}, geom.Point{}, false
	}
	return pi, pj, true
}

// cutRange returns the range of the pencil parameter c (the C coefficient of
// a line sharing bis's A, B) over which the pencil's intersection with
// edge's line stays within edge's bounds. ok is false when the pencil
// direction is parallel to edge, so no such intersection moves.
func cutRange(bis geom.Line, edge geom.Segment) (lo, hi float64, ok bool) {
	const probe = 1000.0
	c0, c1 := bis.C, bis.C+probe

	p0, ok0 := pencilPoint(bis, edge, c0)
	p1, ok1 := pencilPoint(bis, edge, c1)
	if !ok0 || !ok1 {
		return 0, 0, false
	}

	t0 := paramOnSegment(edge, p0)
	t1 := paramOnSegment(edge, p1)
	slope := (t1 - t0) / (c1 - c0)
	if slope == 0 {
		return 0, 0, false
	}

	cAt0 := c0 - t0/slope
	cAt1 := c0 + (1-t0)/slope
	return minF(cAt0, cAt1), maxF(cAt0, cAt1), true
}

// pencilPoint returns the point where the line sharing bis's direction and
// carrying coefficient c crosses edge's underlying line.
func pencilPoint(bis geom.Line, edge geom.Segment, c float64) (geom.Point, bool) {
	line := geom.NewLineFromCoefficients(bis.A, bis.B, c)
	return line.CrossLine(edge.Line)
}

func paramOnSegment(seg geom.Segment, point geom.Point) float64 {
	dir := geom.VectorFromPoints(seg.Start(), seg.End())
	return geom.VectorFromPoints(seg.Start(), point).Dot(dir) / dir.SquareLength()
}

// pieceArea computes the area of the sub-polygon bounded by cutI (on edge
// i), the original vertices i+1..j, and cutJ (on edge j).
func (p Polygon) pieceArea(i, j int, cutI, cutJ geom.Point) float64 {
	verts := []geom.Point{cutI}
	for k := i + 1; k <= j; k++ {
		verts = append(verts, p.vertices[k])
	}
	verts = append(verts, cutJ)
	return New(verts).Area()
}

// piecesFromCut builds the two polygons that result from cutting between
// cutI (on edge i) and cutJ (on edge j): one runs i+1..j plus the two cut
// points, the other runs j+1..i (wrapping) plus the same two points in
// reverse.
func (p Polygon) piecesFromCut(i, j int, cutI, cutJ geom.Point) (Polygon, Polygon) {
	n := len(p.vertices)

	one := []geom.Point{cutI}
	for k := i + 1; k <= j; k++ {
		one = append(one, p.vertices[k])
	}
	one = append(one, cutJ)

	two := []geom.Point{cutJ}
	for k := j + 1; k != i+1; k = (k + 1) % n {
		two = append(two, p.vertices[k%n])
	}
	two = append(two, cutI)

	return New(one), New(two)
}

// bisectForTarget finds c in [lo, hi] with area(c) approximately target,
// assuming area is monotonic over the range (areaLo and areaHi already
// bracket target).
func bisectForTarget(lo, hi, areaLo, areaHi, target float64, area func(float64) float64) float64 {
	increasing := areaHi >= areaLo
	for iter := 0; iter < 60; iter++ {
		mid := (lo + hi) / 2
		a := area(mid)
		hit := a < target
		if hit == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
