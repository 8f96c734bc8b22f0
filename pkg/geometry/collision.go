package geometry

import "math"

// PointToLineDistance returns the shortest distance from point to the
// segment [lineStart, lineEnd]. If the perpendicular projection of point
// falls outside the segment, the distance to the nearest endpoint is
// returned instead.
func PointToLineDistance(lineStart, lineEnd, point Point) float64 {
	seg := lineEnd.Sub(lineStart)
	segLenSq := seg.Dot(seg)
	if segLenSq == 0 {
		return point.Distance(lineStart)
	}

	toPoint := point.Sub(lineStart)
	c := toPoint.Dot(seg) / segLenSq

	switch {
	case c < 0:
		return point.Distance(lineStart)
	case c > 1:
		return point.Distance(lineEnd)
	default:
		projection := lineStart.Add(Vector{X: seg.X * c, Y: seg.Y * c})
		return point.Distance(projection)
	}
}

// PointWithinLineDistance reports whether point lies strictly within
// threshold of the segment [lineStart, lineEnd].
func PointWithinLineDistance(lineStart, lineEnd, point Point, threshold float64) bool {
	return PointToLineDistance(lineStart, lineEnd, point) < threshold
}

// PointInsideConvex reports whether point lies inside polygon, or within
// bufferRadius of its boundary. polygon's vertices must be ordered
// consistently (all cw or all ccw); a one or two vertex polygon is treated
// as a segment and only the buffer test applies.
func PointInsideConvex(point Point, polygon Polygon, bufferRadius float64) bool {
	if len(polygon) == 1 {
		return point.Distance(polygon[0]) <= bufferRadius
	}
	if len(polygon) < 3 {
		for _, seg := range polygon.edges() {
			if PointToLineDistance(seg[0], seg[1], point) <= bufferRadius {
				return true
			}
		}
		return false
	}

	left, right := 0, 0
	for _, seg := range polygon.edges() {
		edge := seg[1].Sub(seg[0])
		toPoint := point.Sub(seg[0])
		cross := edge.Cross(toPoint)
		switch {
		case cross > 0:
			left++
		case cross < 0:
			right++
		}

		if bufferRadius > 0 && PointToLineDistance(seg[0], seg[1], point) <= bufferRadius {
			return true
		}
	}

	return left == 0 || right == 0
}

// LineShapeIntersection reports whether the segment [lineStart, lineEnd]
// intersects polygon, or passes within bufferRadius of one of its vertices;
// a segment that comes within bufferRadius of an edge's interior but of no
// vertex is not reported. The segment clipping follows the parametric
// entering/leaving test against each edge's outward normal (flipped for a
// clockwise polygon): the segment intersects the convex region formed by the
// polygon's half-planes iff the surviving entering parameter does not exceed
// the surviving leaving parameter. For a polygon of fewer than three
// vertices only an exact crossing of its edge is tested; bufferRadius is not
// applied.
func LineShapeIntersection(lineStart, lineEnd Point, polygon Polygon, bufferRadius float64) bool {
	if len(polygon) < 3 {
		for _, seg := range polygon.edges() {
			if segmentsIntersect(lineStart, lineEnd, seg[0], seg[1]) {
				return true
			}
		}
		return false
	}

	dir := lineEnd.Sub(lineStart)
	tEnter, tLeave := 0.0, 1.0
	clipped := true

	// Twice the signed area: negative for a clockwise polygon, whose
	// right-hand edge normals point inward.
	area := 0.0
	for _, seg := range polygon.edges() {
		area += seg[0].X*seg[1].Y - seg[1].X*seg[0].Y
	}

	for _, seg := range polygon.edges() {
		edge := seg[1].Sub(seg[0])
		normal := Vector{X: edge.Y, Y: -edge.X}
		if area < 0 {
			normal = Vector{X: -edge.Y, Y: edge.X}
		}

		toStart := lineStart.Sub(seg[0])
		denom := normal.Dot(dir)
		num := -normal.Dot(toStart)

		if CloseEnough(denom, 0) {
			if num < 0 {
				clipped = false
				break
			}
			continue
		}

		t := num / denom
		if denom < 0 {
			if t > tEnter {
				tEnter = t
			}
		} else {
			if t < tLeave {
				tLeave = t
			}
		}
	}

	if clipped && tEnter <= tLeave {
		return true
	}

	if bufferRadius <= 0 {
		return false
	}
	for _, v := range polygon {
		if PointToLineDistance(lineStart, lineEnd, v) <= bufferRadius {
			return true
		}
	}
	return false
}

// segmentsIntersect reports whether segments [a0,a1] and [b0,b1] cross,
// used for the degenerate one-edge "polygon" case.
func segmentsIntersect(a0, a1, b0, b1 Point) bool {
	d1 := direction(b0, b1, a0)
	d2 := direction(b0, b1, a1)
	d3 := direction(a0, a1, b0)
	d4 := direction(a0, a1, b1)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(b0, b1, a0) {
		return true
	}
	if d2 == 0 && onSegment(b0, b1, a1) {
		return true
	}
	if d3 == 0 && onSegment(a0, a1, b0) {
		return true
	}
	if d4 == 0 && onSegment(a0, a1, b1) {
		return true
	}
	return false
}

func direction(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func onSegment(a, b, c Point) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}
