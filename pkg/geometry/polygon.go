package geometry

// Polygon is an ordered list of vertices describing a convex obstacle
// footprint, given either clockwise or counter-clockwise. Callers do not
// need to repeat the first vertex at the end; the collision routines close
// the loop themselves.
type Polygon []Point

// edges returns the closed sequence of (start, end) segments that make up
// the polygon boundary, wrapping the last vertex back to the first.
func (p Polygon) edges() [][2]Point {
	if len(p) < 2 {
		return nil
	}
	segs := make([][2]Point, len(p))
	for i := range p {
		segs[i] = [2]Point{p[i], p[(i+1)%len(p)]}
	}
	return segs
}
