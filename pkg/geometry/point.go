// Package geometry provides the planar primitives the search core and its
// grid/graph collaborators are built on: points, vectors and the polygon
// intersection tests Theta* uses for its line-of-sight shortcut.
package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

// EPS is the tolerance used for all approximate floating point comparisons
// in this package, mirroring the tolerant comparators the rest of the stack
// uses for key and cost comparisons.
const EPS = 1e-9

// Point is a 2D coordinate, either in world units or grid cells depending on
// context.
type Point struct {
	X, Y float64
}

// NewPoint builds a Point from its components.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equal reports whether p and other refer to the same location, exactly.
// Graph coordinates are quantized to the grid on construction, so exact
// comparison is adequate for goal checks.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y}
}

// Vector is a 2D displacement.
type Vector struct {
	X, Y float64
}

// NewVector builds a Vector from its components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector if v has no
// length.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Dot returns the dot product of v and other.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z-component of the 3D cross product of v and other.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// CloseEnough reports whether a and b differ by no more than EPS, for any
// ordered float type.
func CloseEnough[T constraints.Float](a, b T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return float64(d) <= EPS
}
