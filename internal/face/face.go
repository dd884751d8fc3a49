// Package face computes the offset edges ("faces") of a stroked segment
// and the closed-form intersection of two adjacent faces, the geometry a
// miter join's apex is built from.
package face

import "math"

// Point is a 2D point in path-building space.
type Point struct{ X, Y float64 }

// Vec2 is a 2D direction or displacement.
type Vec2 struct{ X, Y float64 }

func (p Point) Add(v Vec2) Point { return Point{p.X + v.X, p.Y + v.Y} }
func (p Point) Sub(q Point) Vec2 { return Vec2{p.X - q.X, p.Y - q.Y} }

func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Cross(w Vec2) float64   { return v.X*w.Y - v.Y*w.X }
func (v Vec2) Dot(w Vec2) float64     { return v.X*w.X + v.Y*w.Y }
func (v Vec2) Length() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec2) Perp() Vec2             { return Vec2{-v.Y, v.X} }

// Face is one offset edge of a stroked segment: a line through P0 in
// direction Dir. P1 is filled in when the face is bounded by a following
// join and is otherwise unused by Intersect.
type Face struct {
	P0, P1 Point
	Dir    Vec2
}

// NewFace builds the face offset from the segment p0->p1 by the given
// normal displacement (already scaled to half the stroke width and
// rotated 90 degrees from the segment tangent, per §4.4's
// offset = p ± half_width·rot90(user_slope) convention).
func NewFace(p0, p1 Point, offset Vec2) Face {
	return Face{P0: p0.Add(offset), P1: p1.Add(offset), Dir: p1.Sub(p0)}
}

// Intersect computes the miter apex where f's line, extended past its
// trailing endpoint P1, meets g's line through its leading endpoint P0.
// This reproduces Cairo's exact closed-form two-offset-line intersection:
// the apex lies on g's line at the parameter h where f's direction
// crosses the vector from f.P1 to g.P0, solved by Cramer's rule. ok is
// false when the two faces are parallel (cross == 0), in which case the
// caller should fall back to a bevel.
func (f Face) Intersect(g Face) (apex Point, ok bool) {
	cross := f.Dir.Cross(g.Dir)
	if cross == 0 {
		return Point{}, false
	}
	h := f.Dir.Cross(g.P0.Sub(f.P1)) / cross
	return g.P0.Add(g.Dir.Scale(-h)), true
}
