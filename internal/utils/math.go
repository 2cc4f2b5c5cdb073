// internal/utils/math.go
package utils

import "math"

// Vec2 is a point or direction on the arena plane.
type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }

// Norm returns the unit vector, or the zero vector for a zero-length input.
func (a Vec2) Norm() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// MoveTowards steps from current toward target by at most maxStep without overshooting.
func MoveTowards(current, target Vec2, maxStep float64) Vec2 {
	diff := target.Sub(current)
	d := diff.Len()
	if d <= maxStep || d == 0 {
		return target
	}
	return current.Add(diff.Scale(maxStep / d))
}

// Lerp performs standard linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CircleOverlapsRect reports whether a circle touches an axis-aligned rectangle
// given by its center and full width/height.
func CircleOverlapsRect(c Vec2, r float64, center Vec2, w, h float64) bool {
	nx := Clamp(c.X, center.X-w/2, center.X+w/2)
	ny := Clamp(c.Y, center.Y-h/2, center.Y+h/2)
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= r*r
}

// CirclesOverlap reports whether two circles touch.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	rr := ra + rb
	return dx*dx+dy*dy <= rr*rr
}
