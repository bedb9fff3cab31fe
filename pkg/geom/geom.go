// Package geom provides the small set of geometric primitives shared by the
// carousel engines and the gesture bridge.
//
// All types are plain value types in host coordinate space (points, not
// pixels; the host decides). The package carries no rendering behavior;
// engines compute with these values and hand them back to the host.
package geom

import "math"

// Point is a position in host coordinate space.
type Point struct {
	X float64
	Y float64
}

// Vec2 is a 2D displacement, used for gesture translations and offsets.
type Vec2 struct {
	X float64
	Y float64
}

// Zero reports whether the vector is exactly (0, 0).
func (v Vec2) Zero() bool { return v.X == 0 && v.Y == 0 }

// Add returns the component-wise sum of v and w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{X: v.X + w.X, Y: v.Y + w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle identified by its origin (top-left in
// host convention) and size.
type Rect struct {
	Origin Point
	Size   Size
}

// MinX returns the leading edge of the rectangle.
func (r Rect) MinX() float64 { return r.Origin.X }

// MaxX returns the trailing edge of the rectangle.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MidX returns the horizontal center of the rectangle.
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.Width/2 }

// MinY returns the top edge of the rectangle.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Clamp limits v to the inclusive range [lo, hi].
// Callers must ensure lo <= hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to the inclusive range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
// t is not clamped; t outside [0, 1] extrapolates.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs returns the absolute value of v.
func Abs(v float64) float64 { return math.Abs(v) }

// AbsInt returns the absolute value of v.
func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0, or 1 depending on the sign of v.
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
