// Package core provides fundamental types and utilities shared by the
// simulation, the game adapter and the terminal platform.
// It has no external dependencies so game logic stays pure and testable.
package core

import "math"

// Vec2 is a point or offset in world units.
// World space is centered on the origin with y pointing up.
type Vec2 struct {
	X, Y float64
}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Box is an axis-aligned box in world units described by its center and
// half extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box centered at c with half extents (hw, hh).
func NewBox(c Vec2, hw, hh float64) Box {
	return Box{Center: c, Half: Vec2{X: hw, Y: hh}}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// WithinReach reports whether |a.X-b.X| < rx and |a.Y-b.Y| < ry.
// This is the center-distance form of an AABB overlap test.
func WithinReach(a, b Vec2, rx, ry float64) bool {
	return math.Abs(a.X-b.X) < rx && math.Abs(a.Y-b.Y) < ry
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
