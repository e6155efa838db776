// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D point in canvas pixels.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a point at (x, y).
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Set overwrites the axes that are non-nil and leaves the others untouched.
// A nil axis is distinct from zero.
func (v *Vec2) Set(x, y *float64) {
	if x != nil {
		v.X = *x
	}
	if y != nil {
		v.Y = *y
	}
}

// DistanceTo returns the Euclidean distance between v and other.
func (v Vec2) DistanceTo(other Vec2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether two boxes overlap on both axes.
// Per axis, the sum of the half extents must exceed the distance between centers,
// so boxes that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	a, b := r.Center(), other.Center()

	addX := math.Abs(r.W/2 + other.W/2)
	addY := math.Abs(r.H/2 + other.H/2)
	distX := math.Abs(a.X - b.X)
	distY := math.Abs(a.Y - b.Y)

	return addX > distX && addY > distY
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
