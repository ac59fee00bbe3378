// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec2 is a point or extent in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to s.
func Splat(s float64) Vec2 {
	return Vec2{X: s, Y: s}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector has no direction and normalizes to zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Box is an axis-aligned bounding box given by its center and full extent.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at c with full width/height size.
func NewBox(c, size Vec2) Box {
	return Box{Center: c, Size: size}
}

// Side identifies which side of the second box was hit in an overlap.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
	SideInside
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideInside:
		return "inside"
	default:
		return "none"
	}
}

// Contact describes an overlap between two boxes.
type Contact struct {
	Side  Side
	Depth Vec2 // Penetration depth per axis, always positive
}

// Overlap reports whether a and b overlap along with the contact detail.
// Boxes overlap only when the center distance is strictly less than the sum
// of half extents on both axes, so touching edges do not collide.
func Overlap(a, b Box) (Contact, bool) {
	dx := a.Center.X - b.Center.X
	dy := a.Center.Y - b.Center.Y
	hw := (a.Size.X + b.Size.X) / 2
	hh := (a.Size.Y + b.Size.Y) / 2

	if math.Abs(dx) >= hw || math.Abs(dy) >= hh {
		return Contact{}, false
	}

	depth := Vec2{X: hw - math.Abs(dx), Y: hh - math.Abs(dy)}
	c := Contact{Depth: depth}

	switch {
	case dx == 0 && dy == 0:
		c.Side = SideInside
	case depth.X < depth.Y:
		if dx < 0 {
			c.Side = SideLeft
		} else {
			c.Side = SideRight
		}
	default:
		if dy < 0 {
			c.Side = SideBottom
		} else {
			c.Side = SideTop
		}
	}
	return c, true
}

// Overlaps is the boolean form of Overlap.
func (b Box) Overlaps(other Box) bool {
	_, ok := Overlap(b, other)
	return ok
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
