package common

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins, so a
// degenerate range (object larger than its container) collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampVec clamps each coordinate of v to the box [lo, hi].
func ClampVec(v, lo, hi r2.Vec) r2.Vec {
	return r2.Vec{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  r2.Vec
	Size r2.Vec
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: r2.Vec{X: x, Y: y}, Size: r2.Vec{X: w, Y: h}}
}

// Max returns the bottom-right corner.
func (r Rect) Max() r2.Vec {
	return r2.Add(r.Min, r.Size)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() r2.Vec {
	return r2.Add(r.Min, r2.Scale(0.5, r.Size))
}

// Box converts the rectangle to a gonum box.
func (r Rect) Box() r2.Box {
	return r2.Box{Min: r.Min, Max: r.Max()}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p r2.Vec) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X <= max.X &&
		p.Y >= r.Min.Y && p.Y <= max.Y
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d r2.Vec) Rect {
	return Rect{Min: r2.Add(r.Min, d), Size: r.Size}
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]r2.Vec {
	max := r.Max()
	return [4]r2.Vec{
		r.Min,
		{X: max.X, Y: r.Min.Y},
		max,
		{X: r.Min.X, Y: max.Y},
	}
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("[%.1f,%.1f %.1fx%.1f]", r.Min.X, r.Min.Y, r.Size.X, r.Size.Y)
}
