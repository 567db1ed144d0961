package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))

	// Degenerate range: container smaller than the object.
	assert.Equal(t, 0.0, Clamp(7, 0, -20))
	assert.Equal(t, 0.0, Clamp(-7, 0, -20))
}

func TestClampVec(t *testing.T) {
	got := ClampVec(r2.Vec{X: -4, Y: 900}, r2.Vec{}, r2.Vec{X: 540, Y: 300})
	assert.Equal(t, r2.Vec{X: 0, Y: 300}, got)
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), 1e-12)
	assert.InDelta(t, -math.Pi/2, Radians(-90), 1e-12)
}

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	assert.Equal(t, r2.Vec{X: 110, Y: 70}, r.Max())
	assert.Equal(t, r2.Vec{X: 60, Y: 45}, r.Center())
	assert.True(t, r.Contains(r2.Vec{X: 10, Y: 20}))
	assert.True(t, r.Contains(r2.Vec{X: 110, Y: 70}))
	assert.False(t, r.Contains(r2.Vec{X: 111, Y: 40}))
	assert.Equal(t, NewRect(15, 15, 100, 50), r.Translate(r2.Vec{X: 5, Y: -5}))

	box := r.Box()
	assert.Equal(t, r.Min, box.Min)
	assert.Equal(t, r.Max(), box.Max)

	corners := r.Corners()
	assert.Equal(t, r2.Vec{X: 110, Y: 20}, corners[1])
	assert.Equal(t, r2.Vec{X: 10, Y: 70}, corners[3])
}
