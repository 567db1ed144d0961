package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func assertVecNear(t *testing.T, want, got r2.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestIdentityAndTranslation(t *testing.T) {
	p := r2.Vec{X: 3, Y: -4}
	assertVecNear(t, p, Identity().Apply(p))
	assertVecNear(t, r2.Vec{X: 13, Y: 1}, Translation(r2.Vec{X: 10, Y: 5}).Apply(p))
}

func TestRotationAboutIsClockwiseOnScreen(t *testing.T) {
	c := r2.Vec{X: 50, Y: 50}
	north := r2.Vec{X: 50, Y: 40}

	// 90 degrees clockwise turns "up" into "right".
	assertVecNear(t, r2.Vec{X: 60, Y: 50}, RotationAbout(c, 90).Apply(north))
	assertVecNear(t, r2.Vec{X: 40, Y: 50}, RotationAbout(c, -90).Apply(north))
	assertVecNear(t, c, RotationAbout(c, 33).Apply(c))
}

func TestThenComposesInOrder(t *testing.T) {
	p := r2.Vec{X: 1, Y: 0}
	move := Translation(r2.Vec{X: 10})
	turn := RotationAbout(r2.Vec{}, 90)

	assertVecNear(t, r2.Vec{X: 10, Y: 1}, turn.Then(move).Apply(p))
	assertVecNear(t, r2.Vec{X: 0, Y: 11}, move.Then(turn).Apply(p))
}
