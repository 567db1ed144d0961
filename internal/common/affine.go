package common

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Affine is a 2D affine transform in homogeneous coordinates.
type Affine struct {
	m *mat.Dense
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// Translation moves points by d.
func Translation(d r2.Vec) Affine {
	return Affine{m: mat.NewDense(3, 3, []float64{
		1, 0, d.X,
		0, 1, d.Y,
		0, 0, 1,
	})}
}

// RotationAbout rotates points clockwise on screen (y grows downward) by
// deg degrees around c.
func RotationAbout(c r2.Vec, deg float64) Affine {
	sin, cos := math.Sincos(Radians(deg))
	rot := Affine{m: mat.NewDense(3, 3, []float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	})}
	return Translation(r2.Scale(-1, c)).Then(rot).Then(Translation(c))
}

// Then returns the transform applying a first and b second.
func (a Affine) Then(b Affine) Affine {
	var out mat.Dense
	out.Mul(b.m, a.m)
	return Affine{m: &out}
}

// Apply transforms a point.
func (a Affine) Apply(p r2.Vec) r2.Vec {
	var out mat.VecDense
	out.MulVec(a.m, mat.NewVecDense(3, []float64{p.X, p.Y, 1}))
	return r2.Vec{X: out.AtVec(0), Y: out.AtVec(1)}
}
