package visualization

import (
	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/common"
	"sensorbot-sim/internal/scene"
)

// Projector maps scene elements to screen-space quads.
type Projector interface {
	// Project returns the element's corners, clockwise from top-left.
	Project(el *scene.Element) [4]r2.Vec
}

// RotationProjector applies each element's rotation and then those of its
// ancestors, each about its own centre. Fixed elements escape their
// ancestors' transforms.
type RotationProjector struct{}

// NewRotationProjector creates a projector for client-space rendering.
func NewRotationProjector() *RotationProjector {
	return &RotationProjector{}
}

// Project implements Projector.
func (p *RotationProjector) Project(el *scene.Element) [4]r2.Vec {
	corners := el.ClientRect().Corners()

	tf := common.Identity()
	rotated := false
	for n := el; n != nil; n = n.Parent() {
		if n.Rotation != 0 {
			tf = tf.Then(common.RotationAbout(n.ClientRect().Center(), n.Rotation))
			rotated = true
		}
		if n.Position == scene.Fixed {
			break
		}
	}
	if !rotated {
		return corners
	}
	for i, c := range corners {
		corners[i] = tf.Apply(c)
	}
	return corners
}
