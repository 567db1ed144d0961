package simulation

import (
	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/scene"
)

// ClassWheel marks wheel elements inside a robot.
const ClassWheel = "wheel"

// Robot binds a robot element, its wheels and the map it drives on.
type Robot struct {
	el     *scene.Element
	arena  *scene.Element // nil when the robot never drives
	wheels []*scene.Element
}

func newRobot(el, arena *scene.Element) *Robot {
	return &Robot{
		el:     el,
		arena:  arena,
		wheels: el.ElementsByClass(ClassWheel),
	}
}

// Element returns the robot's scene element.
func (r *Robot) Element() *scene.Element { return r.el }

// Wheels returns the wheel elements.
func (r *Robot) Wheels() []*scene.Element { return r.wheels }

// Limit returns the largest position keeping the robot inside its map.
// Components are negative when the robot is larger than the map.
func (r *Robot) Limit() r2.Vec {
	if r.arena == nil {
		return r2.Vec{}
	}
	return r2.Sub(r.arena.Size(), r.el.Size())
}

// initialState reads the pose laid out by the scene.
func (r *Robot) initialState() DriveState {
	return DriveState{Pose: Pose{Position: r.el.Offset(), Heading: r.el.Rotation}}
}

// applyPose writes position and heading onto the robot element.
func (r *Robot) applyPose(s DriveState) {
	r.el.SetOffset(s.Position)
	r.el.Rotation = s.Heading
}

// applyWheels rotates every wheel to angle degrees.
func (r *Robot) applyWheels(angle float64) {
	for _, w := range r.wheels {
		w.Rotation = angle
	}
}
