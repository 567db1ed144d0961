package simulation

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/common"
	"sensorbot-sim/internal/scene"
)

// DragSession is the sensor currently following the pointer.
type DragSession struct {
	Sensor *Sensor
	Offset r2.Vec // pointer minus the sensor's top-left at grab time
}

// GrabOffset returns the pointer position relative to the grabbed rect.
func GrabOffset(pointer r2.Vec, rect common.Rect) r2.Vec {
	return r2.Sub(pointer, rect.Min)
}

// DragPosition returns the top-left corner that keeps the grab offset
// under the pointer.
func DragPosition(pointer, offset r2.Vec) r2.Vec {
	return r2.Sub(pointer, offset)
}

// DropPosition centres an item of the given size on the pointer and clamps
// it inside target. The result is relative to target's top-left.
func DropPosition(pointer r2.Vec, target common.Rect, size r2.Vec) r2.Vec {
	rel := r2.Sub(r2.Sub(pointer, target.Min), r2.Scale(0.5, size))
	return common.ClampVec(rel, r2.Vec{}, r2.Sub(target.Size, size))
}

// IsRobotHit reports whether the element under the pointer is the robot
// or lies inside it.
func IsRobotHit(under, robot *scene.Element) bool {
	return under != nil && robot.Contains(under)
}

func (s *Simulation) onSensorPointerDown(ev *scene.Event) {
	if s.state.Mode == ModeSimulation || s.state.Drag != nil {
		return
	}
	sensor := s.sensorByElement(ev.CurrentTarget)
	if sensor == nil {
		return
	}

	rect := sensor.el.ClientRect()
	s.state.Drag = &DragSession{Sensor: sensor, Offset: GrabOffset(ev.Point, rect)}
	sensor.float(rect.Min)
	s.instruction.Text = fmt.Sprintf("Dragging %s", sensor.name)
}

func (s *Simulation) onPointerMove(ev *scene.Event) {
	if s.state.Drag == nil || s.state.Mode == ModeSimulation {
		return
	}
	s.state.Drag.Sensor.el.SetOffset(DragPosition(ev.Point, s.state.Drag.Offset))
}

func (s *Simulation) onPointerUp(ev *scene.Event) {
	if s.state.Drag == nil || s.state.Mode == ModeSimulation {
		return
	}
	sensor := s.state.Drag.Sensor
	s.state.Drag = nil

	robot := s.designRobot.el
	if IsRobotHit(ev.Target, robot) {
		sensor.attach(robot, DropPosition(ev.Point, robot.ClientRect(), sensor.el.Size()))
		s.instruction.Text = fmt.Sprintf("Placed %s on the robot!", sensor.name)
		return
	}
	sensor.stow(s.tray)
	s.instruction.Text = fmt.Sprintf("Returned %s to the tray.", sensor.name)
}

func (s *Simulation) sensorByElement(el *scene.Element) *Sensor {
	for _, sensor := range s.sensors {
		if sensor.el == el {
			return sensor
		}
	}
	return nil
}
