package simulation

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/scene"
)

// Scene classes written by the placer.
const (
	ClassSensor   = "sensor"
	ClassDragging = "dragging"
	ClassAttached = "attached"
)

// dragZIndex lifts a dragged sensor above everything else.
const dragZIndex = 9999

// Placement is the container a sensor belongs to.
type Placement int

const (
	InTray Placement = iota
	Attached
)

func (p Placement) String() string {
	if p == Attached {
		return "attached"
	}
	return "in-tray"
}

// Sensor is a draggable sensor item.
type Sensor struct {
	id        string
	name      string
	el        *scene.Element
	placement Placement
}

// NewSensor wraps a sensor element. The display name comes from the
// element's "name" data attribute.
func NewSensor(el *scene.Element) *Sensor {
	placement := InTray
	if el.HasClass(ClassAttached) {
		placement = Attached
	}
	return &Sensor{
		id:        fmt.Sprintf("sensor-%s", uuid.NewString()[:8]),
		name:      el.DataValue("name", "sensor"),
		el:        el,
		placement: placement,
	}
}

// GetID returns the sensor's stable identity.
func (s *Sensor) GetID() string { return s.id }

// Key returns the scene element ID the sensor was declared with.
func (s *Sensor) Key() string { return s.el.ID }

// Name returns the display name.
func (s *Sensor) Name() string { return s.name }

// Element returns the sensor's scene element.
func (s *Sensor) Element() *scene.Element { return s.el }

// Placement returns the container the sensor belongs to.
func (s *Sensor) Placement() Placement { return s.placement }

// Position returns the sensor's offset: robot-relative when attached,
// zero in the tray, viewport coordinates while dragging.
func (s *Sensor) Position() r2.Vec { return s.el.Offset() }

// Dragging reports whether the sensor is following the pointer.
func (s *Sensor) Dragging() bool { return s.el.HasClass(ClassDragging) }

// float lifts the sensor out of layout at client position p without
// changing its container.
func (s *Sensor) float(p r2.Vec) {
	s.el.Position = scene.Fixed
	s.el.SetOffset(p)
	s.el.ZIndex = dragZIndex
	s.el.PassThrough = true
	s.el.AddClass(ClassDragging)
}

func (s *Sensor) settle() {
	s.el.ZIndex = 0
	s.el.PassThrough = false
	s.el.RemoveClass(ClassDragging)
}

// attach parents the sensor onto robot at robot-relative position p.
func (s *Sensor) attach(robot *scene.Element, p r2.Vec) {
	robot.AppendChild(s.el)
	s.el.Position = scene.Absolute
	s.el.SetOffset(p)
	s.settle()
	s.el.AddClass(ClassAttached)
	s.placement = Attached
}

// stow returns the sensor to the tray's natural flow.
func (s *Sensor) stow(tray *scene.Element) {
	tray.AppendChild(s.el)
	s.el.Position = scene.Relative
	s.el.SetOffset(r2.Vec{})
	s.settle()
	s.el.RemoveClass(ClassAttached)
	s.placement = InTray
}

// String representation for logging
func (s *Sensor) String() string {
	return fmt.Sprintf("Sensor[%s] %s (%s) Pos: [%.1f, %.1f]", s.id, s.name, s.placement, s.el.Left, s.el.Top)
}
