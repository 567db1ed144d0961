package simulation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/common"
)

// Command is a drive instruction decoded from a key press.
type Command int

const (
	CommandNone Command = iota
	CommandForward
	CommandTurnLeft
	CommandTurnRight
	// CommandInert is a recognised key with no effect.
	CommandInert
)

// DriveParams are the per-event increments of the driver.
type DriveParams struct {
	Speed     float64 // px per forward step
	TurnStep  float64 // degrees per turn step
	WheelStep float64 // degrees of wheel spin per forward step
}

// Pose is a robot's placement on its map.
type Pose struct {
	Position r2.Vec  // top-left corner, map-local px
	Heading  float64 // degrees clockwise from north, unbounded
}

// DriveState is a pose plus the accumulated wheel spin.
type DriveState struct {
	Pose
	WheelSpin float64 // degrees
}

// Step integrates one command and clamps the position to [0, limit].
// It reports whether the robot moved forward.
func (s DriveState) Step(cmd Command, p DriveParams, limit r2.Vec) (DriveState, bool) {
	moved := false
	switch cmd {
	case CommandForward:
		rad := common.Radians(s.Heading)
		s.Position = r2.Add(s.Position, r2.Vec{
			X: math.Sin(rad) * p.Speed,
			Y: -math.Cos(rad) * p.Speed,
		})
		moved = true
	case CommandTurnLeft:
		s.Heading -= p.TurnStep
	case CommandTurnRight:
		s.Heading += p.TurnStep
	default:
		return s, false
	}

	s.Position = common.ClampVec(s.Position, r2.Vec{}, limit)
	if moved {
		s.WheelSpin += p.WheelStep
	}
	return s, moved
}

// String representation for logging
func (s DriveState) String() string {
	return fmt.Sprintf("Pos: [%.1f, %.1f] Heading: %.1f Wheels: %.1f",
		s.Position.X, s.Position.Y, s.Heading, s.WheelSpin)
}
