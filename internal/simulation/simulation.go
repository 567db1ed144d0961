package simulation

import (
	"log"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"sensorbot-sim/internal/config"
	"sensorbot-sim/internal/scene"
)

// Scene element IDs the controller needs.
const (
	IDDesignScreen     = "design-screen"
	IDSimulationScreen = "simulation-screen"
	IDModeToggle       = "mode-toggle"
	IDInstruction      = "instruction"
	IDRobot            = "robot"
	IDSensorTray       = "sensor-tray"
	IDResetDesign      = "reset-btn"
	IDRobotSim         = "robot-sim"
	IDMapSim           = "map-sim"
	IDResetSim         = "reset-sim"
)

// RequiredElements lists every element that must exist before any input
// is wired.
var RequiredElements = []string{
	IDDesignScreen, IDSimulationScreen, IDModeToggle, IDInstruction,
	IDRobot, IDSensorTray, IDResetDesign,
	IDRobotSim, IDMapSim, IDResetSim,
}

// State is the controller's mutable application state.
type State struct {
	Mode   Mode
	Drag   *DragSession // nil when idle
	Design DriveState
	Sim    DriveState
}

// Simulation wires the design and simulation interactions onto a scene.
type Simulation struct {
	doc   *scene.Document
	state State

	params     DriveParams
	defaultPos r2.Vec
	keys       map[scene.Key]Command

	designScreen *scene.Element
	simScreen    *scene.Element
	modeButton   *scene.Element
	instruction  *scene.Element
	tray         *scene.Element
	resetDesign  *scene.Element
	resetSim     *scene.Element

	designRobot *Robot
	simRobot    *Robot
	sensors     []*Sensor
}

// NewSimulation resolves the required elements of doc and wires the input
// handlers. If any element is missing it returns a
// *scene.MissingElementsError and leaves doc without listeners.
func NewSimulation(doc *scene.Document, cfg config.Config) (*Simulation, error) {
	resolved := make(map[string]*scene.Element, len(RequiredElements))
	var missing []string
	for _, id := range RequiredElements {
		el := doc.GetElementByID(id)
		if el == nil {
			missing = append(missing, id)
			continue
		}
		resolved[id] = el
	}
	if len(missing) > 0 {
		return nil, &scene.MissingElementsError{IDs: missing}
	}

	s := &Simulation{
		doc: doc,
		params: DriveParams{
			Speed:     cfg.Drive.Speed,
			TurnStep:  cfg.Drive.TurnStep,
			WheelStep: cfg.Drive.WheelStep,
		},
		defaultPos:   r2.Vec{X: cfg.Drive.DefaultPosition[0], Y: cfg.Drive.DefaultPosition[1]},
		keys:         keyMap(cfg.Keys),
		designScreen: resolved[IDDesignScreen],
		simScreen:    resolved[IDSimulationScreen],
		modeButton:   resolved[IDModeToggle],
		instruction:  resolved[IDInstruction],
		tray:         resolved[IDSensorTray],
		resetDesign:  resolved[IDResetDesign],
		resetSim:     resolved[IDResetSim],
		designRobot:  newRobot(resolved[IDRobot], nil),
		simRobot:     newRobot(resolved[IDRobotSim], resolved[IDMapSim]),
	}
	for _, el := range doc.ElementsByClass(ClassSensor) {
		s.sensors = append(s.sensors, NewSensor(el))
	}
	s.state.Design = s.designRobot.initialState()
	s.state.Sim = s.simRobot.initialState()

	s.wire()
	s.SetMode(ModeDesign)

	log.Printf("sensorbot: controller attached (%d sensors, mode=%s)", len(s.sensors), s.state.Mode)
	return s, nil
}

func keyMap(k config.Keys) map[scene.Key]Command {
	m := make(map[scene.Key]Command, 3+len(k.Inert))
	for _, key := range k.Inert {
		m[scene.Key(key)] = CommandInert
	}
	m[scene.Key(k.Forward)] = CommandForward
	m[scene.Key(k.TurnLeft)] = CommandTurnLeft
	m[scene.Key(k.TurnRight)] = CommandTurnRight
	return m
}

func (s *Simulation) wire() {
	root := s.doc.Root()
	for _, sensor := range s.sensors {
		s.doc.AddEventListener(sensor.el, scene.PointerDown, s.onSensorPointerDown)
	}
	s.doc.AddEventListener(root, scene.PointerMove, s.onPointerMove)
	s.doc.AddEventListener(root, scene.PointerUp, s.onPointerUp)
	s.doc.AddEventListener(root, scene.KeyDown, s.onKeyDown)

	s.doc.AddEventListener(s.modeButton, scene.Click, func(*scene.Event) { s.ToggleMode() })
	s.doc.AddEventListener(s.resetDesign, scene.Click, func(*scene.Event) { s.ResetDesign() })
	s.doc.AddEventListener(s.resetSim, scene.Click, func(*scene.Event) { s.ResetSimulation() })
}

// State returns a snapshot of the application state.
func (s *Simulation) State() State { return s.state }

// Sensors returns the sensors in declaration order.
func (s *Simulation) Sensors() []*Sensor { return slices.Clone(s.sensors) }

// Tray returns the neutral tray element.
func (s *Simulation) Tray() *scene.Element { return s.tray }

// DesignRobot returns the robot sensors are placed on.
func (s *Simulation) DesignRobot() *Robot { return s.designRobot }

// SimRobot returns the robot driven in simulation mode.
func (s *Simulation) SimRobot() *Robot { return s.simRobot }

// Instruction returns the instruction text currently shown.
func (s *Simulation) Instruction() string { return s.instruction.Text }

func (s *Simulation) onKeyDown(ev *scene.Event) {
	if s.state.Mode != ModeSimulation {
		return
	}
	cmd, ok := s.keys[ev.Key]
	if !ok {
		return
	}
	ev.PreventDefault()
	if cmd == CommandInert {
		return
	}
	s.Drive(cmd)
}

// Drive applies one command to the simulation robot and renders the result.
func (s *Simulation) Drive(cmd Command) {
	next, moved := s.state.Sim.Step(cmd, s.params, s.simRobot.Limit())
	s.state.Sim = next
	s.simRobot.applyPose(next)
	if moved {
		s.simRobot.applyWheels(next.WheelSpin)
	}
}

// ResetDesign returns every sensor to the tray and zeroes the design
// robot's wheels.
func (s *Simulation) ResetDesign() {
	s.state.Drag = nil
	for _, sensor := range s.sensors {
		sensor.stow(s.tray)
	}
	s.state.Design.WheelSpin = 0
	s.designRobot.applyWheels(0)
	s.instruction.Text = DesignInstruction
}

// ResetSimulation puts the simulation robot back at its default pose.
func (s *Simulation) ResetSimulation() {
	s.state.Sim = DriveState{Pose: Pose{Position: s.defaultPos}}
	s.simRobot.applyPose(s.state.Sim)
	s.simRobot.applyWheels(0)
	s.instruction.Text = SimulationInstruction
}
