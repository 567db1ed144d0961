package simulation

// Mode selects which interactions are live.
type Mode int

const (
	ModeDesign Mode = iota
	ModeSimulation
)

func (m Mode) String() string {
	if m == ModeSimulation {
		return "simulation"
	}
	return "design"
}

// Text shown in the mode button and instruction area.
const (
	DesignInstruction     = "Design Mode: Drag sensors onto the robot."
	SimulationInstruction = "Simulation Mode: Use arrow keys to move the robot."
	switchToDesign        = "Switch to Design Mode"
	switchToSimulation    = "Switch to Simulation Mode"
)

// SetMode shows the screen belonging to m and updates the button and
// instruction text. Entering simulation moves keyboard focus to the page
// body. Placements and poses are left untouched.
func (s *Simulation) SetMode(m Mode) {
	s.state.Mode = m

	sim := m == ModeSimulation
	s.designScreen.Hidden = sim
	s.simScreen.Hidden = !sim
	if sim {
		s.modeButton.Text = switchToDesign
		s.instruction.Text = SimulationInstruction
		s.doc.Focus(s.doc.Root())
		return
	}
	s.modeButton.Text = switchToSimulation
	s.instruction.Text = DesignInstruction
}

// ToggleMode switches between design and simulation.
func (s *Simulation) ToggleMode() {
	if s.state.Mode == ModeSimulation {
		s.SetMode(ModeDesign)
		return
	}
	s.SetMode(ModeSimulation)
}
