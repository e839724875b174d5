// internal/menu/menu.go
package menu

import (
	"github.com/tamzrod/pressure-regulator/internal/timer"
	"github.com/tamzrod/pressure-regulator/internal/x/mathx"
)

// Mode selects what drives the commanded frequency.
type Mode int

const (
	Manual Mode = iota
	Automatic
)

func (m Mode) String() string {
	switch m {
	case Automatic:
		return "Automatic"
	default:
		return "Manual"
	}
}

// Value ranges.
const (
	SpeedMin    = 0
	SpeedMax    = 100
	PressureMin = 0
	PressureMax = 120
)

// Input is a debounced digital level, true while pressed.
type Input interface {
	Pressed() bool
}

// Buttons are the three operator inputs.
type Buttons struct {
	Mode Input
	Up   Input
	Down Input
}

// Config holds the input and banner timing.
type Config struct {
	DebounceTicks int // settle time before re-reading a pressed button
	RepeatEvery   int // held polls between auto-repeat steps; 0 disables repeat
	ErrorTicks    int // how long the error banner stays up
}

type button struct {
	in    Input
	held  bool
	count int // polls held; zero when released
}

// Menu is the operator interface state machine.
type Menu struct {
	cfg     Config
	display Display
	sleeper timer.Sleeper

	mode     Mode
	speed    int
	pressure int

	changed     Signal
	goalChanged Signal

	modeBtn  Input
	modeHeld bool
	up       button
	down     button
}

// New returns a Menu in Manual mode with both values at zero.
func New(cfg Config, buttons Buttons, display Display, sleeper timer.Sleeper) *Menu {
	return &Menu{
		cfg:     cfg,
		display: display,
		sleeper: sleeper,
		mode:    Manual,
		modeBtn: buttons.Mode,
		up:      button{in: buttons.Up},
		down:    button{in: buttons.Down},
	}
}

// ---- state ----

func (m *Menu) Mode() Mode    { return m.mode }
func (m *Menu) Speed() int    { return m.speed }
func (m *Menu) Pressure() int { return m.pressure }

// SetSpeed stores v clamped to 0..100. A change marks the display dirty.
func (m *Menu) SetSpeed(v int) {
	v = mathx.Clamp(v, SpeedMin, SpeedMax)
	if v != m.speed {
		m.speed = v
		m.changed.Raise()
	}
}

// SetPressure stores v clamped to 0..120. A change marks the display dirty.
func (m *Menu) SetPressure(v int) {
	v = mathx.Clamp(v, PressureMin, PressureMax)
	if v != m.pressure {
		m.pressure = v
		m.changed.Raise()
	}
}

// ToggleMode switches between Manual and Automatic. Entering Automatic
// also raises a new goal.
func (m *Menu) ToggleMode() {
	if m.mode == Manual {
		m.mode = Automatic
		m.goalChanged.Raise()
	} else {
		m.mode = Manual
	}
	m.changed.Raise()
}

// HasNewValue reports and clears a pending display change.
func (m *Menu) HasNewValue() bool {
	return m.changed.Consume()
}

// HasNewGoal reports and clears a pending automatic-mode goal.
func (m *Menu) HasNewGoal() bool {
	return m.goalChanged.Consume()
}

// ---- input ----

// CheckInputs polls all buttons once.
// While the mode button is held nothing else is processed.
func (m *Menu) CheckInputs() {
	if m.modeBtn != nil && m.modeBtn.Pressed() {
		if !m.modeHeld {
			m.modeHeld = true
			m.ToggleMode()
		}
		return
	}
	m.modeHeld = false

	m.poll(&m.up, +1)
	m.poll(&m.down, -1)
}

func (m *Menu) poll(b *button, delta int) {
	if b.in == nil {
		return
	}

	level := b.in.Pressed()
	if level {
		m.sleeper.Sleep(m.cfg.DebounceTicks)
		level = b.in.Pressed()
	}

	if level {
		b.held = true
		b.count++
		if m.cfg.RepeatEvery > 0 && b.count%m.cfg.RepeatEvery == 0 {
			m.step(delta)
		}
		return
	}

	if b.held {
		b.held = false
		b.count = 0
		m.step(delta)
	}
}

// step moves the value the current mode edits. In Automatic the value is
// the target pressure, so a change is also a new goal.
func (m *Menu) step(delta int) {
	switch m.mode {
	case Manual:
		m.SetSpeed(m.speed + delta)
	case Automatic:
		before := m.pressure
		m.SetPressure(m.pressure + delta)
		if m.pressure != before {
			m.goalChanged.Raise()
		}
	}
}
