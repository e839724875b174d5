// internal/input/button.go
package input

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// levelReader is the part of gpio.PinIn a Button samples.
type levelReader interface {
	Read() gpio.Level
}

// Button is one push button on a GPIO line.
type Button struct {
	pin       levelReader
	activeLow bool
	name      string
}

// Open looks up a GPIO line by name and configures it as an input.
// Active-low buttons get the internal pull-up, active-high ones the pull-down.
func Open(name string, activeLow bool) (*Button, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("input: gpio %q not found", name)
	}

	pull := gpio.PullDown
	if activeLow {
		pull = gpio.PullUp
	}
	if err := p.In(pull, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("input: configure %s: %w", name, err)
	}

	return &Button{pin: p, activeLow: activeLow, name: p.Name()}, nil
}

// Pressed reports the current level, true while the button is down.
func (b *Button) Pressed() bool {
	high := b.pin.Read() == gpio.High
	return high != b.activeLow
}

func (b *Button) String() string {
	return b.name
}
