// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values are legal wherever Normalize supplies a default.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	if cfg.Regulator.TickHz < 0 {
		return fmt.Errorf("regulator: tick_hz must not be negative (got %d)", cfg.Regulator.TickHz)
	}

	// ------------------------------------------------------------
	// DRIVE
	// ------------------------------------------------------------

	d := cfg.Drive
	if d.BaudRate < 0 {
		return fmt.Errorf("drive: baud_rate must not be negative (got %d)", d.BaudRate)
	}
	if d.UnitID > 247 {
		return fmt.Errorf("drive: unit_id %d out of range 1..247", d.UnitID)
	}
	if d.TimeoutMs < 0 {
		return fmt.Errorf("drive: timeout_ms must not be negative (got %d)", d.TimeoutMs)
	}
	if d.Setpoint.Attempts < 0 || d.Setpoint.PollDelayTicks < 0 {
		return fmt.Errorf(
			"drive: setpoint attempts=%d poll_delay_ticks=%d must not be negative",
			d.Setpoint.Attempts,
			d.Setpoint.PollDelayTicks,
		)
	}
	if d.Startup.SettleTicks < 0 {
		return fmt.Errorf("drive: startup settle_ticks must not be negative (got %d)", d.Startup.SettleTicks)
	}

	freq := regOr(d.Registers.Frequency, DefaultFrequencyRegister)
	stat := regOr(d.Registers.Status, DefaultStatusRegister)
	ctrl := regOr(d.Registers.Control, DefaultControlRegister)
	if freq == stat || freq == ctrl || stat == ctrl {
		return fmt.Errorf(
			"drive: registers must be distinct: control=%d frequency=%d status=%d",
			ctrl,
			freq,
			stat,
		)
	}

	// ------------------------------------------------------------
	// SENSOR + DISPLAY
	// ------------------------------------------------------------

	if cfg.Sensor.Address > 0x7F {
		return fmt.Errorf("sensor: address 0x%X is not a 7-bit I2C address", cfg.Sensor.Address)
	}
	if cfg.Sensor.SamplePeriodTicks < 0 {
		return fmt.Errorf("sensor: sample_period_ticks must not be negative (got %d)", cfg.Sensor.SamplePeriodTicks)
	}

	if cfg.Display.Address > 0x7F {
		return fmt.Errorf("display: address 0x%X is not a 7-bit I2C address", cfg.Display.Address)
	}
	if w := cfg.Display.Width; w != 0 && w != DisplayWidth {
		return fmt.Errorf("display: width must be %d (got %d)", DisplayWidth, w)
	}
	if h := cfg.Display.Height; h != 0 && h != DisplayHeight {
		return fmt.Errorf("display: height must be %d (got %d)", DisplayHeight, h)
	}
	if cfg.Display.Bus == "" || cfg.Display.Bus == cfg.Sensor.Bus {
		if cfg.Display.Address != 0 && uint16(cfg.Display.Address) == cfg.Sensor.Address {
			return fmt.Errorf("display: address 0x%X collides with sensor on the same bus", cfg.Display.Address)
		}
	}

	// ------------------------------------------------------------
	// BUTTONS
	// ------------------------------------------------------------

	b := cfg.Buttons
	if b.DebounceTicks < 0 || b.RepeatEvery < 0 {
		return fmt.Errorf(
			"buttons: debounce_ticks=%d repeat_every=%d must not be negative",
			b.DebounceTicks,
			b.RepeatEvery,
		)
	}

	pinOwner := make(map[string]string)
	for _, nb := range []struct {
		name string
		cfg  ButtonConfig
	}{
		{"mode", b.Mode},
		{"up", b.Up},
		{"down", b.Down},
	} {
		if nb.cfg.Pin == "" {
			continue
		}
		if prev, exists := pinOwner[nb.cfg.Pin]; exists {
			return fmt.Errorf("buttons: pin %s used by %q and %q", nb.cfg.Pin, prev, nb.name)
		}
		pinOwner[nb.cfg.Pin] = nb.name
	}

	// ------------------------------------------------------------
	// CONTROL
	// ------------------------------------------------------------

	if cfg.Control.GoalTimeoutTicks < 0 || cfg.Control.ErrorBannerTicks < 0 {
		return fmt.Errorf(
			"control: goal_timeout_ticks=%d error_banner_ticks=%d must not be negative",
			cfg.Control.GoalTimeoutTicks,
			cfg.Control.ErrorBannerTicks,
		)
	}

	// ------------------------------------------------------------
	// STATUS MIRROR (OPT-IN)
	// ------------------------------------------------------------

	if s := cfg.Status; s != nil {
		if s.Endpoint == "" {
			return fmt.Errorf("status: endpoint is required when status is set")
		}
		if s.UnitID > 247 {
			return fmt.Errorf("status: unit_id %d out of range 1..247", s.UnitID)
		}
		for i := 0; i < len(s.Name); i++ {
			if s.Name[i] > 0x7F {
				return fmt.Errorf("status: name must contain ASCII characters only")
			}
		}
	}

	return nil
}
