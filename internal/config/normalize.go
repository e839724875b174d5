// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Regulator.TickHz == 0 {
		cfg.Regulator.TickHz = DefaultTickHz
	}

	// ---- drive ----

	d := &cfg.Drive
	if d.BaudRate == 0 {
		d.BaudRate = DefaultBaudRate
	}
	if d.UnitID == 0 {
		d.UnitID = DefaultUnitID
	}
	if d.TimeoutMs == 0 {
		d.TimeoutMs = DefaultTimeoutMs
	}

	setReg(&d.Registers.Control, DefaultControlRegister)
	setReg(&d.Registers.Frequency, DefaultFrequencyRegister)
	setReg(&d.Registers.Status, DefaultStatusRegister)
	setReg(&d.Registers.OutputFrequency, DefaultOutputFrequencyRegister)
	setReg(&d.Registers.Current, DefaultCurrentRegister)

	if d.Setpoint.Attempts == 0 {
		d.Setpoint.Attempts = DefaultSetpointAttempts
	}
	if d.Setpoint.PollDelayTicks == 0 {
		d.Setpoint.PollDelayTicks = DefaultSetpointPollDelay
	}
	if d.Startup.ReadyWord == 0 {
		d.Startup.ReadyWord = DefaultReadyWord
	}
	if d.Startup.StartWord == 0 {
		d.Startup.StartWord = DefaultStartWord
	}
	if d.Startup.SettleTicks == 0 {
		d.Startup.SettleTicks = DefaultSettleTicks
	}

	// ---- sensor + display ----

	if cfg.Sensor.Address == 0 {
		cfg.Sensor.Address = DefaultSensorAddress
	}
	if cfg.Sensor.Register == 0 {
		cfg.Sensor.Register = DefaultSensorRegister
	}
	if cfg.Sensor.SamplePeriodTicks == 0 {
		cfg.Sensor.SamplePeriodTicks = DefaultSamplePeriodTicks
	}

	if cfg.Display.Bus == "" {
		cfg.Display.Bus = cfg.Sensor.Bus
	}
	if cfg.Display.Address == 0 {
		cfg.Display.Address = DefaultDisplayAddress
	}
	cfg.Display.Width = DisplayWidth
	cfg.Display.Height = DisplayHeight

	// ---- buttons + control ----

	if cfg.Buttons.DebounceTicks == 0 {
		cfg.Buttons.DebounceTicks = DefaultDebounceTicks
	}
	if cfg.Buttons.RepeatEvery == 0 {
		cfg.Buttons.RepeatEvery = DefaultRepeatEvery
	}
	if cfg.Control.GoalTimeoutTicks == 0 {
		cfg.Control.GoalTimeoutTicks = DefaultGoalTimeoutTicks
	}
	if cfg.Control.ErrorBannerTicks == 0 {
		cfg.Control.ErrorBannerTicks = DefaultErrorBannerTicks
	}

	// ------------------------------------------------------------
	// STATUS MIRROR NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	if s := cfg.Status; s != nil {
		if s.UnitID == 0 {
			s.UnitID = DefaultStatusUnitID
		}
		if s.TimeoutMs == 0 {
			s.TimeoutMs = DefaultStatusTimeoutMs
		}
		// ASCII already validated; truncate to max 16 characters
		if len(s.Name) > 16 {
			s.Name = s.Name[:16]
		}
	}
}

func setReg(p **uint16, def uint16) {
	if *p == nil {
		v := def
		*p = &v
	}
}
