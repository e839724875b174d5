// internal/config/config.go
package config

type Config struct {
	Regulator RegulatorConfig `yaml:"regulator"`
	Drive     DriveConfig     `yaml:"drive"`
	Sensor    SensorConfig    `yaml:"sensor"`
	Display   DisplayConfig   `yaml:"display"`
	Buttons   ButtonsConfig   `yaml:"buttons"`
	Control   ControlConfig   `yaml:"control"`

	// Status mirror (optional, opt-in)
	Status *StatusConfig `yaml:"status"`
}

type RegulatorConfig struct {
	TickHz int `yaml:"tick_hz"`
}

// ---- DRIVE ----

type DriveConfig struct {
	Port      string `yaml:"port"` // empty => first serial port found
	BaudRate  int    `yaml:"baud_rate"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
	Debug     bool   `yaml:"debug"`

	Registers RegistersConfig `yaml:"registers"`
	Setpoint  SetpointConfig  `yaml:"setpoint"`
	Startup   StartupConfig   `yaml:"startup"`
}

// RegistersConfig uses pointers because address 0 is a real register.
type RegistersConfig struct {
	Control         *uint16 `yaml:"control"`
	Frequency       *uint16 `yaml:"frequency"`
	Status          *uint16 `yaml:"status"`
	OutputFrequency *uint16 `yaml:"output_frequency"`
	Current         *uint16 `yaml:"current"`
}

type SetpointConfig struct {
	Attempts       int `yaml:"attempts"`
	PollDelayTicks int `yaml:"poll_delay_ticks"`
}

type StartupConfig struct {
	ReadyWord   uint16 `yaml:"ready_word"`
	StartWord   uint16 `yaml:"start_word"`
	SettleTicks int    `yaml:"settle_ticks"`
}

// ---- SENSOR ----

type SensorConfig struct {
	Bus               string `yaml:"bus"` // empty => first I2C bus
	Address           uint16 `yaml:"address"`
	Register          uint8  `yaml:"register"`
	SamplePeriodTicks int    `yaml:"sample_period_ticks"`
}

// ---- DISPLAY ----

type DisplayConfig struct {
	Bus     string `yaml:"bus"` // empty => sensor bus
	Address uint8  `yaml:"address"`
	Width   uint8  `yaml:"width"`
	Height  uint8  `yaml:"height"`
}

// ---- BUTTONS ----

type ButtonsConfig struct {
	Mode          ButtonConfig `yaml:"mode"`
	Up            ButtonConfig `yaml:"up"`
	Down          ButtonConfig `yaml:"down"`
	DebounceTicks int          `yaml:"debounce_ticks"`
	RepeatEvery   int          `yaml:"repeat_every"` // held polls per auto-repeat step
}

type ButtonConfig struct {
	Pin       string `yaml:"pin"` // empty => button not fitted
	ActiveLow bool   `yaml:"active_low"`
}

// ---- CONTROL ----

type ControlConfig struct {
	GoalTimeoutTicks int `yaml:"goal_timeout_ticks"`
	ErrorBannerTicks int `yaml:"error_banner_ticks"`
}

// ---- STATUS ----

type StatusConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	BaseSlot  uint16 `yaml:"base_slot"`
	Name      string `yaml:"name"`
	TimeoutMs int    `yaml:"timeout_ms"`
}
