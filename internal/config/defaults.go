// internal/config/defaults.go
package config

// Defaults applied by Normalize. Durations are in ticks.
const (
	DefaultTickHz = 1000

	DefaultBaudRate  = 9600
	DefaultUnitID    = 2
	DefaultTimeoutMs = 1000

	DefaultControlRegister         uint16 = 0
	DefaultFrequencyRegister       uint16 = 1
	DefaultStatusRegister          uint16 = 3
	DefaultOutputFrequencyRegister uint16 = 102
	DefaultCurrentRegister         uint16 = 103

	DefaultSetpointAttempts  = 20
	DefaultSetpointPollDelay = 500

	DefaultReadyWord   uint16 = 0x0406
	DefaultStartWord   uint16 = 0x047F
	DefaultSettleTicks        = 1000

	DefaultSensorAddress      uint16 = 0x40
	DefaultSensorRegister     uint8  = 0xF1
	DefaultSamplePeriodTicks         = 1000

	DefaultDisplayAddress uint8 = 0x27
	DisplayWidth          uint8 = 16
	DisplayHeight         uint8 = 2

	DefaultDebounceTicks = 3
	DefaultRepeatEvery   = 800

	DefaultGoalTimeoutTicks = 15000
	DefaultErrorBannerTicks = 2000

	DefaultStatusUnitID    = 1
	DefaultStatusTimeoutMs = 1000
)

func regOr(p *uint16, def uint16) uint16 {
	if p == nil {
		return def
	}
	return *p
}
