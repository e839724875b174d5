// internal/status/constants.go
package status

// Controller status block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per controller.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the controller health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last fault code.
const SlotLastErrorCode = 1

// SlotSecondsInError holds the duration (in seconds) the controller has been in error.
const SlotSecondsInError = 2

// SlotMode holds 0 for manual, 1 for automatic.
const SlotMode = 3

// SlotSpeed holds the fan speed percentage.
const SlotSpeed = 4

// SlotPressure holds the displayed pressure.
const SlotPressure = 5

// SlotFrequency holds the last commanded drive frequency.
const SlotFrequency = 6

// SlotAtSetpoint is 1 once the current goal has been confirmed by the drive.
const SlotAtSetpoint = 7

// ---- RESERVED RANGE ----

// Slots 8-10 are reserved for future use.
const SlotReservedStart = 8
const SlotReservedEnd = 10

// ---- CONTROLLER NAME ----

// SlotDeviceNameStart is the first slot used for the controller name.
// The name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for the name.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown is the boot state, before the first loop pass.
const HealthUnknown uint16 = 0

// HealthOK means the last cycle completed without a fault.
const HealthOK uint16 = 1

// HealthError means the last cycle recorded a fault.
const HealthError uint16 = 2

// ---- FAULT CODES ----

const (
	FaultNone         uint16 = 0
	FaultSensorRead   uint16 = 1
	FaultZeroBaseline uint16 = 2
	FaultSetpoint     uint16 = 3
	FaultGoalTimeout  uint16 = 4
	FaultDriveRead    uint16 = 5
)
