// internal/control/auto.go
package control

import (
	"errors"

	"github.com/tamzrod/pressure-regulator/internal/sensor"
	"github.com/tamzrod/pressure-regulator/internal/x/mathx"
)

// FrequencyPerPercent converts the operator speed dial (0..100) to drive
// frequency units.
const FrequencyPerPercent = 200

// MaxFrequency is the frequency commanded at 100% speed.
const MaxFrequency = 100 * FrequencyPerPercent

// ErrZeroBaseline is returned by Adjust when the baseline sample is zero.
// The adjustment cycle must be skipped and the previous setpoint kept.
var ErrZeroBaseline = errors.New("control: zero baseline sample")

// Commander commands a drive frequency and reports whether the drive
// confirmed it.
type Commander interface {
	SetFrequency(freq uint16) bool
}

// Goal is the current automatic-mode target.
type Goal struct {
	Target    int    // pressure
	Frequency uint16 // last commanded
	Reached   bool
}

// Auto is the automatic-mode controller. It is a plain proportional ratio
// against a baseline sample, not a tuned control law.
type Auto struct {
	drive    Commander
	baseline int16
	goal     Goal
}

// NewAuto captures baseline as the reference sample.
func NewAuto(drive Commander, baseline sensor.Raw) *Auto {
	return &Auto{
		drive:    drive,
		baseline: sensor.Decode(baseline),
	}
}

// Baseline returns the decoded reference sample.
func (a *Auto) Baseline() int16 {
	return a.baseline
}

// NewGoal arms goal tracking for target, starting from freq.
func (a *Auto) NewGoal(target int, freq uint16) {
	a.goal = Goal{Target: target, Frequency: freq}
}

// Goal returns the current goal.
func (a *Auto) Goal() Goal {
	return a.goal
}

// GoalReached reports whether a frequency was confirmed at-setpoint
// since the last NewGoal.
func (a *Auto) GoalReached() bool {
	return a.goal.Reached
}

// Adjust computes the next frequency from a live sample:
//
//	base  = speed * FrequencyPerPercent
//	ratio = live / baseline           (integer division)
//	freq  = base + base*ratio         (clamped to 0..MaxFrequency)
//
// target is recorded on the goal; the ratio carries no setpoint error term.
func (a *Auto) Adjust(raw sensor.Raw, target, speed int) (uint16, error) {
	if a.baseline == 0 {
		return a.goal.Frequency, ErrZeroBaseline
	}

	a.goal.Target = target

	live := int(sensor.Decode(raw))
	ratio := live / int(a.baseline)
	base := speed * FrequencyPerPercent

	freq := mathx.Clamp(base+base*ratio, 0, MaxFrequency)
	return uint16(freq), nil
}

// Apply commands freq through the drive and records the outcome.
// Once reached, a goal stays reached until the next NewGoal.
func (a *Auto) Apply(freq uint16) bool {
	ok := a.drive.SetFrequency(freq)
	a.goal.Frequency = freq
	if ok {
		a.goal.Reached = true
	}
	return ok
}
