// internal/control/auto_test.go
package control

import (
	"errors"
	"testing"

	"github.com/tamzrod/pressure-regulator/internal/sensor"
)

type fakeDrive struct {
	confirm bool
	sent    []uint16
}

func (f *fakeDrive) SetFrequency(freq uint16) bool {
	f.sent = append(f.sent, freq)
	return f.confirm
}

func raw(v int16) sensor.Raw {
	u := uint16(v)
	return sensor.Raw{byte(u >> 8), byte(u), 0}
}

func TestAdjust_Ratio(t *testing.T) {
	a := NewAuto(&fakeDrive{}, raw(100))

	cases := []struct {
		live  int16
		speed int
		want  uint16
	}{
		{50, 20, 4000},   // ratio 0 -> base
		{100, 20, 8000},  // ratio 1 -> 2*base
		{250, 20, 12000}, // ratio 2 -> 3*base
		{250, 50, 20000}, // 3*10000 clamped
		{-100, 20, 0},    // ratio -1 -> 0
		{-300, 20, 0},    // negative clamped
		{100, 0, 0},
	}

	for _, c := range cases {
		got, err := a.Adjust(raw(c.live), 60, c.speed)
		if err != nil {
			t.Fatalf("Adjust err=%v", err)
		}
		if got != c.want {
			t.Fatalf("live=%d speed=%d: got %d want %d", c.live, c.speed, got, c.want)
		}
	}
}

func TestAdjust_ZeroBaselineKeepsSetpoint(t *testing.T) {
	a := NewAuto(&fakeDrive{}, raw(0))
	a.NewGoal(40, 6000)

	got, err := a.Adjust(raw(500), 40, 30)
	if !errors.Is(err, ErrZeroBaseline) {
		t.Fatalf("expected ErrZeroBaseline, got %v", err)
	}
	if got != 6000 {
		t.Fatalf("expected previous setpoint 6000, got %d", got)
	}
}

func TestNewGoal_ClearsReached(t *testing.T) {
	d := &fakeDrive{confirm: true}
	a := NewAuto(d, raw(10))
	a.NewGoal(50, 10000)

	if a.GoalReached() {
		t.Fatalf("fresh goal must not be reached")
	}

	if !a.Apply(10000) {
		t.Fatalf("Apply should report confirmation")
	}
	if !a.GoalReached() {
		t.Fatalf("goal should be reached after confirmation")
	}

	// stays reached across unconfirmed commands
	d.confirm = false
	a.Apply(12000)
	if !a.GoalReached() {
		t.Fatalf("reached must latch until the next goal")
	}
	if a.Goal().Frequency != 12000 {
		t.Fatalf("last commanded frequency=%d want 12000", a.Goal().Frequency)
	}

	a.NewGoal(60, 12000)
	if a.GoalReached() {
		t.Fatalf("NewGoal must clear reached")
	}
}

func TestAdjust_RecordsTarget(t *testing.T) {
	a := NewAuto(&fakeDrive{}, raw(10))
	a.NewGoal(30, 0)
	if _, err := a.Adjust(raw(10), 45, 10); err != nil {
		t.Fatalf("Adjust err=%v", err)
	}
	if a.Goal().Target != 45 {
		t.Fatalf("target=%d want 45", a.Goal().Target)
	}
}
