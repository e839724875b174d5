// internal/regulator/loop.go
package regulator

import (
	"context"
	"errors"
	"log"

	"github.com/tamzrod/pressure-regulator/internal/control"
	"github.com/tamzrod/pressure-regulator/internal/drive"
	"github.com/tamzrod/pressure-regulator/internal/menu"
	"github.com/tamzrod/pressure-regulator/internal/sensor"
	"github.com/tamzrod/pressure-regulator/internal/status"
)

// GoalBanner is shown when an automatic goal is not confirmed in time.
const GoalBanner = "Can`t reach psa"

// ---- collaborators ----

type Drive interface {
	SetFrequency(freq uint16) bool
	ReadTelemetry() (drive.Telemetry, error)
}

type Sensor interface {
	Read() (sensor.Raw, error)
}

// Clock is the loop side of the tick service.
type Clock interface {
	Elapsed() uint64
	SensorDue() bool
	ResetSensor(period int)
	Expired(ceiling int64) bool
	ResetTimeout()
}

// Publisher receives a status snapshot once per pass. It must not block.
type Publisher interface {
	Publish(s status.Snapshot)
}

type Config struct {
	SamplePeriod int   // ticks between manual-mode samples
	GoalTimeout  int64 // ticks before an unconfirmed goal is reported
	TickHz       int   // for seconds-in-error
}

// Loop is the controller's main loop. One Step is one pass.
type Loop struct {
	cfg    Config
	clock  Clock
	menu   *menu.Menu
	auto   *control.Auto
	drive  Drive
	sensor Sensor
	pub    Publisher

	snap       status.Snapshot
	errorSince uint64

	// per-pass fault tracking
	passFault uint16
	passOK    bool
}

func New(cfg Config, clock Clock, m *menu.Menu, auto *control.Auto, d Drive, s Sensor, pub Publisher) *Loop {
	if cfg.TickHz <= 0 {
		cfg.TickHz = 1000
	}
	return &Loop{
		cfg:    cfg,
		clock:  clock,
		menu:   m,
		auto:   auto,
		drive:  d,
		sensor: s,
		pub:    pub,
		snap:   status.Snapshot{Health: status.HealthUnknown},
	}
}

// Run draws the initial view and steps until ctx is done.
// A pass in progress always completes; cancellation is seen between passes.
func (l *Loop) Run(ctx context.Context) error {
	l.menu.Render()
	l.publish()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			l.Step()
		}
	}
}

// Step runs one pass: input, sample or adjust, refresh.
func (l *Loop) Step() {
	l.passFault, l.passOK = status.FaultNone, false

	l.menu.CheckInputs()

	switch l.menu.Mode() {
	case menu.Manual:
		if l.clock.SensorDue() {
			l.clock.ResetSensor(l.cfg.SamplePeriod)
			l.manualSample()
		}
	case menu.Automatic:
		l.automatic()
	}

	if l.menu.HasNewValue() {
		if l.menu.Mode() == menu.Manual {
			l.heartbeat()
		}
		l.menu.Render()
	}

	l.publish()
}

// ---- manual ----

// manualSample shows the measured pressure and re-sends the dialled
// frequency so the drive link stays alive.
func (l *Loop) manualSample() {
	raw, err := l.sensor.Read()
	if err != nil {
		// raw is the last good sample; keep going with it
		l.fail(status.FaultSensorRead, err)
	} else {
		l.ok()
	}

	r := sensor.Sample(raw)
	l.menu.SetPressure(r.Pressure)

	l.heartbeat()

	t, err := l.drive.ReadTelemetry()
	if err != nil {
		l.fail(status.FaultDriveRead, err)
		return
	}
	log.Printf(
		"sample (pressure=%d speed=%d out_freq=%d current=%d)",
		r.Pressure,
		l.menu.Speed(),
		t.OutputFrequency,
		t.Current,
	)
}

func (l *Loop) heartbeat() {
	freq := uint16(l.menu.Speed() * control.FrequencyPerPercent)
	l.command(freq)
}

// ---- automatic ----

func (l *Loop) automatic() {
	if l.menu.HasNewGoal() {
		l.clock.ResetTimeout()
		l.auto.NewGoal(l.menu.Pressure(), uint16(l.menu.Speed()*control.FrequencyPerPercent))
	}

	if l.clock.Expired(l.cfg.GoalTimeout) && !l.auto.GoalReached() {
		l.fail(status.FaultGoalTimeout, errors.New("goal not confirmed"))
		l.menu.Error(GoalBanner)
		l.clock.ResetTimeout()
	}

	raw, err := l.sensor.Read()
	if err != nil {
		l.fail(status.FaultSensorRead, err)
	}

	freq, err := l.auto.Adjust(raw, l.menu.Pressure(), l.menu.Speed())
	if err != nil {
		// keep the previous setpoint
		l.fail(status.FaultZeroBaseline, err)
		return
	}

	if l.auto.Apply(freq) {
		l.ok()
	} else {
		l.fail(status.FaultSetpoint, nil)
	}
	l.snap.Frequency = freq

	l.menu.SetSpeed(int(freq) / control.FrequencyPerPercent)
}

// command sends freq and records the outcome. Not reaching the setpoint
// is reported but does not stop the pass.
func (l *Loop) command(freq uint16) {
	if l.drive.SetFrequency(freq) {
		l.ok()
	} else {
		l.fail(status.FaultSetpoint, nil)
	}
	l.snap.Frequency = freq
}

// ---- status ----

func (l *Loop) ok() {
	l.passOK = true
}

// fail records code for this pass; the first fault of a pass wins.
// Only a change of fault is logged.
func (l *Loop) fail(code uint16, err error) {
	if l.passFault != status.FaultNone {
		return
	}
	l.passFault = code
	if code != l.snap.LastErrorCode && err != nil {
		log.Printf("fault %d (mode=%s): %v", code, l.menu.Mode(), err)
	}
}

func (l *Loop) publish() {
	s := l.snap
	now := l.clock.Elapsed()

	switch {
	case l.passFault != status.FaultNone:
		if s.Health != status.HealthError {
			l.errorSince = now
		}
		s.Health = status.HealthError
		s.LastErrorCode = l.passFault
	case l.passOK:
		s.Health = status.HealthOK
		s.LastErrorCode = status.FaultNone
	}

	s.SecondsInError = 0
	if s.Health == status.HealthError {
		secs := (now - l.errorSince) / uint64(l.cfg.TickHz)
		if secs > 65535 {
			secs = 65535
		}
		s.SecondsInError = uint16(secs)
	}

	s.Mode = uint16(l.menu.Mode())
	s.Speed = uint16(l.menu.Speed())
	s.Pressure = uint16(l.menu.Pressure())
	s.AtSetpoint = 0
	if l.menu.Mode() == menu.Automatic && l.auto.GoalReached() {
		s.AtSetpoint = 1
	}

	l.snap = s
	if l.pub != nil {
		l.pub.Publish(s)
	}
}

// Snapshot returns the status published by the last pass.
func (l *Loop) Snapshot() status.Snapshot {
	return l.snap
}
