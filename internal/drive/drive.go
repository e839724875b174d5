// internal/drive/drive.go
package drive

import (
	"fmt"
	"log"

	"github.com/tamzrod/pressure-regulator/internal/timer"
)

// Registers holds the drive register map.
type Registers struct {
	Control         uint16
	Frequency       uint16
	Status          uint16
	OutputFrequency uint16
	Current         uint16
}

// Config is the runtime config the drive needs.
type Config struct {
	Registers Registers

	// setpoint wait
	Attempts  int
	PollDelay int // ticks

	// startup sequence
	ReadyWord   uint16
	StartWord   uint16
	SettleTicks int
}

// Telemetry is one read of the drive's output registers.
type Telemetry struct {
	OutputFrequency uint16
	Current         uint16
}

// Drive commands a variable-frequency drive over a Channel.
type Drive struct {
	cfg Config
	ch  *Channel

	control   Register
	frequency Register
	status    Register
	outFreq   Register
	current   Register

	sleeper timer.Sleeper
}

// New binds the register map to client.
func New(cfg Config, client Client, sleeper timer.Sleeper) *Drive {
	r := cfg.Registers
	return &Drive{
		cfg:       cfg,
		ch:        NewChannel(sleeper),
		control:   NewRegister(client, r.Control),
		frequency: NewRegister(client, r.Frequency),
		status:    NewRegister(client, r.Status),
		outFreq:   NewRegister(client, r.OutputFrequency),
		current:   NewRegister(client, r.Current),
		sleeper:   sleeper,
	}
}

// Start puts the drive into the ready state, then into run mode,
// letting it settle after each control word.
func (d *Drive) Start() error {
	if err := d.ch.Write(d.control, d.cfg.ReadyWord); err != nil {
		return fmt.Errorf("drive start: ready: %w", err)
	}
	d.sleeper.Sleep(d.cfg.SettleTicks)

	if err := d.ch.Write(d.control, d.cfg.StartWord); err != nil {
		return fmt.Errorf("drive start: run: %w", err)
	}
	d.sleeper.Sleep(d.cfg.SettleTicks)

	return nil
}

// SetFrequency commands freq and waits for the at-setpoint bit.
// A false return is an outcome, not an error.
func (d *Drive) SetFrequency(freq uint16) bool {
	ok := d.ch.SetAndConfirm(d.frequency, d.status, freq, d.cfg.Attempts, d.cfg.PollDelay)
	if !ok {
		log.Printf("drive: setpoint not confirmed (freq=%d attempts=%d)", freq, d.cfg.Attempts)
	}
	return ok
}

// ReadTelemetry reads output frequency and motor current.
// All-or-nothing: any failure aborts the read.
func (d *Drive) ReadTelemetry() (Telemetry, error) {
	f, err := d.outFreq.Read()
	if err != nil {
		return Telemetry{}, err
	}
	c, err := d.current.Read()
	if err != nil {
		return Telemetry{}, err
	}
	return Telemetry{OutputFrequency: f, Current: c}, nil
}
