// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/pressure-regulator/internal/config"
	wmodbus "github.com/tamzrod/pressure-regulator/internal/writer/modbus"
)

// BuildPlan converts the status section into a StatusPlan.
// A nil section yields a nil plan (mirror disabled).
func BuildPlan(s *cfg.StatusConfig) (*StatusPlan, error) {
	if s == nil {
		return nil, nil
	}
	if s.Endpoint == "" {
		return nil, errors.New("writer: status.endpoint required")
	}

	return &StatusPlan{
		Endpoint:   s.Endpoint,
		UnitID:     s.UnitID,
		BaseSlot:   s.BaseSlot,
		DeviceName: s.Name,
	}, nil
}

// BuildMirror connects to the status endpoint and returns a ready Mirror.
// A nil section returns a nil Mirror and a no-op closer.
func BuildMirror(s *cfg.StatusConfig) (*Mirror, func() error, error) {
	plan, err := BuildPlan(s)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, func() error { return nil }, nil
	}

	c, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: plan.Endpoint,
		Timeout:  time.Duration(s.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	sw, _ := NewDeviceStatusWriter(plan, c)
	return NewMirror(sw, plan.DeviceName), c.Close, nil
}
