// internal/timer/service.go
package timer

import (
	"runtime"
	"sync/atomic"
)

// Sleeper blocks the caller for a number of ticks.
type Sleeper interface {
	Sleep(ticks int)
}

// Service owns the counters shared between the tick source and the control loop.
// Each counter has exactly one writer on each side; every access is a single
// atomic word operation.
type Service struct {
	elapsed atomic.Uint64 // monotonic, tick side only
	delay   atomic.Int64  // sleep countdown, floored at zero
	sensor  atomic.Int64  // sample countdown, goes negative when due
	timeout atomic.Int64  // goal timeout, counts up
}

// New returns a Service with all counters at zero.
// The sensor countdown starts due so the first loop iteration samples.
func New() *Service {
	s := &Service{}
	s.sensor.Store(-1)
	return s
}

// ---- tick side ----

// Tick advances time by one tick. It never blocks and performs no I/O.
func (s *Service) Tick() {
	s.elapsed.Add(1)
	s.timeout.Add(1)
	s.sensor.Add(-1)

	for {
		d := s.delay.Load()
		if d <= 0 {
			return
		}
		if s.delay.CompareAndSwap(d, d-1) {
			return
		}
	}
}

// ---- loop side ----

// Elapsed returns the number of ticks since the service was created.
func (s *Service) Elapsed() uint64 {
	return s.elapsed.Load()
}

// Sleep spins until the tick source has delivered n ticks.
// There is no scheduler to hand the core to, so the wait is a bounded spin.
func (s *Service) Sleep(n int) {
	if n <= 0 {
		return
	}
	s.delay.Store(int64(n))
	for s.delay.Load() > 0 {
		runtime.Gosched()
	}
}

// SensorDue reports whether the sample countdown has run out.
func (s *Service) SensorDue() bool {
	return s.sensor.Load() < 0
}

// ResetSensor restarts the sample countdown.
func (s *Service) ResetSensor(period int) {
	s.sensor.Store(int64(period))
}

// Timeout returns the ticks accumulated since the last ResetTimeout.
func (s *Service) Timeout() int64 {
	return s.timeout.Load()
}

// Expired reports whether the timeout counter has passed ceiling.
func (s *Service) Expired(ceiling int64) bool {
	return s.timeout.Load() > ceiling
}

// ResetTimeout zeroes the timeout counter.
func (s *Service) ResetTimeout() {
	s.timeout.Store(0)
}
