// internal/menu/signal.go
package menu

import "sync/atomic"

const (
	signalIdle uint32 = iota
	signalPending
)

// Signal is an edge-triggered one-shot flag. Raise marks it pending;
// Consume reports pending exactly once and returns it to idle.
type Signal struct {
	state atomic.Uint32
}

// Raise marks the signal pending. Raising a pending signal is a no-op.
func (s *Signal) Raise() {
	s.state.Store(signalPending)
}

// Consume reads and clears the signal in one step.
func (s *Signal) Consume() bool {
	return s.state.Swap(signalIdle) == signalPending
}

// Pending reports the state without clearing it.
func (s *Signal) Pending() bool {
	return s.state.Load() == signalPending
}
