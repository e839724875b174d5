// internal/timer/simulated.go
package timer

// Simulated is a Sleeper that advances its Service synchronously.
// Sleep(n) delivers exactly n ticks before returning, so timing is
// deterministic without a running tick source.
type Simulated struct {
	*Service
}

// NewSimulated returns a Simulated sleeper over a fresh Service.
func NewSimulated() *Simulated {
	return &Simulated{Service: New()}
}

// Sleep delivers n ticks.
func (s *Simulated) Sleep(n int) {
	for i := 0; i < n; i++ {
		s.Service.Tick()
	}
}

// Advance is Sleep for callers that are not the control loop.
func (s *Simulated) Advance(n int) {
	s.Sleep(n)
}
