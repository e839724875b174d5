// internal/timer/runner.go
package timer

import (
	"context"
	"errors"
	"time"
)

// Run drives s.Tick from a wall-clock ticker at hz until ctx is cancelled.
// One goroutine per service. The tick path does no I/O.
func Run(ctx context.Context, s *Service, hz int) error {
	if s == nil {
		return errors.New("timer: service required")
	}
	if hz <= 0 {
		return errors.New("timer: tick rate must be > 0")
	}

	ticker := time.NewTicker(time.Second / time.Duration(hz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}
