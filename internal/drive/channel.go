// internal/drive/channel.go
package drive

import "github.com/tamzrod/pressure-regulator/internal/timer"

// AtSetpointBit is the status word bit set once the drive runs at the
// last commanded frequency.
const AtSetpointBit uint16 = 0x0100

// Channel is the half-duplex call-and-wait register protocol.
type Channel struct {
	sleeper timer.Sleeper
}

// NewChannel returns a Channel that waits between polls with sleeper.
func NewChannel(sleeper timer.Sleeper) *Channel {
	return &Channel{sleeper: sleeper}
}

// Write issues a single register write and returns immediately.
func (c *Channel) Write(reg Register, value uint16) error {
	return reg.Write(value)
}

// SetAndConfirm writes value to reg, then polls status up to maxAttempts
// times, sleeping pollDelay ticks before each poll. It reports whether the
// at-setpoint bit was observed. Worst case latency is maxAttempts*pollDelay.
//
// A failed write or read does not end the wait early; the loop always runs
// to success or to its attempt ceiling.
func (c *Channel) SetAndConfirm(reg, status Register, value uint16, maxAttempts, pollDelay int) bool {
	_ = reg.Write(value)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		c.sleeper.Sleep(pollDelay)

		word, err := status.Read()
		if err != nil {
			continue
		}
		if word&AtSetpointBit != 0 {
			return true
		}
	}
	return false
}
