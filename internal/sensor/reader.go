// internal/sensor/reader.go
package sensor

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// DefaultAddress is the sensor's 7-bit I²C address.
const DefaultAddress uint16 = 0x40

// DefaultRegister is the triggered-measurement command.
const DefaultRegister byte = 0xF1

// Reader reads raw samples from the sensor over I²C.
type Reader struct {
	dev  *i2c.Dev
	reg  byte
	last Raw
}

// NewReader binds a reader to addr on bus.
func NewReader(bus i2c.Bus, addr uint16, reg byte) *Reader {
	return &Reader{
		dev: &i2c.Dev{Bus: bus, Addr: addr},
		reg: reg,
	}
}

// Read performs one register read. On failure it still returns a buffer:
// the last good sample, which the caller may use as a best-effort value.
func (r *Reader) Read() (Raw, error) {
	var buf Raw
	if err := r.dev.Tx([]byte{r.reg}, buf[:]); err != nil {
		return r.last, fmt.Errorf("sensor: read reg=0x%02X addr=0x%02X: %w", r.reg, r.dev.Addr, err)
	}
	r.last = buf
	return buf, nil
}

// String implements fmt.Stringer.
func (r *Reader) String() string {
	return r.dev.String()
}
