// internal/drive/register.go
package drive

import (
	"errors"
	"fmt"
)

// Client abstracts the single-register Modbus operations the drive needs.
// Geometry only: no retries, no semantics.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
	WriteSingleRegister(addr, value uint16) error             // FC 6
}

// Register is a handle to one holding register on the drive.
type Register struct {
	client Client
	addr   uint16
}

// NewRegister binds addr to client.
func NewRegister(client Client, addr uint16) Register {
	return Register{client: client, addr: addr}
}

// Address returns the register address.
func (r Register) Address() uint16 {
	return r.addr
}

// Write issues one register write. The transport may drop it; callers that
// need confirmation poll a status register themselves.
func (r Register) Write(value uint16) error {
	if r.client == nil {
		return errors.New("drive: register has no client")
	}
	if err := r.client.WriteSingleRegister(r.addr, value); err != nil {
		return fmt.Errorf("drive: write reg=%d: %w", r.addr, err)
	}
	return nil
}

// Read issues one register read.
func (r Register) Read() (uint16, error) {
	if r.client == nil {
		return 0, errors.New("drive: register has no client")
	}
	regs, err := r.client.ReadHoldingRegisters(r.addr, 1)
	if err != nil {
		return 0, fmt.Errorf("drive: read reg=%d: %w", r.addr, err)
	}
	if len(regs) < 1 {
		return 0, fmt.Errorf("drive: read reg=%d: empty response", r.addr)
	}
	return regs[0], nil
}
