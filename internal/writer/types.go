// internal/writer/types.go
package writer

import "github.com/tamzrod/pressure-regulator/internal/status"

// StatusPlan locates the controller's status block on the mirror endpoint.
type StatusPlan struct {
	Endpoint   string
	UnitID     uint8
	BaseSlot   uint16 // block index; address = BaseSlot * SlotsPerDevice
	DeviceName string
}

// StatusWriter is the delivery-only contract for controller status.
// It receives a snapshot and writes it verbatim.
// No logic, no state, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// endpointClient is the exact contract the status writer uses.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}
