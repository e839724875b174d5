// internal/status/encode.go
package status

// Encode converts a Snapshot into the live slots of a status block.
// Reserved and name slots are left zero.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotSecondsInError] = s.SecondsInError
	regs[SlotMode] = s.Mode
	regs[SlotSpeed] = s.Speed
	regs[SlotPressure] = s.Pressure
	regs[SlotFrequency] = s.Frequency
	regs[SlotAtSetpoint] = s.AtSetpoint

	return regs
}

// Slot pairs a slot index with its value, in block order.
type Slot struct {
	Index int
	Value uint16
}

// Diff returns the live slots whose value differs between prev and next.
func Diff(prev, next Snapshot) []Slot {
	a, b := Encode(prev), Encode(next)

	var out []Slot
	for i := 0; i < SlotReservedStart; i++ {
		if a[i] != b[i] {
			out = append(out, Slot{Index: i, Value: b[i]})
		}
	}
	return out
}
