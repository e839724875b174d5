// internal/sensor/sample.go
package sensor

// Raw is one read of the differential pressure sensor:
// high byte, low byte, checksum.
type Raw [3]byte

// Scaling constants. Changing either changes every reading the
// controller has ever displayed.
const (
	// ScaleDivisor converts sensor counts to pascal.
	ScaleDivisor = 240
	// AltitudeCorrection corrects the reading to sea level.
	AltitudeCorrection float32 = 0.95
)

// Reading is a decoded sensor sample.
type Reading struct {
	Counts   int16 // (high << 8) | low
	Pressure int   // scaled, altitude corrected
}

// Decode packs the first two bytes into a signed 16-bit count.
func Decode(raw Raw) int16 {
	return int16(uint16(raw[0])<<8 | uint16(raw[1]))
}

// Scale converts counts to a pressure value. The division is integer
// division and happens before the correction factor.
func Scale(counts int16) int {
	return int(float32(int(counts)/ScaleDivisor) * AltitudeCorrection)
}

// Sample converts raw sensor bytes to a Reading. No I/O.
func Sample(raw Raw) Reading {
	c := Decode(raw)
	return Reading{Counts: c, Pressure: Scale(c)}
}
