// internal/sensor/reader_test.go
package sensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

type fakeBus struct {
	resp []byte
	fail bool

	lastAddr uint16
	lastW    []byte
}

var _ i2c.Bus = (*fakeBus)(nil)

func (f *fakeBus) String() string { return "fake" }

func (f *fakeBus) SetSpeed(physic.Frequency) error { return nil }

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.lastAddr = addr
	f.lastW = append([]byte(nil), w...)
	if f.fail {
		return errors.New("nack")
	}
	copy(r, f.resp)
	return nil
}

func TestReader_Read(t *testing.T) {
	bus := &fakeBus{resp: []byte{0x12, 0x34, 0x56}}
	r := NewReader(bus, DefaultAddress, DefaultRegister)

	raw, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, Raw{0x12, 0x34, 0x56}, raw)
	assert.Equal(t, DefaultAddress, bus.lastAddr)
	assert.Equal(t, []byte{DefaultRegister}, bus.lastW)
}

func TestReader_FailureReturnsLastGood(t *testing.T) {
	bus := &fakeBus{resp: []byte{0x01, 0x02, 0x03}}
	r := NewReader(bus, DefaultAddress, DefaultRegister)

	_, err := r.Read()
	require.NoError(t, err)

	bus.fail = true
	bus.resp = []byte{0x09, 0x09, 0x09}
	raw, err := r.Read()
	assert.Error(t, err)
	assert.Equal(t, Raw{0x01, 0x02, 0x03}, raw)
}
