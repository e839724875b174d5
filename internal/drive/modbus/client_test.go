// internal/drive/modbus/client_test.go
package modbus

import (
	"errors"
	"testing"
)

func TestUnpackRegisters_BigEndian(t *testing.T) {
	got := unpackRegisters([]byte{0x01, 0x00, 0x27, 0x10, 0xFF})
	if len(got) != 2 {
		t.Fatalf("expected 2 registers, got %d", len(got))
	}
	if got[0] != 0x0100 || got[1] != 10000 {
		t.Fatalf("unexpected registers: %v", got)
	}
}

func TestNew_PortRequired(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for empty port")
	}
}

func TestDiscoverPort(t *testing.T) {
	orig := listPorts
	defer func() { listPorts = orig }()

	listPorts = func() ([]string, error) { return []string{"/dev/ttyUSB0", "/dev/ttyUSB1"}, nil }
	p, err := DiscoverPort()
	if err != nil || p != "/dev/ttyUSB0" {
		t.Fatalf("DiscoverPort()=%q,%v", p, err)
	}

	listPorts = func() ([]string, error) { return nil, nil }
	if _, err := DiscoverPort(); !errors.Is(err, ErrNoSerialPort) {
		t.Fatalf("expected ErrNoSerialPort, got %v", err)
	}

	listPorts = func() ([]string, error) { return nil, errors.New("permission denied") }
	if _, err := DiscoverPort(); err == nil {
		t.Fatalf("expected list error")
	}
}
