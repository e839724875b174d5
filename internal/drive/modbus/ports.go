// internal/drive/modbus/ports.go
package modbus

import (
	"errors"
	"fmt"

	"go.bug.st/serial"
)

// ErrNoSerialPort is returned when discovery finds nothing to open.
var ErrNoSerialPort = errors.New("drive modbus: no serial port found")

// listPorts is swapped in tests.
var listPorts = serial.GetPortsList

// DiscoverPort returns the first serial port the host reports.
func DiscoverPort() (string, error) {
	ports, err := listPorts()
	if err != nil {
		return "", fmt.Errorf("drive modbus: list serial ports: %w", err)
	}
	if len(ports) == 0 {
		return "", ErrNoSerialPort
	}
	return ports[0], nil
}
