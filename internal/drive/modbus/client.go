// internal/drive/modbus/client.go
package modbus

import (
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/pressure-regulator/internal/drive"
)

var _ drive.Client = (*Client)(nil)

// Client implements drive.Client over Modbus RTU.
// It serializes requests; the bus is half-duplex.
type Client struct {
	mu      sync.Mutex
	handler *modbus.RTUClientHandler
	client  modbus.Client
}

// Config is minimal serial transport config.
type Config struct {
	Port     string
	BaudRate int
	UnitID   uint8
	Timeout  time.Duration
	Debug    bool
}

// New opens the serial port and returns a connected client.
// Framing is fixed at 8N1.
func New(cfg Config) (*Client, error) {
	if cfg.Port == "" {
		return nil, errors.New("drive modbus: port required")
	}

	h := modbus.NewRTUClientHandler(cfg.Port)
	h.BaudRate = cfg.BaudRate
	h.DataBits = 8
	h.Parity = "N"
	h.StopBits = 1
	h.SlaveId = cfg.UnitID
	h.Timeout = cfg.Timeout
	if cfg.Debug {
		h.Logger = log.New(os.Stderr, "modbus: ", log.LstdFlags)
	}

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the serial port.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// ---- drive.Client interface ----

func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	if len(b) < int(qty)*2 {
		return nil, errors.New("modbus: read-registers payload shorter than quantity")
	}
	return unpackRegisters(b), nil
}

func (c *Client) WriteSingleRegister(addr, value uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.client.WriteSingleRegister(addr, value)
	return err
}

// ---- helpers (pure geometry) ----

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
