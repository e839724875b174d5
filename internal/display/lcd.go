// internal/display/lcd.go
package display

import (
	"fmt"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// DefaultAddress is the usual PCF8574 backpack address.
const DefaultAddress uint8 = 0x27

type Config struct {
	Address uint8
	Width   uint8
	Height  uint8
}

// device is the subset of hd44780i2c.Device the LCD drives.
type device interface {
	ClearDisplay()
	SetCursor(x, y uint8)
	Print(data []byte)
}

// LCD is a character display on an HD44780 behind an I²C backpack.
// Text past the right edge is dropped instead of wrapping.
type LCD struct {
	dev    device
	width  int
	height int
	col    int
	row    int
}

// Open configures the controller on bus and clears it.
func Open(bus drivers.I2C, cfg Config) (*LCD, error) {
	if cfg.Address == 0 {
		cfg.Address = DefaultAddress
	}

	dev := hd44780i2c.New(bus, cfg.Address)
	if err := dev.Configure(hd44780i2c.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	}); err != nil {
		return nil, fmt.Errorf("display: configure addr=0x%02x: %w", cfg.Address, err)
	}

	l := newLCD(&dev, int(cfg.Width), int(cfg.Height))
	l.Clear()
	return l, nil
}

func newLCD(dev device, width, height int) *LCD {
	return &LCD{dev: dev, width: width, height: height}
}

func (l *LCD) Clear() {
	l.dev.ClearDisplay()
	l.col, l.row = 0, 0
}

// SetCursor moves to (col,row). Out-of-range positions are clamped to the grid.
func (l *LCD) SetCursor(col, row int) {
	if col < 0 {
		col = 0
	}
	if col > l.width {
		col = l.width
	}
	if row < 0 {
		row = 0
	}
	if row >= l.height {
		row = l.height - 1
	}
	l.col, l.row = col, row
	l.dev.SetCursor(uint8(col), uint8(row))
}

func (l *LCD) Print(text string) {
	room := l.width - l.col
	if room <= 0 {
		return
	}
	if len(text) > room {
		text = text[:room]
	}
	l.dev.Print([]byte(text))
	l.col += len(text)
}
