// internal/menu/display.go
package menu

import (
	"fmt"
	"strconv"
)

// Display is a text-only character grid.
type Display interface {
	Clear()
	SetCursor(col, row int)
	Print(text string)
}

// Grid geometry. No other layout is supported.
const (
	Columns = 16
	Rows    = 2
)

// Clear blanks the display.
func (m *Menu) Clear() {
	m.display.Clear()
}

// Render redraws the normal view:
//
//	Fan Speed: 50  M
//	Pressure:  12
func (m *Menu) Render() {
	d := m.display
	d.Clear()

	d.SetCursor(0, 0)
	d.Print("Fan Speed: ")
	d.SetCursor(11, 0)
	d.Print(strconv.Itoa(m.speed))

	d.SetCursor(15, 0)
	if m.mode == Manual {
		d.Print("M")
	} else {
		d.Print("A")
	}

	d.SetCursor(0, 1)
	d.Print("Pressure: ")
	d.SetCursor(11, 1)
	d.Print(strconv.Itoa(m.pressure))
}

// Error shows msg for the configured banner time, then marks the display
// dirty so the next refresh restores the normal view.
func (m *Menu) Error(msg string) {
	d := m.display
	d.Clear()
	d.SetCursor(0, 0)
	d.Print("Error: ")
	d.SetCursor(0, 1)
	d.Print(fmt.Sprintf("%-*.*s", Columns, Columns, msg))

	m.sleeper.Sleep(m.cfg.ErrorTicks)
	m.changed.Raise()
}
