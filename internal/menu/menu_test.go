// internal/menu/menu_test.go
package menu

import (
	"strings"
	"testing"

	"github.com/tamzrod/pressure-regulator/internal/timer"
)

// ---- fakes ----

type fakeInput struct {
	level bool
	reads int
}

func (f *fakeInput) Pressed() bool {
	f.reads++
	return f.level
}

type fakeDisplay struct {
	grid     [Rows][Columns]byte
	col, row int
	clears   int
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{}
	d.Clear()
	d.clears = 0
	return d
}

func (d *fakeDisplay) Clear() {
	for r := range d.grid {
		for c := range d.grid[r] {
			d.grid[r][c] = ' '
		}
	}
	d.col, d.row = 0, 0
	d.clears++
}

func (d *fakeDisplay) SetCursor(col, row int) {
	d.col, d.row = col, row
}

func (d *fakeDisplay) Print(text string) {
	for i := 0; i < len(text); i++ {
		if d.col < Columns && d.row < Rows {
			d.grid[d.row][d.col] = text[i]
		}
		d.col++
	}
}

func (d *fakeDisplay) line(row int) string {
	return string(d.grid[row][:])
}

type rig struct {
	m     *Menu
	mode  *fakeInput
	up    *fakeInput
	down  *fakeInput
	disp  *fakeDisplay
	clock *timer.Simulated
}

func newRig(cfg Config) *rig {
	r := &rig{
		mode:  &fakeInput{},
		up:    &fakeInput{},
		down:  &fakeInput{},
		disp:  newFakeDisplay(),
		clock: timer.NewSimulated(),
	}
	r.m = New(cfg, Buttons{Mode: r.mode, Up: r.up, Down: r.down}, r.disp, r.clock)
	return r
}

func defaultConfig() Config {
	return Config{DebounceTicks: 3, RepeatEvery: 800, ErrorTicks: 2000}
}

// ---- value ranges ----

func TestSpeed_RoundTripAndClamp(t *testing.T) {
	r := newRig(defaultConfig())

	for v := SpeedMin; v <= SpeedMax; v++ {
		r.m.SetSpeed(v)
		if got := r.m.Speed(); got != v {
			t.Fatalf("SetSpeed(%d) -> Speed()=%d", v, got)
		}
	}

	r.m.SetSpeed(-5)
	if r.m.Speed() != 0 {
		t.Fatalf("speed below range stored as %d", r.m.Speed())
	}
	r.m.SetSpeed(250)
	if r.m.Speed() != 100 {
		t.Fatalf("speed above range stored as %d", r.m.Speed())
	}
}

func TestPressure_RoundTripAndClamp(t *testing.T) {
	r := newRig(defaultConfig())

	for v := PressureMin; v <= PressureMax; v++ {
		r.m.SetPressure(v)
		if got := r.m.Pressure(); got != v {
			t.Fatalf("SetPressure(%d) -> Pressure()=%d", v, got)
		}
	}

	r.m.SetPressure(-1)
	if r.m.Pressure() != 0 {
		t.Fatalf("pressure below range stored as %d", r.m.Pressure())
	}
	r.m.SetPressure(121)
	if r.m.Pressure() != 120 {
		t.Fatalf("pressure above range stored as %d", r.m.Pressure())
	}
}

// ---- edge-triggered signals ----

func TestHasNewValue_EdgeTriggered(t *testing.T) {
	r := newRig(defaultConfig())

	if r.m.HasNewValue() {
		t.Fatalf("fresh menu reports a change")
	}

	r.m.SetSpeed(10)
	if !r.m.HasNewValue() {
		t.Fatalf("change not reported")
	}
	for i := 0; i < 3; i++ {
		if r.m.HasNewValue() {
			t.Fatalf("change reported twice (call %d)", i+2)
		}
	}

	r.m.SetSpeed(10) // same value, no event
	if r.m.HasNewValue() {
		t.Fatalf("no-op set reported a change")
	}

	r.m.SetSpeed(11)
	r.m.SetSpeed(12) // two events before a read collapse to one
	if !r.m.HasNewValue() || r.m.HasNewValue() {
		t.Fatalf("expected exactly one pending change")
	}
}

func TestToggleMode_Signals(t *testing.T) {
	r := newRig(defaultConfig())

	r.m.ToggleMode()
	if r.m.Mode() != Automatic {
		t.Fatalf("mode=%v want Automatic", r.m.Mode())
	}
	if !r.m.HasNewValue() {
		t.Fatalf("entering Automatic must mark changed")
	}
	if !r.m.HasNewGoal() {
		t.Fatalf("entering Automatic must raise a goal")
	}

	r.m.ToggleMode()
	if r.m.Mode() != Manual {
		t.Fatalf("mode=%v want Manual", r.m.Mode())
	}
	if !r.m.HasNewValue() {
		t.Fatalf("entering Manual must mark changed")
	}
	if r.m.HasNewGoal() {
		t.Fatalf("entering Manual must not raise a goal")
	}
}

// ---- buttons ----

func TestShortPress_StepsOnRelease(t *testing.T) {
	r := newRig(defaultConfig())

	r.up.level = true
	r.m.CheckInputs()
	if r.m.Speed() != 0 {
		t.Fatalf("stepped while held: speed=%d", r.m.Speed())
	}
	if r.clock.Elapsed() != 3 {
		t.Fatalf("debounce elapsed=%d want 3", r.clock.Elapsed())
	}

	r.up.level = false
	r.m.CheckInputs()
	if r.m.Speed() != 1 {
		t.Fatalf("speed=%d want 1 after release", r.m.Speed())
	}
	if !r.m.HasNewValue() {
		t.Fatalf("release step must mark changed")
	}

	// nothing further without another press
	r.m.CheckInputs()
	if r.m.Speed() != 1 {
		t.Fatalf("speed=%d want 1", r.m.Speed())
	}
}

func TestBounce_Ignored(t *testing.T) {
	r := newRig(defaultConfig())

	// reads pressed, then released after the settle delay
	bouncy := &bounceInput{levels: []bool{true, false}}
	r.m.up.in = bouncy

	r.m.CheckInputs()
	if r.m.Speed() != 0 || r.m.HasNewValue() {
		t.Fatalf("bounce produced a step")
	}
}

type bounceInput struct {
	levels []bool
	i      int
}

func (b *bounceInput) Pressed() bool {
	if b.i >= len(b.levels) {
		return false
	}
	v := b.levels[b.i]
	b.i++
	return v
}

func TestLongPress_RepeatsEveryN(t *testing.T) {
	cfg := defaultConfig()
	cfg.RepeatEvery = 3
	r := newRig(cfg)

	r.up.level = true
	for i := 1; i <= 7; i++ {
		r.m.CheckInputs()
	}
	// repeats at polls 3 and 6
	if r.m.Speed() != 2 {
		t.Fatalf("speed=%d want 2 after 7 held polls", r.m.Speed())
	}

	r.up.level = false
	r.m.CheckInputs()
	if r.m.Speed() != 3 {
		t.Fatalf("speed=%d want 3 after release", r.m.Speed())
	}
	if r.m.up.count != 0 {
		t.Fatalf("press counter=%d want 0 after release", r.m.up.count)
	}
}

func TestDown_ClampsAtZero(t *testing.T) {
	r := newRig(defaultConfig())

	r.down.level = true
	r.m.CheckInputs()
	r.down.level = false
	r.m.CheckInputs()

	if r.m.Speed() != 0 {
		t.Fatalf("speed=%d want 0", r.m.Speed())
	}
	if r.m.HasNewValue() {
		t.Fatalf("clamped step must not mark changed")
	}
}

func TestModeButton_TogglesOnceAndSuppresses(t *testing.T) {
	r := newRig(defaultConfig())

	r.mode.level = true
	r.up.level = true
	for i := 0; i < 5; i++ {
		r.m.CheckInputs()
	}

	if r.m.Mode() != Automatic {
		t.Fatalf("mode=%v want Automatic after one press", r.m.Mode())
	}
	if r.up.reads != 0 {
		t.Fatalf("up button read %d times while mode held", r.up.reads)
	}

	r.mode.level = false
	r.up.level = false
	r.m.CheckInputs()
	if r.m.Mode() != Automatic {
		t.Fatalf("release must not toggle again")
	}

	r.mode.level = true
	r.m.CheckInputs()
	if r.m.Mode() != Manual {
		t.Fatalf("second press must toggle back")
	}
}

func TestAutomatic_ButtonsEditPressureAndRaiseGoal(t *testing.T) {
	r := newRig(defaultConfig())
	r.m.ToggleMode()
	r.m.HasNewValue()
	r.m.HasNewGoal()

	r.up.level = true
	r.m.CheckInputs()
	r.up.level = false
	r.m.CheckInputs()

	if r.m.Pressure() != 1 || r.m.Speed() != 0 {
		t.Fatalf("pressure=%d speed=%d want 1,0", r.m.Pressure(), r.m.Speed())
	}
	if !r.m.HasNewValue() {
		t.Fatalf("pressure step must mark changed")
	}
	if !r.m.HasNewGoal() {
		t.Fatalf("target change must raise a goal")
	}
}

func TestSetSpeed_PipelineDoesNotRaiseGoal(t *testing.T) {
	r := newRig(defaultConfig())
	r.m.ToggleMode()
	r.m.HasNewGoal()

	r.m.SetSpeed(40)
	if r.m.HasNewGoal() {
		t.Fatalf("mirrored speed must not raise a goal")
	}
}

// ---- display ----

func TestRender_Layout(t *testing.T) {
	r := newRig(defaultConfig())
	r.m.SetSpeed(50)
	r.m.SetPressure(12)

	r.m.Render()

	if got := r.disp.line(0); got != "Fan Speed: 50  M" {
		t.Fatalf("row0=%q", got)
	}
	if got := strings.TrimRight(r.disp.line(1), " "); got != "Pressure:  12" {
		t.Fatalf("row1=%q", got)
	}

	r.m.ToggleMode()
	r.m.Render()
	if r.disp.grid[0][15] != 'A' {
		t.Fatalf("mode indicator=%q want A", r.disp.grid[0][15])
	}
}

func TestError_BannerThenDirty(t *testing.T) {
	r := newRig(defaultConfig())
	r.m.HasNewValue()

	r.m.Error("Can't reach pressure target")

	if got := strings.TrimRight(r.disp.line(0), " "); got != "Error:" {
		t.Fatalf("row0=%q", got)
	}
	if got := r.disp.line(1); got != "Can't reach pres" {
		t.Fatalf("row1=%q", got)
	}
	if r.clock.Elapsed() != 2000 {
		t.Fatalf("banner held %d ticks want 2000", r.clock.Elapsed())
	}
	if !r.m.HasNewValue() {
		t.Fatalf("banner must mark the display dirty")
	}
}
