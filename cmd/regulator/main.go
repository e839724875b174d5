// cmd/regulator/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/tamzrod/pressure-regulator/internal/config"
	"github.com/tamzrod/pressure-regulator/internal/control"
	"github.com/tamzrod/pressure-regulator/internal/display"
	"github.com/tamzrod/pressure-regulator/internal/drive"
	dmodbus "github.com/tamzrod/pressure-regulator/internal/drive/modbus"
	"github.com/tamzrod/pressure-regulator/internal/input"
	"github.com/tamzrod/pressure-regulator/internal/menu"
	"github.com/tamzrod/pressure-regulator/internal/regulator"
	"github.com/tamzrod/pressure-regulator/internal/sensor"
	"github.com/tamzrod/pressure-regulator/internal/timer"
	"github.com/tamzrod/pressure-regulator/internal/writer"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: regulator <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Tick source
	// --------------------

	clock := timer.New()
	go func() {
		if err := timer.Run(ctx, clock, cfg.Regulator.TickHz); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("tick source failed: %v", err)
		}
	}()

	// --------------------
	// Peripherals
	// --------------------

	if _, err := host.Init(); err != nil {
		log.Fatalf("host init failed: %v", err)
	}

	sensorBus, err := i2creg.Open(cfg.Sensor.Bus)
	if err != nil {
		log.Fatalf("i2c open failed (bus=%q): %v", cfg.Sensor.Bus, err)
	}
	defer sensorBus.Close()

	var displayBus i2c.Bus = sensorBus
	if cfg.Display.Bus != cfg.Sensor.Bus {
		b, err := i2creg.Open(cfg.Display.Bus)
		if err != nil {
			log.Fatalf("i2c open failed (bus=%q): %v", cfg.Display.Bus, err)
		}
		defer b.Close()
		displayBus = b
	}

	lcd, err := display.Open(displayBus, display.Config{
		Address: cfg.Display.Address,
		Width:   cfg.Display.Width,
		Height:  cfg.Display.Height,
	})
	if err != nil {
		log.Fatalf("display open failed: %v", err)
	}

	buttons := menu.Buttons{
		Mode: openButton("mode", cfg.Buttons.Mode),
		Up:   openButton("up", cfg.Buttons.Up),
		Down: openButton("down", cfg.Buttons.Down),
	}

	// --------------------
	// Drive link
	// --------------------

	port := cfg.Drive.Port
	if port == "" {
		port, err = dmodbus.DiscoverPort()
		if err != nil {
			log.Fatalf("drive port discovery failed: %v", err)
		}
		log.Printf("drive port discovered (port=%s)", port)
	}

	link, err := dmodbus.New(dmodbus.Config{
		Port:     port,
		BaudRate: cfg.Drive.BaudRate,
		UnitID:   cfg.Drive.UnitID,
		Timeout:  time.Duration(cfg.Drive.TimeoutMs) * time.Millisecond,
		Debug:    cfg.Drive.Debug,
	})
	if err != nil {
		log.Fatalf("drive link failed (port=%s): %v", port, err)
	}
	defer link.Close()

	regs := cfg.Drive.Registers
	drv := drive.New(drive.Config{
		Registers: drive.Registers{
			Control:         *regs.Control,
			Frequency:       *regs.Frequency,
			Status:          *regs.Status,
			OutputFrequency: *regs.OutputFrequency,
			Current:         *regs.Current,
		},
		Attempts:    cfg.Drive.Setpoint.Attempts,
		PollDelay:   cfg.Drive.Setpoint.PollDelayTicks,
		ReadyWord:   cfg.Drive.Startup.ReadyWord,
		StartWord:   cfg.Drive.Startup.StartWord,
		SettleTicks: cfg.Drive.Startup.SettleTicks,
	}, link, clock)

	if err := drv.Start(); err != nil {
		log.Fatalf("drive start failed (port=%s): %v", port, err)
	}

	// --------------------
	// Control
	// --------------------

	reader := sensor.NewReader(sensorBus, cfg.Sensor.Address, cfg.Sensor.Register)

	baseline, err := reader.Read()
	if err != nil {
		log.Printf("baseline sample failed (sensor=%s): %v", reader, err)
	}
	auto := control.NewAuto(drv, baseline)
	if auto.Baseline() == 0 {
		log.Printf("baseline sample is zero; automatic mode will hold its setpoint (sensor=%s)", reader)
	}

	m := menu.New(menu.Config{
		DebounceTicks: cfg.Buttons.DebounceTicks,
		RepeatEvery:   cfg.Buttons.RepeatEvery,
		ErrorTicks:    cfg.Control.ErrorBannerTicks,
	}, buttons, lcd, clock)

	// --------------------
	// Status mirror (optional)
	// --------------------

	mirror, closeMirror, err := writer.BuildMirror(cfg.Status)
	if err != nil {
		log.Fatalf("status mirror failed: %v", err)
	}
	defer closeMirror()

	var pub regulator.Publisher
	if mirror != nil {
		go mirror.Run(ctx)
		pub = mirror
	}

	loop := regulator.New(regulator.Config{
		SamplePeriod: cfg.Sensor.SamplePeriodTicks,
		GoalTimeout:  int64(cfg.Control.GoalTimeoutTicks),
		TickHz:       cfg.Regulator.TickHz,
	}, clock, m, auto, drv, reader, pub)

	log.Printf("regulator running (port=%s tick_hz=%d)", port, cfg.Regulator.TickHz)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("loop stopped: %v", err)
	}
}

// openButton returns nil for an unfitted button so the menu skips it.
func openButton(name string, bc config.ButtonConfig) menu.Input {
	if bc.Pin == "" {
		return nil
	}
	b, err := input.Open(bc.Pin, bc.ActiveLow)
	if err != nil {
		log.Fatalf("button open failed (button=%s): %v", name, err)
	}
	return b
}
