//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/itohio/dcload/telemetry"
	"github.com/itohio/dcload/ui"
)

//go:generate tinygo flash -target=arduino-nano33

const (
	displayPeriod   = 100 * time.Millisecond
	blinkPeriod     = 500 * time.Millisecond
	telemetryPeriod = time.Second
)

func main() {
	// Let the rails and the display settle from a cold boot.
	time.Sleep(500 * time.Millisecond)

	configureInstruments()
	if loadLoop == nil {
		// The DAC channel B was never enabled, so the load stays off.
		for {
			println("configure failed, load held off")
			time.Sleep(time.Second)
		}
	}

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 3000,
	})
	machine.Watchdog.Start()

	blinkOn := true
	lastDisplay := time.Now()
	lastBlink := lastDisplay
	lastTelemetry := lastDisplay

	for {
		st, err := loadLoop.Step()
		if err != nil {
			println("gate: " + err.Error())
		}

		now := time.Now()
		if now.Sub(lastBlink) >= blinkPeriod {
			blinkOn = !blinkOn
			lastBlink = now
		}
		if display != nil && now.Sub(lastDisplay) >= displayPeriod {
			row1, row2 := ui.FormatRows(st, blinkOn)
			if err := display.Show(row1, row2); err != nil {
				println("display: " + err.Error())
			}
			lastDisplay = now
		}
		if now.Sub(lastTelemetry) >= telemetryPeriod {
			if err := emitter.Emit(telemetry.FromStatus(st)); err != nil {
				println("telemetry: " + err.Error())
			}
			lastTelemetry = now
		}

		machine.Watchdog.Update()
		time.Sleep(time.Millisecond)
	}
}
