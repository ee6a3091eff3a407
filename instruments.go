//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/itohio/dcload/config"
	"github.com/itohio/dcload/dev"
	"github.com/itohio/dcload/drivers/mcp4822"
	"github.com/itohio/dcload/telemetry"
	"github.com/itohio/dcload/ui"
)

var (
	knob     *dev.Encoder
	loadLoop *dev.Loop
	display  ui.Sink
	emitter  *telemetry.Emitter
	dac      *mcp4822.Device
)

// referenceMilliVolts is the fixed full-scale level held on DAC channel A.
// It feeds the current-sense opamp's reference divider.
const referenceMilliVolts = 4095

// analogPin narrows a left-aligned 16-bit machine.ADC reading to the
// right-aligned 10-bit range the dev package works in.
type analogPin struct {
	adc machine.ADC
}

func (a analogPin) Get() uint16 {
	return uint16(uint32(a.adc.Get()) * 1023 / 65535)
}

// gateDAC drives the MOSFET gate through DAC channel B.
type gateDAC struct {
	dac *mcp4822.Device
}

func (g gateDAC) SetGateMilliVolts(mv uint16) error {
	return g.dac.SetMilliVolts(mcp4822.ChannelB, mv)
}

func configureInstruments() {
	machine.InitADC()

	configureKnob()
	configureDAC()
	configureDisplay()
	configureTelemetry()
	configureLoop()
}

func configureKnob() {
	config.EncoderA.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	config.EncoderB.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	var err error
	knob, err = dev.NewEncoder(config.EncoderA, config.EncoderB)
	if err != nil {
		println("encoder failed: " + err.Error())
		return
	}

	if err := config.EncoderA.SetInterrupt(machine.PinToggle, knobEdge); err != nil {
		println("encoder A interrupt failed: " + err.Error())
	}
	if err := config.EncoderB.SetInterrupt(machine.PinToggle, knobEdge); err != nil {
		println("encoder B interrupt failed: " + err.Error())
	}
}

// knobEdge runs in interrupt context on every quadrature transition.
//
//go:noinline
func knobEdge(machine.Pin) {
	knob.Edge()
}

func configureDAC() {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 4 * machine.MHz,
		Mode:      0,
	})
	config.DACSelect.Configure(machine.PinConfig{Mode: machine.PinOutput})

	dac = mcp4822.New(machine.SPI0, config.DACSelect)
	dac.Configure()

	// Channel A holds the fixed reference; channel B stays shut down until
	// the loop commands a gate level.
	if err := dac.SetMilliVolts(mcp4822.ChannelA, referenceMilliVolts); err != nil {
		println("dac reference failed: " + err.Error())
	}
	if err := dac.Shutdown(mcp4822.ChannelB); err != nil {
		println("dac shutdown failed: " + err.Error())
	}
}

func configureDisplay() {
	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	// the backpack misses the init sequence right after a cold boot
	time.Sleep(100 * time.Millisecond)

	lcd, err := ui.NewLCD(machine.I2C0, config.DisplayAddr)
	if err != nil {
		println("display failed: " + err.Error())
		return
	}
	display = lcd
}

func configureTelemetry() {
	emitter = telemetry.NewEmitter(machine.Serial)
}

func configureLoop() {
	for _, a := range []machine.ADC{
		config.BusVolts, config.LoadAmps, config.MosfetTemp, config.ResistorTemp,
		config.SwitchBankA, config.SwitchBankB,
	} {
		a.Configure(machine.ADCConfig{})
	}

	switches, err := dev.NewSwitches(analogPin{config.SwitchBankA}, analogPin{config.SwitchBankB})
	if err != nil {
		println("switches failed: " + err.Error())
		return
	}
	front, err := dev.NewFrontEnd(
		analogPin{config.BusVolts}, analogPin{config.LoadAmps},
		analogPin{config.MosfetTemp}, analogPin{config.ResistorTemp},
	)
	if err != nil {
		println("front end failed: " + err.Error())
		return
	}
	setpoints, err := dev.NewSetpoints(knob)
	if err != nil {
		println("setpoints failed: " + err.Error())
		return
	}
	control, err := dev.NewControl(gateDAC{dac})
	if err != nil {
		println("control failed: " + err.Error())
		return
	}

	loadLoop, err = dev.NewLoop(switches, knob, setpoints, front, control)
	if err != nil {
		println("loop failed: " + err.Error())
	}
}
