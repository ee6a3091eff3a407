//go:build arduino_nano33

package config

import "machine"

var (
	EncoderA = machine.D2
	EncoderB = machine.D3

	DACSelect = machine.D10

	BusVolts     = machine.ADC{Pin: machine.A0}
	LoadAmps     = machine.ADC{Pin: machine.A1}
	MosfetTemp   = machine.ADC{Pin: machine.A2}
	ResistorTemp = machine.ADC{Pin: machine.A3}

	SwitchBankA = machine.ADC{Pin: machine.A6}
	SwitchBankB = machine.ADC{Pin: machine.A7}
)

const DisplayAddr = 0x27
