// Package mcp4822 drives the Microchip MCP4822 dual 12-bit DAC over SPI.
//
// Every write latches a 16-bit command word: bit 15 selects the channel,
// bit 13 the output gain, bit 12 is the active-high shutdown control, and
// bits 11:0 carry the data. The device multiplies its internal 2.048 V
// reference by the gain, so at 2x the 12-bit span maps to 0-4096 mV and one
// count equals one millivolt.
package mcp4822

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Channel selects one of the two DAC outputs.
type Channel uint8

const (
	ChannelA Channel = iota
	ChannelB
)

var ErrInvalidChannel = errors.New("mcp4822: invalid channel")

const (
	cmdChannelB = 1 << 15
	cmdGainX1   = 1 << 13 // cleared for 2x gain
	cmdActive   = 1 << 12 // cleared to shut the channel down
	dataMask    = 0x0fff
)

// Pin is the chip-select line. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// Device is an MCP4822 on a SPI bus with a dedicated chip select.
type Device struct {
	bus drivers.SPI
	cs  Pin
	buf [2]byte
}

// New creates the device handle. The bus must already be configured.
func New(bus drivers.SPI, cs Pin) *Device {
	return &Device{bus: bus, cs: cs}
}

// Configure parks chip select in its idle high state.
func (d *Device) Configure() {
	d.cs.High()
}

// Set drives one channel at 2x gain with the output active. Counts beyond
// 12 bits are masked off.
func (d *Device) Set(ch Channel, counts uint16) error {
	if ch > ChannelB {
		return ErrInvalidChannel
	}
	word := counts&dataMask | cmdActive
	if ch == ChannelB {
		word |= cmdChannelB
	}
	return d.write(word)
}

// SetMilliVolts drives a channel to the given output voltage, one count per
// millivolt at 2x gain.
func (d *Device) SetMilliVolts(ch Channel, mv uint16) error {
	return d.Set(ch, mv)
}

// Shutdown disables one channel's output buffer; the pin goes high
// impedance until the next Set.
func (d *Device) Shutdown(ch Channel) error {
	if ch > ChannelB {
		return ErrInvalidChannel
	}
	var word uint16
	if ch == ChannelB {
		word = cmdChannelB
	}
	return d.write(word)
}

func (d *Device) write(word uint16) error {
	d.buf[0] = byte(word >> 8)
	d.buf[1] = byte(word)

	d.cs.Low()
	err := d.bus.Tx(d.buf[:], nil)
	d.cs.High()
	return err
}
