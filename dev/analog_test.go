package dev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFrontEnd(t *testing.T, volts, amps, mosfet, resistor AnalogIn) *FrontEnd {
	t.Helper()
	fe, err := NewFrontEnd(volts, amps, mosfet, resistor)
	require.NoError(t, err)
	return fe
}

func TestNewFrontEnd_NilInput(t *testing.T) {
	in := &levelAnalog{}
	_, err := NewFrontEnd(nil, in, in, in)
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = NewFrontEnd(in, in, in, nil)
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestFrontEnd_Volts(t *testing.T) {
	// A strict 511/512 alternation averages to 511.5 over any 8 samples:
	// 511.5 * 4 mV/count * 5 / 1000 = 10.23 V.
	fe := newTestFrontEnd(t, &toggleAnalog{a: 511, b: 512}, &levelAnalog{}, &levelAnalog{}, &levelAnalog{})
	assert.InDelta(t, 10.23, fe.Volts(), 0.001)
}

func TestFrontEnd_VoltsDiscardsSettlingSample(t *testing.T) {
	// First sample is full-scale garbage; the eight that follow are the
	// real signal.
	volts := &seqAnalog{seq: []uint16{1023, 500, 500, 500, 500, 500, 500, 500, 500}}
	fe := newTestFrontEnd(t, volts, &levelAnalog{}, &levelAnalog{}, &levelAnalog{})
	assert.InDelta(t, 10.0, fe.Volts(), 0.001)
	assert.Equal(t, 9, volts.i, "one discard plus eight averaged samples")
}

func TestFrontEnd_MilliAmps(t *testing.T) {
	fe := newTestFrontEnd(t, &levelAnalog{}, &levelAnalog{v: 250}, &levelAnalog{}, &levelAnalog{})
	assert.InDelta(t, 1000.0, fe.MilliAmps(), 0.001)
}

func TestFrontEnd_TemperatureAtNominal(t *testing.T) {
	// 511.5 raw puts exactly the series resistance across the thermistor:
	// R = 10 kOhm, the nominal point, so 25 C.
	therm := &toggleAnalog{a: 511, b: 512}
	fe := newTestFrontEnd(t, &levelAnalog{}, &levelAnalog{}, therm, &levelAnalog{})
	assert.InDelta(t, 25.0, fe.TemperatureC(SensorMosfet), 0.05)
}

func TestFrontEnd_TemperatureMonotonic(t *testing.T) {
	hot := newTestFrontEnd(t, &levelAnalog{}, &levelAnalog{}, &levelAnalog{v: 400}, &levelAnalog{})
	cold := newTestFrontEnd(t, &levelAnalog{}, &levelAnalog{}, &levelAnalog{v: 600}, &levelAnalog{})

	// NTC on the low side of the divider: lower raw means lower
	// resistance means hotter.
	assert.Greater(t, hot.TemperatureC(SensorMosfet), float32(25))
	assert.Less(t, cold.TemperatureC(SensorMosfet), float32(25))
}

func TestFrontEnd_TemperatureClampsAtRails(t *testing.T) {
	shorted := newTestFrontEnd(t, &levelAnalog{}, &levelAnalog{}, &levelAnalog{v: 0}, &levelAnalog{})
	open := newTestFrontEnd(t, &levelAnalog{}, &levelAnalog{}, &levelAnalog{v: 1023}, &levelAnalog{})

	hot := shorted.TemperatureC(SensorMosfet)
	cold := open.TemperatureC(SensorMosfet)

	// Degenerate rail inputs stay finite and obviously out of range
	// instead of dividing by zero.
	assert.Greater(t, hot, float32(300))
	assert.Less(t, hot, float32(1000))
	assert.Less(t, cold, float32(-60))
	assert.Greater(t, cold, float32(-273.15))
}

func TestFrontEnd_SensorSelection(t *testing.T) {
	fe := newTestFrontEnd(t, &levelAnalog{}, &levelAnalog{}, &levelAnalog{v: 400}, &levelAnalog{v: 600})
	assert.Greater(t, fe.TemperatureC(SensorMosfet), fe.TemperatureC(SensorResistor))
}
