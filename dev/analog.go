package dev

import "github.com/chewxy/math32"

// Sensor selects a thermistor channel.
type Sensor uint8

const (
	SensorMosfet Sensor = iota
	SensorResistor
)

// Conversion constants. The ADC runs against a 4096 mV external reference
// across 10 bits, the bus voltage arrives through a 1:5 divider, and the
// shunt amplifier is calibrated to 1 V per ampere across 1 ohm.
const (
	adcSpan           = 1024
	adcMax            = 1023
	refMilliVolts     = 4096
	dividerRatio      = 5
	milliAmpsPerCount = 4

	sampleCount = 8

	thermSeriesOhms  = 10000
	thermNominalOhms = 10000
	thermNominalC    = 25
	thermBeta        = 3977
	kelvinOffset     = 273.15
)

// FrontEnd averages the raw ADC channels and converts them to physical
// units. Readings are transient; nothing is retained between iterations.
type FrontEnd struct {
	volts AnalogIn
	amps  AnalogIn
	therm [2]AnalogIn
}

func NewFrontEnd(volts, amps, mosfetTherm, resistorTherm AnalogIn) (*FrontEnd, error) {
	if volts == nil || amps == nil || mosfetTherm == nil || resistorTherm == nil {
		return nil, ErrNoInput
	}
	return &FrontEnd{
		volts: volts,
		amps:  amps,
		therm: [2]AnalogIn{mosfetTherm, resistorTherm},
	}, nil
}

// Volts reads the bus voltage. One extra sample is discarded up front so
// the mux settles after the switch-bank reads.
func (f *FrontEnd) Volts() float32 {
	f.volts.Get()
	return average(f.volts) * (refMilliVolts / adcSpan) * dividerRatio / 1000
}

// MilliAmps reads the load current.
func (f *FrontEnd) MilliAmps() float32 {
	return average(f.amps) * milliAmpsPerCount
}

// TemperatureC reads one thermistor and linearizes it with the beta
// equation 1/T = 1/T0 + ln(R/R0)/B. The raw average is clamped half a count
// away from the rails so the divider formula stays finite with a shorted or
// disconnected sensor; the extreme result is still reported as-is.
func (f *FrontEnd) TemperatureC(s Sensor) float32 {
	raw := average(f.therm[s&1])
	if raw < 0.5 {
		raw = 0.5
	}
	if raw > adcMax-0.5 {
		raw = adcMax - 0.5
	}
	r := thermSeriesOhms * raw / (adcMax - raw)
	invT := 1/(thermNominalC+kelvinOffset) + math32.Log(r/thermNominalOhms)/thermBeta
	return 1/invT - kelvinOffset
}

// average is a bounded fixed-count sampling loop.
func average(in AnalogIn) float32 {
	var sum uint32
	for i := 0; i < sampleCount; i++ {
		sum += uint32(in.Get())
	}
	return float32(sum) / sampleCount
}
