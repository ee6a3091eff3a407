package dev

import "sync/atomic"

// InputPin is the digital-input subset of machine.Pin used by the decoder.
// Tests substitute fakes; the firmware passes the encoder pins directly.
type InputPin interface {
	Get() bool
}

// quadTable maps a 4-bit (previous<<2 | current) phase transition to a
// signed step. The four transitions of each valid Gray sequence yield +1 or
// -1; ambiguous and bounce-induced transitions yield 0.
var quadTable = [16]int8{
	0, -1, +1, 0,
	+1, 0, 0, -1,
	-1, 0, 0, +1,
	0, +1, -1, 0,
}

// Encoder decodes a quadrature rotary encoder inside an interrupt handler
// and accumulates steps into one of two signed counters. The counters are
// written only by the handler and read only by the main loop; the route
// flag crosses the other way, so all three are atomics.
type Encoder struct {
	a, b InputPin

	// history holds the previous 2-bit pin sample. Owned exclusively by
	// the interrupt handler, never read outside it.
	history uint8

	minVoltRoute atomic.Bool
	target       atomic.Int32
	minVolt      atomic.Int32
}

// NewEncoder creates a decoder for the two encoder channels. The initial
// pin state seeds the transition history so the first edge decodes cleanly.
func NewEncoder(a, b InputPin) (*Encoder, error) {
	if a == nil || b == nil {
		return nil, ErrNoPin
	}
	e := &Encoder{a: a, b: b}
	e.history = e.sample()
	return e, nil
}

// Edge is the interrupt handler body: one table lookup and one atomic add.
// It is attached to both channels on any pin change and must not block.
func (e *Encoder) Edge() {
	cur := e.sample()
	idx := e.history<<2 | cur
	e.history = cur

	delta := quadTable[idx]
	if delta == 0 {
		return
	}
	// Route by the mode active at the instant of the interrupt, not at
	// the time the accumulator is read.
	if e.minVoltRoute.Load() {
		e.minVolt.Add(int32(delta))
	} else {
		e.target.Add(int32(delta))
	}
}

func (e *Encoder) sample() uint8 {
	var s uint8
	if e.a.Get() {
		s |= 2
	}
	if e.b.Get() {
		s |= 1
	}
	return s
}

// SetRoute publishes which accumulator receives subsequent steps. Called by
// the main loop right after the mode register is refreshed.
func (e *Encoder) SetRoute(minVolt bool) {
	e.minVoltRoute.Store(minVolt)
}

// Target returns the target-load accumulator.
func (e *Encoder) Target() int32 {
	return e.target.Load()
}

// MinVolt returns the minimum-voltage accumulator.
func (e *Encoder) MinVolt() int32 {
	return e.minVolt.Load()
}
