package dev

// GateDriver sets the MOSFET gate drive in millivolts. The firmware backs
// it with one DAC channel; tests count writes.
type GateDriver interface {
	SetGateMilliVolts(mv uint16) error
}

// hysteresisVolts is the recovery margin above the minimum-voltage
// threshold before a latched cutoff releases.
const hysteresisVolts = 0.1

// Control owns the under-voltage latch and the gate command. The latch
// trips when the measured bus voltage falls below the threshold and holds
// until the voltage exceeds threshold plus margin; while latched the load
// is off no matter what the switches say. The mode register itself is never
// written here.
type Control struct {
	dac GateDriver

	latched  bool
	enabled  bool
	gate     int32
	lastGate int32
}

// NewControl starts unlatched. lastGate starts at -1 so the first resolved
// command is written out even when it is the initial 0.
func NewControl(dac GateDriver) (*Control, error) {
	if dac == nil {
		return nil, ErrNoDriver
	}
	return &Control{dac: dac, lastGate: -1}, nil
}

// Step advances the latch from the measured bus voltage, derives the gate
// command, and writes the DAC only when the command changed. A failed write
// leaves lastGate untouched so the next iteration retries.
func (c *Control) Step(loadOn bool, targetMilliAmps int32, minVolts, busVolts float32) error {
	if c.latched {
		if busVolts > minVolts+hysteresisVolts {
			c.latched = false
		}
	} else if busVolts < minVolts {
		c.latched = true
	}

	c.enabled = loadOn && !c.latched

	cmd := int32(0)
	if c.enabled {
		cmd = targetMilliAmps
	}
	c.gate = cmd
	if cmd == c.lastGate {
		return nil
	}
	if err := c.dac.SetGateMilliVolts(uint16(cmd)); err != nil {
		return err
	}
	c.lastGate = cmd
	return nil
}

// Latched reports whether the under-voltage cutoff is holding the load off.
func (c *Control) Latched() bool {
	return c.latched
}

// Enabled reports whether the load is actually sinking current.
func (c *Control) Enabled() bool {
	return c.enabled
}

// GateMilliVolts returns the current gate command.
func (c *Control) GateMilliVolts() int32 {
	return c.gate
}
