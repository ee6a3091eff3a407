package dev

// Setpoint bounds and step scales. The target bound is the opamp input
// limit in millivolts, which maps 1:1 to milliamps through the 1 ohm shunt;
// the min-volt bound is in tenths of a volt.
const (
	targetMaxMilliAmps = 3300
	minVoltMaxTenths   = 20000
	coarseScale        = 100
	fineScale          = 1
)

// edgeToggle turns a momentary button level into a persistent flag,
// toggling once per rising edge. Holding or releasing has no effect.
type edgeToggle struct {
	pressed bool
	on      bool
}

func (e *edgeToggle) update(level bool) {
	if level && !e.pressed {
		e.on = !e.on
	}
	e.pressed = level
}

// axis is one setpoint's retained state: the last accumulator value seen
// and the accumulated, bounded milli value.
type axis struct {
	lastRaw int32
	milli   int32
	max     int32
}

func (a *axis) apply(raw, scale int32) {
	delta := raw - a.lastRaw
	a.lastRaw = raw
	a.milli = clamp(a.milli+delta*scale, 0, a.max)
}

// Setpoints resolves encoder movement into the bounded target-load and
// minimum-voltage setpoints, scaling each step by 1 (fine) or 100 (coarse).
type Setpoints struct {
	enc     *Encoder
	step    edgeToggle
	target  axis
	minVolt axis
}

// NewSetpoints starts in coarse mode with both setpoints at zero.
func NewSetpoints(enc *Encoder) (*Setpoints, error) {
	if enc == nil {
		return nil, ErrNoComponent
	}
	return &Setpoints{
		enc:     enc,
		target:  axis{max: targetMaxMilliAmps},
		minVolt: axis{max: minVoltMaxTenths},
	}, nil
}

// Resolve consumes pending encoder movement for the active mode. The mode
// register's fine flag is a momentary pushbutton; each press toggles the
// step scale. The inactive axis keeps its pending deltas until its mode is
// selected again.
func (s *Setpoints) Resolve(m Mode) {
	s.step.update(m.FineButton)
	scale := int32(coarseScale)
	if s.step.on {
		scale = fineScale
	}
	if m.EditMinVolts {
		s.minVolt.apply(s.enc.MinVolt(), scale)
	} else {
		s.target.apply(s.enc.Target(), scale)
	}
}

// TargetMilliAmps returns the bounded target-load setpoint.
func (s *Setpoints) TargetMilliAmps() int32 {
	return s.target.milli
}

// MinVolts returns the bounded minimum-voltage setpoint in volts.
func (s *Setpoints) MinVolts() float32 {
	return float32(s.minVolt.milli) / 10
}

// FineStep reports whether the step scale is currently fine.
func (s *Setpoints) FineStep() bool {
	return s.step.on
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
