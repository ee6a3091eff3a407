package dev

// Mode is the instrument's mode register: four flags written only by the
// switch sampler, once per iteration, and read by every other component.
type Mode struct {
	FineButton   bool
	LoadEnabled  bool
	EditMinVolts bool
	ShowWatts    bool
}

// Status is the per-iteration snapshot handed to presentation and
// telemetry.
type Status struct {
	Mode            Mode
	FineStep        bool
	TargetMilliAmps int32
	MinVolts        float32
	Volts           float32
	MilliAmps       float32
	Watts           float32
	MosfetTempC     float32
	ResistorTempC   float32
	Enabled         bool
	Latched         bool
	GateMilliVolts  int32
}

// Loop is the control-loop context. Every Step runs the fixed order
// switches, setpoint, sensing, protection, actuation to completion; only
// the encoder interrupt may interleave. Presentation runs off the returned
// snapshot on its own cadence.
type Loop struct {
	switches  *Switches
	encoder   *Encoder
	setpoints *Setpoints
	analog    *FrontEnd
	control   *Control

	mode Mode
}

func NewLoop(sw *Switches, enc *Encoder, sp *Setpoints, fe *FrontEnd, ctrl *Control) (*Loop, error) {
	if sw == nil || enc == nil || sp == nil || fe == nil || ctrl == nil {
		return nil, ErrNoComponent
	}
	return &Loop{
		switches:  sw,
		encoder:   enc,
		setpoints: sp,
		analog:    fe,
		control:   ctrl,
	}, nil
}

// Step runs one full iteration and returns the snapshot. A DAC write error
// is reported alongside a complete snapshot; the write-on-change policy
// retries it next pass.
func (l *Loop) Step() (Status, error) {
	l.switches.Sample(&l.mode)
	l.encoder.SetRoute(l.mode.EditMinVolts)
	l.setpoints.Resolve(l.mode)

	volts := l.analog.Volts()
	milliAmps := l.analog.MilliAmps()
	mosfet := l.analog.TemperatureC(SensorMosfet)
	resistor := l.analog.TemperatureC(SensorResistor)

	err := l.control.Step(l.mode.LoadEnabled, l.setpoints.TargetMilliAmps(), l.setpoints.MinVolts(), volts)

	return Status{
		Mode:            l.mode,
		FineStep:        l.setpoints.FineStep(),
		TargetMilliAmps: l.setpoints.TargetMilliAmps(),
		MinVolts:        l.setpoints.MinVolts(),
		Volts:           volts,
		MilliAmps:       milliAmps,
		Watts:           volts * milliAmps / 1000,
		MosfetTempC:     mosfet,
		ResistorTempC:   resistor,
		Enabled:         l.control.Enabled(),
		Latched:         l.control.Latched(),
		GateMilliVolts:  l.control.GateMilliVolts(),
	}, err
}
