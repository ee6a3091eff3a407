package dev

// AnalogIn is a single analog input producing right-aligned 10-bit samples
// (0-1023). The firmware adapts machine.ADC to this width; tests use fakes.
type AnalogIn interface {
	Get() uint16
}

// Switch band thresholds in raw counts. Each physical multi-position switch
// is encoded as a voltage divider; the bands must not overlap.
const (
	bandLow  = 50
	bandMid  = 100
	bandHigh = 900
)

// Switches reads the two multiplexed switch banks into the mode register.
// It is the register's sole writer.
type Switches struct {
	bankA, bankB AnalogIn
}

func NewSwitches(bankA, bankB AnalogIn) (*Switches, error) {
	if bankA == nil || bankB == nil {
		return nil, ErrNoInput
	}
	return &Switches{bankA: bankA, bankB: bankB}, nil
}

// Sample refreshes all four mode flags from the two banks. Bank A carries
// the encoder pushbutton (high band) and the load-enable position (mid
// band); bank B selects min-volt editing (high) and the watts display
// (mid).
func (s *Switches) Sample(m *Mode) {
	high, mid := readBank(s.bankA)
	m.FineButton = high
	m.LoadEnabled = mid

	high, mid = readBank(s.bankB)
	m.EditMinVolts = high
	m.ShowWatts = mid
}

// readBank discards one sample so the input mux settles, then averages the
// next two and maps the result through the bands.
func readBank(in AnalogIn) (high, mid bool) {
	in.Get()
	avg := (uint32(in.Get()) + uint32(in.Get())) / 2
	switch {
	case avg > bandHigh:
		return true, false
	case avg > bandLow && avg < bandMid:
		return false, true
	}
	return false, false
}
