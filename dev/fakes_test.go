package dev

// fakePin is a settable digital input.
type fakePin struct {
	level bool
}

func (p *fakePin) Get() bool {
	return p.level
}

// levelAnalog is a settable constant analog input.
type levelAnalog struct {
	v uint16
}

func (l *levelAnalog) Get() uint16 {
	return l.v
}

// seqAnalog replays a fixed sample sequence, then repeats the last value.
type seqAnalog struct {
	seq []uint16
	i   int
}

func (s *seqAnalog) Get() uint16 {
	if s.i < len(s.seq) {
		v := s.seq[s.i]
		s.i++
		return v
	}
	if len(s.seq) == 0 {
		return 0
	}
	return s.seq[len(s.seq)-1]
}

// toggleAnalog alternates between two samples, so any even-count average
// lands exactly between them.
type toggleAnalog struct {
	a, b uint16
	flip bool
}

func (t *toggleAnalog) Get() uint16 {
	t.flip = !t.flip
	if t.flip {
		return t.a
	}
	return t.b
}

// fakeGate records every attempted gate write and can fail on demand.
type fakeGate struct {
	writes  []uint16
	failing bool
}

func (g *fakeGate) SetGateMilliVolts(mv uint16) error {
	g.writes = append(g.writes, mv)
	if g.failing {
		return ErrNoDriver
	}
	return nil
}

// turnCW walks the fake pins through valid Gray transitions, firing the
// interrupt handler once per transition.
func turnCW(e *Encoder, a, b *fakePin, steps int) {
	for ; steps > 0; steps-- {
		switch {
		case !a.level && !b.level:
			a.level = true
		case a.level && !b.level:
			b.level = true
		case a.level && b.level:
			a.level = false
		default:
			b.level = false
		}
		e.Edge()
	}
}

func turnCCW(e *Encoder, a, b *fakePin, steps int) {
	for ; steps > 0; steps-- {
		switch {
		case !a.level && !b.level:
			b.level = true
		case !a.level && b.level:
			a.level = true
		case a.level && b.level:
			b.level = false
		default:
			a.level = false
		}
		e.Edge()
	}
}
