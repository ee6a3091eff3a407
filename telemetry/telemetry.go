// Package telemetry defines the instrument's serial record: one
// space-separated line per second carrying the target load, live current,
// minimum-voltage setpoint, live voltage, power, both temperatures and the
// effective load-enable flag. The firmware emits it, the host monitor
// parses it back.
package telemetry

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/itohio/dcload/dev"
)

const fieldCount = 8

// Record is one telemetry line.
type Record struct {
	TargetMilliAmps int32
	MilliAmps       float32
	MinVolts        float32
	Volts           float32
	Watts           float32
	MosfetTempC     float32
	ResistorTempC   float32
	LoadEnabled     bool
}

// FromStatus maps a loop snapshot onto the wire record. The enable flag is
// the effective one, so a protection latch shows up as 0 even while the
// physical switch stays on.
func FromStatus(st dev.Status) Record {
	return Record{
		TargetMilliAmps: st.TargetMilliAmps,
		MilliAmps:       st.MilliAmps,
		MinVolts:        st.MinVolts,
		Volts:           st.Volts,
		Watts:           st.Watts,
		MosfetTempC:     st.MosfetTempC,
		ResistorTempC:   st.ResistorTempC,
		LoadEnabled:     st.Enabled,
	}
}

// String renders the record in wire order.
func (r Record) String() string {
	enabled := 0
	if r.LoadEnabled {
		enabled = 1
	}
	return fmt.Sprintf("%d %.0f %.1f %.2f %.2f %.1f %.1f %d",
		r.TargetMilliAmps, r.MilliAmps, r.MinVolts, r.Volts, r.Watts,
		r.MosfetTempC, r.ResistorTempC, enabled)
}

// Flusher is implemented by buffered sinks that push per line.
type Flusher interface {
	Flush() error
}

// Emitter writes records as terminated lines with an explicit flush when
// the sink supports one.
type Emitter struct {
	w io.Writer
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

func (e *Emitter) Emit(r Record) error {
	if _, err := io.WriteString(e.w, r.String()+"\n"); err != nil {
		return err
	}
	if f, ok := e.w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Parse is the inverse of String. Leading and trailing whitespace, CR
// included, is tolerated.
func Parse(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("invalid record: expected %d fields, got %d", fieldCount, len(fields))
	}

	target, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid target field: %w", err)
	}

	var vals [6]float32
	for i, f := range fields[1:7] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return Record{}, fmt.Errorf("invalid field %d: %w", i+2, err)
		}
		vals[i] = float32(v)
	}

	var enabled bool
	switch fields[7] {
	case "0":
	case "1":
		enabled = true
	default:
		return Record{}, fmt.Errorf("invalid enable flag %q", fields[7])
	}

	return Record{
		TargetMilliAmps: int32(target),
		MilliAmps:       vals[0],
		MinVolts:        vals[1],
		Volts:           vals[2],
		Watts:           vals[3],
		MosfetTempC:     vals[4],
		ResistorTempC:   vals[5],
		LoadEnabled:     enabled,
	}, nil
}
