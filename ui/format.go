// Package ui renders the instrument state onto a two-row, sixteen-column
// text surface. The formatting is display-agnostic; lcd.go and oled.go
// provide the physical sinks.
package ui

import (
	"fmt"

	"github.com/itohio/dcload/dev"
)

// Sink is a two-row text display refreshed on the presentation cadence.
type Sink interface {
	Show(row1, row2 string) error
}

// Columns is the surface width. FormatRows renders every row exactly this
// wide; the sinks never need to clip or pad.
const Columns = 16

const (
	glyphFine   = '*'
	glyphCoarse = ' '
)

// FormatRows renders one snapshot into the two display rows. Row 1 carries
// the target load, the step-size glyph, either power or the minimum-voltage
// setpoint, and the MOSFET temperature; row 2 the live current, live
// voltage and resistor temperature. While the min-volt setpoint is being
// edited its field blinks: blinkOn is the 500 ms phase and the off phase
// blanks the field.
func FormatRows(st dev.Status, blinkOn bool) (string, string) {
	glyph := glyphCoarse
	if st.FineStep {
		glyph = glyphFine
	}

	var row1 string
	switch {
	case st.Mode.EditMinVolts && !blinkOn:
		row1 = fmt.Sprintf("%-4d%c%6s %3.0fC", st.TargetMilliAmps, glyph, "", st.MosfetTempC)
	case st.Mode.EditMinVolts || !st.Mode.ShowWatts:
		row1 = fmt.Sprintf("%-4d%c%s %3.0fC", st.TargetMilliAmps, glyph, unitField(st.MinVolts, 'V'), st.MosfetTempC)
	default:
		row1 = fmt.Sprintf("%-4d%c%s %3.0fC", st.TargetMilliAmps, glyph, unitField(st.Watts, 'W'), st.MosfetTempC)
	}

	row2 := fmt.Sprintf("%-4.0f %5.1fV %3.0fC", st.MilliAmps, st.Volts, st.ResistorTempC)
	return row1, row2
}

// unitField renders a value and its unit in six columns. Tenths are shown
// while the integer part fits in three digits; from 1000 the decimal is
// dropped, so the min-volt setpoint stays on the row all the way to its
// 2000.0 ceiling.
func unitField(v float32, unit rune) string {
	if v > 999.9 {
		return fmt.Sprintf("%5.0f%c", v, unit)
	}
	return fmt.Sprintf("%5.1f%c", v, unit)
}
