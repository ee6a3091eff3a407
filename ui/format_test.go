package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/dcload/dev"
)

func TestFormatRows(t *testing.T) {
	base := dev.Status{
		TargetMilliAmps: 300,
		MinVolts:        11.5,
		Volts:           10.2,
		MilliAmps:       1000,
		Watts:           12.5,
		MosfetTempC:     28,
		ResistorTempC:   31,
	}

	tests := []struct {
		name    string
		mutate  func(*dev.Status)
		blinkOn bool
		row1    string
		row2    string
	}{
		{
			name:   "watts display",
			mutate: func(s *dev.Status) { s.Mode.ShowWatts = true },
			row1:   "300   12.5W  28C",
			row2:   "1000  10.2V  31C",
		},
		{
			name:   "min volts steady",
			mutate: func(s *dev.Status) {},
			row1:   "300   11.5V  28C",
			row2:   "1000  10.2V  31C",
		},
		{
			name:   "fine step glyph",
			mutate: func(s *dev.Status) { s.Mode.ShowWatts = true; s.FineStep = true },
			row1:   "300 * 12.5W  28C",
			row2:   "1000  10.2V  31C",
		},
		{
			name:    "editing blink on",
			mutate:  func(s *dev.Status) { s.Mode.EditMinVolts = true },
			blinkOn: true,
			row1:    "300   11.5V  28C",
			row2:    "1000  10.2V  31C",
		},
		{
			name:   "editing blink off blanks the field",
			mutate: func(s *dev.Status) { s.Mode.EditMinVolts = true },
			row1:   "300          28C",
			row2:   "1000  10.2V  31C",
		},
		{
			name: "editing overrides watts display",
			mutate: func(s *dev.Status) {
				s.Mode.EditMinVolts = true
				s.Mode.ShowWatts = true
			},
			blinkOn: true,
			row1:    "300   11.5V  28C",
			row2:    "1000  10.2V  31C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := base
			tt.mutate(&st)

			row1, row2 := FormatRows(st, tt.blinkOn)
			assert.Equal(t, tt.row1, row1)
			assert.Equal(t, tt.row2, row2)
			assert.Len(t, row1, Columns)
			assert.Len(t, row2, Columns)
		})
	}
}

func TestFormatRows_MaxValuesStayOnSurface(t *testing.T) {
	st := dev.Status{
		TargetMilliAmps: 3300,
		MilliAmps:       3300,
		Volts:           999.9,
		Watts:           999.9,
		MosfetTempC:     105,
		ResistorTempC:   105,
	}
	st.Mode.ShowWatts = true

	row1, row2 := FormatRows(st, true)
	assert.Len(t, row1, Columns)
	assert.Len(t, row2, Columns)
	assert.Equal(t, "3300 999.9W 105C", row1)
	assert.Equal(t, "3300 999.9V 105C", row2)
}

func TestFormatRows_MinVoltsFourDigits(t *testing.T) {
	st := dev.Status{
		TargetMilliAmps: 3300,
		MilliAmps:       1000,
		Volts:           10.2,
		MosfetTempC:     105,
		ResistorTempC:   31,
	}
	st.Mode.EditMinVolts = true

	tests := []struct {
		name     string
		minVolts float32
		blinkOn  bool
		row1     string
	}{
		{name: "999.9 keeps tenths", minVolts: 999.9, blinkOn: true, row1: "3300 999.9V 105C"},
		{name: "1000.0 drops tenths", minVolts: 1000.0, blinkOn: true, row1: "3300  1000V 105C"},
		{name: "2000.0 ceiling", minVolts: 2000.0, blinkOn: true, row1: "3300  2000V 105C"},
		{name: "2000.0 blink off blanks the field", minVolts: 2000.0, row1: "3300        105C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := st
			s.MinVolts = tt.minVolts

			row1, row2 := FormatRows(s, tt.blinkOn)
			assert.Equal(t, tt.row1, row1)
			assert.Len(t, row1, Columns)
			assert.Len(t, row2, Columns)
		})
	}
}

func TestFormatRows_WidthStableAcrossMinVoltsRange(t *testing.T) {
	st := dev.Status{TargetMilliAmps: 3300, MosfetTempC: 105}
	st.Mode.EditMinVolts = true

	for tenths := int32(0); tenths <= 20000; tenths++ {
		st.MinVolts = float32(tenths) / 10
		for _, blinkOn := range []bool{true, false} {
			row1, _ := FormatRows(st, blinkOn)
			require.Len(t, row1, Columns, "min volts %.1f blink %v", st.MinVolts, blinkOn)
		}
	}
}
