package ui

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// LCD drives a 16x2 HD44780 character display behind a PCF8574 I2C
// backpack, the instrument's stock front panel.
type LCD struct {
	dev hd44780i2c.Device
}

// NewLCD configures the display. addr is the backpack address, 0x27 on the
// common modules.
func NewLCD(bus drivers.I2C, addr uint8) (*LCD, error) {
	d := hd44780i2c.New(bus, addr)
	if err := d.Configure(hd44780i2c.Config{
		Width:  Columns,
		Height: 2,
	}); err != nil {
		return nil, err
	}
	return &LCD{dev: d}, nil
}

// Show rewrites both rows in place. Rows are clipped to the surface width;
// no clearing is needed because every cell is always rewritten.
func (l *LCD) Show(row1, row2 string) error {
	l.dev.SetCursor(0, 0)
	l.dev.Print(clip(row1))
	l.dev.SetCursor(0, 1)
	l.dev.Print(clip(row2))
	return nil
}

func clip(row string) []byte {
	if len(row) > Columns {
		row = row[:Columns]
	}
	return []byte(row)
}
