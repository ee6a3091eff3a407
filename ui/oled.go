//go:build tinygo

package ui

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// OLED renders the same two rows on a 128x64 SSD1306 module, for builds
// where the character LCD is swapped out.
type OLED struct {
	dev ssd1306.Device
}

var white = color.RGBA{255, 255, 255, 255}

// NewOLED configures the display at the usual 0x3C address.
func NewOLED(bus drivers.I2C) *OLED {
	d := ssd1306.NewI2C(bus)
	d.Configure(ssd1306.Config{
		Width:    128,
		Height:   64,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	d.ClearDisplay()
	return &OLED{dev: d}
}

func (o *OLED) Show(row1, row2 string) error {
	o.dev.ClearBuffer()
	tinyfont.WriteLine(&o.dev, &proggy.TinySZ8pt7b, 0, 24, row1, white)
	tinyfont.WriteLine(&o.dev, &proggy.TinySZ8pt7b, 0, 44, row2, white)
	return o.dev.Display()
}
