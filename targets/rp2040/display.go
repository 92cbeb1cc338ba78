//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// timeDisplay shows HH:MM on a 128x64 OLED. Minute resolution only; it is
// refreshed from the minute hook.
type timeDisplay struct {
	dev ssd1306.Device
}

func newTimeDisplay() *timeDisplay {
	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP0,
		SCL:       machine.GP1,
		Frequency: 400 * machine.KHz,
	})
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Address: 0x3C, Width: 128, Height: 64})
	dev.ClearDisplay()
	return &timeDisplay{dev: dev}
}

func (d *timeDisplay) Show(hours, minutes uint8) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	d.dev.ClearBuffer()
	tinyfont.WriteLine(&d.dev, &freemono.Bold12pt7b, 28, 40, formatTime(hours, minutes), white)
	d.dev.Display()
}

func formatTime(hours, minutes uint8) string {
	buf := make([]byte, 0, 5)
	if hours >= 10 {
		buf = append(buf, '1')
		hours -= 10
	}
	buf = append(buf, '0'+hours, ':', '0'+minutes/10, '0'+minutes%10)
	return string(buf)
}
