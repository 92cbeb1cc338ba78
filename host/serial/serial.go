package serial

import (
	"io"

	"github.com/graumannteague/single-button-clock/midi"
)

// Port is the serial connection the simulator's MIDI chime writes to. The
// abstraction keeps callers independent of the implementation: a real
// device via tarm/serial, or an in-memory pipe in tests.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered data.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyUSB0", "COM3").
	Device string

	// Baud rate. A DIN MIDI connection runs at midi.BaudRate; USB CDC
	// devices ignore the setting.
	Baud int

	// Read timeout in milliseconds (0 = blocking).
	ReadTimeout int
}

// DefaultConfig returns the configuration for a MIDI output device.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        midi.BaudRate,
		ReadTimeout: 100,
	}
}
