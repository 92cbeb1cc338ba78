// Package midi encodes the handful of MIDI channel messages the clock's
// chime output needs. Messages are fixed three-byte frames; data bytes are
// masked to seven bits so a malformed value can never be mistaken for a
// status byte on the wire.
package midi

import "io"

// BaudRate is the wire rate of a DIN MIDI connection.
const BaudRate = 31250

const (
	statusNoteOn  = 0x90
	statusNoteOff = 0x80

	channelMask = 0x0F
	dataMask    = 0x7F
)

// DefaultVelocity is used by Chime when none is set.
const DefaultVelocity = 100

// NoteOn returns the three-byte note-on message for the given channel
// (0..15), key and velocity (0..127 each).
func NoteOn(channel, key, velocity uint8) [3]byte {
	return [3]byte{statusNoteOn | channel&channelMask, key & dataMask, velocity & dataMask}
}

// NoteOff returns the matching note-off message.
func NoteOff(channel, key uint8) [3]byte {
	return [3]byte{statusNoteOff | channel&channelMask, key & dataMask, 0}
}

// Chime strikes a single fixed note on a MIDI output, typically once per
// minute rollover. The writer is usually a serial port running at BaudRate.
type Chime struct {
	Out      io.Writer
	Channel  uint8
	Key      uint8 // e.g. 81 = A5
	Velocity uint8 // 0 means DefaultVelocity
}

// Strike sounds the chime note. Pair with Release after the desired ring
// time; a synth without note memory will otherwise hold the note forever.
func (c *Chime) Strike() error {
	v := c.Velocity
	if v == 0 {
		v = DefaultVelocity
	}
	msg := NoteOn(c.Channel, c.Key, v)
	_, err := c.Out.Write(msg[:])
	return err
}

// Release silences the chime note.
func (c *Chime) Release() error {
	msg := NoteOff(c.Channel, c.Key)
	_, err := c.Out.Write(msg[:])
	return err
}
