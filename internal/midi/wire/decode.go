// Package wire turns raw MIDI bytes delivered by driver callbacks into
// contracts.RawEvent values and exposes them through a blocking read.
package wire

import (
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// pitchBendParam is the control parameter reported for pitch bends.
const pitchBendParam = 0

var systemKinds = map[byte]contracts.EventKind{
	0xF0: contracts.KindSysex,
	0xF1: contracts.KindQFrame,
	0xF2: contracts.KindSongPos,
	0xF3: contracts.KindSongSel,
	0xF6: contracts.KindTuneRequest,
	0xF8: contracts.KindClock,
	0xFA: contracts.KindStart,
	0xFB: contracts.KindContinue,
	0xFC: contracts.KindStop,
	0xFE: contracts.KindSensing,
	0xFF: contracts.KindReset,
}

// Decode classifies one MIDI message. The payload stays nil when a channel
// voice message is shorter than its status byte requires.
func Decode(data []byte) contracts.RawEvent {
	if len(data) == 0 {
		return contracts.RawEvent{Kind: contracts.KindUnknown}
	}

	status := data[0]
	if status >= 0xF0 {
		if kind, ok := systemKinds[status]; ok {
			return contracts.RawEvent{Kind: kind}
		}
		return contracts.RawEvent{Kind: contracts.KindUnknown}
	}

	msg := gomidi.Message(data)
	var channel, key, velocity, value uint8

	switch status & 0xF0 {
	case 0x80:
		ev := contracts.RawEvent{Kind: contracts.KindNoteOff}
		if len(data) >= 3 && msg.GetNoteOff(&channel, &key, &velocity) {
			ev.Note = &contracts.NoteEvent{Channel: channel, Note: key, Velocity: velocity}
		}
		return ev
	case 0x90:
		ev := contracts.RawEvent{Kind: contracts.KindNoteOn}
		// a zero velocity note-on can report as note-off
		if len(data) >= 3 && (msg.GetNoteOn(&channel, &key, &velocity) || msg.GetNoteOff(&channel, &key, &velocity)) {
			ev.Note = &contracts.NoteEvent{Channel: channel, Note: key, Velocity: velocity}
		}
		return ev
	case 0xA0:
		ev := contracts.RawEvent{Kind: contracts.KindKeyPressure}
		if len(data) >= 3 && msg.GetPolyAfterTouch(&channel, &key, &value) {
			ev.Note = &contracts.NoteEvent{Channel: channel, Note: key, Velocity: value}
		}
		return ev
	case 0xB0:
		ev := contracts.RawEvent{Kind: contracts.KindController}
		if len(data) >= 3 && msg.GetControlChange(&channel, &key, &value) {
			ev.Control = &contracts.ControlEvent{Channel: channel, Param: uint32(key), Value: int32(value)}
		}
		return ev
	case 0xC0:
		ev := contracts.RawEvent{Kind: contracts.KindProgramChange}
		if len(data) >= 2 && msg.GetProgramChange(&channel, &value) {
			ev.Control = &contracts.ControlEvent{Channel: channel, Value: int32(value)}
		}
		return ev
	case 0xD0:
		ev := contracts.RawEvent{Kind: contracts.KindChannelPressure}
		if len(data) >= 2 && msg.GetAfterTouch(&channel, &value) {
			ev.Control = &contracts.ControlEvent{Channel: channel, Value: int32(value)}
		}
		return ev
	case 0xE0:
		ev := contracts.RawEvent{Kind: contracts.KindPitchbend}
		var relative int16
		var absolute uint16
		if len(data) >= 3 && msg.GetPitchBend(&channel, &relative, &absolute) {
			ev.Control = &contracts.ControlEvent{Channel: channel, Param: pitchBendParam, Value: int32(relative)}
		}
		return ev
	}

	// running status or stray data byte
	return contracts.RawEvent{Kind: contracts.KindUnknown}
}
