package contracts

import (
	"errors"
	"fmt"
)

// ErrSourceClosed is returned by EventSource.ReadEvent once the source has been closed.
var ErrSourceClosed = errors.New("event source closed")

// EventKind is the driver's category tag for a raw event.
type EventKind uint8

const (
	KindUnknown EventKind = iota
	KindNote
	KindNoteOn
	KindNoteOff
	KindKeyPressure
	KindController
	KindProgramChange
	KindChannelPressure
	KindPitchbend
	KindSysex
	KindQFrame
	KindSongPos
	KindSongSel
	KindTuneRequest
	KindClock
	KindStart
	KindContinue
	KindStop
	KindSensing
	KindReset
)

var kindNames = [...]string{
	KindUnknown:         "Unknown",
	KindNote:            "Note",
	KindNoteOn:          "Noteon",
	KindNoteOff:         "Noteoff",
	KindKeyPressure:     "Keypress",
	KindController:      "Controller",
	KindProgramChange:   "Pgmchange",
	KindChannelPressure: "Chanpress",
	KindPitchbend:       "Pitchbend",
	KindSysex:           "Sysex",
	KindQFrame:          "Qframe",
	KindSongPos:         "Songpos",
	KindSongSel:         "Songsel",
	KindTuneRequest:     "TuneRequest",
	KindClock:           "Clock",
	KindStart:           "Start",
	KindContinue:        "Continue",
	KindStop:            "Stop",
	KindSensing:         "Sensing",
	KindReset:           "Reset",
}

// String returns the raw tag name of the kind.
func (k EventKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// NoteEvent is the fixed note record of a driver event. Channels are zero based.
type NoteEvent struct {
	Channel     uint8
	Note        uint8
	Velocity    uint8
	OffVelocity uint8
	Duration    uint32
}

func (n NoteEvent) String() string {
	return fmt.Sprintf("NoteEvent{Channel: %d, Note: %d, Velocity: %d, OffVelocity: %d, Duration: %d}",
		n.Channel, n.Note, n.Velocity, n.OffVelocity, n.Duration)
}

// ControlEvent is the fixed control record of a driver event.
// Pitch bends use Param 0 and a signed Value in the range -8192..8191.
type ControlEvent struct {
	Channel uint8
	Param   uint32
	Value   int32
}

func (c ControlEvent) String() string {
	return fmt.Sprintf("ControlEvent{Channel: %d, Param: %d, Value: %d}", c.Channel, c.Param, c.Value)
}

// RawEvent is one event as delivered by an EventSource.
// Note and Control are nil when the driver record carried no decodable payload.
type RawEvent struct {
	Kind    EventKind
	Note    *NoteEvent
	Control *ControlEvent
}

// EventSource is the sequencing driver surface the capture pipeline reads from.
type EventSource interface {
	// ReadEvent blocks until the next driver event arrives or the source fails.
	ReadEvent() (RawEvent, error)
	// Info describes the port the source listens on.
	Info() PortInfo
	// Close releases the port; blocked and later ReadEvent calls return ErrSourceClosed.
	Close() error
}
