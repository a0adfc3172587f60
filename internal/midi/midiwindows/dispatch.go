package midiwindows

import (
	"errors"
	"fmt"

	"github.com/leandrodaf/midiseq/internal/midi/wire"
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// Constants for MIDI message types
const (
	MIM_OPEN      = 0x3C1 // MIDI device opened
	MIM_CLOSE     = 0x3C2 // MIDI device closed
	MIM_DATA      = 0x3C3 // MIDI data received
	MIM_ERROR     = 0x3C5 // MIDI error
	MIM_LONGERROR = 0x3C6 // Long MIDI error
	MIM_MOREDATA  = 0x3CC // More MIDI data available
)

// Errors reported by the input device callback.
var (
	ErrDeviceClosed = errors.New("MIDI input device closed")
	ErrInvalidData  = errors.New("invalid MIDI data received")
)

// shortMessage unpacks the status and data bytes packed into dwParam1.
func shortMessage(dwParam1 uintptr) []byte {
	return []byte{
		byte(dwParam1 & 0xFF),
		byte((dwParam1 >> 8) & 0xFF),
		byte((dwParam1 >> 16) & 0xFF),
	}
}

// dispatch routes one WinMM input message to feed.
func dispatch(feed *wire.Feed, log contracts.Logger, wMsg uint32, dwParam1 uintptr) {
	switch wMsg {
	case MIM_OPEN:
		log.Debug("MIDI device opened")
	case MIM_CLOSE:
		feed.Fail(ErrDeviceClosed)
	case MIM_DATA, MIM_MOREDATA:
		// MIM_MOREDATA carries a short message too, sent while the queue is backed up
		feed.Push(shortMessage(dwParam1))
	case MIM_ERROR, MIM_LONGERROR:
		feed.Fail(fmt.Errorf("%w: msg=0x%X param=0x%X", ErrInvalidData, wMsg, dwParam1))
	default:
		log.Warn(fmt.Sprintf("Unknown MIDI message: 0x%X", wMsg))
	}
}
