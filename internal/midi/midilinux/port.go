package midilinux

import (
	"errors"
	"fmt"

	"github.com/leandrodaf/midiseq/internal/midi/wire"
)

// Error definitions for the ALSA sequencer backend.
var (
	ErrOpenSequencer    = errors.New("error opening ALSA sequencer")
	ErrCreateInputPort  = errors.New("error creating input port")
	ErrPortCapabilities = errors.New("input port must be writable")
	ErrListen           = errors.New("error listening on input port")
)

// inputPort is the part of an rtmidi input the backend drives.
type inputPort interface {
	IgnoreTypes(sysex, timeCode, activeSense bool) error
	OpenVirtualPort(name string) error
	SetCallback(cb func(msg []byte)) error
	CancelCallback() error
	Close() error
}

// listen opens the virtual port and forwards every message to feed.
// No message type is ignored: sysex, time code and active sensing included.
func listen(in inputPort, portName string, feed *wire.Feed) error {
	if err := in.OpenVirtualPort(portName); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateInputPort, err)
	}
	if err := in.IgnoreTypes(false, false, false); err != nil {
		return fmt.Errorf("%w: %w", ErrListen, err)
	}
	if err := in.SetCallback(feed.Push); err != nil {
		return fmt.Errorf("%w: %w", ErrListen, err)
	}
	return nil
}
